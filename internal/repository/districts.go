package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"covidportal/internal/model"
)

// Districts owns CRUD and aggregation over district records.
type Districts interface {
	Create(ctx context.Context, district *model.District) (*model.District, error)
	GetByID(ctx context.Context, id int64) (*model.District, error)
	Update(ctx context.Context, district *model.District) error
	Delete(ctx context.Context, id int64) error
	StateStats(ctx context.Context, stateID int64) (*model.StateStats, error)
	StateNames(ctx context.Context, districtID int64) ([]string, error)
}

type districts struct {
	db *bun.DB
}

var _ Districts = (*districts)(nil)

// NewDistrictsRepository returns the districts repository backed by db.
func NewDistrictsRepository(db *bun.DB) Districts {
	return &districts{db: db}
}

// Create inserts the district and returns it with the store-assigned id.
func (r *districts) Create(ctx context.Context, district *model.District) (*model.District, error) {
	if _, err := r.db.NewInsert().Model(district).Exec(ctx); err != nil {
		return nil, err
	}
	return district, nil
}

func (r *districts) GetByID(ctx context.Context, id int64) (*model.District, error) {
	record := &model.District{}
	err := r.db.NewSelect().
		Model(record).
		Where("dst.district_id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDistrictNotFound
		}
		return nil, err
	}
	return record, nil
}

// Update replaces every field of the record except the id. Updating an
// absent id fails with ErrDistrictNotFound.
func (r *districts) Update(ctx context.Context, district *model.District) error {
	res, err := r.db.NewUpdate().
		Model(district).
		Column("district_name", "state_id", "cases", "cured", "active", "deaths").
		WherePK().
		Exec(ctx)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *districts) Delete(ctx context.Context, id int64) error {
	res, err := r.db.NewDelete().
		Model((*model.District)(nil)).
		Where("district_id = ?", id).
		Exec(ctx)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// StateStats sums the four metric columns across the districts of one state.
// COALESCE normalizes the SUM over zero rows from NULL to 0.
func (r *districts) StateStats(ctx context.Context, stateID int64) (*model.StateStats, error) {
	stats := &model.StateStats{}
	err := r.db.NewSelect().
		Model((*model.District)(nil)).
		ColumnExpr("COALESCE(SUM(cases), 0) AS total_cases").
		ColumnExpr("COALESCE(SUM(cured), 0) AS total_cured").
		ColumnExpr("COALESCE(SUM(active), 0) AS total_active").
		ColumnExpr("COALESCE(SUM(deaths), 0) AS total_deaths").
		Where("state_id = ?", stateID).
		Scan(ctx, stats)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// StateNames resolves the state name a district belongs to via a left join
// from state to district. Zero rows when the district or its state reference
// does not exist; that is an empty result, not an error.
func (r *districts) StateNames(ctx context.Context, districtID int64) ([]string, error) {
	var names []string
	err := r.db.NewSelect().
		ColumnExpr("st.state_name").
		TableExpr("state AS st").
		Join("LEFT JOIN district AS dst ON st.state_id = dst.state_id").
		Where("dst.district_id = ?", districtID).
		Scan(ctx, &names)
	if err != nil {
		return nil, err
	}
	return names, nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrDistrictNotFound
	}
	return nil
}
