package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"covidportal/internal/model"
)

// States reads geographic regions. States are read-only through the portal.
type States interface {
	List(ctx context.Context) ([]model.State, error)
	GetByID(ctx context.Context, id int64) (*model.State, error)
}

type states struct {
	db *bun.DB
}

var _ States = (*states)(nil)

// NewStatesRepository returns the states repository backed by db.
func NewStatesRepository(db *bun.DB) States {
	return &states{db: db}
}

// List returns all state rows in insertion order.
func (r *states) List(ctx context.Context) ([]model.State, error) {
	var records []model.State
	if err := r.db.NewSelect().
		Model(&records).
		Order("st.state_id ASC").
		Scan(ctx); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *states) GetByID(ctx context.Context, id int64) (*model.State, error) {
	record := &model.State{}
	err := r.db.NewSelect().
		Model(record).
		Where("st.state_id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStateNotFound
		}
		return nil, err
	}
	return record, nil
}
