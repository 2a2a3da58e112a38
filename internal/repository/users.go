package repository

import (
	"context"

	"github.com/uptrace/bun"

	"covidportal/internal/model"
)

// Users reads registered principals. The portal core never mutates user
// records; Create exists for provisioning and tests.
type Users interface {
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
}

type users struct {
	db *bun.DB
}

var _ Users = (*users)(nil)

// NewUsersRepository returns the users repository backed by db.
func NewUsersRepository(db *bun.DB) Users {
	return &users{db: db}
}

// GetByUsername looks a user up by exact username match. Absent records
// surface as sql.ErrNoRows so callers can distinguish not-found from store
// failures.
func (r *users) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	user := &model.User{}
	if err := r.db.NewSelect().
		Model(user).
		Where("usr.username = ?", username).
		Scan(ctx); err != nil {
		return nil, err
	}
	return user, nil
}

func (r *users) Create(ctx context.Context, user *model.User) error {
	_, err := r.db.NewInsert().Model(user).Exec(ctx)
	return err
}
