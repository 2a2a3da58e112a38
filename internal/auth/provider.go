package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"covidportal/internal/logging"
	"covidportal/internal/model"
)

// UserStore is a store we can use to retrieve users. Absent records surface
// as sql.ErrNoRows.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

// UserProvider resolves credential pairs against the user store. It performs
// no writes.
type UserProvider struct {
	store  UserStore
	logger logging.Logger
}

var _ IdentityVerifier = (*UserProvider)(nil)

// NewUserProvider will create a new UserProvider.
func NewUserProvider(store UserStore, logger logging.Logger) *UserProvider {
	if logger == nil {
		logger = logging.NewDefault()
	}
	return &UserProvider{
		store:  store,
		logger: logger,
	}
}

// VerifyIdentity will find the user, compare the password against the stored
// hash, and return the identity. The lookup is an exact username match bound
// as a query parameter by the store.
func (u *UserProvider) VerifyIdentity(ctx context.Context, identifier, password string) (Identity, error) {
	user, err := u.store.GetByUsername(ctx, identifier)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to retrieve user during verification: %w", err)
	}

	if err := ComparePasswordAndHash(password, user.PasswordHash); err != nil {
		return nil, err
	}

	return NewIdentity(user.Username), nil
}
