package repository

import (
	"errors"

	"github.com/uptrace/bun"
)

// Manager exposes all repositories over one injected store handle.
type Manager interface {
	Users() Users
	States() States
	Districts() Districts
	Validate() error
}

type mngr struct {
	db        *bun.DB
	users     Users
	states    States
	districts Districts
}

var _ Manager = (*mngr)(nil)

// NewManager builds the repositories over the given store handle. The handle
// is acquired once at startup and shared read-only afterwards.
func NewManager(db *bun.DB) Manager {
	return &mngr{
		db:        db,
		users:     NewUsersRepository(db),
		states:    NewStatesRepository(db),
		districts: NewDistrictsRepository(db),
	}
}

func (m *mngr) Users() Users {
	return m.users
}

func (m *mngr) States() States {
	return m.states
}

func (m *mngr) Districts() Districts {
	return m.districts
}

func (m *mngr) Validate() error {
	if m.users == nil {
		return errors.New("repository users should be initialized")
	}
	if m.states == nil {
		return errors.New("repository states should be initialized")
	}
	if m.districts == nil {
		return errors.New("repository districts should be initialized")
	}
	return nil
}
