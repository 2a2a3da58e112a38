package auth

import (
	"context"
)

// Identity holds the attributes of an authenticated principal. It is derived
// from credentials or a verified token and lives only for one request.
type Identity interface {
	Username() string
}

// IdentityVerifier checks a credential pair and resolves it to an Identity.
type IdentityVerifier interface {
	VerifyIdentity(ctx context.Context, identifier, password string) (Identity, error)
}

// TokenService issues and validates signed tokens.
type TokenService interface {
	Generate(identity Identity) (string, error)
	Validate(tokenString string) (*Claims, error)
}

// Authenticator holds methods to deal with authentication.
type Authenticator interface {
	Login(ctx context.Context, identifier, password string) (string, error)
}

type principal struct {
	username string
}

func (p principal) Username() string { return p.username }

// NewIdentity returns an Identity for the given username.
func NewIdentity(username string) Identity {
	return principal{username: username}
}
