package auth

import (
	"context"

	"covidportal/internal/logging"
)

// Auther orchestrates the login flow: credential verification followed by
// token issuance.
type Auther struct {
	provider     IdentityVerifier
	tokenService TokenService
	logger       logging.Logger
}

var _ Authenticator = (*Auther)(nil)

// NewAuthenticator returns a new Authenticator.
func NewAuthenticator(provider IdentityVerifier, tokenService TokenService, logger logging.Logger) *Auther {
	if logger == nil {
		logger = logging.NewDefault()
	}
	return &Auther{
		provider:     provider,
		tokenService: tokenService,
		logger:       logger,
	}
}

// TokenService returns the TokenService instance used by this Authenticator.
func (s *Auther) TokenService() TokenService {
	return s.tokenService
}

// Login verifies the credential pair and returns a signed token for the
// principal. Failures are logged without secret material.
func (s *Auther) Login(ctx context.Context, identifier, password string) (string, error) {
	identity, err := s.provider.VerifyIdentity(ctx, identifier, password)
	if err != nil {
		s.logger.Warn("login verify identity failed", "identifier", identifier, "error", err)
		return "", err
	}

	token, err := s.tokenService.Generate(identity)
	if err != nil {
		s.logger.Error("login token generation failed", "identifier", identifier, "error", err)
		return "", err
	}

	return token, nil
}
