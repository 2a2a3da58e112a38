package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the payload of issued tokens: the registered JWT claims plus the
// principal's username.
type Claims struct {
	jwt.RegisteredClaims
	User string `json:"username,omitempty"`
}

var _ Identity = (*Claims)(nil)

// Username returns the principal bound to the token.
func (c *Claims) Username() string {
	if c.User != "" {
		return c.User
	}
	return c.RegisteredClaims.Subject
}

// Expires returns the expiration time, zero when absent.
func (c *Claims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}

// ensureTokenID assigns a random jti when the claims carry none.
func ensureTokenID(claims *jwt.RegisteredClaims) {
	if claims.ID == "" {
		claims.ID = uuid.NewString()
	}
}
