package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"covidportal/internal/logging"
)

// ContextKey is where the gate stores the validated claims on the request.
const ContextKey = "auth_claims"

const authScheme = "Bearer"

// TokenValidator validates a raw token string. It mirrors
// TokenService.Validate so the gate does not depend on issuance.
type TokenValidator interface {
	Validate(tokenString string) (*Claims, error)
}

// Protected returns the request gate for protected routes. It extracts the
// bearer token from the Authorization header, validates it, and attaches the
// principal to the request context. On any failure the request is rejected
// with 401 and the downstream handler is never invoked.
func Protected(validator TokenValidator, logger logging.Logger) fiber.Handler {
	if logger == nil {
		logger = logging.NewDefault()
	}

	return func(c *fiber.Ctx) error {
		raw, err := TokenFromHeader(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).SendString("Invalid JWT Token")
		}

		claims, err := validator.Validate(raw)
		if err != nil {
			logger.Debug("token validation failed", "path", c.Path(), "error", err)
			return c.Status(fiber.StatusUnauthorized).SendString("Invalid JWT Token")
		}

		c.Locals(ContextKey, claims)

		return c.Next()
	}
}

// TokenFromHeader extracts the raw token from an "Authorization: Bearer ..."
// header value. An absent header or a header with no token segment fails
// with ErrMissingToken.
func TokenFromHeader(header string) (string, error) {
	if header == "" {
		return "", ErrMissingToken
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], authScheme) {
		return "", ErrMissingToken
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", ErrMissingToken
	}

	return token, nil
}

// IdentityFromContext returns the principal attached by the gate, when any.
func IdentityFromContext(c *fiber.Ctx) (Identity, bool) {
	claims, ok := c.Locals(ContextKey).(*Claims)
	if !ok || claims == nil {
		return nil, false
	}
	return claims, true
}
