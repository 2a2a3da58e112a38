package auth_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"covidportal/internal/auth"
)

func TestTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "well-formed", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "case-insensitive scheme", header: "bearer abc", want: "abc"},
		{name: "absent header", header: "", wantErr: true},
		{name: "no token segment", header: "Bearer", wantErr: true},
		{name: "blank token segment", header: "Bearer   ", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := auth.TokenFromHeader(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, auth.ErrMissingToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}

func TestProtected(t *testing.T) {
	service := newTestTokenService("test-signing-key")

	newApp := func(invoked *bool) *fiber.App {
		app := fiber.New()
		app.Get("/protected", auth.Protected(service, nil), func(c *fiber.Ctx) error {
			*invoked = true
			identity, ok := auth.IdentityFromContext(c)
			require.True(t, ok)
			return c.SendString(identity.Username())
		})
		return app
	}

	t.Run("admits a request with a valid bearer token", func(t *testing.T) {
		token, err := service.Generate(auth.NewIdentity("alice"))
		require.NoError(t, err)

		var invoked bool
		app := newApp(&invoked)

		req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.True(t, invoked)

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "alice", string(body))
	})

	t.Run("rejects a request with no header", func(t *testing.T) {
		var invoked bool
		app := newApp(&invoked)

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/protected", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.False(t, invoked, "protected handler must not run")
	})

	t.Run("rejects a request with an invalid token", func(t *testing.T) {
		var invoked bool
		app := newApp(&invoked)

		req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer garbage")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.False(t, invoked, "protected handler must not run")

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "Invalid JWT Token", string(body))
	})

	t.Run("rejects a token signed with a different key", func(t *testing.T) {
		other := newTestTokenService("another-signing-key")
		token, err := other.Generate(auth.NewIdentity("alice"))
		require.NoError(t, err)

		var invoked bool
		app := newApp(&invoked)

		req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.False(t, invoked)
	})
}
