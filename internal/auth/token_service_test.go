package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"covidportal/internal/auth"
)

const testIssuer = "covid-portal"

func newTestTokenService(key string) *auth.TokenServiceImpl {
	return auth.NewTokenService([]byte(key), time.Hour, testIssuer, nil)
}

func TestTokenService_Generate(t *testing.T) {
	service := newTestTokenService("test-signing-key")

	t.Run("generates valid JWT token", func(t *testing.T) {
		tokenString, err := service.Generate(auth.NewIdentity("alice"))

		require.NoError(t, err)
		assert.NotEmpty(t, tokenString)

		token, err := jwt.ParseWithClaims(tokenString, &auth.Claims{}, func(token *jwt.Token) (any, error) {
			return []byte("test-signing-key"), nil
		})
		require.NoError(t, err)
		assert.True(t, token.Valid)

		claims, ok := token.Claims.(*auth.Claims)
		require.True(t, ok)
		assert.Equal(t, "alice", claims.Username())
		assert.Equal(t, testIssuer, claims.Issuer)
		assert.NotEmpty(t, claims.ID)
		assert.WithinDuration(t, time.Now().Add(time.Hour), claims.Expires(), time.Minute)
	})

	t.Run("rejects nil identity", func(t *testing.T) {
		_, err := service.Generate(nil)
		assert.Error(t, err)
	})
}

func TestTokenService_Validate(t *testing.T) {
	service := newTestTokenService("test-signing-key")

	t.Run("round-trips the principal", func(t *testing.T) {
		tokenString, err := service.Generate(auth.NewIdentity("alice"))
		require.NoError(t, err)

		claims, err := service.Validate(tokenString)
		require.NoError(t, err)
		assert.Equal(t, "alice", claims.Username())
	})

	t.Run("rejects empty string", func(t *testing.T) {
		_, err := service.Validate("")
		assert.ErrorIs(t, err, auth.ErrTokenMalformed)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := service.Validate("not.a.token")
		assert.ErrorIs(t, err, auth.ErrTokenMalformed)
	})

	t.Run("rejects token signed with a different key", func(t *testing.T) {
		other := newTestTokenService("another-signing-key")
		tokenString, err := other.Generate(auth.NewIdentity("alice"))
		require.NoError(t, err)

		_, err = service.Validate(tokenString)
		assert.ErrorIs(t, err, auth.ErrTokenMalformed)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expired := auth.NewTokenService([]byte("test-signing-key"), -time.Hour, testIssuer, nil)
		tokenString, err := expired.Generate(auth.NewIdentity("alice"))
		require.NoError(t, err)

		_, err = service.Validate(tokenString)
		assert.ErrorIs(t, err, auth.ErrTokenExpired)
	})

	t.Run("rejects unexpected signing method", func(t *testing.T) {
		// alg=none tokens must never pass the HMAC method check.
		token := jwt.NewWithClaims(jwt.SigningMethodNone, &auth.Claims{User: "alice"})
		tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = service.Validate(tokenString)
		assert.ErrorIs(t, err, auth.ErrTokenMalformed)
	})
}
