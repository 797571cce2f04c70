// AngelaMos | 2026
// jwt_test.go

package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/user-api/internal/auth"
	"github.com/carterperez-dev/user-api/internal/config"
	"github.com/carterperez-dev/user-api/internal/core"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestManager(t *testing.T, expire time.Duration) *auth.JWTManager {
	t.Helper()

	manager, err := auth.NewJWTManager(config.JWTConfig{
		Secret:      testSecret,
		TokenExpire: expire,
		Issuer:      "user-api",
		Audience:    "user-api-clients",
	})
	require.NoError(t, err)
	return manager
}

func TestNewJWTManager_RequiresSecret(t *testing.T) {
	_, err := auth.NewJWTManager(config.JWTConfig{})
	require.Error(t, err)
}

func TestJWTManager_RoundTrip(t *testing.T) {
	manager := newTestManager(t, time.Hour)

	token, err := manager.CreateToken(auth.TokenClaims{
		UserID: 42,
		Email:  "alice@example.com",
		Role:   "Administrador",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.UserID)
	require.Equal(t, "alice@example.com", claims.Email)
	require.Equal(t, "Administrador", claims.Role)
}

func TestJWTManager_ExpiredToken(t *testing.T) {
	manager := newTestManager(t, -time.Minute)

	token, err := manager.CreateToken(auth.TokenClaims{
		UserID: 1,
		Email:  "bob@example.com",
		Role:   "Usuario",
	})
	require.NoError(t, err)

	_, err = manager.VerifyToken(context.Background(), token)
	require.ErrorIs(t, err, core.ErrTokenExpired)
}

func TestJWTManager_TamperedToken(t *testing.T) {
	manager := newTestManager(t, time.Hour)

	token, err := manager.CreateToken(auth.TokenClaims{
		UserID: 1,
		Email:  "bob@example.com",
		Role:   "Usuario",
	})
	require.NoError(t, err)

	_, err = manager.VerifyToken(context.Background(), token+"x")
	require.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestJWTManager_WrongKey(t *testing.T) {
	manager := newTestManager(t, time.Hour)

	other, err := auth.NewJWTManager(config.JWTConfig{
		Secret:      "ffffffffffffffffffffffffffffffff",
		TokenExpire: time.Hour,
		Issuer:      "user-api",
		Audience:    "user-api-clients",
	})
	require.NoError(t, err)

	token, err := manager.CreateToken(auth.TokenClaims{
		UserID: 1,
		Email:  "bob@example.com",
		Role:   "Usuario",
	})
	require.NoError(t, err)

	_, err = other.VerifyToken(context.Background(), token)
	require.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestJWTManager_Garbage(t *testing.T) {
	manager := newTestManager(t, time.Hour)

	_, err := manager.VerifyToken(context.Background(), "not.a.token")
	require.ErrorIs(t, err, core.ErrTokenInvalid)
	require.False(t, errors.Is(err, core.ErrTokenExpired))
}
