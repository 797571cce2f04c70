// AngelaMos | 2026
// handler_test.go

package auth_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/user-api/internal/auth"
)

func newTestHandlerRouter(t *testing.T) (chi.Router, *auth.JWTManager) {
	t.Helper()

	svc, manager := newTestService(t)
	handler := auth.NewHandler(svc)

	router := chi.NewRouter()
	router.Route("/users", func(r chi.Router) {
		handler.RegisterRoutes(r)
	})
	return router, manager
}

func postJSON(
	t *testing.T,
	router chi.Router,
	path string,
	body any,
) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLoginEndpoint_Success(t *testing.T) {
	router, manager := newTestHandlerRouter(t)

	rec := postJSON(t, router, "/users/login", map[string]any{
		"email":    "alice@example.com",
		"password": "secret12",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			User  auth.UserResponse `json:"user"`
			Token string            `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.True(t, body.Success)
	require.Equal(t, "alice@example.com", body.Data.User.Email)
	require.NotEmpty(t, body.Data.Token)

	claims, err := manager.VerifyToken(context.Background(), body.Data.Token)
	require.NoError(t, err)
	require.Equal(t, int64(7), claims.UserID)
}

func TestLoginEndpoint_BadCredentials(t *testing.T) {
	router, _ := newTestHandlerRouter(t)

	rec := postJSON(t, router, "/users/login", map[string]any{
		"email":    "alice@example.com",
		"password": "wrong-password",
	})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "invalid email or password")
	require.NotContains(t, rec.Body.String(), "not found")
}

func TestLoginEndpoint_ValidationFailure(t *testing.T) {
	router, _ := newTestHandlerRouter(t)

	rec := postJSON(t, router, "/users/login", map[string]any{
		"email":    "not-an-email",
		"password": "secret12",
	})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Contains(t, rec.Body.String(), `"VALIDATION_ERROR"`)
}

func TestVerifyTokenEndpoint_Valid(t *testing.T) {
	router, manager := newTestHandlerRouter(t)

	token, err := manager.CreateToken(auth.TokenClaims{
		UserID: 7,
		Email:  "alice@example.com",
		Role:   "Administrador",
	})
	require.NoError(t, err)

	rec := postJSON(t, router, "/users/verify-token", map[string]any{
		"token": token,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"is_token_verified":true`)
}

func TestVerifyTokenEndpoint_Invalid(t *testing.T) {
	router, _ := newTestHandlerRouter(t)

	rec := postJSON(t, router, "/users/verify-token", map[string]any{
		"token": "not.a.token",
	})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), `"TOKEN_INVALID"`)
}

func TestVerifyTokenEndpoint_Expired(t *testing.T) {
	svc := auth.NewService(newTestManager(t, -time.Minute), &fakeUserProvider{})
	handler := auth.NewHandler(svc)

	router := chi.NewRouter()
	router.Route("/users", func(r chi.Router) {
		handler.RegisterRoutes(r)
	})

	manager := newTestManager(t, -time.Minute)
	token, err := manager.CreateToken(auth.TokenClaims{
		UserID: 7,
		Email:  "alice@example.com",
		Role:   "Usuario",
	})
	require.NoError(t, err)

	rec := postJSON(t, router, "/users/verify-token", map[string]any{
		"token": token,
	})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), `"TOKEN_EXPIRED"`)
}
