// AngelaMos | 2026
// handler_test.go

package user_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/user-api/internal/core"
	"github.com/carterperez-dev/user-api/internal/user"
)

type fakeRepo struct {
	users  map[int64]*user.User
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: map[int64]*user.User{}, nextID: 1}
}

func (f *fakeRepo) List(_ context.Context) ([]user.User, error) {
	users := make([]user.User, 0, len(f.users))
	for _, u := range f.users {
		users = append(users, *u)
	}
	return users, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	return u, nil
}

func (f *fakeRepo) GetByEmail(
	_ context.Context,
	email string,
) (*user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
}

func (f *fakeRepo) Create(_ context.Context, u *user.User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return fmt.Errorf("create user: %w", core.ErrDuplicateKey)
		}
	}

	u.ID = f.nextID
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	f.nextID++

	stored := *u
	f.users[u.ID] = &stored
	return nil
}

func (f *fakeRepo) UpdateFullName(
	_ context.Context,
	id int64,
	fullName string,
) error {
	u, ok := f.users[id]
	if !ok {
		return fmt.Errorf("update full name: %w", core.ErrNotFound)
	}
	u.FullName = fullName
	return nil
}

func (f *fakeRepo) UpdateRole(
	_ context.Context,
	id int64,
	role user.Role,
) error {
	u, ok := f.users[id]
	if !ok {
		return fmt.Errorf("update role: %w", core.ErrNotFound)
	}
	u.RoleID = role
	u.RoleName = role.Name()
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return fmt.Errorf("delete user: %w", core.ErrNotFound)
	}
	delete(f.users, id)
	return nil
}

func passthrough(next http.Handler) http.Handler {
	return next
}

func newTestRouter(repo user.Repository) chi.Router {
	handler := user.NewHandler(user.NewService(repo))

	router := chi.NewRouter()
	router.Route("/users", func(r chi.Router) {
		handler.RegisterRoutes(r, passthrough, passthrough, passthrough)
	})
	return router
}

func seedUser(t *testing.T, repo *fakeRepo, email, fullName string) *user.User {
	t.Helper()

	u := &user.User{
		Email:        email,
		FullName:     fullName,
		PasswordHash: "$2a$10$hash",
		RoleID:       user.RoleStandard,
		RoleName:     user.RoleNameStandard,
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func doJSON(
	t *testing.T,
	router chi.Router,
	method, path string,
	body any,
) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestListUsers(t *testing.T) {
	repo := newFakeRepo()
	seedUser(t, repo, "alice@example.com", "Alice Johnson")
	router := newTestRouter(repo)

	rec := doJSON(t, router, http.MethodGet, "/users/", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"alice@example.com"`)
	require.Contains(t, rec.Body.String(), `"success":true`)
}

func TestGetUser_NonNumericID(t *testing.T) {
	router := newTestRouter(newFakeRepo())

	rec := doJSON(t, router, http.MethodGet, "/users/abc", nil)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Contains(t, rec.Body.String(), `"VALIDATION_ERROR"`)
}

func TestGetUser_NotFound(t *testing.T) {
	router := newTestRouter(newFakeRepo())

	rec := doJSON(t, router, http.MethodGet, "/users/999", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), `"NOT_FOUND"`)
}

func TestCreateUser_DefaultsToStandardRole(t *testing.T) {
	router := newTestRouter(newFakeRepo())

	rec := doJSON(t, router, http.MethodPost, "/users/", map[string]any{
		"email":     "carol@example.com",
		"full_name": "Carol Diaz",
		"password":  "secret12",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), `"Usuario"`)
	require.NotContains(t, rec.Body.String(), "password")
	require.NotContains(t, rec.Body.String(), `"id"`)
}

func TestCreateUser_ExplicitAdminRole(t *testing.T) {
	router := newTestRouter(newFakeRepo())

	rec := doJSON(t, router, http.MethodPost, "/users/", map[string]any{
		"email":     "carol@example.com",
		"full_name": "Carol Diaz",
		"password":  "secret12",
		"id_role":   2,
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), `"Administrador"`)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	repo := newFakeRepo()
	seedUser(t, repo, "carol@example.com", "Carol Diaz")
	router := newTestRouter(repo)

	rec := doJSON(t, router, http.MethodPost, "/users/", map[string]any{
		"email":     "carol@example.com",
		"full_name": "Carol Diaz",
		"password":  "secret12",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), `"DUPLICATE_EMAIL"`)
}

func TestCreateUser_ValidationFailures(t *testing.T) {
	router := newTestRouter(newFakeRepo())

	tests := []struct {
		name string
		body map[string]any
	}{
		{"bad email", map[string]any{
			"email": "not-an-email", "full_name": "Carol Diaz",
			"password": "secret12",
		}},
		{"short name", map[string]any{
			"email": "c@example.com", "full_name": "ab",
			"password": "secret12",
		}},
		{"short password", map[string]any{
			"email": "c@example.com", "full_name": "Carol Diaz",
			"password": "short",
		}},
		{"unknown role", map[string]any{
			"email": "c@example.com", "full_name": "Carol Diaz",
			"password": "secret12", "id_role": 3,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/users/", tt.body)
			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		})
	}
}

func TestUpdateFullName(t *testing.T) {
	repo := newFakeRepo()
	seedUser(t, repo, "alice@example.com", "Alice Johnson")
	router := newTestRouter(repo)

	rec := doJSON(t, router, http.MethodPatch, "/users/updateName/1",
		map[string]any{"full_name": "Alice Cooper"})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"Alice Cooper"`)
	require.Equal(t, "Alice Cooper", repo.users[1].FullName)
}

func TestUpdateFullName_NotFound(t *testing.T) {
	router := newTestRouter(newFakeRepo())

	rec := doJSON(t, router, http.MethodPatch, "/users/updateName/999",
		map[string]any{"full_name": "Alice Cooper"})

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateRole(t *testing.T) {
	repo := newFakeRepo()
	seedUser(t, repo, "alice@example.com", "Alice Johnson")
	router := newTestRouter(repo)

	rec := doJSON(t, router, http.MethodPatch, "/users/updateRole/1",
		map[string]any{"id_role": 2})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, user.RoleAdmin, repo.users[1].RoleID)
}

func TestUpdateRole_UnknownRole(t *testing.T) {
	repo := newFakeRepo()
	seedUser(t, repo, "alice@example.com", "Alice Johnson")
	router := newTestRouter(repo)

	rec := doJSON(t, router, http.MethodPatch, "/users/updateRole/1",
		map[string]any{"id_role": 3})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Equal(t, user.RoleStandard, repo.users[1].RoleID)
}

func TestDeleteUser(t *testing.T) {
	repo := newFakeRepo()
	seedUser(t, repo, "alice@example.com", "Alice Johnson")
	router := newTestRouter(repo)

	rec := doJSON(t, router, http.MethodDelete, "/users/1", nil)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())
	require.Empty(t, repo.users)
}

func TestDeleteUser_NotFound(t *testing.T) {
	router := newTestRouter(newFakeRepo())

	rec := doJSON(t, router, http.MethodDelete, "/users/999", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
