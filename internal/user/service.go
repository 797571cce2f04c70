// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/user-api/internal/auth"
	"github.com/carterperez-dev/user-api/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// Create hashes the password and inserts the user. The role defaults to
// standard when the request omits it; email uniqueness is enforced by the
// database index and surfaces as core.ErrDuplicateKey.
func (s *Service) Create(
	ctx context.Context,
	req CreateUserRequest,
) (*User, error) {
	role := RoleStandard
	if req.RoleID != nil {
		role = Role(*req.RoleID)
	}

	if !role.Valid() {
		return nil, fmt.Errorf(
			"create user: invalid role %d: %w",
			role,
			core.ErrInvalidInput,
		)
	}

	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	user := &User{
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: passwordHash,
		RoleID:       role,
		RoleName:     role.Name(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) UpdateFullName(
	ctx context.Context,
	id int64,
	fullName string,
) error {
	return s.repo.UpdateFullName(ctx, id, fullName)
}

func (s *Service) UpdateRole(ctx context.Context, id int64, roleID int) error {
	role := Role(roleID)
	if !role.Valid() {
		return fmt.Errorf(
			"update role: invalid role %d: %w",
			roleID,
			core.ErrInvalidInput,
		)
	}

	return s.repo.UpdateRole(ctx, id, role)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByEmail(
	ctx context.Context,
	email string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return &auth.UserInfo{
		ID:           user.ID,
		Email:        user.Email,
		FullName:     user.FullName,
		PasswordHash: user.PasswordHash,
		Role:         user.RoleName,
	}, nil
}

var _ auth.UserProvider = (*Service)(nil)
