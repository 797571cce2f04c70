// AngelaMos | 2026
// entity.go

package user

import (
	"time"
)

// Role is the closed privilege enumeration backing the user_roles table.
// IDs are stable reference data seeded outside this service.
type Role int

const (
	RoleStandard Role = 1
	RoleAdmin    Role = 2
)

const (
	RoleNameStandard = "Usuario"
	RoleNameAdmin    = "Administrador"
)

func (r Role) Valid() bool {
	return r == RoleStandard || r == RoleAdmin
}

func (r Role) Name() string {
	switch r {
	case RoleStandard:
		return RoleNameStandard
	case RoleAdmin:
		return RoleNameAdmin
	default:
		return ""
	}
}

type User struct {
	ID           int64     `db:"id"`
	Email        string    `db:"email"`
	FullName     string    `db:"full_name"`
	PasswordHash string    `db:"password_hash"`
	RoleID       Role      `db:"role_id"`
	RoleName     string    `db:"role_name"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.RoleID == RoleAdmin
}
