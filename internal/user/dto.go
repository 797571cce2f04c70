// AngelaMos | 2026
// dto.go

package user

type CreateUserRequest struct {
	Email    string `json:"email"     validate:"required,email,max=255"`
	FullName string `json:"full_name" validate:"required,min=3,max=100"`
	Password string `json:"password"  validate:"required,min=8,max=128"`
	RoleID   *int   `json:"id_role"   validate:"omitempty,oneof=1 2"`
}

type UpdateFullNameRequest struct {
	FullName string `json:"full_name" validate:"required,min=3,max=100"`
}

type UpdateRoleRequest struct {
	RoleID int `json:"id_role" validate:"required,oneof=1 2"`
}

type UserResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// CreatedUserResponse deliberately omits the generated id: creation echoes
// only the non-sensitive identity the caller already supplied.
type CreatedUserResponse struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

type UpdatedFullNameResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
}

type UpdatedRoleResponse struct {
	ID     int64 `json:"id"`
	RoleID int   `json:"id_role"`
}

func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     u.RoleName,
	}
}

func ToUserResponseList(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToUserResponse(&u))
	}
	return responses
}
