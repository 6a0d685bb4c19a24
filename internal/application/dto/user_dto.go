package dto

import "github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/entity"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,alphanum,min=3,max=50"`
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Password string `json:"password" validate:"required,min=6"`
}

// UpdateUserRequest entrada para actualizar nombre y/o contraseña.
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}

// ToggleUserRequest body de PUT /api/users/toggle/:username.
type ToggleUserRequest struct {
	IsActive bool `json:"is_active"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	Username    string `json:"username"`
	Name        string `json:"name"`
	IsActive    bool   `json:"is_active"`
	Role        int    `json:"role"`
	CreatedDate string `json:"created_date"`
	UpdatedDate string `json:"updated_date"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ChangePasswordRequest body de POST /api/auth/change-password.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6,nefield=OldPassword"`
}

// ToUserResponse mapea un usuario.
func ToUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		Username:    u.Username,
		Name:        u.Name,
		IsActive:    u.IsActive,
		Role:        u.Role,
		CreatedDate: formatDateTime(u.CreatedAt),
		UpdatedDate: formatDateTime(u.UpdatedAt),
	}
}

// ToUserResponses mapea una lista de usuarios.
func ToUserResponses(list []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *ToUserResponse(u))
	}
	return out
}
