package dto

import (
	"time"

	"github.com/betting-platform/backend/internal/domain/entity"
)

// CreateUserRequest represents the request body for user creation. Field
// names keep the Spanish wire contract of the platform.
type CreateUserRequest struct {
	Name           string `json:"nombre" binding:"required"`
	Username       string `json:"nombre_usuario" binding:"required"`
	Email          string `json:"email" binding:"required"`
	Phone          string `json:"telefono,omitempty"`
	Password       string `json:"contrasena" binding:"required"`
	Age            string `json:"edad,omitempty"`
	InitialBalance int64  `json:"saldo_inicial,omitempty"`
	IsAdmin        bool   `json:"es_admin,omitempty"`
}

// UpdateUserRequest represents the request body for a partial user update.
// Absent fields leave the stored value untouched.
type UpdateUserRequest struct {
	Name           *string `json:"nombre,omitempty"`
	Username       *string `json:"nombre_usuario,omitempty"`
	Email          *string `json:"email,omitempty"`
	Phone          *string `json:"telefono,omitempty"`
	Password       *string `json:"contrasena,omitempty"`
	Age            *string `json:"edad,omitempty"`
	InitialBalance *int64  `json:"saldo_inicial,omitempty"`
	Active         *bool   `json:"activo,omitempty"`
	IsAdmin        *bool   `json:"es_admin,omitempty"`
}

// ChangePasswordRequest represents the request body for a password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"contrasena_actual" binding:"required"`
	NewPassword     string `json:"contrasena_nueva" binding:"required"`
}

// UserResponse represents a single user in API responses. The password hash
// never appears on the wire.
type UserResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"nombre"`
	Username       string    `json:"nombre_usuario"`
	Email          string    `json:"email"`
	Phone          string    `json:"telefono,omitempty"`
	Age            string    `json:"edad,omitempty"`
	InitialBalance int64     `json:"saldo_inicial"`
	Active         bool      `json:"activo"`
	IsAdmin        bool      `json:"es_admin"`
	CreatedAt      time.Time `json:"fecha_registro"`
	UpdatedAt      time.Time `json:"fecha_actualizacion"`
}

// UserListResponse represents the response for listing users.
type UserListResponse struct {
	Users []UserResponse `json:"usuarios"`
}

// IsAdminResponse represents the response of the admin-flag check.
type IsAdminResponse struct {
	ID      string `json:"id"`
	IsAdmin bool   `json:"es_admin"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:             user.ID.String(),
		Name:           user.Name,
		Username:       user.Username,
		Email:          user.Email,
		Phone:          user.Phone,
		Age:            user.Age,
		InitialBalance: user.InitialBalance,
		Active:         user.Active,
		IsAdmin:        user.IsAdmin,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
}

// ToUserListResponse converts a list of users to a UserListResponse.
func ToUserListResponse(users []*entity.User) UserListResponse {
	out := make([]UserResponse, len(users))
	for i, user := range users {
		out[i] = ToUserResponse(user)
	}
	return UserListResponse{Users: out}
}
