package dto

import "github.com/Javohir0411/global-school/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents a user registration request. The account is
// linked either to an admin or a teacher record depending on the role.
type RegisterRequest struct {
	Username  string          `json:"username" binding:"required,min=3"`
	Password  string          `json:"password" binding:"required,min=8"`
	Role      models.RoleType `json:"role" binding:"required,oneof=admin teacher"`
	AdminID   *int64          `json:"admin_id" binding:"omitempty,min=1"`
	TeacherID *int64          `json:"teacher_id" binding:"omitempty,min=1"`
}

// RefreshTokenRequest represents refresh token request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type" example:"Bearer"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  *UserResponse `json:"user"`
}

// UserResponse represents basic user account information
type UserResponse struct {
	ID        int64           `json:"id"`
	Username  string          `json:"username"`
	Role      models.RoleType `json:"role"`
	AdminID   *int64          `json:"admin_id,omitempty"`
	TeacherID *int64          `json:"teacher_id,omitempty"`
}

// UpdateUserRequest represents user account update data; nil fields are kept
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty" binding:"omitempty,min=3"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=8"`
}
