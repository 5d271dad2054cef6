package dto

import (
	"time"

	"github.com/brevetti-digital/backend/internal/model"
)

type CreateUserRequest struct {
	FirstName string `json:"first_name" binding:"required,min=2,max=50"`
	LastName  string `json:"last_name" binding:"required,min=2,max=50"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8,max=100"`
	Role      string `json:"role" binding:"required,oneof=ADMINISTRATOR STANDARD_USER"`
	Active    *bool  `json:"active" binding:"omitempty"`
}

type UpdateUserRequest struct {
	FirstName string `json:"first_name" binding:"omitempty,min=2,max=50"`
	LastName  string `json:"last_name" binding:"omitempty,min=2,max=50"`
	Email     string `json:"email" binding:"omitempty,email"`
	Password  string `json:"password" binding:"omitempty,min=8,max=100"`
	Role      string `json:"role" binding:"omitempty,oneof=ADMINISTRATOR STANDARD_USER"`
	Active    *bool  `json:"active" binding:"omitempty"`
}

// UserResponse never carries the password hash
type UserResponse struct {
	ID           uint       `json:"id"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	Active       bool       `json:"active"`
	LastAccessAt *time.Time `json:"last_access_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// NewUserResponse strips sensitive fields from a user record
func NewUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		Role:         string(user.Role),
		Active:       user.Active,
		LastAccessAt: user.LastAccessAt,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

// NewUserResponses maps a page of user records
func NewUserResponses(users []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}

// UserFilter holds the optional list filters for GET /users
type UserFilter struct {
	Role   string `form:"role" binding:"omitempty,oneof=ADMINISTRATOR STANDARD_USER"`
	Active *bool  `form:"active"`
	Search string `form:"search"`
}
