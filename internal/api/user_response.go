package api

import (
	"time"

	"userhub/internal/model"
)

// UserResponse is the only shape a user record leaves the service in.
// It has no password field of any kind.
// swagger:model api.UserResponse
type UserResponse struct {
	ID        int       `json:"id" example:"1"`
	Username  string    `json:"username" example:"alice"`
	Email     string    `json:"email" example:"alice@example.com"`
	Name      string    `json:"name,omitempty" example:"Alice"`
	Image     string    `json:"image,omitempty" example:"avatars/alice.png"`
	IsAdmin   bool      `json:"is_admin" example:"false"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
}

// AuthUserResponse is a UserResponse plus a freshly issued token,
// returned by registration and profile update.
// swagger:model api.AuthUserResponse
type AuthUserResponse struct {
	UserResponse
	Token string `json:"token"`
}

// DeleteUserResponse acknowledges a removal.
// swagger:model api.DeleteUserResponse
type DeleteUserResponse struct {
	Removed bool `json:"removed" example:"true"`
}

// NewUserResponse projects a model.User into its public shape.
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Name:      u.Name,
		Image:     u.Image,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}
