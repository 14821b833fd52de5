package api

// RegisterUserRequest is the public registration body. There is no
// is_admin field here and never will be: new accounts are plain users.
// swagger:model api.RegisterUserRequest
type RegisterUserRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email" example:"alice@example.com"`
	Username string `json:"username" form:"username" validate:"omitempty,min=4,max=20" example:"alice"`
	Password string `json:"password" form:"password" validate:"required,min=6,max=30" example:"secret1"`
}
