package api

// UpdateUserRequest is a partial profile patch. Every field is
// optional; empty values leave the stored value untouched.
// swagger:model api.UpdateUserRequest
type UpdateUserRequest struct {
	Name     string `json:"name" form:"name" example:"Alice Smith"`
	Image    string `json:"image" form:"image" example:"avatars/alice.png"`
	Username string `json:"username" form:"username" validate:"omitempty,min=4,max=20" example:"alice"`
	Email    string `json:"email" form:"email" validate:"omitempty,email" example:"alice@example.com"`
	Password string `json:"password" form:"password" validate:"omitempty,min=6,max=30" example:"secret2"`
}
