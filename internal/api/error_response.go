package api

// ErrorResponse is the global error body.
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Message string `json:"message"`
}
