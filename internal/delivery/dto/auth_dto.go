package dto

// LoginRequest carries the login form fields.
type LoginRequest struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}
