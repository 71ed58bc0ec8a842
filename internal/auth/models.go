package auth

import "errors"

var ErrInvalidCredentials = errors.New("wrong email or password")

// ValidationError is a rejected registration or login form. Message is shown to the caller as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type RegisterRequest struct {
	Email           string `json:"email" validate:"required,gmail"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,gmail"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponse struct {
	Message   string `json:"message"`
	Token     string `json:"token,omitempty"`
	ExpiresAt int64  `json:"expires_at,omitempty"`
}
