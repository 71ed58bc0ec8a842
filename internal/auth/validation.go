package auth

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var gmailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@gmail\.com$`)

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("gmail", func(fl validator.FieldLevel) bool {
		return gmailPattern.MatchString(fl.Field().String())
	})
	return v
}

// formMessages maps failed validation tags to the text returned to the caller.
type formMessages struct {
	required string
	byTag    map[string]string
}

var (
	registerMessages = formMessages{
		required: "All parameters (email, password, confirm password) are required!",
		byTag: map[string]string{
			"gmail":   "Invalid email format. Only @gmail.com allowed!",
			"min":     "Password length must be at least 8 characters!",
			"eqfield": "Confirm password doesn't match the password above!",
		},
	}

	loginMessages = formMessages{
		required: "Email & password are required!",
		byTag: map[string]string{
			"gmail": "Invalid email format. Only @gmail.com allowed!",
			"min":   "Password length must be at least 8 characters!",
		},
	}
)

// toValidationError reports a missing field first, then the first failing rule in field order.
func (m formMessages) toValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return &ValidationError{Message: m.required}
		}
	}

	for _, fe := range fieldErrs {
		if msg, ok := m.byTag[fe.Tag()]; ok {
			return &ValidationError{Message: msg}
		}
	}

	return &ValidationError{Message: fieldErrs[0].Error()}
}
