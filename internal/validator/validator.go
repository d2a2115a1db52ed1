package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

const (
	ErrRequired  = "is required"
	ErrMaxLength = "must be at most %s characters long"
	ErrMinLength = "must be at least %s characters long"
	ErrGte       = "must be greater than or equal to %s"
	ErrLte       = "must be less than or equal to %s"
	ErrInvalid   = "is invalid"
)

func NewValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "min":
		return fmt.Sprintf(ErrMinLength, err.Param())
	case "max":
		return fmt.Sprintf(ErrMaxLength, err.Param())
	case "gte":
		return fmt.Sprintf(ErrGte, err.Param())
	case "lte":
		return fmt.Sprintf(ErrLte, err.Param())
	default:
		return ErrInvalid
	}
}
