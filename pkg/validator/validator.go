package validator

import (
	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(),
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FormatValidationErrors maps field errors to user-facing Spanish
// messages for the flash notice.
func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " es obligatorio"
			case "min":
				errors[field] = field + " debe ser como mínimo " + e.Param()
			case "gte":
				errors[field] = field + " debe ser mayor o igual a " + e.Param()
			default:
				errors[field] = field + " no es válido"
			}
		}
	}

	return errors
}
