package validator

import (
	"strings"

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

// RegisterOneOf adds a tag that accepts only the given values. Unlike the
// built-in oneof it handles values containing spaces, e.g. "Conference Room A".
func (cv *CustomValidator) RegisterOneOf(tag string, allowed []string) error {
	set := make(map[string]struct{}, len(allowed))
	for _, v := range allowed {
		set[v] = struct{}{}
	}
	return cv.validator.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		_, ok := set[fl.Field().String()]
		return ok
	})
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := strings.ToLower(e.Field())
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			case "datetime":
				errors[field] = field + " must match the format YYYY-MM-DD"
			case "facility", "slot":
				errors[field] = field + " must be one of the configured values"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
