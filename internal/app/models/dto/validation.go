package dto

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate checks a request payload against its validate tags.
func Validate(obj interface{}) error {
	return validate.Struct(obj)
}

// HandleValidationError converts a validator error into an ErrorDetail
func HandleValidationError(err error) *ErrorDetail {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return NewErrorDetail(ErrorCodeValidationFailed, "Validation failed").WithDetails(err.Error())
	}

	first := validationErrors[0]
	return NewErrorDetail(ErrorCodeValidationFailed, formatValidationError(first)).WithField(first.Field())
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
