package apperror

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// FromValidation maps a request-validation failure to the parameter
// taxonomy, reporting the first offending field.
func FromValidation(err error) *AppError {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return MissingParameter(fieldErrs[0].Field())
	}
	return MissingParameter("request body")
}
