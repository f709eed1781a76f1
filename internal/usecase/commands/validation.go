package commands

import (
	"errors"
	"fmt"
	"strings"

	"car-rental/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	messages := make([]string, 0, len(v))
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type inputValidator struct {
	validate *validator.Validate
}

func newInputValidator() *inputValidator {
	return &inputValidator{validate: validator.New()}
}

// Struct marks the result with ErrMissingFields when any required field is absent,
// otherwise with ErrInvalidInput.
func (v *inputValidator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errs.Mark(err, errs.ErrInvalidInput)
	}

	translated, missing := translateValidationErrors(fieldErrs)
	if missing {
		return errs.Mark(translated, errs.ErrMissingFields)
	}
	return errs.Mark(translated, errs.ErrInvalidInput)
}

func translateValidationErrors(fieldErrs validator.ValidationErrors) (ValidationErrors, bool) {
	var out ValidationErrors
	missing := false

	for _, fe := range fieldErrs {
		message := fe.Error()
		switch fe.Tag() {
		case "required":
			missing = true
			message = fmt.Sprintf("%s is required", fe.Field())
		case "email":
			message = fmt.Sprintf("%s must be a valid email address", fe.Field())
		case "uuid":
			message = fmt.Sprintf("%s must be a valid UUID", fe.Field())
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
		case "gte":
			message = fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
		}
		out = append(out, ValidationError{Field: fe.Field(), Message: message})
	}
	return out, missing
}
