package application

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/bnema/files-billing-cli/internal/domain"
	"github.com/go-playground/validator/v10"
)

var commandValidator = newCommandValidator()

func newCommandValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		if name := field.Tag.Get("field"); name != "" {
			return name
		}
		return field.Name
	})
	return v
}

// validateCommand reports the first failing field as a domain validation
// error named after the command's `field` tag.
func validateCommand(cmd any) error {
	err := commandValidator.Struct(cmd)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate command: %w", err)
	}

	first := fieldErrs[0]
	return domain.ValidationError(first.Field(), validationMessage(first))
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
