package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	validatorPlatform "addressbook/internal/platform/validator"
)

type playgroundValidator struct {
	validate *validator.Validate
}

// NewPlaygroundAdapter reports fields under their yaml names, so errors
// read the same whether a request came from the shell or an import file.
func NewPlaygroundAdapter() validatorPlatform.Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(yamlFieldName)

	return &playgroundValidator{
		validate: validate,
	}
}

func yamlFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return strings.ToLower(field.Name)
	default:
		return name
	}
}

func (v *playgroundValidator) Validate(s any) error {
	if err := v.validate.Struct(s); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			outErrors := make([]validatorPlatform.FieldError, len(validationErrors))
			for i, fe := range validationErrors {
				outErrors[i] = validatorPlatform.FieldError{
					Field:   fe.Field(),
					Message: getValidationErrorMessage(fe),
				}
			}
			return validatorPlatform.ValidationError{Errors: outErrors}
		}
		return err
	}
	return nil
}

func getValidationErrorMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", e.Tag())
	}
}
