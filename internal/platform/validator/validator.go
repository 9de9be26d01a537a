package validator

import (
	"fmt"
	"strings"
)

type FieldError struct {
	Field   string
	Message string
}

func (fe FieldError) Error() string {
	return fmt.Sprintf("%s %s", fe.Field, fe.Message)
}

type ValidationError struct {
	Errors []FieldError
}

func (ve ValidationError) Error() string {
	errs := make([]string, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		errs = append(errs, fe.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(errs, ", "))
}

// Validator checks the struct tags of shell requests and configuration.
type Validator interface {
	Validate(s any) error
}
