package contact

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidContact   = errors.New("invalid contact")
	ErrDuplicateContact = errors.New("duplicate contact")
	ErrContactNotFound  = errors.New("contact not found")
	ErrInvalidField     = errors.New("invalid field")
)

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidContact
}

type DuplicateContactError struct {
	FullName string
}

func (e *DuplicateContactError) Error() string {
	return fmt.Sprintf("contact '%s' already exists", e.FullName)
}

func (e *DuplicateContactError) Is(target error) bool {
	return target == ErrDuplicateContact
}

type NotFoundError struct {
	FullName  string
	Operation string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: contact '%s' not found", e.Operation, e.FullName)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrContactNotFound
}

type InvalidFieldError struct {
	Field string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("cannot sort by '%s': expected one of city, state, zip", e.Field)
}

func (e *InvalidFieldError) Is(target error) bool {
	return target == ErrInvalidField
}
