package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches every ValidationError.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound matches every NotFoundError.
	ErrNotFound = errors.New("not found")
)

// Fields reported in ValidationError.
const (
	FieldName     = "name"
	FieldPhone    = "phone"
	FieldBirthday = "birthday"
)

// ValidationError reports input that does not have the required shape.
type ValidationError struct {
	Field string
	Value string
	Hint  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Hint)
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Kinds reported in NotFoundError.
const (
	KindContact = "contact"
	KindPhone   = "phone number"
)

// NotFoundError reports a contact or phone number that does not exist.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.Key)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
