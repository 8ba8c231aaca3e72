package listresource

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrMissingID     = errors.New("missing identifier")
	ErrNotConfirmed  = errors.New("delete not confirmed")
	ErrReadOnly      = errors.New("resource is read-only")
	ErrStale         = errors.New("stale response discarded")
	ErrClosed        = errors.New("resource closed")
	ErrDraftClosed   = errors.New("draft already saved or cancelled")
	ErrInvalidStatus = errors.New("invalid status")
)

// ValidationError reports the first required field that failed a non-empty check.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("%s is required", e.Field)
}

// Field is a named string value checked by Required.
type Field struct {
	Name  string
	Value string
}

// Required returns a *ValidationError for the first blank field, or nil.
func Required(fields ...Field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			return &ValidationError{Field: f.Name}
		}
	}
	return nil
}

// OneOf checks that value is a member of allowed.
func OneOf(field, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return &ValidationError{Field: field, Message: fmt.Sprintf("must be one of %s", strings.Join(allowed, ", "))}
}
