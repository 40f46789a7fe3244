package store

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when an update, delete, or lookup references an
// id with no matching entity in the collection.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a field whose value falls outside its closed
// enum set.
type ValidationError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: must be one of %s", e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

func invalidEnum(field, value string, allowed ...string) error {
	return &ValidationError{Field: field, Value: value, Allowed: allowed}
}
