package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// DuplicateError reports a uniqueness-constraint violation on a specific
// field (email, studentId, phone).
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate %s", e.Field)
}

// DuplicateField returns the violated field name when err is a
// DuplicateError, or "" otherwise.
func DuplicateField(err error) string {
	var de *DuplicateError
	if errors.As(err, &de) {
		return de.Field
	}
	return ""
}
