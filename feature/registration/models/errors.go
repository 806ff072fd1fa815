package models

import "fmt"

// ValidationError reports a single form cell whose value failed validation.
// Field names the cell within its participant group; the row mapper wraps
// the error with the group's position so operators can locate the cell on
// the sheet.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Err: fmt.Errorf(format, args...)}
}
