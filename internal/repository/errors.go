package repository

import (
	"fmt"
)

// InvalidValueError represents a stored value that cannot be mapped back to the domain model
type InvalidValueError struct {
	Resource string
	Field    string
	Value    string
	Err      error
}

// Error implements the error interface
func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s has invalid %s value %q", e.Resource, e.Field, e.Value)
}

// Unwrap returns the underlying decoding error
func (e *InvalidValueError) Unwrap() error {
	return e.Err
}
