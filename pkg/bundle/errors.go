package bundle

import (
	"fmt"
	"strings"
)

// MissingFieldError reports required bundle fields that were absent.
type MissingFieldError struct {
	Missing []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("mandatory bundle fields not found: %s", strings.Join(e.Missing, ", "))
}

// ShapeError reports fields whose shapes are not mutually broadcastable, or
// a malformed field shape.
type ShapeError struct {
	Field  string
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
}

// DomainError reports physically invalid input values, e.g. negative
// salinity or depth.
type DomainError struct {
	Field  string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
}
