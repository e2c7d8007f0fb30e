// Package spec parses a domain name and a compact field-list string into
// the validated intermediate representation the planner and templates
// consume. Parsing is all-or-nothing: any invalid entry aborts the whole
// spec and no partial result is returned.
package spec

import (
	"errors"
	"fmt"
)

// Sentinel errors for spec parsing.
var (
	// ErrInvalidDomainName indicates a domain name outside [a-zA-Z0-9_]
	// or one that does not start with a letter.
	ErrInvalidDomainName = errors.New("spec: invalid domain name")

	// ErrMalformedField indicates a field entry without exactly one colon.
	ErrMalformedField = errors.New("spec: malformed field entry")

	// ErrDuplicateField indicates the same field name declared twice.
	ErrDuplicateField = errors.New("spec: duplicate field name")

	// ErrReservedWord indicates a name that is a Go keyword and would be
	// unusable as an identifier in a generated layer.
	ErrReservedWord = errors.New("spec: name is a reserved word")
)

// FieldError carries field context for a type-resolution failure.
// It unwraps to catalog.ErrUnknownFieldType.
type FieldError struct {
	Field string
	Type  string
	Err   error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Field, e.Err)
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}
