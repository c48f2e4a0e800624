package filterql

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNoBackend is returned by every entry point when no filter backend has
// been registered. Backends register themselves on import, so the usual fix
// is a blank import:
//
//	import _ "github.com/taobojlen/filterql/rulefilter"
var ErrNoBackend = errors.New(`filterql: no filter backend registered (blank-import a backend package such as "github.com/taobojlen/filterql/rulefilter")`)

// TypeMappingError is returned when a value that is not a recognized filter
// rule kind is passed to Lookup or Register, or when no GraphQL type is
// registered for a kind at synthesis time. It indicates a configuration
// error and should fail the schema build loudly.
type TypeMappingError struct {
	Kind Kind
}

// Error returns the error string.
func (e *TypeMappingError) Error() string {
	if !e.Kind.Valid() {
		return fmt.Sprintf("filterql: %d is not a filter rule kind", e.Kind)
	}
	return fmt.Sprintf("filterql: no GraphQL type registered for filter rule kind %q", e.Kind)
}

// IsTypeMappingError returns true if the error is a TypeMappingError.
func IsTypeMappingError(err error) bool {
	if err == nil {
		return false
	}
	var e *TypeMappingError
	return errors.As(err, &e)
}

// FieldErrors maps a filter field name to the validation messages reported
// for it.
type FieldErrors map[string][]string

// Add appends a message to the given field.
func (e FieldErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Fields returns the field names with errors, sorted.
func (e FieldErrors) Fields() []string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// ValidationError is returned when client-supplied filter data fails the
// specification's validation rules. It carries the backend's field-level
// messages verbatim and is intended to surface to the API caller as a
// request-level error, not a server fault.
type ValidationError struct {
	Errors FieldErrors
}

// Error returns the error string.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("filterql: invalid filter input")
	for _, f := range e.Errors.Fields() {
		for _, msg := range e.Errors[f] {
			fmt.Fprintf(&sb, "; %s: %s", f, msg)
		}
	}
	return sb.String()
}

// NewValidationError returns a new ValidationError with the given field
// errors.
func NewValidationError(errs FieldErrors) *ValidationError {
	return &ValidationError{Errors: errs}
}

// IsValidationError returns true if the error is a ValidationError.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	var e *ValidationError
	return errors.As(err, &e)
}
