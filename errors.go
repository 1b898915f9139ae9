package sqlbinder

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by the structured errors below.
var (
	// ErrFieldNotFound is returned when a value is requested by a name that
	// is not an exposed field of the record.
	ErrFieldNotFound = errors.New("sqlbinder: field not found")

	// ErrColumnNotFound is returned when a statement refers to a key column
	// that is not in the record's field set.
	ErrColumnNotFound = errors.New("sqlbinder: column not found")
)

// FieldNotFoundError is returned by the generated FieldValue accessor.
type FieldNotFoundError struct {
	Type string
	Name string
}

// Error returns the error string.
func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("sqlbinder: field '%s' not found in %s", e.Name, e.Type)
}

// Is reports whether the target error matches FieldNotFoundError.
func (e *FieldNotFoundError) Is(err error) bool {
	return err == ErrFieldNotFound
}

// NewFieldNotFoundError returns a new FieldNotFoundError for the given type and name.
func NewFieldNotFoundError(typ, name string) *FieldNotFoundError {
	return &FieldNotFoundError{Type: typ, Name: name}
}

// IsFieldNotFound returns true if the error is a FieldNotFoundError.
func IsFieldNotFound(err error) bool {
	if err == nil {
		return false
	}
	var e *FieldNotFoundError
	return errors.As(err, &e) || errors.Is(err, ErrFieldNotFound)
}

// ColumnNotFoundError is returned when a primary key is not among the columns.
type ColumnNotFoundError struct {
	Name string
}

// Error returns the error string.
func (e *ColumnNotFoundError) Error() string {
	return "sqlbinder: no column found for name: " + e.Name
}

// Is reports whether the target error matches ColumnNotFoundError.
func (e *ColumnNotFoundError) Is(err error) bool {
	return err == ErrColumnNotFound
}

// NewColumnNotFoundError returns a new ColumnNotFoundError for the given name.
func NewColumnNotFoundError(name string) *ColumnNotFoundError {
	return &ColumnNotFoundError{Name: name}
}

// IsColumnNotFound returns true if the error is a ColumnNotFoundError.
func IsColumnNotFound(err error) bool {
	if err == nil {
		return false
	}
	var e *ColumnNotFoundError
	return errors.As(err, &e) || errors.Is(err, ErrColumnNotFound)
}
