package schema

import (
	"errors"
	"strings"
)

// Sentinel errors matched by the structured errors below.
var (
	// ErrInvalidAttribute indicates an unrecognized or malformed field directive.
	ErrInvalidAttribute = errors.New("sqlbinder: invalid field attribute")
	// ErrUnsupportedShape indicates a declaration that is not a plain named-field struct.
	ErrUnsupportedShape = errors.New("sqlbinder: unsupported type shape")
)

// AttributeError reports a directive that could not be parsed.
type AttributeError struct {
	Type    string // Declaring type, if known.
	Field   string // Field name, if known.
	Text    string // Offending directive or tag text.
	Message string
}

// Error implements the error interface.
func (e *AttributeError) Error() string {
	var b strings.Builder
	b.WriteString("sqlbinder: ")
	writeOwner(&b, e.Type, e.Field)
	b.WriteString(e.Message)
	if e.Text != "" {
		b.WriteString(": '")
		b.WriteString(e.Text)
		b.WriteString("'")
	}
	return b.String()
}

// Is reports whether the target matches ErrInvalidAttribute.
func (e *AttributeError) Is(target error) bool {
	return target == ErrInvalidAttribute
}

// ShapeError reports a declaration the extractor cannot handle.
type ShapeError struct {
	Type    string
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	var b strings.Builder
	b.WriteString("sqlbinder: ")
	writeOwner(&b, e.Type, e.Field)
	b.WriteString(e.Message)
	return b.String()
}

// Is reports whether the target matches ErrUnsupportedShape.
func (e *ShapeError) Is(target error) bool {
	return target == ErrUnsupportedShape
}

func writeOwner(b *strings.Builder, typ, field string) {
	switch {
	case typ != "" && field != "":
		b.WriteString(typ + "." + field + ": ")
	case typ != "":
		b.WriteString(typ + ": ")
	case field != "":
		b.WriteString(field + ": ")
	}
}
