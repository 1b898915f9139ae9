package schema

import (
	"errors"
	"fmt"
)

// Kind is the shape of a declared type.
type Kind uint8

const (
	// KindStruct is a record with named fields.
	KindStruct Kind = iota
	// KindTuple is a record with positional fields only.
	KindTuple
	// KindOther is any non-record type (interfaces, named scalars, ...).
	KindOther
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindStruct:
		return "struct"
	case KindTuple:
		return "tuple"
	default:
		return "non-struct"
	}
}

type (
	// Decl is a type declaration as seen by the source loader.
	Decl struct {
		// Name is the declared type name.
		Name string
		// Kind is the declared shape.
		Kind Kind
		// TypeParams holds the names of generic type parameters, if any.
		TypeParams []string
		// Pos is a filename:line position used in diagnostics.
		Pos string
		// Fields in declaration order.
		Fields []DeclField
		// Imports maps the package names used by field types to their
		// import paths.
		Imports map[string]string
	}

	// DeclField is one declared field of a Decl.
	DeclField struct {
		// Name is the field identifier. For embedded fields it is the
		// embedded type name.
		Name string
		// Type is the declared type expression, e.g. "uint32" or "*time.Time".
		Type string
		// Tag is the unquoted raw struct tag.
		Tag string
		// Embedded reports an anonymous (embedded) field.
		Embedded bool
		// Pos is a filename:line position used in diagnostics.
		Pos string
	}

	// Field is one entry of the effective field set.
	Field struct {
		// Name is the declared field identifier.
		Name string
		// Column is the exposed name used by accessors and SQL.
		Column string
		// Type is the declared type expression.
		Type string
		// Index is the position of the field in the declaration.
		Index int
	}

	// Struct is the effective schema of one record type.
	Struct struct {
		// Name is the declared type name.
		Name string
		// Table is the default table name, Snake(Name).
		Table string
		// Pos is the position of the declaration.
		Pos string
		// Fields are the included fields in declaration order.
		Fields []*Field
		// Imports maps package names used by field types to import paths.
		Imports map[string]string
	}
)

// Renamed reports whether the exposed name differs from the declared one.
func (f *Field) Renamed() bool { return f.Column != f.Name }

// Columns returns the exposed names of all fields, in order.
func (s *Struct) Columns() []string {
	columns := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		columns[i] = f.Column
	}
	return columns
}

// Lookup returns the field exposed under the given column name.
func (s *Struct) Lookup(column string) (*Field, bool) {
	for _, f := range s.Fields {
		if f.Column == column {
			return f, true
		}
	}
	return nil, false
}

// IgnoredFunc is called for every field that carries directives beyond the
// first, effective one.
type IgnoredFunc func(typ, field string, effective Directive, ignored []Directive)

type extractConfig struct {
	key     string
	ignored IgnoredFunc
}

// ExtractOption configures Extract.
type ExtractOption func(*extractConfig)

// WithTagKey sets the struct-tag key holding the directives. Defaults to TagKey.
func WithTagKey(key string) ExtractOption {
	return func(c *extractConfig) {
		if key != "" {
			c.key = key
		}
	}
}

// WithIgnoredHook registers a callback for directives that have no effect.
func WithIgnoredHook(fn IgnoredFunc) ExtractOption {
	return func(c *extractConfig) {
		c.ignored = fn
	}
}

// Extract derives the effective schema of d.
//
// The first directive of every field decides: skip drops the field and
// rename changes its exposed name. Remaining directives are validated but
// ignored. Declaration order is kept.
func Extract(d *Decl, opts ...ExtractOption) (*Struct, error) {
	cfg := &extractConfig{key: TagKey}
	for _, opt := range opts {
		opt(cfg)
	}
	if err := checkShape(d); err != nil {
		return nil, err
	}
	s := &Struct{
		Name:    d.Name,
		Table:   Snake(d.Name),
		Pos:     d.Pos,
		Imports: d.Imports,
	}
	seen := make(map[string]string, len(d.Fields))
	for i, df := range d.Fields {
		ds, err := Directives(df.Tag, cfg.key)
		if err != nil {
			var ae *AttributeError
			if errors.As(err, &ae) {
				ae.Type, ae.Field = d.Name, df.Name
			}
			return nil, err
		}
		column := df.Name
		if len(ds) > 0 {
			if len(ds) > 1 && cfg.ignored != nil {
				cfg.ignored(d.Name, df.Name, ds[0], ds[1:])
			}
			switch ds[0].Kind {
			case DirectiveSkip:
				continue
			case DirectiveRename:
				column = ds[0].Name
			}
		}
		switch {
		case df.Name == "_":
			continue
		case df.Embedded:
			return nil, &ShapeError{Type: d.Name, Field: df.Name, Message: "embedded fields are not supported; skip the field instead"}
		}
		if prev, ok := seen[column]; ok {
			return nil, &ShapeError{
				Type:    d.Name,
				Field:   df.Name,
				Message: fmt.Sprintf("exposed name %q collides with field %s", column, prev),
			}
		}
		seen[column] = df.Name
		s.Fields = append(s.Fields, &Field{
			Name:   df.Name,
			Column: column,
			Type:   df.Type,
			Index:  i,
		})
	}
	return s, nil
}

func checkShape(d *Decl) error {
	switch {
	case d == nil:
		return &ShapeError{Message: "missing declaration"}
	case d.Kind != KindStruct:
		return &ShapeError{Type: d.Name, Message: fmt.Sprintf("%s types are not supported; only structs with named fields are", d.Kind)}
	case len(d.Fields) == 0:
		return &ShapeError{Type: d.Name, Message: "struct has no fields; only structs with named fields are supported"}
	case len(d.TypeParams) > 0:
		return &ShapeError{Type: d.Name, Message: "generic types are not supported"}
	}
	return nil
}
