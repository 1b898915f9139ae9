package gen

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dave/jennifer/jen"
	"github.com/go-openapi/inflect"

	"github.com/syssam/sqlbinder/schema"
)

// The following types are what the synthesizer renders.
type (
	// Graph holds the bindable types of one Go package.
	Graph struct {
		*Config
		// Nodes are the types in the order they were given.
		Nodes []*Type
	}

	// Type is one struct type and its effective field set.
	Type struct {
		*schema.Struct
		// Fields are the included fields, in declaration order.
		Fields []*Field
	}

	// Field is one included field of a Type.
	Field struct {
		*schema.Field
		// Variant is the Go identifier suffix shared by the carrier type
		// and the column constant of the field.
		Variant string
		typ     jen.Code
		clone   string
		shared  bool
	}
)

// generatedMethods are the methods added to every bound type. A struct field
// with one of these names would not compile.
var generatedMethods = []string{
	"StructName",
	"StructNameSnake",
	"FieldNames",
	"FieldValues",
	"FieldValue",
	"Insert",
	"InsertQuery",
	"Update",
	"UpdateQuery",
	"binderRow",
}

// NewGraph extracts the effective schema of every declaration. Errors of all
// declarations are collected; any error leaves the graph empty.
func NewGraph(c *Config, decls ...*schema.Decl) (*Graph, error) {
	if c == nil {
		return nil, NewConfigError("Config", nil, "config cannot be nil")
	}
	var (
		errs   []error
		g      = &Graph{Config: c}
		names  = make(map[string]bool, len(decls))
		files  = make(map[string]string, len(decls))
		owners = make(map[string]string)
	)
	for _, d := range decls {
		t, err := g.newType(d)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if names[t.Name] {
			errs = append(errs, &SchemaError{Type: t.Name, Pos: t.Pos, Message: "type declared twice"})
			continue
		}
		names[t.Name] = true
		file := t.FileName(c.suffix())
		if prev, ok := files[file]; ok {
			errs = append(errs, &SchemaError{Type: t.Name, Pos: t.Pos, Message: fmt.Sprintf("generated file %s is also generated for type %s", file, prev)})
			continue
		}
		if err := claim(owners, t); err != nil {
			errs = append(errs, err)
			continue
		}
		files[file] = t.Name
		g.Nodes = append(g.Nodes, t)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return g, nil
}

func (g *Graph) newType(d *schema.Decl) (*Type, error) {
	s, err := schema.Extract(d,
		schema.WithTagKey(g.tagKey()),
		schema.WithIgnoredHook(g.warnIgnored),
	)
	if err != nil {
		se := &SchemaError{Cause: err}
		if d != nil {
			se.Type, se.Pos = d.Name, d.Pos
		}
		return nil, se
	}
	for _, f := range d.Fields {
		if slices.Contains(generatedMethods, f.Name) {
			return nil, &SchemaError{Type: d.Name, Field: f.Name, Pos: f.Pos, Message: "field name conflicts with a generated method"}
		}
	}
	t := &Type{Struct: s}
	variants := make(map[string]string, len(s.Fields))
	for _, sf := range s.Fields {
		f := &Field{Field: sf, Variant: inflect.Camelize(sf.Name)}
		if prev, ok := variants[f.Variant]; ok {
			return nil, &SchemaError{
				Type:    d.Name,
				Field:   sf.Name,
				Pos:     d.Fields[sf.Index].Pos,
				Message: fmt.Sprintf("generated name %s collides with field %s", t.FieldType(f), prev),
			}
		}
		variants[f.Variant] = sf.Name
		if f.typ, err = typeCode(sf.Type, s.Imports); err != nil {
			return nil, &SchemaError{Type: d.Name, Field: sf.Name, Pos: d.Fields[sf.Index].Pos, Message: "unsupported field type", Cause: err}
		}
		f.clone, f.shared = copyMode(sf.Type)
		t.Fields = append(t.Fields, f)
	}
	return t, nil
}

// claim records the package-level identifiers of t in owners. An identifier
// already owned by another type is an error and leaves owners unchanged.
func claim(owners map[string]string, t *Type) error {
	ids := t.identifiers()
	for _, id := range ids {
		if prev, ok := owners[id]; ok {
			return &SchemaError{Type: t.Name, Pos: t.Pos, Message: fmt.Sprintf("generated name %s collides with type %s", id, prev)}
		}
	}
	for _, id := range ids {
		owners[id] = t.Name
	}
	return nil
}

func (g *Graph) warnIgnored(typ, field string, effective schema.Directive, ignored []schema.Directive) {
	strs := make([]string, len(ignored))
	for i, d := range ignored {
		strs[i] = d.String()
	}
	g.logger().Warn("ignoring extra field directives",
		"type", typ,
		"field", field,
		"effective", effective.String(),
		"ignored", strs,
	)
}

// FileName returns the name of the generated file.
func (t *Type) FileName(suffix string) string {
	return t.Table + suffix + ".go"
}

// identifiers returns the package-level names declared by the type and its
// generated file.
func (t *Type) identifiers() []string {
	ids := []string{t.Name, t.Interface(), t.BindFunc()}
	for _, f := range t.Fields {
		ids = append(ids, t.FieldType(f), t.ColumnConst(f))
	}
	return ids
}

// Interface returns the name of the sealed field interface, e.g. DogField.
func (t *Type) Interface() string {
	return t.Name + "Field"
}

// FieldType returns the carrier type name of f, e.g. DogFieldName.
func (t *Type) FieldType(f *Field) string {
	return t.Name + "Field" + f.Variant
}

// ColumnConst returns the name of the column constant of f, e.g. DogColumnName.
func (t *Type) ColumnConst(f *Field) string {
	return t.Name + "Column" + f.Variant
}

// BindFunc returns the name of the dispatch function, e.g. BindDogField.
func (t *Type) BindFunc() string {
	return "Bind" + t.Interface()
}

// marker returns the name of the unexported method sealing the interface.
func (t *Type) marker() string {
	return "is" + t.Interface()
}
