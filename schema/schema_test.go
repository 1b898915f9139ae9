package schema_test

import (
	"errors"
	"testing"

	"github.com/syssam/sqlbinder/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dog() *schema.Decl {
	return &schema.Decl{
		Name: "Dog",
		Fields: []schema.DeclField{
			{Name: "Name", Type: "string"},
			{Name: "Age", Type: "uint32"},
			{Name: "LifeExpectancy", Type: "uint32"},
		},
	}
}

func TestExtract(t *testing.T) {
	s, err := schema.Extract(dog())
	require.NoError(t, err)
	assert.Equal(t, "Dog", s.Name)
	assert.Equal(t, "dog", s.Table)
	assert.Equal(t, []string{"Name", "Age", "LifeExpectancy"}, s.Columns())
	for i, f := range s.Fields {
		assert.Equal(t, i, f.Index)
		assert.False(t, f.Renamed())
	}
}

func TestExtract_Skip(t *testing.T) {
	d := &schema.Decl{
		Name: "Skipper",
		Fields: []schema.DeclField{
			{Name: "name", Type: "string"},
			{Name: "age", Type: "uint32", Tag: `sqlbinder:"skip"`},
			{Name: "sex", Type: "string", Tag: `json:"sex" sqlbinder:"skip"`},
			{Name: "life_expectancy", Type: "uint32"},
		},
	}
	s, err := schema.Extract(d)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "life_expectancy"}, s.Columns())
	assert.Equal(t, 0, s.Fields[0].Index)
	assert.Equal(t, 3, s.Fields[1].Index)
}

func TestExtract_Rename(t *testing.T) {
	d := &schema.Decl{
		Name: "User",
		Fields: []schema.DeclField{
			{Name: "ID", Type: "int64", Tag: `sqlbinder:"rename=id"`},
			{Name: "FullName", Type: "string", Tag: `json:"full_name" sqlbinder:"rename='full_name'"`},
			{Name: "Email", Type: "string", Tag: `db:"mail"`},
		},
	}
	s, err := schema.Extract(d)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "full_name", "Email"}, s.Columns())
	assert.True(t, s.Fields[0].Renamed())
	assert.Equal(t, "ID", s.Fields[0].Name)

	f, ok := s.Lookup("full_name")
	require.True(t, ok)
	assert.Equal(t, "FullName", f.Name)
	_, ok = s.Lookup("FullName")
	assert.False(t, ok)
}

func TestExtract_FirstDirectiveWins(t *testing.T) {
	type call struct {
		field     string
		effective schema.Directive
		ignored   []schema.Directive
	}
	var calls []call
	hook := schema.WithIgnoredHook(func(typ, field string, effective schema.Directive, ignored []schema.Directive) {
		assert.Equal(t, "Record", typ)
		calls = append(calls, call{field, effective, ignored})
	})
	d := &schema.Decl{
		Name: "Record",
		Fields: []schema.DeclField{
			{Name: "A", Type: "int", Tag: `sqlbinder:"rename=a,skip"`},
			{Name: "B", Type: "int", Tag: `sqlbinder:"skip,rename=b"`},
		},
	}
	s, err := schema.Extract(d, hook)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, s.Columns())
	assert.Equal(t, []call{
		{"A", schema.Rename("a"), []schema.Directive{schema.Skip()}},
		{"B", schema.Skip(), []schema.Directive{schema.Rename("b")}},
	}, calls)
}

func TestExtract_CustomTagKey(t *testing.T) {
	d := &schema.Decl{
		Name: "Row",
		Fields: []schema.DeclField{
			{Name: "A", Type: "int", Tag: `bind:"skip" sqlbinder:"rename=x"`},
			{Name: "B", Type: "int", Tag: `bind:"rename=b"`},
		},
	}
	s, err := schema.Extract(d, schema.WithTagKey("bind"))
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, s.Columns())
}

func TestExtract_Errors(t *testing.T) {
	tests := []struct {
		name     string
		decl     *schema.Decl
		sentinel error
		contains string
	}{
		{
			name:     "nil",
			decl:     nil,
			sentinel: schema.ErrUnsupportedShape,
			contains: "missing declaration",
		},
		{
			name:     "non struct",
			decl:     &schema.Decl{Name: "Color", Kind: schema.KindOther},
			sentinel: schema.ErrUnsupportedShape,
			contains: "non-struct types are not supported",
		},
		{
			name:     "tuple",
			decl:     &schema.Decl{Name: "Pair", Kind: schema.KindTuple, Fields: []schema.DeclField{{Name: "0", Type: "int"}}},
			sentinel: schema.ErrUnsupportedShape,
			contains: "tuple types are not supported",
		},
		{
			name:     "no fields",
			decl:     &schema.Decl{Name: "Empty"},
			sentinel: schema.ErrUnsupportedShape,
			contains: "struct has no fields",
		},
		{
			name:     "generic",
			decl:     &schema.Decl{Name: "Box", TypeParams: []string{"T"}, Fields: []schema.DeclField{{Name: "V", Type: "T"}}},
			sentinel: schema.ErrUnsupportedShape,
			contains: "generic types",
		},
		{
			name: "embedded",
			decl: &schema.Decl{Name: "Outer", Fields: []schema.DeclField{
				{Name: "Inner", Type: "Inner", Embedded: true},
			}},
			sentinel: schema.ErrUnsupportedShape,
			contains: "Outer.Inner: embedded fields",
		},
		{
			name: "collision",
			decl: &schema.Decl{Name: "Dup", Fields: []schema.DeclField{
				{Name: "A", Type: "int", Tag: `sqlbinder:"rename=B"`},
				{Name: "B", Type: "int"},
			}},
			sentinel: schema.ErrUnsupportedShape,
			contains: `exposed name "B" collides with field A`,
		},
		{
			name: "unknown directive",
			decl: &schema.Decl{Name: "Bad", Fields: []schema.DeclField{
				{Name: "A", Type: "int", Tag: `sqlbinder:"primary"`},
			}},
			sentinel: schema.ErrInvalidAttribute,
			contains: "Bad.A: unexpected directive: 'primary'",
		},
		{
			name: "invalid later directive",
			decl: &schema.Decl{Name: "Bad", Fields: []schema.DeclField{
				{Name: "A", Type: "int", Tag: `sqlbinder:"skip,rename"`},
			}},
			sentinel: schema.ErrInvalidAttribute,
			contains: "rename requires a value",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := schema.Extract(tt.decl)
			require.Error(t, err)
			assert.Nil(t, s)
			assert.True(t, errors.Is(err, tt.sentinel))
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestExtract_SkippedEmbeddedAndBlank(t *testing.T) {
	d := &schema.Decl{
		Name: "Outer",
		Fields: []schema.DeclField{
			{Name: "Inner", Type: "Inner", Embedded: true, Tag: `sqlbinder:"skip"`},
			{Name: "_", Type: "struct{}"},
			{Name: "Name", Type: "string"},
		},
	}
	s, err := schema.Extract(d)
	require.NoError(t, err)
	assert.Equal(t, []string{"Name"}, s.Columns())
	assert.Equal(t, 2, s.Fields[0].Index)
}

func TestExtract_AllSkipped(t *testing.T) {
	d := &schema.Decl{
		Name:   "Hidden",
		Fields: []schema.DeclField{{Name: "A", Type: "int", Tag: `sqlbinder:"skip"`}},
	}
	s, err := schema.Extract(d)
	require.NoError(t, err)
	assert.Empty(t, s.Fields)
	assert.Empty(t, s.Columns())
}

func TestExtract_IndependentTypes(t *testing.T) {
	a := &schema.Decl{Name: "Test1", Fields: []schema.DeclField{{Name: "name", Type: "string"}}}
	b := &schema.Decl{Name: "Test2", Fields: []schema.DeclField{{Name: "name", Type: "string", Tag: `sqlbinder:"rename=title"`}}}
	sa, err := schema.Extract(a)
	require.NoError(t, err)
	sb, err := schema.Extract(b)
	require.NoError(t, err)
	assert.Equal(t, []string{"name"}, sa.Columns())
	assert.Equal(t, []string{"title"}, sb.Columns())
	assert.Equal(t, "test1", sa.Table)
	assert.Equal(t, "test2", sb.Table)
}
