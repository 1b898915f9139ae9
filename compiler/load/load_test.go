package load

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/sqlbinder/schema"
)

const source = `package zoo

import (
	"database/sql"
	"time"

	gouuid "github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//sqlbinder:generate
type Dog struct {
	Name           string
	Age            uint32 ` + "`sqlbinder:\"rename=dog_age\"`" + `
	LifeExpectancy uint32 ` + "`json:\"life\" sqlbinder:\"skip\"`" + `
}

// Owner is documented.
//
//sqlbinder:generate
type Owner struct {
	ID, Parent gouuid.UUID
	Born       *time.Time
	Nick       sql.NullString
	Meta       map[string]yaml.Node
}

type Cat struct {
	Name string
}

type Color int

type Box[T any] struct {
	V T
}

type Outer struct {
	*Cat
	time.Duration
	_    struct{}
}
`

func TestParseFile_Marker(t *testing.T) {
	decls, err := ParseFile("zoo.go", source)
	require.NoError(t, err)
	require.Len(t, decls, 2)

	dog := decls[0]
	assert.Equal(t, "Dog", dog.Name)
	assert.Equal(t, schema.KindStruct, dog.Kind)
	assert.Equal(t, "zoo.go:12", dog.Pos)
	assert.Empty(t, dog.Imports)
	require.Len(t, dog.Fields, 3)
	assert.Equal(t, schema.DeclField{Name: "Name", Type: "string", Pos: "zoo.go:13"}, dog.Fields[0])
	assert.Equal(t, `sqlbinder:"rename=dog_age"`, dog.Fields[1].Tag)
	assert.Equal(t, `json:"life" sqlbinder:"skip"`, dog.Fields[2].Tag)

	owner := decls[1]
	assert.Equal(t, "Owner", owner.Name)
	var names, types []string
	for _, f := range owner.Fields {
		names = append(names, f.Name)
		types = append(types, f.Type)
	}
	assert.Equal(t, []string{"ID", "Parent", "Born", "Nick", "Meta"}, names)
	assert.Equal(t, []string{"gouuid.UUID", "gouuid.UUID", "*time.Time", "sql.NullString", "map[string]yaml.Node"}, types)
	assert.Equal(t, map[string]string{
		"gouuid": "github.com/google/uuid",
		"time":   "time",
		"sql":    "database/sql",
		"yaml":   "gopkg.in/yaml.v3",
	}, owner.Imports)
}

func TestParseFile_Names(t *testing.T) {
	decls, err := ParseFile("zoo.go", source, "Cat", "Color", "Box", "Outer")
	require.NoError(t, err)
	require.Len(t, decls, 4)

	assert.Equal(t, "Cat", decls[0].Name)
	assert.Equal(t, schema.KindOther, decls[1].Kind)
	assert.Equal(t, []string{"T"}, decls[2].TypeParams)

	outer := decls[3]
	require.Len(t, outer.Fields, 3)
	assert.Equal(t, schema.DeclField{Name: "Cat", Type: "*Cat", Embedded: true, Pos: "zoo.go:39"}, outer.Fields[0])
	assert.Equal(t, "Duration", outer.Fields[1].Name)
	assert.True(t, outer.Fields[1].Embedded)
	assert.Equal(t, "_", outer.Fields[2].Name)
	assert.False(t, outer.Fields[2].Embedded)
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile("zoo.go", source, "Dog", "Horse", "Pig")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `type "Horse" not found`)
	assert.Contains(t, err.Error(), `type "Pig" not found`)
}

func TestParseFile_SyntaxError(t *testing.T) {
	_, err := ParseFile("bad.go", "package bad\ntype X struct {")
	require.Error(t, err)
}

func TestParseFile_ExtractRoundTrip(t *testing.T) {
	decls, err := ParseFile("zoo.go", source, "Dog")
	require.NoError(t, err)
	s, err := schema.Extract(decls[0])
	require.NoError(t, err)
	assert.Equal(t, "dog", s.Table)
	assert.Equal(t, []string{"Name", "dog_age"}, s.Columns())
}

func TestGuessName(t *testing.T) {
	tests := map[string]string{
		"time":                           "time",
		"github.com/google/uuid":         "uuid",
		"gopkg.in/yaml.v3":               "yaml",
		"github.com/go-sql-driver/mysql": "mysql",
		"github.com/go-openapi/inflect":  "inflect",
		"example.com/api/v2":             "api",
		"github.com/dave/go-jen":         "jen",
	}
	for in, want := range tests {
		assert.Equal(t, want, guessName(in), in)
	}
}

func TestLoad(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages with the go command")
	}
	pkgs, err := Load(context.Background(), &Config{Patterns: []string{"./testdata/zoo"}})
	require.NoError(t, err)
	require.Len(t, pkgs, 1)

	p := pkgs[0]
	assert.Equal(t, "zoo", p.Name)
	assert.Equal(t, "github.com/syssam/sqlbinder/compiler/load/testdata/zoo", p.PkgPath)
	require.Len(t, p.Decls, 2)
	assert.Equal(t, "Dog", p.Decls[0].Name)
	assert.Equal(t, "Keeper", p.Decls[1].Name)
	assert.Equal(t, map[string]string{
		"uuid": "github.com/google/uuid",
		"time": "time",
	}, p.Decls[0].Imports)
}

func TestLoad_Types(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages with the go command")
	}
	pkgs, err := Load(context.Background(), &Config{Patterns: []string{"./testdata/zoo"}, Types: []string{"Cat", "Zone"}})
	require.NoError(t, err)
	require.Len(t, pkgs, 1)
	require.Len(t, pkgs[0].Decls, 2)
	assert.Equal(t, "Cat", pkgs[0].Decls[0].Name)
	assert.Equal(t, "Zone", pkgs[0].Decls[1].Name)

	_, err = Load(context.Background(), &Config{Patterns: []string{"./testdata/zoo"}, Types: []string{"Horse"}})
	require.Error(t, err)
}

func TestLoad_NoPatterns(t *testing.T) {
	_, err := Load(context.Background(), &Config{})
	require.Error(t, err)
}
