package gen

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/sqlbinder/schema"
)

func TestGenerate(t *testing.T) {
	c := testConfig(t, WithWorkers(2))
	cat := &schema.Decl{Name: "Cat", Fields: []schema.DeclField{{Name: "Name", Type: "string"}}}
	g, err := NewGraph(c, dogDecl(), cat)
	require.NoError(t, err)

	gen := NewGenerator(g)
	require.NoError(t, gen.Generate(context.Background()))

	for _, name := range []string{"dog_binder.go", "cat_binder.go"} {
		data, err := os.ReadFile(filepath.Join(c.Target, name))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "// Code generated by sqlbinder, DO NOT EDIT."))
		assert.Contains(t, string(data), "package zoo")
	}
	entries, err := os.ReadDir(c.Target)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no temporary files are left behind")

	m := gen.Metrics()
	assert.Equal(t, 2, m.FilesGenerated)
	assert.Positive(t, m.TotalBytes)
}

func TestGenerate_Suffix(t *testing.T) {
	c := testConfig(t, WithSuffix("_sql"))
	require.NoError(t, Generate(context.Background(), c, dogDecl()))
	_, err := os.Stat(filepath.Join(c.Target, "dog_sql.go"))
	require.NoError(t, err)
}

func TestGenerate_Overwrites(t *testing.T) {
	c := testConfig(t)
	path := filepath.Join(c.Target, "dog_binder.go")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))
	require.NoError(t, Generate(context.Background(), c, dogDecl()))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, "stale", string(data))
}

func TestGenerate_NothingWrittenOnError(t *testing.T) {
	c := testConfig(t)
	bad := &schema.Decl{Name: "Bad", Fields: []schema.DeclField{{Name: "A", Type: "int", Tag: `sqlbinder:"rename"`}}}
	err := Generate(context.Background(), c, dogDecl(), bad)
	require.Error(t, err)
	assert.True(t, IsSchemaError(err))

	entries, err := os.ReadDir(c.Target)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerate_MissingConfig(t *testing.T) {
	g, err := NewGraph(&Config{}, dogDecl())
	require.NoError(t, err)
	err = NewGenerator(g).Generate(context.Background())
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

func TestGenerate_Canceled(t *testing.T) {
	c := testConfig(t)
	g, err := NewGraph(c, dogDecl())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = NewGenerator(g).Generate(ctx)
	require.ErrorIs(t, err, context.Canceled)

	entries, err := os.ReadDir(c.Target)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerator_Render(t *testing.T) {
	c := testConfig(t)
	g, err := NewGraph(c, dogDecl())
	require.NoError(t, err)
	files, err := NewGenerator(g).Render(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 1)
	src, ok := files[filepath.Join(c.Target, "dog_binder.go")]
	require.True(t, ok)
	assert.Contains(t, string(src), "func BindDogField(")

	entries, err := os.ReadDir(c.Target)
	require.NoError(t, err)
	assert.Empty(t, entries, "Render does not write")
}
