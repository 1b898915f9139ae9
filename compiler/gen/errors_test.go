package gen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/sqlbinder/schema"
)

func TestSchemaError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := NewSchemaError("User", "Email", "invalid tag", cause)
		err.Pos = "user.go:12"

		assert.Contains(t, err.Error(), "user.go:12: sqlbinder: schema error")
		assert.Contains(t, err.Error(), "type User")
		assert.Contains(t, err.Error(), "field Email")
		assert.Contains(t, err.Error(), "invalid tag")
		assert.Contains(t, err.Error(), "underlying error")
	})

	t.Run("Error message with type only", func(t *testing.T) {
		err := &SchemaError{Type: "User"}
		assert.Equal(t, "sqlbinder: schema error on type User", err.Error())
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := &schema.ShapeError{Type: "User", Message: "generic types are not supported"}
		err := NewSchemaError("User", "", "", cause)

		assert.Equal(t, cause, err.Unwrap())
		assert.True(t, errors.Is(err, schema.ErrUnsupportedShape))
		assert.True(t, errors.Is(err, ErrInvalidSchema))
	})

	t.Run("IsSchemaError helper", func(t *testing.T) {
		err := NewSchemaError("User", "Email", "test", nil)
		assert.True(t, IsSchemaError(err))
		assert.False(t, IsSchemaError(errors.New("other")))
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with value", func(t *testing.T) {
		err := NewConfigError("Workers", -1, "workers must be positive")

		assert.Equal(t, `sqlbinder: config error for "Workers" (value: -1): workers must be positive`, err.Error())
	})

	t.Run("Error message without value", func(t *testing.T) {
		err := NewConfigError("Package", nil, "cannot be empty")

		assert.Contains(t, err.Error(), "Package")
		assert.NotContains(t, err.Error(), "value:")
	})

	t.Run("Is matches ErrMissingConfig", func(t *testing.T) {
		err := NewConfigError("Target", nil, "missing")
		assert.True(t, errors.Is(err, ErrMissingConfig))
		assert.True(t, IsConfigError(err))
		assert.False(t, IsConfigError(errors.New("other")))
	})
}

func TestGenerationError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("permission denied")
		err := NewGenerationError("write", "dog_binder.go", "cannot write file", cause)

		assert.Equal(t, "sqlbinder: generation error in phase write (file: dog_binder.go): cannot write file: permission denied", err.Error())
		assert.True(t, errors.Is(err, cause))
		assert.True(t, errors.Is(err, ErrGenerationFailed))
		assert.True(t, IsGenerationError(err))
		assert.False(t, IsGenerationError(NewConfigError("Target", nil, "")))
	})
}
