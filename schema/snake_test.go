package schema_test

import (
	"testing"

	"github.com/syssam/sqlbinder/schema"

	"github.com/stretchr/testify/assert"
)

func TestSnake(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Dog", "dog"},
		{"ThisIsStructName", "this_is_struct_name"},
		{"HTTPServer", "h_t_t_p_server"},
		{"lowerStart", "lower_start"},
		{"Model2Go", "model2_go"},
		{"Already_Snake", "already__snake"},
		{"ÜberName", "Über_name"},
		{"", ""},
		{"A", "a"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, schema.Snake(tt.in))
		})
	}
}
