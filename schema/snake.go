package schema

import "strings"

// Snake converts an UpperCamelCase name to lower_snake_case.
//
// Every ASCII uppercase letter except the first character is prefixed with
// an underscore, and all ASCII uppercase letters are lowercased. Other
// characters are copied as is.
func Snake(name string) string {
	n := 0
	for i := 1; i < len(name); i++ {
		if isUpper(name[i]) {
			n++
		}
	}
	var b strings.Builder
	b.Grow(len(name) + n)
	for i := 0; i < len(name); i++ {
		c := name[i]
		if !isUpper(c) {
			b.WriteByte(c)
			continue
		}
		if i != 0 {
			b.WriteByte('_')
		}
		b.WriteByte(c + 'a' - 'A')
	}
	return b.String()
}

func isUpper(c byte) bool { return 'A' <= c && c <= 'Z' }
