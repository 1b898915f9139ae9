package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// TagKey is the default struct-tag key holding field directives.
const TagKey = "sqlbinder"

// DirectiveKind identifies a recognized field directive.
type DirectiveKind uint8

const (
	// DirectiveSkip excludes the field from every generated artifact.
	DirectiveSkip DirectiveKind = iota + 1
	// DirectiveRename exposes the field under another name.
	DirectiveRename
)

// String returns the directive keyword.
func (k DirectiveKind) String() string {
	switch k {
	case DirectiveSkip:
		return "skip"
	case DirectiveRename:
		return "rename"
	default:
		return fmt.Sprintf("DirectiveKind(%d)", uint8(k))
	}
}

// Directive is a single parsed field directive.
type Directive struct {
	Kind DirectiveKind
	// Name is the new exposed name of a rename directive.
	Name string
}

// Skip returns a skip directive.
func Skip() Directive { return Directive{Kind: DirectiveSkip} }

// Rename returns a rename directive.
func Rename(name string) Directive { return Directive{Kind: DirectiveRename, Name: name} }

// String returns the directive in its tag form.
func (d Directive) String() string {
	if d.Kind == DirectiveRename {
		return fmt.Sprintf("rename=%s", d.Name)
	}
	return d.Kind.String()
}

// Directives returns the directives found under key in the raw struct tag.
// The tag is the unquoted tag string, e.g. `json:"name" sqlbinder:"skip"`.
// A tag without the key yields no directives.
func Directives(tag, key string) ([]Directive, error) {
	if key == "" {
		key = TagKey
	}
	value, ok := reflect.StructTag(tag).Lookup(key)
	if !ok {
		// Lookup gives up silently on a syntax error, so a key that is
		// present but could not be read means the tag itself is broken.
		if hasKey(tag, key) {
			return nil, &AttributeError{Text: tag, Message: "malformed struct tag"}
		}
		return nil, nil
	}
	return ParseDirectives(value)
}

// hasKey reports whether key appears in key position of tag. It walks the
// key:"value" pairs the way reflect.StructTag.Lookup does and stops at the
// first pair it cannot read.
func hasKey(tag, key string) bool {
	for tag != "" {
		tag = strings.TrimLeft(tag, " ")
		i := 0
		for i < len(tag) && tag[i] > ' ' && tag[i] != ':' && tag[i] != '"' && tag[i] != 0x7f {
			i++
		}
		if i == 0 || i >= len(tag) || tag[i] != ':' {
			return false
		}
		if tag[:i] == key {
			return true
		}
		tag = tag[i+1:]
		if tag == "" || tag[0] != '"' {
			return false
		}
		i = 1
		for i < len(tag) && tag[i] != '"' {
			if tag[i] == '\\' {
				i++
			}
			i++
		}
		if i >= len(tag) {
			return false
		}
		tag = tag[i+1:]
	}
	return false
}

// ParseDirectives parses the comma-separated directive list of a tag value.
// All recognized directives are returned in order.
func ParseDirectives(value string) ([]Directive, error) {
	var ds []Directive
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		key, arg, hasArg := strings.Cut(item, "=")
		switch strings.TrimSpace(key) {
		case "skip":
			if hasArg {
				return nil, &AttributeError{Text: item, Message: "skip does not take a value"}
			}
			ds = append(ds, Skip())
		case "rename":
			if !hasArg {
				return nil, &AttributeError{Text: item, Message: "rename requires a value"}
			}
			name := unquote(strings.TrimSpace(arg))
			if name == "" {
				return nil, &AttributeError{Text: item, Message: "rename requires a non-empty name"}
			}
			ds = append(ds, Rename(name))
		default:
			return nil, &AttributeError{Text: item, Message: "unexpected directive"}
		}
	}
	return ds, nil
}

// unquote strips one pair of matching single or double quotes.
func unquote(s string) string {
	if len(s) >= 2 {
		if q := s[0]; (q == '\'' || q == '"') && s[len(s)-1] == q {
			return s[1 : len(s)-1]
		}
	}
	return s
}
