package dialect

import (
	"strconv"
	"strings"
)

// Dialect names. Each matches the database/sql driver name it is used with.
const (
	MySQL    = "mysql"
	SQLite   = "sqlite"
	Postgres = "postgres"
)

// Dialecter is implemented by executors that know their dialect.
type Dialecter interface {
	Dialect() string
}

// Of returns the dialect reported by v, or "" if it does not report one.
func Of(v any) string {
	if d, ok := v.(Dialecter); ok {
		return d.Dialect()
	}
	return ""
}

// Normalize maps driver names and aliases to one of the dialect constants.
// Unknown names are returned unchanged.
func Normalize(name string) string {
	switch n := strings.ToLower(name); {
	case strings.HasPrefix(n, MySQL), n == "mariadb":
		return MySQL
	case strings.HasPrefix(n, SQLite):
		return SQLite
	case strings.HasPrefix(n, Postgres), n == "pgx", n == "pq":
		return Postgres
	default:
		return name
	}
}

// ValuesKeyword returns the keyword introducing the value list of an INSERT.
// MySQL (and an unset dialect) keep the shorter VALUE form.
func ValuesKeyword(d string) string {
	switch Normalize(d) {
	case SQLite, Postgres:
		return "VALUES"
	default:
		return "VALUE"
	}
}

// Rebind rewrites positional "?" placeholders for the given dialect.
// Only Postgres needs it: placeholders become $1, $2, ... in order.
// Question marks inside single-quoted literals are left alone.
func Rebind(d, query string) string {
	if Normalize(d) != Postgres || !strings.Contains(query, "?") {
		return query
	}
	var (
		b      strings.Builder
		n      int
		quoted bool
	)
	b.Grow(len(query) + 8)
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			quoted = !quoted
			b.WriteByte(c)
		case c == '?' && !quoted:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
