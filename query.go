package sqlbinder

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Query is a statement text together with its positional parameters.
// Parameters are bound in the order the placeholders appear.
type Query struct {
	sql  string
	args []any
}

// NewQuery returns a Query with no bound parameters.
func NewQuery(sql string) *Query {
	return &Query{sql: sql}
}

// Bind appends v to the parameter list and returns q.
func (q *Query) Bind(v any) *Query {
	q.args = append(q.args, v)
	return q
}

// SQL returns the statement text.
func (q *Query) SQL() string { return q.sql }

// Args returns the bound parameters.
func (q *Query) Args() []any { return q.args }

// String returns the statement text followed by its parameters.
func (q *Query) String() string {
	if len(q.args) == 0 {
		return q.sql
	}
	var b strings.Builder
	b.WriteString(q.sql)
	b.WriteString(" [")
	for i, arg := range q.args {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", arg)
	}
	b.WriteString("]")
	return b.String()
}

// Exec runs the statement once on ex.
func (q *Query) Exec(ctx context.Context, ex Executor) (sql.Result, error) {
	res, err := ex.ExecContext(ctx, q.sql, q.args...)
	if err != nil {
		return nil, fmt.Errorf("sqlbinder: exec %q: %w", q.sql, err)
	}
	return res, nil
}
