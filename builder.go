package sqlbinder

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"

	"github.com/syssam/sqlbinder/dialect"
)

// InsertOptions configures an INSERT statement.
type InsertOptions struct {
	// PrimaryKey names a column left out of the statement, typically an
	// auto-increment key. Empty means none.
	PrimaryKey string
	// Table overrides the default (snake case) table name.
	Table string
	// ExtraColumns is appended verbatim after the column list, e.g. ",created_at".
	ExtraColumns string
	// ExtraPlaceholders is appended verbatim after the placeholders, e.g. ",NOW()".
	ExtraPlaceholders string
	// ExtraValues are bound after the field values.
	ExtraValues []any
	// Database qualifies the table name. Empty means unqualified.
	Database string
	// Dialect selects the statement flavor. Insert fills it from the
	// executor when empty.
	Dialect string
}

// UpdateOptions configures an UPDATE statement.
type UpdateOptions struct {
	// PrimaryKey names the column matched in the WHERE clause. Required.
	PrimaryKey string
	// Table overrides the default (snake case) table name.
	Table string
	// ExtraColumns is appended verbatim after the assignments, e.g. ",updated_at=NOW()".
	ExtraColumns string
	// ExtraValues are bound after the field values and before the key.
	ExtraValues []any
	// Database qualifies the table name. Empty means unqualified.
	Database string
	// Dialect selects the statement flavor. Update fills it from the
	// executor when empty.
	Dialect string
}

// BuildInsert assembles the INSERT statement for row:
//
//	INSERT INTO <db>.<table> (<columns><extra>) VALUE (<?...><extra>);
//
// The primary key column is removed in place: the remaining columns keep
// their declaration order, so a key of "name" on (id,name,age,life_expectancy)
// yields (id,age,life_expectancy), not the (id,life_expectancy,age) a swap
// removal would give. BuildUpdate removes the key the same way.
func BuildInsert(row Row, opts InsertOptions) (*Query, error) {
	columns, fields, err := row.split()
	if err != nil {
		return nil, err
	}
	if opts.PrimaryKey != "" {
		i := slices.Index(columns, opts.PrimaryKey)
		if i < 0 {
			return nil, NewColumnNotFoundError(opts.PrimaryKey)
		}
		columns = slices.Delete(columns, i, i+1)
		fields = slices.Delete(fields, i, i+1)
	}
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(qualify(opts.Database, row.table(opts.Table)))
	b.WriteString(" (")
	b.WriteString(strings.Join(columns, ","))
	b.WriteString(opts.ExtraColumns)
	b.WriteString(") ")
	b.WriteString(dialect.ValuesKeyword(opts.Dialect))
	b.WriteString(" (")
	b.WriteString(placeholders(len(columns)))
	b.WriteString(opts.ExtraPlaceholders)
	b.WriteString(");")

	q := NewQuery(dialect.Rebind(opts.Dialect, b.String()))
	for _, f := range fields {
		q = f.Bind(q)
	}
	for _, v := range opts.ExtraValues {
		q = q.Bind(v)
	}
	return q, nil
}

// BuildUpdate assembles the UPDATE statement for row:
//
//	UPDATE <db>.<table> SET <column=?...><extra> WHERE <pk>=?;
//
// The key value is bound last.
func BuildUpdate(row Row, opts UpdateOptions) (*Query, error) {
	columns, fields, err := row.split()
	if err != nil {
		return nil, err
	}
	i := slices.Index(columns, opts.PrimaryKey)
	if opts.PrimaryKey == "" || i < 0 {
		return nil, NewColumnNotFoundError(opts.PrimaryKey)
	}
	key := fields[i]
	columns = slices.Delete(columns, i, i+1)
	fields = slices.Delete(fields, i, i+1)

	var b strings.Builder
	b.WriteString("UPDATE ")
	b.WriteString(qualify(opts.Database, row.table(opts.Table)))
	b.WriteString(" SET ")
	for j, c := range columns {
		if j > 0 {
			b.WriteByte(',')
		}
		b.WriteString(c)
		b.WriteString("=?")
	}
	b.WriteString(opts.ExtraColumns)
	b.WriteString(" WHERE ")
	b.WriteString(opts.PrimaryKey)
	b.WriteString("=?;")

	q := NewQuery(dialect.Rebind(opts.Dialect, b.String()))
	for _, f := range fields {
		q = f.Bind(q)
	}
	for _, v := range opts.ExtraValues {
		q = q.Bind(v)
	}
	return key.Bind(q), nil
}

// Insert builds the INSERT statement for row and executes it on ex.
func Insert(ctx context.Context, ex Executor, row Row, opts InsertOptions) (sql.Result, error) {
	if opts.Dialect == "" {
		opts.Dialect = dialect.Of(ex)
	}
	q, err := BuildInsert(row, opts)
	if err != nil {
		return nil, err
	}
	return q.Exec(ctx, ex)
}

// Update builds the UPDATE statement for row and executes it on ex.
func Update(ctx context.Context, ex Executor, row Row, opts UpdateOptions) (sql.Result, error) {
	if opts.Dialect == "" {
		opts.Dialect = dialect.Of(ex)
	}
	q, err := BuildUpdate(row, opts)
	if err != nil {
		return nil, err
	}
	return q.Exec(ctx, ex)
}

// split returns private copies of the column and field lists.
func (r Row) split() ([]string, []Field, error) {
	if len(r.Columns) != len(r.Fields) {
		return nil, nil, fmt.Errorf("sqlbinder: row %s has %d columns and %d values", r.Table, len(r.Columns), len(r.Fields))
	}
	return slices.Clone(r.Columns), slices.Clone(r.Fields), nil
}

func (r Row) table(override string) string {
	if override != "" {
		return override
	}
	return r.Table
}

func qualify(db, table string) string {
	if db == "" {
		return table
	}
	return db + "." + table
}

func placeholders(n int) string {
	if n == 0 {
		return ""
	}
	return strings.Repeat("?,", n-1) + "?"
}
