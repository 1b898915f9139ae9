// Package sqlbinder is the runtime used by code generated with the sqlbinder
// command. Generated types expose their fields as Field values and build
// INSERT and UPDATE statements through the helpers in this package.
//
// A type opts in with a go:generate line:
//
//	//go:generate go run github.com/syssam/sqlbinder/cmd/sqlbinder -type Dog
//	type Dog struct {
//		Name           string
//		Age            uint32 `sqlbinder:"rename=dog_age"`
//		LifeExpectancy uint32 `sqlbinder:"skip"`
//	}
//
// and then:
//
//	res, err := dog.Insert(ctx, db, sqlbinder.InsertOptions{Database: "zoo"})
package sqlbinder

import (
	"context"
	"database/sql"
)

// Field is one bindable value of a record, as produced by the generated
// FieldValues accessor.
type Field interface {
	// Column returns the exposed name of the field.
	Column() string
	// Arg returns the native value held by the field.
	Arg() any
	// Bind appends the value to the parameter list of q.
	Bind(q *Query) *Query
}

// Executor runs a statement against a relational store. It is satisfied by
// *sql.DB, *sql.Tx, *sql.Conn and the drivers in dialect/sql.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Row is the effective field set of one record value, as handed to the
// statement builders by generated code.
type Row struct {
	// Table is the default table name.
	Table string
	// Columns are the exposed field names, in order.
	Columns []string
	// Fields are the values, paired with Columns by index.
	Fields []Field
}

// Fields converts a slice of generated carriers to a slice of Field.
func Fields[F Field](fs []F) []Field {
	out := make([]Field, len(fs))
	for i, f := range fs {
		out[i] = f
	}
	return out
}

var (
	_ Executor = (*sql.DB)(nil)
	_ Executor = (*sql.Tx)(nil)
	_ Executor = (*sql.Conn)(nil)
)
