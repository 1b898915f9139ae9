package sql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/syssam/sqlbinder/dialect"
)

// ExecQuerier wraps the standard Exec and Query methods.
type ExecQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Conn pairs an ExecQuerier with the dialect it speaks.
type Conn struct {
	ExecQuerier
	dialect string
}

// Dialect returns the dialect of the connection.
func (c Conn) Dialect() string { return c.dialect }

// Driver is a database/sql handle that reports its dialect, so statement
// builders can adapt placeholders and keywords.
type Driver struct {
	Conn
}

// NewDriver creates a new Driver with the given Conn.
func NewDriver(c Conn) *Driver {
	return &Driver{Conn: c}
}

// Open wraps the database/sql.Open method and returns a Driver. The dialect
// is derived from the driver name.
func Open(driverName, source string) (*Driver, error) {
	db, err := sql.Open(driverName, source)
	if err != nil {
		return nil, fmt.Errorf("dialect/sql: open %s: %w", driverName, err)
	}
	return OpenDB(driverName, db), nil
}

// OpenDB wraps the given database/sql.DB with a Driver.
func OpenDB(driverName string, db *sql.DB) *Driver {
	return NewDriver(Conn{ExecQuerier: db, dialect: dialect.Normalize(driverName)})
}

// DB returns the underlying *sql.DB instance.
func (d *Driver) DB() *sql.DB {
	return d.ExecQuerier.(*sql.DB)
}

// Tx starts and returns a transaction.
func (d *Driver) Tx(ctx context.Context) (*Tx, error) {
	return d.BeginTx(ctx, nil)
}

// BeginTx starts a transaction with options.
func (d *Driver) BeginTx(ctx context.Context, opts *TxOptions) (*Tx, error) {
	tx, err := d.DB().BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("dialect/sql: begin: %w", err)
	}
	return &Tx{
		Conn: Conn{ExecQuerier: tx, dialect: d.dialect},
		Tx:   tx,
	}, nil
}

// PingContext verifies the connection to the database is still alive.
func (d *Driver) PingContext(ctx context.Context) error {
	return d.DB().PingContext(ctx)
}

// Close closes the underlying connection.
func (d *Driver) Close() error { return d.DB().Close() }

// Tx is a transaction that reports its dialect.
type Tx struct {
	Conn
	*sql.Tx
}

// ExecContext resolves the ambiguity between Conn and *sql.Tx.
func (tx *Tx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return tx.Tx.ExecContext(ctx, query, args...)
}

// QueryContext resolves the ambiguity between Conn and *sql.Tx.
func (tx *Tx) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return tx.Tx.QueryContext(ctx, query, args...)
}

type (
	// Result is an alias to sql.Result.
	Result = sql.Result
	// TxOptions holds the transaction options to be used in DB.BeginTx.
	TxOptions = sql.TxOptions
)

var (
	_ ExecQuerier       = (*Driver)(nil)
	_ ExecQuerier       = (*Tx)(nil)
	_ dialect.Dialecter = (*Driver)(nil)
	_ dialect.Dialecter = (*Tx)(nil)
)
