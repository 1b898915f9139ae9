// Package sql wraps database/sql handles so that they report their dialect.
//
// The statement builders of the sqlbinder runtime ask the executor for its
// dialect and adapt the statement text: Postgres gets $n placeholders, and
// Postgres and SQLite get VALUES instead of MySQL's VALUE.
//
//	drv, err := sql.Open("postgres", dsn)
//	if err != nil {
//	    return err
//	}
//	defer drv.Close()
//	_, err = dog.Insert(ctx, drv, sqlbinder.InsertOptions{PrimaryKey: "id"})
//
// StatsDriver and DebugDriver wrap a Driver with statement statistics and
// debug logging respectively.
package sql
