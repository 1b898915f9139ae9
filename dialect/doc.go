// Package dialect names the SQL dialects sqlbinder knows about and holds the
// small amount of dialect-specific text handling the statement builders need.
//
// # Supported Dialects
//
//	dialect.MySQL    = "mysql"
//	dialect.SQLite   = "sqlite"
//	dialect.Postgres = "postgres"
//
// The statement templates are written for MySQL. [Rebind] rewrites "?"
// placeholders into "$n" form for Postgres, and [ValuesKeyword] picks the
// keyword of the insert value list.
//
// # Sub-packages
//
//   - dialect/sql: database/sql driver wrapper that reports its dialect,
//     plus statistics and slow statement logging.
package dialect
