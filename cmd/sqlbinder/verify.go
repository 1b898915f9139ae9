package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/syssam/sqlbinder/compiler/load"
	"github.com/syssam/sqlbinder/dialect"
	dsql "github.com/syssam/sqlbinder/dialect/sql"
	"github.com/syssam/sqlbinder/schema"

	_ "modernc.org/sqlite"
)

type cmdVerify struct {
	global *globalFlags

	types      []string
	tag        string
	buildFlags []string
	driver     string
	dsn        string
	database   string
	tables     map[string]string
	slow       time.Duration
}

func (c *cmdVerify) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "verify [packages]"
	cmd.Short = "Check that the selected types match a live database"
	cmd.Long = `Description:
  Check that the selected types match a live database

  For every selected type a read-only probe query is run:

    SELECT <columns> FROM <database>.<table> WHERE 1=0

  The command fails if a table or one of the exposed columns is missing.
  Tables default to the snake case type name; use --table Type=name to
  override it.
`
	cmd.Args = cobra.ArbitraryArgs
	cmd.RunE = c.Run

	cmd.Flags().StringSliceVarP(&c.types, "type", "t", nil, "Comma separated list of type names to verify")
	cmd.Flags().StringVar(&c.tag, "tag", schema.TagKey, "Struct tag key holding the field directives")
	cmd.Flags().StringSliceVar(&c.buildFlags, "build-flags", nil, "Flags passed to the build system")
	cmd.Flags().StringVar(&c.driver, "driver", dialect.MySQL, "Database driver: mysql, postgres or sqlite")
	cmd.Flags().StringVar(&c.dsn, "dsn", "", "Data source name of the database")
	cmd.Flags().StringVar(&c.database, "database", "", "Database (schema) qualifying the table names")
	cmd.Flags().StringToStringVar(&c.tables, "table", nil, "Table name overrides as Type=table")
	cmd.Flags().DurationVar(&c.slow, "slow-threshold", time.Second, "Log probe queries slower than this")

	return cmd
}

func (c *cmdVerify) Run(cmd *cobra.Command, args []string) error {
	fc, err := c.global.loadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	c.merge(cmd, fc)
	if c.dsn == "" {
		return errors.New("verify: missing --dsn")
	}
	log := c.global.logger()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	pkgs, err := load.Load(ctx, &load.Config{
		Patterns:   fc.patterns(args),
		Types:      c.types,
		BuildFlags: c.buildFlags,
		Dir:        c.global.dir,
	})
	if err != nil {
		return err
	}
	var structs []*schema.Struct
	for _, p := range pkgs {
		for _, d := range p.Decls {
			s, err := schema.Extract(d, schema.WithTagKey(c.tag))
			if err != nil {
				return err
			}
			structs = append(structs, s)
		}
	}
	if len(structs) == 0 {
		log.Warn("no types selected", "marker", load.Marker)
		return nil
	}

	v, closeDB, err := c.open(log)
	if err != nil {
		return err
	}
	defer closeDB()
	return v.verify(ctx, structs...)
}

func (c *cmdVerify) merge(cmd *cobra.Command, fc *fileConfig) {
	flags := cmd.Flags()
	mergeStrings(flags, "type", &c.types, fc.Types)
	mergeString(flags, "tag", &c.tag, fc.Tag)
	mergeStrings(flags, "build-flags", &c.buildFlags, fc.BuildFlags)
	mergeString(flags, "driver", &c.driver, fc.Verify.Driver)
	mergeString(flags, "dsn", &c.dsn, fc.Verify.DSN)
	mergeString(flags, "database", &c.database, fc.Verify.Database)
	if len(fc.Verify.Tables) > 0 && !flags.Changed("table") {
		c.tables = fc.Verify.Tables
	}
}

// open connects to the database and returns a verifier using it.
func (c *cmdVerify) open(log *slog.Logger) (*verifier, func(), error) {
	d := dialect.Normalize(c.driver)
	database := c.database
	switch d {
	case dialect.MySQL:
		cfg, err := mysql.ParseDSN(c.dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("verify: invalid mysql dsn: %w", err)
		}
		if database == "" {
			database = cfg.DBName
		}
	case dialect.Postgres, dialect.SQLite:
	default:
		return nil, nil, fmt.Errorf("verify: unsupported driver %q", c.driver)
	}

	sd, stats, err := dsql.OpenWithStats(d, c.dsn,
		dsql.WithSlowThreshold(c.slow),
		dsql.WithSlowQueryLog(log),
	)
	if err != nil {
		return nil, nil, err
	}
	v := &verifier{
		ex:       sd,
		dialect:  d,
		database: database,
		tables:   c.tables,
		log:      log,
	}
	if c.global.debug {
		v.ex = dsql.NewDebugDriver(sd.Driver, log)
	}
	closeDB := func() {
		log.Info("verify finished", "stats", stats.Stats().String())
		if err := sd.Close(); err != nil {
			log.Warn("closing database", "err", err)
		}
	}
	return v, closeDB, nil
}

// verifier probes a database for the tables and columns of record types.
type verifier struct {
	ex       dsql.ExecQuerier
	dialect  string
	database string
	tables   map[string]string
	log      *slog.Logger
}

// verify checks every type and returns all mismatches joined.
func (v *verifier) verify(ctx context.Context, structs ...*schema.Struct) error {
	var errs []error
	for _, s := range structs {
		if err := v.check(ctx, s); err != nil {
			errs = append(errs, err)
			continue
		}
		v.log.Info("verified", "type", s.Name, "table", v.table(s))
	}
	return errors.Join(errs...)
}

func (v *verifier) check(ctx context.Context, s *schema.Struct) error {
	if len(s.Fields) == 0 {
		return nil
	}
	rows, err := v.ex.QueryContext(ctx, v.probe(s))
	if err != nil {
		return fmt.Errorf("verify %s: table %s: %w", s.Name, v.table(s), err)
	}
	defer rows.Close()

	got, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("verify %s: %w", s.Name, err)
	}
	if len(got) != len(s.Fields) {
		return fmt.Errorf("verify %s: got %d columns, want %d", s.Name, len(got), len(s.Fields))
	}
	return rows.Err()
}

// probe returns a query that selects every exposed column and no rows.
func (v *verifier) probe(s *schema.Struct) string {
	columns := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		columns[i] = quoteIdent(v.dialect, f.Column)
	}
	return fmt.Sprintf("SELECT %s FROM %s WHERE 1=0", strings.Join(columns, ", "), v.table(s))
}

// table returns the quoted, possibly qualified, table name of s.
func (v *verifier) table(s *schema.Struct) string {
	name := s.Table
	if t, ok := v.tables[s.Name]; ok && t != "" {
		name = t
	}
	name = quoteIdent(v.dialect, name)
	if v.database == "" {
		return name
	}
	return quoteIdent(v.dialect, v.database) + "." + name
}

// quoteIdent quotes an identifier for d. SQLite gets backticks as well:
// an unknown double-quoted name would be read as a string literal there.
func quoteIdent(d, name string) string {
	if dialect.Normalize(d) == dialect.Postgres {
		return pq.QuoteIdentifier(name)
	}
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
