package integration

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/sqlbinder"
	"github.com/syssam/sqlbinder/dialect"
	dsql "github.com/syssam/sqlbinder/dialect/sql"

	_ "modernc.org/sqlite"
)

func TestInsertQuery(t *testing.T) {
	tests := []struct {
		name string
		opts sqlbinder.InsertOptions
		sql  string
		args []any
	}{
		{
			name: "all fields",
			opts: sqlbinder.InsertOptions{},
			sql:  "INSERT INTO dog (id,name,age,life_expectancy) VALUE (?,?,?,?);",
			args: []any{int64(1), "Rex", uint32(3), uint32(14)},
		},
		{
			name: "primary key and database",
			opts: sqlbinder.InsertOptions{PrimaryKey: "id", Database: "zoo"},
			sql:  "INSERT INTO zoo.dog (name,age,life_expectancy) VALUE (?,?,?);",
			args: []any{"Rex", uint32(3), uint32(14)},
		},
		{
			name: "primary key in the middle keeps order",
			opts: sqlbinder.InsertOptions{PrimaryKey: "age"},
			sql:  "INSERT INTO dog (id,name,life_expectancy) VALUE (?,?,?);",
			args: []any{int64(1), "Rex", uint32(14)},
		},
		{
			name: "extras",
			opts: sqlbinder.InsertOptions{
				PrimaryKey:        "id",
				Table:             "dogs",
				ExtraColumns:      ",created_at,owner",
				ExtraPlaceholders: ",NOW(),?",
				ExtraValues:       []any{"ann"},
			},
			sql:  "INSERT INTO dogs (name,age,life_expectancy,created_at,owner) VALUE (?,?,?,NOW(),?);",
			args: []any{"Rex", uint32(3), uint32(14), "ann"},
		},
		{
			name: "postgres",
			opts: sqlbinder.InsertOptions{PrimaryKey: "id", Dialect: dialect.Postgres},
			sql:  "INSERT INTO dog (name,age,life_expectancy) VALUES ($1,$2,$3);",
			args: []any{"Rex", uint32(3), uint32(14)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := newDog().InsertQuery(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.sql, q.SQL())
			assert.Equal(t, tt.args, q.Args())
		})
	}
}

func TestUpdateQuery(t *testing.T) {
	tests := []struct {
		name string
		opts sqlbinder.UpdateOptions
		sql  string
		args []any
	}{
		{
			name: "by id",
			opts: sqlbinder.UpdateOptions{PrimaryKey: "id"},
			sql:  "UPDATE dog SET name=?,age=?,life_expectancy=? WHERE id=?;",
			args: []any{"Rex", uint32(3), uint32(14), int64(1)},
		},
		{
			name: "by name with extras",
			opts: sqlbinder.UpdateOptions{
				PrimaryKey:   "name",
				Database:     "zoo",
				ExtraColumns: ",updated_at=?",
				ExtraValues:  []any{"now"},
			},
			sql:  "UPDATE zoo.dog SET id=?,age=?,life_expectancy=?,updated_at=? WHERE name=?;",
			args: []any{int64(1), uint32(3), uint32(14), "now", "Rex"},
		},
		{
			name: "sqlite",
			opts: sqlbinder.UpdateOptions{PrimaryKey: "id", Dialect: dialect.SQLite},
			sql:  "UPDATE dog SET name=?,age=?,life_expectancy=? WHERE id=?;",
			args: []any{"Rex", uint32(3), uint32(14), int64(1)},
		},
		{
			name: "postgres",
			opts: sqlbinder.UpdateOptions{PrimaryKey: "id", Dialect: dialect.Postgres},
			sql:  "UPDATE dog SET name=$1,age=$2,life_expectancy=$3 WHERE id=$4;",
			args: []any{"Rex", uint32(3), uint32(14), int64(1)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := newDog().UpdateQuery(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.sql, q.SQL())
			assert.Equal(t, tt.args, q.Args())
		})
	}
}

func TestQuery_ColumnNotFound(t *testing.T) {
	d := newDog()

	_, err := d.InsertQuery(sqlbinder.InsertOptions{PrimaryKey: "LifeExpectancy"})
	require.Error(t, err)
	assert.True(t, sqlbinder.IsColumnNotFound(err))
	assert.Equal(t, "sqlbinder: no column found for name: LifeExpectancy", err.Error())

	_, err = d.UpdateQuery(sqlbinder.UpdateOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, sqlbinder.ErrColumnNotFound))

	_, err = (&Skipper{}).UpdateQuery(sqlbinder.UpdateOptions{PrimaryKey: "age"})
	require.Error(t, err)
	assert.True(t, sqlbinder.IsColumnNotFound(err))
}

func TestQuery_DoesNotMutate(t *testing.T) {
	d := newDog()
	_, err := d.UpdateQuery(sqlbinder.UpdateOptions{PrimaryKey: "id"})
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name", "age", "life_expectancy"}, d.FieldNames())
	assert.Equal(t, newDog(), d)
}

func TestInsert_Mock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO zoo.dog (name,age,life_expectancy) VALUE (?,?,?);")).
		WithArgs("Rex", 3, 14).
		WillReturnResult(sqlmock.NewResult(7, 1))

	res, err := newDog().Insert(t.Context(), db, sqlbinder.InsertOptions{PrimaryKey: "id", Database: "zoo"})
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_Mock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE dog SET name=$1,age=$2,life_expectancy=$3 WHERE id=$4;")).
		WithArgs("Rex", 3, 14, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	drv := dsql.OpenDB(dialect.Postgres, db)
	res, err := newDog().Update(t.Context(), drv, sqlbinder.UpdateOptions{PrimaryKey: "id"})
	require.NoError(t, err)
	n, err := res.RowsAffected()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_MockError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	errDup := errors.New("Error 1062: Duplicate entry '1' for key 'PRIMARY'")
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO test1 (name) VALUE (?);")).
		WithArgs("a").
		WillReturnError(errDup)

	_, err = (&Test1{Name: "a"}).Insert(t.Context(), db, sqlbinder.InsertOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errDup)
	assert.Contains(t, err.Error(), `sqlbinder: exec "INSERT INTO test1 (name) VALUE (?);"`)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_Transaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO test2 (title,count) VALUE (?,?);")).
		WithArgs("t", 2).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE test2 SET count=? WHERE title=?;")).
		WithArgs(3, "t").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := dsql.OpenDB(dialect.MySQL, db).Tx(t.Context())
	require.NoError(t, err)
	rec := &Test2{Name: "t", Count: 2}
	_, err = rec.Insert(t.Context(), tx, sqlbinder.InsertOptions{})
	require.NoError(t, err)
	rec.Count = 3
	_, err = rec.Update(t.Context(), tx, sqlbinder.UpdateOptions{PrimaryKey: "title"})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	require.NoError(t, mock.ExpectationsWereMet())
}

func openSQLite(t *testing.T) *dsql.Driver {
	t.Helper()
	drv, err := dsql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { drv.Close() })
	// Every connection to :memory: opens a new database.
	drv.DB().SetMaxOpenConns(1)
	return drv
}

func TestSQLite_Dog(t *testing.T) {
	drv := openSQLite(t)
	ctx := t.Context()
	_, err := drv.ExecContext(ctx, `CREATE TABLE dog (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		age INTEGER NOT NULL,
		life_expectancy INTEGER NOT NULL
	)`)
	require.NoError(t, err)

	d := newDog()
	res, err := d.Insert(ctx, drv, sqlbinder.InsertOptions{PrimaryKey: "id"})
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	d.ID = id

	d.Age = 4
	d.Name = "Rexy"
	res, err = d.Update(ctx, drv, sqlbinder.UpdateOptions{PrimaryKey: "id"})
	require.NoError(t, err)
	n, err := res.RowsAffected()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	var got Dog
	err = drv.DB().QueryRowContext(ctx, "SELECT id, name, age, life_expectancy FROM dog WHERE id = ?", id).
		Scan(&got.ID, &got.Name, &got.Age, &got.LifeExpectancy)
	require.NoError(t, err)
	assert.Equal(t, *d, got)
}

func TestSQLite_Keeper(t *testing.T) {
	drv := openSQLite(t)
	ctx := t.Context()
	_, err := drv.ExecContext(ctx, `CREATE TABLE keeper (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		hired_at DATETIME NOT NULL,
		zone TEXT,
		created_at TEXT
	)`)
	require.NoError(t, err)

	k := &Keeper{ID: uuid.New(), Name: "Ann", HiredAt: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)}
	_, err = k.Insert(ctx, drv, sqlbinder.InsertOptions{
		ExtraColumns:      ",created_at",
		ExtraPlaceholders: ",?",
		ExtraValues:       []any{"today"},
	})
	require.NoError(t, err)

	var (
		name, created string
		zone          sql.NullString
	)
	err = drv.DB().QueryRowContext(ctx, "SELECT name, zone, created_at FROM keeper WHERE id = ?", k.ID.String()).
		Scan(&name, &zone, &created)
	require.NoError(t, err)
	assert.Equal(t, "Ann", name)
	assert.False(t, zone.Valid)
	assert.Equal(t, "today", created)

	north := "north"
	k.Zone = &north
	_, err = k.Update(ctx, drv, sqlbinder.UpdateOptions{PrimaryKey: "id"})
	require.NoError(t, err)
	err = drv.DB().QueryRowContext(ctx, "SELECT zone FROM keeper WHERE id = ?", k.ID.String()).Scan(&zone)
	require.NoError(t, err)
	assert.Equal(t, sql.NullString{String: "north", Valid: true}, zone)
}

func TestSQLite_UnknownColumn(t *testing.T) {
	drv := openSQLite(t)
	ctx := t.Context()
	_, err := drv.ExecContext(ctx, `CREATE TABLE skipper (name TEXT)`)
	require.NoError(t, err)

	_, err = (&Skipper{Name: "s"}).Insert(ctx, drv, sqlbinder.InsertOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "life_expectancy")
}

func TestStatsDriver(t *testing.T) {
	drv := openSQLite(t)
	ctx := t.Context()
	_, err := drv.ExecContext(ctx, `CREATE TABLE this_is_struct_name ("Value" TEXT)`)
	require.NoError(t, err)

	sd := dsql.NewStatsDriver(drv, dsql.WithSlowThreshold(-1))
	for _, v := range []string{"a", "b"} {
		_, err := (&ThisIsStructName{Value: v}).Insert(ctx, sd, sqlbinder.InsertOptions{})
		require.NoError(t, err)
	}
	stats := sd.QueryStats().Stats()
	assert.Equal(t, int64(2), stats.TotalExecs)
	assert.Equal(t, int64(2), stats.SlowQueries)
	assert.Zero(t, stats.Errors)
}
