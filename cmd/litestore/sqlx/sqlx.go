// Package sqlx provides the SQLite backend used by the schema inspector and
// the record store.  Every statement executes in its own transaction, and
// every connection and statement handle is released before the call returns.
package sqlx

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	_ "modernc.org/sqlite"

	"github.com/litestore-project/litestore/cmd/litestore/dberr"
	"github.com/litestore-project/litestore/cmd/litestore/log"
	"github.com/litestore-project/litestore/cmd/litestore/util"
)

type DB struct {
	db   *sql.DB
	path string
}

// Table identifies a table.  The name is interpolated into statement text
// after quoting; values are always bound as parameters.
type Table struct {
	Name string
}

func (t Table) String() string {
	return t.Name
}

func (t Table) SQL() string {
	return util.QuoteIdentifier(t.Name)
}

// ColumnInfo is one column as reported by the backend.
type ColumnInfo struct {
	Ordinal      int
	Name         string
	DeclaredType string
	NotNull      bool
	PrimaryKey   int
}

// Open opens a SQLite database file, creating it if it does not exist.  A
// busy timeout of busyTimeoutMS milliseconds is applied to every connection;
// zero keeps the driver default.
func Open(path string, busyTimeoutMS int) (*DB, error) {
	dsn := path
	if busyTimeoutMS > 0 {
		dsn += "?_pragma=busy_timeout(" + strconv.Itoa(busyTimeoutMS) + ")"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %s: %v", path, err)
	}
	return &DB{db: db, path: path}, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) Path() string {
	return d.path
}

// Exec runs a statement in its own transaction: committed on success, rolled
// back on error.
func (d *DB) Exec(ctx context.Context, query string, args ...interface{}) error {
	log.Trace("exec: %s", query)
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return dberr.FromSQLite(err)
	}
	defer rollback(tx)
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return dberr.FromSQLite(err)
	}
	if err = tx.Commit(); err != nil {
		return dberr.FromSQLite(err)
	}
	return nil
}

// Query runs a read-only statement and returns its rows.  The caller must
// close the rows.
func (d *DB) Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	log.Trace("query: %s", query)
	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dberr.FromSQLite(err)
	}
	return rows, nil
}

// TableColumns reports the columns of a table in declaration order.  A table
// unknown to the backend yields an empty slice, mirroring PRAGMA table_info.
func (d *DB) TableColumns(ctx context.Context, table Table) ([]ColumnInfo, error) {
	rows, err := d.Query(ctx, "PRAGMA table_info("+table.SQL()+")")
	if err != nil {
		return nil, fmt.Errorf("reading table info: %s: %v", table, err)
	}
	defer rows.Close()
	var columns []ColumnInfo
	for rows.Next() {
		var ci ColumnInfo
		var notnull int
		var dfltValue interface{}
		if err := rows.Scan(&ci.Ordinal, &ci.Name, &ci.DeclaredType, &notnull, &dfltValue, &ci.PrimaryKey); err != nil {
			return nil, fmt.Errorf("reading table info: %s: %v", table, err)
		}
		ci.NotNull = notnull != 0
		columns = append(columns, ci)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading table info: %s: %v", table, dberr.FromSQLite(err))
	}
	return columns, nil
}

func rollback(tx *sql.Tx) {
	_ = tx.Rollback()
}
