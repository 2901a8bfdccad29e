package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/litestore-project/litestore/cmd/litestore/codec"
	"github.com/litestore-project/litestore/cmd/litestore/schema"
	"github.com/litestore-project/litestore/cmd/litestore/sqlx"
	"github.com/litestore-project/litestore/cmd/litestore/types"
	"github.com/litestore-project/litestore/cmd/litestore/util"
)

// Insert adds one record to a table.  The record must supply exactly the
// declared column set.  Values destined for opaque columns pass through the
// codec; all values are bound as statement parameters, never interpolated
// into the statement text.  The insert commits in its own transaction.
func (s *Store) Insert(table string, rec Record) error {
	ts, err := schema.Describe(s.db, table)
	if err != nil {
		return err
	}
	if err := matchColumnSet(ts, rec); err != nil {
		return err
	}
	names := ts.ColumnNames()
	args := make([]interface{}, 0, len(names))
	for _, c := range ts.Columns {
		v, err := bindValue(ts.Table, c.Name, c.Type, rec[c.Name])
		if err != nil {
			return err
		}
		args = append(args, v)
	}
	tbl := sqlx.Table{Name: table}
	query := "INSERT INTO " + tbl.SQL() + " (" + util.JoinQuoted(names) + ") VALUES (" +
		placeholders(len(names)) + ")"
	if err := s.db.Exec(context.TODO(), query, args...); err != nil {
		return fmt.Errorf("inserting record into table %s: %w", table, err)
	}
	return nil
}

// matchColumnSet requires the record's columns to be exactly the declared
// column set: no more, no fewer.
func matchColumnSet(ts *schema.TableSchema, rec Record) error {
	var missing, extra []string
	for _, c := range ts.Columns {
		if _, ok := rec[c.Name]; !ok {
			missing = append(missing, c.Name)
		}
	}
	for name := range rec {
		if _, ok := ts.Column(name); !ok {
			extra = append(extra, name)
		}
	}
	if len(missing) > 0 || len(extra) > 0 {
		return &ColumnMismatchError{Table: ts.Table, Missing: missing, Extra: extra}
	}
	return nil
}

// bindValue prepares a value for parameter binding.  Opaque columns store
// the codec encoding; other columns store the native value.
func bindValue(table, column string, dtype types.DataType, value interface{}) (interface{}, error) {
	if dtype != types.OpaqueType {
		return value, nil
	}
	b, err := codec.Encode(value)
	if err != nil {
		return nil, fmt.Errorf("encoding value for table %s, column %s: %w", table, column, err)
	}
	return b, nil
}

func placeholders(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i != 0 {
			b.WriteString(",")
		}
		b.WriteString("?")
	}
	return b.String()
}
