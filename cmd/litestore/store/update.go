package store

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/litestore-project/litestore/cmd/litestore/schema"
	"github.com/litestore-project/litestore/cmd/litestore/sqlx"
	"github.com/litestore-project/litestore/cmd/litestore/types"
	"github.com/litestore-project/litestore/cmd/litestore/util"
)

// Update modifies the record matching keyValues, setting the columns in
// changedValues.  keyValues must supply exactly the table's primary key
// columns (in any order), and every changed column must exist in the table.
// All key columns are matched conjunctively, and the update commits in its
// own transaction.
//
// For a table with no explicit primary key, the key set is the
// schema.RowIDColumn sentinel, which matches against the backend's implicit
// row identity.
func (s *Store) Update(table string, keyValues, changedValues Record) error {
	ts, err := schema.Describe(s.db, table)
	if err != nil {
		return err
	}
	pk := ts.PrimaryKeyColumns()
	implicitKey := len(pk) == 0
	if implicitKey {
		pk = []string{schema.RowIDColumn}
	}
	if !sameColumnSet(pk, keyValues) {
		given := make([]string, 0, len(keyValues))
		for name := range keyValues {
			given = append(given, name)
		}
		sort.Strings(given)
		return &KeyMismatchError{Table: table, Want: pk, Got: given}
	}
	changed := make([]string, 0, len(changedValues))
	for name := range changedValues {
		if _, ok := ts.Column(name); !ok {
			return &UnknownColumnError{Table: table, Column: name}
		}
		changed = append(changed, name)
	}
	sort.Strings(changed)

	args := make([]interface{}, 0, len(changed)+len(pk))
	var b strings.Builder
	tbl := sqlx.Table{Name: table}
	b.WriteString("UPDATE " + tbl.SQL() + " SET ")
	for i, name := range changed {
		if i != 0 {
			b.WriteString(",")
		}
		b.WriteString(util.QuoteIdentifier(name) + " = ?")
		v, err := bindValue(table, name, columnType(ts, name), changedValues[name])
		if err != nil {
			return err
		}
		args = append(args, v)
	}
	b.WriteString(" WHERE ")
	for i, name := range pk {
		if i != 0 {
			b.WriteString(" AND ")
		}
		if implicitKey && name == schema.RowIDColumn {
			// Match on SQLite's implicit rowid.
			b.WriteString("rowid = ?")
		} else {
			b.WriteString(util.QuoteIdentifier(name) + " = ?")
		}
		v, err := bindValue(table, name, columnType(ts, name), keyValues[name])
		if err != nil {
			return err
		}
		args = append(args, v)
	}
	if err := s.db.Exec(context.TODO(), b.String(), args...); err != nil {
		return fmt.Errorf("updating record in table %s: %w", table, err)
	}
	return nil
}

func sameColumnSet(want []string, given Record) bool {
	if len(want) != len(given) {
		return false
	}
	for _, name := range want {
		if _, ok := given[name]; !ok {
			return false
		}
	}
	return true
}

// columnType returns the declared data type of a column, or IntegerType for
// the implicit rowid sentinel, which is not part of the declared column set.
func columnType(ts *schema.TableSchema, name string) types.DataType {
	if c, ok := ts.Column(name); ok {
		return c.Type
	}
	return types.IntegerType
}
