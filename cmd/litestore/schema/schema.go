// Package schema reads table descriptors from the backend.  Descriptors are
// derived data: they are re-read from the backend on every call and never
// cached, so concurrent schema changes are always observed.
package schema

import (
	"context"
	"fmt"
	"sort"

	"github.com/litestore-project/litestore/cmd/litestore/sqlx"
	"github.com/litestore-project/litestore/cmd/litestore/types"
)

// RowIDColumn is the synthesized key column used when a table has no
// explicit primary key.
const RowIDColumn = "__rowid__"

type TableNotFoundError struct {
	Table string
}

func (e *TableNotFoundError) Error() string {
	return fmt.Sprintf("table not found: %s", e.Table)
}

// ColumnDescriptor describes one column of a table.
type ColumnDescriptor struct {
	Index      int
	Name       string
	Type       types.DataType
	NotNull    bool
	PrimaryKey int // 1-based rank within the primary key, 0 if not a key column
}

// TableSchema is an ordered sequence of column descriptors.
type TableSchema struct {
	Table   string
	Columns []ColumnDescriptor
}

func (s *TableSchema) ColumnNames() []string {
	names := make([]string, 0, len(s.Columns))
	for _, c := range s.Columns {
		names = append(names, c.Name)
	}
	return names
}

func (s *TableSchema) Column(name string) (*ColumnDescriptor, bool) {
	for i := range s.Columns {
		if s.Columns[i].Name == name {
			return &s.Columns[i], true
		}
	}
	return nil, false
}

// PrimaryKeyColumns returns the names of the primary key columns ordered by
// key rank, which may differ from declaration order.
func (s *TableSchema) PrimaryKeyColumns() []string {
	var keys []ColumnDescriptor
	for _, c := range s.Columns {
		if c.PrimaryKey > 0 {
			keys = append(keys, c)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].PrimaryKey < keys[j].PrimaryKey })
	names := make([]string, 0, len(keys))
	for _, c := range keys {
		names = append(names, c.Name)
	}
	return names
}

// NotNullColumnNames returns the names of columns declared NOT NULL, in
// declaration order.
func (s *TableSchema) NotNullColumnNames() []string {
	var names []string
	for _, c := range s.Columns {
		if c.NotNull {
			names = append(names, c.Name)
		}
	}
	return names
}

// Describe reads a table's schema from the backend.
func Describe(db *sqlx.DB, table string) (*TableSchema, error) {
	columns, err := db.TableColumns(context.TODO(), sqlx.Table{Name: table})
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, &TableNotFoundError{Table: table}
	}
	s := &TableSchema{Table: table}
	for _, ci := range columns {
		s.Columns = append(s.Columns, ColumnDescriptor{
			Index:      ci.Ordinal,
			Name:       ci.Name,
			Type:       types.MakeDataType(ci.DeclaredType),
			NotNull:    ci.NotNull,
			PrimaryKey: ci.PrimaryKey,
		})
	}
	return s, nil
}

// PrimaryKeys returns the primary key column names of a table in key rank
// order.  A table with no explicit primary key yields [RowIDColumn], meaning
// the backend's implicit row identity; it is never an empty list, because
// downstream key matching requires at least one column.
func PrimaryKeys(db *sqlx.DB, table string) ([]string, error) {
	s, err := Describe(db, table)
	if err != nil {
		return nil, err
	}
	keys := s.PrimaryKeyColumns()
	if len(keys) == 0 {
		return []string{RowIDColumn}, nil
	}
	return keys, nil
}

// NotNullColumns returns the names of a table's NOT NULL columns.
func NotNullColumns(db *sqlx.DB, table string) ([]string, error) {
	s, err := Describe(db, table)
	if err != nil {
		return nil, err
	}
	return s.NotNullColumnNames(), nil
}
