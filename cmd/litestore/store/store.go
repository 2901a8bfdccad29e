// Package store maps semi-structured records onto relational tables.  It
// derives table schemas from sample records, validates writes against the
// current schema, and round-trips values that SQLite cannot natively
// represent through the codec package.
//
// The store holds no state across calls: every operation re-reads the
// table's schema from the backend, so it is safe to invoke concurrently from
// independent callers against the same database.  Conflicting writers are
// serialized by SQLite itself; a Busy error is surfaced to the caller, which
// owns any retry policy.
package store

import (
	"github.com/litestore-project/litestore/cmd/litestore/schema"
	"github.com/litestore-project/litestore/cmd/litestore/sqlx"
	"github.com/litestore-project/litestore/cmd/litestore/types"
)

// Record is a mapping from column name to value.  Records are consumed by a
// single write operation and never retained.
type Record map[string]interface{}

type Options struct {
	// TextNative stores string values in TEXT columns instead of through
	// the codec.  See types.Mapper.
	TextNative bool
}

type Store struct {
	db     *sqlx.DB
	mapper types.Mapper
}

func New(db *sqlx.DB, opt Options) *Store {
	return &Store{
		db:     db,
		mapper: types.Mapper{TextNative: opt.TextNative},
	}
}

// Describe reads the current schema of a table.
func (s *Store) Describe(table string) (*schema.TableSchema, error) {
	return schema.Describe(s.db, table)
}

// PrimaryKeys returns the primary key column names of a table in key rank
// order, or [schema.RowIDColumn] if the table has no explicit key.
func (s *Store) PrimaryKeys(table string) ([]string, error) {
	return schema.PrimaryKeys(s.db, table)
}
