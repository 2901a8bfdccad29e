package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/litestore-project/litestore/cmd/litestore/log"
	"github.com/litestore-project/litestore/cmd/litestore/schema"
	"github.com/litestore-project/litestore/cmd/litestore/sqlx"
	"github.com/litestore-project/litestore/cmd/litestore/types"
	"github.com/litestore-project/litestore/cmd/litestore/util"
)

// inferFromFirstRecordOnly documents the schema inference policy: column
// names and types are derived from the first record alone, and subsequent
// records are not inspected for schema.  Mixed-shape input surfaces as a
// column mismatch during the bulk load, not as a widened schema.
const inferFromFirstRecordOnly = true

// CreateTable creates a table whose schema is derived from records and bulk
// loads the records into it.  Column names are sanitized, key columns are
// declared NOT NULL, and the primary key is composite over keyColumns in the
// given order.  If keyColumns is empty, a __rowid__ integer column is
// synthesized and each record is stamped with a dense 0-based identity in
// input order.
//
// Creation is all-or-nothing: if any record fails to load, the table is
// dropped again.  CreateTable fails if the table already exists.
func (s *Store) CreateTable(table string, records []Record, keyColumns []string) (*schema.TableSchema, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("creating table %s: at least one record is required to derive a schema", table)
	}
	_, err := schema.Describe(s.db, table)
	if err == nil {
		return nil, fmt.Errorf("creating table %s: table already exists", table)
	}
	var notFound *schema.TableNotFoundError
	if !errors.As(err, &notFound) {
		return nil, fmt.Errorf("creating table %s: %v", table, err)
	}

	sanitized, err := sanitizeRecords(records)
	if err != nil {
		return nil, fmt.Errorf("creating table %s: %v", table, err)
	}
	if len(keyColumns) == 0 {
		keyColumns = []string{schema.RowIDColumn}
		for i := range sanitized {
			sanitized[i][schema.RowIDColumn] = int64(i)
		}
	} else {
		keys := make([]string, len(keyColumns))
		for i, k := range keyColumns {
			keys[i] = util.SanitizeName(k)
		}
		keyColumns = keys
	}

	columns := s.inferColumns(sanitized[0])
	if missing := missingColumns(keyColumns, columns); len(missing) > 0 {
		return nil, &InvalidKeyError{Table: table, Missing: missing}
	}

	tbl := sqlx.Table{Name: table}
	if err := s.db.Exec(context.TODO(), createTableSQL(tbl, columns, keyColumns)); err != nil {
		return nil, fmt.Errorf("creating table %s: %v", table, err)
	}
	log.Debug("created table %s (%d columns)", table, len(columns))

	for i, rec := range sanitized {
		if err := s.Insert(table, rec); err != nil {
			loadErr := fmt.Errorf("loading record %d into table %s: %w", i, table, err)
			if dropErr := s.db.Exec(context.TODO(), "DROP TABLE "+tbl.SQL()); dropErr != nil {
				return nil, errors.Join(loadErr,
					fmt.Errorf("dropping partially loaded table %s: %w", table, dropErr))
			}
			return nil, loadErr
		}
	}
	return schema.Describe(s.db, table)
}

type columnDef struct {
	name  string
	dtype types.DataType
}

// inferColumns derives the column set from a single record, in sorted name
// order so that map iteration does not make table layout nondeterministic.
func (s *Store) inferColumns(first Record) []columnDef {
	names := make([]string, 0, len(first))
	for name := range first {
		names = append(names, name)
	}
	sort.Strings(names)
	columns := make([]columnDef, 0, len(names))
	for _, name := range names {
		columns = append(columns, columnDef{name: name, dtype: s.mapper.Infer(first[name])})
	}
	return columns
}

func missingColumns(keyColumns []string, columns []columnDef) []string {
	var missing []string
	for _, k := range keyColumns {
		found := false
		for _, c := range columns {
			if c.name == k {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, k)
		}
	}
	return missing
}

func createTableSQL(tbl sqlx.Table, columns []columnDef, keyColumns []string) string {
	keySet := make(map[string]bool)
	for _, k := range keyColumns {
		keySet[k] = true
	}
	var b strings.Builder
	b.WriteString("CREATE TABLE " + tbl.SQL() + " (")
	for i, c := range columns {
		if i != 0 {
			b.WriteString(",")
		}
		b.WriteString(util.QuoteIdentifier(c.name))
		if t := types.DataTypeToSQL(c.dtype); t != "" {
			b.WriteString(" " + t)
		}
		if keySet[c.name] {
			b.WriteString(" NOT NULL")
		}
	}
	b.WriteString(",PRIMARY KEY (" + util.JoinQuoted(keyColumns) + "))")
	return b.String()
}

// sanitizeRecords re-keys every record with sanitized column names.  The
// caller's maps are never mutated.
func sanitizeRecords(records []Record) ([]Record, error) {
	out := make([]Record, len(records))
	for i, rec := range records {
		clean := make(Record, len(rec))
		for name, value := range rec {
			n := util.SanitizeName(name)
			if _, ok := clean[n]; ok {
				return nil, fmt.Errorf("column name collision after sanitizing: %s", n)
			}
			clean[n] = value
		}
		out[i] = clean
	}
	return out, nil
}
