package store

import (
	"context"
	"fmt"
	"strconv"

	"github.com/litestore-project/litestore/cmd/litestore/codec"
	"github.com/litestore-project/litestore/cmd/litestore/schema"
	"github.com/litestore-project/litestore/cmd/litestore/sqlx"
	"github.com/litestore-project/litestore/cmd/litestore/types"
	"github.com/litestore-project/litestore/cmd/litestore/util"
)

// ReadAll retrieves every row of a table, decoding each column back to its
// original value according to the column's declared type.  Rows are returned
// in the backend's native order, which is not guaranteed sorted.  A stored
// value that is not valid for its column's type fails with *DecodeError
// identifying the table, column, and row.
func (s *Store) ReadAll(table string) ([]Record, error) {
	ts, err := schema.Describe(s.db, table)
	if err != nil {
		return nil, err
	}
	names := ts.ColumnNames()
	tbl := sqlx.Table{Name: table}
	rows, err := s.db.Query(context.TODO(), "SELECT "+util.JoinQuoted(names)+" FROM "+tbl.SQL())
	if err != nil {
		return nil, fmt.Errorf("reading table %s: %v", table, err)
	}
	defer rows.Close()

	var records []Record
	raw := make([]interface{}, len(names))
	ptrs := make([]interface{}, len(names))
	for i := range raw {
		ptrs[i] = &raw[i]
	}
	rowIndex := 0
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("reading table %s: row %d: %v", table, rowIndex, err)
		}
		rec := make(Record, len(names))
		for i, c := range ts.Columns {
			v, err := decodeColumn(c.Type, raw[i])
			if err != nil {
				return nil, &DecodeError{Table: table, Column: c.Name, Row: rowIndex, Err: err}
			}
			rec[c.Name] = v
		}
		records = append(records, rec)
		rowIndex++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading table %s: %v", table, err)
	}
	return records, nil
}

func decodeColumn(dtype types.DataType, raw interface{}) (interface{}, error) {
	if raw == nil {
		return nil, nil
	}
	switch dtype {
	case types.IntegerType:
		switch v := raw.(type) {
		case int64:
			return v, nil
		case []byte:
			return strconv.ParseInt(string(v), 10, 64)
		case string:
			return strconv.ParseInt(v, 10, 64)
		default:
			return nil, fmt.Errorf("stored value has type %T, expected integer", raw)
		}
	case types.RealType:
		switch v := raw.(type) {
		case float64:
			return v, nil
		case int64:
			return float64(v), nil
		case []byte:
			return strconv.ParseFloat(string(v), 64)
		case string:
			return strconv.ParseFloat(v, 64)
		default:
			return nil, fmt.Errorf("stored value has type %T, expected real", raw)
		}
	case types.TextType:
		switch v := raw.(type) {
		case string:
			return v, nil
		case []byte:
			return string(v), nil
		default:
			return nil, fmt.Errorf("stored value has type %T, expected text", raw)
		}
	case types.OpaqueType:
		switch v := raw.(type) {
		case []byte:
			return codec.Decode(v)
		case string:
			return codec.Decode([]byte(v))
		default:
			return nil, fmt.Errorf("stored value has type %T, expected encoded bytes", raw)
		}
	default:
		return nil, fmt.Errorf("unknown column type: %s", dtype)
	}
}
