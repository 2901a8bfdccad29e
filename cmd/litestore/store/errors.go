package store

import "fmt"

// InvalidKeyError reports key columns that are not part of the inferred
// column set.
type InvalidKeyError struct {
	Table   string
	Missing []string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("key columns not in column set: table %s: %v", e.Table, e.Missing)
}

// ColumnMismatchError reports a record whose column set does not exactly
// match the table's declared columns.
type ColumnMismatchError struct {
	Table   string
	Missing []string
	Extra   []string
}

func (e *ColumnMismatchError) Error() string {
	return fmt.Sprintf("record columns do not match table %s: missing %v, extra %v", e.Table, e.Missing, e.Extra)
}

// KeyMismatchError reports a key value set that is not exactly the table's
// primary key column set.
type KeyMismatchError struct {
	Table string
	Want  []string
	Got   []string
}

func (e *KeyMismatchError) Error() string {
	return fmt.Sprintf("key columns must match table primary key: table %s: expected %v, given %v", e.Table, e.Want, e.Got)
}

// UnknownColumnError reports a column that does not exist in the table.
type UnknownColumnError struct {
	Table  string
	Column string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("column does not exist: table %s: %s", e.Table, e.Column)
}

// DecodeError reports a stored value that is not valid for its column's
// declared type.
type DecodeError struct {
	Table  string
	Column string
	Row    int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding value: table %s, column %s, row %d: %v", e.Table, e.Column, e.Row, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
