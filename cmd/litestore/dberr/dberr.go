// Package dberr classifies errors reported by the SQLite backend into a
// small set of kinds that callers can switch on.
package dberr

import (
	"errors"
	"strings"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type Kind int

const (
	Unknown Kind = iota
	NotFound
	ConstraintViolation
	SyntaxError
	Busy
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case ConstraintViolation:
		return "constraint violation"
	case SyntaxError:
		return "syntax error"
	case Busy:
		return "busy"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// FromSQLite wraps a driver error in an Error with a classified kind.  A nil
// error is passed through unchanged.
func FromSQLite(err error) error {
	if err == nil {
		return nil
	}
	var serr *sqlite.Error
	if !errors.As(err, &serr) {
		return &Error{Kind: Unknown, Message: err.Error(), Err: err}
	}
	var kind Kind
	switch serr.Code() & 0xff {
	case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
		kind = Busy
	case sqlite3.SQLITE_CONSTRAINT:
		kind = ConstraintViolation
	case sqlite3.SQLITE_ERROR:
		// SQLite reports missing tables and SQL syntax problems under the
		// same primary code; the message is the only way to tell them apart.
		if strings.Contains(serr.Error(), "no such table") {
			kind = NotFound
		} else {
			kind = SyntaxError
		}
	default:
		kind = Unknown
	}
	return &Error{Kind: kind, Message: serr.Error(), Err: err}
}

// KindOf returns the kind of an error previously wrapped by FromSQLite, or
// Unknown for any other error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}
