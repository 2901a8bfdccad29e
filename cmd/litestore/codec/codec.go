// Package codec encodes values that SQLite cannot natively represent into a
// tagged binary form and decodes them back.
//
// An encoded value is a single tag byte followed by the payload.  The payload
// runs to the end of the encoding, so no delimiter characters are
// interpreted and the bytes can never break out of a SQL literal.  Encoded
// values are always bound as statement parameters regardless.
//
// Encoding is deterministic: for any bytes b produced by Encode,
// Encode(Decode(b)) returns b.  Decode(Encode(v)) reconstructs a value equal
// to v under the value's own equality, with two documented normalizations:
// integer values of any width decode as int64 (uint64 values above the int64
// range decode as uint64), and values encoded through the JSON tag decode as
// the JSON-derived types (map[string]interface{}, []interface{}, float64,
// string, bool, nil).
package codec

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

const (
	tagNil     = 'z'
	tagFalse   = '0'
	tagTrue    = '1'
	tagInt     = 'i'
	tagUint    = 'u'
	tagReal    = 'f'
	tagText    = 's'
	tagBytes   = 'b'
	tagTime    = 't'
	tagDecimal = 'd'
	tagJSON    = 'j'
)

// Error reports a malformed encoding or an unencodable value.
type Error struct {
	Msg string
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Encode converts a value to its binary encoding.  Values with no dedicated
// tag are marshaled as canonical JSON; a value that cannot be marshaled
// fails with *Error.
func Encode(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return []byte{tagNil}, nil
	case bool:
		if v {
			return []byte{tagTrue}, nil
		}
		return []byte{tagFalse}, nil
	case int:
		return encodeInt(int64(v)), nil
	case int8:
		return encodeInt(int64(v)), nil
	case int16:
		return encodeInt(int64(v)), nil
	case int32:
		return encodeInt(int64(v)), nil
	case int64:
		return encodeInt(v), nil
	case uint:
		return encodeUint(uint64(v)), nil
	case uint8:
		return encodeInt(int64(v)), nil
	case uint16:
		return encodeInt(int64(v)), nil
	case uint32:
		return encodeInt(int64(v)), nil
	case uint64:
		return encodeUint(v), nil
	case float32:
		return encodeReal(float64(v)), nil
	case float64:
		return encodeReal(v), nil
	case string:
		return append([]byte{tagText}, []byte(v)...), nil
	case []byte:
		return append([]byte{tagBytes}, v...), nil
	case time.Time:
		return append([]byte{tagTime}, []byte(v.Format(time.RFC3339Nano))...), nil
	case decimal.Decimal:
		return append([]byte{tagDecimal}, []byte(v.String())...), nil
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return nil, &Error{Msg: fmt.Sprintf("encoding value of type %T", value), Err: err}
		}
		return append([]byte{tagJSON}, b...), nil
	}
}

// Decode converts an encoding produced by Encode back to a value.  Malformed
// input fails with *Error; Decode never silently returns a value of the
// wrong type.
func Decode(data []byte) (interface{}, error) {
	if len(data) == 0 {
		return nil, &Error{Msg: "decoding empty input"}
	}
	tag := data[0]
	payload := data[1:]
	switch tag {
	case tagNil:
		if len(payload) != 0 {
			return nil, &Error{Msg: "decoding nil value: unexpected payload"}
		}
		return nil, nil
	case tagFalse:
		if len(payload) != 0 {
			return nil, &Error{Msg: "decoding boolean: unexpected payload"}
		}
		return false, nil
	case tagTrue:
		if len(payload) != 0 {
			return nil, &Error{Msg: "decoding boolean: unexpected payload"}
		}
		return true, nil
	case tagInt:
		if len(payload) != 8 {
			return nil, &Error{Msg: fmt.Sprintf("decoding integer: payload length %d", len(payload))}
		}
		return int64(binary.BigEndian.Uint64(payload)), nil
	case tagUint:
		if len(payload) != 8 {
			return nil, &Error{Msg: fmt.Sprintf("decoding unsigned integer: payload length %d", len(payload))}
		}
		return binary.BigEndian.Uint64(payload), nil
	case tagReal:
		if len(payload) != 8 {
			return nil, &Error{Msg: fmt.Sprintf("decoding real: payload length %d", len(payload))}
		}
		return math.Float64frombits(binary.BigEndian.Uint64(payload)), nil
	case tagText:
		return string(payload), nil
	case tagBytes:
		b := make([]byte, len(payload))
		copy(b, payload)
		return b, nil
	case tagTime:
		t, err := time.Parse(time.RFC3339Nano, string(payload))
		if err != nil {
			return nil, &Error{Msg: "decoding timestamp", Err: err}
		}
		return t, nil
	case tagDecimal:
		d, err := decimal.NewFromString(string(payload))
		if err != nil {
			return nil, &Error{Msg: "decoding decimal", Err: err}
		}
		return d, nil
	case tagJSON:
		var v interface{}
		if err := json.Unmarshal(payload, &v); err != nil {
			return nil, &Error{Msg: "decoding JSON value", Err: err}
		}
		return v, nil
	default:
		return nil, &Error{Msg: fmt.Sprintf("unknown encoding tag: %q", tag)}
	}
}

func encodeInt(v int64) []byte {
	b := make([]byte, 9)
	b[0] = tagInt
	binary.BigEndian.PutUint64(b[1:], uint64(v))
	return b
}

func encodeUint(v uint64) []byte {
	if v <= math.MaxInt64 {
		return encodeInt(int64(v))
	}
	b := make([]byte, 9)
	b[0] = tagUint
	binary.BigEndian.PutUint64(b[1:], v)
	return b
}

func encodeReal(v float64) []byte {
	b := make([]byte, 9)
	b[0] = tagReal
	binary.BigEndian.PutUint64(b[1:], math.Float64bits(v))
	return b
}
