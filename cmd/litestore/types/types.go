package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

type DataType int

const (
	UnknownType DataType = 0
	IntegerType DataType = 1
	RealType    DataType = 2
	TextType    DataType = 3
	OpaqueType  DataType = 4
)

func (d DataType) String() string {
	switch d {
	case IntegerType:
		return "IntegerType"
	case RealType:
		return "RealType"
	case TextType:
		return "TextType"
	case OpaqueType:
		return "OpaqueType"
	default:
		return "(unknown type)"
	}
}

// MakeDataType converts a declared SQLite column type to a data type.  An
// empty declared type means the column stores codec-encoded values.
func MakeDataType(declared string) DataType {
	d := strings.ToUpper(strings.TrimSpace(declared))
	switch {
	case d == "" || strings.Contains(d, "BLOB"):
		return OpaqueType
	case strings.Contains(d, "INT"):
		return IntegerType
	case strings.Contains(d, "REAL") || strings.Contains(d, "FLOA") || strings.Contains(d, "DOUB"):
		return RealType
	case strings.Contains(d, "TEXT") || strings.Contains(d, "CHAR") || strings.Contains(d, "CLOB"):
		return TextType
	default:
		return OpaqueType
	}
}

// DataTypeToSQL converts a data type to a declared SQLite column type.
// Opaque columns are declared with an empty type, which gives them BLOB
// affinity.
func DataTypeToSQL(dtype DataType) string {
	switch dtype {
	case IntegerType:
		return "INTEGER"
	case RealType:
		return "REAL"
	case TextType:
		return "TEXT"
	case OpaqueType:
		return ""
	default:
		return ""
	}
}

// Mapper infers a column's data type from a sample value.  Classification is
// based solely on the first observed sample per column; heterogeneous columns
// are not validated further.
type Mapper struct {
	// TextNative maps string samples to TextType instead of OpaqueType.
	// The default stores strings through the codec, which avoids any
	// dependence on SQL quoting behavior.
	TextNative bool
}

// Infer classifies a sample value.  Integers map to IntegerType, floats to
// RealType, and everything else to OpaqueType, except strings when
// TextNative is set.
func (m Mapper) Infer(sample interface{}) DataType {
	switch sample.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return IntegerType
	case float32, float64:
		return RealType
	case string:
		if m.TextNative {
			return TextType
		}
		return OpaqueType
	case decimal.Decimal:
		// Exact numerics would lose precision in a REAL column.
		return OpaqueType
	default:
		return OpaqueType
	}
}
