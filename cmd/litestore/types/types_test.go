package types

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestInferInteger(t *testing.T) {
	var m Mapper
	for _, sample := range []interface{}{int(1), int8(1), int16(1), int32(1), int64(1), uint(1), uint8(1), uint16(1), uint32(1), uint64(1)} {
		got := m.Infer(sample)
		if got != IntegerType {
			t.Errorf("sample %T: got %v; want %v", sample, got, IntegerType)
		}
	}
}

func TestInferReal(t *testing.T) {
	var m Mapper
	for _, sample := range []interface{}{float32(1.5), float64(1.5)} {
		got := m.Infer(sample)
		if got != RealType {
			t.Errorf("sample %T: got %v; want %v", sample, got, RealType)
		}
	}
}

func TestInferStringDefault(t *testing.T) {
	var m Mapper
	got := m.Infer("abc")
	if got != OpaqueType {
		t.Errorf("got %v; want %v", got, OpaqueType)
	}
}

func TestInferStringTextNative(t *testing.T) {
	var m = Mapper{TextNative: true}
	got := m.Infer("abc")
	if got != TextType {
		t.Errorf("got %v; want %v", got, TextType)
	}
}

func TestInferDecimal(t *testing.T) {
	var m Mapper
	got := m.Infer(decimal.New(125, -2))
	if got != OpaqueType {
		t.Errorf("got %v; want %v", got, OpaqueType)
	}
}

func TestInferOpaque(t *testing.T) {
	var m Mapper
	for _, sample := range []interface{}{true, nil, map[string]interface{}{"a": 1}, []interface{}{1, 2}, []byte{1}} {
		got := m.Infer(sample)
		if got != OpaqueType {
			t.Errorf("sample %T: got %v; want %v", sample, got, OpaqueType)
		}
	}
}

func TestMakeDataType(t *testing.T) {
	var tests = []struct {
		declared string
		want     DataType
	}{
		{"INTEGER", IntegerType},
		{"int", IntegerType},
		{"BIGINT", IntegerType},
		{"REAL", RealType},
		{"DOUBLE", RealType},
		{"FLOAT", RealType},
		{"TEXT", TextType},
		{"VARCHAR(30)", TextType},
		{"CLOB", TextType},
		{"", OpaqueType},
		{"BLOB", OpaqueType},
	}
	for _, tt := range tests {
		got := MakeDataType(tt.declared)
		if got != tt.want {
			t.Errorf("declared %q: got %v; want %v", tt.declared, got, tt.want)
		}
	}
}

func TestDataTypeToSQLRoundTrip(t *testing.T) {
	for _, dtype := range []DataType{IntegerType, RealType, TextType, OpaqueType} {
		got := MakeDataType(DataTypeToSQL(dtype))
		if got != dtype {
			t.Errorf("got %v; want %v", got, dtype)
		}
	}
}
