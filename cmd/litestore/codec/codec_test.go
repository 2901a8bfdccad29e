package codec

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestRoundTripNil(t *testing.T) {
	b, err := Encode(nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != nil {
		t.Errorf("got %v; want nil", got)
	}
}

func TestRoundTripBool(t *testing.T) {
	for _, v := range []bool{true, false} {
		b, err := Encode(v)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		got, err := Decode(b)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got != v {
			t.Errorf("got %v; want %v", got, v)
		}
	}
}

func TestRoundTripInt(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 42, -9223372036854775808, 9223372036854775807} {
		b, err := Encode(v)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		got, err := Decode(b)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got != v {
			t.Errorf("got %v; want %v", got, v)
		}
	}
}

func TestRoundTripIntWidths(t *testing.T) {
	// All integer widths normalize to int64.
	b, err := Encode(int32(7))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != int64(7) {
		t.Errorf("got %v (%T); want int64 7", got, got)
	}
}

func TestRoundTripUint64(t *testing.T) {
	var v uint64 = 18446744073709551615
	b, err := Encode(v)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != v {
		t.Errorf("got %v; want %v", got, v)
	}
}

func TestRoundTripSmallUint64(t *testing.T) {
	// Values within the int64 range normalize to int64.
	b, err := Encode(uint64(12))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != int64(12) {
		t.Errorf("got %v (%T); want int64 12", got, got)
	}
}

func TestRoundTripReal(t *testing.T) {
	for _, v := range []float64{0, 1.5, -2.25, 1e300} {
		b, err := Encode(v)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		got, err := Decode(b)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got != v {
			t.Errorf("got %v; want %v", got, v)
		}
	}
}

func TestRoundTripString(t *testing.T) {
	for _, v := range []string{"", "abc", "it's \"quoted\"", "line\nbreak", "naïve"} {
		b, err := Encode(v)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		got, err := Decode(b)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got != v {
			t.Errorf("got %q; want %q", got, v)
		}
	}
}

func TestRoundTripBytes(t *testing.T) {
	var v = []byte{0, 1, 2, 255, '\''}
	b, err := Encode(v)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(got.([]byte), v) {
		t.Errorf("got %v; want %v", got, v)
	}
}

func TestRoundTripTime(t *testing.T) {
	var v = time.Date(2024, 3, 15, 9, 30, 0, 123456789, time.UTC)
	b, err := Encode(v)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.(time.Time).Equal(v) {
		t.Errorf("got %v; want %v", got, v)
	}
}

func TestRoundTripDecimal(t *testing.T) {
	var v = decimal.New(125, -2)
	b, err := Encode(v)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.(decimal.Decimal).Equal(v) {
		t.Errorf("got %v; want %v", got, v)
	}
}

func TestRoundTripJSONObject(t *testing.T) {
	var v = map[string]interface{}{
		"name":   "Ann",
		"scores": []interface{}{1.5, 2.5},
		"nested": map[string]interface{}{"ok": true},
	}
	b, err := Encode(v)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(got, v) {
		t.Errorf("got %v; want %v", got, v)
	}
}

func TestReencodeFixedPoint(t *testing.T) {
	// For all bytes b produced by Encode, Encode(Decode(b)) == b.
	var values = []interface{}{
		nil,
		true,
		int64(-7),
		uint64(18446744073709551615),
		3.14,
		"text",
		[]byte{9, 8, 7},
		time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC),
		decimal.New(125, -2),
		map[string]interface{}{"b": 2.0, "a": []interface{}{"x", false, nil}},
	}
	for _, v := range values {
		b, err := Encode(v)
		if err != nil {
			t.Fatalf("encode %v: %v", v, err)
		}
		decoded, err := Decode(b)
		if err != nil {
			t.Fatalf("decode %v: %v", v, err)
		}
		b2, err := Encode(decoded)
		if err != nil {
			t.Fatalf("re-encode %v: %v", v, err)
		}
		if !bytes.Equal(b, b2) {
			t.Errorf("re-encoding not a fixed point for %v: %q != %q", v, b, b2)
		}
	}
}

func TestDecodeEmpty(t *testing.T) {
	_, err := Decode(nil)
	var cerr *Error
	if !errors.As(err, &cerr) {
		t.Errorf("got %v; want *Error", err)
	}
}

func TestDecodeUnknownTag(t *testing.T) {
	_, err := Decode([]byte{'?', 1, 2})
	var cerr *Error
	if !errors.As(err, &cerr) {
		t.Errorf("got %v; want *Error", err)
	}
}

func TestDecodeShortInteger(t *testing.T) {
	_, err := Decode([]byte{'i', 1, 2})
	var cerr *Error
	if !errors.As(err, &cerr) {
		t.Errorf("got %v; want *Error", err)
	}
}

func TestDecodeBadJSON(t *testing.T) {
	_, err := Decode([]byte{'j', '{'})
	var cerr *Error
	if !errors.As(err, &cerr) {
		t.Errorf("got %v; want *Error", err)
	}
}

func TestDecodeBadDecimal(t *testing.T) {
	_, err := Decode([]byte("dnot-a-number"))
	var cerr *Error
	if !errors.As(err, &cerr) {
		t.Errorf("got %v; want *Error", err)
	}
}

func TestEncodeUnmarshalable(t *testing.T) {
	_, err := Encode(make(chan int))
	var cerr *Error
	if !errors.As(err, &cerr) {
		t.Errorf("got %v; want *Error", err)
	}
}
