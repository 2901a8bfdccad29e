package util

import (
	"testing"
)

func TestSanitizeNameHyphen(t *testing.T) {
	var name = "first-name"
	var want = "first_name"
	got := SanitizeName(name)
	if got != want {
		t.Errorf("got %v; want %v", got, want)
	}
}

func TestSanitizeNameSpace(t *testing.T) {
	var name = "first name"
	var want = "first_name"
	got := SanitizeName(name)
	if got != want {
		t.Errorf("got %v; want %v", got, want)
	}
}

func TestSanitizeNameMixed(t *testing.T) {
	var name = "a b-c d"
	var want = "a_b_c_d"
	got := SanitizeName(name)
	if got != want {
		t.Errorf("got %v; want %v", got, want)
	}
}

func TestSanitizeNameClean(t *testing.T) {
	var name = "plain_name"
	var want = "plain_name"
	got := SanitizeName(name)
	if got != want {
		t.Errorf("got %v; want %v", got, want)
	}
}

func TestQuoteIdentifier(t *testing.T) {
	var name = "people"
	var want = "\"people\""
	got := QuoteIdentifier(name)
	if got != want {
		t.Errorf("got %v; want %v", got, want)
	}
}

func TestQuoteIdentifierEmbeddedQuote(t *testing.T) {
	var name = "a\"b"
	var want = "\"a\"\"b\""
	got := QuoteIdentifier(name)
	if got != want {
		t.Errorf("got %v; want %v", got, want)
	}
}

func TestJoinQuoted(t *testing.T) {
	var names = []string{"a", "b", "c"}
	var want = "\"a\",\"b\",\"c\""
	got := JoinQuoted(names)
	if got != want {
		t.Errorf("got %v; want %v", got, want)
	}
}

func TestJoinQuotedNone(t *testing.T) {
	var want = ""
	got := JoinQuoted(nil)
	if got != want {
		t.Errorf("got %v; want %v", got, want)
	}
}
