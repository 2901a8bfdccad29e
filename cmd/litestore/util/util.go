package util

import (
	"os"
	"regexp"
	"strings"
)

// ModePermRW is the umask "-rw-------".
const ModePermRW = 0600

var specialChars = regexp.MustCompile(`[-\s]`)

// SanitizeName replaces whitespace and hyphens in an identifier with
// underscores so that it can be used as a column name without quoting
// hazards.
func SanitizeName(name string) string {
	return specialChars.ReplaceAllString(name, "_")
}

// QuoteIdentifier returns the identifier in double quotes, with any embedded
// double quote doubled.
func QuoteIdentifier(name string) string {
	return "\"" + strings.ReplaceAll(name, "\"", "\"\"") + "\""
}

// JoinQuoted returns the identifiers quoted and joined with commas.
func JoinQuoted(names []string) string {
	var b strings.Builder
	for i, name := range names {
		if i != 0 {
			b.WriteString(",")
		}
		b.WriteString(QuoteIdentifier(name))
	}
	return b.String()
}

// FileExists returns true if f is an existing file or directory.
func FileExists(f string) (bool, error) {
	_, err := os.Stat(f)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
