// Package transform converts raw textual source values into the canonical
// forms written to the output tables.
package transform

import (
	"fmt"
	"strings"

	"auction-loader/internal/loadererrors"
)

const jsonSuffix = ".json"

// months maps the 3-letter abbreviations used by the export to 2-digit months
var months = map[string]string{
	"Jan": "01", "Feb": "02", "Mar": "03", "Apr": "04",
	"May": "05", "Jun": "06", "Jul": "07", "Aug": "08",
	"Sep": "09", "Oct": "10", "Nov": "11", "Dec": "12",
}

// IsJSONSource reports whether name is a .json file. The match is case-sensitive
// and a bare ".json" is not accepted.
func IsJSONSource(name string) bool {
	return len(name) > len(jsonSuffix) && strings.HasSuffix(name, jsonSuffix)
}

// NormalizeMonth maps "Jan".."Dec" to "01".."12". Anything else is returned unchanged.
func NormalizeMonth(token string) string {
	if m, ok := months[token]; ok {
		return m
	}
	return token
}

// NormalizeTimestamp rewrites "Mon-DD-YY HH:MM:SS" as "20YY-MM-DD HH:MM:SS".
// The century is always 20.
func NormalizeTimestamp(raw string) (string, error) {
	parts := strings.Fields(raw)
	if len(parts) < 2 {
		return "", fmt.Errorf("timestamp %q has no time component: %w", raw, loadererrors.ErrMalformedValue)
	}

	date := strings.Split(parts[0], "-")
	if len(date) != 3 {
		return "", fmt.Errorf("timestamp %q date is not Mon-DD-YY: %w", raw, loadererrors.ErrMalformedValue)
	}

	return "20" + date[2] + "-" + NormalizeMonth(date[0]) + "-" + date[1] + " " + parts[1], nil
}

// NormalizeCurrency keeps only ASCII digits and '.', so "$3,453.23" becomes "3453.23".
// An empty input is returned as is. This is a textual strip, not a numeric parse.
func NormalizeCurrency(raw string) string {
	if raw == "" {
		return raw
	}

	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if (c >= '0' && c <= '9') || c == '.' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// NormalizeOptionalCurrency is NormalizeCurrency for values that may be absent.
// A nil input yields nil.
func NormalizeOptionalCurrency(raw *string) *string {
	if raw == nil {
		return nil
	}
	s := NormalizeCurrency(*raw)
	return &s
}
