// Package codec converts between typed domain values and the raw text cells
// of a tabular backend. Backends are loosely typed and historically held
// data written under mixed locales, so decoding is deliberately forgiving:
// a cell that cannot be parsed yields the zero value, never an error.
// Encoding is strict and locale-independent so every backend ends up with
// the same canonical representation.
package codec

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EncodeDecimal renders d with '.' as the decimal separator and no grouping,
// regardless of the process locale.
func EncodeDecimal(d decimal.Decimal) string {
	return d.String()
}

// DecodeDecimal parses a numeric cell that may use '.' or ',' as its decimal
// separator. When both appear, the rightmost separator is taken as the
// decimal point and every other one as grouping. Empty, non-numeric and
// negative cells decode to zero: a missing number is the normal state of an
// unpurchased item, not an error.
func DecodeDecimal(cell string) decimal.Decimal {
	s := strings.TrimSpace(cell)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(normalizarSeparadores(s))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// normalizarSeparadores rewrites s so the rightmost '.' or ',' becomes '.'
// and all other separators disappear. "1.234,56" → "1234.56".
func normalizarSeparadores(s string) string {
	ultimo := strings.LastIndexAny(s, ".,")
	if ultimo == -1 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i, r := range s {
		switch {
		case i == ultimo:
			b.WriteByte('.')
		case r == '.' || r == ',':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// EncodeBool renders b using the spreadsheet checkbox convention.
func EncodeBool(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

// DecodeBool parses a checkbox cell. Sheets under a Spanish locale write
// VERDADERO/FALSO, so those count too. Blank and anything unrecognized mean
// false, matching a never-touched checkbox.
func DecodeBool(cell string) bool {
	switch strings.ToUpper(strings.TrimSpace(cell)) {
	case "TRUE", "VERDADERO", "1":
		return true
	default:
		return false
	}
}

// EncodeTime renders t as RFC 3339 in UTC.
func EncodeTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// DecodeTime parses an RFC 3339 cell. Unparseable cells yield the zero
// time; callers decide whether that is worth logging.
func DecodeTime(cell string) time.Time {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(cell))
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}
