package ingest

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// dateFormats are tried in order. Bank exports disagree on separators,
// leading zeros, and whether a timestamp is attached.
var dateFormats = []string{
	"1/2/2006",
	"1-2-2006",
	"2006-01-02",
	"2006-1-2",
	"1/2/06",
	"2006-01-02 15:04:05",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
}

// parseDate parses a cell permissively. ok is false when no known format
// matches; the caller drops the row.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseAmount parses a cell as a signed decimal, tolerating currency
// symbols, thousands separators, and accounting-style parentheses for
// negatives. ok is false for empty or non-numeric cells.
func parseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}

	negative := strings.Contains(s, "(") && strings.Contains(s, ")")

	cleaned := strings.NewReplacer("$", "", ",", "", " ", "", "(", "", ")", "").Replace(s)
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}

	if negative {
		return d.Abs().Neg(), true
	}
	return d, true
}
