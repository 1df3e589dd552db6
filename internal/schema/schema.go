// Package schema infers column roles from the free-form header row of a
// bank export. Resolution is best-effort by contract: it never fails, it
// cascades through known header names, substring matches, and positional
// fallbacks until every role has some column. The diagnostic output from
// ingestion exists so a human can catch a silent misassignment.
package schema

import "strings"

// Columns is the resolved column assignment for a table. Indexes are
// positions in the header row; -1 means unset. Either Amount is set, or
// the Debit/Credit pair is consulted (treating -1 sides as zero).
type Columns struct {
	Date        int
	Description int
	Amount      int
	Debit       int
	Credit      int
}

// HasAmount reports whether a single signed-amount column was resolved.
func (c Columns) HasAmount() bool { return c.Amount >= 0 }

var dateCandidates = []string{
	"date", "transaction_date", "trans_date", "posting_date", "post_date",
	"effective_date", "process_date", "transaction_post_date", "details",
}

var descCandidates = []string{
	"description", "memo", "payee", "details", "transaction_description",
	"desc", "merchant", "reference", "transaction_details", "check_or_slip",
}

var descSubstrings = []string{"desc", "memo", "payee", "merchant"}

var amountCandidates = []string{"amount", "transaction_amount", "trans_amount", "balance_amount"}

var debitCandidates = []string{"debit", "withdrawal", "withdrawals"}

var creditCandidates = []string{"credit", "deposit", "deposits"}

// Normalize canonicalizes a raw header name: trim, lowercase, and replace
// spaces, slashes, and hyphens with underscores.
func Normalize(header string) string {
	h := strings.ToLower(strings.TrimSpace(header))
	h = strings.ReplaceAll(h, " ", "_")
	h = strings.ReplaceAll(h, "/", "_")
	h = strings.ReplaceAll(h, "-", "_")
	return h
}

// Resolve assigns date, description, and amount (or debit/credit) columns
// for the given header row. It always returns a usable assignment; for a
// header with no recognizable names the positional fallbacks apply.
func Resolve(headers []string) Columns {
	cols := make([]string, len(headers))
	for i, h := range headers {
		cols[i] = Normalize(h)
	}

	out := Columns{Date: -1, Description: -1, Amount: -1, Debit: -1, Credit: -1}
	out.Date = resolveDate(cols)
	out.Description = resolveDescription(cols)
	out.Amount, out.Debit, out.Credit = resolveAmount(cols)
	return out
}

func resolveDate(cols []string) int {
	if i := indexOfAny(cols, dateCandidates); i >= 0 {
		return i
	}
	for i, c := range cols {
		if strings.Contains(c, "date") {
			return i
		}
	}
	return 0
}

func resolveDescription(cols []string) int {
	if i := indexOfAny(cols, descCandidates); i >= 0 {
		return i
	}
	for i, c := range cols {
		for _, word := range descSubstrings {
			if strings.Contains(c, word) {
				return i
			}
		}
	}
	if len(cols) > 1 {
		return 1
	}
	return 0
}

func resolveAmount(cols []string) (amount, debit, credit int) {
	amount, debit, credit = -1, -1, -1

	if i := indexOfAny(cols, amountCandidates); i >= 0 {
		return i, -1, -1
	}

	debit = indexOfAny(cols, debitCandidates)
	credit = indexOfAny(cols, creditCandidates)
	if debit >= 0 || credit >= 0 {
		return -1, debit, credit
	}

	for i, c := range cols {
		if strings.Contains(c, "amount") {
			return i, -1, -1
		}
	}

	// Last resort: common export layouts put the amount just before a
	// trailing balance column. Known limitation, not a general rule.
	if len(cols) > 1 {
		return len(cols) - 2, -1, -1
	}
	return len(cols) - 1, -1, -1
}

// indexOfAny returns the index of the first candidate present in cols,
// honoring candidate order, or -1.
func indexOfAny(cols, candidates []string) int {
	for _, cand := range candidates {
		for i, c := range cols {
			if c == cand {
				return i
			}
		}
	}
	return -1
}
