// Package ingest turns a raw bank export into normalized transactions.
// One file is processed to completion at a time: decode, resolve the
// column schema, then normalize row by row. Row-level defects (bad date,
// bad or zero amount) drop the row and never abort the file; only a
// decode or CSV-structure failure is fatal, and then only for that file.
package ingest

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rentbooks-dev/rentbooks/internal/categorize"
	"github.com/rentbooks-dev/rentbooks/internal/model"
	"github.com/rentbooks-dev/rentbooks/internal/schema"
)

// sampleSize caps the diagnostic row sample.
const sampleSize = 3

// Options controls normalization for one file.
type Options struct {
	Account model.AccountTag

	// ExpenseOriented flips positive source amounts to outflows. Card
	// issuers report charges as positive, the opposite of a bank
	// statement's sign convention; negatives pass through unchanged.
	ExpenseOriented bool

	// PropertyMatcher, when set, maps a description to a property ID
	// (empty = no match). Used to auto-assign tenant payments.
	PropertyMatcher func(description string) string
}

// Diagnostics describes what the resolver and normalizer did to one file.
// It is advisory output for a human to review, not part of the data
// contract.
type Diagnostics struct {
	DetectedColumns []string // normalized header names, in file order
	DateColumn      string
	DescColumn      string
	AmountColumn    string // empty when a debit/credit pair was used
	DebitColumn     string
	CreditColumn    string
	RowsRead        int
	RowsDropped     int
	Sample          []model.Transaction // up to three normalized rows
}

// Result is the outcome of processing one file.
type Result struct {
	Transactions []model.Transaction
	Diagnostics  Diagnostics
}

// ProcessFile decodes and normalizes one export file. The returned error
// is fatal for this file only; callers continue with the rest of the
// batch.
func ProcessFile(data []byte, opts Options) (Result, error) {
	text, err := DecodeText(data)
	if err != nil {
		return Result{}, fmt.Errorf("decoding %s file: %w", opts.Account, err)
	}

	cr := csv.NewReader(strings.NewReader(text))
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return Result{}, fmt.Errorf("reading %s CSV: %w", opts.Account, err)
	}
	if len(records) == 0 {
		return Result{}, fmt.Errorf("%s file has no header row", opts.Account)
	}

	headers := records[0]
	cols := schema.Resolve(headers)

	res := Result{Diagnostics: describeColumns(headers, cols)}

	for _, rec := range records[1:] {
		res.Diagnostics.RowsRead++

		txn, ok := normalizeRow(rec, cols, opts)
		if !ok {
			res.Diagnostics.RowsDropped++
			continue
		}
		res.Transactions = append(res.Transactions, txn)
	}

	n := len(res.Transactions)
	if n > sampleSize {
		n = sampleSize
	}
	res.Diagnostics.Sample = res.Transactions[:n]

	return res, nil
}

// normalizeRow converts one raw record into a canonical transaction.
// ok is false when the row is a non-event: unparseable date, or an amount
// that is absent or normalizes to exactly zero.
func normalizeRow(rec []string, cols schema.Columns, opts Options) (model.Transaction, bool) {
	date, ok := parseDate(field(rec, cols.Date))
	if !ok {
		return model.Transaction{}, false
	}

	var amount decimal.Decimal
	if cols.HasAmount() {
		amount, ok = parseAmount(field(rec, cols.Amount))
		if !ok {
			return model.Transaction{}, false
		}
	} else {
		// Unparseable or missing sides count as zero.
		debit, _ := parseAmount(field(rec, cols.Debit))
		credit, _ := parseAmount(field(rec, cols.Credit))
		amount = credit.Sub(debit)
	}

	if opts.ExpenseOriented && amount.IsPositive() {
		amount = amount.Abs().Neg()
	}
	if amount.IsZero() {
		return model.Transaction{}, false
	}

	desc := field(rec, cols.Description)
	cat := categorize.Categorize(desc)

	txn := model.Transaction{
		Date:        date,
		Account:     opts.Account,
		Description: desc,
		Amount:      amount,
		Category:    cat,
		IsCapital:   cat.IsCapital(),
	}
	if opts.PropertyMatcher != nil {
		txn.PropertyID = opts.PropertyMatcher(desc)
	}
	return txn, true
}

// field returns the cell at index i, or "" when the row is shorter than
// the header or the index is unset.
func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return rec[i]
}

func describeColumns(headers []string, cols schema.Columns) Diagnostics {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = schema.Normalize(h)
	}

	name := func(i int) string {
		if i < 0 || i >= len(normalized) {
			return ""
		}
		return normalized[i]
	}

	return Diagnostics{
		DetectedColumns: normalized,
		DateColumn:      name(cols.Date),
		DescColumn:      name(cols.Description),
		AmountColumn:    name(cols.Amount),
		DebitColumn:     name(cols.Debit),
		CreditColumn:    name(cols.Credit),
	}
}
