// Package export serializes session data for download or re-loading.
// The transaction table format is the canonical row shape; the workspace
// transactions.csv that carries a session between CLI invocations is the
// same serialization.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentbooks-dev/rentbooks/internal/model"
)

// Header is the CSV header for the transaction table.
const Header = "id,date,account,description,amount,category,is_capital,property,notes"

const (
	numFields    = 9
	dateFormat   = "2006-01-02"
	colID        = 0
	colDate      = 1
	colAccount   = 2
	colDesc      = 3
	colAmount    = 4
	colCategory  = 5
	colIsCapital = 6
	colProperty  = 7
	colNotes     = 8
)

// ReadTransactions reads a transaction table CSV.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// WriteTransactions writes a transaction table CSV (including header).
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// WriteCapital writes only the capital-expenditure subset, same shape as
// the full table.
func WriteCapital(w io.Writer, txns []model.Transaction) error {
	var capital []model.Transaction
	for _, t := range txns {
		if t.IsCapital {
			capital = append(capital, t)
		}
	}
	return WriteTransactions(w, capital)
}

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(t model.Transaction) []string {
	row := make([]string, numFields)
	row[colID] = t.ID
	row[colDate] = t.Date.Format(dateFormat)
	row[colAccount] = string(t.Account)
	row[colDesc] = t.Description
	row[colAmount] = t.Amount.StringFixed(2)
	row[colCategory] = string(t.Category)
	row[colIsCapital] = strconv.FormatBool(t.IsCapital)
	row[colProperty] = t.PropertyID
	row[colNotes] = t.Notes
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	isCapital, err := strconv.ParseBool(record[colIsCapital])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing is_capital %q: %w", record[colIsCapital], err)
	}

	return model.Transaction{
		ID:          record[colID],
		Date:        date,
		Account:     model.AccountTag(record[colAccount]),
		Description: record[colDesc],
		Amount:      amount,
		Category:    model.Category(record[colCategory]),
		IsCapital:   isCapital,
		PropertyID:  record[colProperty],
		Notes:       record[colNotes],
	}, nil
}
