// Package ingestlog keeps an append-only audit trail of file ingestions:
// which file fed which account, which columns the resolver chose, and how
// many rows survived normalization.
package ingestlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Entry is one row in the import log.
type Entry struct {
	Timestamp    time.Time
	File         string
	Account      string
	DateColumn   string
	DescColumn   string
	AmountColumn string // single column name, or "credit/debit" pair
	RowsKept     int
	RowsDropped  int
}

// Header is the CSV header for import-log.csv.
const Header = "timestamp,file,account,date_column,description_column,amount_column,rows_kept,rows_dropped"

const (
	numFields      = 8
	logDir         = "logs"
	logFile        = "logs/import-log.csv"
	colTimestamp   = 0
	colFile        = 1
	colAccount     = 2
	colDateCol     = 3
	colDescCol     = 4
	colAmountCol   = 5
	colRowsKept    = 6
	colRowsDropped = 7
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colFile] = e.File
	row[colAccount] = e.Account
	row[colDateCol] = e.DateColumn
	row[colDescCol] = e.DescColumn
	row[colAmountCol] = e.AmountColumn
	row[colRowsKept] = strconv.Itoa(e.RowsKept)
	row[colRowsDropped] = strconv.Itoa(e.RowsDropped)
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	kept, err := strconv.Atoi(record[colRowsKept])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing rows_kept %q: %w", record[colRowsKept], err)
	}

	dropped, err := strconv.Atoi(record[colRowsDropped])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing rows_dropped %q: %w", record[colRowsDropped], err)
	}

	return Entry{
		Timestamp:    ts,
		File:         record[colFile],
		Account:      record[colAccount],
		DateColumn:   record[colDateCol],
		DescColumn:   record[colDescCol],
		AmountColumn: record[colAmountCol],
		RowsKept:     kept,
		RowsDropped:  dropped,
	}, nil
}

// Append adds an entry to <root>/logs/import-log.csv, creating the file
// with a header if needed.
func Append(root string, e Entry) error {
	if err := os.MkdirAll(filepath.Join(root, logDir), 0o755); err != nil {
		return fmt.Errorf("creating log dir: %w", err)
	}

	path := filepath.Join(root, logFile)
	isNew := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening import log: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	cw := csv.NewWriter(f)
	defer cw.Flush()
	if err := cw.Write(MarshalEntry(e)); err != nil {
		return fmt.Errorf("writing log entry: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

// Read returns all entries from <root>/logs/import-log.csv. A missing
// log is an empty history, not an error.
func Read(root string) ([]Entry, error) {
	f, err := os.Open(filepath.Join(root, logFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening import log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading import log: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
