package ingestlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntry() Entry {
	return Entry{
		Timestamp:    time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		File:         "chase_march.csv",
		Account:      "chase",
		DateColumn:   "posting_date",
		DescColumn:   "description",
		AmountColumn: "amount",
		RowsKept:     42,
		RowsDropped:  3,
	}
}

func TestMarshalUnmarshalEntry(t *testing.T) {
	e := sampleEntry()

	row := MarshalEntry(e)
	got, err := UnmarshalEntry(row)
	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func TestUnmarshalEntry_WrongFieldCount(t *testing.T) {
	_, err := UnmarshalEntry([]string{"just", "three", "fields"})
	assert.Error(t, err)
}

func TestAppendRead(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Append(dir, sampleEntry()))

	second := sampleEntry()
	second.File = "rental_march.csv"
	second.Account = "rental"
	require.NoError(t, Append(dir, second))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "chase_march.csv", entries[0].File)
	assert.Equal(t, "rental", entries[1].Account)

	// Header written exactly once.
	data, err := os.ReadFile(filepath.Join(dir, "logs", "import-log.csv"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), Header))
}

func TestRead_MissingLog(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}
