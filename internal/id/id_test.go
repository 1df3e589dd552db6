package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTxnID(t *testing.T) {
	assert.Equal(t, "2024-03-001", FormatTxnID(2024, 3, 1))
	assert.Equal(t, "2024-12-117", FormatTxnID(2024, 12, 117))
}

func TestParseTxnID(t *testing.T) {
	year, month, seq, err := ParseTxnID("2024-03-017")
	require.NoError(t, err)
	assert.Equal(t, 2024, year)
	assert.Equal(t, 3, month)
	assert.Equal(t, 17, seq)
}

func TestParseTxnID_Invalid(t *testing.T) {
	for _, bad := range []string{"", "2024", "2024-03", "x-y-z"} {
		_, _, _, err := ParseTxnID(bad)
		assert.Error(t, err, "ParseTxnID(%q)", bad)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	id := FormatTxnID(2025, 11, 42)
	year, month, seq, err := ParseTxnID(id)
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 11, month)
	assert.Equal(t, 42, seq)
}
