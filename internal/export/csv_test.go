package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentbooks-dev/rentbooks/internal/model"
	"github.com/rentbooks-dev/rentbooks/internal/session"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func sampleTxns() []model.Transaction {
	return []model.Transaction{
		{
			ID:          "2024-03-002",
			Date:        time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			Account:     model.AccountChase,
			Description: "Home Depot HVAC unit",
			Amount:      dec("-2200"),
			Category:    model.CategoryCapitalHVAC,
			IsCapital:   true,
			PropertyID:  "5th_st_e",
			Notes:       "replaced condenser",
		},
		{
			ID:          "2024-03-001",
			Date:        time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			Account:     model.AccountRental,
			Description: "Tenant rent payment, March",
			Amount:      dec("1500"),
			Category:    model.CategoryRentalIncome,
		},
	}
}

func TestWriteReadTransactions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTransactions(&buf, sampleTxns()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, Header, lines[0])

	txns, err := ReadTransactions(&buf)
	require.NoError(t, err)
	require.Len(t, txns, 2)

	hvac := txns[0]
	assert.Equal(t, "2024-03-002", hvac.ID)
	assert.Equal(t, model.AccountChase, hvac.Account)
	assert.True(t, hvac.Amount.Equal(dec("-2200")))
	assert.True(t, hvac.IsCapital)
	assert.Equal(t, "5th_st_e", hvac.PropertyID)
	assert.Equal(t, "replaced condenser", hvac.Notes)

	rent := txns[1]
	assert.Equal(t, "Tenant rent payment, March", rent.Description)
	assert.False(t, rent.IsCapital)
	assert.Equal(t, "", rent.PropertyID)
}

func TestWriteCapital(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCapital(&buf, sampleTxns()))

	txns, err := ReadTransactions(&buf)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, model.CategoryCapitalHVAC, txns[0].Category)
}

func TestReadTransactions_Empty(t *testing.T) {
	txns, err := ReadTransactions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, txns)
}

func TestReadTransactions_BadRow(t *testing.T) {
	data := Header + "\nx,not-a-date,rental,desc,1.00,rental_income,false,,\n"
	_, err := ReadTransactions(strings.NewReader(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing date")
}

func TestWriteReadHistory(t *testing.T) {
	snaps := []session.Snapshot{
		{
			Key: "2024-03",
			Stats: model.MonthlyStats{
				RentalIncome:       dec("1500"),
				BusinessIncome:     dec("3500"),
				OperatingExpenses:  dec("420.55"),
				CapitalInvestments: dec("2200"),
				NetIncome:          dec("4579.45"),
				TransactionCount:   14,
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteHistory(&buf, snaps))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, HistoryHeader, lines[0])
	assert.Equal(t, "2024-03,1500.00,3500.00,420.55,2200.00,4579.45,14", lines[1])

	got, err := ReadHistory(&buf)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2024-03", got[0].Key)
	assert.True(t, got[0].Stats.NetIncome.Equal(dec("4579.45")))
	assert.Equal(t, 14, got[0].Stats.TransactionCount)
}
