package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rentbooks-dev/rentbooks/internal/model"
	"github.com/rentbooks-dev/rentbooks/internal/session"
)

// HistoryHeader is the CSV header for the monthly snapshot export: one
// row per saved month, one column per statistic.
const HistoryHeader = "month,rental_income,business_income,operating_expenses,capital_investments,net_income,transaction_count"

const historyFields = 7

// ReadHistory reads a monthly snapshot export back into snapshots.
func ReadHistory(r io.Reader) ([]session.Snapshot, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = historyFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading history CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var snaps []session.Snapshot
	for i, rec := range records[1:] {
		snap, err := unmarshalSnapshot(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		snaps = append(snaps, snap)
	}
	return snaps, nil
}

func unmarshalSnapshot(rec []string) (session.Snapshot, error) {
	amounts := make([]decimal.Decimal, 5)
	for i := 0; i < 5; i++ {
		d, err := decimal.NewFromString(rec[i+1])
		if err != nil {
			return session.Snapshot{}, fmt.Errorf("parsing %q: %w", rec[i+1], err)
		}
		amounts[i] = d
	}

	count, err := strconv.Atoi(rec[6])
	if err != nil {
		return session.Snapshot{}, fmt.Errorf("parsing transaction_count %q: %w", rec[6], err)
	}

	return session.Snapshot{
		Key: rec[0],
		Stats: model.MonthlyStats{
			RentalIncome:       amounts[0],
			BusinessIncome:     amounts[1],
			OperatingExpenses:  amounts[2],
			CapitalInvestments: amounts[3],
			NetIncome:          amounts[4],
			TransactionCount:   count,
		},
	}, nil
}

// WriteHistory writes the saved monthly snapshots.
func WriteHistory(w io.Writer, snapshots []session.Snapshot) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(HistoryHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, snap := range snapshots {
		row := make([]string, historyFields)
		row[0] = snap.Key
		row[1] = snap.Stats.RentalIncome.StringFixed(2)
		row[2] = snap.Stats.BusinessIncome.StringFixed(2)
		row[3] = snap.Stats.OperatingExpenses.StringFixed(2)
		row[4] = snap.Stats.CapitalInvestments.StringFixed(2)
		row[5] = snap.Stats.NetIncome.StringFixed(2)
		row[6] = strconv.Itoa(snap.Stats.TransactionCount)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
