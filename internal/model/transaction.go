package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one normalized row in the session's transaction table.
type Transaction struct {
	ID          string          // "YYYY-MM-NNN", assigned by the session store
	Date        time.Time       //nolint:revive // plain field name is clearest
	Account     AccountTag      //nolint:revive
	Description string          //nolint:revive
	Amount      decimal.Decimal // normalized sign: positive = inflow, negative = outflow
	Category    Category
	IsCapital   bool   // always Category.IsCapital(); never set independently
	PropertyID  string // empty = not assigned to a property
	Notes       string
}

// YearMonth returns the transaction's calendar year and month.
func (t Transaction) YearMonth() (year, month int) {
	return t.Date.Year(), int(t.Date.Month())
}

// MonthKey formats a year/month pair as "YYYY-MM", the key used for
// monthly snapshots and series grouping.
func MonthKey(year, month int) string {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}
