package model

import "github.com/shopspring/decimal"

// MonthlyStats holds the aggregate statistics for one calendar month.
// Capital investments are balance-sheet items and are excluded from
// NetIncome.
type MonthlyStats struct {
	RentalIncome       decimal.Decimal
	BusinessIncome     decimal.Decimal
	OperatingExpenses  decimal.Decimal // absolute value of non-capital outflows
	CapitalInvestments decimal.Decimal // absolute value, sign-agnostic
	NetIncome          decimal.Decimal
	TransactionCount   int
}

// PropertyStats holds per-property totals over the transactions assigned
// to one property.
type PropertyStats struct {
	PropertyID string
	Name       string
	Income     decimal.Decimal
	Expenses   decimal.Decimal
	Capital    decimal.Decimal
	Net        decimal.Decimal
}

// MonthSummary is one point in the monthly trend series.
type MonthSummary struct {
	Key                string // "YYYY-MM"
	TotalIncome        decimal.Decimal
	OperatingExpenses  decimal.Decimal
	CapitalInvestments decimal.Decimal
	NetIncome          decimal.Decimal
}
