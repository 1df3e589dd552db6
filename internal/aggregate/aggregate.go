// Package aggregate computes financial statistics over the normalized
// transaction table. Every function is a pure read-only pass: no caller
// state is touched, an empty or filtered-to-empty input yields zeros.
package aggregate

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentbooks-dev/rentbooks/internal/model"
	"github.com/rentbooks-dev/rentbooks/internal/properties"
)

// Monthly computes the statistics for one calendar month.
//
// Income sums are signed: a refund categorized as rental_income reduces
// rental income. Operating expenses and capital investments are summed by
// magnitude, and capital rows are excluded from both operating expenses
// and net income.
func Monthly(txns []model.Transaction, year, month int) model.MonthlyStats {
	stats := zeroStats()

	for _, t := range txns {
		ty, tm := t.YearMonth()
		if ty != year || tm != month {
			continue
		}
		stats.TransactionCount++

		if t.Category == model.CategoryRentalIncome ||
			(t.Account == model.AccountRental && t.Amount.IsPositive()) {
			stats.RentalIncome = stats.RentalIncome.Add(t.Amount)
		}
		if t.Category == model.CategoryBusinessIncome ||
			(t.Account == model.AccountBusiness && t.Amount.IsPositive()) {
			stats.BusinessIncome = stats.BusinessIncome.Add(t.Amount)
		}

		if t.IsCapital {
			stats.CapitalInvestments = stats.CapitalInvestments.Add(t.Amount.Abs())
		} else if t.Amount.IsNegative() {
			stats.OperatingExpenses = stats.OperatingExpenses.Add(t.Amount.Abs())
		}
	}

	stats.NetIncome = stats.RentalIncome.Add(stats.BusinessIncome).Sub(stats.OperatingExpenses)
	return stats
}

// CurrentMonth computes the statistics for the month containing now.
func CurrentMonth(txns []model.Transaction, now time.Time) model.MonthlyStats {
	return Monthly(txns, now.Year(), int(now.Month()))
}

// ByProperty computes per-property totals in registry order. Properties
// with no assigned transactions are omitted, not reported as zero rows.
func ByProperty(txns []model.Transaction, reg *properties.Registry) []model.PropertyStats {
	var out []model.PropertyStats
	for _, prop := range reg.All() {
		stats := model.PropertyStats{
			PropertyID: prop.ID,
			Name:       prop.Name,
			Income:     decimal.Zero,
			Expenses:   decimal.Zero,
			Capital:    decimal.Zero,
		}

		matched := false
		for _, t := range txns {
			if t.PropertyID != prop.ID {
				continue
			}
			matched = true

			if t.Amount.IsPositive() {
				stats.Income = stats.Income.Add(t.Amount)
			}
			if t.IsCapital {
				stats.Capital = stats.Capital.Add(t.Amount.Abs())
			} else if t.Amount.IsNegative() {
				stats.Expenses = stats.Expenses.Add(t.Amount.Abs())
			}
		}
		if !matched {
			continue
		}

		stats.Net = stats.Income.Sub(stats.Expenses)
		out = append(out, stats)
	}
	return out
}

// MonthlySeries groups the table by year-month and returns one summary
// per month, sorted by key ascending.
func MonthlySeries(txns []model.Transaction) []model.MonthSummary {
	byKey := make(map[string]*model.MonthSummary)
	for _, t := range txns {
		year, month := t.YearMonth()
		key := model.MonthKey(year, month)

		s, ok := byKey[key]
		if !ok {
			s = &model.MonthSummary{
				Key:                key,
				TotalIncome:        decimal.Zero,
				OperatingExpenses:  decimal.Zero,
				CapitalInvestments: decimal.Zero,
			}
			byKey[key] = s
		}

		if t.Amount.IsPositive() {
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
		}
		if t.IsCapital {
			s.CapitalInvestments = s.CapitalInvestments.Add(t.Amount.Abs())
		} else if t.Amount.IsNegative() {
			s.OperatingExpenses = s.OperatingExpenses.Add(t.Amount.Abs())
		}
	}

	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]model.MonthSummary, 0, len(keys))
	for _, k := range keys {
		s := *byKey[k]
		s.NetIncome = s.TotalIncome.Sub(s.OperatingExpenses)
		out = append(out, s)
	}
	return out
}

// CategoryTotal is one row of the category breakdown.
type CategoryTotal struct {
	Category model.Category
	Total    decimal.Decimal // absolute value
}

// CategoryTotals sums transaction magnitudes per category, sorted by
// category name.
func CategoryTotals(txns []model.Transaction) []CategoryTotal {
	byCat := make(map[model.Category]decimal.Decimal)
	for _, t := range txns {
		byCat[t.Category] = byCat[t.Category].Add(t.Amount.Abs())
	}

	out := make([]CategoryTotal, 0, len(byCat))
	for c, total := range byCat {
		out = append(out, CategoryTotal{Category: c, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

func zeroStats() model.MonthlyStats {
	return model.MonthlyStats{
		RentalIncome:       decimal.Zero,
		BusinessIncome:     decimal.Zero,
		OperatingExpenses:  decimal.Zero,
		CapitalInvestments: decimal.Zero,
		NetIncome:          decimal.Zero,
	}
}
