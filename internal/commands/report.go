package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rentbooks-dev/rentbooks/internal/aggregate"
	"github.com/rentbooks-dev/rentbooks/internal/model"
)

func newReportCommand() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show monthly statistics and the income/expense trend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := workspaceDir(cmd)
			if err != nil {
				return err
			}

			_, store, err := loadWorkspace(dir)
			if err != nil {
				return err
			}

			year, m, key, err := resolveMonth(month, time.Now())
			if err != nil {
				return err
			}

			txns := store.Transactions()
			stats := aggregate.Monthly(txns, year, m)

			fmt.Printf("Month %s (%d transactions)\n", key, stats.TransactionCount)
			fmt.Printf("  Rental income:       %12s\n", stats.RentalIncome.StringFixed(2))
			fmt.Printf("  Business income:     %12s\n", stats.BusinessIncome.StringFixed(2))
			fmt.Printf("  Operating expenses:  %12s\n", stats.OperatingExpenses.StringFixed(2))
			fmt.Printf("  Capital investments: %12s\n", stats.CapitalInvestments.StringFixed(2))
			fmt.Printf("  Net income:          %12s\n", stats.NetIncome.StringFixed(2))

			series := aggregate.MonthlySeries(txns)
			if len(series) > 1 {
				fmt.Println("\nTrend:")
				for _, s := range series {
					fmt.Printf("  %s  income %12s  expenses %12s  capital %12s  net %12s\n",
						s.Key, s.TotalIncome.StringFixed(2), s.OperatingExpenses.StringFixed(2),
						s.CapitalInvestments.StringFixed(2), s.NetIncome.StringFixed(2))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "target month as YYYY-MM (default: current)")

	return cmd
}

// resolveMonth parses a --month flag, defaulting to the month containing
// now.
func resolveMonth(flag string, now time.Time) (year, month int, key string, err error) {
	if flag == "" {
		return now.Year(), int(now.Month()), model.MonthKey(now.Year(), int(now.Month())), nil
	}
	t, err := time.Parse("2006-01", flag)
	if err != nil {
		return 0, 0, "", fmt.Errorf("invalid month %q (want YYYY-MM): %w", flag, err)
	}
	return t.Year(), int(t.Month()), model.MonthKey(t.Year(), int(t.Month())), nil
}
