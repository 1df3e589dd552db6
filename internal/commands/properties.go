package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rentbooks-dev/rentbooks/internal/aggregate"
)

func newPropertiesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "properties",
		Short: "Show per-property income, expenses, and capital",
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

			stats := aggregate.ByProperty(store.Transactions(), store.Registry())
			if len(stats) == 0 {
				fmt.Println("No property assignments found.")
				return nil
			}

			fmt.Printf("%-30s %12s %12s %12s %12s\n", "Property", "Income", "Expenses", "Capital", "Net")
			for _, p := range stats {
				fmt.Printf("%-30s %12s %12s %12s %12s\n",
					p.Name, p.Income.StringFixed(2), p.Expenses.StringFixed(2),
					p.Capital.StringFixed(2), p.Net.StringFixed(2))
			}
			return nil
		},
	}
}
