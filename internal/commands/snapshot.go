package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rentbooks-dev/rentbooks/internal/aggregate"
)

func newSnapshotCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Save and list monthly statistic snapshots",
	}
	cmd.AddCommand(newSnapshotSaveCommand())
	cmd.AddCommand(newSnapshotListCommand())
	return cmd
}

func newSnapshotSaveCommand() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save the statistics for a month",
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

			stats := aggregate.Monthly(store.Transactions(), year, m)
			if err := store.SaveSnapshot(key, stats); err != nil {
				return err
			}
			if err := saveHistory(dir, store); err != nil {
				return err
			}

			fmt.Printf("Saved snapshot for %s (%d transactions, net %s)\n",
				key, stats.TransactionCount, stats.NetIncome.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "target month as YYYY-MM (default: current)")

	return cmd
}

func newSnapshotListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved snapshots",
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

			snaps := store.Snapshots()
			if len(snaps) == 0 {
				fmt.Println("No snapshots saved yet.")
				return nil
			}

			fmt.Printf("%-8s %12s %12s %12s %12s %12s %6s\n",
				"Month", "Rental", "Business", "Expenses", "Capital", "Net", "Count")
			for _, s := range snaps {
				fmt.Printf("%-8s %12s %12s %12s %12s %12s %6d\n",
					s.Key, s.Stats.RentalIncome.StringFixed(2), s.Stats.BusinessIncome.StringFixed(2),
					s.Stats.OperatingExpenses.StringFixed(2), s.Stats.CapitalInvestments.StringFixed(2),
					s.Stats.NetIncome.StringFixed(2), s.Stats.TransactionCount)
			}
			return nil
		},
	}
}
