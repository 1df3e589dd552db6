package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/rentbooks-dev/rentbooks/internal/config"
	"github.com/rentbooks-dev/rentbooks/internal/ingest"
	"github.com/rentbooks-dev/rentbooks/internal/ingestlog"
	"github.com/rentbooks-dev/rentbooks/internal/model"
	"github.com/rentbooks-dev/rentbooks/internal/properties"
	"github.com/rentbooks-dev/rentbooks/internal/session"
)

func newImportCommand() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "import <file>...",
		Short: "Ingest bank export files into the transaction table",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := workspaceDir(cmd)
			if err != nil {
				return err
			}

			tag := model.AccountTag(account)
			if !tag.Valid() {
				return fmt.Errorf("unknown account tag %q (known: %v)", account, model.AccountTags())
			}

			cfg, store, err := loadWorkspace(dir)
			if err != nil {
				return err
			}

			failed := 0
			for _, path := range args {
				if err := importFile(dir, path, tag, cfg, store); err != nil {
					// Fatal for this file only; the batch continues.
					fmt.Fprintf(os.Stderr, "error: %s: %v\n", path, err)
					failed++
				}
			}

			if err := saveTable(dir, store); err != nil {
				return err
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "account tag for the file(s) (required)")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}

func importFile(dir, path string, tag model.AccountTag, cfg *config.Config, store *session.Store) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	expenseOriented := false
	if feed, ok := cfg.Feed(tag); ok {
		expenseOriented = feed.ExpenseOriented
	}

	res, err := ingest.ProcessFile(data, ingest.Options{
		Account:         tag,
		ExpenseOriented: expenseOriented,
		PropertyMatcher: properties.TenantProperty,
	})
	if err != nil {
		return err
	}

	merged := store.Merge(res.Transactions)
	printDiagnostics(path, res.Diagnostics, merged)

	entry := ingestlog.Entry{
		Timestamp:    time.Now(),
		File:         filepath.Base(path),
		Account:      string(tag),
		DateColumn:   res.Diagnostics.DateColumn,
		DescColumn:   res.Diagnostics.DescColumn,
		AmountColumn: amountColumnLabel(res.Diagnostics),
		RowsKept:     len(res.Transactions),
		RowsDropped:  res.Diagnostics.RowsDropped,
	}
	if err := ingestlog.Append(dir, entry); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to write import log: %v\n", err)
	}
	return nil
}

func printDiagnostics(path string, d ingest.Diagnostics, merged session.MergeResult) {
	fmt.Printf("%s:\n", path)
	fmt.Printf("  columns found: %v\n", d.DetectedColumns)
	fmt.Printf("  using: date=%s description=%s amount=%s\n", d.DateColumn, d.DescColumn, amountColumnLabel(d))
	fmt.Printf("  rows: %d read, %d dropped, %d added, %d duplicates skipped\n",
		d.RowsRead, d.RowsDropped, merged.Added, merged.Skipped)
	for _, t := range d.Sample {
		fmt.Printf("  sample: %s  %-40.40s  %s\n", t.Date.Format("2006-01-02"), t.Description, t.Amount.StringFixed(2))
	}
}

func amountColumnLabel(d ingest.Diagnostics) string {
	if d.AmountColumn != "" {
		return d.AmountColumn
	}
	return fmt.Sprintf("%s/%s", d.CreditColumn, d.DebitColumn)
}
