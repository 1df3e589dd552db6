package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rentbooks-dev/rentbooks/internal/export"
	"github.com/rentbooks-dev/rentbooks/internal/session"
)

func newExportCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:       "export {all|capital|history}",
		Short:     "Export session data as CSV",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"all", "capital", "history"},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := workspaceDir(cmd)
			if err != nil {
				return err
			}

			_, store, err := loadWorkspace(dir)
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating output file: %w", err)
			}
			defer f.Close()

			if err := writeExport(f, args[0], store); err != nil {
				return err
			}
			fmt.Printf("Wrote %s export to %s\n", args[0], out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "output file (required)")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func writeExport(f *os.File, kind string, store *session.Store) error {
	switch kind {
	case "all":
		return export.WriteTransactions(f, store.Transactions())
	case "capital":
		return export.WriteCapital(f, store.Transactions())
	case "history":
		return export.WriteHistory(f, store.Snapshots())
	default:
		return fmt.Errorf("unknown export kind %q", kind)
	}
}
