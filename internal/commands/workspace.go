package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rentbooks-dev/rentbooks/internal/config"
	"github.com/rentbooks-dev/rentbooks/internal/export"
	"github.com/rentbooks-dev/rentbooks/internal/properties"
	"github.com/rentbooks-dev/rentbooks/internal/session"
)

const (
	configFile  = "rentbooks.yaml"
	tableFile   = "transactions.csv"
	historyFile = "history.csv"
)

// workspaceDir resolves the --dir flag to an absolute path.
func workspaceDir(cmd *cobra.Command) (string, error) {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return "", err
	}
	return filepath.Abs(dir)
}

// loadWorkspace opens a workspace: config, property registry, and the
// session store restored from transactions.csv (empty when absent).
func loadWorkspace(dir string) (*config.Config, *session.Store, error) {
	cfg, err := config.Load(filepath.Join(dir, configFile))
	if err != nil {
		return nil, nil, fmt.Errorf("not a rentbooks workspace: %w", err)
	}

	reg, err := properties.Load(dir)
	if err != nil {
		return nil, nil, err
	}

	path := filepath.Join(dir, tableFile)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, session.NewStore(reg), nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("opening transaction table: %w", err)
	}
	defer f.Close()

	txns, err := export.ReadTransactions(f)
	if err != nil {
		return nil, nil, fmt.Errorf("loading transaction table: %w", err)
	}

	store := session.Restore(reg, txns)
	if err := loadHistory(dir, store); err != nil {
		return nil, nil, err
	}
	return cfg, store, nil
}

// loadHistory restores saved snapshots from history.csv, when present.
func loadHistory(dir string, store *session.Store) error {
	f, err := os.Open(filepath.Join(dir, historyFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("opening snapshot history: %w", err)
	}
	defer f.Close()

	snaps, err := export.ReadHistory(f)
	if err != nil {
		return fmt.Errorf("loading snapshot history: %w", err)
	}
	for _, snap := range snaps {
		if err := store.SaveSnapshot(snap.Key, snap.Stats); err != nil {
			return fmt.Errorf("restoring snapshot %s: %w", snap.Key, err)
		}
	}
	return nil
}

// saveHistory re-serializes the saved snapshots into the workspace.
func saveHistory(dir string, store *session.Store) error {
	f, err := os.Create(filepath.Join(dir, historyFile))
	if err != nil {
		return fmt.Errorf("creating snapshot history: %w", err)
	}
	defer f.Close()

	if err := export.WriteHistory(f, store.Snapshots()); err != nil {
		return fmt.Errorf("writing snapshot history: %w", err)
	}
	return nil
}

// saveTable re-serializes the session's transaction table into the
// workspace.
func saveTable(dir string, store *session.Store) error {
	f, err := os.Create(filepath.Join(dir, tableFile))
	if err != nil {
		return fmt.Errorf("creating transaction table: %w", err)
	}
	defer f.Close()

	if err := export.WriteTransactions(f, store.Transactions()); err != nil {
		return fmt.Errorf("writing transaction table: %w", err)
	}
	return nil
}
