package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentbooks-dev/rentbooks/internal/export"
	"github.com/rentbooks-dev/rentbooks/internal/ingestlog"
	"github.com/rentbooks-dev/rentbooks/internal/model"
)

func run(t *testing.T, args ...string) error {
	t.Helper()
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func initWorkspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, run(t, "init", dir, "--name", "Test Holdings"))
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readTable(t *testing.T, dir string) []model.Transaction {
	t.Helper()
	f, err := os.Open(filepath.Join(dir, tableFile))
	require.NoError(t, err)
	defer f.Close()

	txns, err := export.ReadTransactions(f)
	require.NoError(t, err)
	return txns
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestInit(t *testing.T) {
	dir := initWorkspace(t)

	_, err := os.Stat(filepath.Join(dir, configFile))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "properties.csv"))
	require.NoError(t, err)
}

func TestImport_EndToEnd(t *testing.T) {
	dir := initWorkspace(t)

	rental := writeFile(t, dir, "rental.csv",
		"Date,Description,Amount\n03/05/2024,Tenant rent payment,1500.00\n")
	chase := writeFile(t, dir, "chase.csv",
		"Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #\n"+
			"DEBIT,03/10/2024,Home Depot HVAC unit,2200.00,ACH_DEBIT,100.00,\n")

	require.NoError(t, run(t, "import", rental, "--account", "rental", "-C", dir))
	require.NoError(t, run(t, "import", chase, "--account", "chase", "-C", dir))

	txns := readTable(t, dir)
	require.Len(t, txns, 2)

	// Date-descending display order: the HVAC charge comes first.
	hvac := txns[0]
	assert.Equal(t, model.AccountChase, hvac.Account)
	assert.True(t, hvac.Amount.Equal(dec("-2200")), "got %s", hvac.Amount)
	assert.Equal(t, model.CategoryCapitalHVAC, hvac.Category)
	assert.True(t, hvac.IsCapital)

	rent := txns[1]
	assert.True(t, rent.Amount.Equal(dec("1500")))
	assert.Equal(t, model.CategoryRentalIncome, rent.Category)

	// The import log recorded both files.
	entries, err := ingestlog.Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "rental.csv", entries[0].File)
	assert.Equal(t, "posting_date", entries[1].DateColumn)
}

func TestImport_Reimport_SkipsDuplicates(t *testing.T) {
	dir := initWorkspace(t)

	rental := writeFile(t, dir, "rental.csv",
		"Date,Description,Amount\n03/05/2024,Tenant rent payment,1500.00\n")

	require.NoError(t, run(t, "import", rental, "--account", "rental", "-C", dir))
	require.NoError(t, run(t, "import", rental, "--account", "rental", "-C", dir))

	assert.Len(t, readTable(t, dir), 1)
}

func TestImport_BadFileDoesNotAbortBatch(t *testing.T) {
	dir := initWorkspace(t)

	good := writeFile(t, dir, "good.csv",
		"Date,Description,Amount\n03/05/2024,Tenant rent payment,1500.00\n")
	// Unterminated quote: the CSV layer rejects the whole file.
	bad := writeFile(t, dir, "bad.csv",
		"Date,Description,Amount\n03/06/2024,\"unterminated,100.00\n")

	err := run(t, "import", bad, good, "--account", "rental", "-C", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 files failed")

	// The good file still made it into the table.
	assert.Len(t, readTable(t, dir), 1)
}

func TestImport_UnknownAccount(t *testing.T) {
	dir := initWorkspace(t)
	f := writeFile(t, dir, "x.csv", "Date,Description,Amount\n")

	err := run(t, "import", f, "--account", "savings", "-C", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown account tag")
}

func TestImport_TenantAutoAssignsProperty(t *testing.T) {
	dir := initWorkspace(t)

	rental := writeFile(t, dir, "rental.csv",
		"Date,Description,Amount\n03/05/2024,Zelle from Lucy Cepeda rent,1400.00\n")
	require.NoError(t, run(t, "import", rental, "--account", "rental", "-C", dir))

	txns := readTable(t, dir)
	require.Len(t, txns, 1)
	assert.Equal(t, "2024_50th", txns[0].PropertyID)
}

func TestSnapshotSaveAndExportHistory(t *testing.T) {
	dir := initWorkspace(t)

	rental := writeFile(t, dir, "rental.csv",
		"Date,Description,Amount\n03/05/2024,Tenant rent payment,1500.00\n")
	require.NoError(t, run(t, "import", rental, "--account", "rental", "-C", dir))

	require.NoError(t, run(t, "snapshot", "save", "--month", "2024-03", "-C", dir))

	// Snapshots are immutable: saving the same month again fails.
	err := run(t, "snapshot", "save", "--month", "2024-03", "-C", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already saved")

	out := filepath.Join(dir, "exports", "history.csv")
	require.NoError(t, run(t, "export", "history", "--out", out, "-C", dir))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	snaps, err := export.ReadHistory(f)
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, "2024-03", snaps[0].Key)
	assert.True(t, snaps[0].Stats.RentalIncome.Equal(dec("1500")))
	assert.True(t, snaps[0].Stats.NetIncome.Equal(dec("1500")))
}

func TestExportCapital(t *testing.T) {
	dir := initWorkspace(t)

	chase := writeFile(t, dir, "chase.csv",
		"Posting Date,Description,Amount\n"+
			"03/10/2024,Home Depot HVAC unit,2200.00\n"+
			"03/11/2024,WALMART SUPERCENTER,54.12\n")
	require.NoError(t, run(t, "import", chase, "--account", "chase", "-C", dir))

	out := filepath.Join(dir, "exports", "capital.csv")
	require.NoError(t, run(t, "export", "capital", "--out", out, "-C", dir))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	txns, err := export.ReadTransactions(f)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "Home Depot HVAC unit", txns[0].Description)
	assert.True(t, txns[0].IsCapital)
}
