package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExcelExport(t *testing.T) {
	dir := t.TempDir()
	s := Summarize(scenarioEvents(t))
	w := testWindow()

	require.NoError(t, NewExcelExporter(dir).Export(s, w, "octocat"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	f, err := excelize.OpenFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Dashboard")
	assert.Contains(t, sheets, "Commits")
	assert.Contains(t, sheets, "Pull Requests")
	assert.Contains(t, sheets, "Issues")
	assert.NotContains(t, sheets, "Reviews", "empty detail lists get no sheet")
	assert.NotContains(t, sheets, "Sheet1")

	metric, err := f.GetCellValue("Dashboard", "A5")
	require.NoError(t, err)
	assert.Equal(t, "Total Commits", metric)

	value, err := f.GetCellValue("Dashboard", "B5")
	require.NoError(t, err)
	assert.Equal(t, "2", value)

	sha, err := f.GetCellValue("Commits", "B2")
	require.NoError(t, err)
	assert.Equal(t, "0123456", sha)
}
