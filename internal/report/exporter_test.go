package report

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportReportWritesDocument(t *testing.T) {
	dir := t.TempDir()
	exporter := NewExporter(dir)

	require.NoError(t, exporter.ExportReport("report body", "report.md"))

	data, err := os.ReadFile(filepath.Join(dir, "report.md"))
	require.NoError(t, err)
	assert.Equal(t, "report body", string(data))
}

func TestExportJSONSummary(t *testing.T) {
	dir := t.TempDir()
	s := Summarize(scenarioEvents(t))

	require.NoError(t, NewExporter(dir).ExportJSON(s, testWindow(), "octocat", "summary.json"))

	data, err := os.ReadFile(filepath.Join(dir, "summary.json"))
	require.NoError(t, err)

	var export summaryExport
	require.NoError(t, json.Unmarshal(data, &export))

	assert.Equal(t, "octocat", export.Developer)
	assert.Equal(t, 2, export.Commits)
	assert.Equal(t, 1, export.PullRequestsOpened)
	assert.Equal(t, 1, export.IssuesClosed)
	assert.Equal(t, []string{"a/x", "a/y"}, export.Repos, "repositories are exported sorted")
	assert.Len(t, export.CommitDetails, 2)
}

func TestCSVExport(t *testing.T) {
	dir := t.TempDir()
	s := Summarize(scenarioEvents(t))
	w := testWindow()

	require.NoError(t, NewCSVExporter(dir).Export(s, w, "octocat"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	var listPath, dashboardPath string
	for _, entry := range entries {
		switch {
		case strings.HasSuffix(entry.Name(), "_list.csv"):
			listPath = filepath.Join(dir, entry.Name())
		case strings.HasSuffix(entry.Name(), "_dashboard.csv"):
			dashboardPath = filepath.Join(dir, entry.Name())
		}
	}
	require.NotEmpty(t, listPath)
	require.NotEmpty(t, dashboardPath)

	listFile, err := os.Open(listPath)
	require.NoError(t, err)
	defer listFile.Close()

	rows, err := csv.NewReader(listFile).ReadAll()
	require.NoError(t, err)
	// Header + 2 commits + 1 PR + 1 issue.
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"#", "Type", "Action", "Reference", "Title", "Repository", "Date"}, rows[0])
	assert.Equal(t, "Commit", rows[1][1])
	assert.Equal(t, "0123456", rows[1][3])
	assert.Equal(t, "Pull Request", rows[3][1])
	assert.Equal(t, "#5", rows[3][3])

	dashFile, err := os.Open(dashboardPath)
	require.NoError(t, err)
	defer dashFile.Close()

	dashRows, err := csv.NewReader(dashFile).ReadAll()
	require.NoError(t, err)
	assert.Contains(t, dashRows, []string{"Total Commits", "2"})
	assert.Contains(t, dashRows, []string{"Active Repositories", "2"})
	assert.Contains(t, dashRows, []string{"Repository", "a/x"})
}
