package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// ExcelExporter writes the summary as a workbook: a Dashboard sheet plus
// one sheet per non-empty detail list.
type ExcelExporter struct {
	OutputDir string
}

func NewExcelExporter(outputDir string) *ExcelExporter {
	return &ExcelExporter{OutputDir: outputDir}
}

func (e *ExcelExporter) Export(s *Summary, w Window, developer string) error {
	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	timestamp := w.End.Format("2006-01-02_15-04-05")
	filename := filepath.Join(e.OutputDir, fmt.Sprintf("activity_%s.xlsx", timestamp))

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	if err := e.createDashboardSheet(f, s, w, developer, headerStyle); err != nil {
		return fmt.Errorf("failed to create dashboard: %w", err)
	}

	if len(s.CommitDetails) > 0 {
		rows := [][]any{{"Repository", "SHA", "Message", "Date"}}
		for _, commit := range s.CommitDetails {
			rows = append(rows, []any{commit.Repo, commit.SHA, commit.Message,
				commit.Timestamp.Format(shortDateTime)})
		}
		if err := writeSheet(f, "Commits", rows, headerStyle); err != nil {
			return err
		}
	}

	if len(s.PRDetails) > 0 {
		if err := writeSheet(f, "Pull Requests", itemRows(s.PRDetails), headerStyle); err != nil {
			return err
		}
	}

	if len(s.IssueDetails) > 0 {
		if err := writeSheet(f, "Issues", itemRows(s.IssueDetails), headerStyle); err != nil {
			return err
		}
	}

	if len(s.ReviewDetails) > 0 {
		rows := [][]any{{"Repository", "PR", "Title", "Date"}}
		for _, review := range s.ReviewDetails {
			rows = append(rows, []any{review.Repo, "#" + review.PRNumber, review.PRTitle,
				review.Timestamp.Format(shortDateTime)})
		}
		if err := writeSheet(f, "Reviews", rows, headerStyle); err != nil {
			return err
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("failed to save excel file: %w", err)
	}
	return nil
}

func (e *ExcelExporter) createDashboardSheet(f *excelize.File, s *Summary, w Window, developer string, headerStyle int) error {
	const sheet = "Dashboard"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)

	rows := [][]any{
		{"Metric", "Value"},
		{"Developer", developer},
		{"Period Start", w.Start.Format(longDate)},
		{"Period End", w.End.Format(longDate)},
		{"Total Commits", s.Commits},
		{"Pull Requests Opened", s.PullRequestsOpened},
		{"Pull Requests Merged", s.PullRequestsMerged},
		{"Pull Requests Reviewed", s.PullRequestsReviewed},
		{"Issues Opened", s.IssuesOpened},
		{"Issues Closed", s.IssuesClosed},
		{"Comments Made", s.Comments},
		{"Active Repositories", len(s.Repos)},
	}
	for _, repo := range sortedRepos(s.Repos) {
		rows = append(rows, []any{"Repository", repo})
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	if err := f.SetCellStyle(sheet, "A1", "B1", headerStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", "A", 28); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "B", "B", 40)
}

func itemRows(items []ItemDetail) [][]any {
	rows := [][]any{{"Repository", "Action", "Number", "Title", "Date"}}
	for _, item := range items {
		rows = append(rows, []any{item.Repo, item.Action, "#" + item.Number, item.Title,
			item.Timestamp.Format(shortDateTime)})
	}
	return rows
}

func writeSheet(f *excelize.File, sheet string, rows [][]any, headerStyle int) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	endCell, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", endCell, headerStyle)
}
