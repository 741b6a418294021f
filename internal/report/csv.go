package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// CSVExporter writes the summary as two CSV files: a flat activity list
// and a counter dashboard.
type CSVExporter struct {
	OutputDir string
}

func NewCSVExporter(outputDir string) *CSVExporter {
	return &CSVExporter{OutputDir: outputDir}
}

func (e *CSVExporter) Export(s *Summary, w Window, developer string) error {
	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	timestamp := w.End.Format("2006-01-02_15-04-05")

	if err := e.exportActivityList(s, timestamp); err != nil {
		return fmt.Errorf("failed to export activity list: %w", err)
	}
	if err := e.exportDashboard(s, w, developer, timestamp); err != nil {
		return fmt.Errorf("failed to export dashboard: %w", err)
	}
	return nil
}

func (e *CSVExporter) exportActivityList(s *Summary, timestamp string) error {
	filename := filepath.Join(e.OutputDir, fmt.Sprintf("activity_%s_list.csv", timestamp))
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"#", "Type", "Action", "Reference", "Title", "Repository", "Date"}
	if err := writer.Write(header); err != nil {
		return err
	}

	row := 0
	write := func(kind, action, ref, title, repo, date string) error {
		row++
		return writer.Write([]string{strconv.Itoa(row), kind, action, ref, title, repo, date})
	}

	for _, commit := range s.CommitDetails {
		if err := write("Commit", "pushed", commit.SHA, commit.Message, commit.Repo,
			commit.Timestamp.Format(shortDateTime)); err != nil {
			return err
		}
	}
	for _, pr := range s.PRDetails {
		if err := write("Pull Request", pr.Action, "#"+pr.Number, pr.Title, pr.Repo,
			pr.Timestamp.Format(shortDateTime)); err != nil {
			return err
		}
	}
	for _, issue := range s.IssueDetails {
		if err := write("Issue", issue.Action, "#"+issue.Number, issue.Title, issue.Repo,
			issue.Timestamp.Format(shortDateTime)); err != nil {
			return err
		}
	}
	for _, review := range s.ReviewDetails {
		if err := write("Review", "reviewed", "#"+review.PRNumber, review.PRTitle, review.Repo,
			review.Timestamp.Format(shortDateTime)); err != nil {
			return err
		}
	}

	return nil
}

func (e *CSVExporter) exportDashboard(s *Summary, w Window, developer, timestamp string) error {
	filename := filepath.Join(e.OutputDir, fmt.Sprintf("activity_%s_dashboard.csv", timestamp))
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	rows := [][]string{
		{"Metric", "Value"},
		{"Developer", developer},
		{"Period Start", w.Start.Format(longDate)},
		{"Period End", w.End.Format(longDate)},
		{"Total Commits", strconv.Itoa(s.Commits)},
		{"Pull Requests Opened", strconv.Itoa(s.PullRequestsOpened)},
		{"Pull Requests Merged", strconv.Itoa(s.PullRequestsMerged)},
		{"Pull Requests Reviewed", strconv.Itoa(s.PullRequestsReviewed)},
		{"Issues Opened", strconv.Itoa(s.IssuesOpened)},
		{"Issues Closed", strconv.Itoa(s.IssuesClosed)},
		{"Comments Made", strconv.Itoa(s.Comments)},
		{"Active Repositories", strconv.Itoa(len(s.Repos))},
	}
	for _, repo := range sortedRepos(s.Repos) {
		rows = append(rows, []string{"Repository", repo})
	}

	return writer.WriteAll(rows)
}
