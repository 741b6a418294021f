package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Exporter writes generated artifacts into an output directory.
type Exporter struct {
	OutputDir string
}

func NewExporter(outputDir string) *Exporter {
	return &Exporter{OutputDir: outputDir}
}

// ExportReport writes a rendered document verbatim.
func (e *Exporter) ExportReport(document, filename string) error {
	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return os.WriteFile(filepath.Join(e.OutputDir, filename), []byte(document), 0644)
}

// summaryExport is the JSON shape of a summary. The repository set is
// flattened to a sorted list.
type summaryExport struct {
	Developer            string         `json:"developer"`
	PeriodStart          time.Time      `json:"period_start"`
	PeriodEnd            time.Time      `json:"period_end"`
	Commits              int            `json:"commits"`
	PullRequestsOpened   int            `json:"pull_requests_opened"`
	PullRequestsMerged   int            `json:"pull_requests_merged"`
	PullRequestsReviewed int            `json:"pull_requests_reviewed"`
	IssuesOpened         int            `json:"issues_opened"`
	IssuesClosed         int            `json:"issues_closed"`
	Comments             int            `json:"comments"`
	Repos                []string       `json:"repos"`
	CommitDetails        []CommitDetail `json:"commit_details,omitempty"`
	PRDetails            []ItemDetail   `json:"pr_details,omitempty"`
	IssueDetails         []ItemDetail   `json:"issue_details,omitempty"`
	ReviewDetails        []ReviewDetail `json:"review_details,omitempty"`
}

// ExportJSON writes the summary as indented JSON.
func (e *Exporter) ExportJSON(s *Summary, w Window, developer, filename string) error {
	export := summaryExport{
		Developer:            developer,
		PeriodStart:          w.Start,
		PeriodEnd:            w.End,
		Commits:              s.Commits,
		PullRequestsOpened:   s.PullRequestsOpened,
		PullRequestsMerged:   s.PullRequestsMerged,
		PullRequestsReviewed: s.PullRequestsReviewed,
		IssuesOpened:         s.IssuesOpened,
		IssuesClosed:         s.IssuesClosed,
		Comments:             s.Comments,
		Repos:                sortedRepos(s.Repos),
		CommitDetails:        s.CommitDetails,
		PRDetails:            s.PRDetails,
		IssueDetails:         s.IssueDetails,
		ReviewDetails:        s.ReviewDetails,
	}

	data, err := json.MarshalIndent(export, "", "\t")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return os.WriteFile(filepath.Join(e.OutputDir, filename), data, 0644)
}
