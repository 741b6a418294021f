package report

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
)

//go:embed "templates"
var templateFS embed.FS

// The HTML view is built from preformatted strings so the template stays a
// layout concern; html/template escapes every field on output.
type htmlData struct {
	Developer string
	Company   string
	Period    string
	Generated string

	Metrics      []htmlMetric
	Repos        []string
	CommitGroups []htmlCommitGroup
	PullRequests []htmlItem
	Issues       []htmlItem
	Reviews      []htmlReview
}

type htmlMetric struct {
	Value int
	Label string
}

type htmlCommitGroup struct {
	Repo    string
	Commits []htmlCommit
}

type htmlCommit struct {
	SHA     string
	Message string
	Date    string
}

type htmlItem struct {
	Marker string
	Action string
	Kind   string
	Number string
	Title  string
	Repo   string
	Date   string
}

type htmlReview struct {
	Number string
	Title  string
	Repo   string
	Date   string
}

func renderHTML(data *reportData) (string, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/report.tmpl")
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML template: %w", err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, buildHTMLData(data)); err != nil {
		return "", fmt.Errorf("failed to render HTML: %w", err)
	}
	return buf.String(), nil
}

func buildHTMLData(data *reportData) *htmlData {
	s := data.Summary
	view := &htmlData{
		Developer: data.Developer,
		Company:   data.Company,
		Period: fmt.Sprintf("%s - %s",
			data.Window.Start.Format(longDate), data.Window.End.Format(longDate)),
		Generated: data.Window.End.Format(longDateTime),
		Repos:     data.Repos,
		Metrics: []htmlMetric{
			{s.Commits, "Total Commits"},
			{s.PullRequestsOpened, "PRs Opened"},
			{s.PullRequestsMerged, "PRs Merged"},
			{s.PullRequestsReviewed, "PRs Reviewed"},
			{s.IssuesOpened, "Issues Opened"},
			{s.IssuesClosed, "Issues Closed"},
			{s.Comments, "Comments"},
			{len(data.Repos), "Active Repos"},
		},
	}

	for _, group := range data.CommitGroups {
		htmlGroup := htmlCommitGroup{Repo: group.Repo}
		for _, commit := range group.Commits {
			htmlGroup.Commits = append(htmlGroup.Commits, htmlCommit{
				SHA:     commit.SHA,
				Message: commit.Message,
				Date:    commit.Timestamp.Format(shortTime),
			})
		}
		view.CommitGroups = append(view.CommitGroups, htmlGroup)
	}

	for _, pr := range s.PRDetails {
		view.PullRequests = append(view.PullRequests, htmlItemView(pr, "PR", markdownPRMarkers))
	}
	for _, issue := range s.IssueDetails {
		view.Issues = append(view.Issues, htmlItemView(issue, "Issue", markdownIssueMarkers))
	}
	for _, review := range s.ReviewDetails {
		view.Reviews = append(view.Reviews, htmlReview{
			Number: review.PRNumber,
			Title:  review.PRTitle,
			Repo:   review.Repo,
			Date:   review.Timestamp.Format(shortDateTime),
		})
	}

	return view
}

func htmlItemView(item ItemDetail, kind string, markers map[string]string) htmlItem {
	return htmlItem{
		Marker: markerFor(markers, item.Action, markdownDefaultMarker),
		Action: titleCaser.String(item.Action),
		Kind:   kind,
		Number: item.Number,
		Title:  item.Title,
		Repo:   item.Repo,
		Date:   item.Timestamp.Format(shortDateTime),
	}
}
