package report

import (
	"fmt"
	"strings"
)

func renderMarkdown(data *reportData) string {
	s := data.Summary
	lines := []string{
		"# GitHub Activity Report",
		fmt.Sprintf("\n**Developer:** %s", data.Developer),
		fmt.Sprintf("**Period:** %s - %s", data.Window.Start.Format(longDate), data.Window.End.Format(longDate)),
		fmt.Sprintf("**Generated:** %s", data.Window.End.Format(longDateTime)),
		"\n---\n",
	}

	lines = append(lines,
		"## Executive Summary\n",
		fmt.Sprintf("- **Total Commits:** %d", s.Commits),
		fmt.Sprintf("- **Pull Requests Opened:** %d", s.PullRequestsOpened),
		fmt.Sprintf("- **Pull Requests Merged:** %d", s.PullRequestsMerged),
		fmt.Sprintf("- **Pull Requests Reviewed:** %d", s.PullRequestsReviewed),
		fmt.Sprintf("- **Issues Opened:** %d", s.IssuesOpened),
		fmt.Sprintf("- **Issues Closed:** %d", s.IssuesClosed),
		fmt.Sprintf("- **Comments Made:** %d", s.Comments),
		fmt.Sprintf("- **Active Repositories:** %d", len(data.Repos)),
	)

	if len(data.Repos) > 0 {
		lines = append(lines, "\n## Active Repositories\n")
		for _, repo := range data.Repos {
			lines = append(lines, fmt.Sprintf("- `%s`", repo))
		}
	}

	if len(data.CommitGroups) > 0 {
		lines = append(lines, "\n## Commits\n")
		for _, group := range data.CommitGroups {
			lines = append(lines, fmt.Sprintf("\n### %s", group.Repo))
			for _, commit := range group.Commits {
				lines = append(lines, fmt.Sprintf("- `%s` %s *(%s)*",
					commit.SHA, commit.Message, commit.Timestamp.Format(shortTime)))
			}
		}
	}

	if len(s.PRDetails) > 0 {
		lines = append(lines, "\n## Pull Requests\n")
		for _, pr := range s.PRDetails {
			lines = append(lines, markdownItem(pr, "PR", markdownPRMarkers)...)
		}
	}

	if len(s.IssueDetails) > 0 {
		lines = append(lines, "\n## Issues\n")
		for _, issue := range s.IssueDetails {
			lines = append(lines, markdownItem(issue, "Issue", markdownIssueMarkers)...)
		}
	}

	if len(s.ReviewDetails) > 0 {
		lines = append(lines, "\n## Code Reviews\n")
		for _, review := range s.ReviewDetails {
			lines = append(lines,
				fmt.Sprintf("- Reviewed PR #%s: %s", review.PRNumber, review.PRTitle),
				fmt.Sprintf("  - Repository: `%s`", review.Repo),
				fmt.Sprintf("  - Date: %s\n", review.Timestamp.Format(shortDateTime)),
			)
		}
	}

	lines = append(lines, "\n---\n", fmt.Sprintf("\n*Report generated automatically for %s*", data.Company))
	return strings.Join(lines, "\n")
}

func markdownItem(item ItemDetail, kind string, markers map[string]string) []string {
	marker := markerFor(markers, item.Action, markdownDefaultMarker)
	return []string{
		fmt.Sprintf("%s **%s** %s #%s: %s", marker, titleCaser.String(item.Action), kind, item.Number, item.Title),
		fmt.Sprintf("   - Repository: `%s`", item.Repo),
		fmt.Sprintf("   - Date: %s\n", item.Timestamp.Format(shortDateTime)),
	}
}
