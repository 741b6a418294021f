package report

import (
	"fmt"
	"strings"
)

const (
	textRuleHeavy = "======================================================================"
	textRuleLight = "----------------------------------------------------------------------"
)

func renderText(data *reportData) string {
	s := data.Summary
	var lines []string

	lines = append(lines,
		textRuleHeavy,
		"GITHUB ACTIVITY REPORT",
		textRuleHeavy,
		fmt.Sprintf("\nDeveloper: %s", data.Developer),
		fmt.Sprintf("Period: %s - %s", data.Window.Start.Format(longDate), data.Window.End.Format(longDate)),
		fmt.Sprintf("Generated: %s", data.Window.End.Format(longDateTime)),
		"\n"+textRuleLight,
	)

	lines = append(lines,
		"\nEXECUTIVE SUMMARY",
		textRuleLight,
		fmt.Sprintf("Total Commits: %d", s.Commits),
		fmt.Sprintf("Pull Requests Opened: %d", s.PullRequestsOpened),
		fmt.Sprintf("Pull Requests Merged: %d", s.PullRequestsMerged),
		fmt.Sprintf("Pull Requests Reviewed: %d", s.PullRequestsReviewed),
		fmt.Sprintf("Issues Opened: %d", s.IssuesOpened),
		fmt.Sprintf("Issues Closed: %d", s.IssuesClosed),
		fmt.Sprintf("Comments Made: %d", s.Comments),
		fmt.Sprintf("Active Repositories: %d", len(data.Repos)),
	)

	if len(data.Repos) > 0 {
		lines = append(lines, "\n"+textRuleLight, "ACTIVE REPOSITORIES", textRuleLight)
		for _, repo := range data.Repos {
			lines = append(lines, fmt.Sprintf("  - %s", repo))
		}
	}

	if len(data.CommitGroups) > 0 {
		lines = append(lines, "\n"+textRuleLight, "COMMITS", textRuleLight)
		for _, group := range data.CommitGroups {
			lines = append(lines, fmt.Sprintf("\n%s:", group.Repo))
			for _, commit := range group.Commits {
				lines = append(lines, fmt.Sprintf("  %s %s (%s)",
					commit.SHA, commit.Message, commit.Timestamp.Format(shortTime)))
			}
		}
	}

	if len(s.PRDetails) > 0 {
		lines = append(lines, "\n"+textRuleLight, "PULL REQUESTS", textRuleLight)
		for _, pr := range s.PRDetails {
			lines = append(lines, textItem(pr, "PR", textPRMarkers)...)
		}
	}

	if len(s.IssueDetails) > 0 {
		lines = append(lines, "\n"+textRuleLight, "ISSUES", textRuleLight)
		for _, issue := range s.IssueDetails {
			lines = append(lines, textItem(issue, "Issue", textIssueMarkers)...)
		}
	}

	if len(s.ReviewDetails) > 0 {
		lines = append(lines, "\n"+textRuleLight, "CODE REVIEWS", textRuleLight)
		for _, review := range s.ReviewDetails {
			lines = append(lines,
				fmt.Sprintf("  Reviewed PR #%s: %s", review.PRNumber, review.PRTitle),
				fmt.Sprintf("    Repository: %s", review.Repo),
				fmt.Sprintf("    Date: %s", review.Timestamp.Format(shortDateTime)),
			)
		}
	}

	lines = append(lines,
		"\n"+textRuleHeavy,
		fmt.Sprintf("Report generated for %s", data.Company),
		textRuleHeavy,
	)
	return strings.Join(lines, "\n")
}

func textItem(item ItemDetail, kind string, markers map[string]string) []string {
	marker := markerFor(markers, item.Action, textDefaultMarker)
	return []string{
		fmt.Sprintf("  %s %s %s #%s: %s", marker, titleCaser.String(item.Action), kind, item.Number, item.Title),
		fmt.Sprintf("      Repository: %s", item.Repo),
		fmt.Sprintf("      Date: %s", item.Timestamp.Format(shortDateTime)),
	}
}
