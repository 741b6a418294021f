package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	t1 = time.Date(2026, 8, 20, 9, 15, 0, 0, time.UTC)
	t2 = time.Date(2026, 8, 21, 14, 30, 0, 0, time.UTC)
	t3 = time.Date(2026, 8, 22, 18, 45, 0, 0, time.UTC)
)

func makeEvent(t *testing.T, eventType, repo string, ts time.Time, payload any) *github.Event {
	t.Helper()
	ev := &github.Event{
		Type:      github.String(eventType),
		Repo:      &github.Repository{Name: github.String(repo)},
		CreatedAt: &github.Timestamp{Time: ts},
	}
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		msg := json.RawMessage(raw)
		ev.RawPayload = &msg
	}
	return ev
}

func pushEvent(t *testing.T, repo string, ts time.Time, commits ...*github.HeadCommit) *github.Event {
	t.Helper()
	return makeEvent(t, "PushEvent", repo, ts, &github.PushEvent{Commits: commits})
}

func prEvent(t *testing.T, repo, action string, ts time.Time, pr *github.PullRequest) *github.Event {
	t.Helper()
	return makeEvent(t, "PullRequestEvent", repo, ts, &github.PullRequestEvent{
		Action:      github.String(action),
		PullRequest: pr,
	})
}

func issueEvent(t *testing.T, repo, action string, ts time.Time, issue *github.Issue) *github.Event {
	t.Helper()
	return makeEvent(t, "IssuesEvent", repo, ts, &github.IssuesEvent{
		Action: github.String(action),
		Issue:  issue,
	})
}

// scenarioEvents is the canonical three-event stream: a push with two
// commits, an opened PR and a closed issue.
func scenarioEvents(t *testing.T) []*github.Event {
	t.Helper()
	return []*github.Event{
		pushEvent(t, "a/x", t1,
			&github.HeadCommit{SHA: github.String("0123456789abcdef0123456789abcdef01234567"), Message: github.String("Add parser")},
			&github.HeadCommit{SHA: github.String("fedcba9876543210fedcba9876543210fedcba98"), Message: github.String("Fix lexer\n\nlonger body")},
		),
		prEvent(t, "a/y", "opened", t2, &github.PullRequest{
			Number: github.Int(5),
			Title:  github.String("Fix bug"),
		}),
		issueEvent(t, "a/x", "closed", t3, &github.Issue{
			Number: github.Int(9),
			Title:  github.String("Stale"),
		}),
	}
}

func TestSummarizeScenario(t *testing.T) {
	s := Summarize(scenarioEvents(t))

	assert.Equal(t, 2, s.Commits)
	assert.Equal(t, 1, s.PullRequestsOpened)
	assert.Equal(t, 0, s.PullRequestsMerged)
	assert.Equal(t, 0, s.PullRequestsReviewed)
	assert.Equal(t, 0, s.IssuesOpened)
	assert.Equal(t, 1, s.IssuesClosed)
	assert.Equal(t, 0, s.Comments)
	assert.Equal(t, map[string]bool{"a/x": true, "a/y": true}, s.Repos)

	require.Len(t, s.CommitDetails, 2)
	assert.Equal(t, CommitDetail{Repo: "a/x", SHA: "0123456", Message: "Add parser", Timestamp: t1}, s.CommitDetails[0])
	assert.Equal(t, "Fix lexer", s.CommitDetails[1].Message, "only the first message line is kept")
	assert.Equal(t, t1, s.CommitDetails[1].Timestamp, "display timestamp is the event's, not the commit's")

	require.Len(t, s.PRDetails, 1)
	assert.Equal(t, ItemDetail{Repo: "a/y", Action: "opened", Number: "5", Title: "Fix bug", Timestamp: t2}, s.PRDetails[0])

	require.Len(t, s.IssueDetails, 1)
	assert.Equal(t, ItemDetail{Repo: "a/x", Action: "closed", Number: "9", Title: "Stale", Timestamp: t3}, s.IssueDetails[0])
}

func TestSummarizeMergeAsymmetry(t *testing.T) {
	closedUnmerged := prEvent(t, "a/x", "closed", t1, &github.PullRequest{
		Number: github.Int(1),
		Title:  github.String("Abandoned"),
		Merged: github.Bool(false),
	})
	closedMerged := prEvent(t, "a/x", "closed", t2, &github.PullRequest{
		Number: github.Int(2),
		Title:  github.String("Shipped"),
		Merged: github.Bool(true),
	})

	s := Summarize([]*github.Event{closedUnmerged, closedMerged})

	assert.Equal(t, 0, s.PullRequestsOpened)
	assert.Equal(t, 1, s.PullRequestsMerged, "only the merged close counts")
	require.Len(t, s.PRDetails, 1)
	assert.Equal(t, "merged", s.PRDetails[0].Action)
	assert.Equal(t, "2", s.PRDetails[0].Number)
	assert.True(t, s.Repos["a/x"], "the unmerged close still records its repository")
}

func TestSummarizeReviewEvent(t *testing.T) {
	ev := makeEvent(t, "PullRequestReviewEvent", "a/x", t1, &github.PullRequestReviewEvent{
		Action: github.String("created"),
		PullRequest: &github.PullRequest{
			Number: github.Int(7),
			Title:  github.String("Refactor config"),
		},
	})

	s := Summarize([]*github.Event{ev})

	assert.Equal(t, 1, s.PullRequestsReviewed)
	require.Len(t, s.ReviewDetails, 1)
	assert.Equal(t, ReviewDetail{Repo: "a/x", PRNumber: "7", PRTitle: "Refactor config", Timestamp: t1}, s.ReviewDetails[0])
}

func TestSummarizeCommentEventsShareOneCounter(t *testing.T) {
	events := []*github.Event{
		makeEvent(t, "IssueCommentEvent", "a/x", t1, &github.IssueCommentEvent{}),
		makeEvent(t, "CommitCommentEvent", "a/y", t2, &github.CommitCommentEvent{}),
		makeEvent(t, "PullRequestReviewCommentEvent", "a/z", t3, &github.PullRequestReviewCommentEvent{}),
	}

	s := Summarize(events)

	assert.Equal(t, 3, s.Comments)
	assert.Len(t, s.Repos, 3)
	assert.Empty(t, s.CommitDetails)
	assert.Empty(t, s.PRDetails)
	assert.Empty(t, s.IssueDetails)
	assert.Empty(t, s.ReviewDetails)
}

func TestSummarizeIgnoresUnhandledTypesAndActions(t *testing.T) {
	events := []*github.Event{
		// Known to the API but not to the aggregator.
		makeEvent(t, "WatchEvent", "a/watched", t1, &github.WatchEvent{}),
		// Unknown type entirely; payload cannot be parsed.
		makeEvent(t, "SomeFutureEvent", "a/future", t1, nil),
		// Recognized type, unhandled action.
		issueEvent(t, "a/labeled", "labeled", t2, &github.Issue{Number: github.Int(3)}),
	}

	s := Summarize(events)

	assert.Equal(t, map[string]bool{"a/watched": true, "a/future": true, "a/labeled": true}, s.Repos)
	assert.Zero(t, s.Commits)
	assert.Zero(t, s.IssuesOpened)
	assert.Zero(t, s.IssuesClosed)
	assert.Empty(t, s.IssueDetails)
}

func TestSummarizeMissingFieldsDefaultToNA(t *testing.T) {
	s := Summarize([]*github.Event{
		prEvent(t, "a/x", "opened", t1, &github.PullRequest{}),
	})

	require.Len(t, s.PRDetails, 1)
	assert.Equal(t, "N/A", s.PRDetails[0].Number)
	assert.Equal(t, "N/A", s.PRDetails[0].Title)
}

func TestSummarizeCountersMatchDetailLists(t *testing.T) {
	events := append(scenarioEvents(t),
		prEvent(t, "a/x", "closed", t2, &github.PullRequest{Number: github.Int(8), Merged: github.Bool(true)}),
		issueEvent(t, "a/y", "opened", t3, &github.Issue{Number: github.Int(11), Title: github.String("New")}),
		makeEvent(t, "PullRequestReviewEvent", "a/y", t3, &github.PullRequestReviewEvent{
			PullRequest: &github.PullRequest{Number: github.Int(12)},
		}),
	)

	s := Summarize(events)

	assert.Equal(t, s.Commits, len(s.CommitDetails))
	assert.Equal(t, s.PullRequestsOpened+s.PullRequestsMerged, len(s.PRDetails))
	assert.Equal(t, s.IssuesOpened+s.IssuesClosed, len(s.IssueDetails))
	assert.Equal(t, s.PullRequestsReviewed, len(s.ReviewDetails))
}
