package report

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
)

// Summary is the normalized aggregate of a user's event stream. It is
// built once by Summarize and read-only afterwards; renderers and
// exporters never modify it.
type Summary struct {
	Commits              int
	PullRequestsOpened   int
	PullRequestsMerged   int
	PullRequestsReviewed int
	IssuesOpened         int
	IssuesClosed         int
	Comments             int

	// Repos is the set of repositories touched by any event,
	// recognized or not.
	Repos map[string]bool

	CommitDetails []CommitDetail
	PRDetails     []ItemDetail
	IssueDetails  []ItemDetail
	ReviewDetails []ReviewDetail
}

// CommitDetail is one pushed commit. Timestamp is the push event's
// timestamp, not the commit's own author date.
type CommitDetail struct {
	Repo      string
	SHA       string
	Message   string
	Timestamp time.Time
}

// ItemDetail is a pull request or issue record tagged with the action
// that produced it ("opened", "merged", "closed").
type ItemDetail struct {
	Repo      string
	Action    string
	Number    string
	Title     string
	Timestamp time.Time
}

// ReviewDetail is a submitted pull request review. Reviews carry no
// action tag.
type ReviewDetail struct {
	Repo      string
	PRNumber  string
	PRTitle   string
	Timestamp time.Time
}

// Summarize folds an event stream into a Summary. Every event records its
// repository; the per-type accumulators run off an exhaustive type switch
// over the parsed payload, so unrecognized event types contribute only
// repository membership.
func Summarize(events []*github.Event) *Summary {
	s := &Summary{Repos: make(map[string]bool)}

	for _, ev := range events {
		repo := ev.GetRepo().GetName()
		s.Repos[repo] = true

		payload, err := ev.ParsePayload()
		if err != nil {
			// Unknown event type.
			continue
		}
		createdAt := ev.GetCreatedAt().Time

		switch p := payload.(type) {
		case *github.PushEvent:
			s.Commits += len(p.Commits)
			for _, commit := range p.Commits {
				s.CommitDetails = append(s.CommitDetails, CommitDetail{
					Repo:      repo,
					SHA:       shortSHA(commit.GetSHA()),
					Message:   firstLine(commit.GetMessage()),
					Timestamp: createdAt,
				})
			}

		case *github.PullRequestEvent:
			pr := p.GetPullRequest()
			detail := ItemDetail{
				Repo:      repo,
				Number:    numberOrNA(pr.Number),
				Title:     titleOrNA(pr.Title),
				Timestamp: createdAt,
			}
			switch {
			case p.GetAction() == "opened":
				detail.Action = "opened"
				s.PullRequestsOpened++
				s.PRDetails = append(s.PRDetails, detail)
			case p.GetAction() == "closed" && pr.GetMerged():
				detail.Action = "merged"
				s.PullRequestsMerged++
				s.PRDetails = append(s.PRDetails, detail)
			}
			// A close without a merge is intentionally not reported.

		case *github.PullRequestReviewEvent:
			pr := p.GetPullRequest()
			s.PullRequestsReviewed++
			s.ReviewDetails = append(s.ReviewDetails, ReviewDetail{
				Repo:      repo,
				PRNumber:  numberOrNA(pr.Number),
				PRTitle:   titleOrNA(pr.Title),
				Timestamp: createdAt,
			})

		case *github.IssuesEvent:
			issue := p.GetIssue()
			detail := ItemDetail{
				Repo:      repo,
				Number:    numberOrNA(issue.Number),
				Title:     titleOrNA(issue.Title),
				Timestamp: createdAt,
			}
			switch p.GetAction() {
			case "opened":
				detail.Action = "opened"
				s.IssuesOpened++
				s.IssueDetails = append(s.IssueDetails, detail)
			case "closed":
				detail.Action = "closed"
				s.IssuesClosed++
				s.IssueDetails = append(s.IssueDetails, detail)
			}

		case *github.IssueCommentEvent, *github.CommitCommentEvent, *github.PullRequestReviewCommentEvent:
			s.Comments++
		}
	}

	return s
}

const missingField = "N/A"

func titleOrNA(title *string) string {
	if title == nil || *title == "" {
		return missingField
	}
	return *title
}

func numberOrNA(number *int) string {
	if number == nil {
		return missingField
	}
	return strconv.Itoa(*number)
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}

func firstLine(message string) string {
	if i := strings.IndexByte(message, '\n'); i >= 0 {
		return message[:i]
	}
	return message
}
