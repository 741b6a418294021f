package github

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"
	"github.com/google/go-github/v62/github"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/Afrawles/ghreport/internal/logger"
)

const (
	// The event feed is scanned for at most maxPages pages of
	// eventsPerPage items. Activity beyond that window is silently
	// dropped, matching the feed's own retention behavior.
	maxPages      = 10
	eventsPerPage = 100

	// Local request throttle, applied before GitHub's own limits kick in.
	requestsPerSecond = 5
	requestBurst      = 10
)

// eventLister is the slice of the GitHub Activity API the event fetcher
// needs. *github.ActivityService satisfies it.
type eventLister interface {
	ListEventsPerformedByUser(ctx context.Context, user string, publicOnly bool, opts *github.ListOptions) ([]*github.Event, *github.Response, error)
}

// Client wraps the GitHub API for a single user's activity.
type Client struct {
	gh       *github.Client
	activity eventLister
	username string
	log      *logrus.Logger
}

// throttledTransport rate-limits outgoing requests before they reach the
// secondary-limit waiter.
type throttledTransport struct {
	base    http.RoundTripper
	limiter *rate.Limiter
}

func (t *throttledTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.base.RoundTrip(req)
}

// NewClient builds an authenticated client. The transport chain is
// oauth2 token injection -> secondary rate limit waiter -> local throttle.
func NewClient(token, username string) (*Client, error) {
	throttle := &throttledTransport{
		base:    http.DefaultTransport,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
	}

	waiter, err := github_ratelimit.NewRateLimitWaiter(throttle,
		github_ratelimit.WithSingleSleepLimit(time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Base:   waiter,
			Source: ts,
		},
	}

	gh := github.NewClient(httpClient)
	return &Client{
		gh:       gh,
		activity: gh.Activity,
		username: username,
		log:      logger.GetLogger(),
	}, nil
}

// Username returns the user this client fetches activity for.
func (c *Client) Username() string {
	return c.username
}

// FetchEvents retrieves the user's event feed, newest first, down to the
// cutoff instant. Scanning stops at the first event older than the cutoff:
// the feed is ordered newest-first, so everything after it is older too.
//
// A failed or empty page ends pagination and is not an error; whatever was
// collected up to that point is the result. At most maxPages pages of
// eventsPerPage events are considered.
func (c *Client) FetchEvents(ctx context.Context, cutoff time.Time) []*github.Event {
	var events []*github.Event

	for page := 1; page <= maxPages; page++ {
		opts := &github.ListOptions{Page: page, PerPage: eventsPerPage}
		pageEvents, _, err := c.activity.ListEventsPerformedByUser(ctx, c.username, false, opts)
		if err != nil {
			c.log.WithError(err).WithField("page", page).
				Warn("event feed request failed, stopping pagination")
			break
		}
		if len(pageEvents) == 0 {
			break
		}

		reachedCutoff := false
		for _, ev := range pageEvents {
			if ev.GetCreatedAt().Before(cutoff) {
				reachedCutoff = true
				break
			}
			events = append(events, ev)
		}
		if reachedCutoff {
			break
		}
	}

	return events
}

// ConnectionInfo describes the authenticated user and the current API
// rate budget, for credential checks.
type ConnectionInfo struct {
	Name               string
	PublicRepos        int
	RateLimitRemaining int
	RateLimit          int
}

// HealthCheck verifies the token and username against the API.
func (c *Client) HealthCheck(ctx context.Context) (*ConnectionInfo, error) {
	user, resp, err := c.gh.Users.Get(ctx, c.username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user %q: %w", c.username, err)
	}

	name := user.GetName()
	if name == "" {
		name = c.username
	}

	info := &ConnectionInfo{
		Name:        name,
		PublicRepos: user.GetPublicRepos(),
	}
	if resp != nil {
		info.RateLimitRemaining = resp.Rate.Remaining
		info.RateLimit = resp.Rate.Limit
	}
	return info, nil
}

// CommitsByRepo lists the user's repositories and returns the commits they
// authored in each since the given instant, keyed by full repository name.
// Repositories whose commit listing fails are skipped.
func (c *Client) CommitsByRepo(ctx context.Context, since time.Time) (map[string][]*github.RepositoryCommit, error) {
	repoOpts := &github.RepositoryListByUserOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var repos []*github.Repository
	for {
		page, resp, err := c.gh.Repositories.ListByUser(ctx, c.username, repoOpts)
		if err != nil {
			return nil, fmt.Errorf("failed to list repositories: %w", err)
		}
		repos = append(repos, page...)
		if resp.NextPage == 0 {
			break
		}
		repoOpts.Page = resp.NextPage
	}

	commitsByRepo := make(map[string][]*github.RepositoryCommit)
	for _, repo := range repos {
		fullName := repo.GetFullName()
		commits, _, err := c.gh.Repositories.ListCommits(ctx, repo.GetOwner().GetLogin(), repo.GetName(),
			&github.CommitsListOptions{
				Author:      c.username,
				Since:       since,
				ListOptions: github.ListOptions{PerPage: 100},
			})
		if err != nil {
			c.log.WithError(err).WithField("repo", fullName).
				Debug("skipping repository, commit listing failed")
			continue
		}
		if len(commits) > 0 {
			commitsByRepo[fullName] = commits
		}
	}

	return commitsByRepo, nil
}
