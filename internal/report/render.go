package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/go-github/v62/github"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Format selects the report output format.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
	FormatHTML     Format = "html"
)

// NoActivityMessage is returned verbatim, in every format, when the event
// feed yields nothing for the requested window.
const NoActivityMessage = "No GitHub activity found for the specified period."

// Window is the period a report covers. End is the instant aggregation
// started; Start is End minus Days days.
type Window struct {
	Start time.Time
	End   time.Time
	Days  int
}

// NewWindow builds a reporting window ending now.
func NewWindow(days int) Window {
	end := time.Now()
	return Window{Start: end.AddDate(0, 0, -days), End: end, Days: days}
}

// Date layouts shared by all formats.
const (
	longDate      = "January 02, 2006"
	longDateTime  = "January 02, 2006 at 03:04 PM"
	shortTime     = "Jan 02, 03:04 PM"
	shortDateTime = "Jan 02, 2006 at 03:04 PM"
)

// At most this many commits are shown per repository in any format.
const maxCommitsPerRepo = 20

var titleCaser = cases.Title(language.English)

// Per-format marker tables, keyed by action. Unrecognized actions fall
// back to the format's default marker.
var (
	markdownPRMarkers    = map[string]string{"opened": "\U0001F7E2", "merged": "\U0001F7E3"}
	markdownIssueMarkers = map[string]string{"opened": "\U0001F535", "closed": "✅"}

	textPRMarkers    = map[string]string{"opened": "[+]", "merged": "[*]"}
	textIssueMarkers = map[string]string{"opened": "[+]", "closed": "[x]"}
)

const (
	markdownDefaultMarker = "•"
	textDefaultMarker     = "[-]"
)

func markerFor(markers map[string]string, action, fallback string) string {
	if m, ok := markers[action]; ok {
		return m
	}
	return fallback
}

// commitGroup is one repository's commits, already capped.
type commitGroup struct {
	Repo    string
	Commits []CommitDetail
}

// reportData is the prepared, format-independent view of a summary that
// every renderer consumes. Building it once keeps grouping, sorting and
// capping identical across formats.
type reportData struct {
	Developer string
	Company   string
	Window    Window
	Summary   *Summary

	Repos        []string
	CommitGroups []commitGroup
}

func prepare(w Window, s *Summary, developer, company string) *reportData {
	data := &reportData{
		Developer: developer,
		Company:   company,
		Window:    w,
		Summary:   s,
		Repos:     sortedRepos(s.Repos),
	}

	byRepo := make(map[string][]CommitDetail)
	for _, commit := range s.CommitDetails {
		byRepo[commit.Repo] = append(byRepo[commit.Repo], commit)
	}

	repos := make([]string, 0, len(byRepo))
	for repo := range byRepo {
		repos = append(repos, repo)
	}
	sort.Strings(repos)

	for _, repo := range repos {
		commits := byRepo[repo]
		if len(commits) > maxCommitsPerRepo {
			commits = commits[:maxCommitsPerRepo]
		}
		data.CommitGroups = append(data.CommitGroups, commitGroup{Repo: repo, Commits: commits})
	}

	return data
}

func sortedRepos(set map[string]bool) []string {
	repos := make([]string, 0, len(set))
	for repo := range set {
		repos = append(repos, repo)
	}
	sort.Strings(repos)
	return repos
}

// Render produces the report document for one format. It is a pure
// function of its inputs: the generation timestamp is the window's end,
// so the same summary and window always render byte-identically.
func Render(format Format, w Window, s *Summary, developer, company string) (string, error) {
	data := prepare(w, s, developer, company)

	switch format {
	case FormatMarkdown:
		return renderMarkdown(data), nil
	case FormatText:
		return renderText(data), nil
	case FormatHTML:
		return renderHTML(data)
	default:
		return "", fmt.Errorf("unsupported report format: %q", format)
	}
}

// Generate summarizes an event stream and renders it. An empty stream
// short-circuits to the no-activity message regardless of format.
func Generate(format Format, w Window, events []*github.Event, developer, company string) (string, error) {
	if len(events) == 0 {
		return NoActivityMessage, nil
	}
	return Render(format, w, Summarize(events), developer, company)
}
