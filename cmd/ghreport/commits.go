package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/Afrawles/ghreport/internal/github"
	"github.com/Afrawles/ghreport/internal/report"
	"github.com/spf13/cobra"
)

var commitsCmd = &cobra.Command{
	Use:   "commits",
	Short: "List the user's commits per repository for the period",
	Long: `Walks the user's repositories and lists the commits they authored
within the reporting window, grouped by repository. Repositories that
cannot be read are skipped.`,
	Run: runCommits,
}

func runCommits(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	reportDays, err := resolveDays(days, period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	client, err := github.NewClient(cfg.GitHub.Token, cfg.GitHub.Username)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	window := report.NewWindow(reportDays)

	bar := newSpinner("Fetching commits")
	commitsByRepo, err := client.CommitsByRepo(context.Background(), window.Start)
	finishBar(bar)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(commitsByRepo) == 0 {
		fmt.Println("No commits found for the specified period.")
		return
	}

	repos := make([]string, 0, len(commitsByRepo))
	for repo := range commitsByRepo {
		repos = append(repos, repo)
	}
	sort.Strings(repos)

	for _, repo := range repos {
		commits := commitsByRepo[repo]
		fmt.Printf("\n%s (%d commits):\n", repo, len(commits))
		for _, commit := range commits {
			sha := commit.GetSHA()
			if len(sha) > 7 {
				sha = sha[:7]
			}
			fmt.Printf("  %s %s\n", sha, firstLine(commit.GetCommit().GetMessage()))
		}
	}
}

func firstLine(s string) string {
	for i := range s {
		if s[i] == '\n' {
			return s[:i]
		}
	}
	return s
}
