package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Afrawles/ghreport/internal/github"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Test the GitHub API connection and credentials",
	Run:   runCheck,
}

func runCheck(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	client, err := github.NewClient(cfg.GitHub.Token, cfg.GitHub.Username)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Testing GitHub API connection...")
	info, err := client.HealthCheck(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Connection failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Connected successfully")
	fmt.Printf("  User: %s\n", info.Name)
	fmt.Printf("  Public repos: %d\n", info.PublicRepos)
	fmt.Printf("  API rate limit: %d/%d remaining\n", info.RateLimitRemaining, info.RateLimit)
}
