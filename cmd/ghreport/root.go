package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Afrawles/ghreport/internal/config"
	"github.com/Afrawles/ghreport/internal/github"
	"github.com/Afrawles/ghreport/internal/logger"
	"github.com/Afrawles/ghreport/internal/report"
	"github.com/spf13/cobra"

	"github.com/schollz/progressbar/v3"
)

var (
	token    string
	username string
	period   string
	days     int
	format   string
	output   string
	company  string

	exportJSON  bool
	exportCSV   bool
	exportExcel bool
	exportDir   string
)

var rootCmd = &cobra.Command{
	Use:   "ghreport",
	Short: "Generate GitHub activity reports",
	Long: `ghreport summarizes a GitHub user's recent activity (commits,
pull requests, issues, code reviews) into a report for professional
documentation.`,
	Run: generateReport,
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(commitsCmd)

	rootCmd.PersistentFlags().StringVar(&token, "token", "", "GitHub personal access token (or set GITHUB_TOKEN)")
	rootCmd.PersistentFlags().StringVarP(&username, "user", "u", "", "GitHub username (or set GITHUB_USERNAME)")
	rootCmd.PersistentFlags().StringVar(&period, "period", "", "Time period preset: day, 3days, week, 2weeks, month")
	rootCmd.PersistentFlags().IntVar(&days, "days", 0, "Custom number of days (overrides --period, default: 7)")

	rootCmd.Flags().StringVarP(&format, "format", "f", "", "Output format: markdown, text, html (default: markdown, or OUTPUT_FORMAT)")
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default: print to stdout)")
	rootCmd.Flags().StringVar(&company, "company", "", "Company name for the report footer")

	rootCmd.Flags().BoolVar(&exportJSON, "json", false, "Also export the summary as JSON")
	rootCmd.Flags().BoolVar(&exportCSV, "csv", false, "Also export the summary as CSV")
	rootCmd.Flags().BoolVar(&exportExcel, "excel", false, "Also export the summary as an Excel workbook")
	rootCmd.Flags().StringVar(&exportDir, "export-dir", "", "Directory for the extra exports (default: OUTPUT_DIR or reports)")
}

// loadConfig merges flag values over the environment-backed config.
func loadConfig() *config.Config {
	cfg := config.LoadFromEnv()
	if token != "" {
		cfg.GitHub.Token = token
	}
	if username != "" {
		cfg.GitHub.Username = username
	}
	if company != "" {
		cfg.Company = company
	}
	return cfg
}

func generateReport(cmd *cobra.Command, args []string) {
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

	reportFormat := format
	if reportFormat == "" {
		reportFormat = cfg.Output.Format
	}

	window := report.NewWindow(reportDays)

	fmt.Fprintf(os.Stderr, "Fetching GitHub activities for %s...\n", cfg.GitHub.Username)
	bar := newSpinner("Fetching events")
	events := client.FetchEvents(context.Background(), window.Start)
	finishBar(bar)
	logger.WithField("events", len(events)).Debug("event feed fetched")

	document, err := report.Generate(report.Format(reportFormat), window, events, cfg.GitHub.Username, cfg.Company)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := writeOutput(document, output); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		os.Exit(1)
	}

	if len(events) == 0 {
		return
	}

	// Additional export formats share the one summary.
	if !exportJSON && !exportCSV && !exportExcel {
		return
	}
	dir := exportDir
	if dir == "" {
		dir = cfg.Output.Directory
	}
	summary := report.Summarize(events)
	timestamp := window.End.Format("20060102_150405")

	if exportJSON {
		exporter := report.NewExporter(dir)
		filename := fmt.Sprintf("report_%s_%s.json", cfg.GitHub.Username, timestamp)
		if err := exporter.ExportJSON(summary, window, cfg.GitHub.Username, filename); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to export JSON: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "  -> %s (JSON)\n", filename)
		}
	}

	if exportCSV {
		if err := report.NewCSVExporter(dir).Export(summary, window, cfg.GitHub.Username); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to export CSV: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "  -> CSV reports in %s/\n", dir)
		}
	}

	if exportExcel {
		if err := report.NewExcelExporter(dir).Export(summary, window, cfg.GitHub.Username); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to export Excel: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "  -> Excel workbook in %s/\n", dir)
		}
	}
}

func newSpinner(description string) *progressbar.ProgressBar {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionThrottle(100*time.Millisecond),
	)
	_ = bar.RenderBlank()
	return bar
}

func finishBar(bar *progressbar.ProgressBar) {
	if bar != nil {
		_ = bar.Finish()
	}
}
