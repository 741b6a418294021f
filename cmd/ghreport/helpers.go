package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Afrawles/ghreport/internal/report"
)

const defaultDays = 7

// periodDays maps the --period presets to day counts.
var periodDays = map[string]int{
	"day":    1,
	"3days":  3,
	"week":   7,
	"2weeks": 14,
	"month":  30,
}

// resolveDays picks the reporting window length. An explicit --days wins
// over --period; with neither, the default is one week.
func resolveDays(days int, period string) (int, error) {
	if days > 0 {
		return days, nil
	}
	if period != "" {
		d, ok := periodDays[period]
		if !ok {
			return 0, fmt.Errorf("unknown period %q (valid: day, 3days, week, 2weeks, month)", period)
		}
		return d, nil
	}
	return defaultDays, nil
}

// writeOutput writes the document to the given path, or to stdout when no
// path is set.
func writeOutput(document, path string) error {
	if path == "" {
		fmt.Println(document)
		return nil
	}

	exporter := report.NewExporter(filepath.Dir(path))
	if err := exporter.ExportReport(document, filepath.Base(path)); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Report successfully generated: %s\n", path)
	return nil
}
