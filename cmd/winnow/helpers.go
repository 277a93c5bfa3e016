package main

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"winnow/internal/config"
)

// lockFileName lives in the output directory so a scan and a resolve
// session never run against it at the same time.
const lockFileName = ".winnow.lock"

// resolveReportPath picks the report to operate on: an explicit argument
// wins, otherwise the newest duplicate report in the output directory.
func resolveReportPath(cfg *config.Config, args []string) (string, error) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		path, err := config.ExpandPath(strings.TrimSpace(args[0]))
		if err != nil {
			return "", fmt.Errorf("resolve report path: %w", err)
		}
		return path, nil
	}
	return latestReport(cfg.Paths.OutputDir)
}

func latestReport(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "duplicate_report_*.json"))
	if err != nil {
		return "", fmt.Errorf("list reports: %w", err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no duplicate reports under %s; run `winnow scan` first", dir)
	}
	// Report names embed their timestamp, so the lexicographic maximum is
	// the newest report.
	sort.Strings(matches)
	return matches[len(matches)-1], nil
}
