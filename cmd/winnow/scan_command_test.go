package main

import (
	"path/filepath"
	"strings"
	"testing"

	"winnow/internal/report"
	"winnow/internal/testsupport"
)

func TestScanCommandWritesReport(t *testing.T) {
	env := setupCLITestEnv(t)

	testsupport.WriteFile(t, filepath.Join(env.mediaDir, "disk1", "MOVIES", "Heat (1995).mkv"), 2048)
	testsupport.WriteFile(t, filepath.Join(env.mediaDir, "disk2", "MOVIES", "Heat (1995).mkv"), 1024)

	out, _, err := runCLI(t, []string{
		"scan", "--log-level", "error",
		filepath.Join(env.mediaDir, "disk1"),
		filepath.Join(env.mediaDir, "disk2"),
	}, env.configPath)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	requireContains(t, out, "Duplicate groups")
	requireContains(t, out, "Report:")

	matches, err := filepath.Glob(filepath.Join(env.outputDir, "duplicate_report_*.json"))
	if err != nil {
		t.Fatalf("glob reports: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected one report, got %v", matches)
	}
	rpt, err := report.Load(matches[0])
	if err != nil {
		t.Fatalf("load written report: %v", err)
	}
	if rpt.Duplicates.Movies.Len() != 1 {
		t.Fatalf("movie groups = %d, want 1", rpt.Duplicates.Movies.Len())
	}
}

func TestScanCommandRequiresDirectories(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"scan"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "no directories to scan") {
		t.Fatalf("expected missing-directories error, got %v", err)
	}
}

func TestScanCommandByHash(t *testing.T) {
	env := setupCLITestEnv(t)

	payload := []byte("identical payload")
	testsupport.WriteFileContent(t, filepath.Join(env.mediaDir, "a.mkv"), payload)
	testsupport.WriteFileContent(t, filepath.Join(env.mediaDir, "b.mkv"), payload)
	testsupport.WriteFileContent(t, filepath.Join(env.mediaDir, "c.mkv"), []byte("different payload"))

	out, _, err := runCLI(t, []string{
		"scan", "--by-hash", "--log-level", "error", env.mediaDir,
	}, env.configPath)
	if err != nil {
		t.Fatalf("scan --by-hash: %v", err)
	}
	requireContains(t, out, "Report:")

	matches, err := filepath.Glob(filepath.Join(env.outputDir, "hash_report_*.json"))
	if err != nil {
		t.Fatalf("glob hash reports: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected one hash report, got %v", matches)
	}
}
