package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// pipeStdin swaps os.Stdin for a pipe so the terminal check sees a
// non-interactive stream regardless of how the tests are run.
func pipeStdin(t *testing.T) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	old := os.Stdin
	os.Stdin = r
	t.Cleanup(func() {
		os.Stdin = old
		r.Close() //nolint:errcheck
		w.Close() //nolint:errcheck
	})
}

func TestResolveRefusesPipedStdin(t *testing.T) {
	env := setupCLITestEnv(t)
	path := writeReportFixture(t, env.outputDir, "2026-03-14T09:26:53Z")
	pipeStdin(t)

	_, _, err := runCLI(t, []string{"resolve", path}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "interactive terminal") {
		t.Fatalf("expected terminal refusal, got %v", err)
	}
}

func TestResolveRejectsMalformedReport(t *testing.T) {
	env := setupCLITestEnv(t)
	pipeStdin(t)

	path := filepath.Join(env.outputDir, "duplicate_report_broken.json")
	if err := os.WriteFile(path, []byte(`{"scan_timestamp": "2026-03-14T09:26:53Z"}`), 0o644); err != nil {
		t.Fatalf("write broken report: %v", err)
	}

	_, _, err := runCLI(t, []string{"resolve", path}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "missing required key") {
		t.Fatalf("expected missing-key error, got %v", err)
	}
}

func TestResolveWithoutReportsExplains(t *testing.T) {
	env := setupCLITestEnv(t)
	pipeStdin(t)

	_, _, err := runCLI(t, []string{"resolve"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "no duplicate reports") {
		t.Fatalf("expected missing-report error, got %v", err)
	}
}
