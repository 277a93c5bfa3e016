package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"winnow/internal/media"
	"winnow/internal/report"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	outputDir  string
	logDir     string
	mediaDir   string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)

	env := &cliTestEnv{
		baseDir:    base,
		configPath: filepath.Join(homeDir, ".config", "winnow", "config.toml"),
		outputDir:  filepath.Join(base, "reports"),
		logDir:     filepath.Join(base, "logs"),
		mediaDir:   filepath.Join(base, "media"),
	}
	for _, dir := range []string{env.outputDir, env.logDir, env.mediaDir, filepath.Dir(env.configPath)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	writeTestConfig(t, env)

	return env
}

func writeTestConfig(t *testing.T, env *cliTestEnv) {
	t.Helper()
	content := fmt.Sprintf("[paths]\noutput_dir = %q\nlog_dir = %q\n", env.outputDir, env.logDir)
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

// writeReportFixture saves a small duplicate report with one TV group split
// across two roots and returns its path.
func writeReportFixture(t *testing.T, dir, timestamp string) string {
	t.Helper()

	tv := report.NewGroupMap()
	tv.Set("breaking bad S01E01", []media.File{
		fixtureFile("/mnt/disk1/TV/Breaking Bad/Season 1/s01e01.mkv", 2048),
		fixtureFile("/mnt/disk2/TV/Breaking Bad/Season 1/s01e01.mkv", 1024),
	})

	rpt := &report.Report{
		ScanTimestamp: timestamp,
		ScanStats: report.Stats{
			TotalFiles:      4,
			VideoFiles:      4,
			TVGroups:        1,
			DuplicateGroups: 1,
			TotalDuplicates: 2,
		},
		Duplicates: report.Duplicates{
			Movies:   report.NewGroupMap(),
			TVSeries: tv,
		},
	}
	path, err := rpt.Save(dir)
	if err != nil {
		t.Fatalf("save report fixture: %v", err)
	}
	return path
}

func writeEmptyReportFixture(t *testing.T, dir string) string {
	t.Helper()
	rpt := &report.Report{
		ScanTimestamp: "2026-03-14T09:26:53Z",
		ScanStats:     report.Stats{TotalFiles: 10, VideoFiles: 8},
		Duplicates: report.Duplicates{
			Movies:   report.NewGroupMap(),
			TVSeries: report.NewGroupMap(),
		},
	}
	path, err := rpt.Save(dir)
	if err != nil {
		t.Fatalf("save empty report fixture: %v", err)
	}
	return path
}

func fixtureFile(path string, size int64) media.File {
	return media.File{
		Path:      path,
		Filename:  filepath.Base(path),
		Extension: filepath.Ext(path),
		Size:      size,
		Kind:      media.KindVideo,
	}
}
