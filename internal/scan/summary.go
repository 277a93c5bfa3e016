package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"winnow/internal/media"
	"winnow/internal/report"
)

// writeSummary renders the human-readable companion to the JSON report
// and returns the path it was written to.
func writeSummary(dir string, result *Result) (string, error) {
	var b strings.Builder

	b.WriteString("Winnow duplicate scan\n")
	b.WriteString("=====================\n")
	fmt.Fprintf(&b, "Scan ID:   %s\n", result.ScanID)

	stamp := ""
	switch {
	case result.Report != nil:
		fmt.Fprintf(&b, "Timestamp: %s\n", result.Report.ScanTimestamp)
		stamp = result.Report.Timestamp()
	case result.HashReport != nil:
		fmt.Fprintf(&b, "Timestamp: %s\n", result.HashReport.ScanTimestamp)
		stamp = result.HashReport.Timestamp()
	}
	b.WriteString("\n")

	stats := result.Stats
	fmt.Fprintf(&b, "Files scanned:    %d\n", stats.TotalFiles)
	fmt.Fprintf(&b, "Video files:      %d\n", stats.VideoFiles)
	fmt.Fprintf(&b, "Audio files:      %d\n", stats.AudioFiles)
	fmt.Fprintf(&b, "Duplicate groups: %d\n", stats.DuplicateGroups)
	fmt.Fprintf(&b, "Duplicate files:  %d\n", stats.TotalDuplicates)
	fmt.Fprintf(&b, "Scan time:        %.2fs\n", stats.ScanSeconds)

	if result.Report != nil {
		writeGroupSection(&b, "Movie duplicates", result.Report.Duplicates.Movies, formatPlainKey)
		writeGroupSection(&b, "TV duplicates", result.Report.Duplicates.TVSeries, formatPlainKey)

		if len(result.NearMisses) > 0 {
			writeHeading(&b, "Possible near misses")
			b.WriteString("These titles differ slightly but may be the same movie:\n")
			for _, miss := range result.NearMisses {
				fmt.Fprintf(&b, "  %s <-> %s\n", miss.KeyA, miss.KeyB)
			}
		}
	}
	if result.HashReport != nil {
		writeGroupSection(&b, "Exact content duplicates", result.HashReport.DuplicateGroups, formatDigestKey)
	}

	path := filepath.Join(dir, fmt.Sprintf("summary_%s.txt", stamp))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func writeHeading(b *strings.Builder, title string) {
	b.WriteString("\n")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", len(title)))
	b.WriteString("\n")
}

func writeGroupSection(b *strings.Builder, title string, groups *report.GroupMap, formatKey func(string) string) {
	if groups == nil || groups.Len() == 0 {
		return
	}
	writeHeading(b, title)
	for _, key := range groups.Keys() {
		members, _ := groups.Get(key)
		fmt.Fprintf(b, "%s (%d copies)\n", formatKey(key), len(members))
		for _, f := range members {
			fmt.Fprintf(b, "  %s (%s)\n", f.Path, fileSize(f))
		}
	}
}

func formatPlainKey(key string) string { return key }

// formatDigestKey shortens a SHA-256 hex digest for display.
func formatDigestKey(key string) string {
	if len(key) > 12 {
		return key[:12]
	}
	return key
}

func fileSize(f media.File) string {
	return humanize.Bytes(uint64(f.Size))
}
