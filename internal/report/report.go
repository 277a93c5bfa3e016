package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Stats carries the scan counters the report records. Names follow the
// on-disk snake_case contract.
type Stats struct {
	TotalFiles      int     `json:"total_files"`
	VideoFiles      int     `json:"video_files"`
	AudioFiles      int     `json:"audio_files"`
	MovieGroups     int     `json:"movie_duplicate_groups"`
	TVGroups        int     `json:"tv_duplicate_groups"`
	DuplicateGroups int     `json:"duplicate_groups"`
	TotalDuplicates int     `json:"total_duplicates"`
	ScanSeconds     float64 `json:"scan_time"`
}

// Duplicates holds the two group sections of an identity-scan report.
type Duplicates struct {
	Movies   *GroupMap `json:"movies"`
	TVSeries *GroupMap `json:"tv_series"`
}

// Report is the identity-scan output the resolve phase consumes.
type Report struct {
	ScanID        string     `json:"scan_id,omitempty"`
	ScanTimestamp string     `json:"scan_timestamp"`
	ScanStats     Stats      `json:"scan_stats"`
	Duplicates    Duplicates `json:"duplicates"`
}

// HashReport is the byte-duplicate variant. Its duplicate section uses a
// different key, which keeps it intentionally unloadable by Load.
type HashReport struct {
	ScanID          string    `json:"scan_id,omitempty"`
	ScanTimestamp   string    `json:"scan_timestamp"`
	ScanStats       Stats     `json:"scan_stats"`
	DuplicateGroups *GroupMap `json:"duplicate_groups"`
}

// requiredKeys must all be present before a report is trusted.
var requiredKeys = []string{"scan_timestamp", "scan_stats", "duplicates"}

// Load reads and validates an identity-scan report. A missing file,
// malformed JSON, or any absent required key fails; there is no partial
// result.
func Load(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse report %s: %w", path, err)
	}
	for _, key := range requiredKeys {
		if _, ok := raw[key]; !ok {
			return nil, fmt.Errorf("report %s: missing required key %q", path, key)
		}
	}
	var rep Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("decode report %s: %w", path, err)
	}
	if rep.Duplicates.Movies == nil {
		rep.Duplicates.Movies = NewGroupMap()
	}
	if rep.Duplicates.TVSeries == nil {
		rep.Duplicates.TVSeries = NewGroupMap()
	}
	return &rep, nil
}

// Save writes the report into dir as duplicate_report_<timestamp>.json and
// returns the full path. The filename timestamp matches scan_timestamp.
func (r *Report) Save(dir string) (string, error) {
	path := filepath.Join(dir, "duplicate_report_"+stampFor(r.ScanTimestamp)+".json")
	if err := writeJSON(path, r); err != nil {
		return "", err
	}
	return path, nil
}

// Save writes the hash report as hash_report_<timestamp>.json.
func (r *HashReport) Save(dir string) (string, error) {
	path := filepath.Join(dir, "hash_report_"+stampFor(r.ScanTimestamp)+".json")
	if err := writeJSON(path, r); err != nil {
		return "", err
	}
	return path, nil
}

// Timestamp returns the file-name timestamp derived from scan_timestamp.
func (r *Report) Timestamp() string { return stampFor(r.ScanTimestamp) }

func (r *HashReport) Timestamp() string { return stampFor(r.ScanTimestamp) }

func stampFor(scanTimestamp string) string {
	ts, err := time.Parse(time.RFC3339, scanTimestamp)
	if err != nil {
		ts = time.Now()
	}
	return ts.Format("20060102_150405")
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
