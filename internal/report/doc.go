// Package report persists scan results and loads them back for the
// resolve phase.
//
// The JSON contract requires three top-level keys: scan_timestamp,
// scan_stats, and duplicates. Loading fails outright when any of them is
// absent; the resolve phase never works from a partial report. Duplicate
// group mappings keep first-seen key order across the round trip.
package report
