package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"winnow/internal/config"
	"winnow/internal/logging"
	"winnow/internal/scan"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var movieRoots []string
	var tvRoots []string
	var outputDir string
	var byHash bool
	var hashWorkers int
	var logLevel string
	var logFormat string

	cmd := &cobra.Command{
		Use:   "scan [dir ...]",
		Short: "Scan media trees and write a duplicate report",
		Long: `Scan one or more directory trees for duplicate movies and TV episodes.

Positional directories are scanned with filename-convention extraction.
Trees passed via --movie-root or --tv-root additionally use the library
layout (root folder names, season directories) to identify files. With no
arguments the scan roots from the configuration file are used.

Examples:
  winnow scan /mnt/disk1 /mnt/disk2
  winnow scan --movie-root /mnt/disk1/MOVIES --tv-root /mnt/disk1/TV
  winnow scan --by-hash /mnt/disk1            # group by content hash`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			opts, err := buildScanOptions(cfg, args, movieRoots, tvRoots, outputDir, byHash, hashWorkers)
			if err != nil {
				return err
			}

			if strings.TrimSpace(logLevel) != "" {
				cfg.Logging.Level = logLevel
			}
			if strings.TrimSpace(logFormat) != "" {
				cfg.Logging.Format = logFormat
			}
			logger, logPath, err := logging.NewFromConfig(cfg, "scan")
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}

			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			result, err := scan.New(opts, logger).Run(signalCtx)
			if err != nil {
				return err
			}

			printScanResult(cmd.OutOrStdout(), result, logPath)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&movieRoots, "movie-root", nil, "Movie tree scanned with library-layout extraction (repeatable)")
	cmd.Flags().StringArrayVar(&tvRoots, "tv-root", nil, "TV tree scanned with library-layout extraction (repeatable)")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for reports and summaries (default: configured output_dir)")
	cmd.Flags().BoolVar(&byHash, "by-hash", false, "Group files by SHA-256 content hash instead of parsed identity")
	cmd.Flags().IntVar(&hashWorkers, "hash-workers", 0, "Concurrent hash workers for --by-hash (default: CPU count)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	cmd.Flags().StringVar(&logFormat, "log-format", "", "Log format override (console, json)")

	return cmd
}

// buildScanOptions merges command-line directories over the configured scan
// roots. Explicit flags and arguments replace their config counterparts
// rather than appending to them.
func buildScanOptions(cfg *config.Config, args, movieRoots, tvRoots []string, outputDir string, byHash bool, hashWorkers int) (scan.Options, error) {
	opts := scan.Options{
		Roots:       append([]string(nil), cfg.Scan.Roots...),
		MovieRoots:  append([]string(nil), cfg.Scan.MovieRoots...),
		TVRoots:     append([]string(nil), cfg.Scan.TVRoots...),
		OutputDir:   cfg.Paths.OutputDir,
		ByHash:      byHash,
		HashWorkers: cfg.Scan.HashWorkers,
	}

	if len(args) > 0 {
		expanded, err := expandAll(args)
		if err != nil {
			return scan.Options{}, err
		}
		opts.Roots = expanded
	}
	if len(movieRoots) > 0 {
		expanded, err := expandAll(movieRoots)
		if err != nil {
			return scan.Options{}, err
		}
		opts.MovieRoots = expanded
	}
	if len(tvRoots) > 0 {
		expanded, err := expandAll(tvRoots)
		if err != nil {
			return scan.Options{}, err
		}
		opts.TVRoots = expanded
	}
	if strings.TrimSpace(outputDir) != "" {
		expanded, err := config.ExpandPath(outputDir)
		if err != nil {
			return scan.Options{}, fmt.Errorf("resolve output dir: %w", err)
		}
		if err := os.MkdirAll(expanded, 0o755); err != nil {
			return scan.Options{}, fmt.Errorf("create output dir %q: %w", expanded, err)
		}
		opts.OutputDir = expanded
	}
	if hashWorkers > 0 {
		opts.HashWorkers = hashWorkers
	}

	if len(opts.Roots)+len(opts.MovieRoots)+len(opts.TVRoots) == 0 {
		return scan.Options{}, errors.New("no directories to scan; pass them as arguments or set scan roots in the config")
	}

	opts.LockPath = filepath.Join(opts.OutputDir, lockFileName)
	return opts, nil
}

func expandAll(paths []string) ([]string, error) {
	expanded := make([]string, 0, len(paths))
	for _, p := range paths {
		resolved, err := config.ExpandPath(p)
		if err != nil {
			return nil, fmt.Errorf("resolve path %q: %w", p, err)
		}
		expanded = append(expanded, resolved)
	}
	return expanded, nil
}

func printScanResult(out io.Writer, result *scan.Result, logPath string) {
	stats := result.Stats
	rows := [][]string{
		{"Files scanned", strconv.Itoa(stats.TotalFiles)},
		{"Video files", strconv.Itoa(stats.VideoFiles)},
		{"Audio files", strconv.Itoa(stats.AudioFiles)},
		{"Duplicate groups", strconv.Itoa(stats.DuplicateGroups)},
		{"Duplicate files", strconv.Itoa(stats.TotalDuplicates)},
		{"Scan time", fmt.Sprintf("%.2fs", stats.ScanSeconds)},
	}
	fmt.Fprintln(out, renderTable([]string{"Metric", "Value"}, rows, []columnAlignment{alignLeft, alignRight}))

	if n := len(result.NearMisses); n > 0 {
		fmt.Fprintf(out, "Near misses flagged: %d (details in the summary file)\n", n)
	}
	fmt.Fprintf(out, "Report:  %s\n", result.ReportPath)
	fmt.Fprintf(out, "Summary: %s\n", result.SummaryPath)
	if logPath != "" {
		fmt.Fprintf(out, "Log:     %s\n", logPath)
	}
}
