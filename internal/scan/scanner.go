package scan

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	"winnow/internal/dupes"
	"winnow/internal/fileutil"
	"winnow/internal/identify"
	"winnow/internal/logging"
	"winnow/internal/media"
	"winnow/internal/report"
)

// Hash workers default to the CPU count but stay bounded; the work is
// I/O heavy and more goroutines just thrash the disks.
const defaultHashWorkerCap = 8

// Options describes one scan run.
type Options struct {
	Roots       []string
	MovieRoots  []string
	TVRoots     []string
	OutputDir   string
	ByHash      bool
	HashWorkers int
	LockPath    string // empty disables locking
}

// Result carries everything a scan produced.
type Result struct {
	ScanID      string
	Stats       report.Stats
	Report      *report.Report
	HashReport  *report.HashReport
	NearMisses  []dupes.NearMiss
	ReportPath  string
	SummaryPath string
}

// Scanner walks media trees and writes duplicate reports.
type Scanner struct {
	opts      Options
	extractor *identify.Extractor
	logger    *slog.Logger
}

// New builds a Scanner. A nil logger falls back to a no-op logger.
func New(opts Options, logger *slog.Logger) *Scanner {
	return &Scanner{
		opts: opts,
		extractor: identify.New(identify.Options{
			MovieRoots: opts.MovieRoots,
			TVRoots:    opts.TVRoots,
		}),
		logger: logging.NewComponentLogger(logger, "scan"),
	}
}

// Run executes the scan and persists the report and summary under the
// output directory.
func (s *Scanner) Run(ctx context.Context) (*Result, error) {
	dirs := s.scanDirectories()
	if len(dirs) == 0 {
		return nil, errors.New("no scan directories configured")
	}

	if s.opts.LockPath != "" {
		release, err := fileutil.AcquireLock(s.opts.LockPath)
		if err != nil {
			return nil, err
		}
		defer func() {
			if err := release(); err != nil {
				s.logger.Warn("failed to release scan lock", logging.Error(err))
			}
		}()
	}

	scanID := uuid.NewString()
	logger := s.logger.With(logging.String(logging.FieldScanID, scanID))
	logger.Info("scan started",
		logging.Int("directories", len(dirs)),
		logging.Bool("by_hash", s.opts.ByHash))

	started := time.Now()
	files, stats, err := s.discover(ctx, dirs, logger)
	if err != nil {
		return nil, err
	}

	result := &Result{ScanID: scanID}
	timestamp := time.Now().UTC().Format(time.RFC3339)

	if s.opts.ByHash {
		groups, err := s.groupByHash(ctx, files, logger)
		if err != nil {
			return nil, err
		}
		stats.DuplicateGroups = groups.Len()
		for _, digest := range groups.Keys() {
			members, _ := groups.Get(digest)
			stats.TotalDuplicates += len(members)
		}
		stats.ScanSeconds = time.Since(started).Seconds()

		result.HashReport = &report.HashReport{
			ScanID:          scanID,
			ScanTimestamp:   timestamp,
			ScanStats:       stats,
			DuplicateGroups: groups,
		}
	} else {
		grouper := dupes.NewGrouper()
		for _, f := range files {
			grouper.Add(f)
		}

		counts := grouper.Counts()
		stats.MovieGroups = counts.MovieGroups
		stats.TVGroups = counts.TVGroups
		stats.DuplicateGroups = counts.MovieGroups + counts.TVGroups
		stats.TotalDuplicates = counts.DuplicateFiles
		stats.ScanSeconds = time.Since(started).Seconds()

		result.Report = &report.Report{
			ScanID:        scanID,
			ScanTimestamp: timestamp,
			ScanStats:     stats,
			Duplicates: report.Duplicates{
				Movies:   toGroupMap(grouper.Movies()),
				TVSeries: toGroupMap(grouper.TV()),
			},
		}
		result.NearMisses = dupes.NearMisses(grouper.MovieKeys())
		for _, miss := range result.NearMisses {
			logger.Warn("possible duplicate under different keys",
				logging.String("key_a", miss.KeyA),
				logging.String("key_b", miss.KeyB))
		}
	}
	result.Stats = stats

	if err := s.persist(result); err != nil {
		return nil, err
	}

	logger.Info("scan finished",
		logging.Int("total_files", stats.TotalFiles),
		logging.Int("video_files", stats.VideoFiles),
		logging.Int("audio_files", stats.AudioFiles),
		logging.Int("duplicate_groups", stats.DuplicateGroups),
		logging.Int("duplicate_files", stats.TotalDuplicates),
		logging.Float64("seconds", stats.ScanSeconds))
	return result, nil
}

func (s *Scanner) scanDirectories() []string {
	seen := make(map[string]struct{})
	var dirs []string
	for _, group := range [][]string{s.opts.Roots, s.opts.MovieRoots, s.opts.TVRoots} {
		for _, dir := range group {
			if dir == "" {
				continue
			}
			cleaned := filepath.Clean(dir)
			if _, ok := seen[cleaned]; ok {
				continue
			}
			seen[cleaned] = struct{}{}
			dirs = append(dirs, cleaned)
		}
	}
	return dirs
}

// discover walks every scan directory and classifies the files it finds.
// Unreadable directories are logged and skipped rather than failing the
// scan; only context cancellation aborts the walk.
func (s *Scanner) discover(ctx context.Context, dirs []string, logger *slog.Logger) ([]media.File, report.Stats, error) {
	var files []media.File
	var stats report.Stats

	for _, dir := range dirs {
		if _, err := os.Stat(dir); err != nil {
			logger.Warn("scan root unavailable", logging.String(logging.FieldPath, dir), logging.Error(err))
			continue
		}

		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if walkErr != nil {
				logger.Warn("unreadable path skipped", logging.String(logging.FieldPath, path), logging.Error(walkErr))
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}

			stats.TotalFiles++

			info, err := d.Info()
			if err != nil {
				logger.Warn("stat failed", logging.String(logging.FieldPath, path), logging.Error(err))
				return nil
			}

			f, ok := s.extractor.ExtractFile(path, info.Size())
			if !ok {
				return nil
			}
			switch f.Kind {
			case media.KindVideo:
				stats.VideoFiles++
			case media.KindAudio:
				stats.AudioFiles++
			}
			files = append(files, f)
			return nil
		})
		if err != nil {
			return nil, report.Stats{}, err
		}
	}

	return files, stats, nil
}

// groupByHash digests every media file through a bounded worker pool and
// groups exact copies. Results are assembled in discovery order so report
// output stays deterministic.
func (s *Scanner) groupByHash(ctx context.Context, files []media.File, logger *slog.Logger) (*report.GroupMap, error) {
	type hashResult struct {
		digest string
		err    error
	}

	workers := s.opts.HashWorkers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > defaultHashWorkerCap {
		workers = defaultHashWorkerCap
	}
	if workers > len(files) && len(files) > 0 {
		workers = len(files)
	}

	results := make([]hashResult, len(files))
	jobs := make(chan int)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for idx := range jobs {
				digest, err := fileutil.HashFile(files[idx].Path)
				results[idx] = hashResult{digest: digest, err: err}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for idx := range files {
			select {
			case <-ctx.Done():
				return
			case jobs <- idx:
			}
		}
	}()

	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	byDigest := report.NewGroupMap()
	for idx, res := range results {
		if res.err != nil {
			logger.Warn("hash failed", logging.String(logging.FieldPath, files[idx].Path), logging.Error(res.err))
			continue
		}
		members, _ := byDigest.Get(res.digest)
		byDigest.Set(res.digest, append(members, files[idx]))
	}

	groups := report.NewGroupMap()
	for _, digest := range byDigest.Keys() {
		members, _ := byDigest.Get(digest)
		if len(members) >= dupes.MinGroupSize {
			groups.Set(digest, members)
		}
	}
	return groups, nil
}

func (s *Scanner) persist(result *Result) error {
	var err error
	if result.HashReport != nil {
		result.ReportPath, err = result.HashReport.Save(s.opts.OutputDir)
	} else {
		result.ReportPath, err = result.Report.Save(s.opts.OutputDir)
	}
	if err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	result.SummaryPath, err = writeSummary(s.opts.OutputDir, result)
	if err != nil {
		return fmt.Errorf("save summary: %w", err)
	}
	return nil
}

func toGroupMap(groups []dupes.Group) *report.GroupMap {
	out := report.NewGroupMap()
	for _, group := range groups {
		out.Set(group.Key, group.Files)
	}
	return out
}
