package resolve

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"winnow/internal/distribution"
	"winnow/internal/fileutil"
	"winnow/internal/logging"
	"winnow/internal/media"
	"winnow/internal/recommend"
	"winnow/internal/report"
	"winnow/internal/roots"
)

// FileOps abstracts the filesystem mutations a session performs.
type FileOps interface {
	Exists(path string) bool
	Remove(path string) error
}

// Options configures a resolution session.
type Options struct {
	Report   *report.Report
	Ops      FileOps     // defaults to the real filesystem
	Input    InputSource // defaults to stdin
	Output   io.Writer   // defaults to stdout
	LockPath string      // empty disables locking
}

// Summary tallies what a session did.
type Summary struct {
	GroupsSeen     int
	GroupsResolved int
	GroupsSkipped  int
	Deleted        int
	DeleteFailed   int
	BytesReclaimed int64
	Cancelled      bool
}

// Session drives the interactive resolution loop over a loaded report.
type Session struct {
	report *report.Report
	ops    FileOps
	input  InputSource
	out    io.Writer
	logger *slog.Logger
	lock   string
}

// NewSession builds a session. Zero-value options fall back to the real
// filesystem, stdin, and stdout.
func NewSession(opts Options, logger *slog.Logger) *Session {
	s := &Session{
		report: opts.Report,
		ops:    opts.Ops,
		input:  opts.Input,
		out:    opts.Output,
		logger: logging.NewComponentLogger(logger, "resolve"),
		lock:   opts.LockPath,
	}
	if s.ops == nil {
		s.ops = fileutil.OS{}
	}
	if s.input == nil {
		s.input = NewLineReader(os.Stdin)
	}
	if s.out == nil {
		s.out = os.Stdout
	}
	return s
}

// Run walks every duplicate group and returns the session summary. The
// operator quitting, or the input stream ending, stops the walk without
// an error.
func (s *Session) Run(ctx context.Context) (*Summary, error) {
	summary := &Summary{}

	if s.lock != "" {
		release, err := fileutil.AcquireLock(s.lock)
		if err != nil {
			return nil, err
		}
		defer func() {
			if err := release(); err != nil {
				s.logger.Warn("failed to release resolve lock", logging.Error(err))
			}
		}()
	}

	groups := s.orderedGroups()
	if len(groups) == 0 {
		fmt.Fprintln(s.out, pterm.Info.Sprint("No duplicate groups to resolve."))
		return summary, nil
	}

	agg := distribution.Build(s.report.Duplicates.TVSeries)
	s.logger.Info("resolve session started",
		logging.String(logging.FieldScanID, s.report.ScanID),
		logging.Int("groups", len(groups)))

	for i, ref := range groups {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if s.resolveGroup(i+1, len(groups), ref, agg, summary) == outcomeQuit {
			summary.Cancelled = true
			fmt.Fprintln(s.out, dim("Session cancelled."))
			break
		}
	}

	s.printSummary(summary)
	s.logger.Info("resolve session finished",
		logging.Int("groups_seen", summary.GroupsSeen),
		logging.Int("resolved", summary.GroupsResolved),
		logging.Int("skipped", summary.GroupsSkipped),
		logging.Int("deleted", summary.Deleted),
		logging.Int("delete_failed", summary.DeleteFailed),
		logging.Int64("bytes_reclaimed", summary.BytesReclaimed),
		logging.Bool("cancelled", summary.Cancelled))
	return summary, nil
}

type groupRef struct {
	key   string
	files []media.File
	tv    bool
}

// orderedGroups walks TV first (by show, season, episode), then movies
// by key. Movie members are listed largest first so the keep index
// matches what the operator sees.
func (s *Session) orderedGroups() []groupRef {
	var refs []groupRef

	tv := s.report.Duplicates.TVSeries
	for _, key := range episodeOrder(tv) {
		files, _ := tv.Get(key)
		refs = append(refs, groupRef{key: key, files: files, tv: true})
	}

	movies := s.report.Duplicates.Movies
	movieKeys := movies.Keys()
	sort.Strings(movieKeys)
	for _, key := range movieKeys {
		files, _ := movies.Get(key)
		sorted := make([]media.File, len(files))
		copy(sorted, files)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Size > sorted[j].Size })
		refs = append(refs, groupRef{key: key, files: sorted})
	}
	return refs
}

func episodeOrder(tv *report.GroupMap) []string {
	if tv == nil {
		return nil
	}
	keys := tv.Keys()
	sort.SliceStable(keys, func(i, j int) bool {
		showI, seasonI, epI, okI := media.ParseEpisodeKey(keys[i])
		showJ, seasonJ, epJ, okJ := media.ParseEpisodeKey(keys[j])
		if okI != okJ {
			return okI
		}
		if !okI {
			return keys[i] < keys[j]
		}
		if showI != showJ {
			return showI < showJ
		}
		if seasonI != seasonJ {
			return seasonI < seasonJ
		}
		return epI < epJ
	})
	return keys
}

type outcome int

const (
	outcomeResolved outcome = iota
	outcomeSkipped
	outcomeQuit
)

func (s *Session) resolveGroup(position, total int, ref groupRef, agg *distribution.Aggregate, summary *Summary) outcome {
	summary.GroupsSeen++

	if len(ref.files) < 2 {
		s.warnf("group %q has fewer than two files; skipping", ref.key)
		summary.GroupsSkipped++
		return outcomeSkipped
	}

	for _, f := range ref.files {
		if s.ops.Exists(f.Path) {
			continue
		}
		s.warnf("%s is no longer on disk; skipping group (re-run winnow scan)", f.Path)
		s.logger.Warn("stale group skipped",
			logging.String(logging.FieldKey, ref.key),
			logging.String(logging.FieldPath, f.Path))
		summary.GroupsSkipped++
		return outcomeSkipped
	}

	rec := recommend.ForGroup(ref.key, ref.files, agg)
	s.logger.Debug("recommendation computed",
		logging.String(logging.FieldKey, ref.key),
		logging.String(logging.FieldRoot, roots.Resolve(ref.files[rec.Index].Path)),
		logging.Bool("conflict", rec.Conflict))

	s.printGroup(position, total, ref)
	s.printRecommendation(ref, rec)

	keep := s.promptKeep(len(ref.files))
	if keep.quit {
		return outcomeQuit
	}
	if keep.skip {
		summary.GroupsSkipped++
		return outcomeSkipped
	}

	summary.GroupsResolved++
	for i, f := range ref.files {
		if i == keep.index-1 {
			continue
		}
		confirmed, quit := s.confirmDelete(f)
		if quit {
			return outcomeQuit
		}
		if !confirmed {
			fmt.Fprintln(s.out, dim("  kept "+f.Path))
			continue
		}
		if err := s.ops.Remove(f.Path); err != nil {
			summary.DeleteFailed++
			fmt.Fprintln(s.out, pterm.Error.Sprintf("failed to delete %s: %v", f.Path, err))
			s.logger.Error("delete failed",
				logging.String(logging.FieldPath, f.Path),
				logging.Error(err))
			continue
		}
		summary.Deleted++
		summary.BytesReclaimed += f.Size
		fmt.Fprintln(s.out, pterm.Success.Sprint("deleted "+f.Path))
		s.logger.Info("deleted duplicate",
			logging.String(logging.FieldKey, ref.key),
			logging.String(logging.FieldPath, f.Path),
			logging.Int64("bytes", f.Size))
	}
	return outcomeResolved
}

type keepChoice struct {
	index int // 1-based
	skip  bool
	quit  bool
}

// promptKeep loops until the operator answers with a valid keep index,
// skip, or quit. A closed input stream counts as quit.
func (s *Session) promptKeep(count int) keepChoice {
	label := "[1/2/s/q]"
	if count > 2 {
		label = fmt.Sprintf("[1-%d/s/q]", count)
	}
	for {
		fmt.Fprint(s.out, pterm.FgWhite.Sprint("Keep which file? ")+dim(label+": "))
		line, err := s.input.NextLine()
		if err != nil {
			fmt.Fprintln(s.out)
			return keepChoice{quit: true}
		}
		switch strings.ToLower(line) {
		case "s":
			return keepChoice{skip: true}
		case "q":
			return keepChoice{quit: true}
		}
		if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= count {
			return keepChoice{index: n}
		}
		s.warnf("enter a number between 1 and %d, s to skip, or q to quit", count)
	}
}

// confirmDelete asks before each deletion; anything but yes declines. A
// closed input stream quits the session.
func (s *Session) confirmDelete(f media.File) (confirmed, quit bool) {
	fmt.Fprint(s.out, pterm.FgWhite.Sprintf("Delete %s? ", f.Path)+dim("[y/N]: "))
	line, err := s.input.NextLine()
	if err != nil {
		fmt.Fprintln(s.out)
		return false, true
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, false
	default:
		return false, false
	}
}

func (s *Session) printGroup(position, total int, ref groupRef) {
	heading := ref.key
	if ref.tv {
		if show, season, episode, ok := media.ParseEpisodeKey(ref.key); ok {
			heading = fmt.Sprintf("%s S%02dE%02d", distribution.DisplayShow(show), season, episode)
		}
	}

	fmt.Fprintln(s.out)
	fmt.Fprintf(s.out, "%s %s %s\n",
		dim(fmt.Sprintf("[%d/%d]", position, total)),
		subHeader(heading),
		dim(fmt.Sprintf("(%d copies)", len(ref.files))))
	for i, f := range ref.files {
		fmt.Fprintf(s.out, "  %s %s %s\n",
			accent(fmt.Sprintf("[%d]", i+1)),
			stylePath(f.Path),
			dim("("+humanize.Bytes(uint64(f.Size))+")"))
	}
}

func (s *Session) printRecommendation(ref groupRef, rec recommend.Recommendation) {
	if len(ref.files) != 2 {
		fmt.Fprintln(s.out, dim(rec.Reason))
		return
	}
	line := fmt.Sprintf("Recommended: keep [%d] (%s)", rec.Index+1, rec.Reason)
	if rec.Conflict {
		fmt.Fprintln(s.out, pterm.Warning.Sprint(line))
		return
	}
	fmt.Fprintln(s.out, okText(line))
}

func (s *Session) printSummary(sum *Summary) {
	content := fmt.Sprintf("%s %d   %s %d   %s %d   %s %d   %s %s",
		okText("Resolved:"), sum.GroupsResolved,
		dim("Skipped:"), sum.GroupsSkipped,
		okText("Deleted:"), sum.Deleted,
		errText("Failed:"), sum.DeleteFailed,
		pterm.FgWhite.Sprint("Reclaimed:"), humanize.Bytes(uint64(sum.BytesReclaimed)))
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, pterm.DefaultBox.WithTitle("Session summary").Sprint(content))
}

func (s *Session) warnf(format string, args ...any) {
	fmt.Fprintln(s.out, pterm.Warning.Sprintf(format, args...))
}
