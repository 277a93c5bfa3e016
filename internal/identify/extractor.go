package identify

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"winnow/internal/media"
	"winnow/internal/textutil"
)

var (
	episodeMarker = regexp.MustCompile(`(?i)(?:^|[/._ -])s(\d{1,4})\s*e(\d{1,4})`)
	movieYear     = regexp.MustCompile(`\(([12]\d{3})\)`)
	seasonDir     = regexp.MustCompile(`(?i)^(?:season[ ._-]?\d{1,4}|s\d{1,4})$`)
)

// Options configures an Extractor. Typed roots switch show and movie
// naming to the library layout under that root; everything else falls
// back to folder conventions.
type Options struct {
	MovieRoots []string
	TVRoots    []string
}

// Extractor derives identities from paths. The zero value works with pure
// folder-convention extraction.
type Extractor struct {
	movieRoots []string
	tvRoots    []string
}

func New(opts Options) *Extractor {
	return &Extractor{
		movieRoots: cleanRoots(opts.MovieRoots),
		tvRoots:    cleanRoots(opts.TVRoots),
	}
}

func cleanRoots(roots []string) []string {
	var out []string
	for _, root := range roots {
		root = strings.TrimSpace(root)
		if root == "" {
			continue
		}
		out = append(out, filepath.Clean(root))
	}
	return out
}

// ExtractFile stats nothing: it classifies the path by extension and, for
// video files, attaches the extracted identity. ok is false for paths that
// are not media files at all.
func (e *Extractor) ExtractFile(path string, size int64) (media.File, bool) {
	f, ok := media.NewFile(path, size)
	if !ok {
		return media.File{}, false
	}
	if f.Kind == media.KindVideo {
		f.Identity = e.Extract(path)
	}
	return f, true
}

// Extract parses a path into an identity. Episode markers win over movie
// years; malformed input degrades to Unknown.
func (e *Extractor) Extract(path string) media.Identity {
	if strings.TrimSpace(path) == "" {
		return media.Unknown{}
	}
	slashed := filepath.ToSlash(path)

	if m := episodeMarker.FindStringSubmatch(slashed); m != nil {
		season, err := strconv.Atoi(m[1])
		if err != nil {
			return media.Unknown{}
		}
		episode, err := strconv.Atoi(m[2])
		if err != nil {
			return media.Unknown{}
		}
		show := e.showName(path)
		if show == "" {
			return media.Unknown{}
		}
		return media.Episode{Show: show, Season: season, Episode: episode}
	}

	return e.extractMovie(path)
}

// showName derives the show for an episode path, most specific source first.
func (e *Extractor) showName(path string) string {
	if show := e.showUnderTVRoot(path); show != "" {
		return show
	}

	dir := filepath.Dir(path)
	segments := strings.Split(filepath.ToSlash(dir), "/")
	for i := len(segments) - 1; i > 0; i-- {
		if seasonDir.MatchString(segments[i]) {
			if show := cleanShowSegment(segments[i-1]); show != "" {
				return show
			}
		}
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if loc := episodeMarker.FindStringIndex(base); loc != nil {
		if show := cleanShowSegment(base[:loc[0]]); show != "" {
			return show
		}
	}

	if len(segments) > 0 {
		return cleanShowSegment(segments[len(segments)-1])
	}
	return ""
}

// showUnderTVRoot returns the first directory segment below a configured TV
// root, or "" when the path is outside every root or sits directly in one.
func (e *Extractor) showUnderTVRoot(path string) string {
	for _, root := range e.tvRoots {
		rel, err := filepath.Rel(root, path)
		if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
			continue
		}
		first, rest, _ := strings.Cut(filepath.ToSlash(rel), "/")
		if rest == "" {
			// file sits directly in the root; no show directory to name
			continue
		}
		if show := cleanShowSegment(first); show != "" {
			return show
		}
	}
	return ""
}

func (e *Extractor) extractMovie(path string) media.Identity {
	if id, ok := e.movieUnderRoot(path); ok {
		return id
	}
	base := filepath.Base(path)
	if id, ok := movieFromName(strings.TrimSuffix(base, filepath.Ext(base))); ok {
		return id
	}
	// Folder-per-movie layouts put the year on the directory instead.
	if parent := filepath.Base(filepath.Dir(path)); parent != "." && parent != string(filepath.Separator) {
		if id, ok := movieFromName(parent); ok {
			return id
		}
	}
	return media.Unknown{}
}

// movieUnderRoot names the movie after the first directory segment below a
// configured movie root, so nested layouts (CD1, extras, samples) still
// resolve to the containing movie folder. Roots are tried in configuration
// order; first match wins.
func (e *Extractor) movieUnderRoot(path string) (media.Identity, bool) {
	for _, root := range e.movieRoots {
		rel, err := filepath.Rel(root, path)
		if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
			continue
		}
		first, rest, _ := strings.Cut(filepath.ToSlash(rel), "/")
		if rest == "" {
			// file sits directly in the root; the filename rules apply
			continue
		}
		if id, ok := movieFromName(first); ok {
			return id, true
		}
	}
	return media.Unknown{}, false
}

func movieFromName(name string) (media.Identity, bool) {
	loc := movieYear.FindStringSubmatchIndex(name)
	if loc == nil {
		return media.Unknown{}, false
	}
	title := cleanTitle(name[:loc[0]])
	if title == "" {
		return media.Unknown{}, false
	}
	return media.Movie{Title: title, Year: name[loc[2]:loc[3]]}, true
}

var bracketStripper = strings.NewReplacer("[", " ", "]", " ", "{", " ", "}", " ", "(", " ", ")", " ")

// cleanTitle strips bracket characters and collapses whitespace; casing is
// preserved for display, normalization happens at key time.
func cleanTitle(raw string) string {
	return textutil.CollapseSpaces(bracketStripper.Replace(raw))
}

// cleanShowSegment converts a path segment or filename prefix to a display
// show name: separator punctuation becomes spaces, dangling dashes go.
func cleanShowSegment(segment string) string {
	segment = strings.NewReplacer(".", " ", "_", " ").Replace(segment)
	segment = textutil.CollapseSpaces(segment)
	return strings.Trim(segment, " -")
}
