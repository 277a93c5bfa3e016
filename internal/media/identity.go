package media

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"winnow/internal/textutil"
)

// Identity is the parsed meaning of a media path. Exactly three variants
// exist: Movie, Episode, and Unknown. Group keys come from Key; Unknown
// has no key and is never grouped.
type Identity interface {
	Key() string
	isIdentity()
}

// Movie identifies a film by title and release year. The year stays a
// four-digit string exactly as extracted.
type Movie struct {
	Title string
	Year  string
}

func (m Movie) Key() string {
	return fmt.Sprintf("%s (%s)", textutil.NormalizeKey(m.Title), m.Year)
}

func (Movie) isIdentity() {}

// Episode identifies a single TV episode.
type Episode struct {
	Show    string
	Season  int
	Episode int
}

// Key renders as "<show> SxxEyy". Season and episode numbers are
// zero-padded to at least two digits; larger numbers keep natural width.
func (e Episode) Key() string {
	return fmt.Sprintf("%s S%02dE%02d", textutil.NormalizeKey(e.Show), e.Season, e.Episode)
}

func (Episode) isIdentity() {}

// Unknown marks a path that matched no extraction rule.
type Unknown struct{}

func (Unknown) Key() string { return "" }

func (Unknown) isIdentity() {}

var (
	episodeKeyToken = regexp.MustCompile(`^[Ss](\d{1,4})[Ee](\d{1,4})$`)
	movieKeySuffix  = regexp.MustCompile(`^(.+) \((\d{4})\)$`)
)

// ParseMovieKey splits a rendered movie key into title and year.
func ParseMovieKey(key string) (title, year string, ok bool) {
	m := movieKeySuffix.FindStringSubmatch(key)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// ParseEpisodeKey splits a rendered episode key back into show, season, and
// episode. The last whitespace-delimited token must be an SxxEyy marker;
// anything else reports ok == false, never an error.
func ParseEpisodeKey(key string) (show string, season, episode int, ok bool) {
	fields := strings.Fields(key)
	if len(fields) < 2 {
		return "", 0, 0, false
	}
	m := episodeKeyToken.FindStringSubmatch(fields[len(fields)-1])
	if m == nil {
		return "", 0, 0, false
	}
	season, err := strconv.Atoi(m[1])
	if err != nil {
		return "", 0, 0, false
	}
	episode, err = strconv.Atoi(m[2])
	if err != nil {
		return "", 0, 0, false
	}
	return strings.Join(fields[:len(fields)-1], " "), season, episode, true
}
