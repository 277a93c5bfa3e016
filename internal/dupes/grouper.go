package dupes

import "winnow/internal/media"

// MinGroupSize is the smallest member count that makes a group a duplicate
// group. A single copy of something is not a duplicate.
const MinGroupSize = 2

// Group is one duplicate group: the rendered identity key and its members
// in discovery order.
type Group struct {
	Key   string
	Files []media.File
}

// Grouper accumulates identified files. The zero value is not usable; call
// NewGrouper.
type Grouper struct {
	movieKeys []string
	movies    map[string][]media.File
	tvKeys    []string
	tv        map[string][]media.File
}

func NewGrouper() *Grouper {
	return &Grouper{
		movies: make(map[string][]media.File),
		tv:     make(map[string][]media.File),
	}
}

// Add files a media file under its identity key. Unknown (or missing)
// identities are ignored; they cannot form duplicate groups.
func (g *Grouper) Add(f media.File) {
	switch f.Identity.(type) {
	case media.Movie:
		key := f.Identity.Key()
		if _, seen := g.movies[key]; !seen {
			g.movieKeys = append(g.movieKeys, key)
		}
		g.movies[key] = append(g.movies[key], f)
	case media.Episode:
		key := f.Identity.Key()
		if _, seen := g.tv[key]; !seen {
			g.tvKeys = append(g.tvKeys, key)
		}
		g.tv[key] = append(g.tv[key], f)
	}
}

// Movies returns movie duplicate groups in first-seen key order.
func (g *Grouper) Movies() []Group {
	return collect(g.movieKeys, g.movies)
}

// TV returns episode duplicate groups in first-seen key order.
func (g *Grouper) TV() []Group {
	return collect(g.tvKeys, g.tv)
}

// MovieKeys returns every movie key seen, including singletons. The
// near-miss advisory wants singletons too: a title split across two
// spellings often leaves one copy under each.
func (g *Grouper) MovieKeys() []string {
	out := make([]string, len(g.movieKeys))
	copy(out, g.movieKeys)
	return out
}

func collect(keys []string, byKey map[string][]media.File) []Group {
	var out []Group
	for _, key := range keys {
		files := byKey[key]
		if len(files) < MinGroupSize {
			continue
		}
		members := make([]media.File, len(files))
		copy(members, files)
		out = append(out, Group{Key: key, Files: members})
	}
	return out
}

// Counts summarizes duplicate groups for scan statistics.
type Counts struct {
	MovieGroups    int
	TVGroups       int
	DuplicateFiles int
}

// Counts tallies qualifying groups; each group of n files contributes n to
// DuplicateFiles.
func (g *Grouper) Counts() Counts {
	var c Counts
	for _, key := range g.movieKeys {
		if n := len(g.movies[key]); n >= MinGroupSize {
			c.MovieGroups++
			c.DuplicateFiles += n
		}
	}
	for _, key := range g.tvKeys {
		if n := len(g.tv[key]); n >= MinGroupSize {
			c.TVGroups++
			c.DuplicateFiles += n
		}
	}
	return c
}
