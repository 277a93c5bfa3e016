// Package distribution aggregates where duplicated TV episodes live.
//
// The aggregate is built only from the report's TV duplicate groups, not
// from a full library walk. Counts therefore mean "episodes with
// duplicates on this root", which is exactly what the recommendation
// cascade compares; a root that never duplicates anything never appears.
package distribution

import (
	"sort"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"winnow/internal/media"
	"winnow/internal/report"
	"winnow/internal/roots"
)

// Aggregate is show -> storage root -> season -> episode group keys. A key
// is appended once per member file, so two copies on one root count twice
// for that root.
type Aggregate struct {
	shows map[string]map[string]map[string][]string
}

// Build walks the TV duplicate groups and files every member under its
// show, storage root, and season. Keys that do not parse as episode keys
// are skipped silently.
func Build(tv *report.GroupMap) *Aggregate {
	agg := &Aggregate{shows: make(map[string]map[string]map[string][]string)}
	if tv == nil {
		return agg
	}
	for _, key := range tv.Keys() {
		show, season, _, ok := media.ParseEpisodeKey(key)
		if !ok {
			continue
		}
		files, _ := tv.Get(key)
		seasonKey := strconv.Itoa(season)
		for _, f := range files {
			root := roots.Resolve(f.Path)
			byRoot, ok := agg.shows[show]
			if !ok {
				byRoot = make(map[string]map[string][]string)
				agg.shows[show] = byRoot
			}
			bySeason, ok := byRoot[root]
			if !ok {
				bySeason = make(map[string][]string)
				byRoot[root] = bySeason
			}
			bySeason[seasonKey] = append(bySeason[seasonKey], key)
		}
	}
	return agg
}

// Shows returns all show names in lexicographic order.
func (a *Aggregate) Shows() []string {
	out := make([]string, 0, len(a.shows))
	for show := range a.shows {
		out = append(out, show)
	}
	sort.Strings(out)
	return out
}

// Roots returns the storage roots holding duplicates of a show,
// lexicographically ordered.
func (a *Aggregate) Roots(show string) []string {
	byRoot := a.shows[show]
	out := make([]string, 0, len(byRoot))
	for root := range byRoot {
		out = append(out, root)
	}
	sort.Strings(out)
	return out
}

// Seasons returns a show's seasons on one root in numeric order. Season
// keys are decimal strings.
func (a *Aggregate) Seasons(show, root string) []string {
	bySeason := a.shows[show][root]
	out := make([]string, 0, len(bySeason))
	for season := range bySeason {
		out = append(out, season)
	}
	sort.Slice(out, func(i, j int) bool {
		a, _ := strconv.Atoi(out[i])
		b, _ := strconv.Atoi(out[j])
		return a < b
	})
	return out
}

// SeasonCount reports how many duplicated episodes of one season a root
// holds. The season is its decimal string form.
func (a *Aggregate) SeasonCount(show, root, season string) int {
	return len(a.shows[show][root][season])
}

// TotalCount reports how many duplicated episodes of a show a root holds
// across all seasons.
func (a *Aggregate) TotalCount(show, root string) int {
	total := 0
	for _, keys := range a.shows[show][root] {
		total += len(keys)
	}
	return total
}

// Empty reports whether no TV duplicates were aggregated.
func (a *Aggregate) Empty() bool { return len(a.shows) == 0 }

// SeasonTally pairs a season with its episode count on one root.
type SeasonTally struct {
	Season   string
	Episodes int
}

// Row is one show/root line of the distribution overview.
type Row struct {
	Show    string
	Root    string
	Seasons []SeasonTally
	Total   int
}

var showCaser = cases.Title(language.Und)

// DisplayShow renders a normalized show key for humans.
func DisplayShow(show string) string {
	return showCaser.String(show)
}

// Overview flattens the aggregate into display rows: shows
// lexicographically, roots lexicographically within a show, seasons in
// numeric order within a root.
func (a *Aggregate) Overview() []Row {
	var out []Row
	for _, show := range a.Shows() {
		for _, root := range a.Roots(show) {
			row := Row{Show: DisplayShow(show), Root: root, Total: a.TotalCount(show, root)}
			for _, season := range a.Seasons(show, root) {
				row.Seasons = append(row.Seasons, SeasonTally{Season: season, Episodes: a.SeasonCount(show, root, season)})
			}
			out = append(out, row)
		}
	}
	return out
}
