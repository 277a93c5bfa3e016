// Package recommend picks which copy of a duplicate group to keep.
//
// For a pair of episode copies the cascade compares the two storage
// roots: first by how much of that season each root holds, then by how
// much of the whole series, and finally by file size with ties going to
// the second copy. Movie pairs skip straight to the size rule. Groups
// with more than two copies are left to the operator.
package recommend

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"winnow/internal/distribution"
	"winnow/internal/media"
	"winnow/internal/roots"
)

// Recommendation names the file to keep by its index in the group.
type Recommendation struct {
	Index    int
	Reason   string
	Conflict bool
}

// ForGroup recommends one file of a duplicate group to keep. The index
// is into files as given. Conflict is set when the distribution cascade
// prefers a root whose copy is strictly smaller than the other.
func ForGroup(key string, files []media.File, agg *distribution.Aggregate) Recommendation {
	if len(files) != 2 {
		return Recommendation{Index: 0, Reason: fmt.Sprintf("no recommendation for a group of %d files", len(files))}
	}

	rootA := roots.Resolve(files[0].Path)
	rootB := roots.Resolve(files[1].Path)
	if rootA == rootB {
		return Recommendation{Index: 0, Reason: fmt.Sprintf("both copies live under %s", rootA)}
	}

	if show, season, _, ok := media.ParseEpisodeKey(key); ok && agg != nil {
		seasonKey := fmt.Sprintf("%d", season)
		countA := agg.SeasonCount(show, rootA, seasonKey)
		countB := agg.SeasonCount(show, rootB, seasonKey)
		if countA != countB {
			reason := func(root string, win, lose int) string {
				return fmt.Sprintf("%s holds more of season %d (%d vs %d episodes)", root, season, win, lose)
			}
			if countA > countB {
				return withConflict(0, reason(rootA, countA, countB), files)
			}
			return withConflict(1, reason(rootB, countB, countA), files)
		}

		totalA := agg.TotalCount(show, rootA)
		totalB := agg.TotalCount(show, rootB)
		if totalA != totalB {
			reason := func(root string, win, lose int) string {
				return fmt.Sprintf("%s holds more of the series (%d vs %d episodes)", root, win, lose)
			}
			if totalA > totalB {
				return withConflict(0, reason(rootA, totalA, totalB), files)
			}
			return withConflict(1, reason(rootB, totalB, totalA), files)
		}
	}

	return bySize(files)
}

// bySize keeps the larger copy, with ties going to the second one.
func bySize(files []media.File) Recommendation {
	index := 1
	if files[0].Size > files[1].Size {
		index = 0
	}
	return Recommendation{
		Index: index,
		Reason: fmt.Sprintf("larger file (%s vs %s)",
			humanize.Bytes(uint64(files[index].Size)),
			humanize.Bytes(uint64(files[1-index].Size))),
	}
}

// withConflict flags a distribution pick whose copy is strictly smaller
// than the one it beat.
func withConflict(index int, reason string, files []media.File) Recommendation {
	rec := Recommendation{Index: index, Reason: reason}
	if files[index].Size < files[1-index].Size {
		rec.Conflict = true
		rec.Reason = fmt.Sprintf("%s; WARNING: preferred copy is smaller (%s vs %s)",
			reason,
			humanize.Bytes(uint64(files[index].Size)),
			humanize.Bytes(uint64(files[1-index].Size)))
	}
	return rec
}
