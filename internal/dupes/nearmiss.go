package dupes

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"winnow/internal/media"
)

// nearMissDistance is the Levenshtein budget for calling two titles a
// probable match. Two edits covers the common typo and punctuation drift.
const nearMissDistance = 2

// NearMiss flags two movie keys that share a year and carry suspiciously
// similar titles. Advisory only: grouping never merges them.
type NearMiss struct {
	KeyA string
	KeyB string
}

// NearMisses scans movie keys for same-year titles that differ but sit
// within a small edit distance of each other (or differ only by a leading
// article). Input order is preserved in the output pairs.
func NearMisses(keys []string) []NearMiss {
	byYear := make(map[string][]string)
	var years []string
	for _, key := range keys {
		title, year, ok := media.ParseMovieKey(key)
		if !ok {
			continue
		}
		if _, seen := byYear[year]; !seen {
			years = append(years, year)
		}
		byYear[year] = append(byYear[year], title)
	}

	var out []NearMiss
	for _, year := range years {
		titles := byYear[year]
		for i := 0; i < len(titles); i++ {
			for j := i + 1; j < len(titles); j++ {
				if titlesNearlyEqual(titles[i], titles[j]) {
					out = append(out, NearMiss{
						KeyA: titles[i] + " (" + year + ")",
						KeyB: titles[j] + " (" + year + ")",
					})
				}
			}
		}
	}
	return out
}

func titlesNearlyEqual(a, b string) bool {
	if a == b {
		return false
	}
	if stripArticle(a) == stripArticle(b) {
		return true
	}
	return fuzzy.LevenshteinDistance(a, b) <= nearMissDistance
}

func stripArticle(title string) string {
	for _, article := range []string{"the ", "a ", "an "} {
		if strings.HasPrefix(title, article) {
			return title[len(article):]
		}
	}
	return title
}
