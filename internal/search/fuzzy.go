package search

import (
	"strings"
	"unicode/utf8"
)

// FuzzyScorer scores one query term against one field value by edit distance.
// The zero value is ready to use.
type FuzzyScorer struct{}

// Score returns the relevance of field for term, or NoMatch when either is
// blank or the edit distance exceeds AllowedDistance(term).
func (FuzzyScorer) Score(term, field string) Relevance {
	if strings.TrimSpace(term) == "" || strings.TrimSpace(field) == "" {
		return NoMatch
	}

	distance, ok := boundedDistance(term, field, AllowedDistance(term))
	if !ok {
		return NoMatch
	}

	switch distance {
	case 0:
		return Scored(ExactMatch)
	case 1:
		return Scored(FuzzyCloseMatch)
	default:
		return Scored(FuzzySlightMatch)
	}
}

// AllowedDistance returns the edit distance tolerated for term.
// Shorter terms get stricter matching: 1-2 characters must match exactly.
func AllowedDistance(term string) int {
	switch n := utf8.RuneCountInString(term); {
	case n < 3:
		return 0
	case n < 6:
		return 1
	default:
		return 2
	}
}

// boundedDistance calculates the Levenshtein distance between s1 and s2.
// It gives up as soon as the distance is known to exceed limit, in which case
// ok is false.
func boundedDistance(s1, s2 string, limit int) (distance int, ok bool) {
	r1, r2 := []rune(s1), []rune(s2)
	len1, len2 := len(r1), len(r2)

	if abs(len1-len2) > limit {
		return 0, false
	}

	// Single-row dynamic programming
	prev := make([]int, len2+1)
	curr := make([]int, len2+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len1; i++ {
		curr[0] = i
		rowMin := curr[0]
		for j := 1; j <= len2; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}

			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
			rowMin = min(rowMin, curr[j])
		}

		// Every path to the final cell passes through this row.
		if rowMin > limit {
			return 0, false
		}
		prev, curr = curr, prev
	}

	if prev[len2] > limit {
		return 0, false
	}
	return prev[len2], true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
