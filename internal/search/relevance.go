package search

import (
	"cmp"
	"strconv"
)

// Match weights. The ordering ExactMatch > PartialMatch > FuzzyCloseMatch >
// FuzzySlightMatch > 0 > Constant must hold whenever these are retuned.
const (
	ExactMatch       = 10 // Field equals the term
	PartialMatch     = 5  // Field contains the term
	FuzzyCloseMatch  = 3  // Edit distance 1
	FuzzySlightMatch = 2  // Edit distance 2, long terms only
	Constant         = -1 // Returned without filtering (no query to filter by)
)

// Relevance is an optional score: either an integer score or NoMatch.
// The zero value is NoMatch, so a score of 0 is never confused with "excluded".
type Relevance struct {
	score   int
	matched bool
}

var (
	// NoMatch excludes an item from filtered results.
	NoMatch = Relevance{}

	// Unfiltered is the relevance of items returned because there was nothing to filter by.
	Unfiltered = Scored(Constant)
)

// Scored returns a matched relevance with the given score.
func Scored(score int) Relevance {
	return Relevance{score: score, matched: true}
}

// Value returns the score and whether the relevance represents a match.
func (r Relevance) Value() (int, bool) {
	return r.score, r.matched
}

// Matched reports whether r is a score rather than NoMatch.
func (r Relevance) Matched() bool {
	return r.matched
}

// Add sums two relevances. NoMatch is the identity.
func (r Relevance) Add(other Relevance) Relevance {
	switch {
	case !other.matched:
		return r
	case !r.matched:
		return other
	}
	return Scored(r.score + other.score)
}

// Compare orders relevances by score. NoMatch sorts below every score.
func (r Relevance) Compare(other Relevance) int {
	if r.matched != other.matched {
		if r.matched {
			return 1
		}
		return -1
	}
	return cmp.Compare(r.score, other.score)
}

func (r Relevance) String() string {
	if !r.matched {
		return "none"
	}
	return strconv.Itoa(r.score)
}

// MarshalJSON encodes NoMatch as null and scores as integers.
func (r Relevance) MarshalJSON() ([]byte, error) {
	if !r.matched {
		return []byte("null"), nil
	}
	return strconv.AppendInt(nil, int64(r.score), 10), nil
}
