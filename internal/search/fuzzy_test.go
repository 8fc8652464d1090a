package search

import "testing"

func TestBoundedDistance(t *testing.T) {
	tests := []struct {
		s1       string
		s2       string
		expected int
	}{
		{"", "", 0},
		{"a", "a", 0},
		{"a", "b", 1},
		{"abc", "abc", 0},
		{"abc", "abd", 1},
		{"abc", "adc", 1},
		{"abc", "def", 3},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"navigate", "navgate", 1},      // missing 'i'
		{"screenshot", "screnshoot", 2}, // two chars different
		{"josé", "jose", 1},             // runes, not bytes
	}

	for _, tt := range tests {
		result, ok := boundedDistance(tt.s1, tt.s2, 10)
		if !ok || result != tt.expected {
			t.Errorf("boundedDistance(%q, %q, 10) = %d, %v, expected %d", tt.s1, tt.s2, result, ok, tt.expected)
		}
	}
}

func TestBoundedDistanceExceedsLimit(t *testing.T) {
	tests := []struct {
		s1    string
		s2    string
		limit int
	}{
		{"kitten", "sitting", 2},
		{"smithson", "smith", 2}, // length difference alone exceeds
		{"abc", "def", 1},
		{"ab", "ba", 0},
		{"abcdef", "uvwxyz", 2},
	}

	for _, tt := range tests {
		if result, ok := boundedDistance(tt.s1, tt.s2, tt.limit); ok {
			t.Errorf("boundedDistance(%q, %q, %d) = %d, expected limit to be exceeded", tt.s1, tt.s2, tt.limit, result)
		}
	}
}

func TestAllowedDistance(t *testing.T) {
	tests := []struct {
		term     string
		expected int
	}{
		{"a", 0},
		{"ab", 0},
		{"abc", 1},
		{"abcde", 1},
		{"abcdef", 2},
		{"smithson", 2},
		{"zoë", 1}, // counted in runes
	}

	for _, tt := range tests {
		if result := AllowedDistance(tt.term); result != tt.expected {
			t.Errorf("AllowedDistance(%q) = %d, expected %d", tt.term, result, tt.expected)
		}
	}
}

func TestAllowedDistanceIsMonotonic(t *testing.T) {
	previous := 0
	term := ""
	for i := 0; i < 20; i++ {
		term += "x"
		allowed := AllowedDistance(term)
		if allowed < previous {
			t.Fatalf("AllowedDistance decreased from %d to %d at length %d", previous, allowed, len(term))
		}
		previous = allowed
	}
}

func TestFuzzyScorerScore(t *testing.T) {
	tests := []struct {
		term     string
		field    string
		expected Relevance
		reason   string
	}{
		{"abc", "abcd", Scored(FuzzyCloseMatch), "3-char term, distance 1"},
		{"ab", "ab", Scored(ExactMatch), "direct exact match"},
		{"jon", "john", Scored(FuzzyCloseMatch), "1 char missing"},
		{"smyth", "smith", Scored(FuzzyCloseMatch), "1 char different"},
		{"navgate", "navigate", Scored(FuzzyCloseMatch), "1 char missing, long term"},
		{"screnshoot", "screenshot", Scored(FuzzySlightMatch), "2 chars different"},
		{"johnsen", "jonson", Scored(FuzzySlightMatch), "distance 2 within bound"},

		// Short terms must match exactly
		{"ab", "abc", NoMatch, "2-char term allows no edits"},
		{"jo", "john", NoMatch, "2-char term, not exact"},

		// Too different
		{"smithson", "smith", NoMatch, "distance 3 exceeds 2"},
		{"kitten", "sitting", NoMatch, "distance 3 exceeds 2"},
		{"abc", "xyz", NoMatch, "no common chars"},

		// Blank input
		{"", "smith", NoMatch, "blank term"},
		{"smith", "", NoMatch, "blank field"},
		{"smith", "   ", NoMatch, "whitespace field"},
	}

	var scorer FuzzyScorer
	for _, tt := range tests {
		result := scorer.Score(tt.term, tt.field)
		if result != tt.expected {
			t.Errorf("Score(%q, %q) = %v, expected %v (%s)",
				tt.term, tt.field, result, tt.expected, tt.reason)
		}
	}
}
