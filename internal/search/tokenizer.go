package search

import "strings"

// separators are treated as whitespace, so "Smith, Jim" and "Smith-Jim" split the same way.
var separators = strings.NewReplacer(",", " ", ".", " ", "-", " ")

// Tokenize normalizes free text into lowercase terms.
// Blank or punctuation-only input yields no terms.
func Tokenize(s string) []string {
	s = separators.Replace(strings.TrimSpace(s))
	return strings.Fields(strings.ToLower(s))
}
