package search

import "strings"

// MatchStrategy scores a single candidate item against a query.
// Implementations decide how to score; RankedSearcher decides how to filter and rank.
type MatchStrategy[Q, T any] interface {
	Evaluate(query Q, item T) Result[T]
}

// StrategyFunc adapts a plain function to MatchStrategy.
type StrategyFunc[Q, T any] func(query Q, item T) Result[T]

// Evaluate calls f(query, item).
func (f StrategyFunc[Q, T]) Evaluate(query Q, item T) Result[T] {
	return f(query, item)
}

// QueryFilter is implemented by strategies that can tell, before evaluating
// any item, that a present query filters nothing. RankedSearcher treats such
// a query exactly like an absent one.
type QueryFilter[Q any] interface {
	Filters(query Q) bool
}

// Searchable is implemented by items that expose an ordered list of text fields to search.
type Searchable interface {
	SearchFields() []string
}

// NameAndIdentifierStrategy matches free-text queries against the searchable
// fields of an item (typically an identifier and two name fields).
//
// Every query term is scored against every field: exact equality scores
// ExactMatch, containment scores PartialMatch, anything else is left to the
// FuzzyScorer. Pair scores are summed, so a query matching both first and last
// name ranks above one matching only one of them.
type NameAndIdentifierStrategy[T Searchable] struct {
	scorer FuzzyScorer
}

// NewNameAndIdentifierStrategy creates a strategy over items of type T.
func NewNameAndIdentifierStrategy[T Searchable]() NameAndIdentifierStrategy[T] {
	return NameAndIdentifierStrategy[T]{}
}

// Evaluate scores item against query.
// A query without terms never excludes an item; it scores Unfiltered.
func (s NameAndIdentifierStrategy[T]) Evaluate(query string, item T) Result[T] {
	terms := Tokenize(query)
	if len(terms) == 0 {
		return Result[T]{Item: item, Relevance: Unfiltered}
	}

	fields := normalizeFields(item.SearchFields())

	relevance := NoMatch
	for _, term := range terms {
		for _, field := range fields {
			relevance = relevance.Add(s.scorePair(term, field))
		}
	}

	return Result[T]{Item: item, Relevance: relevance}
}

// Filters reports whether query yields any terms.
func (s NameAndIdentifierStrategy[T]) Filters(query string) bool {
	return len(Tokenize(query)) > 0
}

func (s NameAndIdentifierStrategy[T]) scorePair(term, field string) Relevance {
	switch {
	case field == term:
		return Scored(ExactMatch)
	case strings.Contains(field, term):
		return Scored(PartialMatch)
	default:
		return s.scorer.Score(term, field)
	}
}

func normalizeFields(fields []string) []string {
	normalized := make([]string, len(fields))
	for i, field := range fields {
		normalized[i] = strings.ToLower(strings.TrimSpace(field))
	}
	return normalized
}
