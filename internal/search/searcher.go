package search

import (
	"log/slog"
	"slices"
)

// RankedSearcher filters and ranks items with a MatchStrategy.
// It holds no per-search state and is safe for concurrent use.
type RankedSearcher[Q, T any] struct {
	strategy MatchStrategy[Q, T]
	compare  func(a, b T) int
	logger   *slog.Logger
}

type options struct {
	logger *slog.Logger
}

// Option configures a RankedSearcher.
type Option func(*options)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewRankedSearcher creates a searcher that scores with strategy and breaks
// relevance ties with compare, the items' natural total order.
func NewRankedSearcher[Q, T any](strategy MatchStrategy[Q, T], compare func(a, b T) int, opts ...Option) *RankedSearcher[Q, T] {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	return &RankedSearcher[Q, T]{
		strategy: strategy,
		compare:  compare,
		logger:   o.logger,
	}
}

// Some returns a present query for use with Search and SearchWithRelevance.
func Some[Q any](query Q) *Q {
	return &query
}

// SearchWithRelevance returns the items matching query with their relevance.
//
// A nil query returns every item at Unfiltered relevance in input order.
// Otherwise items the strategy scores NoMatch are dropped and the rest are
// ordered by relevance descending, then by natural order ascending.
func (s *RankedSearcher[Q, T]) SearchWithRelevance(query *Q, items []T) Results[T] {
	if query == nil || !s.filters(*query) {
		results := make(Results[T], len(items))
		for i, item := range items {
			results[i] = Result[T]{Item: item, Relevance: Unfiltered}
		}
		return results
	}

	results := make(Results[T], 0, len(items))
	for _, item := range items {
		result := s.strategy.Evaluate(*query, item)
		if !result.Relevance.Matched() {
			continue
		}
		results = append(results, result)
	}

	slices.SortStableFunc(results, func(a, b Result[T]) int {
		if c := b.Relevance.Compare(a.Relevance); c != 0 {
			return c
		}
		return s.compare(a.Item, b.Item)
	})

	s.logger.Debug("Ranked search completed", "candidates", len(items), "matched", len(results))

	return results
}

// Search is SearchWithRelevance without the relevance.
func (s *RankedSearcher[Q, T]) Search(query *Q, items []T) []T {
	return s.SearchWithRelevance(query, items).Items()
}

func (s *RankedSearcher[Q, T]) filters(query Q) bool {
	if qf, ok := s.strategy.(QueryFilter[Q]); ok {
		return qf.Filters(query)
	}
	return true
}
