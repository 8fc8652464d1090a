// Package search provides an in-memory ranked search engine with fuzzy,
// multi-field scoring.
//
// It separates how an item is scored from how results are filtered and ranked:
//   - A [MatchStrategy] scores one item against one query
//   - A [RankedSearcher] drops items scored [NoMatch] and orders the rest
//
// # Usage
//
//	searcher := search.NewRankedSearcher[string, Person](
//	    search.NewNameAndIdentifierStrategy[Person](),
//	    ComparePeople,
//	)
//
//	// Browse mode: every item, input order
//	all := searcher.Search(nil, people)
//
//	// Filtered and ranked
//	hits := searcher.SearchWithRelevance(search.Some("smith jim"), people)
//
// # Scoring
//
// [NameAndIdentifierStrategy] tokenizes the query with [Tokenize] and scores
// every term against every field: [ExactMatch] for equality, [PartialMatch] for
// containment, otherwise the [FuzzyScorer] grants [FuzzyCloseMatch] or
// [FuzzySlightMatch] within an edit distance scaled by term length (see
// [AllowedDistance]). Pair scores are summed.
//
// # Ordering
//
// Results are ordered by relevance descending, then by the natural order
// supplied to [NewRankedSearcher]. Equal input always produces equal output,
// so callers can page through results deterministically.
//
// # Thread Safety
//
// RankedSearcher holds no mutable state and may be used from multiple
// goroutines, provided callers do not mutate the item slice concurrently.
package search
