package search

// Result pairs an item with its relevance for one query.
type Result[T any] struct {
	Item      T
	Relevance Relevance
}

// Results is a slice of Result with helper methods.
type Results[T any] []Result[T]

// Items returns just the items, in result order.
func (r Results[T]) Items() []T {
	items := make([]T, len(r))
	for i, result := range r {
		items[i] = result.Item
	}
	return items
}

// FilterByMinRelevance returns results scoring at least minScore.
func (r Results[T]) FilterByMinRelevance(minScore int) Results[T] {
	var filtered Results[T]
	for _, result := range r {
		if score, ok := result.Relevance.Value(); ok && score >= minScore {
			filtered = append(filtered, result)
		}
	}
	return filtered
}
