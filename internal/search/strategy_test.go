package search

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/require"
)

// person is a minimal Searchable record: identifier, first name, last name.
type person struct {
	ID    string
	First string
	Last  string
}

func (p person) SearchFields() []string {
	return []string{p.ID, p.First, p.Last}
}

func comparePeople(a, b person) int {
	return cmp.Or(
		cmp.Compare(a.Last, b.Last),
		cmp.Compare(a.First, b.First),
		cmp.Compare(a.ID, b.ID),
	)
}

var jimSmith = person{ID: "A1234AA", First: "Jim", Last: "Smith"}

func TestNameAndIdentifierStrategy_Evaluate(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		item     person
		expected Relevance
	}{
		{"identifier exact", "A1234AA", jimSmith, Scored(10)},
		{"every field exact", "A1234AA Jim Smith", jimSmith, Scored(30)},
		{"first and last name", "jim smith", jimSmith, Scored(20)},
		{"case insensitive", "SMITH", jimSmith, Scored(ExactMatch)},
		{"comma separated", "Smith, Jim", jimSmith, Scored(20)},
		{"partial", "smi", jimSmith, Scored(PartialMatch)},
		{"fuzzy close", "Smyth", jimSmith, Scored(FuzzyCloseMatch)},
		{"exceeds allowed distance", "Smithson", jimSmith, NoMatch},
		{"no field matches", "xyz", jimSmith, NoMatch},
		{"one term misses", "jim xyz", jimSmith, Scored(ExactMatch)},
		{"term matching two fields", "john", person{ID: "A1", First: "John", Last: "Johnson"}, Scored(ExactMatch + PartialMatch)},
		{"repeated substring counts once", "o", person{ID: "X1", First: "Jim", Last: "Johnson"}, Scored(PartialMatch)},
		{"short term never fuzzy", "jo", person{ID: "X1", First: "Jim", Last: "Jx"}, NoMatch},
		{"blank field ignored", "smith", person{ID: "", First: " ", Last: "Smith"}, Scored(ExactMatch)},
		{"untrimmed field", "smith", person{ID: "A1", First: "Jim", Last: "  Smith "}, Scored(ExactMatch)},
	}

	strategy := NewNameAndIdentifierStrategy[person]()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := strategy.Evaluate(tt.query, tt.item)
			require.Equal(t, tt.item, result.Item)
			require.Equal(t, tt.expected, result.Relevance)
		})
	}
}

func TestNameAndIdentifierStrategy_QueryWithoutTerms(t *testing.T) {
	strategy := NewNameAndIdentifierStrategy[person]()

	for _, query := range []string{"", "   ", ",", " - . "} {
		result := strategy.Evaluate(query, jimSmith)
		require.Equal(t, Unfiltered, result.Relevance, "query %q", query)
		require.False(t, strategy.Filters(query), "query %q", query)
	}

	require.True(t, strategy.Filters("jim"))
}

func TestNameAndIdentifierStrategy_ExactBeatsPartialBeatsFuzzy(t *testing.T) {
	strategy := NewNameAndIdentifierStrategy[person]()

	exact := strategy.Evaluate("smith", person{ID: "X1", First: "Jim", Last: "Smith"})
	partial := strategy.Evaluate("smith", person{ID: "X1", First: "Jim", Last: "Smithers"})
	fuzzy := strategy.Evaluate("smith", person{ID: "X1", First: "Jim", Last: "Smyth"})

	require.Equal(t, 1, exact.Relevance.Compare(partial.Relevance))
	require.Equal(t, 1, partial.Relevance.Compare(fuzzy.Relevance))
	require.True(t, fuzzy.Relevance.Matched())
}

func TestNameAndIdentifierStrategy_ImplementsInterfaces(t *testing.T) {
	var _ MatchStrategy[string, person] = NameAndIdentifierStrategy[person]{}
	var _ QueryFilter[string] = NameAndIdentifierStrategy[person]{}
}
