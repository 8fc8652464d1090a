package arrivals

import (
	"cmp"
	"log/slog"
	"strings"

	"github.com/radutopala/arrivalsearch/internal/search"
)

// Arrival describes a person arriving at a prison, as captured at intake.
type Arrival struct {
	PrisonNumber string `json:"prisonNumber,omitempty"`
	PNCNumber    string `json:"pncNumber,omitempty"` // Police National Computer number
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	DateOfBirth  string `json:"dateOfBirth,omitempty"`
}

// PrisonerDetails is an existing prisoner record that an arrival may belong to.
type PrisonerDetails struct {
	PrisonNumber string `json:"prisonNumber"`
	PNCNumber    string `json:"pncNumber,omitempty"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	DateOfBirth  string `json:"dateOfBirth,omitempty"`
	Location     string `json:"location,omitempty"`
}

// IdentifierStrategy matches arrivals to prisoners on exact identifier
// equality. Each identifier shared with the arrival scores search.ExactMatch;
// names and dates of birth are never compared.
type IdentifierStrategy struct{}

// Evaluate scores prisoner against arrival.
func (IdentifierStrategy) Evaluate(arrival Arrival, prisoner PrisonerDetails) search.Result[PrisonerDetails] {
	relevance := search.NoMatch
	if sameIdentifier(arrival.PrisonNumber, prisoner.PrisonNumber) {
		relevance = relevance.Add(search.Scored(search.ExactMatch))
	}
	if sameIdentifier(arrival.PNCNumber, prisoner.PNCNumber) {
		relevance = relevance.Add(search.Scored(search.ExactMatch))
	}
	return search.Result[PrisonerDetails]{Item: prisoner, Relevance: relevance}
}

func sameIdentifier(a, b string) bool {
	a = strings.TrimSpace(a)
	return a != "" && strings.EqualFold(a, strings.TrimSpace(b))
}

// ComparePrisoners is the natural order of prisoner records.
func ComparePrisoners(a, b PrisonerDetails) int {
	return cmp.Or(
		strings.Compare(a.PrisonNumber, b.PrisonNumber),
		strings.Compare(a.PNCNumber, b.PNCNumber),
		strings.Compare(a.LastName, b.LastName),
		strings.Compare(a.FirstName, b.FirstName),
		strings.Compare(a.DateOfBirth, b.DateOfBirth),
		strings.Compare(a.Location, b.Location),
	)
}

// Matcher finds the existing prisoner records an arrival may belong to.
type Matcher struct {
	searcher *search.RankedSearcher[Arrival, PrisonerDetails]
	logger   *slog.Logger
}

// NewMatcher creates a new matcher.
func NewMatcher(logger *slog.Logger) *Matcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Matcher{
		searcher: search.NewRankedSearcher[Arrival, PrisonerDetails](
			IdentifierStrategy{},
			ComparePrisoners,
			search.WithLogger(logger),
		),
		logger: logger,
	}
}

// PotentialMatches returns the candidates sharing an identifier with arrival,
// records matching on both prison number and PNC number first.
func (m *Matcher) PotentialMatches(arrival Arrival, candidates []PrisonerDetails) search.Results[PrisonerDetails] {
	results := m.searcher.SearchWithRelevance(&arrival, candidates)
	m.logger.Debug("Matched arrival", "prison_number", arrival.PrisonNumber, "candidates", len(candidates), "matches", len(results))
	return results
}
