package movements

import (
	"cmp"
	"strings"
	"time"

	"github.com/radutopala/arrivalsearch/internal/search"
)

// Movement is a recent arrival or transfer of a person into a prison.
type Movement struct {
	PrisonNumber string    `json:"prisonNumber"`          // Identifier, e.g. "A1234AA"
	FirstName    string    `json:"firstName"`             // Given name
	LastName     string    `json:"lastName"`              // Family name
	DateOfBirth  string    `json:"dateOfBirth,omitempty"` // ISO date, e.g. "1980-02-23"
	FromLocation string    `json:"fromLocation,omitempty"`
	ToLocation   string    `json:"toLocation,omitempty"`
	MovementTime time.Time `json:"movementTime"`
}

// SearchFields returns the fields free-text queries are matched against.
func (m Movement) SearchFields() []string {
	return []string{m.PrisonNumber, m.FirstName, m.LastName}
}

// Compare is the natural order of movements: by name, then identifier, then
// the remaining fields so that distinct movements never compare equal.
func Compare(a, b Movement) int {
	return cmp.Or(
		compareFold(a.LastName, b.LastName),
		compareFold(a.FirstName, b.FirstName),
		strings.Compare(a.PrisonNumber, b.PrisonNumber),
		strings.Compare(a.DateOfBirth, b.DateOfBirth),
		strings.Compare(a.FromLocation, b.FromLocation),
		strings.Compare(a.ToLocation, b.ToLocation),
		a.MovementTime.Compare(b.MovementTime),
		compareZone(a.MovementTime, b.MovementTime),
	)
}

// compareFold compares case-insensitively, falling back to byte order so the result stays total.
func compareFold(a, b string) int {
	return cmp.Or(
		strings.Compare(strings.ToLower(a), strings.ToLower(b)),
		strings.Compare(a, b),
	)
}

// compareZone orders the same instant recorded in different zones.
func compareZone(a, b time.Time) int {
	aName, aOffset := a.Zone()
	bName, bOffset := b.Zone()
	return cmp.Or(
		cmp.Compare(aOffset, bOffset),
		strings.Compare(aName, bName),
	)
}

// NewSearcher creates a searcher that filters movements by free text over
// prison number, first name and last name.
func NewSearcher(opts ...search.Option) *search.RankedSearcher[string, Movement] {
	return search.NewRankedSearcher[string, Movement](
		search.NewNameAndIdentifierStrategy[Movement](),
		Compare,
		opts...,
	)
}
