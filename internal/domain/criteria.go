package domain

import (
	"strings"
	"unicode/utf8"
)

// MinInputLength is the minimum trimmed length of both query and location
const MinInputLength = 2

// Input fields of a search
const (
	FieldQuery    = "query"
	FieldLocation = "location"
)

// SearchCriteria is everything sent to the search provider for one dispatch
type SearchCriteria struct {
	Query    string
	Location string
	Filters  FilterSet
}

// Validate checks the query first, then the location. It returns a
// *ValidationError naming the first field that is too short.
func (c SearchCriteria) Validate() error {
	if utf8.RuneCountInString(strings.TrimSpace(c.Query)) < MinInputLength {
		return &ValidationError{Field: FieldQuery, Min: MinInputLength}
	}
	if utf8.RuneCountInString(strings.TrimSpace(c.Location)) < MinInputLength {
		return &ValidationError{Field: FieldLocation, Min: MinInputLength}
	}
	return nil
}

// Normalized returns the criteria with query and location trimmed
func (c SearchCriteria) Normalized() SearchCriteria {
	return SearchCriteria{
		Query:    strings.TrimSpace(c.Query),
		Location: strings.TrimSpace(c.Location),
		Filters:  c.Filters,
	}
}

// Equal reports whether both criteria would produce the same request
func (c SearchCriteria) Equal(other SearchCriteria) bool {
	return c.Query == other.Query && c.Location == other.Location && c.Filters.Equal(other.Filters)
}

// IsBlank reports whether either field is empty after trimming
func (c SearchCriteria) IsBlank() bool {
	return strings.TrimSpace(c.Query) == "" || strings.TrimSpace(c.Location) == ""
}
