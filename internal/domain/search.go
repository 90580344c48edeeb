package domain

import "time"

// SearchCriteria is one search-form submission. City holds the slug
// from the city enumeration, not the display name.
type SearchCriteria struct {
	City     string
	Checkin  time.Time
	Checkout time.Time
	Guests   int
}

// SearchResult carries the matching properties plus, when nothing
// matched, two diagnostic counts used for user feedback: how many
// properties exist in the city at all, and how many of those have a
// confirmed reservation overlapping the requested range.
type SearchResult struct {
	CityName      string
	Properties    []*Property
	TotalInCity   int
	WithConflicts int
}
