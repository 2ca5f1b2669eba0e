package models

import "strings"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// SortField is a column the listing may be ordered by.
type SortField string

const (
	SortByID          SortField = "id"
	SortByName        SortField = "name"
	SortBySpecies     SortField = "species"
	SortByDescription SortField = "description"
)

// Valid reports whether f is one of the sortable columns.
func (f SortField) Valid() bool {
	switch f {
	case SortByID, SortByName, SortBySpecies, SortByDescription:
		return true
	}
	return false
}

// SortOrder is the direction of the listing sort.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

func (o SortOrder) Valid() bool {
	return o == OrderAsc || o == OrderDesc
}

// ListQuery describes one page of the seashell listing.
type ListQuery struct {
	Skip   int
	Limit  int
	Search *string
	SortBy SortField
	Order  SortOrder
}

// Normalize returns a copy with every field inside its allowed range.
// Unknown sort fields fall back to id and unknown orders to asc.
func (q ListQuery) Normalize() ListQuery {
	if q.Skip < 0 {
		q.Skip = 0
	}
	switch {
	case q.Limit <= 0:
		q.Limit = DefaultPageSize
	case q.Limit > MaxPageSize:
		q.Limit = MaxPageSize
	}
	if !q.SortBy.Valid() {
		q.SortBy = SortByID
	}
	if !q.Order.Valid() {
		q.Order = OrderAsc
	}
	if q.Search != nil && strings.TrimSpace(*q.Search) == "" {
		q.Search = nil
	}
	return q
}

// PageToSkip converts a 1-based page number and page size into an offset.
func PageToSkip(page, pageSize int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize
}
