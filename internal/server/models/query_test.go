package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListQuery_Normalize(t *testing.T) {
	blank := "   "
	term := "conch"

	tests := []struct {
		name string
		in   ListQuery
		want ListQuery
	}{
		{
			name: "zero value gets defaults",
			in:   ListQuery{},
			want: ListQuery{Skip: 0, Limit: DefaultPageSize, SortBy: SortByID, Order: OrderAsc},
		},
		{
			name: "negative skip and oversized limit are clamped",
			in:   ListQuery{Skip: -4, Limit: 1000, SortBy: SortByName, Order: OrderDesc},
			want: ListQuery{Skip: 0, Limit: MaxPageSize, SortBy: SortByName, Order: OrderDesc},
		},
		{
			name: "unknown sort field falls back to id",
			in:   ListQuery{Limit: 5, SortBy: "deleted", Order: "sideways"},
			want: ListQuery{Limit: 5, SortBy: SortByID, Order: OrderAsc},
		},
		{
			name: "blank search is dropped",
			in:   ListQuery{Limit: 5, Search: &blank, SortBy: SortBySpecies, Order: OrderAsc},
			want: ListQuery{Limit: 5, SortBy: SortBySpecies, Order: OrderAsc},
		},
		{
			name: "search is kept",
			in:   ListQuery{Skip: 20, Limit: 10, Search: &term, SortBy: SortByDescription, Order: OrderAsc},
			want: ListQuery{Skip: 20, Limit: 10, Search: &term, SortBy: SortByDescription, Order: OrderAsc},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestSortField_Valid(t *testing.T) {
	for _, f := range []SortField{SortByID, SortByName, SortBySpecies, SortByDescription} {
		assert.True(t, f.Valid(), f)
	}
	assert.False(t, SortField("created_at").Valid())
	assert.False(t, SortField("").Valid())
}

func TestPageToSkip(t *testing.T) {
	assert.Equal(t, 0, PageToSkip(1, 10))
	assert.Equal(t, 20, PageToSkip(3, 10))
	assert.Equal(t, 0, PageToSkip(0, 10))
	assert.Equal(t, 2, PageToSkip(2, 2))
}
