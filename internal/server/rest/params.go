package rest

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/seashells/internal/common"
	"github.com/dmitrijs2005/seashells/internal/server/models"
)

// parseListQuery reads page, page_size, sort_by, order and search.
// Out-of-range or unknown values are rejected rather than clamped.
func parseListQuery(v url.Values) (models.ListQuery, error) {
	page, err := intParam(v, "page", 1)
	if err != nil {
		return models.ListQuery{}, err
	}
	if page < 1 {
		return models.ListQuery{}, fmt.Errorf("%w: page must be >= 1", common.ErrorValidation)
	}

	pageSize, err := intParam(v, "page_size", models.DefaultPageSize)
	if err != nil {
		return models.ListQuery{}, err
	}
	if pageSize < 1 || pageSize > models.MaxPageSize {
		return models.ListQuery{}, fmt.Errorf("%w: page_size must be between 1 and %d", common.ErrorValidation, models.MaxPageSize)
	}

	q := models.ListQuery{
		Skip:   models.PageToSkip(page, pageSize),
		Limit:  pageSize,
		SortBy: models.SortByID,
		Order:  models.OrderAsc,
	}

	if s := v.Get("sort_by"); s != "" {
		q.SortBy = models.SortField(s)
		if !q.SortBy.Valid() {
			return models.ListQuery{}, fmt.Errorf("%w: sort_by must be one of id, name, species, description", common.ErrorValidation)
		}
	}
	if s := v.Get("order"); s != "" {
		q.Order = models.SortOrder(s)
		if !q.Order.Valid() {
			return models.ListQuery{}, fmt.Errorf("%w: order must be asc or desc", common.ErrorValidation)
		}
	}
	if v.Has("search") {
		s := v.Get("search")
		q.Search = &s
	}

	return q, nil
}

func intParam(v url.Values, name string, def int) (int, error) {
	raw := v.Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", common.ErrorValidation, name)
	}
	return n, nil
}
