package seashells

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/seashells/internal/server/models"
)

const selectColumns = `id, name, species, description, deleted, created_at`

// sortColumns whitelists the columns a listing may be ordered by.
var sortColumns = map[models.SortField]string{
	models.SortByID:          "id",
	models.SortByName:        "name",
	models.SortBySpecies:     "species",
	models.SortByDescription: "description",
}

var searchColumns = []string{"name", "species", "description"}

// nullableColumns get an explicit NULL placement so both dialects order
// them like PostgreSQL: NULLs last ascending, first descending.
var nullableColumns = map[string]bool{"description": true}

// builder accumulates positional args and hands out dialect placeholders.
type builder struct {
	d    Dialect
	args []any
}

func (b *builder) arg(v any) string {
	b.args = append(b.args, v)
	return b.d.placeholder(len(b.args))
}

// where renders the filter shared by the list and count queries: rows that
// are not deleted and, with a search term, whose name, species or
// description contains it case-insensitively.
func (b *builder) where(q models.ListQuery) string {
	clause := "WHERE deleted = FALSE"
	if q.Search == nil {
		return clause
	}

	pattern := "%" + escapeLike(*q.Search) + "%"
	matches := make([]string, 0, len(searchColumns))
	for _, col := range searchColumns {
		matches = append(matches, b.d.contains(col, b.arg(pattern)))
	}
	return clause + " AND (" + strings.Join(matches, " OR ") + ")"
}

// buildListQuery renders the page query for an already normalised q.
// Ties on the sort column are broken by ascending id.
func buildListQuery(d Dialect, q models.ListQuery) (string, []any) {
	b := &builder{d: d}

	col, ok := sortColumns[q.SortBy]
	if !ok {
		col = "id"
	}
	dir := "ASC"
	if q.Order == models.OrderDesc {
		dir = "DESC"
	}
	order := fmt.Sprintf("ORDER BY %s %s", col, dir)
	if nullableColumns[col] {
		if dir == "ASC" {
			order += " NULLS LAST"
		} else {
			order += " NULLS FIRST"
		}
	}
	if col != "id" {
		order += ", id ASC"
	}

	where := b.where(q)
	limit := b.arg(q.Limit)
	offset := b.arg(q.Skip)

	query := fmt.Sprintf("SELECT %s FROM seashells %s %s LIMIT %s OFFSET %s",
		selectColumns, where, order, limit, offset)
	return query, b.args
}

func buildCountQuery(d Dialect, q models.ListQuery) (string, []any) {
	b := &builder{d: d}
	query := "SELECT COUNT(*) FROM seashells " + b.where(q)
	return query, b.args
}

// escapeLike makes %, _ and the escape character itself match literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
