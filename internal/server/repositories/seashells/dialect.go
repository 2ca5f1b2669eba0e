package seashells

import (
	"fmt"
	"strconv"
)

// Dialect captures the few places where PostgreSQL and SQLite SQL differ.
type Dialect struct {
	Name string

	placeholder func(n int) string
	// contains renders a case-insensitive "column contains pattern" test.
	contains func(column, placeholder string) string
}

var Postgres = Dialect{
	Name:        "postgres",
	placeholder: func(n int) string { return "$" + strconv.Itoa(n) },
	contains: func(column, ph string) string {
		return fmt.Sprintf(`%s ILIKE %s ESCAPE '\'`, column, ph)
	},
}

// SQLite folds case with casefold, which handles non-ASCII letters unlike
// the built-in lower().
var SQLite = Dialect{
	Name:        "sqlite",
	placeholder: func(int) string { return "?" },
	contains: func(column, ph string) string {
		return fmt.Sprintf(`%s(%s) LIKE %s(%s) ESCAPE '\'`, casefoldFunc, column, casefoldFunc, ph)
	},
}
