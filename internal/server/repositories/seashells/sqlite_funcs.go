package seashells

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"modernc.org/sqlite"
)

// casefoldFunc is a Unicode-aware lower() registered with the SQLite driver
// for every new connection.
const casefoldFunc = "casefold"

func init() {
	sqlite.MustRegisterDeterministicScalarFunction(casefoldFunc, 1, casefold)
}

func casefold(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return nil, fmt.Errorf("casefold: unsupported argument type %T", v)
	}
}
