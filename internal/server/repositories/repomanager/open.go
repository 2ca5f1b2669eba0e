package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/seashells/internal/common"
)

// Target is the driver, data source and manager a DSN resolves to.
type Target struct {
	Driver  string
	Source  string
	Manager RepositoryManager
}

// Resolve maps a DSN onto a driver:
//
//	postgres://..., postgresql://...   pgx
//	sqlite://<path>, file:<path>       modernc sqlite
func Resolve(dsn string) (Target, error) {
	switch {
	case dsn == "":
		return Target{}, common.ErrMissingDSN
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return Target{Driver: "pgx", Source: dsn, Manager: NewPostgresRepositoryManager()}, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		return Target{Driver: "sqlite", Source: sqliteSource(strings.TrimPrefix(dsn, "sqlite://")), Manager: NewSQLiteRepositoryManager()}, nil
	case strings.HasPrefix(dsn, "file:"):
		return Target{Driver: "sqlite", Source: sqliteSource(dsn), Manager: NewSQLiteRepositoryManager()}, nil
	default:
		return Target{}, fmt.Errorf("unsupported database DSN scheme: %q", redact(dsn))
	}
}

// sqliteSource adds a busy timeout unless the caller set pragmas already.
func sqliteSource(path string) string {
	if strings.Contains(path, "_pragma=") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=busy_timeout(5000)"
}

// Options tunes the connection pool. Zero values keep database/sql defaults.
type Options struct {
	MaxOpenConns int
}

// sqlOpen is a seam for tests.
var sqlOpen = sql.Open

// Open connects to the database named by dsn, checks the connection and
// applies migrations. The caller owns the returned *sql.DB.
func Open(ctx context.Context, dsn string, opts Options) (*sql.DB, RepositoryManager, error) {
	target, err := Resolve(dsn)
	if err != nil {
		return nil, nil, err
	}

	db, err := sqlOpen(target.Driver, target.Source)
	if err != nil {
		return nil, nil, fmt.Errorf("db open error: %w", err)
	}
	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
		db.SetMaxIdleConns(opts.MaxOpenConns)
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, nil, errors.Join(fmt.Errorf("db ping error: %w", err), db.Close())
	}

	if err := target.Manager.RunMigrations(ctx, db); err != nil {
		return nil, nil, errors.Join(fmt.Errorf("migration error: %w", err), db.Close())
	}

	return db, target.Manager, nil
}

// redact hides everything between the scheme and the host part.
func redact(dsn string) string {
	scheme, rest, ok := strings.Cut(dsn, "://")
	if !ok {
		return "***"
	}
	if _, host, ok := strings.Cut(rest, "@"); ok {
		return scheme + "://***@" + host
	}
	return scheme + "://" + rest
}
