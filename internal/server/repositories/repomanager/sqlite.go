package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/seashells/internal/dbx"
	"github.com/dmitrijs2005/seashells/internal/server/migrations"
	"github.com/dmitrijs2005/seashells/internal/server/repositories/seashells"
	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager is the SQLite counterpart of
// PostgresRepositoryManager, used for local runs and tests.
type SQLiteRepositoryManager struct{}

func (m *SQLiteRepositoryManager) Seashells(db dbx.DBTX) seashells.Repository {
	return seashells.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return runMigrations(ctx, db, "sqlite3", migrations.SQLiteDir)
}

func NewSQLiteRepositoryManager() RepositoryManager {
	return &SQLiteRepositoryManager{}
}
