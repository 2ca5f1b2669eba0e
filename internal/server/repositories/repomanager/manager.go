package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/seashells/internal/dbx"
	"github.com/dmitrijs2005/seashells/internal/server/repositories/seashells"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Seashells(db dbx.DBTX) seashells.Repository
}
