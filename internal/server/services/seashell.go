// Package services contains server-side business logic. SeashellService
// implements the record operations over the seashell repository and keeps
// soft-deleted rows out of every normal read.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/seashells/internal/common"
	"github.com/dmitrijs2005/seashells/internal/dbx"
	"github.com/dmitrijs2005/seashells/internal/server/models"
	"github.com/dmitrijs2005/seashells/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/seashells/internal/server/repositories/seashells"
)

type SeashellService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewSeashellService(db *sql.DB, m repomanager.RepositoryManager) *SeashellService {
	return &SeashellService{
		db:          db,
		repomanager: m,
		now:         time.Now,
	}
}

// Create validates the input, stamps created_at and stores a new record.
func (s *SeashellService) Create(ctx context.Context, in models.SeashellCreate) (*models.Seashell, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	createdAt := s.now().UTC().Truncate(time.Microsecond)
	shell, err := s.repomanager.Seashells(s.db).Create(ctx, models.NewSeashell(in, createdAt))
	if err != nil {
		return nil, fmt.Errorf("error creating seashell: %w", err)
	}
	return shell, nil
}

// CreateBatch stores all inputs in one transaction. Nothing is written when
// any input is invalid or any insert fails.
func (s *SeashellService) CreateBatch(ctx context.Context, in []models.SeashellCreate) ([]*models.Seashell, error) {
	for i, c := range in {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}

	createdAt := s.now().UTC().Truncate(time.Microsecond)
	return dbx.InTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) ([]*models.Seashell, error) {
		repo := s.repomanager.Seashells(tx)

		out := make([]*models.Seashell, 0, len(in))
		for _, c := range in {
			shell, err := repo.Create(ctx, models.NewSeashell(c, createdAt))
			if err != nil {
				return nil, fmt.Errorf("error creating seashell %q: %w", c.Name, err)
			}
			out = append(out, shell)
		}
		return out, nil
	})
}

// GetByID returns an active record or common.ErrorNotFound.
func (s *SeashellService) GetByID(ctx context.Context, id int64) (*models.Seashell, error) {
	return getActive(ctx, s.repomanager.Seashells(s.db), id)
}

// Update overwrites the supplied fields of an active record.
func (s *SeashellService) Update(ctx context.Context, id int64, in models.SeashellUpdate) (*models.Seashell, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	return dbx.InTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) (*models.Seashell, error) {
		repo := s.repomanager.Seashells(tx)

		shell, err := getActive(ctx, repo, id)
		if err != nil {
			return nil, err
		}
		if in.Empty() {
			return shell, nil
		}

		in.Apply(shell)
		if _, err := repo.Update(ctx, shell); err != nil {
			return nil, fmt.Errorf("error updating seashell %d: %w", id, err)
		}
		return shell, nil
	})
}

// Delete soft-deletes an active record. The row stays in the store.
func (s *SeashellService) Delete(ctx context.Context, id int64) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Seashells(tx)

		if _, err := getActive(ctx, repo, id); err != nil {
			return err
		}
		if err := repo.MarkDeleted(ctx, id); err != nil {
			return fmt.Errorf("error deleting seashell %d: %w", id, err)
		}
		return nil
	})
}

// List returns one page of active records and the total number of matches.
func (s *SeashellService) List(ctx context.Context, q models.ListQuery) ([]*models.Seashell, int, error) {
	q = q.Normalize()
	repo := s.repomanager.Seashells(s.db)

	items, err := repo.List(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing seashells: %w", err)
	}

	total, err := repo.Count(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting seashells: %w", err)
	}

	return items, total, nil
}

// Count returns the number of active records.
func (s *SeashellService) Count(ctx context.Context) (int, error) {
	return s.repomanager.Seashells(s.db).Count(ctx, models.ListQuery{}.Normalize())
}

func getActive(ctx context.Context, repo seashells.Repository, id int64) (*models.Seashell, error) {
	shell, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if shell.State() == models.StateDeleted {
		return nil, common.ErrorNotFound
	}
	return shell, nil
}
