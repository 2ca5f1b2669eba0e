package seashells

import (
	"context"

	"github.com/dmitrijs2005/seashells/internal/server/models"
)

// Repository is the Entity Store for seashell rows.
//
// GetByID returns rows regardless of their deleted flag; enforcing
// visibility is the caller's job. Update and MarkDeleted only touch rows that
// are not deleted and report common.ErrorNotFound otherwise. List and Count
// only ever see rows that are not deleted.
type Repository interface {
	Create(ctx context.Context, s *models.Seashell) (*models.Seashell, error)
	GetByID(ctx context.Context, id int64) (*models.Seashell, error)
	Update(ctx context.Context, s *models.Seashell) (*models.Seashell, error)
	MarkDeleted(ctx context.Context, id int64) error
	List(ctx context.Context, q models.ListQuery) ([]*models.Seashell, error)
	Count(ctx context.Context, q models.ListQuery) (int, error)
}
