// Package seashells provides the database/sql backed Entity Store for
// seashell rows, with PostgreSQL and SQLite dialects.
package seashells

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/seashells/internal/common"
	"github.com/dmitrijs2005/seashells/internal/dbx"
	"github.com/dmitrijs2005/seashells/internal/server/models"
)

// SQLRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type SQLRepository struct {
	db      dbx.DBTX
	dialect Dialect
}

// NewSQLRepository constructs a repository bound to the given DBTX.
func NewSQLRepository(db dbx.DBTX, d Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: d}
}

// NewPostgresRepository constructs a PostgreSQL repository.
func NewPostgresRepository(db dbx.DBTX) *SQLRepository {
	return NewSQLRepository(db, Postgres)
}

// NewSQLiteRepository constructs a SQLite repository.
func NewSQLiteRepository(db dbx.DBTX) *SQLRepository {
	return NewSQLRepository(db, SQLite)
}

// Create inserts s and fills in the id assigned by the store.
func (r *SQLRepository) Create(ctx context.Context, s *models.Seashell) (*models.Seashell, error) {
	b := &builder{d: r.dialect}
	query := fmt.Sprintf(`
		INSERT INTO seashells (name, species, description, deleted, created_at)
		VALUES (%s, %s, %s, FALSE, %s)
		RETURNING id`,
		b.arg(s.Name), b.arg(s.Species), b.arg(toNullString(s.Description)), b.arg(s.CreatedAt))

	err := r.db.QueryRowContext(ctx, query, b.args...).Scan(&s.ID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return s, nil
}

// GetByID loads one row, deleted or not.
func (r *SQLRepository) GetByID(ctx context.Context, id int64) (*models.Seashell, error) {
	b := &builder{d: r.dialect}
	query := `SELECT ` + selectColumns + ` FROM seashells WHERE id = ` + b.arg(id)

	s, err := scanSeashell(r.db.QueryRowContext(ctx, query, b.args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to select seashell: %w", err)
	}
	return s, nil
}

// Update writes name, species and description of an active row.
func (r *SQLRepository) Update(ctx context.Context, s *models.Seashell) (*models.Seashell, error) {
	b := &builder{d: r.dialect}
	query := fmt.Sprintf(`
		UPDATE seashells
		SET name = %s, species = %s, description = %s
		WHERE id = %s AND deleted = FALSE`,
		b.arg(s.Name), b.arg(s.Species), b.arg(toNullString(s.Description)), b.arg(s.ID))

	res, err := r.db.ExecContext(ctx, query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if err := expectOneRow(res); err != nil {
		return nil, err
	}
	return s, nil
}

// MarkDeleted flips the soft-delete flag of an active row.
func (r *SQLRepository) MarkDeleted(ctx context.Context, id int64) error {
	b := &builder{d: r.dialect}
	query := `UPDATE seashells SET deleted = TRUE WHERE id = ` + b.arg(id) + ` AND deleted = FALSE`

	res, err := r.db.ExecContext(ctx, query, b.args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOneRow(res)
}

// List returns one page of active rows for a normalised query.
func (r *SQLRepository) List(ctx context.Context, q models.ListQuery) ([]*models.Seashell, error) {
	query, args := buildListQuery(r.dialect, q)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select seashells: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Seashell, 0, q.Limit)
	for rows.Next() {
		s, err := scanSeashell(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Count returns the number of active rows matching q, ignoring pagination.
func (r *SQLRepository) Count(ctx context.Context, q models.ListQuery) (int, error) {
	query, args := buildCountQuery(r.dialect, q)

	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count seashells: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSeashell(row rowScanner) (*models.Seashell, error) {
	var (
		s           models.Seashell
		description sql.NullString
	)
	if err := row.Scan(&s.ID, &s.Name, &s.Species, &description, &s.Deleted, &s.CreatedAt); err != nil {
		return nil, err
	}
	if description.Valid {
		s.Description = &description.String
	}
	return &s, nil
}

func toNullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
