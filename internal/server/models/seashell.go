// Package models holds the seashell entity, its write models and the
// listing query shared by the repository, service and transport layers.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/seashells/internal/common"
)

// State is the lifecycle state of a seashell record.
type State int

const (
	StateActive State = iota
	StateDeleted
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateDeleted:
		return "deleted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Seashell is one row of the seashells table.
type Seashell struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Species     string    `db:"species" json:"species"`
	Description *string   `db:"description" json:"description"`
	Deleted     bool      `db:"deleted" json:"-"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// State reports whether the record is still visible through normal reads.
func (s *Seashell) State() State {
	if s.Deleted {
		return StateDeleted
	}
	return StateActive
}

// SeashellCreate is the input of the create operation.
type SeashellCreate struct {
	Name        string  `json:"name"`
	Species     string  `json:"species"`
	Description *string `json:"description,omitempty"`
}

// Validate checks the required fields.
func (c SeashellCreate) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: name is required", common.ErrorValidation)
	}
	if strings.TrimSpace(c.Species) == "" {
		return fmt.Errorf("%w: species is required", common.ErrorValidation)
	}
	return nil
}

// NewSeashell builds an active record from the create input.
// The ID is left zero; the store assigns it.
func NewSeashell(c SeashellCreate, createdAt time.Time) *Seashell {
	return &Seashell{
		Name:        c.Name,
		Species:     c.Species,
		Description: c.Description,
		CreatedAt:   createdAt,
	}
}
