package seed

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/dmitrijs2005/seashells/internal/server/models"
	"golang.org/x/term"
)

// ErrCancelled is returned when the user declines or cannot be asked.
var ErrCancelled = errors.New("seed cancelled")

// Store is the part of services.SeashellService the seeder needs.
type Store interface {
	CreateBatch(ctx context.Context, in []models.SeashellCreate) ([]*models.Seashell, error)
	Count(ctx context.Context) (int, error)
}

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// Seeder inserts samples, asking for confirmation when the store already
// has records.
type Seeder struct {
	store     Store
	in        io.Reader
	inFd      int
	out       io.Writer
	assumeYes bool
}

func NewSeeder(store Store, assumeYes bool) *Seeder {
	return &Seeder{
		store:     store,
		in:        os.Stdin,
		inFd:      int(os.Stdin.Fd()),
		out:       os.Stdout,
		assumeYes: assumeYes,
	}
}

// SetOutput redirects progress messages and the prompt.
func (s *Seeder) SetOutput(w io.Writer) {
	s.out = w
}

// Run inserts all items in one batch and returns how many were created.
// A failed batch inserts nothing.
func (s *Seeder) Run(ctx context.Context, items []models.SeashellCreate) (int, error) {
	existing, err := s.store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("error counting seashells: %w", err)
	}

	if existing > 0 {
		fmt.Fprintf(s.out, "Database already has %d seashells\n", existing)
		ok, err := s.confirm()
		if err != nil {
			return 0, err
		}
		if !ok {
			fmt.Fprintln(s.out, "Seed cancelled")
			return 0, ErrCancelled
		}
	}

	created, err := s.store.CreateBatch(ctx, items)
	if err != nil {
		return 0, fmt.Errorf("error inserting samples: %w", err)
	}

	fmt.Fprintf(s.out, "Successfully added %d seashells to the database!\n", len(created))
	fmt.Fprintln(s.out, "\nSample data:")
	for _, it := range items {
		fmt.Fprintf(s.out, "  - %s (%s)\n", it.Name, it.Species)
	}
	return len(created), nil
}

func (s *Seeder) confirm() (bool, error) {
	if s.assumeYes {
		return true, nil
	}
	if !isTerminal(s.inFd) {
		return false, fmt.Errorf("%w: store is not empty and stdin is not a terminal, pass --yes", ErrCancelled)
	}

	fmt.Fprint(s.out, "Do you want to add more sample data anyway? (y/n): ")
	line, err := bufio.NewReader(s.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}

// PostgresDSN builds the local Postgres DSN from its parts.
func PostgresDSN(user, password, host, db string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, password),
		Host:     host,
		Path:     "/" + db,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
