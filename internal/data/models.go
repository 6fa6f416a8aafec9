// Package data provides the entity models and all database interaction
// logic for the library catalog.
package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// ErrRecordNotFound is returned when a query finds no matching row.
var ErrRecordNotFound = errors.New("record not found")

// ErrConstraintViolation is returned when a write is rejected by a
// storage-level constraint: the entity-level checks run before every
// insert, or a unique/check/foreign-key constraint enforced by the
// database itself. It is deliberately distinct from a generic storage
// failure so handlers can re-render the form instead of serving a 500.
var ErrConstraintViolation = errors.New("constraint violation")

// AuthorStore defines the author operations the handlers depend on.
// The indirection exists so handler tests can substitute an in-memory
// implementation for AuthorModel.
type AuthorStore interface {
	Insert(ctx context.Context, author *Author) error
	Get(ctx context.Context, id int64) (*Author, error)
	GetAll(ctx context.Context) ([]*Author, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// BookStore defines the book operations the handlers depend on.
type BookStore interface {
	Insert(ctx context.Context, book *Book) error
	Find(ctx context.Context, titleSubstring string) ([]*Book, error)
	Delete(ctx context.Context, id int64) (DeleteOutcome, error)
	ExistsTitleForAuthor(ctx context.Context, authorID int64, title string) (bool, error)
}

// Models is a top-level container that groups all database model types
// together. It is passed around the application via the application
// struct so every handler has access to the database without importing
// sql directly.
type Models struct {
	Authors AuthorStore
	Books   BookStore
}

// NewModels constructs a Models value wired up to the given database
// connection pool. Call this once during application startup.
func NewModels(db *sql.DB) Models {
	return Models{
		Authors: AuthorModel{DB: db},
		Books:   BookModel{DB: db},
	}
}

// mapConstraintError converts the PostgreSQL error classes that signal
// a rejected write (unique_violation, check_violation,
// foreign_key_violation) into ErrConstraintViolation. The unique
// indexes are the final authority for the duplicate pre-checks done at
// validation time; a concurrent insert slipping between lookup and
// write surfaces here rather than as a generic failure. Any other
// error is returned unchanged.
func mapConstraintError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505", "23514", "23503":
			return fmt.Errorf("%w: %s", ErrConstraintViolation, pqErr.Constraint)
		}
	}
	return err
}
