package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Author represents a single author record stored in the database.
// Birth and death dates are optional; a nil pointer means unknown.
type Author struct {
	ID          int64
	Name        string
	BirthDate   *time.Time
	DateOfDeath *time.Time
}

// Display returns the human-readable form used in author lists,
// e.g. `J.R.R. Tolkien (Born: 1892-01-03, Died: 1973-09-02)`.
func (a *Author) Display() string {
	birth := "unknown"
	if a.BirthDate != nil {
		birth = a.BirthDate.Format("2006-01-02")
	}
	death := "—"
	if a.DateOfDeath != nil {
		death = a.DateOfDeath.Format("2006-01-02")
	}
	return fmt.Sprintf("%s (Born: %s, Died: %s)", a.Name, birth, death)
}

// check enforces the storage-level invariants for an author record.
// Validation has already run by the time a write reaches the model,
// but the model rejects invalid writes regardless.
func (a *Author) check() error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("%w: author name is required", ErrConstraintViolation)
	}
	return nil
}

// AuthorModel wraps a *sql.DB connection and provides methods for
// creating and querying author records.
type AuthorModel struct {
	DB *sql.DB // Shared database connection pool
}

// Insert adds a new author record to the database.
// After a successful insert, the database-assigned id is written back
// into the author struct. A write rejected by the entity checks or a
// database constraint returns ErrConstraintViolation.
func (m AuthorModel) Insert(ctx context.Context, author *Author) error {
	if err := author.check(); err != nil {
		return err
	}

	query := `
		INSERT INTO author (name, birth_date, date_of_death)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := m.DB.QueryRowContext(ctx, query, author.Name, author.BirthDate, author.DateOfDeath).Scan(&author.ID)
	if err != nil {
		return mapConstraintError(err)
	}

	return nil
}

// Get retrieves a single author by its primary key.
// Returns ErrRecordNotFound if no author with the given id exists.
func (m AuthorModel) Get(ctx context.Context, id int64) (*Author, error) {
	if id < 1 {
		return nil, ErrRecordNotFound
	}

	query := `
		SELECT id, name, birth_date, date_of_death
		FROM author
		WHERE id = $1`

	var author Author
	err := m.DB.QueryRowContext(ctx, query, id).Scan(
		&author.ID,
		&author.Name,
		&author.BirthDate,
		&author.DateOfDeath,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &author, nil
}

// GetAll retrieves every author ordered by name, for the author
// selector on the add-book form.
func (m AuthorModel) GetAll(ctx context.Context) ([]*Author, error) {
	query := `
		SELECT id, name, birth_date, date_of_death
		FROM author
		ORDER BY name ASC, id ASC`

	rows, err := m.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	authors := []*Author{}
	for rows.Next() {
		var author Author
		err := rows.Scan(
			&author.ID,
			&author.Name,
			&author.BirthDate,
			&author.DateOfDeath,
		)
		if err != nil {
			return nil, err
		}
		authors = append(authors, &author)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return authors, nil
}

// ExistsByName reports whether an author with the given name already
// exists, compared case-insensitively. The unique index on author.name
// is case-sensitive; this lookup is the stricter application-level
// duplicate check run at validation time.
func (m AuthorModel) ExistsByName(ctx context.Context, name string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM author WHERE lower(name) = lower($1)
		)`

	var exists bool
	err := m.DB.QueryRowContext(ctx, query, name).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
