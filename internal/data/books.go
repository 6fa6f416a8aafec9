package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Book represents a single book record stored in the database.
// PublicationYear is optional; a nil pointer means unknown.
// AuthorName is populated from the join in listing queries and is
// never written back.
type Book struct {
	ID              int64
	ISBN            string
	Title           string
	PublicationYear *int
	AuthorID        int64
	AuthorName      string
}

// Storage-level bounds for publication_year. The form-level
// 1450..current_year check is the authoritative one; these wider
// bounds exist so the model rejects invalid writes regardless of what
// validation already checked.
const (
	minStoredYear = 0
	maxStoredYear = 3000
)

// check enforces the storage-level invariants for a book record.
func (b *Book) check() error {
	if strings.TrimSpace(b.ISBN) == "" {
		return fmt.Errorf("%w: isbn is required", ErrConstraintViolation)
	}
	if b.PublicationYear != nil {
		if y := *b.PublicationYear; y < minStoredYear || y > maxStoredYear {
			return fmt.Errorf("%w: publication_year %d outside %d..%d", ErrConstraintViolation, y, minStoredYear, maxStoredYear)
		}
	}
	return nil
}

// DeleteOutcome reports what a book deletion removed. When the deleted
// book was its author's last, the author row is removed in the same
// transaction and AuthorDeleted is true, so the caller can render the
// correct confirmation message.
type DeleteOutcome struct {
	BookTitle     string
	AuthorName    string
	AuthorDeleted bool
}

// BookModel wraps a *sql.DB connection and provides methods for
// creating, searching, and deleting book records.
type BookModel struct {
	DB *sql.DB // Shared database connection pool
}

// Insert adds a new book record to the database.
// After a successful insert, the database-assigned id is written back
// into the book struct. A write rejected by the entity checks or a
// database constraint returns ErrConstraintViolation.
func (m BookModel) Insert(ctx context.Context, book *Book) error {
	if err := book.check(); err != nil {
		return err
	}

	query := `
		INSERT INTO book (isbn, title, publication_year, author_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := m.DB.QueryRowContext(ctx, query, book.ISBN, book.Title, book.PublicationYear, book.AuthorID).Scan(&book.ID)
	if err != nil {
		return mapConstraintError(err)
	}

	return nil
}

// Find retrieves books joined with their author's name. When
// titleSubstring is non-empty only books whose title contains it,
// compared case-insensitively, are returned; otherwise every book is.
// Results are ordered by title then id so repeated calls are stable.
func (m BookModel) Find(ctx context.Context, titleSubstring string) ([]*Book, error) {
	query := `
		SELECT b.id, b.isbn, b.title, b.publication_year, b.author_id, a.name
		FROM book b
		INNER JOIN author a ON a.id = b.author_id
		WHERE $1 = '' OR b.title ILIKE '%' || $1 || '%'
		ORDER BY b.title ASC, b.id ASC`

	rows, err := m.DB.QueryContext(ctx, query, titleSubstring)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := []*Book{}
	for rows.Next() {
		var book Book
		err := rows.Scan(
			&book.ID,
			&book.ISBN,
			&book.Title,
			&book.PublicationYear,
			&book.AuthorID,
			&book.AuthorName,
		)
		if err != nil {
			return nil, err
		}
		books = append(books, &book)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

// ExistsTitleForAuthor reports whether the given author already has a
// book with this title, compared case-insensitively. Run at validation
// time; the database carries no matching constraint, so this lookup is
// the only line of defense for the per-author title rule.
func (m BookModel) ExistsTitleForAuthor(ctx context.Context, authorID int64, title string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM book WHERE author_id = $1 AND lower(title) = lower($2)
		)`

	var exists bool
	err := m.DB.QueryRowContext(ctx, query, authorID, title).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Delete removes the book with the given id. If the owning author is
// left with no books, the author row is deleted in the same
// transaction. Every exit path either commits or rolls back; a failed
// write never leaves a book gone but its orphaned author behind.
// Returns ErrRecordNotFound if no matching book exists.
func (m BookModel) Delete(ctx context.Context, id int64) (DeleteOutcome, error) {
	var outcome DeleteOutcome

	if id < 1 {
		return outcome, ErrRecordNotFound
	}

	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		return outcome, err
	}
	// Rollback is a no-op after a successful Commit.
	defer tx.Rollback()

	var authorID int64
	query := `
		SELECT b.title, b.author_id, a.name
		FROM book b
		INNER JOIN author a ON a.id = b.author_id
		WHERE b.id = $1`

	err = tx.QueryRowContext(ctx, query, id).Scan(&outcome.BookTitle, &authorID, &outcome.AuthorName)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return DeleteOutcome{}, ErrRecordNotFound
		default:
			return DeleteOutcome{}, err
		}
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM book WHERE id = $1`, id)
	if err != nil {
		return DeleteOutcome{}, err
	}

	var remaining int
	err = tx.QueryRowContext(ctx, `SELECT count(*) FROM book WHERE author_id = $1`, authorID).Scan(&remaining)
	if err != nil {
		return DeleteOutcome{}, err
	}

	if remaining == 0 {
		_, err = tx.ExecContext(ctx, `DELETE FROM author WHERE id = $1`, authorID)
		if err != nil {
			return DeleteOutcome{}, err
		}
		outcome.AuthorDeleted = true
	}

	if err = tx.Commit(); err != nil {
		return DeleteOutcome{}, err
	}
	return outcome, nil
}
