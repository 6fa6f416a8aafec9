package data

import (
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestBookCheckRejectsBlankISBN(t *testing.T) {
	book := &Book{ISBN: "   ", Title: "T", AuthorID: 1}

	err := book.check()

	assert.ErrorIs(t, err, ErrConstraintViolation)
}

func TestBookCheckPublicationYearBounds(t *testing.T) {
	year := func(y int) *int { return &y }

	tests := []struct {
		name string
		year *int
		ok   bool
	}{
		{"nil year", nil, true},
		{"zero", year(0), true},
		{"upper bound", year(3000), true},
		{"negative", year(-1), false},
		{"above upper bound", year(3001), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book := &Book{ISBN: "1234567890", Title: "T", PublicationYear: tt.year, AuthorID: 1}

			err := book.check()

			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrConstraintViolation)
			}
		})
	}
}

func TestAuthorCheckRejectsBlankName(t *testing.T) {
	author := &Author{Name: "  "}

	assert.ErrorIs(t, author.check(), ErrConstraintViolation)
}

func TestMapConstraintError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		constraint bool
	}{
		{"unique violation", &pq.Error{Code: "23505", Constraint: "author_name_key"}, true},
		{"check violation", &pq.Error{Code: "23514", Constraint: "ck_book_pubyear_range"}, true},
		{"foreign key violation", &pq.Error{Code: "23503", Constraint: "book_author_id_fkey"}, true},
		{"other pq error", &pq.Error{Code: "57014"}, false},
		{"plain error", errors.New("connection reset"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := mapConstraintError(tt.err)

			if tt.constraint {
				assert.ErrorIs(t, mapped, ErrConstraintViolation)
			} else {
				assert.Equal(t, tt.err, mapped)
			}
		})
	}
}

func TestAuthorDisplay(t *testing.T) {
	birth := time.Date(1892, 1, 3, 0, 0, 0, 0, time.UTC)
	death := time.Date(1973, 9, 2, 0, 0, 0, 0, time.UTC)

	full := &Author{Name: "J.R.R. Tolkien", BirthDate: &birth, DateOfDeath: &death}
	assert.Equal(t, "J.R.R. Tolkien (Born: 1892-01-03, Died: 1973-09-02)", full.Display())

	living := &Author{Name: "A. Writer", BirthDate: &birth}
	assert.Equal(t, "A. Writer (Born: 1892-01-03, Died: —)", living.Display())

	unknown := &Author{Name: "Anonymous"}
	assert.Equal(t, "Anonymous (Born: unknown, Died: —)", unknown.Display())
}
