// This file contains the typed form structs submitted by each mutating
// route and the pure validation functions applied to them before any
// write reaches the database. All applicable rules run before
// reporting, so a submission gets every problem back in one round trip
// instead of fixing fields one at a time.
package data

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"bookalchemy/internal/validator"
)

// dateLayout is the only accepted calendar-date format on forms.
const dateLayout = "2006-01-02"

// Form-level publication-year bounds. These are the authoritative
// bounds; the storage layer keeps only the wider sanity check.
const minPublicationYear = 1450

// AuthorForm holds the raw fields submitted by the add-author form.
type AuthorForm struct {
	Name        string
	BirthDate   string
	DateOfDeath string
}

// NewAuthor is the normalized result of a valid AuthorForm, ready for
// persistence.
type NewAuthor struct {
	Name        string
	BirthDate   *time.Time
	DateOfDeath *time.Time
}

// BookForm holds the raw fields submitted by the add-book form.
type BookForm struct {
	Title           string
	ISBN            string
	PublicationYear string
	AuthorID        string
}

// NewBook is the normalized result of a valid BookForm, ready for
// persistence. ISBN keeps the formatting the user entered; only the
// digit count is normalized for checking.
type NewBook struct {
	Title           string
	ISBN            string
	PublicationYear *int
	AuthorID        int64
}

// ValidateAuthorForm checks a raw author submission, accumulating
// every violated rule on v. On success (v still valid) it returns the
// normalized author. nameTaken is consulted with the submitted name
// only when every other rule passed, since any earlier error already
// precludes a write; it must compare case-insensitively. A non-nil
// error reports a lookup failure, not a validation failure.
func ValidateAuthorForm(v *validator.Validator, form AuthorForm, nameTaken func(name string) (bool, error)) (*NewAuthor, error) {
	name := strings.TrimSpace(form.Name)
	v.Check(name != "", "name", "Name is required.")

	birth := parseOptionalDate(v, form.BirthDate, "birth_date", "Birth date")
	death := parseOptionalDate(v, form.DateOfDeath, "date_of_death", "Date of death")

	if birth != nil && death != nil {
		v.Check(!death.Before(*birth), "date_order", "Date of death cannot be before the birth date.")
	}

	if !v.Valid() {
		return nil, nil
	}

	taken, err := nameTaken(name)
	if err != nil {
		return nil, err
	}
	if taken {
		v.AddError("name", fmt.Sprintf("An author named %q already exists.", name))
		return nil, nil
	}

	return &NewAuthor{Name: name, BirthDate: birth, DateOfDeath: death}, nil
}

// parseOptionalDate parses a YYYY-MM-DD form field. An empty field is
// fine and yields nil. A malformed or future date records an error for
// that field without aborting the remaining checks; a future date is
// still returned so the birth/death ordering rule can run on it.
func parseOptionalDate(v *validator.Validator, raw, key, label string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		v.AddError(key, fmt.Sprintf("%s must use the YYYY-MM-DD format.", label))
		return nil
	}

	if parsed.After(time.Now()) {
		v.AddError(key, fmt.Sprintf("%s cannot be in the future.", label))
	}

	return &parsed
}

// ValidateBookForm checks a raw book submission, accumulating every
// violated rule on v. On success it returns the normalized book.
// authorExists resolves the author selector; titleTaken reports
// whether the resolved author already has a book with this title,
// compared case-insensitively. It runs whenever both a title and a
// resolved author are available, even alongside other errors, so the
// duplicate shows up in the same combined message. A non-nil error
// reports a lookup failure, not a validation failure.
func ValidateBookForm(v *validator.Validator, form BookForm, authorExists func(id int64) (bool, error), titleTaken func(authorID int64, title string) (bool, error)) (*NewBook, error) {
	title := strings.TrimSpace(form.Title)
	isbn := strings.TrimSpace(form.ISBN)
	rawYear := strings.TrimSpace(form.PublicationYear)
	rawAuthorID := strings.TrimSpace(form.AuthorID)

	v.Check(title != "", "title", "Title is required.")
	v.Check(isbn != "", "isbn", "ISBN is required.")
	v.Check(rawAuthorID != "", "author_id", "An author must be selected.")

	var authorID int64
	authorResolved := false
	if rawAuthorID != "" {
		id, err := strconv.ParseInt(rawAuthorID, 10, 64)
		if err != nil || id < 1 {
			v.AddError("author_id", "The selected author does not exist.")
		} else {
			exists, lookupErr := authorExists(id)
			if lookupErr != nil {
				return nil, lookupErr
			}
			if exists {
				authorID = id
				authorResolved = true
			} else {
				v.AddError("author_id", "The selected author does not exist.")
			}
		}
	}

	if isbn != "" {
		digits := len(stripNonDigits(isbn))
		v.Check(digits == 10 || digits == 13, "isbn", "ISBN must contain exactly 10 or 13 digits.")
	}

	var year *int
	if rawYear != "" {
		if !isDigits(rawYear) {
			v.AddError("publication_year", "Publication year must be a number.")
		} else {
			y, err := strconv.Atoi(rawYear)
			currentYear := time.Now().Year()
			if err != nil || y < minPublicationYear || y > currentYear {
				v.AddError("publication_year", fmt.Sprintf("Publication year must be between %d and %d.", minPublicationYear, currentYear))
			} else {
				year = &y
			}
		}
	}

	if title != "" && authorResolved {
		taken, err := titleTaken(authorID, title)
		if err != nil {
			return nil, err
		}
		if taken {
			v.AddError("title", fmt.Sprintf("This author already has a book titled %q.", title))
		}
	}

	if !v.Valid() {
		return nil, nil
	}

	return &NewBook{Title: title, ISBN: isbn, PublicationYear: year, AuthorID: authorID}, nil
}

// stripNonDigits removes every non-digit character from s, so hyphens
// and spaces in an ISBN do not count against its digit total.
// Stripping an already-digits-only string returns it unchanged.
func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// isDigits reports whether s is non-empty and composed entirely of
// ASCII digits. A leading sign makes a value non-numeric here, same as
// the form treats it.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
