// cmd/web/handlers.go
// This file contains all HTTP request handlers. Each handler is a
// method on *application and only wires form decoding to the
// validation functions and the data layer; the interesting rules live
// in internal/data.
package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"bookalchemy/internal/data"
	"bookalchemy/internal/validator"
)

// conflictMessage is shown when a write slips past the validation
// pre-checks but is rejected by a database constraint, e.g. two
// submissions racing for the same author name or ISBN.
const conflictMessage = "That record conflicts with one that already exists. Please check your input and try again."

// homeHandler handles GET /. It lists all books, optionally filtered
// by the ?q= title substring, and shows any pending flash message left
// by a redirecting handler.
func (app *application) homeHandler(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(app.readString(r.URL.Query(), "q", ""))

	books, err := app.models.Books.Find(r.Context(), query)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.render(w, r, http.StatusOK, "home.tmpl", templateData{
		Flash:     app.popFlash(w, r),
		Query:     query,
		NoResults: query != "" && len(books) == 0,
		Books:     books,
	})
}

// addAuthorFormHandler handles GET /add_author.
func (app *application) addAuthorFormHandler(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusOK, "author_form.tmpl", templateData{
		Form: data.AuthorForm{},
	})
}

// addAuthorSubmitHandler handles POST /add_author. It validates the
// submission, re-rendering the form with the combined error message on
// failure, and creates the author on success.
func (app *application) addAuthorSubmitHandler(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	form := data.AuthorForm{
		Name:        r.PostFormValue("name"),
		BirthDate:   r.PostFormValue("birth_date"),
		DateOfDeath: r.PostFormValue("date_of_death"),
	}

	v := validator.New()
	nameTaken := func(name string) (bool, error) {
		return app.models.Authors.ExistsByName(r.Context(), name)
	}

	newAuthor, err := data.ValidateAuthorForm(v, form, nameTaken)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	if !v.Valid() {
		app.render(w, r, http.StatusUnprocessableEntity, "author_form.tmpl", templateData{
			Message: v.Joined(),
			Form:    form,
		})
		return
	}

	author := &data.Author{
		Name:        newAuthor.Name,
		BirthDate:   newAuthor.BirthDate,
		DateOfDeath: newAuthor.DateOfDeath,
	}

	err = app.models.Authors.Insert(r.Context(), author)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrConstraintViolation):
			app.render(w, r, http.StatusUnprocessableEntity, "author_form.tmpl", templateData{
				Message: conflictMessage,
				Form:    form,
			})
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.render(w, r, http.StatusOK, "author_form.tmpl", templateData{
		Message: fmt.Sprintf("Author %q added.", author.Name),
		Form:    data.AuthorForm{},
	})
}

// addBookFormHandler handles GET /add_book. The form needs the full
// author list for its selector.
func (app *application) addBookFormHandler(w http.ResponseWriter, r *http.Request) {
	authors, err := app.models.Authors.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.render(w, r, http.StatusOK, "book_form.tmpl", templateData{
		Authors: authors,
		Form:    data.BookForm{},
	})
}

// addBookSubmitHandler handles POST /add_book. Same shape as the
// author submission: validate, re-render on failure, insert on
// success.
func (app *application) addBookSubmitHandler(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	authors, err := app.models.Authors.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	form := data.BookForm{
		Title:           r.PostFormValue("title"),
		ISBN:            r.PostFormValue("isbn"),
		PublicationYear: r.PostFormValue("publication_year"),
		AuthorID:        r.PostFormValue("author_id"),
	}

	v := validator.New()
	authorExists := func(id int64) (bool, error) {
		_, err := app.models.Authors.Get(r.Context(), id)
		switch {
		case err == nil:
			return true, nil
		case errors.Is(err, data.ErrRecordNotFound):
			return false, nil
		default:
			return false, err
		}
	}
	titleTaken := func(authorID int64, title string) (bool, error) {
		return app.models.Books.ExistsTitleForAuthor(r.Context(), authorID, title)
	}

	newBook, err := data.ValidateBookForm(v, form, authorExists, titleTaken)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	if !v.Valid() {
		app.render(w, r, http.StatusUnprocessableEntity, "book_form.tmpl", templateData{
			Message: v.Joined(),
			Authors: authors,
			Form:    form,
		})
		return
	}

	book := &data.Book{
		ISBN:            newBook.ISBN,
		Title:           newBook.Title,
		PublicationYear: newBook.PublicationYear,
		AuthorID:        newBook.AuthorID,
	}

	err = app.models.Books.Insert(r.Context(), book)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrConstraintViolation):
			app.render(w, r, http.StatusUnprocessableEntity, "book_form.tmpl", templateData{
				Message: conflictMessage,
				Authors: authors,
				Form:    form,
			})
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.render(w, r, http.StatusOK, "book_form.tmpl", templateData{
		Message: fmt.Sprintf("Book %q added.", book.Title),
		Authors: authors,
		Form:    data.BookForm{},
	})
}

// deleteBookHandler handles POST /book/:id/delete. It deletes the book
// (and its author, when that was the author's last book), leaves the
// confirmation in the flash cookie, and redirects to the home page.
// Responds with the 404 view if no book with that id exists.
func (app *application) deleteBookHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	outcome, err := app.models.Books.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	if outcome.AuthorDeleted {
		app.setFlash(w, fmt.Sprintf("Deleted %q and removed author %q (no remaining books).", outcome.BookTitle, outcome.AuthorName))
	} else {
		app.setFlash(w, fmt.Sprintf("Deleted %q.", outcome.BookTitle))
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
