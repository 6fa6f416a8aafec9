// cmd/web/routes.go
package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// routes registers all HTTP endpoints and returns the configured
// router wrapped in the recoverPanic and rateLimit middlewares.
//
// Middleware chain (outermost → innermost):
//
//	recoverPanic → rateLimit → router
//
// Current endpoints:
//
//	GET  /                     – list books, optionally filtered by ?q=
//	GET  /add_author           – render the add-author form
//	POST /add_author           – submit a new author
//	GET  /add_book             – render the add-book form
//	POST /add_book             – submit a new book
//	POST /book/:id/delete      – delete a book (cascading to its author)
func (app *application) routes() http.Handler {
	router := httprouter.New()

	// Override the default httprouter error handlers so missing pages
	// get the dedicated 404 view.
	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.notFoundResponse)

	router.HandlerFunc(http.MethodGet, "/", app.homeHandler)
	router.HandlerFunc(http.MethodGet, "/add_author", app.addAuthorFormHandler)
	router.HandlerFunc(http.MethodPost, "/add_author", app.addAuthorSubmitHandler)
	router.HandlerFunc(http.MethodGet, "/add_book", app.addBookFormHandler)
	router.HandlerFunc(http.MethodPost, "/add_book", app.addBookSubmitHandler)
	router.HandlerFunc(http.MethodPost, "/book/:id/delete", app.deleteBookHandler)

	// recoverPanic is outermost so it catches panics from rateLimit
	// and router alike.
	return app.recoverPanic(app.rateLimit(router))
}
