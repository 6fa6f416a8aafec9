// cmd/web/errors.go
// This file contains the error-page helpers for the application.
// Unlike an API, failures here render dedicated HTML views.
package main

import (
	"bytes"
	"log/slog"
	"net/http"
)

// logError logs an internal error at ERROR level with the request
// method and URL for context.
func (app *application) logError(r *http.Request, err error) {
	app.logger.Error(err.Error(),
		slog.String("request_method", r.Method),
		slog.String("request_url", r.URL.String()),
	)
}

// renderErrorPage executes an error view directly, bypassing render()
// so a broken error template cannot recurse. Falls back to a plain
// text response if even that fails.
func (app *application) renderErrorPage(w http.ResponseWriter, status int, page string) {
	ts, ok := app.templates[page]
	if !ok {
		http.Error(w, http.StatusText(status), status)
		return
	}

	buf := new(bytes.Buffer)
	if err := ts.ExecuteTemplate(buf, "base", templateData{}); err != nil {
		http.Error(w, http.StatusText(status), status)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// serverErrorResponse logs a 500-level error and renders the generic
// failure page. Internal error details are never exposed to the
// client.
func (app *application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	app.renderErrorPage(w, http.StatusInternalServerError, "500.tmpl")
}

// notFoundResponse renders the dedicated 404 view.
func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.renderErrorPage(w, http.StatusNotFound, "404.tmpl")
}

// rateLimitExceededResponse sends a plain 429 Too Many Requests error.
func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
}
