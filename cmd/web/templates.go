// cmd/web/templates.go
// Template cache and rendering helpers. The HTML views themselves are
// embedded from the ui package and are deliberately minimal; all
// interesting behavior lives in the validation and data layers.
package main

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"

	"bookalchemy/internal/data"
	"bookalchemy/ui"
)

// templateData carries everything a view might need. Handlers fill in
// only the fields their page uses.
type templateData struct {
	Message   string         // Combined validation or confirmation message rendered in place
	Flash     string         // One-shot message carried across a redirect
	Query     string         // Current search string, echoed into the search box
	NoResults bool           // True when a non-empty search matched nothing
	Books     []*data.Book   // Listing for the home page
	Authors   []*data.Author // Author choices for the add-book form
	Form      any            // Submitted form values, re-rendered after a failed validation
}

// newTemplateCache parses every page template against the base layout
// once at startup, so a broken template fails the boot instead of the
// first request that hits it.
func newTemplateCache() (map[string]*template.Template, error) {
	cache := map[string]*template.Template{}

	pages, err := fs.Glob(ui.Files, "html/pages/*.tmpl")
	if err != nil {
		return nil, err
	}

	for _, page := range pages {
		name := filepath.Base(page)

		ts, err := template.New(name).ParseFS(ui.Files, "html/base.tmpl", page)
		if err != nil {
			return nil, err
		}

		cache[name] = ts
	}

	return cache, nil
}

// render writes the named page to the client with the given status
// code. The template is executed into a buffer first so a mid-render
// failure becomes a clean 500 instead of a half-written page.
func (app *application) render(w http.ResponseWriter, r *http.Request, status int, page string, td templateData) {
	ts, ok := app.templates[page]
	if !ok {
		app.serverErrorResponse(w, r, fmt.Errorf("template %q does not exist", page))
		return
	}

	buf := new(bytes.Buffer)
	err := ts.ExecuteTemplate(buf, "base", td)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
