// Package view renders the HTML pages from templates embedded in the
// binary.  Every page is parsed together with the shared layout and
// partials, and each render drains the pending flash messages into the
// layout.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-booking/internal/flash"
	"github.com/iliyamo/venue-booking/internal/form"
	"github.com/iliyamo/venue-booking/internal/model"
)

//go:embed templates
var files embed.FS

// Date layouts used by the datetime template func.
const (
	MediumLayout = "Mon 01, 02, 2006 3:04PM"
	FullLayout   = "Monday January, 2, 2006 at 3:04PM"
)

// Page is what the layout sees.  Handlers pass their own value, which the
// page templates reach through .Data.
type Page struct {
	Flashes []flash.Message
	Data    any
}

// Renderer implements echo.Renderer.
type Renderer struct {
	pages map[string]*template.Template
	flash *flash.Store
}

// New parses every page.  store may be nil, in which case no flash
// messages are shown.
func New(store *flash.Store) (*Renderer, error) {
	r := &Renderer{pages: map[string]*template.Template{}, flash: store}
	for _, dir := range []string{"pages", "forms", "errors"} {
		matches, err := fs.Glob(files, "templates/"+dir+"/*.html")
		if err != nil {
			return nil, err
		}
		for _, path := range matches {
			t, err := template.New("layout.html").Funcs(funcs).ParseFS(files,
				"templates/layout.html",
				"templates/partials/*.html",
				path,
			)
			if err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
			name := strings.TrimSuffix(strings.TrimPrefix(path, "templates/"), ".html")
			r.pages[name] = t
		}
	}
	return r, nil
}

// Render executes the named page ("pages/venues", "errors/404", ...).
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("view: unknown page %q", name)
	}
	p := Page{Data: data}
	if r.flash != nil && c != nil {
		p.Flashes = r.flash.Pop(c)
	}
	return t.ExecuteTemplate(w, "layout", p)
}

// Has reports whether a page is registered.
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}

var funcs = template.FuncMap{
	"datetime": formatDatetime,
	"hasGenre": func(selected []string, g string) bool {
		for _, s := range selected {
			if s == g {
				return true
			}
		}
		return false
	},
	"join":         strings.Join,
	"genreChoices": func() []string { return model.GenreChoices },
	"states":       func() []string { return form.States },
}

// formatDatetime renders t in UTC with the "medium" or "full" layout.
// Anything other than "full" is treated as medium.
func formatDatetime(t time.Time, format string) string {
	layout := MediumLayout
	if format == "full" {
		layout = FullLayout
	}
	return t.UTC().Format(layout)
}
