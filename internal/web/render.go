package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"fyyur/internal/httpx"
	"fyyur/internal/platform/logging"

	"github.com/sirupsen/logrus"
)

//go:embed all:templates
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// Data is the value handed to a page template.
type Data map[string]any

// Renderer executes the embedded page templates inside the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page once; the result is safe for concurrent use.
// Files whose name starts with "_" are partials available to every page.
func NewRenderer() (*Renderer, error) {
	partials, err := fs.Glob(templateFS, "templates/*/_*.html")
	if err != nil {
		return nil, fmt.Errorf("glob partials: %w", err)
	}

	pages := make(map[string]*template.Template)
	err = fs.WalkDir(templateFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path == layoutFile || !strings.HasSuffix(path, ".html") || strings.HasPrefix(d.Name(), "_") {
			return nil
		}
		name := strings.TrimPrefix(path, "templates/")
		files := append([]string{layoutFile, path}, partials...)
		tmpl, err := template.New(name).Funcs(funcMap).ParseFS(templateFS, files...)
		if err != nil {
			return fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = tmpl
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Renderer{pages: pages}, nil
}

// Render writes the named page with status. Pending flash messages from the
// cookie and from data["Flashes"] are shown together.
func (v *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, name string, data Data) {
	tmpl, ok := v.pages[name]
	if !ok {
		logging.FromContext(r.Context()).Errorf("template not found: %s", name)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if data == nil {
		data = Data{}
	}

	flashes := popFlash(w, r)
	if pending, ok := data["Flashes"].([]Message); ok {
		flashes = append(flashes, pending...)
	}
	data["Flashes"] = flashes
	data["Genres"] = httpx.Genres
	data["States"] = httpx.States

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		logging.FromContext(r.Context()).WithError(err).Errorf("render %s", name)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (v *Renderer) NotFound(w http.ResponseWriter, r *http.Request) {
	v.Render(w, r, http.StatusNotFound, "errors/404.html", nil)
}

// ServerError logs err and renders the 500 page with any flashes attached.
func (v *Renderer) ServerError(w http.ResponseWriter, r *http.Request, err error, flashes ...Message) {
	logging.FromContext(r.Context()).WithError(err).WithFields(logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	}).Error("request failed")
	v.Render(w, r, http.StatusInternalServerError, "errors/500.html", Data{"Flashes": flashes})
}

// Redirect answers a form POST with 303 See Other.
func Redirect(w http.ResponseWriter, r *http.Request, url string) {
	http.Redirect(w, r, url, http.StatusSeeOther)
}
