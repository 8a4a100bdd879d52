// Package render executes server-side HTML templates. Every page
// template is parsed together with the shared base layout at startup;
// a missing template is a programming error and fails fast.
package render

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	templateDir  = "templates"
	baseTemplate = "base.html"
)

type Engine struct {
	templates map[string]*template.Template
	log       *logrus.Logger
}

// New parses all page templates found under templates/ in the given
// filesystem, pairing each with the base layout.
func New(fsys fs.FS, log *logrus.Logger) (*Engine, error) {
	pages, err := fs.Glob(fsys, path.Join(templateDir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	templates := make(map[string]*template.Template)
	for _, page := range pages {
		name := path.Base(page)
		if name == baseTemplate {
			continue
		}
		tmpl, err := template.New(name).Funcs(funcMap).ParseFS(fsys, path.Join(templateDir, baseTemplate), page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		templates[name] = tmpl
	}

	return &Engine{
		templates: templates,
		log:       log,
	}, nil
}

// HTML renders the named page with the base layout. Render errors after
// the first byte cannot be recovered; they are logged and the response
// is left as-is.
func (e *Engine) HTML(w http.ResponseWriter, status int, name string, data interface{}) {
	tmpl, ok := e.templates[name]
	if !ok {
		e.log.Errorf("Unknown template %q", name)
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		e.log.Errorf("Failed to render %s: %+v", name, err)
	}
}

var funcMap = template.FuncMap{
	"upper": strings.ToUpper,
	// hora extracts the HH:MM part of a stored ISO timestamp.
	"hora": func(scheduledAt string) string {
		if len(scheduledAt) >= 16 {
			return scheduledAt[11:16]
		}
		return scheduledAt
	},
	// fecha extracts the calendar-date part of a stored ISO timestamp.
	"fecha": func(scheduledAt string) string {
		if len(scheduledAt) >= 10 {
			return scheduledAt[:10]
		}
		return scheduledAt
	},
}
