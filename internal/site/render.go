package site

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"strings"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.html templates/partials/*.html templates/pages/*.html
var templateFS embed.FS

//go:embed static/css/*.css static/js/*.js
var staticFS embed.FS

// pageNames lists the page templates; each is parsed on top of the layout.
var pageNames = []string{"home", "about", "skills", "projects", "contact", "not_found"}

// pageRenderer implements gin's render.HTMLRender with one template set per
// page, so every page can define its own "content" block.
type pageRenderer struct {
	pages map[string]*template.Template
}

func (r *pageRenderer) Instance(name string, data any) render.Render {
	return render.HTML{
		Template: r.pages[name],
		Name:     "layout",
		Data:     data,
	}
}

func newPageRenderer(fsys fs.FS) (*pageRenderer, error) {
	base, err := template.New("").Funcs(templateFuncs).ParseFS(fsys, "templates/layout.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", name, err)
		}
		if _, err := t.ParseFS(fsys, "templates/pages/"+name+".html"); err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		pages[name] = t
	}
	return &pageRenderer{pages: pages}, nil
}

var templateFuncs = template.FuncMap{
	"dict": dict,
	"icon": icon,
	// tel: is not on html/template's safe scheme list.
	"telURL": func(s string) template.URL {
		if !strings.HasPrefix(s, "tel:") {
			return template.URL("#")
		}
		return template.URL(s)
	},
}

func dict(kv ...any) (map[string]any, error) {
	if len(kv)%2 != 0 {
		return nil, errors.New("dict needs key/value pairs")
	}
	m := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict key %v is not a string", kv[i])
		}
		m[key] = kv[i+1]
	}
	return m, nil
}

const svgOpen = `<svg class="icon" xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true">`

var iconPaths = map[string]string{
	"home":           `<path d="M3 10 12 3l9 7v10a1 1 0 0 1-1 1h-5v-6H9v6H4a1 1 0 0 1-1-1z"/>`,
	"user":           `<circle cx="12" cy="8" r="4"/><path d="M4 21a8 8 0 0 1 16 0"/>`,
	"wrench":         `<path d="M14.7 6.3a4 4 0 0 0 5 5L22 14l-8 8-2.3-2.3a4 4 0 0 0-5-5L2 10l8-8z"/>`,
	"briefcase":      `<rect x="2" y="7" width="20" height="14" rx="2"/><path d="M16 7V5a2 2 0 0 0-2-2h-4a2 2 0 0 0-2 2v2"/>`,
	"mail":           `<rect x="2" y="4" width="20" height="16" rx="2"/><path d="m22 7-10 6L2 7"/>`,
	"phone":          `<path d="M22 16.9v3a2 2 0 0 1-2.2 2 19.8 19.8 0 0 1-8.6-3.1 19.5 19.5 0 0 1-6-6A19.8 19.8 0 0 1 2.1 4.2 2 2 0 0 1 4.1 2h3a2 2 0 0 1 2 1.7l.5 3a2 2 0 0 1-.6 1.8L7.7 9.8a16 16 0 0 0 6 6l1.3-1.3a2 2 0 0 1 1.8-.6l3 .5a2 2 0 0 1 1.7 2z"/>`,
	"map-pin":        `<path d="M20 10c0 6-8 12-8 12S4 16 4 10a8 8 0 0 1 16 0z"/><circle cx="12" cy="10" r="3"/>`,
	"clock":          `<circle cx="12" cy="12" r="10"/><path d="M12 6v6l4 2"/>`,
	"sparkles":       `<path d="m12 3 1.9 5.8L20 11l-6.1 2.2L12 19l-1.9-5.8L4 11l6.1-2.2z"/>`,
	"terminal":       `<path d="m4 17 6-6-6-6"/><path d="M12 19h8"/>`,
	"book-open":      `<path d="M2 4h6a4 4 0 0 1 4 4v13a3 3 0 0 0-3-3H2z"/><path d="M22 4h-6a4 4 0 0 0-4 4v13a3 3 0 0 1 3-3h7z"/>`,
	"brain-circuit":  `<path d="M12 5a3 3 0 1 0-5.9.8A4 4 0 0 0 4 13a4 4 0 0 0 8 5z"/><path d="M12 5a3 3 0 1 1 5.9.8A4 4 0 0 1 20 13a4 4 0 0 1-8 5z"/>`,
	"code":           `<path d="m16 18 6-6-6-6"/><path d="m8 6-6 6 6 6"/>`,
	"globe":          `<circle cx="12" cy="12" r="10"/><path d="M2 12h20"/><path d="M12 2a15 15 0 0 1 0 20 15 15 0 0 1 0-20z"/>`,
	"send":           `<path d="m22 2-7 20-4-9-9-4z"/><path d="M22 2 11 13"/>`,
	"github":         `<path d="M15 22v-4a4.8 4.8 0 0 0-1-3.5c3 0 6-2 6-5.5.1-1.3-.3-2.5-1-3.5.3-1.2.3-2.4 0-3.5 0 0-1 0-3 1.5-2.6-.5-5.4-.5-8 0C6 2 5 2 5 2c-.3 1.1-.3 2.3 0 3.5A5.4 5.4 0 0 0 4 9c0 3.5 3 5.5 6 5.5-.4.5-.7 1.1-.8 1.7-.2.6-.2 1.2-.2 1.8v4"/><path d="M9 18c-4.5 2-5-2-7-2"/>`,
	"linkedin":       `<path d="M16 8a6 6 0 0 1 6 6v7h-4v-7a2 2 0 0 0-4 0v7h-4v-7a6 6 0 0 1 6-6z"/><rect x="2" y="9" width="4" height="12"/><circle cx="4" cy="4" r="2"/>`,
	"arrow-up-right": `<path d="M7 17 17 7"/><path d="M7 7h10v10"/>`,
}

// icon returns inline SVG markup for a known icon name, or nothing.
func icon(name string) template.HTML {
	path, ok := iconPaths[name]
	if !ok {
		return ""
	}
	return template.HTML(svgOpen + path + `</svg>`)
}
