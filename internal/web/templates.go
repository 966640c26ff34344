package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"AllianceSite/internal/content"
	"AllianceSite/internal/usecase"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData holds all data passed to templates for rendering.
type PageData struct {
	Title  string
	Active string
	Layout usecase.LayoutView
	Home   *usecase.HomeView
	Blog   *usecase.BlogView
	Post   *usecase.PostView
	Page   *usecase.PageView
	Admin  *usecase.AdminView
}

// TemplateEngine renders embedded page templates inside the shared layout.
type TemplateEngine struct {
	templates map[string]*template.Template
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		// trusted marks CMS markup safe after stripping scripts and comments.
		"trusted": func(html string) template.HTML {
			return template.HTML(content.ParseContent(html))
		},
		"date": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("January 2, 2006")
		},
	}
}

// NewTemplateEngine parses every page together with the layout.
func NewTemplateEngine() (*TemplateEngine, error) {
	funcs := templateFuncs()

	pages := []string{
		"home.html",
		"page.html",
		"blog.html",
		"post.html",
		"admin.html",
		"notfound.html",
	}

	engine := &TemplateEngine{templates: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(
			templateFS,
			"templates/layout.html",
			"templates/"+page,
		)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}
		engine.templates[page] = t
	}
	return engine, nil
}

// Render executes the named page into a buffer first so a template failure
// never leaves a half-written response.
func (e *TemplateEngine) Render(w http.ResponseWriter, status int, name string, data PageData) error {
	t, ok := e.templates[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return fmt.Errorf("executing template %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
