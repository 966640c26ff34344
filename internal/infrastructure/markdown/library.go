// Package markdown serves the built-in page bodies used when the CMS has no page for a route.
package markdown

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"AllianceSite/internal/domain"
	"AllianceSite/internal/ports"
)

//go:embed pages/*.md
var embedded embed.FS

type pageMeta struct {
	Title string `yaml:"title"`
	Lead  string `yaml:"lead"`
}

// Library holds pre-rendered pages keyed by slug.
type Library struct {
	pages map[string]domain.StaticPage
}

var _ ports.PageLibrary = (*Library)(nil)

// New loads the pages compiled into the binary.
func New() (*Library, error) {
	sub, err := fs.Sub(embedded, "pages")
	if err != nil {
		return nil, fmt.Errorf("open embedded pages: %w", err)
	}
	return Load(sub)
}

// Load renders every *.md file at the root of fsys. The file name without
// extension is the slug.
func Load(fsys fs.FS) (*Library, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)

	names, err := fs.Glob(fsys, "*.md")
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}

	lib := &Library{pages: make(map[string]domain.StaticPage, len(names))}
	for _, name := range names {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read page %s: %w", name, err)
		}

		var meta pageMeta
		body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
		if err != nil {
			return nil, fmt.Errorf("parse frontmatter of %s: %w", name, err)
		}

		var out bytes.Buffer
		if err := md.Convert(body, &out); err != nil {
			return nil, fmt.Errorf("render page %s: %w", name, err)
		}

		slug := strings.TrimSuffix(name, path.Ext(name))
		title := meta.Title
		if title == "" {
			title = titleFromSlug(slug)
		}

		lib.pages[slug] = domain.StaticPage{
			Slug:  slug,
			Title: title,
			Lead:  meta.Lead,
			HTML:  out.String(),
		}
	}
	return lib, nil
}

// Lookup returns the page for slug.
func (l *Library) Lookup(slug string) (domain.StaticPage, bool) {
	page, ok := l.pages[slug]
	return page, ok
}

// Slugs lists the available pages.
func (l *Library) Slugs() []string {
	slugs := make([]string, 0, len(l.pages))
	for slug := range l.pages {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}

func titleFromSlug(slug string) string {
	words := strings.NewReplacer("-", " ", "_", " ").Replace(slug)
	return cases.Title(language.English).String(words)
}
