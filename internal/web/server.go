package web

import (
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"AllianceSite/internal/ports"
	"AllianceSite/internal/resource"
	"AllianceSite/internal/usecase"
)

// Deps wires the use cases into the HTTP layer.
type Deps struct {
	Site      *usecase.Site
	Resources *resource.Registry
	Tester    ports.ConnectionTester
	Logger    *slog.Logger
}

// Server serves the site pages and the JSON endpoints behind a chi router.
type Server struct {
	site      *usecase.Site
	resources *resource.Registry
	tester    ports.ConnectionTester
	templates *TemplateEngine
	router    chi.Router
	logger    *slog.Logger
}

// NewServer parses the templates and sets up routing.
func NewServer(deps Deps) (*Server, error) {
	if deps.Site == nil {
		return nil, fmt.Errorf("site use case must not be nil")
	}

	tmpl, err := NewTemplateEngine()
	if err != nil {
		return nil, fmt.Errorf("initializing templates: %w", err)
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Server{
		site:      deps.Site,
		resources: deps.Resources,
		tester:    deps.Tester,
		templates: tmpl,
		logger:    logger,
	}
	s.router = s.buildRouter()
	return s, nil
}

// ServeHTTP delegates to the chi router, satisfying http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleHome)
	for _, slug := range staticPages {
		r.Get("/"+slug, s.handleStaticPage(slug))
	}
	r.Get("/blog", s.handleBlog)
	r.Get("/blog/{slug}", s.handlePost)
	r.Get("/admin", s.handleAdmin)

	r.Get("/health", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/wordpress", s.handleContentAPI)
		r.Get("/wordpress-test", s.handleConnectionTest)
	})

	staticRoot, err := fs.Sub(staticFS, "static")
	if err != nil {
		s.logger.Warn("failed to create static sub-FS", "error", err)
	} else {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticRoot))))
	}

	r.NotFound(s.handleNotFound)
	return r
}
