package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"AllianceSite/internal/usecase"
)

var staticPages = []string{"about-us", "compliance", "learning", "resources"}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, data PageData) {
	data.Layout = s.site.Layout(r.Context())
	if err := s.templates.Render(w, status, name, data); err != nil {
		s.logger.Error("render failed", "template", name, "path", r.URL.Path, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	home := s.site.Home(r.Context())
	s.render(w, r, http.StatusOK, "home.html", PageData{Active: "/", Home: &home})
}

func (s *Server) handleStaticPage(slug string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := s.site.StaticPage(r.Context(), slug)
		if errors.Is(err, usecase.ErrPageNotFound) {
			s.handleNotFound(w, r)
			return
		}
		if err != nil {
			s.logger.Error("load page failed", "slug", slug, "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		s.render(w, r, http.StatusOK, "page.html", PageData{Title: page.Title, Active: "/" + slug, Page: &page})
	}
}

func (s *Server) handleBlog(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	blog := s.site.Blog(r.Context(), page)
	s.render(w, r, http.StatusOK, "blog.html", PageData{Title: "Blog", Active: "/blog", Blog: &blog})
}

func (s *Server) handlePost(w http.ResponseWriter, r *http.Request) {
	post := s.site.Post(r.Context(), chi.URLParam(r, "slug"))
	if post == nil {
		s.handleNotFound(w, r)
		return
	}
	s.render(w, r, http.StatusOK, "post.html", PageData{Title: post.Title, Active: "/blog", Post: post})
}

func (s *Server) handleAdmin(w http.ResponseWriter, r *http.Request) {
	admin := s.site.Admin()
	s.render(w, r, http.StatusOK, "admin.html", PageData{Title: "Admin Dashboard", Admin: &admin})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusNotFound, "notfound.html", PageData{Title: "Page not found"})
}
