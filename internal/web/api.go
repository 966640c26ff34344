package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"AllianceSite/internal/resource"
)

const (
	defaultAPIPage    = 1
	defaultAPIPerPage = 10
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleContentAPI exposes the content operations as JSON, dispatched by ?type=.
func (s *Server) handleContentAPI(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	name := q.Get("type")

	if s.resources == nil {
		s.writeError(w, http.StatusServiceUnavailable, "content api is not configured")
		return
	}

	resolver, err := s.resources.Resolve(name)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid type parameter")
		return
	}

	data, err := resolver.Resolve(r.Context(), resource.Query{
		Slug:    q.Get("slug"),
		Page:    intParam(q.Get("page"), defaultAPIPage),
		PerPage: intParam(q.Get("per_page"), defaultAPIPerPage),
		MenuID:  q.Get("menu"),
	})
	switch {
	case errors.Is(err, resource.ErrSlugRequired):
		s.writeError(w, http.StatusBadRequest, "Slug is required")
	case err != nil:
		s.logger.Error("content api failed", "type", name, "error", err)
		s.writeError(w, http.StatusInternalServerError, "Failed to fetch data")
	default:
		s.writeJSON(w, http.StatusOK, data)
	}
}

// handleConnectionTest runs an ad hoc CMS probe and mirrors its status.
func (s *Server) handleConnectionTest(w http.ResponseWriter, r *http.Request) {
	if s.tester == nil {
		s.writeError(w, http.StatusServiceUnavailable, "connection test is not configured")
		return
	}
	report, status := s.tester.TestConnection(r.Context())
	s.writeJSON(w, status, report)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Warn("encode response failed", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

func intParam(raw string, fallback int) int {
	if v, err := strconv.Atoi(raw); err == nil && v > 0 {
		return v
	}
	return fallback
}
