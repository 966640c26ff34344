package wordpress

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"AllianceSite/internal/config"
)

const (
	postsPath = "/wp-json/wp/v2/posts"
	pagesPath = "/wp-json/wp/v2/pages"
	certsPath = "/wp-json/wp/v2/certification"
	menuPath  = "/wp-json/menus/v1/menus/main-menu"
)

// fakeCMS answers the availability probe and serves whatever routes a test registers.
type fakeCMS struct {
	server  *httptest.Server
	mux     *http.ServeMux
	healthy atomic.Bool
	probes  atomic.Int32
	calls   atomic.Int32
	posts   atomic.Pointer[http.HandlerFunc]
}

func newFakeCMS(t *testing.T) *fakeCMS {
	t.Helper()

	cms := &fakeCMS{mux: http.NewServeMux()}
	cms.healthy.Store(true)
	cms.mux.HandleFunc(postsPath, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("_embed") == "" && q.Get("slug") == "" && q.Get("per_page") == "1" {
			cms.probes.Add(1)
			if !cms.healthy.Load() {
				http.Error(w, "down", http.StatusServiceUnavailable)
				return
			}
			writeJSON(w, `[]`)
			return
		}
		cms.calls.Add(1)
		h := cms.posts.Load()
		if h == nil {
			http.NotFound(w, r)
			return
		}
		(*h)(w, r)
	})

	cms.server = httptest.NewServer(cms.mux)
	t.Cleanup(cms.server.Close)
	return cms
}

func (f *fakeCMS) handlePosts(h http.HandlerFunc) {
	f.posts.Store(&h)
}

func (f *fakeCMS) handle(path string, h http.HandlerFunc) {
	f.mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		h(w, r)
	})
}

func (f *fakeCMS) client(opts ...Option) *Client {
	return NewClient(config.WordPressConfig{
		APIURL:         f.server.URL,
		ProbeTimeout:   time.Second,
		RequestTimeout: time.Second,
	}, nil, append([]Option{WithHTTPClient(f.server.Client())}, opts...)...)
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func jsonHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, body)
	}
}

func statusHandler(code int) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, http.StatusText(code), code)
	}
}
