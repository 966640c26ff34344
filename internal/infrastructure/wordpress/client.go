package wordpress

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"AllianceSite/internal/config"
	"AllianceSite/internal/domain"
	"AllianceSite/internal/ports"
)

const (
	userAgent = "AllianceSite/1.0"

	defaultProbeTimeout   = 3 * time.Second
	defaultRequestTimeout = 5 * time.Second
	defaultPerPage        = 10
	certificationsPerPage = 100
)

// Client reads content from the WordPress REST API and falls back to built-in
// defaults whenever the backend cannot answer.
type Client struct {
	rawURL         string
	baseURL        string
	menuURL        string
	disabled       bool
	probeTimeout   time.Duration
	requestTimeout time.Duration

	http   *http.Client
	state  *AvailabilityCell
	logger *slog.Logger
}

var (
	_ ports.ContentSource       = (*Client)(nil)
	_ ports.AvailabilityChecker = (*Client)(nil)
	_ ports.ConnectionTester    = (*Client)(nil)
)

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default transport. Timeouts are still enforced per call.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// WithAvailability injects the cell holding the memoized probe verdict.
func WithAvailability(cell *AvailabilityCell) Option {
	return func(c *Client) {
		if cell != nil {
			c.state = cell
		}
	}
}

// NewClient wires a client from configuration.
func NewClient(cfg config.WordPressConfig, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	base := NormalizeBaseURL(cfg.APIURL)
	c := &Client{
		rawURL:         cfg.APIURL,
		baseURL:        base,
		menuURL:        MenuBaseURL(base),
		disabled:       cfg.Disabled,
		probeTimeout:   positiveOr(cfg.ProbeTimeout, defaultProbeTimeout),
		requestTimeout: positiveOr(cfg.RequestTimeout, defaultRequestTimeout),
		http:           &http.Client{},
		state:          NewAvailabilityCell(),
		logger:         logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the normalized REST root, empty when unconfigured.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListPosts returns one page of posts with their featured media embedded.
func (c *Client) ListPosts(ctx context.Context, perPage, page int) []domain.Post {
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if page < 1 {
		page = 1
	}

	return listOrFallback(ctx, c, request[domain.Post]{
		op:       "ListPosts",
		endpoint: c.baseURL + "/posts",
		query:    listQuery(perPage, page),
		params:   []any{"per_page", perPage, "page", page},
		decode:   decodePosts,
	}, domain.DefaultPosts)
}

// GetPostBySlug returns the post with the given slug, or nil.
func (c *Client) GetPostBySlug(ctx context.Context, slug string) *domain.Post {
	return firstOrNil(ctx, c, request[domain.Post]{
		op:       "GetPostBySlug",
		endpoint: c.baseURL + "/posts",
		query:    slugQuery(slug, true),
		params:   []any{"slug", slug},
		decode:   decodePosts,
	})
}

// GetPageBySlug returns the page with the given slug, or nil.
func (c *Client) GetPageBySlug(ctx context.Context, slug string) *domain.Page {
	return firstOrNil(ctx, c, request[domain.Page]{
		op:       "GetPageBySlug",
		endpoint: c.baseURL + "/pages",
		query:    slugQuery(slug, false),
		params:   []any{"slug", slug},
		decode:   decodePages,
	})
}

// ListMenuItems returns the items of a menu from the menus plugin.
func (c *Client) ListMenuItems(ctx context.Context, menuID string) []domain.MenuItem {
	return listOrFallback(ctx, c, request[domain.MenuItem]{
		op:       "ListMenuItems",
		endpoint: c.menuURL + "/" + url.PathEscape(menuID),
		params:   []any{"menu_id", menuID},
		decode:   decodeMenu,
	}, domain.DefaultMenuItems)
}

// ListCertifications reads the "certification" custom post type.
func (c *Client) ListCertifications(ctx context.Context) []domain.Certification {
	req := request[domain.Certification]{
		op:       "ListCertifications",
		endpoint: c.baseURL + "/certification",
		query:    url.Values{"per_page": {strconv.Itoa(certificationsPerPage)}},
		decode:   decodeCertifications,
	}

	certs, err := fetch(ctx, c, req)
	if err != nil {
		if IsNotFound(err) {
			c.logger.Warn("certification post type not found, using default certifications")
		} else {
			c.logFallback(req.op, req.params, err)
		}
		return domain.DefaultCertifications()
	}
	return certs
}

// GetHomePageData assembles the home page from the custom fields of the "home" page.
func (c *Client) GetHomePageData(ctx context.Context) domain.HomePageData {
	page := firstOrNil(ctx, c, request[domain.Page]{
		op:       "GetHomePageData",
		endpoint: c.baseURL + "/pages",
		query:    slugQuery(domain.HomePageSlug, false),
		params:   []any{"slug", domain.HomePageSlug},
		decode:   decodePages,
	})
	return homePageFrom(page)
}

func positiveOr(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return fallback
}
