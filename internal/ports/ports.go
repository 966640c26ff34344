package ports

import (
	"context"
	"time"

	"AllianceSite/internal/domain"
)

// ContentSource reads CMS content. Implementations never fail: they fall back to
// built-in defaults for lists and composites and to nil for single lookups.
type ContentSource interface {
	ListPosts(ctx context.Context, perPage, page int) []domain.Post
	GetPostBySlug(ctx context.Context, slug string) *domain.Post
	GetPageBySlug(ctx context.Context, slug string) *domain.Page
	ListMenuItems(ctx context.Context, menuID string) []domain.MenuItem
	ListCertifications(ctx context.Context) []domain.Certification
	GetHomePageData(ctx context.Context) domain.HomePageData
}

// AvailabilityChecker reports whether the CMS can be used.
type AvailabilityChecker interface {
	IsAvailable(ctx context.Context) bool
	// Reprobe discards the memoized result and probes again.
	Reprobe(ctx context.Context) bool
}

// ConnectionTester runs a one-off CMS probe that ignores the memoized availability.
// The returned int is the HTTP status to report to the caller.
type ConnectionTester interface {
	TestConnection(ctx context.Context) (domain.ConnectionReport, int)
}

// PageLibrary serves built-in page bodies for routes that have no CMS page.
type PageLibrary interface {
	Lookup(slug string) (domain.StaticPage, bool)
}

// Scheduler controls when periodic jobs execute.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
