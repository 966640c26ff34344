package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"AllianceSite/internal/content"
	"AllianceSite/internal/domain"
	"AllianceSite/internal/ports"
)

const (
	blogPerPage   = 9
	excerptLength = 160
)

// ErrPageNotFound means neither the CMS nor the built-in library has the page.
var ErrPageNotFound = errors.New("page not found")

// SiteDeps wires the driven adapters into the site use case.
type SiteDeps struct {
	Content     ports.ContentSource
	Pages       ports.PageLibrary
	Title       string
	Description string
	AdminURL    string
	MenuID      string
	Logger      *slog.Logger
}

// Site builds the view models rendered by the web layer.
type Site struct {
	content     ports.ContentSource
	pages       ports.PageLibrary
	title       string
	description string
	adminURL    string
	menuID      string
	logger      *slog.Logger
}

// LayoutView is shared by every page.
type LayoutView struct {
	Title       string
	Description string
	AdminURL    string
	Menu        []domain.MenuItem
}

// HomeView backs the landing page.
type HomeView struct {
	Data           domain.HomePageData
	Certifications []domain.Certification
}

// PostSummary is one card of the blog index.
type PostSummary struct {
	Slug          string
	Title         string
	Date          time.Time
	Excerpt       string
	FeaturedMedia *domain.FeaturedMedia
}

// BlogView is one page of the blog index. PrevPage and NextPage are 0 when absent.
type BlogView struct {
	Posts    []PostSummary
	Page     int
	PrevPage int
	NextPage int
}

// PostView is a single post with sanitized body.
type PostView struct {
	Slug          string
	Title         string
	Date          time.Time
	HTML          string
	FeaturedMedia *domain.FeaturedMedia
}

// PageView is a content page, from the CMS or the built-in library.
type PageView struct {
	Slug    string
	Title   string
	Lead    string
	HTML    string
	FromCMS bool
}

// AdminLink is a shortcut into the CMS admin.
type AdminLink struct {
	Label string
	URL   string
}

// AdminView backs the admin shortcut page.
type AdminView struct {
	AdminURL string
	Links    []AdminLink
}

// NewSite constructs the site use case.
func NewSite(deps SiteDeps) *Site {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	menuID := deps.MenuID
	if menuID == "" {
		menuID = domain.MainMenuID
	}
	return &Site{
		content:     deps.Content,
		pages:       deps.Pages,
		title:       deps.Title,
		description: deps.Description,
		adminURL:    strings.TrimRight(deps.AdminURL, "/"),
		menuID:      menuID,
		logger:      logger,
	}
}

// Layout returns the navigation and site metadata.
func (s *Site) Layout(ctx context.Context) LayoutView {
	return LayoutView{
		Title:       s.title,
		Description: s.description,
		AdminURL:    s.adminURL,
		Menu:        s.content.ListMenuItems(ctx, s.menuID),
	}
}

// Home loads the home page data and the certifications in parallel.
func (s *Site) Home(ctx context.Context) HomeView {
	var (
		view HomeView
		wg   sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		view.Data = s.content.GetHomePageData(ctx)
	}()
	go func() {
		defer wg.Done()
		view.Certifications = s.content.ListCertifications(ctx)
	}()
	wg.Wait()

	view.Data.About.Content = content.ParseContent(view.Data.About.Content)
	return view
}

// Blog returns one page of post summaries.
func (s *Site) Blog(ctx context.Context, page int) BlogView {
	if page < 1 {
		page = 1
	}

	posts := s.content.ListPosts(ctx, blogPerPage, page)
	view := BlogView{Posts: make([]PostSummary, 0, len(posts)), Page: page}
	for _, p := range posts {
		view.Posts = append(view.Posts, PostSummary{
			Slug:          p.Slug,
			Title:         content.PlainText(p.Title),
			Date:          p.Date,
			Excerpt:       content.Truncate(content.PlainText(p.Excerpt), excerptLength),
			FeaturedMedia: p.FeaturedMedia,
		})
	}

	if page > 1 {
		view.PrevPage = page - 1
	}
	if len(posts) == blogPerPage {
		view.NextPage = page + 1
	}
	return view
}

// Post returns the post with slug, or nil when there is none.
func (s *Site) Post(ctx context.Context, slug string) *PostView {
	post := s.content.GetPostBySlug(ctx, slug)
	if post == nil {
		return nil
	}
	return &PostView{
		Slug:          post.Slug,
		Title:         content.PlainText(post.Title),
		Date:          post.Date,
		HTML:          content.ParseContent(post.Content),
		FeaturedMedia: post.FeaturedMedia,
	}
}

// StaticPage prefers a CMS page with the slug and falls back to the built-in page.
func (s *Site) StaticPage(ctx context.Context, slug string) (PageView, error) {
	builtin, hasBuiltin := domain.StaticPage{}, false
	if s.pages != nil {
		builtin, hasBuiltin = s.pages.Lookup(slug)
	}

	if page := s.content.GetPageBySlug(ctx, slug); page != nil {
		title := content.PlainText(page.Title)
		if title == "" {
			title = builtin.Title
		}
		s.logger.Debug("serving cms page", "slug", slug)
		return PageView{
			Slug:    slug,
			Title:   title,
			Lead:    builtin.Lead,
			HTML:    content.ParseContent(page.Content),
			FromCMS: true,
		}, nil
	}

	if !hasBuiltin {
		return PageView{}, ErrPageNotFound
	}
	return PageView{
		Slug:  builtin.Slug,
		Title: builtin.Title,
		Lead:  builtin.Lead,
		HTML:  builtin.HTML,
	}, nil
}

// Admin returns the CMS admin URL and its quick links.
func (s *Site) Admin() AdminView {
	return AdminView{
		AdminURL: s.adminURL,
		Links: []AdminLink{
			{Label: "Create New Post", URL: s.adminURL + "/post-new.php"},
			{Label: "Create New Page", URL: s.adminURL + "/post-new.php?post_type=page"},
			{Label: "Media Library", URL: s.adminURL + "/upload.php"},
			{Label: "Manage Certifications", URL: s.adminURL + "/edit.php?post_type=certification"},
		},
	}
}
