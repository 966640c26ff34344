package wordpress

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AllianceSite/internal/config"
	"AllianceSite/internal/domain"
)

func assertAllDefaults(t *testing.T, client *Client) {
	t.Helper()
	ctx := context.Background()

	assert.Equal(t, domain.DefaultPosts(), client.ListPosts(ctx, 10, 1))
	assert.Nil(t, client.GetPostBySlug(ctx, "hello"))
	assert.Nil(t, client.GetPageBySlug(ctx, "about-us"))
	assert.Equal(t, domain.DefaultMenuItems(), client.ListMenuItems(ctx, "main-menu"))
	assert.Equal(t, domain.DefaultCertifications(), client.ListCertifications(ctx))
	assert.Equal(t, domain.DefaultHomePageData(), client.GetHomePageData(ctx))
}

func TestFallbackWhenDisabled(t *testing.T) {
	t.Parallel()

	cms := newFakeCMS(t)
	client := NewClient(config.WordPressConfig{APIURL: cms.server.URL, Disabled: true}, nil,
		WithHTTPClient(cms.server.Client()))

	assertAllDefaults(t, client)
	assert.Zero(t, cms.probes.Load())
	assert.Zero(t, cms.calls.Load())
}

func TestFallbackWhenUnconfigured(t *testing.T) {
	t.Parallel()

	assertAllDefaults(t, NewClient(config.WordPressConfig{}, nil))
}

func TestFallbackWhenProbeFails(t *testing.T) {
	t.Parallel()

	cms := newFakeCMS(t)
	cms.healthy.Store(false)
	cms.handlePosts(jsonHandler(`[{"id":1,"slug":"hello"}]`))
	client := cms.client()

	assertAllDefaults(t, client)
	assert.EqualValues(t, 1, cms.probes.Load())
	assert.Zero(t, cms.calls.Load())
}

func TestFallbackWhenServerGone(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	assertAllDefaults(t, NewClient(config.WordPressConfig{APIURL: url, ProbeTimeout: time.Second}, nil))
}

func TestListPosts(t *testing.T) {
	t.Parallel()

	cms := newFakeCMS(t)
	cms.handlePosts(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "5", q.Get("per_page"))
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "wp:featuredmedia", q.Get("_embed"))
		writeJSON(w, `[
			{
				"id": 7,
				"title": {"rendered": "First &amp; Foremost"},
				"content": {"rendered": "<p>Body</p>"},
				"excerpt": {"rendered": "<p>Short</p>"},
				"date": "2024-03-05T10:20:30",
				"slug": "first",
				"featured_media": 12,
				"_embedded": {"wp:featuredmedia": [{"source_url": "https://cdn/x.png", "alt_text": "X"}]}
			},
			{
				"id": 8,
				"title": {"rendered": "Second"},
				"slug": "second",
				"date": "not a date",
				"_embedded": {"wp:featuredmedia": [{"code": "rest_forbidden"}]}
			}
		]`)
	})

	posts := cms.client().ListPosts(context.Background(), 5, 2)
	require.Len(t, posts, 2)

	first := posts[0]
	assert.Equal(t, 7, first.ID)
	assert.Equal(t, "First &amp; Foremost", first.Title)
	assert.Equal(t, "<p>Body</p>", first.Content)
	assert.Equal(t, "<p>Short</p>", first.Excerpt)
	assert.Equal(t, "first", first.Slug)
	assert.Equal(t, time.Date(2024, time.March, 5, 10, 20, 30, 0, time.UTC), first.Date)
	require.NotNil(t, first.FeaturedMedia)
	assert.Equal(t, domain.FeaturedMedia{SourceURL: "https://cdn/x.png", AltText: "X"}, *first.FeaturedMedia)

	second := posts[1]
	assert.Empty(t, second.Content)
	assert.True(t, second.Date.IsZero())
	assert.Nil(t, second.FeaturedMedia)
}

func TestListPostsClampsPaging(t *testing.T) {
	t.Parallel()

	cms := newFakeCMS(t)
	cms.handlePosts(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10", r.URL.Query().Get("per_page"))
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		writeJSON(w, `[{"id":1,"slug":"a"}]`)
	})

	assert.Len(t, cms.client().ListPosts(context.Background(), 0, -3), 1)
}

func TestListEmptyCollapsesToDefault(t *testing.T) {
	t.Parallel()

	empty := newFakeCMS(t)
	empty.handlePosts(jsonHandler(`[]`))
	empty.handle(certsPath, jsonHandler(`[]`))
	empty.handle(menuPath, jsonHandler(`{"items": []}`))

	failing := newFakeCMS(t)
	failing.handlePosts(statusHandler(http.StatusInternalServerError))
	failing.handle(certsPath, statusHandler(http.StatusInternalServerError))
	failing.handle(menuPath, statusHandler(http.StatusInternalServerError))

	ctx := context.Background()
	emptyClient, failingClient := empty.client(), failing.client()

	assert.Equal(t, failingClient.ListPosts(ctx, 10, 1), emptyClient.ListPosts(ctx, 10, 1))
	assert.Equal(t, failingClient.ListCertifications(ctx), emptyClient.ListCertifications(ctx))
	assert.Equal(t, failingClient.ListMenuItems(ctx, "main-menu"), emptyClient.ListMenuItems(ctx, "main-menu"))
	assert.Equal(t, domain.DefaultMenuItems(), emptyClient.ListMenuItems(ctx, "main-menu"))
	assert.Equal(t, domain.DefaultCertifications(), emptyClient.ListCertifications(ctx))
}

func TestMalformedPayloadFallsBack(t *testing.T) {
	t.Parallel()

	cms := newFakeCMS(t)
	cms.handlePosts(jsonHandler(`{"not": "a list"`))
	cms.handle(menuPath, jsonHandler(`[1, 2, 3]`))
	cms.handle(pagesPath, jsonHandler(`<html>maintenance</html>`))
	client := cms.client()
	ctx := context.Background()

	assert.Equal(t, domain.DefaultPosts(), client.ListPosts(ctx, 10, 1))
	assert.Nil(t, client.GetPostBySlug(ctx, "x"))
	assert.Equal(t, domain.DefaultMenuItems(), client.ListMenuItems(ctx, "main-menu"))
	assert.Equal(t, domain.DefaultHomePageData(), client.GetHomePageData(ctx))
}

func TestRequestTimeoutFallsBack(t *testing.T) {
	t.Parallel()

	cms := newFakeCMS(t)
	cms.handle(certsPath, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	client := NewClient(config.WordPressConfig{APIURL: cms.server.URL, RequestTimeout: 50 * time.Millisecond}, nil,
		WithHTTPClient(cms.server.Client()))

	start := time.Now()
	assert.Equal(t, domain.DefaultCertifications(), client.ListCertifications(context.Background()))
	assert.Less(t, time.Since(start), time.Second)
}

func TestGetPostBySlug(t *testing.T) {
	t.Parallel()

	cms := newFakeCMS(t)
	cms.handlePosts(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "wp:featuredmedia", q.Get("_embed"))
		if q.Get("slug") == "hello-world" {
			writeJSON(w, `[{"id": 3, "slug": "hello-world", "title": {"rendered": "Hello"}}, {"id": 4, "slug": "dup"}]`)
			return
		}
		writeJSON(w, `[]`)
	})
	client := cms.client()
	ctx := context.Background()

	post := client.GetPostBySlug(ctx, "hello-world")
	require.NotNil(t, post)
	assert.Equal(t, 3, post.ID)
	assert.Equal(t, "Hello", post.Title)

	assert.Nil(t, client.GetPostBySlug(ctx, "missing"))
}

func TestGetPageBySlug(t *testing.T) {
	t.Parallel()

	cms := newFakeCMS(t)
	cms.handle(pagesPath, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("slug") {
		case "with-fields":
			writeJSON(w, `[{"id": 1, "slug": "with-fields", "title": {"rendered": "T"}, "content": {"rendered": "<p>c</p>"}, "acf": {"subtitle": "s", "count": 2}}]`)
		case "no-fields":
			writeJSON(w, `[{"id": 2, "slug": "no-fields", "acf": false}]`)
		case "empty-fields":
			writeJSON(w, `[{"id": 3, "slug": "empty-fields", "acf": []}]`)
		default:
			writeJSON(w, `[]`)
		}
	})
	client := cms.client()
	ctx := context.Background()

	page := client.GetPageBySlug(ctx, "with-fields")
	require.NotNil(t, page)
	assert.Equal(t, "T", page.Title)
	assert.Equal(t, "<p>c</p>", page.Content)
	assert.Equal(t, map[string]any{"subtitle": "s", "count": float64(2)}, page.Fields)

	page = client.GetPageBySlug(ctx, "no-fields")
	require.NotNil(t, page)
	assert.Nil(t, page.Fields)

	page = client.GetPageBySlug(ctx, "empty-fields")
	require.NotNil(t, page)
	assert.Nil(t, page.Fields)

	assert.Nil(t, client.GetPageBySlug(ctx, "absent"))
}

func TestListMenuItemsShapes(t *testing.T) {
	t.Parallel()

	cms := newFakeCMS(t)
	cms.handle(menuPath, jsonHandler(`{
		"term_id": 2,
		"items": [
			{"ID": 20, "title": "About", "url": "/about-us", "menu_order": "2", "menu_item_parent": "0",
			 "child_items": [
				{"ID": 22, "title": "Team", "url": "/about-us#team", "menu_order": 4, "menu_item_parent": "20"},
				{"ID": 21, "title": "Mission", "url": "/about-us#mission", "menu_order": 3, "menu_item_parent": "20"}
			 ]},
			{"id": 10, "title": {"rendered": "Blog"}, "url": "/blog", "order": 1, "parent": 0}
		]
	}`))

	items := cms.client().ListMenuItems(context.Background(), "main-menu")

	want := []domain.MenuItem{
		{ID: 10, Title: "Blog", URL: "/blog", Order: 1},
		{ID: 20, Title: "About", URL: "/about-us", Order: 2, Children: []domain.MenuItem{
			{ID: 21, Title: "Mission", URL: "/about-us#mission", Order: 3, Parent: 20},
			{ID: 22, Title: "Team", URL: "/about-us#team", Order: 4, Parent: 20},
		}},
	}
	assert.Equal(t, want, items)
}

func TestListMenuItemsMissingItemsKey(t *testing.T) {
	t.Parallel()

	cms := newFakeCMS(t)
	cms.handle(menuPath, jsonHandler(`{"code": "rest_no_route"}`))

	assert.Equal(t, domain.DefaultMenuItems(), cms.client().ListMenuItems(context.Background(), "main-menu"))
}

func TestListCertifications(t *testing.T) {
	t.Parallel()

	cms := newFakeCMS(t)
	cms.handle(certsPath, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		writeJSON(w, `[
			{"id": 11, "title": {"rendered": "Certified Example Leader"}, "excerpt": {"rendered": "<p>From excerpt</p>"}, "acf": false},
			{"id": 12, "title": {"rendered": "Other Track"}, "acf": {"short_name": "OTX", "description": "From ACF", "for_who": "Managers"}},
			{"id": 13}
		]`)
	})

	certs := cms.client().ListCertifications(context.Background())

	want := []domain.Certification{
		{ID: 11, Title: "Certified Example Leader", ShortName: "CEL", Description: "<p>From excerpt</p>"},
		{ID: 12, Title: "Other Track", ShortName: "OTX", Description: "From ACF", ForWho: "Managers"},
		{ID: 13},
	}
	assert.Equal(t, want, certs)
}

func TestListCertificationsMissingPostType(t *testing.T) {
	t.Parallel()

	cms := newFakeCMS(t)
	cms.handle(certsPath, statusHandler(http.StatusNotFound))

	assert.Equal(t, domain.DefaultCertifications(), cms.client().ListCertifications(context.Background()))
}

func TestGetHomePageDataWithoutCustomFields(t *testing.T) {
	t.Parallel()

	cms := newFakeCMS(t)
	cms.handle(pagesPath, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "home", r.URL.Query().Get("slug"))
		writeJSON(w, `[{"id": 1, "slug": "home", "content": {"rendered": "<p>Hi</p>"}}]`)
	})

	got := cms.client().GetHomePageData(context.Background())

	want := domain.DefaultHomePageData()
	want.About.Content = "<p>Hi</p>"
	assert.Equal(t, want, got)
}

func TestGetHomePageDataPerFieldFallback(t *testing.T) {
	t.Parallel()

	cms := newFakeCMS(t)
	cms.handle(pagesPath, jsonHandler(`[{
		"id": 1,
		"slug": "home",
		"content": {"rendered": "<p>Body</p>"},
		"acf": {
			"hero_title": "Live Title",
			"hero_button_text": "",
			"about_title": "About Live",
			"why_us_items": [{"id": 9, "text": "Only reason"}, {"text": "Second"}, {"id": 3, "text": ""}]
		}
	}]`))

	got := cms.client().GetHomePageData(context.Background())
	defaults := domain.DefaultHomePageData()

	assert.Equal(t, "Live Title", got.Hero.Title)
	assert.Equal(t, defaults.Hero.Subtitle, got.Hero.Subtitle)
	assert.Equal(t, defaults.Hero.ButtonText, got.Hero.ButtonText)
	assert.Equal(t, "About Live", got.About.Title)
	assert.Equal(t, "<p>Body</p>", got.About.Content)
	assert.Equal(t, defaults.WhyUs.Title, got.WhyUs.Title)
	assert.Equal(t, []domain.WhyUsItem{{ID: 9, Text: "Only reason"}, {ID: 2, Text: "Second"}}, got.WhyUs.Items)
}

func TestGetHomePageDataMalformedRepeater(t *testing.T) {
	t.Parallel()

	cms := newFakeCMS(t)
	cms.handle(pagesPath, jsonHandler(`[{"id": 1, "slug": "home", "acf": {"why_us_items": "nope", "about_content": "<p>ACF</p>"}}]`))

	got := cms.client().GetHomePageData(context.Background())

	assert.Equal(t, domain.DefaultWhyUsItems(), got.WhyUs.Items)
	assert.Equal(t, "<p>ACF</p>", got.About.Content)
}

func TestGetHomePageDataNotFound(t *testing.T) {
	t.Parallel()

	cms := newFakeCMS(t)
	cms.handle(pagesPath, jsonHandler(`[]`))

	assert.Equal(t, domain.DefaultHomePageData(), cms.client().GetHomePageData(context.Background()))
}

func TestDefaultsAreFreshValues(t *testing.T) {
	t.Parallel()

	client := NewClient(config.WordPressConfig{Disabled: true}, nil)
	ctx := context.Background()

	items := client.ListMenuItems(ctx, "main-menu")
	items[0].Title = "mutated"
	home := client.GetHomePageData(ctx)
	home.WhyUs.Items[0].Text = "mutated"

	assert.Equal(t, domain.DefaultMenuItems(), client.ListMenuItems(ctx, "main-menu"))
	assert.Equal(t, domain.DefaultHomePageData(), client.GetHomePageData(ctx))
}
