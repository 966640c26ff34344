package resource

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"AllianceSite/internal/domain"
	"AllianceSite/internal/ports"
)

var (
	// ErrUnknownType is returned for a resource name nobody registered.
	ErrUnknownType = errors.New("invalid content type")
	// ErrSlugRequired is returned by single-item resolvers called without a slug.
	ErrSlugRequired = errors.New("slug parameter is required")
)

// Query carries every parameter a resolver may read.
type Query struct {
	Slug    string
	Page    int
	PerPage int
	MenuID  string
}

// Resolver serves one resource type of the JSON API.
type Resolver interface {
	Name() string
	Resolve(ctx context.Context, q Query) (any, error)
}

// Registry keeps a mapping from resource names to their resolvers.
type Registry struct {
	resolvers map[string]Resolver
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{resolvers: map[string]Resolver{}}
}

// NewContentRegistry registers the built-in resolvers over a content source.
func NewContentRegistry(source ports.ContentSource) *Registry {
	r := NewRegistry()
	r.Register(Func("posts", func(ctx context.Context, q Query) (any, error) {
		return source.ListPosts(ctx, q.PerPage, q.Page), nil
	}))
	r.Register(Func("post", func(ctx context.Context, q Query) (any, error) {
		if q.Slug == "" {
			return nil, ErrSlugRequired
		}
		return source.GetPostBySlug(ctx, q.Slug), nil
	}))
	r.Register(Func("page", func(ctx context.Context, q Query) (any, error) {
		if q.Slug == "" {
			return nil, ErrSlugRequired
		}
		return source.GetPageBySlug(ctx, q.Slug), nil
	}))
	r.Register(Func("certifications", func(ctx context.Context, _ Query) (any, error) {
		return source.ListCertifications(ctx), nil
	}))
	r.Register(Func("home", func(ctx context.Context, _ Query) (any, error) {
		return source.GetHomePageData(ctx), nil
	}))
	r.Register(Func("menu", func(ctx context.Context, q Query) (any, error) {
		menuID := q.MenuID
		if menuID == "" {
			menuID = domain.MainMenuID
		}
		return source.ListMenuItems(ctx, menuID), nil
	}))
	return r
}

// Register adds or replaces a resolver.
func (r *Registry) Register(resolver Resolver) {
	if r.resolvers == nil {
		r.resolvers = map[string]Resolver{}
	}
	r.resolvers[resolver.Name()] = resolver
}

// Resolve returns a resolver by name or an error wrapping ErrUnknownType.
func (r *Registry) Resolve(name string) (Resolver, error) {
	if resolver, ok := r.resolvers[name]; ok {
		return resolver, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// Names lists registered resource names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.resolvers))
	for name := range r.resolvers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type funcResolver struct {
	name string
	fn   func(context.Context, Query) (any, error)
}

// Func adapts a plain function to Resolver.
func Func(name string, fn func(context.Context, Query) (any, error)) Resolver {
	return funcResolver{name: name, fn: fn}
}

func (f funcResolver) Name() string { return f.name }

func (f funcResolver) Resolve(ctx context.Context, q Query) (any, error) {
	return f.fn(ctx, q)
}
