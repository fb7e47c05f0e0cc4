package generator

import (
	"fmt"
	"strings"
	"sync"

	urlkit "github.com/goliatone/go-urlkit"
)

const (
	permalinkGroup = "site"

	routePost    = "post"
	routeIndex   = "index"
	routeFeed    = "feed"
	routeSitemap = "sitemap"
)

// PermalinkResolver builds absolute URLs for site pages using a go-urlkit
// route manager. Routes are registered once at construction so templates and
// feeds agree on the URL shape.
type PermalinkResolver struct {
	manager *urlkit.RouteManager
	baseURL string

	mu    sync.RWMutex
	group *urlkit.Group
}

// NewPermalinkResolver constructs a resolver rooted at baseURL.
func NewPermalinkResolver(baseURL string) *PermalinkResolver {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = "http://localhost"
	}

	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    permalinkGroup,
				BaseURL: base,
				Paths: map[string]string{
					routeIndex:   "/",
					routePost:    "/posts/:slug/",
					routeFeed:    "/feed.xml",
					routeSitemap: "/sitemap.xml",
				},
			},
		},
	})

	return &PermalinkResolver{
		manager: manager,
		baseURL: base,
	}
}

// BaseURL reports the normalized site base URL.
func (r *PermalinkResolver) BaseURL() string {
	if r == nil {
		return ""
	}
	return r.baseURL
}

// PostURL resolves the absolute URL for a post slug.
func (r *PermalinkResolver) PostURL(slug string) (string, error) {
	return r.buildRoute(routePost, map[string]any{"slug": strings.TrimSpace(slug)})
}

// IndexURL resolves the absolute URL for the site index.
func (r *PermalinkResolver) IndexURL() (string, error) {
	return r.buildRoute(routeIndex, nil)
}

// FeedURL resolves the absolute URL for the default RSS feed.
func (r *PermalinkResolver) FeedURL() (string, error) {
	return r.buildRoute(routeFeed, nil)
}

// SitemapURL resolves the absolute URL for the sitemap.
func (r *PermalinkResolver) SitemapURL() (string, error) {
	return r.buildRoute(routeSitemap, nil)
}

func (r *PermalinkResolver) buildRoute(route string, params map[string]any) (string, error) {
	if r == nil || r.manager == nil {
		return "", fmt.Errorf("generator: permalink resolver not configured")
	}

	group, err := r.siteGroup()
	if err != nil {
		return "", err
	}

	builder, err := safeBuilder(group, route)
	if err != nil {
		return "", err
	}
	for key, val := range params {
		builder.WithParam(key, val)
	}

	url, err := builder.Build()
	if err != nil {
		return "", fmt.Errorf("generator: build %s url: %w", route, err)
	}
	return url, nil
}

func (r *PermalinkResolver) siteGroup() (*urlkit.Group, error) {
	r.mu.RLock()
	group := r.group
	r.mu.RUnlock()
	if group != nil {
		return group, nil
	}

	group, err := lookupGroup(r.manager, permalinkGroup)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.group = group
	r.mu.Unlock()
	return group, nil
}

// go-urlkit panics on unknown groups and routes; recover so callers get an
// error instead.
func lookupGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	if manager == nil {
		return nil, fmt.Errorf("generator: route manager not configured")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("generator: route group %q not found", name)
		}
	}()
	group = manager.Group(name)
	return group, err
}

func safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	if group == nil {
		return nil, fmt.Errorf("generator: urlkit group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("generator: urlkit builder panic: %v", rec)
		}
	}()
	builder = group.Builder(route)
	return builder, err
}
