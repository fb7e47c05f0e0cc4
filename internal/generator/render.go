package generator

import (
	"strings"
	"time"

	gotheme "github.com/goliatone/go-theme"
	"github.com/google/uuid"

	"github.com/goliatone/go-sitegen/content"
	"github.com/goliatone/go-sitegen/internal/identity"
)

// TemplateContext captures the data contract passed to TemplateRenderer implementations.
type TemplateContext struct {
	Site    SiteMetadata
	Post    *PostRenderingContext
	Posts   []PostSummary
	Build   BuildMetadata
	Theme   ThemeContext
	Helpers TemplateHelpers
}

// SiteMetadata exposes site-wide information required by templates.
type SiteMetadata struct {
	BaseURL     string
	Title       string
	Description string
	Metadata    map[string]any
}

// BuildMetadata surfaces high level build information to templates.
type BuildMetadata struct {
	GeneratedAt time.Time
	Options     BuildOptions
}

// PostRenderingContext contains the resolved data for a single post page.
type PostRenderingContext struct {
	Post      *content.Post
	Route     string
	Permalink string
}

// PostSummary is the index-page view of a post.
type PostSummary struct {
	Slug      string
	Title     string
	Summary   string
	Author    string
	Tags      []string
	Date      time.Time
	Draft     bool
	Route     string
	Permalink string
}

// ThemeContext surfaces go-theme selection data to templates.
type ThemeContext struct {
	ID        uuid.UUID
	Name      string
	Variant   string
	Tokens    map[string]string
	CSSVars   map[string]string
	Partials  map[string]string
	AssetURL  func(string) string
	Template  func(string, string) string
	Selection *gotheme.Selection
}

// TemplateHelpers exposes convenience helpers for template authors.
type TemplateHelpers struct {
	baseURL string
}

// NewTemplateHelpers builds the helper set handed to templates.
func NewTemplateHelpers(baseURL string) TemplateHelpers {
	return TemplateHelpers{baseURL: strings.TrimRight(baseURL, "/")}
}

// BaseURL returns the configured site base URL.
func (h TemplateHelpers) BaseURL() string {
	return h.baseURL
}

// WithBaseURL prefixes the provided path with the configured base URL.
func (h TemplateHelpers) WithBaseURL(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return h.baseURL
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if h.baseURL == "" {
		return path
	}
	return h.baseURL + path
}

// FormatDate renders a timestamp with the supplied layout, defaulting to a
// readable publication date.
func (h TemplateHelpers) FormatDate(ts time.Time, layout string) string {
	if ts.IsZero() {
		return ""
	}
	if strings.TrimSpace(layout) == "" {
		layout = "January 2, 2006"
	}
	return ts.Format(layout)
}

func buildThemeContext(selection *gotheme.Selection, cfg ThemingConfig) ThemeContext {
	empty := ThemeContext{
		Tokens:   map[string]string{},
		CSSVars:  map[string]string{},
		Partials: map[string]string{},
		AssetURL: func(string) string { return "" },
		Template: func(_ string, fallback string) string { return fallback },
	}
	if selection == nil {
		return empty
	}

	return ThemeContext{
		ID:        identity.ThemeUUID(cfg.Path),
		Name:      selection.Theme,
		Variant:   selection.Variant,
		Tokens:    selection.Tokens(),
		CSSVars:   selection.CSSVariables(cfg.CSSVariablePrefix),
		Partials:  selection.Partials(cfg.PartialFallbacks),
		AssetURL:  func(key string) string { url, _ := selection.Asset(key); return url },
		Template:  selection.Template,
		Selection: selection,
	}
}

// RenderedPage captures the rendered HTML output for a single page.
type RenderedPage struct {
	PostID       uuid.UUID
	Slug         string
	Route        string
	Output       string
	Template     string
	HTML         string
	Checksum     string
	Hash         string
	Draft        bool
	LastModified time.Time
	Duration     time.Duration
}

// RenderDiagnostic records rendering timing and errors for individual pages.
type RenderDiagnostic struct {
	PostID   uuid.UUID
	Slug     string
	Route    string
	Template string
	Duration time.Duration
	Skipped  bool
	Err      error
}

type renderOutcome struct {
	page       RenderedPage
	diagnostic RenderDiagnostic
	err        error
	skipped    bool
}

func summarizePosts(posts []*content.Post, resolver *PermalinkResolver) []PostSummary {
	summaries := make([]PostSummary, 0, len(posts))
	for _, post := range posts {
		if post == nil {
			continue
		}
		summary := PostSummary{
			Slug:    post.Slug,
			Title:   post.Title,
			Summary: post.Summary,
			Author:  post.Author,
			Tags:    append([]string(nil), post.Tags...),
			Date:    post.Date,
			Draft:   post.Draft,
			Route:   postRoute(post.Slug),
		}
		if resolver != nil {
			if url, err := resolver.PostURL(post.Slug); err == nil {
				summary.Permalink = url
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
