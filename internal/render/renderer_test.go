package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-sitegen/content"
	"github.com/goliatone/go-sitegen/internal/generator"
)

func samplePostContext() generator.TemplateContext {
	post := &content.Post{
		Slug:     "hello-world",
		Title:    "Hello World",
		Summary:  "A first post",
		Author:   "Ada",
		Tags:     []string{"go", "intro"},
		Date:     time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
		BodyHTML: []byte("<p>Rendered <strong>body</strong>.</p>"),
	}
	return generator.TemplateContext{
		Site: generator.SiteMetadata{
			BaseURL: "https://example.com",
			Title:   "Example Blog",
		},
		Post: &generator.PostRenderingContext{
			Post:      post,
			Route:     "/posts/hello-world/",
			Permalink: "https://example.com/posts/hello-world/",
		},
		Helpers: generator.NewTemplateHelpers("https://example.com"),
	}
}

func TestHTMLRenderer_BuiltinPostTemplate(t *testing.T) {
	renderer := NewHTMLRenderer(Config{})

	html, err := renderer.RenderTemplate("post", samplePostContext())
	if err != nil {
		t.Fatalf("RenderTemplate: %v", err)
	}

	if !strings.Contains(html, "<h1>Hello World</h1>") {
		t.Fatalf("post title missing:\n%s", html)
	}
	if !strings.Contains(html, "<p>Rendered <strong>body</strong>.</p>") {
		t.Fatalf("body HTML must pass through unescaped:\n%s", html)
	}
	if !strings.Contains(html, `rel="canonical" href="https://example.com/posts/hello-world/"`) {
		t.Fatalf("canonical link missing:\n%s", html)
	}
}

func TestHTMLRenderer_BuiltinIndexTemplate(t *testing.T) {
	renderer := NewHTMLRenderer(Config{})

	ctx := generator.TemplateContext{
		Site: generator.SiteMetadata{Title: "Example Blog"},
		Posts: []generator.PostSummary{
			{
				Slug:  "hello-world",
				Title: "Hello World",
				Route: "/posts/hello-world/",
				Date:  time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		Helpers: generator.NewTemplateHelpers(""),
	}

	html, err := renderer.RenderTemplate("index", ctx)
	if err != nil {
		t.Fatalf("RenderTemplate: %v", err)
	}
	if !strings.Contains(html, "Hello World") {
		t.Fatalf("post entry missing from index:\n%s", html)
	}
	if !strings.Contains(html, `href="/posts/hello-world/"`) {
		t.Fatalf("post link missing from index:\n%s", html)
	}
}

func TestHTMLRenderer_TemplateDirOverride(t *testing.T) {
	dir := t.TempDir()
	override := filepath.Join(dir, "post.html")
	if err := os.WriteFile(override, []byte(`override: {{ .Post.Post.Title }}`), 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}

	renderer := NewHTMLRenderer(Config{TemplateDir: dir})
	html, err := renderer.RenderTemplate("post", samplePostContext())
	if err != nil {
		t.Fatalf("RenderTemplate: %v", err)
	}
	if html != "override: Hello World" {
		t.Fatalf("expected the override template to win, got %q", html)
	}
}

func TestHTMLRenderer_UnknownTemplate(t *testing.T) {
	renderer := NewHTMLRenderer(Config{})
	if _, err := renderer.RenderTemplate("missing", nil); err == nil {
		t.Fatalf("expected an error for an unknown template")
	}
}

func TestHTMLRenderer_RenderToWriter(t *testing.T) {
	renderer := NewHTMLRenderer(Config{})
	var buf bytes.Buffer

	out, err := renderer.RenderTemplate("post", samplePostContext(), &buf)
	if err != nil {
		t.Fatalf("RenderTemplate: %v", err)
	}
	if out != "" {
		t.Fatalf("string result should be empty when a writer is supplied")
	}
	if !strings.Contains(buf.String(), "Hello World") {
		t.Fatalf("writer should receive the rendered page")
	}
}

func TestHTMLRenderer_RenderString(t *testing.T) {
	renderer := NewHTMLRenderer(Config{})

	out, err := renderer.RenderString(`{{ upper .Name }} / {{ joinTags .Tags }}`, map[string]any{
		"Name": "ada",
		"Tags": []string{"a", "b"},
	})
	if err != nil {
		t.Fatalf("RenderString: %v", err)
	}
	if out != "ADA / a, b" {
		t.Fatalf("RenderString = %q", out)
	}
}

func TestHTMLRenderer_GlobalContext(t *testing.T) {
	renderer := NewHTMLRenderer(Config{})
	if err := renderer.GlobalContext(map[string]any{"env": "production"}); err != nil {
		t.Fatalf("GlobalContext: %v", err)
	}

	out, err := renderer.RenderString(`{{ (global).env }}`, nil)
	if err != nil {
		t.Fatalf("RenderString: %v", err)
	}
	if out != "production" {
		t.Fatalf("global context should be reachable, got %q", out)
	}
}

func TestTemplateFuncs_FormatDate(t *testing.T) {
	renderer := NewHTMLRenderer(Config{})

	out, err := renderer.RenderString(`{{ formatDate .When "" }}`, map[string]any{
		"When": time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("RenderString: %v", err)
	}
	if out != "May 1, 2024" {
		t.Fatalf("formatDate default layout mismatch: %q", out)
	}
}

func TestTemplateFuncs_SafeHTML(t *testing.T) {
	renderer := NewHTMLRenderer(Config{})

	out, err := renderer.RenderString(`{{ safeHTML .Markup }}`, map[string]any{
		"Markup": "<em>kept</em>",
	})
	if err != nil {
		t.Fatalf("RenderString: %v", err)
	}
	if out != "<em>kept</em>" {
		t.Fatalf("safeHTML should not escape, got %q", out)
	}
}
