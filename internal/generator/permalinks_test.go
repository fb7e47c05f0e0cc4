package generator

import (
	"strings"
	"testing"
)

func TestPermalinkResolver_PostURL(t *testing.T) {
	resolver := NewPermalinkResolver("https://example.com/")

	url, err := resolver.PostURL("hello-world")
	if err != nil {
		t.Fatalf("PostURL: %v", err)
	}
	if !strings.Contains(url, "example.com") || !strings.Contains(url, "hello-world") {
		t.Fatalf("unexpected post URL %q", url)
	}
}

func TestPermalinkResolver_StaticRoutes(t *testing.T) {
	resolver := NewPermalinkResolver("https://example.com")

	index, err := resolver.IndexURL()
	if err != nil {
		t.Fatalf("IndexURL: %v", err)
	}
	if !strings.HasPrefix(index, "https://example.com") {
		t.Fatalf("index URL should be absolute, got %q", index)
	}

	feed, err := resolver.FeedURL()
	if err != nil {
		t.Fatalf("FeedURL: %v", err)
	}
	if !strings.Contains(feed, "feed.xml") {
		t.Fatalf("unexpected feed URL %q", feed)
	}

	sitemap, err := resolver.SitemapURL()
	if err != nil {
		t.Fatalf("SitemapURL: %v", err)
	}
	if !strings.Contains(sitemap, "sitemap.xml") {
		t.Fatalf("unexpected sitemap URL %q", sitemap)
	}
}

func TestPermalinkResolver_BaseURLFallback(t *testing.T) {
	resolver := NewPermalinkResolver("  ")
	if resolver.BaseURL() != "http://localhost" {
		t.Fatalf("empty base should fall back to localhost, got %q", resolver.BaseURL())
	}
}
