package sitegen

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-sitegen/content"
)

func writeContent(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func testConfig(t *testing.T) Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Content.Dir = t.TempDir()
	cfg.Generator.OutputDir = t.TempDir()
	cfg.Site.BaseURL = "https://example.com"
	cfg.Site.Title = "Example"
	cfg.Logging.Enabled = false
	return cfg
}

func TestModule_BuildEndToEnd(t *testing.T) {
	cfg := testConfig(t)
	writeContent(t, cfg.Content.Dir, "hello.md",
		"---\ntitle: Hello\ndate: 2024-05-01T00:00:00Z\n---\n\nFirst post with a fence:\n\n```go\nfmt.Println(\"hi\")\n```\n")
	writeContent(t, cfg.Content.Dir, "draft.md",
		"---\ntitle: Draft\ndate: 2024-05-02T00:00:00Z\ndraft: true\n---\n\nNot yet.\n")

	module, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	result, err := module.Build(context.Background(), BuildOptions{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if result.PagesBuilt != 2 {
		t.Fatalf("expected post + index, got %d", result.PagesBuilt)
	}
	if result.DraftsExcluded != 1 {
		t.Fatalf("expected 1 draft excluded, got %d", result.DraftsExcluded)
	}

	page, err := os.ReadFile(filepath.Join(cfg.Generator.OutputDir, "posts", "hello", "index.html"))
	if err != nil {
		t.Fatalf("post page missing: %v", err)
	}
	if !strings.Contains(string(page), "<h1>Hello</h1>") {
		t.Fatalf("post page content unexpected:\n%s", string(page))
	}
	if !strings.Contains(string(page), "fmt.Println") || !strings.Contains(string(page), "<pre><code") {
		t.Fatalf("fenced code should survive rendering:\n%s", string(page))
	}

	for _, name := range []string{"index.html", "sitemap.xml", "robots.txt", "feed.xml"} {
		if _, err := os.Stat(filepath.Join(cfg.Generator.OutputDir, name)); err != nil {
			t.Fatalf("expected artifact %s: %v", name, err)
		}
	}

	if _, err := os.Stat(filepath.Join(cfg.Generator.OutputDir, "posts", "draft")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("draft should not be published: %v", err)
	}
}

func TestModule_BuildWithDrafts(t *testing.T) {
	cfg := testConfig(t)
	writeContent(t, cfg.Content.Dir, "draft.md",
		"---\ntitle: Draft\ndate: 2024-05-02T00:00:00Z\ndraft: true\n---\n\nPreview.\n")

	module, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := module.Build(context.Background(), BuildOptions{IncludeDrafts: true}); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.Generator.OutputDir, "posts", "draft", "index.html")); err != nil {
		t.Fatalf("draft page should exist when drafts are included: %v", err)
	}
}

func TestModule_BuildFailsOnBrokenFrontmatter(t *testing.T) {
	cfg := testConfig(t)
	writeContent(t, cfg.Content.Dir, "broken.md",
		"---\ndate: 2024-05-01T00:00:00Z\n---\n\nNo title here.\n")

	module, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = module.Build(context.Background(), BuildOptions{})
	if err == nil {
		t.Fatal("expected the build to fail")
	}
	var parseErr *content.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError in the chain, got %v", err)
	}

	entries, readErr := os.ReadDir(cfg.Generator.OutputDir)
	if readErr != nil {
		t.Fatalf("read output dir: %v", readErr)
	}
	if len(entries) != 0 {
		t.Fatalf("failed build must write nothing, found %d entries", len(entries))
	}
}

func TestModule_RebuildIsByteIdentical(t *testing.T) {
	contentDir := t.TempDir()
	writeContent(t, contentDir, "first.md",
		"---\ntitle: First\ndate: 2024-05-01T00:00:00Z\ntags: [go, notes]\n---\n\nBody with a fence:\n\n```go\nfmt.Println(\"hi\")\n```\n")
	writeContent(t, contentDir, "second.md",
		"---\ntitle: Second\ndate: 2024-05-02T00:00:00Z\nsummary: short one\n---\n\nAnother body.\n")

	buildInto := func(outputDir string) {
		t.Helper()
		cfg := testConfig(t)
		cfg.Content.Dir = contentDir
		cfg.Generator.OutputDir = outputDir
		module, err := New(cfg)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if _, err := module.Build(context.Background(), BuildOptions{}); err != nil {
			t.Fatalf("Build: %v", err)
		}
	}

	firstOut := t.TempDir()
	secondOut := t.TempDir()
	buildInto(firstOut)
	buildInto(secondOut)

	err := filepath.WalkDir(firstOut, func(path string, entry os.DirEntry, err error) error {
		if err != nil || entry.IsDir() {
			return err
		}
		rel, err := filepath.Rel(firstOut, path)
		if err != nil {
			return err
		}
		if filepath.Base(rel) == ".sitegen-manifest.json" {
			return nil
		}
		want, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		got, err := os.ReadFile(filepath.Join(secondOut, rel))
		if err != nil {
			t.Fatalf("artifact %s missing from second build: %v", rel, err)
		}
		if string(want) != string(got) {
			t.Fatalf("artifact %s differs between builds", rel)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk output: %v", err)
	}
}

type stalledRenderer struct {
	delay time.Duration
}

func (r stalledRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	return r.RenderTemplate(name, data, out...)
}

func (r stalledRenderer) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	time.Sleep(r.delay)
	return "<html></html>", nil
}

func (r stalledRenderer) RenderString(templateContent string, data any, out ...io.Writer) (string, error) {
	return templateContent, nil
}

func (r stalledRenderer) GlobalContext(data any) error { return nil }

func TestModule_BuildHonorsCommandTimeout(t *testing.T) {
	cfg := testConfig(t)
	cfg.Commands.Timeout = 10 * time.Millisecond
	writeContent(t, cfg.Content.Dir, "slow.md",
		"---\ntitle: Slow\ndate: 2024-05-01T00:00:00Z\n---\n\nBody.\n")

	module, err := New(cfg, WithRenderer(stalledRenderer{delay: 100 * time.Millisecond}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = module.Build(context.Background(), BuildOptions{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected the configured timeout to abort the build, got %v", err)
	}
}

func TestModule_Diff(t *testing.T) {
	cfg := testConfig(t)
	writeContent(t, cfg.Content.Dir, "post.md",
		"---\ntitle: Post\ndate: 2024-05-01T00:00:00Z\n---\n\nBody.\n")

	module, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	result, err := module.Diff(context.Background(), false)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if !result.DryRun {
		t.Fatal("diff result should be a dry run")
	}

	entries, readErr := os.ReadDir(cfg.Generator.OutputDir)
	if readErr != nil {
		t.Fatalf("read output dir: %v", readErr)
	}
	if len(entries) != 0 {
		t.Fatalf("diff must write nothing, found %d entries", len(entries))
	}
}

func TestModule_Clean(t *testing.T) {
	cfg := testConfig(t)
	writeContent(t, cfg.Content.Dir, "post.md",
		"---\ntitle: Post\ndate: 2024-05-01T00:00:00Z\n---\n\nBody.\n")

	module, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := module.Build(context.Background(), BuildOptions{}); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := module.Clean(context.Background()); err != nil {
		t.Fatalf("Clean: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.Generator.OutputDir, "index.html")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("output should be gone after clean: %v", err)
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Content.Dir = ""
	if _, err := New(cfg); !errors.Is(err, ErrContentDirRequired) {
		t.Fatalf("expected ErrContentDirRequired, got %v", err)
	}
}
