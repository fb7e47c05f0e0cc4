package markdown

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-sitegen/content"
)

func TestParseFrontMatter(t *testing.T) {
	data := readFixture(t, "testdata/basic.md")

	fm, body, err := ParseFrontMatter(data)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if fm.Title != "Sample Post" {
		t.Fatalf("FrontMatter Title mismatch, got %q", fm.Title)
	}
	if fm.Slug != "sample-post" {
		t.Fatalf("FrontMatter Slug mismatch, got %q", fm.Slug)
	}
	if fm.Author != "Ada" {
		t.Fatalf("FrontMatter Author mismatch, got %q", fm.Author)
	}
	if len(fm.Tags) != 2 || fm.Tags[0] != "sitegen" {
		t.Fatalf("FrontMatter Tags mismatch: %#v", fm.Tags)
	}
	if fm.Custom["custom_flag"] != true {
		t.Fatalf("FrontMatter Custom flag missing: %#v", fm.Custom)
	}
	if fm.Raw["summary"] != "Sample summary goes here" {
		t.Fatalf("FrontMatter Raw summary missing: %#v", fm.Raw)
	}
	if !strings.Contains(string(body), "# Sample Post") {
		t.Fatalf("Markdown body not returned correctly: %q", string(body))
	}
	if strings.Contains(string(body), "title:") {
		t.Fatalf("frontmatter delimiters should be stripped from the body")
	}
}

func TestBuildDocument(t *testing.T) {
	data := readFixture(t, "testdata/basic.md")
	modified := time.Now().UTC()

	doc, err := BuildDocument("testdata/basic.md", data, modified)
	if err != nil {
		t.Fatalf("BuildDocument: %v", err)
	}

	if doc.FilePath != "testdata/basic.md" {
		t.Fatalf("expected FilePath to be set, got %q", doc.FilePath)
	}
	if doc.LastModified != modified {
		t.Fatalf("expected LastModified to equal the provided timestamp")
	}
	if len(doc.Body) == 0 {
		t.Fatalf("expected Body to contain markdown content")
	}
	if len(doc.BodyHTML) != 0 {
		t.Fatalf("BuildDocument should not render HTML eagerly")
	}
}

func TestBuildDocument_MissingTitle(t *testing.T) {
	data := readFixture(t, "testdata/missing-title.md")

	_, err := BuildDocument("testdata/missing-title.md", data, time.Now())
	if err == nil {
		t.Fatalf("expected an error for a missing title")
	}

	var parseErr *content.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %T", err)
	}
	if parseErr.Path != "testdata/missing-title.md" {
		t.Fatalf("ParseError should carry the file path, got %q", parseErr.Path)
	}
	if !errors.Is(err, content.ErrTitleRequired) {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}
}

func TestBuildDocument_MissingDate(t *testing.T) {
	source := "---\ntitle: Dateless\n---\n\nBody.\n"

	_, err := BuildDocument("dateless.md", []byte(source), time.Now())
	if !errors.Is(err, content.ErrDateRequired) {
		t.Fatalf("expected ErrDateRequired, got %v", err)
	}
}

func readFixture(tb testing.TB, path string) []byte {
	tb.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		tb.Fatalf("read fixture %s: %v", path, err)
	}
	return data
}
