package markdown

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-sitegen/content"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

func TestGoldmarkParser_Parse(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.Parse([]byte("# Heading\n\nHello **world**"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	got := string(html)
	if !strings.Contains(got, "<h1") || !strings.Contains(got, "Heading</h1>") {
		t.Fatalf("expected rendered HTML to include <h1>Heading</h1>, got %q", got)
	}
	if !strings.Contains(got, "<strong>world</strong>") {
		t.Fatalf("expected rendered HTML to include <strong>, got %q", got)
	}
}

func TestGoldmarkParser_PreservesFencedCode(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	source := "```go\nfmt.Println(\"a < b\")\n```\n"
	html, err := parser.Parse([]byte(source))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	got := string(html)
	if !strings.Contains(got, "<pre><code") {
		t.Fatalf("expected a code block, got %q", got)
	}
	if !strings.Contains(got, "a &lt; b") {
		t.Fatalf("code content should be escaped verbatim, got %q", got)
	}
}

func TestGoldmarkParser_UnterminatedFence(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	_, err := parser.Parse([]byte("intro\n\n```go\nfmt.Println(\"oops\")\n"))
	if err == nil {
		t.Fatalf("expected an error for an unterminated fence")
	}

	var renderErr *content.RenderError
	if !errors.As(err, &renderErr) {
		t.Fatalf("expected RenderError, got %T", err)
	}
	if renderErr.Line != 3 {
		t.Fatalf("expected the opening fence line, got %d", renderErr.Line)
	}
	if !errors.Is(err, content.ErrUnclosedFence) {
		t.Fatalf("expected ErrUnclosedFence, got %v", err)
	}
}

func TestGoldmarkParser_ParseWithOptions(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.ParseWithOptions([]byte("line one\nline two"), interfaces.ParseOptions{
		HardWraps: true,
	})
	if err != nil {
		t.Fatalf("ParseWithOptions: %v", err)
	}

	if !strings.Contains(string(html), "line one<br>") {
		t.Fatalf("expected hard wraps in HTML output, got %q", string(html))
	}
}

func TestGoldmarkParser_SafeModeDropsRawHTML(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	source := []byte("before\n\n<script>alert(1)</script>\n")

	unsafe, err := parser.Parse(source)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !strings.Contains(string(unsafe), "<script>") {
		t.Fatalf("default parse should keep raw HTML, got %q", string(unsafe))
	}

	safe, err := parser.ParseWithOptions(source, interfaces.ParseOptions{SafeMode: true})
	if err != nil {
		t.Fatalf("ParseWithOptions: %v", err)
	}
	if strings.Contains(string(safe), "<script>") {
		t.Fatalf("safe mode should not emit raw HTML, got %q", string(safe))
	}
}

func TestValidateFences(t *testing.T) {
	cases := []struct {
		name     string
		source   string
		wantLine int
	}{
		{"no fences", "plain text\n", 0},
		{"closed backticks", "```\ncode\n```\n", 0},
		{"closed tildes", "~~~\ncode\n~~~\n", 0},
		{"longer closer", "```\ncode\n`````\n", 0},
		{"open backticks", "```\ncode\n", 1},
		{"mismatched marker", "```\ncode\n~~~\n", 1},
		{"shorter closer stays open", "````\ncode\n```\n", 1},
		{"second fence open", "```\na\n```\ntext\n```\nb\n", 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			line, err := ValidateFences([]byte(tc.source))
			if tc.wantLine == 0 {
				if err != nil {
					t.Fatalf("expected valid fences, got line=%d err=%v", line, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected an unclosed fence error")
			}
			if line != tc.wantLine {
				t.Fatalf("expected line %d, got %d", tc.wantLine, line)
			}
		})
	}
}

func TestCollectExtensions(t *testing.T) {
	if got := collectExtensions(nil); len(got) != 3 {
		t.Fatalf("expected default extension set, got %d entries", len(got))
	}
	if got := collectExtensions([]string{"table", "TABLE", "unknown", ""}); len(got) != 1 {
		t.Fatalf("expected dedup and unknown names skipped, got %d entries", len(got))
	}
}
