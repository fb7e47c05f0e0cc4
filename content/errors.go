package content

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrTitleRequired = errors.New("content: frontmatter title is required")
	ErrDateRequired  = errors.New("content: frontmatter date is required")
	ErrSlugRequired  = errors.New("content: slug is required")
	ErrSlugInvalid   = errors.New("content: slug contains invalid characters")
	ErrSlugConflict  = errors.New("content: slug conflict")
	ErrFrontMatter   = errors.New("content: malformed frontmatter")
	ErrUnclosedFence = errors.New("content: unterminated fenced code block")
)

// ParseError reports a document that failed to load, carrying the offending
// file path so build output names the exact source.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ErrFrontMatter.Error()
	}
	if strings.TrimSpace(e.Path) == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: file=%s", e.Err.Error(), e.Path)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewParseError wraps err with the source path of the failing document.
func NewParseError(path string, err error) *ParseError {
	return &ParseError{Path: path, Err: err}
}

// RenderError reports a document body that is structurally broken, such as an
// unterminated fenced code block. Rendering never repairs silently.
type RenderError struct {
	Path string
	Line int
	Err  error
}

func (e *RenderError) Error() string {
	if e == nil {
		return ErrUnclosedFence.Error()
	}
	msg := e.Err.Error()
	if strings.TrimSpace(e.Path) != "" {
		msg = fmt.Sprintf("%s: file=%s", msg, e.Path)
	}
	if e.Line > 0 {
		msg = fmt.Sprintf("%s line=%d", msg, e.Line)
	}
	return msg
}

func (e *RenderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SlugCollisionError captures two or more documents resolving to the same
// slug, which would produce an ambiguous output path.
type SlugCollisionError struct {
	Slug  string
	Paths []string
}

func (e *SlugCollisionError) Error() string {
	if e == nil {
		return ErrSlugConflict.Error()
	}
	paths := append([]string(nil), e.Paths...)
	sort.Strings(paths)
	return fmt.Sprintf("%s: slug=%s files=%s", ErrSlugConflict.Error(), e.Slug, strings.Join(paths, ","))
}

func (e *SlugCollisionError) Unwrap() error {
	return ErrSlugConflict
}
