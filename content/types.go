package content

import (
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-sitegen/internal/identity"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

// Post is the canonical record produced for every loaded document. A Post is
// immutable within a single build; pages derive from exactly one Post.
type Post struct {
	ID           uuid.UUID      `json:"id"`
	Slug         string         `json:"slug"`
	Title        string         `json:"title"`
	Summary      string         `json:"summary,omitempty"`
	Author       string         `json:"author,omitempty"`
	Tags         []string       `json:"tags,omitempty"`
	Template     string         `json:"template,omitempty"`
	Date         time.Time      `json:"date"`
	Draft        bool           `json:"draft"`
	Body         []byte         `json:"-"`
	BodyHTML     []byte         `json:"-"`
	SourcePath   string         `json:"source_path"`
	Checksum     []byte         `json:"-"`
	LastModified time.Time      `json:"last_modified"`
	Custom       map[string]any `json:"custom,omitempty"`
}

// FromDocument builds a Post from a loaded document. The slug comes from the
// frontmatter when present, otherwise it is derived from the source filename;
// either way it must satisfy the default slug rules.
func FromDocument(doc *interfaces.Document) (*Post, error) {
	if doc == nil {
		return nil, NewParseError("", ErrFrontMatter)
	}

	fm := doc.FrontMatter
	if strings.TrimSpace(fm.Title) == "" {
		return nil, NewParseError(doc.FilePath, ErrTitleRequired)
	}
	if fm.Date.IsZero() {
		return nil, NewParseError(doc.FilePath, ErrDateRequired)
	}

	slug, err := resolveSlug(doc)
	if err != nil {
		return nil, err
	}

	return &Post{
		ID:           identity.PostUUID(slug),
		Slug:         slug,
		Title:        strings.TrimSpace(fm.Title),
		Summary:      strings.TrimSpace(fm.Summary),
		Author:       strings.TrimSpace(fm.Author),
		Tags:         append([]string(nil), fm.Tags...),
		Template:     strings.TrimSpace(fm.Template),
		Date:         fm.Date,
		Draft:        fm.Draft,
		Body:         doc.Body,
		BodyHTML:     append([]byte(nil), doc.BodyHTML...),
		SourcePath:   doc.FilePath,
		Checksum:     doc.Checksum,
		LastModified: doc.LastModified,
		Custom:       cloneMap(fm.Custom),
	}, nil
}

func resolveSlug(doc *interfaces.Document) (string, error) {
	if candidate := strings.TrimSpace(doc.FrontMatter.Slug); candidate != "" {
		if !IsValidSlug(candidate) {
			normalized, err := NormalizeSlug(candidate)
			if err != nil || !IsValidSlug(normalized) {
				return "", NewParseError(doc.FilePath, ErrSlugInvalid)
			}
			return normalized, nil
		}
		return candidate, nil
	}

	return SlugFromPath(doc.FilePath)
}

// SlugFromPath derives a deterministic slug from a document's file name,
// stripping the extension and applying the default normalization rules.
func SlugFromPath(filePath string) (string, error) {
	base := path.Base(strings.ReplaceAll(filePath, "\\", "/"))
	base = strings.TrimSuffix(base, path.Ext(base))
	if strings.TrimSpace(base) == "" || base == "." {
		return "", NewParseError(filePath, ErrSlugRequired)
	}

	normalized, err := NormalizeSlug(base)
	if err != nil || !IsValidSlug(normalized) {
		return "", NewParseError(filePath, ErrSlugInvalid)
	}
	return normalized, nil
}

func cloneMap(input map[string]any) map[string]any {
	if input == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = value
	}
	return out
}
