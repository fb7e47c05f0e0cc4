package generator

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

type writeCategory string

const (
	categoryPage     writeCategory = "page"
	categoryIndex    writeCategory = "index"
	categoryAsset    writeCategory = "asset"
	categorySitemap  writeCategory = "sitemap"
	categoryRobots   writeCategory = "robots"
	categoryFeed     writeCategory = "feed"
	categoryManifest writeCategory = "manifest"
)

// writeFileRequest describes a file write operation routed through the artifact writer.
type writeFileRequest struct {
	Path        string
	Content     io.Reader
	Size        int64
	Category    writeCategory
	ContentType string
	Checksum    string
	Metadata    map[string]string
}

// artifactWriter abstracts store specifics for generator outputs.
type artifactWriter interface {
	EnsureDir(ctx context.Context, path string) error
	WriteFile(ctx context.Context, req writeFileRequest) error
}

func newArtifactWriter(store interfaces.ArtifactStore) artifactWriter {
	if store == nil {
		return noopWriter{}
	}
	return &storeWriter{store: store}
}

type storeWriter struct {
	store interfaces.ArtifactStore
}

func (w *storeWriter) EnsureDir(ctx context.Context, path string) error {
	if strings.TrimSpace(path) == "" || path == "." {
		return nil
	}
	return w.store.EnsureDir(ctx, path)
}

func (w *storeWriter) WriteFile(ctx context.Context, req writeFileRequest) error {
	if req.Content == nil {
		return errors.New("generator: write requires content reader")
	}
	if strings.TrimSpace(req.Path) == "" {
		return errors.New("generator: write requires path")
	}
	if req.Metadata == nil {
		req.Metadata = map[string]string{}
	}
	return w.store.WriteFile(ctx, interfaces.WriteRequest{
		Path:        req.Path,
		Content:     req.Content,
		Size:        req.Size,
		Category:    string(req.Category),
		ContentType: req.ContentType,
		Checksum:    req.Checksum,
		Metadata:    req.Metadata,
	})
}

type noopWriter struct{}

func (noopWriter) EnsureDir(context.Context, string) error { return nil }

func (noopWriter) WriteFile(context.Context, writeFileRequest) error { return nil }
