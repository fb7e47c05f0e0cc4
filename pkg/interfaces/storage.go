package interfaces

import (
	"context"
	"io"
)

// WriteRequest describes a single artifact write routed through the store.
// Category and Metadata exist for observability; stores may ignore them.
type WriteRequest struct {
	Path        string
	Content     io.Reader
	Size        int64
	Category    string
	ContentType string
	Checksum    string
	Metadata    map[string]string
}

// ArtifactStore abstracts the output location for generated artifacts. The
// generator never touches the filesystem directly so builds can target other
// backends (in-memory stores in tests, object storage in hosts).
type ArtifactStore interface {
	EnsureDir(ctx context.Context, path string) error
	WriteFile(ctx context.Context, req WriteRequest) error
	ReadFile(ctx context.Context, path string) ([]byte, error)
	RemoveAll(ctx context.Context, path string) error
}
