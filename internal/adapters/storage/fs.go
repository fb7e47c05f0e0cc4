package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

// FSStore is a filesystem-backed artifact store rooted at a base directory.
// All request paths are interpreted relative to the root; escapes are refused.
type FSStore struct {
	root string
}

// NewFSStore constructs a store rooted at root. The directory is created on
// first write, not at construction, so dry-runs never touch the disk.
func NewFSStore(root string) (*FSStore, error) {
	cleaned := filepath.Clean(strings.TrimSpace(root))
	if cleaned == "" || cleaned == "." && strings.TrimSpace(root) == "" {
		return nil, errors.New("storage: output root is required")
	}
	return &FSStore{root: cleaned}, nil
}

var _ interfaces.ArtifactStore = (*FSStore)(nil)

// Root reports the base directory artifacts are written beneath.
func (s *FSStore) Root() string { return s.root }

// EnsureDir creates the directory (and parents) beneath the store root.
func (s *FSStore) EnsureDir(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(target, 0o755); err != nil {
		return fmt.Errorf("storage: ensure dir %s: %w", path, err)
	}
	return nil
}

// WriteFile persists the request content beneath the store root. Writes go
// through a temporary file and rename so readers never observe partial pages.
func (s *FSStore) WriteFile(ctx context.Context, req interfaces.WriteRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if req.Content == nil {
		return errors.New("storage: write requires content reader")
	}
	target, err := s.resolve(req.Path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("storage: ensure parent for %s: %w", req.Path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".sitegen-*")
	if err != nil {
		return fmt.Errorf("storage: temp file for %s: %w", req.Path, err)
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, req.Content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("storage: write %s: %w", req.Path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: close %s: %w", req.Path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: chmod %s: %w", req.Path, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: rename into %s: %w", req.Path, err)
	}
	return nil
}

// ReadFile returns the content of a previously written artifact. Callers get
// os.ErrNotExist (wrapped) when the artifact is absent.
func (s *FSStore) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	target, err := s.resolve(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(target)
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", path, err)
	}
	return data, nil
}

// RemoveAll deletes the path beneath the root; an empty path clears the root
// itself, which is how clean builds start over.
func (s *FSStore) RemoveAll(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target := s.root
	if strings.TrimSpace(path) != "" {
		var err error
		target, err = s.resolve(path)
		if err != nil {
			return err
		}
	}
	if err := os.RemoveAll(target); err != nil {
		return fmt.Errorf("storage: remove %s: %w", path, err)
	}
	return nil
}

func (s *FSStore) resolve(path string) (string, error) {
	cleaned := filepath.Clean(strings.TrimSpace(path))
	if cleaned == "" || cleaned == "." {
		return s.root, nil
	}
	if filepath.IsAbs(cleaned) || strings.HasPrefix(cleaned, "..") {
		return "", fmt.Errorf("storage: path %q escapes output root", path)
	}
	return filepath.Join(s.root, cleaned), nil
}
