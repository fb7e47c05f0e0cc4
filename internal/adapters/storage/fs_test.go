package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

func newTestStore(t *testing.T) *FSStore {
	t.Helper()
	store, err := NewFSStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFSStore: %v", err)
	}
	return store
}

func TestNewFSStore_RequiresRoot(t *testing.T) {
	if _, err := NewFSStore("   "); err == nil {
		t.Fatal("expected an error for a blank root")
	}
}

func TestFSStore_WriteAndRead(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.WriteFile(ctx, interfaces.WriteRequest{
		Path:    "posts/hello/index.html",
		Content: strings.NewReader("<html>hi</html>"),
	})
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := store.ReadFile(ctx, "posts/hello/index.html")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "<html>hi</html>" {
		t.Fatalf("unexpected content %q", string(data))
	}

	info, err := os.Stat(filepath.Join(store.Root(), "posts", "hello", "index.html"))
	if err != nil {
		t.Fatalf("stat written file: %v", err)
	}
	if info.Mode().Perm() != 0o644 {
		t.Fatalf("unexpected file mode %v", info.Mode().Perm())
	}
}

func TestFSStore_WriteLeavesNoTempFiles(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.WriteFile(ctx, interfaces.WriteRequest{
		Path:    "index.html",
		Content: strings.NewReader("page"),
	}); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	entries, err := os.ReadDir(store.Root())
	if err != nil {
		t.Fatalf("read root: %v", err)
	}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".sitegen-") {
			t.Fatalf("temp file left behind: %s", entry.Name())
		}
	}
}

func TestFSStore_ReadMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.ReadFile(context.Background(), "missing.html")
	if err == nil {
		t.Fatal("expected an error for a missing artifact")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist in the chain, got %v", err)
	}
}

func TestFSStore_RefusesEscapes(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	cases := []string{"../outside.html", "/etc/passwd", "a/../../outside"}
	for _, path := range cases {
		err := store.WriteFile(ctx, interfaces.WriteRequest{
			Path:    path,
			Content: strings.NewReader("x"),
		})
		if err == nil {
			t.Fatalf("path %q should be refused", path)
		}
	}
}

func TestFSStore_EnsureDir(t *testing.T) {
	store := newTestStore(t)

	if err := store.EnsureDir(context.Background(), "assets/css"); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	info, err := os.Stat(filepath.Join(store.Root(), "assets", "css"))
	if err != nil || !info.IsDir() {
		t.Fatalf("directory not created: %v", err)
	}
}

func TestFSStore_RemoveAll(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.WriteFile(ctx, interfaces.WriteRequest{
		Path:    "posts/a/index.html",
		Content: strings.NewReader("a"),
	}); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := store.RemoveAll(ctx, ""); err != nil {
		t.Fatalf("RemoveAll: %v", err)
	}
	if _, err := store.ReadFile(ctx, "posts/a/index.html"); err == nil {
		t.Fatal("artifacts should be gone after RemoveAll")
	}
}

func TestFSStore_ContextCancelled(t *testing.T) {
	store := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := store.WriteFile(ctx, interfaces.WriteRequest{
		Path:    "late.html",
		Content: strings.NewReader("x"),
	}); err == nil {
		t.Fatal("expected a context error")
	}
}
