package generator

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	gotheme "github.com/goliatone/go-theme"
)

// AssetSource resolves theme assets for copying into static outputs.
type AssetSource interface {
	Open(ctx context.Context, asset string) (io.ReadCloser, error)
}

// DirAssetSource serves assets from the theme directory on disk.
type DirAssetSource struct {
	Root string
}

func (s DirAssetSource) Open(ctx context.Context, asset string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cleaned := filepath.Clean(strings.TrimPrefix(strings.TrimSpace(asset), "/"))
	if cleaned == "" || cleaned == "." || strings.HasPrefix(cleaned, "..") {
		return nil, fmt.Errorf("generator: invalid asset path %q", asset)
	}
	file, err := os.Open(filepath.Join(s.Root, cleaned))
	if err != nil {
		return nil, fmt.Errorf("generator: open asset %s: %w", asset, err)
	}
	return file, nil
}

// collectThemeAssets lists the manifest assets for the active selection,
// preferring variant overrides when present.
func collectThemeAssets(selection *gotheme.Selection) []string {
	if selection == nil || selection.Manifest == nil {
		return nil
	}

	assets := selection.Manifest.Assets.Files
	if variant := strings.TrimSpace(selection.Variant); variant != "" {
		if v, ok := selection.Manifest.Variants[variant]; ok && len(v.Assets.Files) > 0 {
			merged := make(map[string]string, len(selection.Manifest.Assets.Files)+len(v.Assets.Files))
			for key, value := range selection.Manifest.Assets.Files {
				merged[key] = value
			}
			for key, value := range v.Assets.Files {
				merged[key] = value
			}
			assets = merged
		}
	}

	seen := map[string]struct{}{}
	var out []string
	for _, asset := range assets {
		asset = strings.TrimPrefix(strings.TrimSpace(asset), "/")
		if asset == "" {
			continue
		}
		if _, ok := seen[asset]; ok {
			continue
		}
		seen[asset] = struct{}{}
		out = append(out, filepath.ToSlash(asset))
	}
	return out
}

func detectAssetContentType(asset string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(asset), "."))
	switch ext {
	case "css":
		return "text/css"
	case "js":
		return "application/javascript"
	case "json":
		return "application/json"
	case "svg":
		return "image/svg+xml"
	case "png":
		return "image/png"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	case "ico":
		return "image/x-icon"
	case "woff2":
		return "font/woff2"
	default:
		return "application/octet-stream"
	}
}
