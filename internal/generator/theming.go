package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	gotheme "github.com/goliatone/go-theme"
)

// ThemingConfig selects the theme applied to every generated page.
type ThemingConfig struct {
	Name              string
	Variant           string
	Path              string
	CSSVariablePrefix string
	PartialFallbacks  map[string]string
}

// Enabled reports whether a theme directory has been configured.
func (c ThemingConfig) Enabled() bool {
	return strings.TrimSpace(c.Path) != ""
}

type themeManifestLoader interface {
	Load(themePath string) (*gotheme.Manifest, error)
}

type fsThemeManifestLoader struct{}

func (fsThemeManifestLoader) Load(themePath string) (*gotheme.Manifest, error) {
	cleaned := filepath.Clean(strings.TrimSpace(themePath))
	if cleaned == "" {
		return nil, fmt.Errorf("theme path required")
	}
	return gotheme.LoadDir(os.DirFS(cleaned), ".")
}

// themeSelector caches the loaded manifest and resolves a go-theme selection
// for the configured theme and variant.
type themeSelector struct {
	registry *gotheme.MemoryRegistry
	loader   themeManifestLoader
	cfg      ThemingConfig

	mu       sync.Mutex
	manifest *gotheme.Manifest
}

func newThemeSelector(cfg ThemingConfig, loader themeManifestLoader) *themeSelector {
	if loader == nil {
		loader = fsThemeManifestLoader{}
	}
	return &themeSelector{
		registry: gotheme.NewRegistry(),
		loader:   loader,
		cfg:      cfg,
	}
}

// Selection resolves the active theme selection, loading and registering the
// manifest on first use. A nil selector or unconfigured theme yields nil.
func (s *themeSelector) Selection() (*gotheme.Selection, error) {
	if s == nil || !s.cfg.Enabled() {
		return nil, nil
	}

	manifest, err := s.ensureManifest()
	if err != nil {
		return nil, err
	}

	selector := gotheme.Selector{
		Registry:       s.registry,
		DefaultTheme:   manifest.Name,
		DefaultVariant: strings.TrimSpace(s.cfg.Variant),
	}

	selection, err := selector.Select(manifest.Name, strings.TrimSpace(s.cfg.Variant))
	if err != nil {
		return nil, fmt.Errorf("select theme %s: %w", manifest.Name, err)
	}
	return selection, nil
}

func (s *themeSelector) ensureManifest() (*gotheme.Manifest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.manifest != nil {
		return s.manifest, nil
	}

	manifest, err := s.loader.Load(s.cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("load theme manifest from %s: %w", s.cfg.Path, err)
	}

	normalized := *manifest
	if name := strings.TrimSpace(s.cfg.Name); name != "" && !strings.EqualFold(normalized.Name, name) {
		normalized.Name = name
	}
	if strings.TrimSpace(normalized.Name) == "" {
		return nil, fmt.Errorf("theme name required for manifest registration")
	}

	if err := s.registry.Register(&normalized); err != nil {
		return nil, fmt.Errorf("register theme manifest: %w", err)
	}
	s.manifest = &normalized
	return s.manifest, nil
}
