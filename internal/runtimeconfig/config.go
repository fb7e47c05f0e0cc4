package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrContentDirRequired = errors.New("sitegen config: content directory is required")
var ErrOutputDirRequired = errors.New("sitegen config: output directory is required")
var ErrWorkersInvalid = errors.New("sitegen config: workers must be zero or positive")
var ErrThemePathRequired = errors.New("sitegen config: theme path is required when a theme is named")
var ErrLoggingProviderRequired = errors.New("sitegen config: logging provider is required when logging is enabled")
var ErrLoggingProviderUnknown = errors.New("sitegen config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("sitegen config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("sitegen config: logging format is invalid")

// Config aggregates runtime options for the site builder. Fields intentionally
// use simple types so host applications can extend them later.
type Config struct {
	Site      SiteConfig
	Content   ContentConfig
	Generator GeneratorConfig
	Theme     ThemeConfig
	Templates TemplateConfig
	Commands  CommandsConfig
	Logging   LoggingConfig
}

// SiteConfig captures site-wide metadata surfaced to templates and feeds.
type SiteConfig struct {
	BaseURL     string
	Title       string
	Description string
}

// ContentConfig captures filesystem and parser behaviour for Markdown ingestion.
type ContentConfig struct {
	Dir       string
	Pattern   string
	Recursive bool
	Parser    ParserConfig
}

// ParserConfig mirrors interfaces.ParseOptions for runtime configuration.
type ParserConfig struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// GeneratorConfig captures behaviour for the static site generator.
type GeneratorConfig struct {
	OutputDir       string
	CleanBuild      bool
	Incremental     bool
	CopyAssets      bool
	GenerateSitemap bool
	GenerateRobots  bool
	GenerateFeeds   bool
	Workers         int
	PostTemplate    string
	IndexTemplate   string
	RenderTimeout   time.Duration
}

// ThemeConfig captures the active theme selection.
type ThemeConfig struct {
	Name              string
	Variant           string
	Path              string
	CSSVariablePrefix string
	PartialFallbacks  map[string]string
}

// TemplateConfig points at template overrides for the built-in renderer.
type TemplateConfig struct {
	Dir string
}

// CommandsConfig captures optional command-layer behaviour.
type CommandsConfig struct {
	Enabled bool
	Timeout time.Duration
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Enabled   bool
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults for a publishable site.
func DefaultConfig() Config {
	return Config{
		Site: SiteConfig{
			BaseURL: "http://localhost",
		},
		Content: ContentConfig{
			Dir:       "content",
			Pattern:   "*.md",
			Recursive: true,
		},
		Generator: GeneratorConfig{
			OutputDir:       "dist",
			CleanBuild:      false,
			Incremental:     true,
			CopyAssets:      true,
			GenerateSitemap: true,
			GenerateRobots:  true,
			GenerateFeeds:   true,
			Workers:         0,
		},
		Commands: CommandsConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Enabled:  true,
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Content.Dir) == "" {
		return ErrContentDirRequired
	}
	if strings.TrimSpace(cfg.Generator.OutputDir) == "" {
		return ErrOutputDirRequired
	}
	if cfg.Generator.Workers < 0 {
		return ErrWorkersInvalid
	}
	if strings.TrimSpace(cfg.Theme.Name) != "" && strings.TrimSpace(cfg.Theme.Path) == "" {
		return ErrThemePathRequired
	}
	if cfg.Logging.Enabled {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
