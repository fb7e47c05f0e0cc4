// Package sitegen turns a directory of Markdown posts into a static site:
// per-post pages, an index, feeds, a sitemap, and theme assets.
package sitegen

import (
	"context"
	"strings"

	"github.com/goliatone/go-sitegen/content"
	fsstore "github.com/goliatone/go-sitegen/internal/adapters/storage"
	"github.com/goliatone/go-sitegen/internal/commands"
	staticcmd "github.com/goliatone/go-sitegen/internal/commands/static"
	"github.com/goliatone/go-sitegen/internal/generator"
	"github.com/goliatone/go-sitegen/internal/logging"
	"github.com/goliatone/go-sitegen/internal/logging/console"
	"github.com/goliatone/go-sitegen/internal/logging/gologger"
	"github.com/goliatone/go-sitegen/internal/markdown"
	"github.com/goliatone/go-sitegen/internal/render"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

// GeneratorService exports the static site generator contract.
type GeneratorService = generator.Service

// BuildOptions exports the generator build options.
type BuildOptions = generator.BuildOptions

// BuildResult exports the generator build result.
type BuildResult = generator.BuildResult

// Post exports the assembled post model.
type Post = content.Post

// Module is the top level site builder runtime facade.
type Module struct {
	cfg       Config
	providers interfaces.LoggerProvider
	markdown  interfaces.MarkdownService
	renderer  interfaces.TemplateRenderer
	store     interfaces.ArtifactStore
	generator generator.Service

	buildHandler *staticcmd.BuildSiteHandler
	diffHandler  *staticcmd.DiffSiteHandler
	cleanHandler *staticcmd.CleanSiteHandler
}

// Option overrides a wired dependency, mostly used by tests and embedders.
type Option func(*Module)

// WithRenderer swaps the built-in HTML renderer.
func WithRenderer(renderer interfaces.TemplateRenderer) Option {
	return func(m *Module) {
		if renderer != nil {
			m.renderer = renderer
		}
	}
}

// WithArtifactStore swaps the filesystem artifact store.
func WithArtifactStore(store interfaces.ArtifactStore) Option {
	return func(m *Module) {
		if store != nil {
			m.store = store
		}
	}
}

// WithLoggerProvider swaps the logger provider configured through LoggingConfig.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		if provider != nil {
			m.providers = provider
		}
	}
}

// New constructs the site builder using the provided configuration.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{cfg: cfg}
	for _, opt := range opts {
		opt(m)
	}

	if m.providers == nil {
		provider, err := newLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		m.providers = provider
	}

	if m.markdown == nil {
		service, err := markdown.NewService(markdown.Config{
			BasePath:  cfg.Content.Dir,
			Pattern:   cfg.Content.Pattern,
			Recursive: cfg.Content.Recursive,
			Logger:    logging.MarkdownLogger(m.providers),
			Parser: interfaces.ParseOptions{
				Extensions: cfg.Content.Parser.Extensions,
				Sanitize:   cfg.Content.Parser.Sanitize,
				HardWraps:  cfg.Content.Parser.HardWraps,
				SafeMode:   cfg.Content.Parser.SafeMode,
			},
		}, nil)
		if err != nil {
			return nil, err
		}
		m.markdown = service
	}

	if m.renderer == nil {
		m.renderer = render.NewHTMLRenderer(render.Config{
			TemplateDir: cfg.Templates.Dir,
		})
	}

	if m.store == nil {
		store, err := fsstore.NewFSStore(cfg.Generator.OutputDir)
		if err != nil {
			return nil, err
		}
		m.store = store
	}

	theming := generator.ThemingConfig{
		Name:              cfg.Theme.Name,
		Variant:           cfg.Theme.Variant,
		Path:              cfg.Theme.Path,
		CSSVariablePrefix: cfg.Theme.CSSVariablePrefix,
		PartialFallbacks:  cfg.Theme.PartialFallbacks,
	}

	deps := generator.Dependencies{
		Markdown: m.markdown,
		Renderer: m.renderer,
		Store:    m.store,
		Logger:   logging.GeneratorLogger(m.providers),
	}
	if theming.Enabled() {
		deps.Assets = generator.DirAssetSource{Root: cfg.Theme.Path}
	}

	m.generator = generator.NewService(generator.Config{
		BaseURL:         cfg.Site.BaseURL,
		SiteTitle:       cfg.Site.Title,
		SiteDescription: cfg.Site.Description,
		CleanBuild:      cfg.Generator.CleanBuild,
		Incremental:     cfg.Generator.Incremental,
		CopyAssets:      cfg.Generator.CopyAssets,
		GenerateSitemap: cfg.Generator.GenerateSitemap,
		GenerateRobots:  cfg.Generator.GenerateRobots,
		GenerateFeeds:   cfg.Generator.GenerateFeeds,
		Workers:         cfg.Generator.Workers,
		PostTemplate:    cfg.Generator.PostTemplate,
		IndexTemplate:   cfg.Generator.IndexTemplate,
		RenderTimeout:   cfg.Generator.RenderTimeout,
		Theming:         theming,
	}, deps)

	gates := staticcmd.FeatureGates{
		GeneratorEnabled: func() bool { return cfg.Commands.Enabled },
	}
	cmdLogger := logging.ModuleLogger(m.providers, "sitegen.commands.static")

	var buildOpts []commands.HandlerOption[staticcmd.BuildSiteCommand]
	var diffOpts []commands.HandlerOption[staticcmd.DiffSiteCommand]
	var cleanOpts []commands.HandlerOption[staticcmd.CleanSiteCommand]
	if cfg.Commands.Timeout > 0 {
		buildOpts = append(buildOpts, commands.WithTimeout[staticcmd.BuildSiteCommand](cfg.Commands.Timeout))
		diffOpts = append(diffOpts, commands.WithTimeout[staticcmd.DiffSiteCommand](cfg.Commands.Timeout))
		cleanOpts = append(cleanOpts, commands.WithTimeout[staticcmd.CleanSiteCommand](cfg.Commands.Timeout))
	}

	m.buildHandler = staticcmd.NewBuildSiteHandler(m.generator, cmdLogger, gates, buildOpts...)
	m.diffHandler = staticcmd.NewDiffSiteHandler(m.generator, cmdLogger, gates, diffOpts...)
	m.cleanHandler = staticcmd.NewCleanSiteHandler(m.generator, cmdLogger, gates, cleanOpts...)

	return m, nil
}

// Generator returns the wired generator service.
func (m *Module) Generator() GeneratorService {
	return m.generator
}

// Markdown returns the wired Markdown service.
func (m *Module) Markdown() interfaces.MarkdownService {
	return m.markdown
}

// Build runs a full site build through the command layer.
func (m *Module) Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	var captured *BuildResult
	err := m.buildHandler.Execute(ctx, staticcmd.BuildSiteCommand{
		IncludeDrafts: opts.IncludeDrafts,
		DryRun:        opts.DryRun,
		Force:         opts.Force,
		ResultCallback: func(envelope staticcmd.ResultEnvelope) {
			captured = envelope.Result
		},
	})
	return captured, err
}

// Diff runs a dry-run build and reports what would change.
func (m *Module) Diff(ctx context.Context, includeDrafts bool) (*BuildResult, error) {
	var captured *BuildResult
	err := m.diffHandler.Execute(ctx, staticcmd.DiffSiteCommand{
		IncludeDrafts: includeDrafts,
		ResultCallback: func(envelope staticcmd.ResultEnvelope) {
			captured = envelope.Result
		},
	})
	return captured, err
}

// Clean removes every generated artifact from the output directory.
func (m *Module) Clean(ctx context.Context) error {
	return m.cleanHandler.Execute(ctx, staticcmd.CleanSiteCommand{})
}

func newLoggerProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	if !cfg.Enabled {
		return noopProvider{}, nil
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "console":
		level := console.ParseLevel(cfg.Level)
		return console.NewProvider(console.Options{MinLevel: &level}), nil
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
	default:
		return nil, ErrLoggingProviderUnknown
	}
}

type noopProvider struct{}

func (noopProvider) GetLogger(string) interfaces.Logger { return logging.NoOp() }
