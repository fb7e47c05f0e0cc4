package generator

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"path"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	gotheme "github.com/goliatone/go-theme"
	"github.com/google/uuid"

	"github.com/goliatone/go-sitegen/content"
	"github.com/goliatone/go-sitegen/internal/logging"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

var (
	// ErrServiceDisabled indicates the generator feature is disabled.
	ErrServiceDisabled  = errors.New("generator: service disabled")
	errRendererRequired = errors.New("generator: template renderer is required")
	errMarkdownRequired = errors.New("generator: markdown service is required")
	errStoreRequired    = errors.New("generator: artifact store is required")
)

// Service describes the static site generator contract.
type Service interface {
	Build(ctx context.Context, opts BuildOptions) (*BuildResult, error)
	Clean(ctx context.Context) error
}

// Config captures runtime behaviour toggles for the generator.
type Config struct {
	BaseURL         string
	SiteTitle       string
	SiteDescription string
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
	Theming         ThemingConfig
}

// BuildOptions narrows the scope of a generator run.
type BuildOptions struct {
	IncludeDrafts bool
	DryRun        bool
	Force         bool
}

// BuildResult reports aggregated build metadata.
type BuildResult struct {
	BuildID        uuid.UUID
	PagesBuilt     int
	PagesSkipped   int
	PostsTotal     int
	DraftsExcluded int
	AssetsBuilt    int
	AssetsSkipped  int
	Duration       time.Duration
	Rendered       []RenderedPage
	Diagnostics    []RenderDiagnostic
	Errors         []error
	DryRun         bool
}

// Dependencies lists the services required by the generator.
type Dependencies struct {
	Markdown   interfaces.MarkdownService
	Renderer   interfaces.TemplateRenderer
	Store      interfaces.ArtifactStore
	Permalinks *PermalinkResolver
	Assets     AssetSource
	Logger     interfaces.Logger
}

// NewService wires a generator implementation with the provided configuration and dependencies.
func NewService(cfg Config, deps Dependencies) Service {
	if deps.Logger == nil {
		deps.Logger = logging.NoOp()
	}
	if deps.Permalinks == nil {
		deps.Permalinks = NewPermalinkResolver(cfg.BaseURL)
	}
	return &service{
		cfg:    cfg,
		deps:   deps,
		themes: newThemeSelector(cfg.Theming, nil),
		now:    time.Now,
	}
}

// NewDisabledService returns a Service that fails all operations with ErrServiceDisabled.
func NewDisabledService() Service {
	return disabledService{}
}

type service struct {
	cfg    Config
	deps   Dependencies
	themes *themeSelector
	now    func() time.Time
}

type disabledService struct{}

func (s *service) Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.deps.Renderer == nil {
		return nil, errRendererRequired
	}
	if s.deps.Markdown == nil {
		return nil, errMarkdownRequired
	}

	start := time.Now()
	buildCtx, err := s.loadContext(ctx, opts)
	if err != nil {
		return nil, err
	}

	s.deps.Logger.Info("build started",
		"build_id", buildCtx.BuildID.String(),
		"posts", len(buildCtx.Posts),
		"drafts_excluded", buildCtx.DraftsExcluded,
		"dry_run", opts.DryRun,
	)

	selection, err := s.themes.Selection()
	if err != nil {
		return nil, err
	}
	themeCtx := buildThemeContext(selection, s.cfg.Theming)

	siteMeta := SiteMetadata{
		BaseURL:     strings.TrimRight(s.cfg.BaseURL, "/"),
		Title:       s.cfg.SiteTitle,
		Description: s.cfg.SiteDescription,
		Metadata:    map[string]any{},
	}

	result := &BuildResult{
		BuildID:        buildCtx.BuildID,
		PostsTotal:     len(buildCtx.Posts),
		DraftsExcluded: buildCtx.DraftsExcluded,
		DryRun:         opts.DryRun,
		Diagnostics:    make([]RenderDiagnostic, 0, len(buildCtx.Posts)+1),
	}

	manifest, manifestErr := s.loadManifest(ctx)
	if manifestErr != nil {
		s.deps.Logger.Warn("manifest unreadable, starting fresh", "error", manifestErr)
	}
	if manifest == nil {
		manifest = newBuildManifest()
	}

	summaries := summarizePosts(buildCtx.Posts, s.deps.Permalinks)

	var (
		mu          sync.Mutex
		rendered    = make([]RenderedPage, 0, len(buildCtx.Posts)+1)
		errorsSlice []error
		pageKeys    = map[string]struct{}{}
	)

	collect := func(outcome renderOutcome) {
		mu.Lock()
		defer mu.Unlock()
		result.Diagnostics = append(result.Diagnostics, outcome.diagnostic)
		pageKeys[manifest.pageKey(outcome.diagnostic.Slug)] = struct{}{}
		if outcome.err != nil {
			errorsSlice = append(errorsSlice, outcome.err)
			return
		}
		if outcome.skipped {
			result.PagesSkipped++
			return
		}
		result.PagesBuilt++
		rendered = append(rendered, outcome.page)
	}

	// RenderTimeout bounds the render phase only; writes run on the caller's
	// context so a slow template cannot leave a half-written site behind.
	renderCtx := ctx
	if s.cfg.RenderTimeout > 0 {
		var cancel context.CancelFunc
		renderCtx, cancel = context.WithTimeout(ctx, s.cfg.RenderTimeout)
		defer cancel()
	}

	workerCount := s.effectiveWorkerCount(len(buildCtx.Posts))
	if workerCount <= 1 || len(buildCtx.Posts) <= 1 {
		for _, post := range buildCtx.Posts {
			select {
			case <-renderCtx.Done():
				return result, renderCtx.Err()
			default:
				collect(s.renderPost(renderCtx, siteMeta, buildCtx, post, themeCtx, manifest))
			}
		}
	} else {
		if err := s.renderConcurrently(renderCtx, siteMeta, buildCtx, themeCtx, workerCount, manifest, collect); err != nil {
			errorsSlice = append(errorsSlice, err)
		}
	}

	collect(s.renderIndex(renderCtx, siteMeta, buildCtx, summaries, themeCtx, manifest))

	if opts.DryRun {
		result.Rendered = rendered
		result.Duration = time.Since(start)
		if len(errorsSlice) > 0 {
			result.Errors = append(result.Errors, errorsSlice...)
			return result, errors.Join(errorsSlice...)
		}
		return result, nil
	}

	// Render failures abort before anything is written so a broken source
	// tree never produces a half-updated site.
	if len(errorsSlice) > 0 {
		result.Rendered = rendered
		result.Duration = time.Since(start)
		result.Errors = append(result.Errors, errorsSlice...)
		return result, errors.Join(errorsSlice...)
	}

	if s.deps.Store == nil {
		return nil, errStoreRequired
	}
	writer := newArtifactWriter(s.deps.Store)

	if s.cfg.CleanBuild {
		if err := s.deps.Store.RemoveAll(ctx, ""); err != nil {
			return result, err
		}
		manifest = newBuildManifest()
	}

	if err := s.persistPages(ctx, writer, rendered); err != nil {
		errorsSlice = append(errorsSlice, err)
	}

	var assetKeys map[string]struct{}
	if s.cfg.CopyAssets && selection != nil {
		assetSummary, err := s.copyAssets(ctx, writer, selection, manifest)
		if err != nil {
			errorsSlice = append(errorsSlice, err)
		} else {
			result.AssetsBuilt += assetSummary.Built
			result.AssetsSkipped += assetSummary.Skipped
			assetKeys = assetSummary.Keys
		}
	}

	if s.cfg.GenerateSitemap {
		sitemapPages := s.mergeRenderedForSitemap(buildCtx, rendered, manifest)
		if err := s.writeSitemap(ctx, writer, siteMeta, buildCtx, sitemapPages); err != nil {
			errorsSlice = append(errorsSlice, err)
		}
	}

	if s.cfg.GenerateRobots {
		if err := s.writeRobots(ctx, writer, siteMeta); err != nil {
			errorsSlice = append(errorsSlice, err)
		}
	}

	if s.cfg.GenerateFeeds {
		items := s.buildFeedItems(buildCtx)
		if _, err := s.writeFeeds(ctx, writer, siteMeta, buildCtx, items); err != nil {
			errorsSlice = append(errorsSlice, err)
		}
	}

	if len(errorsSlice) == 0 {
		manifest.GeneratedAt = buildCtx.GeneratedAt
		manifest.BuildID = buildCtx.BuildID.String()
		for _, page := range rendered {
			if strings.TrimSpace(page.Checksum) == "" {
				continue
			}
			manifest.setPage(manifestPage{
				PostID:       page.PostID.String(),
				Slug:         page.Slug,
				Route:        page.Route,
				Output:       page.Output,
				Template:     page.Template,
				Hash:         page.Hash,
				Checksum:     page.Checksum,
				Draft:        page.Draft,
				LastModified: page.LastModified,
				RenderedAt:   buildCtx.GeneratedAt,
			})
		}
		manifest.prunePages(pageKeys)
		manifest.pruneAssets(assetKeys)
		if err := s.persistManifest(ctx, writer, manifest); err != nil {
			errorsSlice = append(errorsSlice, err)
		}
	}

	result.Rendered = rendered
	result.Duration = time.Since(start)
	if len(errorsSlice) > 0 {
		result.Errors = append(result.Errors, errorsSlice...)
		return result, errors.Join(errorsSlice...)
	}

	s.deps.Logger.Info("build finished",
		"build_id", result.BuildID.String(),
		"pages_built", result.PagesBuilt,
		"pages_skipped", result.PagesSkipped,
		"assets_built", result.AssetsBuilt,
		"duration", result.Duration,
	)
	return result, nil
}

// Clean removes every artifact beneath the output root.
func (s *service) Clean(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if s.deps.Store == nil {
		return errStoreRequired
	}
	return s.deps.Store.RemoveAll(ctx, "")
}

func (s *service) renderConcurrently(
	ctx context.Context,
	siteMeta SiteMetadata,
	buildCtx *BuildContext,
	themeCtx ThemeContext,
	workers int,
	manifest *buildManifest,
	collect func(renderOutcome),
) error {
	jobs := make(chan *content.Post)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for post := range jobs {
				select {
				case <-ctx.Done():
					collect(renderOutcome{
						diagnostic: RenderDiagnostic{
							PostID: post.ID,
							Slug:   post.Slug,
							Route:  postRoute(post.Slug),
							Err:    ctx.Err(),
						},
						err: ctx.Err(),
					})
					return
				default:
					collect(s.renderPost(ctx, siteMeta, buildCtx, post, themeCtx, manifest))
				}
			}
		}()
	}

	for _, post := range buildCtx.Posts {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return ctx.Err()
		case jobs <- post:
		}
	}
	close(jobs)
	wg.Wait()
	return nil
}

func (s *service) renderPost(
	ctx context.Context,
	siteMeta SiteMetadata,
	buildCtx *BuildContext,
	post *content.Post,
	themeCtx ThemeContext,
	manifest *buildManifest,
) renderOutcome {
	route := postRoute(post.Slug)
	outcome := renderOutcome{
		diagnostic: RenderDiagnostic{
			PostID: post.ID,
			Slug:   post.Slug,
			Route:  route,
		},
	}

	select {
	case <-ctx.Done():
		outcome.err = ctx.Err()
		outcome.diagnostic.Err = ctx.Err()
		return outcome
	default:
	}

	templateName := s.postTemplateName(post)
	outcome.diagnostic.Template = templateName

	output := postOutputPath(post.Slug)
	hash := pageHash(post, templateName)

	if s.cfg.Incremental && !buildCtx.Options.Force && manifest.shouldSkipPage(post.Slug, hash, output) {
		outcome.skipped = true
		outcome.diagnostic.Skipped = true
		return outcome
	}

	permalink := ""
	if s.deps.Permalinks != nil {
		if url, err := s.deps.Permalinks.PostURL(post.Slug); err == nil {
			permalink = url
		}
	}

	templateCtx := TemplateContext{
		Site: siteMeta,
		Post: &PostRenderingContext{
			Post:      post,
			Route:     route,
			Permalink: permalink,
		},
		Build: BuildMetadata{
			GeneratedAt: buildCtx.GeneratedAt,
			Options:     buildCtx.Options,
		},
		Theme:   themeCtx,
		Helpers: NewTemplateHelpers(siteMeta.BaseURL),
	}

	start := time.Now()
	html, err := s.deps.Renderer.RenderTemplate(templateName, templateCtx)
	duration := time.Since(start)
	outcome.diagnostic.Duration = duration
	if err != nil {
		wrapped := fmt.Errorf("generator: render template %q for post %s: %w", templateName, post.Slug, err)
		outcome.err = wrapped
		outcome.diagnostic.Err = wrapped
		return outcome
	}

	outcome.page = RenderedPage{
		PostID:       post.ID,
		Slug:         post.Slug,
		Route:        route,
		Output:       output,
		Template:     templateName,
		HTML:         html,
		Hash:         hash,
		Draft:        post.Draft,
		LastModified: post.LastModified,
		Duration:     duration,
	}
	return outcome
}

func (s *service) renderIndex(
	ctx context.Context,
	siteMeta SiteMetadata,
	buildCtx *BuildContext,
	summaries []PostSummary,
	themeCtx ThemeContext,
	manifest *buildManifest,
) renderOutcome {
	templateName := s.indexTemplateName()
	outcome := renderOutcome{
		diagnostic: RenderDiagnostic{
			Slug:     "",
			Route:    "/",
			Template: templateName,
		},
	}

	select {
	case <-ctx.Done():
		outcome.err = ctx.Err()
		outcome.diagnostic.Err = ctx.Err()
		return outcome
	default:
	}

	hash := indexHash(buildCtx.Posts, templateName)
	if s.cfg.Incremental && !buildCtx.Options.Force && manifest.shouldSkipPage("", hash, indexOutputPath) {
		outcome.skipped = true
		outcome.diagnostic.Skipped = true
		return outcome
	}

	templateCtx := TemplateContext{
		Site:  siteMeta,
		Posts: summaries,
		Build: BuildMetadata{
			GeneratedAt: buildCtx.GeneratedAt,
			Options:     buildCtx.Options,
		},
		Theme:   themeCtx,
		Helpers: NewTemplateHelpers(siteMeta.BaseURL),
	}

	start := time.Now()
	html, err := s.deps.Renderer.RenderTemplate(templateName, templateCtx)
	duration := time.Since(start)
	outcome.diagnostic.Duration = duration
	if err != nil {
		wrapped := fmt.Errorf("generator: render template %q for index: %w", templateName, err)
		outcome.err = wrapped
		outcome.diagnostic.Err = wrapped
		return outcome
	}

	lastModified := buildCtx.GeneratedAt
	if len(buildCtx.Posts) > 0 && buildCtx.Posts[0] != nil {
		lastModified = buildCtx.Posts[0].Date
	}

	outcome.page = RenderedPage{
		Slug:         "",
		Route:        "/",
		Output:       indexOutputPath,
		Template:     templateName,
		HTML:         html,
		Hash:         hash,
		LastModified: lastModified,
		Duration:     duration,
	}
	return outcome
}

func (s *service) persistPages(ctx context.Context, writer artifactWriter, pages []RenderedPage) error {
	if len(pages) == 0 {
		return nil
	}
	dirCache := map[string]struct{}{}
	for i := range pages {
		if err := ensureDir(ctx, writer, dirCache, path.Dir(pages[i].Output)); err != nil {
			return err
		}
		checksum := computeHashFromString(pages[i].HTML)
		pages[i].Checksum = checksum

		metadata := map[string]string{
			"slug":     pages[i].Slug,
			"route":    pages[i].Route,
			"template": pages[i].Template,
		}
		if pages[i].PostID != uuid.Nil {
			metadata["post_id"] = pages[i].PostID.String()
		}
		if s.cfg.Incremental {
			metadata["incremental"] = "true"
		}

		category := categoryPage
		if pages[i].Output == indexOutputPath {
			category = categoryIndex
		}
		req := writeFileRequest{
			Path:        pages[i].Output,
			Content:     strings.NewReader(pages[i].HTML),
			Size:        int64(len(pages[i].HTML)),
			Category:    category,
			ContentType: "text/html; charset=utf-8",
			Checksum:    checksum,
			Metadata:    metadata,
		}
		if err := writer.WriteFile(ctx, req); err != nil {
			return err
		}
	}
	return nil
}

type assetCopySummary struct {
	Built   int
	Skipped int
	// Keys lists every asset seen this run so stale manifest entries can be pruned.
	Keys map[string]struct{}
}

func (s *service) copyAssets(
	ctx context.Context,
	writer artifactWriter,
	selection *gotheme.Selection,
	manifest *buildManifest,
) (assetCopySummary, error) {
	summary := assetCopySummary{Keys: map[string]struct{}{}}
	if s.deps.Assets == nil || selection == nil {
		return summary, nil
	}

	themeName := selection.Theme
	dirCache := map[string]struct{}{}
	for _, asset := range collectThemeAssets(selection) {
		summary.Keys[manifest.assetKey(themeName, asset)] = struct{}{}
		reader, err := s.deps.Assets.Open(ctx, asset)
		if err != nil {
			return summary, err
		}
		data, err := io.ReadAll(reader)
		_ = reader.Close()
		if err != nil {
			return summary, err
		}

		destRel := path.Join("assets", strings.TrimLeft(asset, "/"))
		checksum := computeHash(data)
		if s.cfg.Incremental && manifest.shouldSkipAsset(themeName, asset, checksum, destRel) {
			summary.Skipped++
			continue
		}
		if err := ensureDir(ctx, writer, dirCache, path.Dir(destRel)); err != nil {
			return summary, err
		}
		req := writeFileRequest{
			Path:        destRel,
			Content:     bytes.NewReader(data),
			Size:        int64(len(data)),
			Category:    categoryAsset,
			ContentType: detectAssetContentType(destRel),
			Checksum:    checksum,
			Metadata: map[string]string{
				"theme": themeName,
				"asset": asset,
			},
		}
		if err := writer.WriteFile(ctx, req); err != nil {
			return summary, err
		}
		summary.Built++
		manifest.setAsset(manifestAsset{
			Key:      manifest.assetKey(themeName, asset),
			Theme:    themeName,
			Source:   asset,
			Output:   destRel,
			Checksum: checksum,
			Size:     int64(len(data)),
			CopiedAt: s.now(),
		})
	}
	return summary, nil
}

func (s *service) mergeRenderedForSitemap(
	buildCtx *BuildContext,
	rendered []RenderedPage,
	manifest *buildManifest,
) []RenderedPage {
	renderedBySlug := make(map[string]RenderedPage, len(rendered))
	for _, page := range rendered {
		renderedBySlug[manifest.pageKey(page.Slug)] = page
	}

	sitemap := make([]RenderedPage, 0, len(buildCtx.Posts)+1)
	appendEntry := func(slug, route string, lastModified time.Time) {
		key := manifest.pageKey(slug)
		if page, ok := renderedBySlug[key]; ok {
			sitemap = append(sitemap, page)
			return
		}
		if entry, ok := manifest.lookupPage(slug); ok {
			sitemap = append(sitemap, RenderedPage{
				Slug:         entry.Slug,
				Route:        entry.Route,
				Output:       entry.Output,
				Template:     entry.Template,
				Checksum:     entry.Checksum,
				Hash:         entry.Hash,
				LastModified: entry.LastModified,
			})
			return
		}
		sitemap = append(sitemap, RenderedPage{
			Slug:         slug,
			Route:        route,
			LastModified: lastModified,
		})
	}

	appendEntry("", "/", buildCtx.GeneratedAt)
	for _, post := range buildCtx.Posts {
		if post == nil {
			continue
		}
		appendEntry(post.Slug, postRoute(post.Slug), post.LastModified)
	}
	return sitemap
}

func (s *service) loadManifest(ctx context.Context) (*buildManifest, error) {
	if s.deps.Store == nil || !s.cfg.Incremental {
		return newBuildManifest(), nil
	}
	data, err := s.deps.Store.ReadFile(ctx, manifestFileName)
	if err != nil {
		// A missing manifest just means a full rebuild.
		return newBuildManifest(), nil
	}
	return parseManifest(data)
}

func (s *service) persistManifest(ctx context.Context, writer artifactWriter, manifest *buildManifest) error {
	if manifest == nil {
		return nil
	}
	data, err := manifest.marshal()
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	metadata := map[string]string{
		"version": strconv.Itoa(manifest.Version),
	}
	if !manifest.GeneratedAt.IsZero() {
		metadata["generated_at"] = manifest.GeneratedAt.UTC().Format(time.RFC3339)
	}
	return writer.WriteFile(ctx, writeFileRequest{
		Path:        manifestFileName,
		Content:     bytes.NewReader(data),
		Size:        int64(len(data)),
		Category:    categoryManifest,
		ContentType: "application/json",
		Checksum:    computeHash(data),
		Metadata:    metadata,
	})
}

func (s *service) writeSitemap(
	ctx context.Context,
	writer artifactWriter,
	siteMeta SiteMetadata,
	buildCtx *BuildContext,
	pages []RenderedPage,
) error {
	sitemap := buildSitemap(siteMeta.BaseURL, pages, buildCtx.GeneratedAt)
	checksum := computeHashFromString(sitemap)
	return writer.WriteFile(ctx, writeFileRequest{
		Path:        "sitemap.xml",
		Content:     strings.NewReader(sitemap),
		Size:        int64(len(sitemap)),
		Category:    categorySitemap,
		ContentType: "application/xml",
		Checksum:    checksum,
		Metadata: map[string]string{
			"generated_at": buildCtx.GeneratedAt.UTC().Format(time.RFC3339),
		},
	})
}

func (s *service) writeRobots(ctx context.Context, writer artifactWriter, siteMeta SiteMetadata) error {
	robots := buildRobots(siteMeta.BaseURL, s.cfg.GenerateSitemap)
	checksum := computeHashFromString(robots)
	return writer.WriteFile(ctx, writeFileRequest{
		Path:        "robots.txt",
		Content:     strings.NewReader(robots),
		Size:        int64(len(robots)),
		Category:    categoryRobots,
		ContentType: "text/plain; charset=utf-8",
		Checksum:    checksum,
		Metadata: map[string]string{
			"generated_at": s.now().UTC().Format(time.RFC3339),
		},
	})
}

func (s *service) postTemplateName(post *content.Post) string {
	if post != nil && strings.TrimSpace(post.Template) != "" {
		return strings.TrimSpace(post.Template)
	}
	if strings.TrimSpace(s.cfg.PostTemplate) != "" {
		return strings.TrimSpace(s.cfg.PostTemplate)
	}
	return "post"
}

func (s *service) indexTemplateName() string {
	if strings.TrimSpace(s.cfg.IndexTemplate) != "" {
		return strings.TrimSpace(s.cfg.IndexTemplate)
	}
	return "index"
}

func (s *service) effectiveWorkerCount(postCount int) int {
	workers := s.cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers < 1 {
		workers = 1
	}
	if postCount > 0 && workers > postCount {
		return postCount
	}
	return workers
}

func ensureDir(ctx context.Context, writer artifactWriter, cache map[string]struct{}, dir string) error {
	dir = strings.Trim(dir, " ")
	if dir == "" || dir == "." {
		return nil
	}
	if cache != nil {
		if _, ok := cache[dir]; ok {
			return nil
		}
		cache[dir] = struct{}{}
	}
	return writer.EnsureDir(ctx, dir)
}

// pageHash identifies a post rendering input. It covers the source checksum
// and everything else that shapes the output page.
func pageHash(post *content.Post, template string) string {
	hasher := sha256.New()
	hasher.Write(post.Checksum)
	io.WriteString(hasher, "\x00"+post.Slug)
	io.WriteString(hasher, "\x00"+template)
	io.WriteString(hasher, "\x00"+post.Date.UTC().Format(time.RFC3339))
	if post.Draft {
		io.WriteString(hasher, "\x00draft")
	}
	return hex.EncodeToString(hasher.Sum(nil))
}

// indexHash changes whenever any post visible on the index changes.
func indexHash(posts []*content.Post, template string) string {
	hasher := sha256.New()
	io.WriteString(hasher, template)
	for _, post := range posts {
		if post == nil {
			continue
		}
		io.WriteString(hasher, "\x00"+pageHash(post, template))
	}
	return hex.EncodeToString(hasher.Sum(nil))
}

func computeHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func computeHashFromString(content string) string {
	return computeHash([]byte(content))
}

func (disabledService) Build(context.Context, BuildOptions) (*BuildResult, error) {
	return nil, ErrServiceDisabled
}

func (disabledService) Clean(context.Context) error {
	return ErrServiceDisabled
}
