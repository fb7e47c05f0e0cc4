package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	sitegen "github.com/goliatone/go-sitegen"
)

var (
	flagContentDir  string
	flagOutputDir   string
	flagBaseURL     string
	flagSiteTitle   string
	flagSiteDesc    string
	flagThemeName   string
	flagThemePath   string
	flagTemplateDir string
	flagLogLevel    string
	flagQuiet       bool
	flagWorkers     int
)

var rootCmd = &cobra.Command{
	Use:   "sitegen",
	Short: "Build a static site from a directory of Markdown posts",
	Long: `sitegen reads Markdown posts with YAML front-matter, renders them to HTML
and assembles a complete static site: one page per post, a reverse
chronological index, feeds, a sitemap and theme assets.`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&flagContentDir, "content", "c", "content", "directory containing Markdown posts")
	flags.StringVarP(&flagOutputDir, "output", "o", "dist", "directory to write the generated site into")
	flags.StringVar(&flagBaseURL, "base-url", "", "absolute base URL used for permalinks and feeds")
	flags.StringVar(&flagSiteTitle, "title", "", "site title surfaced to templates and feeds")
	flags.StringVar(&flagSiteDesc, "description", "", "site description surfaced to templates and feeds")
	flags.StringVar(&flagThemeName, "theme", "", "theme name to apply from the theme path")
	flags.StringVar(&flagThemePath, "theme-path", "", "directory containing theme manifests and assets")
	flags.StringVar(&flagTemplateDir, "templates", "", "directory with template overrides for the built-in renderer")
	flags.StringVar(&flagLogLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.BoolVarP(&flagQuiet, "quiet", "q", false, "disable log output")
	flags.IntVar(&flagWorkers, "workers", 0, "number of render workers, 0 picks a sensible default")
}

// buildConfig folds the persistent flags over the library defaults.
func buildConfig() sitegen.Config {
	cfg := sitegen.DefaultConfig()
	cfg.Content.Dir = flagContentDir
	cfg.Generator.OutputDir = flagOutputDir
	cfg.Generator.Workers = flagWorkers
	if flagBaseURL != "" {
		cfg.Site.BaseURL = flagBaseURL
	}
	cfg.Site.Title = flagSiteTitle
	cfg.Site.Description = flagSiteDesc
	cfg.Theme.Name = flagThemeName
	cfg.Theme.Path = flagThemePath
	cfg.Templates.Dir = flagTemplateDir
	cfg.Logging.Level = flagLogLevel
	if flagQuiet {
		cfg.Logging.Enabled = false
	}
	return cfg
}

func newModule(cfg sitegen.Config) (*sitegen.Module, error) {
	module, err := sitegen.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("initialize site builder: %w", err)
	}
	return module, nil
}

func printSummary(out *os.File, verb string, result *sitegen.BuildResult) {
	if result == nil {
		return
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %d page(s)", verb, result.PagesBuilt)
	if result.PagesSkipped > 0 {
		fmt.Fprintf(&sb, ", %d unchanged", result.PagesSkipped)
	}
	if result.AssetsBuilt > 0 || result.AssetsSkipped > 0 {
		fmt.Fprintf(&sb, ", %d asset(s)", result.AssetsBuilt)
	}
	if result.DraftsExcluded > 0 {
		fmt.Fprintf(&sb, ", %d draft(s) excluded", result.DraftsExcluded)
	}
	fmt.Fprintf(&sb, " in %s", result.Duration.Round(time.Millisecond))
	fmt.Fprintln(out, sb.String())
}
