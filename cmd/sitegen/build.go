package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	sitegen "github.com/goliatone/go-sitegen"
)

var (
	flagIncludeDrafts bool
	flagForce         bool
	flagDryRun        bool
	flagCleanBuild    bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render every post and write the site to the output directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := buildConfig()
		if flagCleanBuild {
			cfg.Generator.CleanBuild = true
		}

		module, err := newModule(cfg)
		if err != nil {
			return err
		}

		result, err := module.Build(cmd.Context(), sitegen.BuildOptions{
			IncludeDrafts: flagIncludeDrafts,
			DryRun:        flagDryRun,
			Force:         flagForce,
		})
		if err != nil {
			reportDiagnostics(result)
			return err
		}

		verb := "built"
		if flagDryRun {
			verb = "would build"
		}
		printSummary(os.Stdout, verb, result)
		return nil
	},
}

func init() {
	buildCmd.Flags().BoolVar(&flagIncludeDrafts, "drafts", false, "include posts marked as drafts")
	buildCmd.Flags().BoolVar(&flagForce, "force", false, "rebuild every page even when unchanged")
	buildCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "report what would be built without writing")
	buildCmd.Flags().BoolVar(&flagCleanBuild, "clean", false, "wipe the output directory before building")
	rootCmd.AddCommand(buildCmd)
}

func reportDiagnostics(result *sitegen.BuildResult) {
	if result == nil {
		return
	}
	for _, diag := range result.Diagnostics {
		if diag.Err == nil {
			continue
		}
		fmt.Fprintf(os.Stderr, "  %s: %v\n", diag.Slug, diag.Err)
	}
}
