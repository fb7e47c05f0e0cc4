package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagDiffDrafts bool

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Report which pages a build would write without touching the output",
	RunE: func(cmd *cobra.Command, args []string) error {
		module, err := newModule(buildConfig())
		if err != nil {
			return err
		}

		result, err := module.Diff(cmd.Context(), flagDiffDrafts)
		if err != nil {
			reportDiagnostics(result)
			return err
		}
		if result == nil {
			return nil
		}

		for _, page := range result.Rendered {
			fmt.Fprintf(os.Stdout, "  write %s\n", page.Output)
		}
		printSummary(os.Stdout, "would build", result)
		return nil
	},
}

func init() {
	diffCmd.Flags().BoolVar(&flagDiffDrafts, "drafts", false, "include posts marked as drafts")
	rootCmd.AddCommand(diffCmd)
}
