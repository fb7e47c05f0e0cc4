package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove every generated artifact from the output directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		module, err := newModule(buildConfig())
		if err != nil {
			return err
		}
		if err := module.Clean(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "cleaned %s\n", flagOutputDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}
