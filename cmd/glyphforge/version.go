package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"glyphforge/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show glyphforge build fingerprints",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("glyphforge %s\n", version.Pretty())
		if version.GitCommit != "" {
			fmt.Printf("commit: %s\n", version.GitCommit)
		}
		if version.BuildDate != "" {
			fmt.Printf("built:  %s\n", version.BuildDate)
		}

		return nil
	},
}
