package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"glyphforge/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "glyphforge",
	Short: "Grid-to-code pattern compiler and verifier",
	Long: `glyphforge analyzes 2D character grids, compiles them into minimal
restricted-grammar C programs, and verifies that a program's output
reproduces the grid exactly.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// fatih/color auto-detects TTYs; "on"/"off" force it either way.
		switch mode, _ := cmd.Flags().GetString("color"); mode {
		case "on":
			color.NoColor = false
		case "off":
			color.NoColor = true
		}
	},
}

// main registers subcommands and persistent flags, then executes the root
// command; a failed subcommand exits with status 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
