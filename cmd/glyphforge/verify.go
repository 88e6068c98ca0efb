package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"glyphforge/verify"
)

var verifyMaxDifferences int

func init() {
	verifyCmd.Flags().IntVar(&verifyMaxDifferences, "max-differences", 0,
		"maximum itemized mismatches (0 = config/default)")
}

// errOutputMismatch makes a failed verification exit non-zero without
// cobra reprinting usage.
var errOutputMismatch = errors.New("output does not match the grid")

var verifyCmd = &cobra.Command{
	Use:   "verify <grid.txt> <output.txt>",
	Short: "Check a program's output against the grid, byte for byte",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGridFile(args[0])
		if err != nil {
			return err
		}
		candidate, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("failed to read output file: %w", err)
		}
		cfg, err := loadConfig(".")
		if err != nil {
			return err
		}
		limit := verifyMaxDifferences
		if limit <= 0 {
			limit = cfg.Report.MaxDifferences
		}

		res := verify.Validate(g, string(candidate))
		report := verify.Report(res, verify.Options{MaxDifferences: limit})
		if res.Valid {
			color.New(color.FgGreen).Println(report)

			return nil
		}
		color.New(color.FgRed).Println(report)

		return errOutputMismatch
	},
}
