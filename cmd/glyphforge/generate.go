package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"glyphforge/codegen"
	"glyphforge/pattern"
)

var generateOutput string

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "write the program to a file instead of stdout")
}

var generateCmd = &cobra.Command{
	Use:     "generate <grid.txt>",
	Aliases: []string{"gen"},
	Short:   "Compile a grid into a restricted-grammar C program",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGridFile(args[0])
		if err != nil {
			return err
		}

		res := pattern.Analyze(g)
		out := codegen.Generate(res.Predicates, g.Height(), g.Width())
		for _, w := range out.Warnings {
			warnColor.Fprintf(os.Stderr, "warning: %s\n", w)
		}

		if generateOutput == "" {
			cfg, cfgErr := loadConfig(".")
			if cfgErr != nil {
				return cfgErr
			}
			generateOutput = cfg.Generate.Output
		}
		if generateOutput == "" {
			fmt.Print(out.Code)

			return nil
		}
		if err = os.WriteFile(generateOutput, []byte(out.Code), 0o644); err != nil {
			return fmt.Errorf("failed to write program: %w", err)
		}
		fmt.Printf("wrote %s (scalable: %v)\n", generateOutput, out.IsScalable)

		return nil
	},
}
