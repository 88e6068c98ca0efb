package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"glyphforge/pattern"
)

var (
	kindColor    = color.New(color.FgCyan, color.Bold)
	warnColor    = color.New(color.FgYellow)
	literalColor = color.New(color.FgYellow, color.Bold)
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <grid.txt>",
	Short: "Discover the geometric rule behind every glyph on a grid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGridFile(args[0])
		if err != nil {
			return err
		}

		res := pattern.Analyze(g)
		fmt.Printf("grid %d×%d, %d glyph(s)\n", g.Height(), g.Width(), len(res.Predicates))
		for _, p := range res.Predicates {
			scal := "scalable"
			if !p.IsScalable {
				scal = literalColor.Sprint("literal")
			}
			fmt.Printf("  %c  %-16s  %s  (%s, confidence %.1f)\n",
				p.Symbol, kindColor.Sprint(p.Kind.String()), p.Expression, scal, p.Confidence)
		}
		for _, w := range res.Warnings {
			warnColor.Printf("warning: %s\n", w)
		}
		if res.IsFullyParametric {
			fmt.Println("fully parametric: resizing the grid rescales every glyph")
		}

		return nil
	},
}
