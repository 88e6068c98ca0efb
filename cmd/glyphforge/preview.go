package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"glyphforge/pattern"
	"glyphforge/verify"
)

var previewCmd = &cobra.Command{
	Use:   "preview <grid.txt>",
	Short: "Evaluate the discovered rule chain and compare it to the grid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGridFile(args[0])
		if err != nil {
			return err
		}
		cfg, err := loadConfig(".")
		if err != nil {
			return err
		}

		res := pattern.Analyze(g)
		text := pattern.RenderChain(res.Predicates, g.Height(), g.Width())

		fmt.Println("grid:")
		printBlock(g.Render(), cfg.Preview.Frame)
		fmt.Println("rule chain:")
		printBlock(text, cfg.Preview.Frame)

		v := verify.Validate(g, text)
		if v.Valid {
			color.New(color.FgGreen).Println("preview matches the grid")
		} else {
			color.New(color.FgRed).Println(verify.Report(v, verify.Options{MaxDifferences: cfg.Report.MaxDifferences}))
		}

		return nil
	},
}

// printBlock prints a text block, optionally boxed. Frame width follows the
// widest line measured in display cells, so wide glyphs keep the box
// aligned.
func printBlock(text string, frame bool) {
	lines := strings.Split(text, "\n")
	if !frame {
		for _, line := range lines {
			fmt.Println(line)
		}

		return
	}

	width := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}
	fmt.Println("+" + strings.Repeat("-", width) + "+")
	for _, line := range lines {
		pad := width - runewidth.StringWidth(line)
		fmt.Println("|" + line + strings.Repeat(" ", pad) + "|")
	}
	fmt.Println("+" + strings.Repeat("-", width) + "+")
}
