package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"glyphforge/builder"
	"glyphforge/grid"
)

var (
	samplePattern string
	sampleHeight  int
	sampleWidth   int
	sampleSymbol  string
	sampleIndex   int
	sampleParity  int
)

func init() {
	sampleCmd.Flags().StringVar(&samplePattern, "pattern", "border",
		"pattern family (fill|border|diagonal|antidiagonal|hline|vline|checkerboard)")
	sampleCmd.Flags().IntVar(&sampleHeight, "height", 8, "grid height")
	sampleCmd.Flags().IntVar(&sampleWidth, "width", 8, "grid width")
	sampleCmd.Flags().StringVar(&sampleSymbol, "symbol", "#", "glyph to draw with")
	sampleCmd.Flags().IntVar(&sampleIndex, "index", 0, "row (hline) or column (vline)")
	sampleCmd.Flags().IntVar(&sampleParity, "parity", 0, "checkerboard parity (0 or 1)")
}

// buildSample dispatches one pattern family to its builder constructor.
func buildSample(name string, height, width, index, parity int, symbol rune) (*grid.Grid, error) {
	switch name {
	case "fill":
		return builder.Fill(height, width, symbol)
	case "border":
		return builder.Border(height, width, symbol)
	case "diagonal":
		return builder.Diagonal(height, width, symbol)
	case "antidiagonal":
		return builder.AntiDiagonal(height, width, symbol)
	case "hline":
		return builder.HorizontalLine(height, width, index, symbol)
	case "vline":
		return builder.VerticalLine(height, width, index, symbol)
	case "checkerboard":
		return builder.Checkerboard(height, width, parity, symbol)
	default:
		return nil, fmt.Errorf("unknown pattern %q", name)
	}
}

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print a ready-made pattern grid",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		syms := []rune(sampleSymbol)
		if len(syms) != 1 {
			return fmt.Errorf("symbol must be exactly one glyph, got %q", sampleSymbol)
		}
		g, err := buildSample(samplePattern, sampleHeight, sampleWidth, sampleIndex, sampleParity, syms[0])
		if err != nil {
			return err
		}
		fmt.Println(g.Render())

		return nil
	},
}
