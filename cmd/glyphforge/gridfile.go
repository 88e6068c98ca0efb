package main

import (
	"fmt"
	"os"

	"glyphforge/grid"
)

// loadGridFile reads a grid text file into a Grid. Lines become rows;
// blanks parse as empty cells; ragged lines are padded.
func loadGridFile(path string) (*grid.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read grid file: %w", err)
	}
	g, err := grid.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}
