package builder_test

import (
	"errors"
	"testing"

	"glyphforge/builder"
	"glyphforge/grid"
)

//----------------------------------------------------------------------------//
// Shape tests
//----------------------------------------------------------------------------//

// TestShapes_Render verifies each constructor against its canonical text.
func TestShapes_Render(t *testing.T) {
	cases := []struct {
		name string
		got  func() (*grid.Grid, error)
		want string
	}{
		{"Fill", func() (*grid.Grid, error) { return builder.Fill(2, 3, '#') }, "###\n###"},
		{"Border", func() (*grid.Grid, error) { return builder.Border(3, 4, '#') }, "####\n#  #\n####"},
		{"Diagonal", func() (*grid.Grid, error) { return builder.Diagonal(3, 5, 'X') }, "X    \n X   \n  X  "},
		{"AntiDiagonal", func() (*grid.Grid, error) { return builder.AntiDiagonal(3, 5, '/') }, "  /  \n /   \n/    "},
		{"HorizontalLine", func() (*grid.Grid, error) { return builder.HorizontalLine(3, 4, 1, '-') }, "    \n----\n    "},
		{"VerticalLine", func() (*grid.Grid, error) { return builder.VerticalLine(3, 4, 2, '|') }, "  | \n  | \n  | "},
		{"Rect", func() (*grid.Grid, error) { return builder.Rect(4, 4, 1, 2, 1, 2, '@') }, "    \n @@ \n @@ \n    "},
		{"Checkerboard", func() (*grid.Grid, error) { return builder.Checkerboard(3, 3, 0, '#') }, "# #\n # \n# #"},
		{"Scatter", func() (*grid.Grid, error) {
			return builder.Scatter(2, 2, []grid.Coord{{Row: 0, Col: 1}, {Row: 1, Col: 0}}, '*')
		}, " *\n* "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := tc.got()
			if err != nil {
				t.Fatalf("%s error: %v", tc.name, err)
			}
			if got := g.Render(); got != tc.want {
				t.Errorf("%s Render() = %q; want %q", tc.name, got, tc.want)
			}
		})
	}
}

// TestShapes_Provenance: builder-drawn cells carry the builder stroke id.
func TestShapes_Provenance(t *testing.T) {
	g, err := builder.Fill(2, 2, '#')
	if err != nil {
		t.Fatalf("Fill error: %v", err)
	}
	stroke, ok := g.StrokeAt(1, 1)
	if !ok || stroke != builder.BuilderStroke {
		t.Errorf("StrokeAt(1,1) = (%d,%v); want (%d,true)", stroke, ok, builder.BuilderStroke)
	}
}

//----------------------------------------------------------------------------//
// Validation tests
//----------------------------------------------------------------------------//

// TestValidation_Errors verifies sentinel classes for every rejection path.
func TestValidation_Errors(t *testing.T) {
	cases := []struct {
		name string
		got  func() (*grid.Grid, error)
		err  error
	}{
		{"FillBadDims", func() (*grid.Grid, error) { return builder.Fill(0, 3, '#') }, grid.ErrBadDimensions},
		{"LineRowHigh", func() (*grid.Grid, error) { return builder.HorizontalLine(3, 3, 3, '-') }, builder.ErrIndexOutOfRange},
		{"LineRowNegative", func() (*grid.Grid, error) { return builder.HorizontalLine(3, 3, -1, '-') }, builder.ErrIndexOutOfRange},
		{"LineColHigh", func() (*grid.Grid, error) { return builder.VerticalLine(3, 3, 5, '|') }, builder.ErrIndexOutOfRange},
		{"RectInverted", func() (*grid.Grid, error) { return builder.Rect(4, 4, 2, 1, 0, 3, '@') }, builder.ErrBadBounds},
		{"RectOutside", func() (*grid.Grid, error) { return builder.Rect(4, 4, 0, 4, 0, 3, '@') }, builder.ErrIndexOutOfRange},
		{"CheckerParity", func() (*grid.Grid, error) { return builder.Checkerboard(3, 3, 2, '#') }, builder.ErrBadParity},
		{"ScatterOutside", func() (*grid.Grid, error) {
			return builder.Scatter(2, 2, []grid.Coord{{Row: 2, Col: 0}}, '*')
		}, builder.ErrIndexOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.got()
			if !errors.Is(err, tc.err) {
				t.Errorf("%s error = %v; want %v", tc.name, err, tc.err)
			}
		})
	}
}
