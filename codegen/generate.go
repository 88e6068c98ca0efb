package codegen

import (
	"fmt"
	"strings"

	"glyphforge/grid"
	"glyphforge/pattern"
)

// Generate compiles a predicate chain into the restricted-grammar C
// program for an height×width grid. Branch order equals chain order, so
// earlier predicates take runtime priority. Pure, total, deterministic.
// Complexity: O(H×W + occupiedCellCount).
func Generate(preds []pattern.Predicate, height, width int) GeneratedCode {
	out := GeneratedCode{
		Params: map[string]int{
			pattern.DimHeight: height,
			pattern.DimWidth:  width,
		},
		IsScalable: true,
	}
	enumerated := false
	for _, p := range preds {
		if !p.IsScalable {
			out.IsScalable = false
		}
		if p.Kind == pattern.CoordinateSet {
			enumerated = true
		}
	}
	if enumerated {
		out.Warnings = append(out.Warnings,
			"some symbols are emitted as explicit coordinate lists; the program will not scale with height/width edits")
	}

	var b strings.Builder
	b.WriteString("#include <stdio.h>\n")
	b.WriteString("\n")
	b.WriteString("int main(void) {\n")
	fmt.Fprintf(&b, "%sconst int %s = %d;\n", indent, pattern.DimHeight, height)
	fmt.Fprintf(&b, "%sconst int %s = %d;\n", indent, pattern.DimWidth, width)
	fmt.Fprintf(&b, "%sfor (int %s = 0; %s < %s; %s++) {\n",
		indent, pattern.RowVar, pattern.RowVar, pattern.DimHeight, pattern.RowVar)
	fmt.Fprintf(&b, "%sfor (int %s = 0; %s < %s; %s++) {\n",
		indent+indent, pattern.ColVar, pattern.ColVar, pattern.DimWidth, pattern.ColVar)

	body := indent + indent + indent
	cont := body + indent
	if len(preds) == 0 {
		// Nothing to test: the whole grid is blank.
		fmt.Fprintf(&b, "%sputchar('%s');\n", body, escapeGlyph(grid.Blank))
	} else {
		for i, p := range preds {
			keyword := "if"
			if i > 0 {
				keyword = "} else if"
			}
			fmt.Fprintf(&b, "%s%s (%s) {\n", body, keyword, condition(p, cont))
			fmt.Fprintf(&b, "%sputchar('%s');\n", body+indent, escapeGlyph(p.Symbol))
		}
		fmt.Fprintf(&b, "%s} else {\n", body)
		fmt.Fprintf(&b, "%sputchar('%s');\n", body+indent, escapeGlyph(grid.Blank))
		fmt.Fprintf(&b, "%s}\n", body)
	}

	fmt.Fprintf(&b, "%s}\n", indent+indent)
	fmt.Fprintf(&b, "%sputchar('\\n');\n", indent+indent)
	fmt.Fprintf(&b, "%s}\n", indent)
	fmt.Fprintf(&b, "%sreturn 0;\n", indent)
	b.WriteString("}\n")

	out.Code = b.String()

	return out
}
