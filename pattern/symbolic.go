package pattern

import (
	"strconv"
)

// symbolFor maps a literal value to a dimension-relative expression.
// It is the single mechanism by which literal geometry becomes
// dimension-parametric code; the line and rectangle testers all route
// through it so the parametrization rules cannot drift apart.
//
// The relationships are probed in a fixed order against dimension size and
// name (0, size, size-1, size/2, size-2, size/4 when divisible by 4,
// size/3 when divisible by 3); anything else stays a literal integer and is
// reported as non-symbolic. Complexity: O(1).
func symbolFor(value, size int, name string) (expr string, symbolic bool) {
	switch {
	case value == 0:
		return "0", true
	case value == size:
		return name, true
	case value == size-1:
		return name + "-1", true
	case value == size/2:
		return name + "/2", true
	case value == size-2:
		return name + "-2", true
	case size%4 == 0 && value == size/4:
		return name + "/4", true
	case size%3 == 0 && value == size/3:
		return name + "/3", true
	default:
		return strconv.Itoa(value), false
	}
}
