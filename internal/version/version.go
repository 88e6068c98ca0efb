// Package version carries build fingerprints for the glyphforge CLI.
// The variables are plain strings so a release build can stamp them via
// -ldflags "-X glyphforge/internal/version.Version=...".
package version

import (
	"strings"

	"github.com/fatih/color"
)

var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)
)

// Pretty renders Version with each semver component in its own color.
// A pre-release suffix after the patch number is left unstyled, and a
// version that is not dotted semver comes back unchanged.
func Pretty() string {
	parts := strings.SplitN(Version, ".", 3)
	if len(parts) != 3 {
		return Version
	}
	patch, suffix, _ := strings.Cut(parts[2], "-")
	out := majorColor.Sprint(parts[0]) + "." + minorColor.Sprint(parts[1]) + "." + patchColor.Sprint(patch)
	if suffix != "" {
		out += "-" + suffix
	}

	return out
}
