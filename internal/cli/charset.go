// Package cli holds the plumbing shared by the asciify and asciicam
// tools: charset keyword resolution, terminal fitting, and the TOML
// options file.
package cli

import (
	"strings"

	"github.com/termvision/asciiframe"
)

// ResolveCharset maps the "simple" and "dense" keywords to their glyph
// ramps. Anything else is taken as a literal ramp.
func ResolveCharset(name string) string {
	switch strings.ToLower(name) {
	case "simple":
		return asciiframe.CharsetSimple
	case "dense":
		return asciiframe.CharsetDense
	default:
		return name
	}
}
