package asciiframe

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// RenderText maps every sample of the matrix onto the glyph ramp and
// returns one string per row, top to bottom. The charset is ordered
// darkest first; intensity is normalized to [0,1], optionally inverted,
// optionally gamma-corrected, and floored onto a ramp index.
//
// gamma <= 0 skips the correction rather than failing: raising zero or a
// negative base to a fractional power has no useful meaning here, and
// the zero value then coincides with "no correction".
func RenderText(m *Matrix, charset string, gamma float64, invert bool) ([]string, error) {
	glyphs := []rune(charset)
	if len(glyphs) < 2 {
		return nil, fmt.Errorf("%w: charset has %d glyphs, need at least 2",
			ErrInvalidArgument, len(glyphs))
	}
	if m.Empty() {
		return []string{}, nil
	}

	n := len(glyphs)
	lines := make([]string, m.height)
	var sb strings.Builder
	for y := 0; y < m.height; y++ {
		sb.Reset()
		sb.Grow(m.width)
		for x := 0; x < m.width; x++ {
			v := float64(m.pix[y*m.width+x]) / 255.0
			if invert {
				v = 1.0 - v
			}
			if gamma > 0 {
				v = math.Pow(v, gamma)
			}
			idx := int(v * float64(n-1))
			if idx < 0 {
				idx = 0
			} else if idx >= n {
				idx = n - 1
			}
			sb.WriteRune(glyphs[idx])
		}
		lines[y] = sb.String()
	}
	return lines, nil
}

// GlyphCount returns the number of glyphs in a charset, which is the
// quantization level count used when dithering for that ramp.
func GlyphCount(charset string) int {
	return utf8.RuneCountInString(charset)
}
