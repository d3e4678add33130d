package asciiframe

import (
	"fmt"
	"strings"
)

// Default configuration values. The 0.43 aspect ratio compensates for a
// terminal cell being a little over twice as tall as it is wide.
const (
	DefaultWidth       = 80
	DefaultAspectRatio = 0.43
	DefaultGamma       = 1.0
)

// Config holds the per-frame rendering parameters. It is read-only once
// handed to RenderFrame; the pipeline keeps no other state, so the same
// Config may drive any number of frames.
type Config struct {
	// Width is the output width in glyph columns. Must be at least 1.
	Width int
	// AspectRatio scales the output height to correct for non-square
	// glyph cells.
	AspectRatio float64
	// Gamma adjusts mid-tone contrast; 1.0 is unchanged and values
	// at or below zero skip the correction.
	Gamma float64
	// Invert flips dark and light before mapping, for light-on-dark
	// source material.
	Invert bool
	// Dither enables Floyd-Steinberg error diffusion quantized to the
	// ramp's glyph count.
	Dither bool
	// Charset is the glyph ramp, darkest glyph first. Must hold at
	// least 2 glyphs.
	Charset string
}

// DefaultConfig returns the configuration both CLI tools start from.
func DefaultConfig() Config {
	return Config{
		Width:       DefaultWidth,
		AspectRatio: DefaultAspectRatio,
		Gamma:       DefaultGamma,
		Charset:     CharsetSimple,
	}
}

// Validate reports the first configuration mistake as an
// ErrInvalidArgument. Callers driving a frame loop should validate once
// up front rather than fail on every frame.
func (c Config) Validate() error {
	if c.Width < 1 {
		return fmt.Errorf("%w: width %d, must be at least 1",
			ErrInvalidArgument, c.Width)
	}
	if GlyphCount(c.Charset) < 2 {
		return fmt.Errorf("%w: charset has %d glyphs, need at least 2",
			ErrInvalidArgument, GlyphCount(c.Charset))
	}
	return nil
}

// RenderFrame runs one frame through the pipeline: resample to the
// target grid, dither if enabled, then quantize to the glyph ramp. It
// is deterministic for identical inputs and carries nothing between
// calls. An empty source renders to an empty slice.
func RenderFrame(src *Matrix, cfg Config) ([]string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	resampled, err := Resample(src, cfg.Width, cfg.AspectRatio)
	if err != nil {
		return nil, err
	}
	if cfg.Dither {
		resampled = Dither(resampled, GlyphCount(cfg.Charset))
	}
	return RenderText(resampled, cfg.Charset, cfg.Gamma, cfg.Invert)
}

// Text joins rendered lines into a printable frame. No trailing newline
// is added.
func Text(lines []string) string {
	return strings.Join(lines, "\n")
}
