package asciiframe

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// PNG rendering colors: light glyphs on a dark ground, matching how the
// art reads in a terminal.
var (
	pngBackground = color.RGBA{R: 16, G: 16, B: 16, A: 255}
	pngForeground = color.RGBA{R: 229, G: 229, B: 229, A: 255}
)

// RenderPNG rasterizes rendered text lines into an image using a
// caller-supplied TTF font. The font should be monospaced; the cell
// advance is taken from the glyph '0' and applied uniformly so that
// columns stay aligned even with a proportional font.
func RenderPNG(lines []string, fontPath string, fontSize float64) (image.Image, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("nothing to render")
	}
	if fontSize <= 0 {
		fontSize = 12
	}

	data, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	advance, ok := face.GlyphAdvance('0')
	if !ok {
		return nil, fmt.Errorf("font has no '0' glyph to size cells from")
	}
	cellW := advance.Ceil()
	metrics := face.Metrics()
	cellH := metrics.Height.Ceil()
	ascent := metrics.Ascent.Ceil()

	cols := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > cols {
			cols = n
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, cols*cellW, len(lines)*cellH))
	draw.Draw(img, img.Bounds(), image.NewUniform(pngBackground),
		image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(pngForeground),
		Face: face,
	}
	for row, line := range lines {
		for col, glyph := range []rune(line) {
			drawer.Dot = fixed.P(col*cellW, row*cellH+ascent)
			drawer.DrawString(string(glyph))
		}
	}
	return img, nil
}

// SavePNG renders text lines with RenderPNG and writes the result to
// the given path.
func SavePNG(lines []string, fontPath string, fontSize float64, outPath string) error {
	img, err := RenderPNG(lines, fontPath, fontSize)
	if err != nil {
		return err
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
