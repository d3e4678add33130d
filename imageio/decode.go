package imageio

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // register WEBP decoder

	"github.com/termvision/asciiframe"
)

// Load decodes an image file into a grayscale matrix. PGM (P2) files
// are parsed directly; PNG, JPEG, GIF, TIFF, BMP and WEBP go through
// the imaging decoder with EXIF auto-orientation applied.
func Load(path string) (*asciiframe.Matrix, error) {
	if strings.EqualFold(filepath.Ext(path), ".pgm") {
		return ReadPGM(path)
	}
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return FromImage(img), nil
}

// FromImage converts any decoded image to a grayscale matrix using
// luminance weighting.
func FromImage(img image.Image) *asciiframe.Matrix {
	gray := imaging.Grayscale(img)
	bounds := gray.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	m := asciiframe.NewMatrix(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// Grayscale output has R == G == B.
			m.Set(x, y, gray.Pix[y*gray.Stride+x*4])
		}
	}
	return m
}

// Prescale resizes a matrix to the target character grid with bilinear
// filtering before the pipeline's nearest-neighbor pass, smoothing out
// the aliasing that pure selection produces on fine detail. The grid
// dimensions match what the pipeline's resampler would pick, so a
// subsequent nearest-neighbor pass at unit aspect degenerates to the
// identity. The caller must render the prescaled matrix with aspect
// ratio 1.0: the correction is baked into the grid here and must not
// be applied twice.
func Prescale(m *asciiframe.Matrix, width int, aspectRatio float64) *asciiframe.Matrix {
	if m.Empty() || width < 1 {
		return m
	}
	height := int(float64(m.Height()) * float64(width) / float64(m.Width()) * aspectRatio)
	if height < 1 {
		height = 1
	}
	resized := imaging.Resize(toImage(m), width, height, imaging.Linear)
	return FromImage(resized)
}

func toImage(m *asciiframe.Matrix) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.Width(), m.Height()))
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			img.Pix[y*img.Stride+x] = m.At(x, y)
		}
	}
	return img
}
