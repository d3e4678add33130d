package asciiframe

import "fmt"

// Resample maps a source matrix of arbitrary size onto a grid of
// targetWidth columns using proportional nearest-neighbor selection.
// The destination height is scaled by aspectRatio to compensate for
// monospaced glyph cells being taller than they are wide, so that the
// rendered art is not vertically stretched.
//
// An empty source yields an empty matrix, not an error. Every output
// sample is a sample of the source; nothing is interpolated, a
// deliberate trade-off since the output grid is always far smaller
// than the input.
func Resample(src *Matrix, targetWidth int, aspectRatio float64) (*Matrix, error) {
	if targetWidth < 1 {
		return nil, fmt.Errorf("%w: target width %d, must be at least 1",
			ErrInvalidArgument, targetWidth)
	}
	if src.Empty() {
		return &Matrix{}, nil
	}

	srcW, srcH := src.Width(), src.Height()
	scale := float64(targetWidth) / float64(srcW)
	targetHeight := int(float64(srcH) * scale * aspectRatio)
	if targetHeight < 1 {
		targetHeight = 1
	}

	dst := NewMatrix(targetWidth, targetHeight)
	for y := 0; y < targetHeight; y++ {
		srcY := int(float64(y) / float64(targetHeight) * float64(srcH))
		if srcY > srcH-1 {
			srcY = srcH - 1
		}
		for x := 0; x < targetWidth; x++ {
			srcX := int(float64(x) / float64(targetWidth) * float64(srcW))
			if srcX > srcW-1 {
				srcX = srcW - 1
			}
			dst.pix[y*targetWidth+x] = src.pix[srcY*srcW+srcX]
		}
	}
	return dst, nil
}
