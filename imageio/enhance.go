package imageio

import "github.com/termvision/asciiframe"

// Autocontrast stretches the sample histogram linearly so the darkest
// sample maps to 0 and the brightest to 255. Flat input is returned
// unchanged; there is nothing to stretch.
func Autocontrast(m *asciiframe.Matrix) *asciiframe.Matrix {
	if m.Empty() {
		return m
	}
	lo, hi := uint8(255), uint8(0)
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			v := m.At(x, y)
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	if lo == 0 && hi == 255 || lo >= hi {
		return m
	}
	scale := 255.0 / float64(hi-lo)
	out := asciiframe.NewMatrix(m.Width(), m.Height())
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			out.Set(x, y, uint8(float64(m.At(x, y)-lo)*scale+0.5))
		}
	}
	return out
}

// sharpeningKernel is the mild 3x3 sharpen with unit gain.
var sharpeningKernel = [3][3]float64{
	{0, -0.5, 0},
	{-0.5, 3, -0.5},
	{0, -0.5, 0},
}

// Sharpen applies a mild sharpening convolution, clamping edge taps to
// the border sample. It is the still-image counterpart of the capture
// package's OpenCV clarity stage.
func Sharpen(m *asciiframe.Matrix) *asciiframe.Matrix {
	if m.Empty() {
		return m
	}
	w, h := m.Width(), m.Height()
	out := asciiframe.NewMatrix(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					sx, sy := x+kx, y+ky
					if sx < 0 {
						sx = 0
					} else if sx >= w {
						sx = w - 1
					}
					if sy < 0 {
						sy = 0
					} else if sy >= h {
						sy = h - 1
					}
					sum += float64(m.At(sx, sy)) * sharpeningKernel[ky+1][kx+1]
				}
			}
			if sum < 0 {
				sum = 0
			} else if sum > 255 {
				sum = 255
			}
			out.Set(x, y, uint8(sum+0.5))
		}
	}
	return out
}
