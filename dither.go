package asciiframe

import "math"

// Dither applies Floyd-Steinberg error diffusion quantized to the given
// number of levels, preserving perceived detail that plain quantization
// to a short glyph ramp would crush. The input matrix is returned
// unchanged when it is empty or levels < 2; otherwise a new matrix is
// returned and the input is left untouched.
//
// The scan is strictly raster order: each pixel is quantized to the
// nearest of the levels steps, and the residual error is spread to the
// not-yet-visited neighbors at 7/16, 3/16, 5/16 and 1/16, clamped to
// [0,255] immediately on assignment. Neighbors outside the matrix are
// skipped. Pixel (x,y) therefore depends on every previously visited
// pixel that diffused error into it; the visitation order cannot change
// without changing the output.
func Dither(m *Matrix, levels int) *Matrix {
	if m.Empty() || levels < 2 {
		return m
	}

	w, h := m.width, m.height
	step := 255.0 / float64(levels-1)
	out := m.Clone()

	// Each write truncates like the reference behavior: clamp to the
	// range, then drop the fraction.
	diffuse := func(i int, amount float64) {
		out.pix[i] = clampSample(float64(out.pix[i]) + amount)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			old := float64(out.pix[i])
			quantized := math.Round(old/step) * step
			out.pix[i] = clampSample(quantized)
			err := old - quantized
			if x+1 < w {
				diffuse(i+1, err*7/16)
			}
			if y+1 < h {
				if x-1 >= 0 {
					diffuse(i+w-1, err*3/16)
				}
				diffuse(i+w, err*5/16)
				if x+1 < w {
					diffuse(i+w+1, err*1/16)
				}
			}
		}
	}
	return out
}

func clampSample(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
