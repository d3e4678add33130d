// Package asciiframe renders grayscale raster images as monospaced text
// art. Each 8-bit sample is resampled to a target character grid,
// optionally dithered with Floyd-Steinberg error diffusion, and mapped
// onto an ordered glyph ramp from dark to light. The pipeline is a pure
// in-memory transform designed to run once per frame: decoding and
// display are the caller's concern.
package asciiframe

import "fmt"

// Matrix is a rectangular grid of 8-bit grayscale samples stored in a
// single row-major buffer. An empty matrix (width or height zero) is a
// valid value meaning "nothing to render".
type Matrix struct {
	width  int
	height int
	pix    []uint8
}

// NewMatrix creates a zero-filled matrix with the given dimensions.
// Non-positive dimensions produce an empty matrix.
func NewMatrix(width, height int) *Matrix {
	if width < 1 || height < 1 {
		return &Matrix{}
	}
	return &Matrix{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height),
	}
}

// MatrixFromRows builds a matrix from a slice of equal-length rows.
// It returns an error if the rows are ragged.
func MatrixFromRows(rows [][]uint8) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return &Matrix{}, nil
	}
	width := len(rows[0])
	m := NewMatrix(width, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf(
				"row %d has %d samples, expected %d", y, len(row), width)
		}
		copy(m.pix[y*width:(y+1)*width], row)
	}
	return m, nil
}

// Width returns the number of samples per row.
func (m *Matrix) Width() int { return m.width }

// Height returns the number of rows.
func (m *Matrix) Height() int { return m.height }

// Empty reports whether the matrix has no samples.
func (m *Matrix) Empty() bool { return m.width == 0 || m.height == 0 }

// At returns the sample at (x, y). It panics if the coordinates are
// outside the matrix, like indexing a slice out of range would.
func (m *Matrix) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		panic(fmt.Sprintf("asciiframe: sample (%d,%d) out of range %dx%d",
			x, y, m.width, m.height))
	}
	return m.pix[y*m.width+x]
}

// Set stores a sample at (x, y) with the same bounds policy as At.
func (m *Matrix) Set(x, y int, v uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		panic(fmt.Sprintf("asciiframe: sample (%d,%d) out of range %dx%d",
			x, y, m.width, m.height))
	}
	m.pix[y*m.width+x] = v
}

// Clone creates a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	clone := &Matrix{width: m.width, height: m.height}
	if len(m.pix) > 0 {
		clone.pix = make([]uint8, len(m.pix))
		copy(clone.pix, m.pix)
	}
	return clone
}

// Rows returns the samples as a freshly allocated slice of rows. Handy
// for tests and for callers that want to inspect the grid.
func (m *Matrix) Rows() [][]uint8 {
	rows := make([][]uint8, m.height)
	for y := 0; y < m.height; y++ {
		row := make([]uint8, m.width)
		copy(row, m.pix[y*m.width:(y+1)*m.width])
		rows[y] = row
	}
	return rows
}
