package asciiframe

import (
	"errors"
	"math"
	"testing"
)

func gradientMatrix(width, height int) *Matrix {
	m := NewMatrix(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.Set(x, y, uint8((x*7+y*13)%256))
		}
	}
	return m
}

func TestResampleDimensions(t *testing.T) {
	tests := []struct {
		name        string
		srcW, srcH  int
		targetWidth int
		aspect      float64
	}{
		{"downscale", 640, 480, 80, 0.43},
		{"upscale", 16, 16, 64, 0.43},
		{"square aspect", 100, 100, 50, 1.0},
		{"single column", 33, 77, 1, 0.43},
		{"tall source", 10, 1000, 40, 0.43},
		{"wide source", 1000, 10, 40, 0.43},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := gradientMatrix(tt.srcW, tt.srcH)
			dst, err := Resample(src, tt.targetWidth, tt.aspect)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if dst.Width() != tt.targetWidth {
				t.Errorf("Expected width %d, got %d", tt.targetWidth, dst.Width())
			}
			scale := float64(tt.targetWidth) / float64(tt.srcW)
			wantH := int(float64(tt.srcH) * scale * tt.aspect)
			if wantH < 1 {
				wantH = 1
			}
			if dst.Height() != wantH {
				t.Errorf("Expected height %d, got %d", wantH, dst.Height())
			}
		})
	}
}

// Every resampled value must be a sample selected from the source;
// nearest-neighbor synthesizes nothing.
func TestResamplePureSelection(t *testing.T) {
	src := gradientMatrix(37, 23)
	present := make(map[uint8]bool)
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			present[src.At(x, y)] = true
		}
	}

	dst, err := Resample(src, 12, 0.43)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if !present[dst.At(x, y)] {
				t.Fatalf("Sample %d at (%d,%d) does not occur in the source",
					dst.At(x, y), x, y)
			}
		}
	}
}

func TestResampleIdentityAtEqualScale(t *testing.T) {
	src, _ := MatrixFromRows([][]uint8{
		{0, 255},
		{128, 128},
	})
	dst, err := Resample(src, 2, 1.0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if dst.Width() != 2 || dst.Height() != 2 {
		t.Fatalf("Expected 2x2, got %dx%d", dst.Width(), dst.Height())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if dst.At(x, y) != src.At(x, y) {
				t.Errorf("Expected identity at (%d,%d): %d, got %d",
					x, y, src.At(x, y), dst.At(x, y))
			}
		}
	}
}

func TestResampleMinimumHeight(t *testing.T) {
	// 100x1 at width 10 and aspect 0.43 would floor to height 0;
	// the floor is raised to 1.
	src := gradientMatrix(100, 1)
	dst, err := Resample(src, 10, 0.43)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if dst.Height() != 1 {
		t.Errorf("Expected height 1, got %d", dst.Height())
	}
}

func TestResampleEmptySource(t *testing.T) {
	dst, err := Resample(NewMatrix(0, 0), 40, 0.43)
	if err != nil {
		t.Fatalf("Empty source should not be an error, got %v", err)
	}
	if !dst.Empty() {
		t.Error("Empty source should resample to an empty matrix")
	}
}

func TestResampleInvalidWidth(t *testing.T) {
	src := gradientMatrix(10, 10)
	for _, w := range []int{0, -1} {
		_, err := Resample(src, w, 0.43)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Width %d: expected ErrInvalidArgument, got %v", w, err)
		}
	}
}

func TestResampleDeterministic(t *testing.T) {
	src := gradientMatrix(64, 48)
	a, err := Resample(src, 20, 0.43)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	b, err := Resample(src, 20, 0.43)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			if a.At(x, y) != b.At(x, y) {
				t.Fatalf("Resample is not deterministic at (%d,%d)", x, y)
			}
		}
	}
}

func TestResampleCoordinateMapping(t *testing.T) {
	// Halving a 4x4 grid with unit aspect picks every second sample.
	src := gradientMatrix(4, 4)
	dst, err := Resample(src, 2, 1.0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			srcX := int(math.Floor(float64(x) / float64(dst.Width()) * 4))
			srcY := int(math.Floor(float64(y) / float64(dst.Height()) * 4))
			if dst.At(x, y) != src.At(srcX, srcY) {
				t.Errorf("Expected src(%d,%d)=%d at dst(%d,%d), got %d",
					srcX, srcY, src.At(srcX, srcY), x, y, dst.At(x, y))
			}
		}
	}
}
