package asciiframe

import "testing"

func TestNewMatrix(t *testing.T) {
	m := NewMatrix(4, 3)
	if m.Width() != 4 {
		t.Errorf("Expected width 4, got %d", m.Width())
	}
	if m.Height() != 3 {
		t.Errorf("Expected height 3, got %d", m.Height())
	}
	if m.Empty() {
		t.Error("4x3 matrix should not be empty")
	}
}

func TestNewMatrixDegenerate(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {0, 0}, {-1, 3}} {
		m := NewMatrix(dims[0], dims[1])
		if !m.Empty() {
			t.Errorf("Matrix %dx%d should be empty", dims[0], dims[1])
		}
	}
}

func TestMatrixGetSet(t *testing.T) {
	m := NewMatrix(3, 2)
	m.Set(2, 1, 200)
	if got := m.At(2, 1); got != 200 {
		t.Errorf("Expected 200, got %d", got)
	}
	if got := m.At(0, 0); got != 0 {
		t.Errorf("Expected zero value 0, got %d", got)
	}
}

func TestMatrixBounds(t *testing.T) {
	m := NewMatrix(3, 2)
	for _, pt := range [][2]int{{3, 0}, {0, 2}, {-1, 0}, {0, -1}} {
		func(x, y int) {
			defer func() {
				if recover() == nil {
					t.Errorf("At(%d,%d) should panic", x, y)
				}
			}()
			m.At(x, y)
		}(pt[0], pt[1])
	}
}

func TestMatrixFromRows(t *testing.T) {
	m, err := MatrixFromRows([][]uint8{
		{1, 2, 3},
		{4, 5, 6},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if m.Width() != 3 || m.Height() != 2 {
		t.Errorf("Expected 3x2, got %dx%d", m.Width(), m.Height())
	}
	if got := m.At(2, 1); got != 6 {
		t.Errorf("Expected 6 at (2,1), got %d", got)
	}
}

func TestMatrixFromRowsRagged(t *testing.T) {
	_, err := MatrixFromRows([][]uint8{
		{1, 2, 3},
		{4, 5},
	})
	if err == nil {
		t.Error("Ragged rows should be rejected")
	}
}

func TestMatrixFromRowsEmpty(t *testing.T) {
	m, err := MatrixFromRows(nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !m.Empty() {
		t.Error("Empty row set should produce an empty matrix")
	}
}

func TestMatrixClone(t *testing.T) {
	m := NewMatrix(2, 2)
	m.Set(1, 1, 99)

	clone := m.Clone()
	if clone.At(1, 1) != 99 {
		t.Error("Clone should have same sample values")
	}

	clone.Set(1, 1, 42)
	if m.At(1, 1) != 99 {
		t.Error("Modifying clone should not affect original")
	}
}

func TestMatrixRows(t *testing.T) {
	m, _ := MatrixFromRows([][]uint8{
		{10, 20},
		{30, 40},
	})
	rows := m.Rows()
	if len(rows) != 2 || len(rows[0]) != 2 {
		t.Fatalf("Expected 2x2 rows, got %v", rows)
	}
	if rows[1][0] != 30 {
		t.Errorf("Expected 30, got %d", rows[1][0])
	}

	rows[0][0] = 77
	if m.At(0, 0) != 10 {
		t.Error("Rows should return a copy, not the backing buffer")
	}
}
