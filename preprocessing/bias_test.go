package preprocessing

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestAddBias(t *testing.T) {
	X := mat.NewDense(2, 2, []float64{
		1.5, -2.0,
		0.0, 3.25,
	})

	out, err := AddBias(X)
	if err != nil {
		t.Fatalf("AddBias failed: %v", err)
	}

	r, c := out.Dims()
	if r != 2 || c != 3 {
		t.Fatalf("expected shape (2, 3), got (%d, %d)", r, c)
	}

	for i := 0; i < r; i++ {
		if out.At(i, 0) != 1.0 {
			t.Errorf("row %d: bias column = %v, want 1", i, out.At(i, 0))
		}
		for j := 0; j < 2; j++ {
			if out.At(i, j+1) != X.At(i, j) {
				t.Errorf("entry (%d, %d) = %v, want %v", i, j+1, out.At(i, j+1), X.At(i, j))
			}
		}
	}
}

func TestAddBias_LargeInputUsesAllRows(t *testing.T) {
	// above the parallel threshold, every row must still be filled
	const rows = 2500
	X := mat.NewDense(rows, 1, nil)
	for i := 0; i < rows; i++ {
		X.Set(i, 0, float64(i))
	}

	out, err := AddBias(X)
	if err != nil {
		t.Fatalf("AddBias failed: %v", err)
	}

	for i := 0; i < rows; i++ {
		if out.At(i, 0) != 1.0 || out.At(i, 1) != float64(i) {
			t.Fatalf("row %d not copied correctly: [%v, %v]", i, out.At(i, 0), out.At(i, 1))
		}
	}
}

func TestAddBias_EmptyMatrix(t *testing.T) {
	if _, err := AddBias(&mat.Dense{}); err == nil {
		t.Error("empty matrix should be rejected")
	}
}
