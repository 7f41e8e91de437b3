// Package matrix_test contains unit tests for Dense storage and accessors.
package matrix_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlnum/matrix"
)

func TestNewDenseInvalidDimensions(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{0, 3},
		{3, 0},
		{-1, 2},
		{2, -1},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			if _, err := matrix.NewDense(tc.rows, tc.cols); !errors.Is(err, matrix.ErrInvalidDimensions) {
				t.Fatalf("NewDense(%d,%d) = %v, want ErrInvalidDimensions", tc.rows, tc.cols, err)
			}
		})
	}
}

func TestNewDenseDefaultZero(t *testing.T) {
	const rows, cols = 4, 3
	m := MustDense(t, rows, cols)

	// Immediately after creation all elements should be 0.
	var i, j int // loop iterators
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v := MustAt(t, m, i, j); v != 0.0 {
				t.Fatalf("element [%d,%d] of a new Dense must be 0, got %g", i, j, v)
			}
		}
	}
}

func TestNewDenseFromRows(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	if m.Rows() != 2 || m.Cols() != 3 {
		t.Fatalf("shape = %dx%d, want 2x3", m.Rows(), m.Cols())
	}
	if v := MustAt(t, m, 1, 2); v != 6 {
		t.Fatalf("At(1,2) = %g, want 6", v)
	}
}

func TestNewDenseFromRowsRagged(t *testing.T) {
	_, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	if !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("ragged input = %v, want ErrDimensionMismatch", err)
	}
}

func TestNewDenseFromRowsEmpty(t *testing.T) {
	if _, err := matrix.NewDenseFromRows(nil); !errors.Is(err, matrix.ErrInvalidDimensions) {
		t.Fatalf("nil input = %v, want ErrInvalidDimensions", err)
	}
	if _, err := matrix.NewDenseFromRows([][]float64{{}}); !errors.Is(err, matrix.ErrInvalidDimensions) {
		t.Fatalf("empty row = %v, want ErrInvalidDimensions", err)
	}
}

func TestNewDenseFromRowsDoesNotAlias(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}}
	m := MustFromRows(t, src)

	// Mutating the source must not affect the matrix.
	src[0][0] = 99
	if v := MustAt(t, m, 0, 0); v != 1 {
		t.Fatalf("At(0,0) = %g after source mutation, want 1", v)
	}
}

func TestNewIdentity(t *testing.T) {
	const n = 3
	m, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if v := MustAt(t, m, i, j); v != want {
				t.Fatalf("I[%d,%d] = %g, want %g", i, j, v, want)
			}
		}
	}

	if _, err = matrix.NewIdentity(0); !errors.Is(err, matrix.ErrInvalidDimensions) {
		t.Fatalf("NewIdentity(0) = %v, want ErrInvalidDimensions", err)
	}
}

func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)
	for _, tc := range []struct{ r, c int }{
		{-1, 0}, {0, -1}, {2, 0}, {0, 2},
	} {
		if _, err := m.At(tc.r, tc.c); !errors.Is(err, matrix.ErrOutOfRange) {
			t.Fatalf("At(%d,%d) = %v, want ErrOutOfRange", tc.r, tc.c, err)
		}
		if err := m.Set(tc.r, tc.c, 1); !errors.Is(err, matrix.ErrOutOfRange) {
			t.Fatalf("Set(%d,%d) = %v, want ErrOutOfRange", tc.r, tc.c, err)
		}
	}
}

func TestCloneIndependence(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	cl := m.Clone()

	// Mutating the clone must not write through to the original.
	MustSet(t, cl, 0, 0, 42)
	if v := MustAt(t, m, 0, 0); v != 1 {
		t.Fatalf("original At(0,0) = %g after clone mutation, want 1", v)
	}
	if v := MustAt(t, cl, 0, 0); v != 42 {
		t.Fatalf("clone At(0,0) = %g, want 42", v)
	}
}

func TestRowCopies(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	row, err := m.Row(1)
	if err != nil {
		t.Fatalf("Row(1): %v", err)
	}
	if row[0] != 3 || row[1] != 4 {
		t.Fatalf("Row(1) = %v, want [3 4]", row)
	}

	// The returned slice is a copy.
	row[0] = 99
	if v := MustAt(t, m, 1, 0); v != 3 {
		t.Fatalf("At(1,0) = %g after row mutation, want 3", v)
	}

	if _, err = m.Row(2); !errors.Is(err, matrix.ErrOutOfRange) {
		t.Fatalf("Row(2) = %v, want ErrOutOfRange", err)
	}
}

func TestStringOutput(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2.5}, {3, 4}})
	want := "[1, 2.5]\n[3, 4]\n"
	if got := m.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
