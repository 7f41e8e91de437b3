// SPDX-License-Identifier: MIT
// Package matrix - axis reversal kernels.
//
// Purpose:
//   - Produce a new matrix with row order, column order, or both
//     inverted. The input is never mutated.
//   - Three explicit named operations instead of an axis flag, keeping
//     call sites self-describing.

package matrix

import "fmt"

// reverseInto is the shared kernel behind the reversal functions.
// flipRows/flipCols select which axes are mirrored: the element at
// (i, j) moves to (i', j') where i' = rows-1-i when flipRows and
// j' = cols-1-j when flipCols.
//
// Complexity: O(r*c) time, O(r*c) space for the result.
func reverseInto(m Matrix, flipRows, flipCols bool) (Matrix, error) {
	// Validate input non-nil.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opReverse, err)
	}

	// Allocate result Dense with the same shape.
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opReverse, err)
	}

	var i, j, si, sj int
	// Fast path for Dense: mirrored flat-index copy.
	if dm, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			si = i
			if flipRows {
				si = rows - 1 - i
			}
			for j = 0; j < cols; j++ {
				sj = j
				if flipCols {
					sj = cols - 1 - j
				}
				res.data[i*cols+j] = dm.data[si*cols+sj]
			}
		}

		return res, nil
	}

	// Fallback: generic interface loop.
	var v float64
	for i = 0; i < rows; i++ {
		si = i
		if flipRows {
			si = rows - 1 - i
		}
		for j = 0; j < cols; j++ {
			sj = j
			if flipCols {
				sj = cols - 1 - j
			}
			if v, err = m.At(si, sj); err != nil {
				return nil, matrixErrorf(opReverse, fmt.Errorf("At(%d,%d): %w", si, sj, err))
			}
			if err = res.Set(i, j, v); err != nil {
				return nil, matrixErrorf(opReverse, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// ReverseRows returns a new matrix with the row order inverted
// (last row first). Errors: ErrNilMatrix.
func ReverseRows(m Matrix) (Matrix, error) { return reverseInto(m, true, false) }

// ReverseColumns returns a new matrix with every row's element order
// inverted (last column first). Errors: ErrNilMatrix.
func ReverseColumns(m Matrix) (Matrix, error) { return reverseInto(m, false, true) }

// Reverse returns a new matrix with both row and column order inverted,
// i.e. a 180° rotation. Errors: ErrNilMatrix.
func Reverse(m Matrix) (Matrix, error) { return reverseInto(m, true, true) }
