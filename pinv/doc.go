// Package pinv computes the Moore-Penrose pseudo-inverse of a real
// matrix via singular value decomposition.
//
// 🚀 What is the pseudo-inverse?
//
//	The Moore-Penrose pseudo-inverse A⁺ generalizes the matrix inverse
//	to any matrix: non-square, rank-deficient, even all-zero. It is the
//	workhorse behind least-squares fitting, minimum-norm solutions and
//	rank-revealing analyses. For a full-rank square A it coincides with
//	the ordinary inverse A⁻¹.
//
// ✨ Key properties (verified by the test suite):
//   - A·A⁺·A ≈ A and A⁺·A·A⁺ ≈ A⁺ (Moore-Penrose conditions)
//   - full-rank square A → A⁺ = A⁻¹
//   - all-zero A → all-zero A⁺
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/lvlnum/matrix"
//	  "github.com/katalvlaran/lvlnum/pinv"
//	)
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
//	ap, err := pinv.PseudoInverse(a) // 2×3 result
//
// Algorithm: factorize A = U·Σ·Vᵀ (decomposition delegated to
// gonum.org/v1/gonum/mat), invert every singular value above a
// relative cutoff, zero the rest, and compose A⁺ = V·Σ⁺·Uᵀ with the
// matrix package kernels. The default cutoff follows the standard
// relative-epsilon rule max(R,C)·σ_max·ε and can be overridden with
// WithTolerance.
//
// Complexity: O(R·C·min(R,C)) time for the decomposition plus the two
// composing multiplications; O(R·C) memory.
package pinv
