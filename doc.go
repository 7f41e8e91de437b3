// Package lvlnum is a small toolkit of numeric sequence and matrix
// utilities — from evenly spaced sampling grids to the Moore-Penrose
// pseudo-inverse.
//
// 🚀 What is lvlnum?
//
//	A pure, stateless numeric helper library:
//	  • Sequence generation: linspace (inclusive & half-open), repeated
//	    grids, arange
//	  • Slice utilities: reverse, concatenate, split by index
//	  • Dense matrices: row-major storage, algebra kernels, axis reversal
//	  • Pseudo-inverse: SVD-backed Moore-Penrose inverse for any rank
//
// ✨ Why choose lvlnum?
//
//   - Predictable – every function is pure, deterministic, and returns
//     freshly allocated results; inputs are never mutated
//   - Safe – no panics on user input; sentinel errors matched with
//     errors.Is
//   - Honest numerics – rank deficiency handled by a relative-epsilon
//     singular-value cutoff, not by blowing up
//
// Everything is organized under three subpackages:
//
//	sequence/ — linspace, arange & slice helpers
//	matrix/   — Matrix interface, Dense storage, kernels, reversal
//	pinv/     — Moore-Penrose pseudo-inverse via SVD
//
// Quick example:
//
//	xs := sequence.Linspace(0, 10, 5, true)     // [0 2.5 5 7.5 10]
//	a, _ := matrix.NewDenseFromRows([][]float64{{4, 7}, {2, 6}})
//	ai, _ := pinv.PseudoInverse(a)              // equals A⁻¹ here
//
// See the runnable programs under examples/ for end-to-end scenarios.
package lvlnum
