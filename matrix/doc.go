// Package matrix provides dense linear-algebra primitives for lvlnum:
// a row-major Dense matrix, safe element accessors, algebra kernels
// (Add, Sub, Mul, Transpose, Scale) and axis reversal helpers.
//
// ✨ Design rules:
//   - Public surface never panics on user input; every failure is a
//     package-level sentinel error matched with errors.Is.
//   - Kernels are deterministic: fixed loop orders, no map iteration,
//     exactly one allocation for each result.
//   - *Dense unlocks flat-slice fast paths; any other Matrix
//     implementation falls back to At/Set loops.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlnum/matrix"
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
//	at, _ := matrix.Transpose(a)
//	p, _ := matrix.Mul(a, at)
//
// See pinv for the Moore-Penrose pseudo-inverse built on top of these
// kernels.
package matrix
