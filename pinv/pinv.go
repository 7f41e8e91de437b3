// SPDX-License-Identifier: MIT
// Package pinv - Moore-Penrose pseudo-inverse kernel.
//
// Purpose:
//   - Compute A⁺ for any real R×C matrix, regardless of rank.
//   - Delegate the decomposition A = U·Σ·Vᵀ to gonum's SVD and compose
//     the result with the lvlnum matrix kernels.
//   - Strict fail-fast validation; the input is never mutated.
//
// Numerical policy:
//   - Singular values ≤ tol are zeroed, not inverted, so rank
//     deficiency and near-zero values cannot blow up the result.
//   - Default tol = max(R,C) · σ_max · machine-epsilon; a zero σ_max
//     (all-zero input) therefore yields the all-zero pseudo-inverse.

package pinv

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlnum/matrix"
)

// opPinv tags every wrapped error produced by this package.
const opPinv = "PseudoInverse"

// epsilon is the float64 machine epsilon (2⁻⁵²), the gap between 1.0
// and the next representable value.
var epsilon = math.Nextafter(1, 2) - 1

// pinvErrorf wraps err with the kernel tag, preserving the sentinel via %w.
func pinvErrorf(err error) error {
	return fmt.Errorf("%s: %w", opPinv, err)
}

// PseudoInverse returns the Moore-Penrose pseudo-inverse A⁺ (C×R) of a
// real R×C matrix A with finite entries.
//
// Implementation:
//   - Stage 1: validate options, then the input (non-nil, positive
//     dimensions, finite entries).
//   - Stage 2: factorize A = U·Σ·Vᵀ (thin SVD via gonum); a failed
//     factorization surfaces as ErrNoConvergence.
//   - Stage 3: build Σ⁺ by inverting every singular value above the
//     cutoff and zeroing the rest.
//   - Stage 4: compose A⁺ = V·Σ⁺·Uᵀ with the matrix kernels.
//
// Guarantees:
//   - A·A⁺·A ≈ A and A⁺·A·A⁺ ≈ A⁺ within floating-point tolerance.
//   - Full-rank square A → A⁺ equals the ordinary inverse.
//   - All-zero A → all-zero A⁺; 1×1 [x] → [1/x] if x ≠ 0, else [0].
//
// Errors:
//   - ErrBadTolerance            (negative or non-finite cutoff)
//   - matrix.ErrNilMatrix        (nil input)
//   - matrix.ErrInvalidDimensions (empty shape)
//   - matrix.ErrNaNInf           (non-finite entry)
//   - ErrNoConvergence           (decomposition failure)
//
// Complexity: O(R·C·min(R,C)) time, O(R·C) space.
func PseudoInverse(m matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	// Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Tolerance < 0 || math.IsNaN(cfg.Tolerance) || math.IsInf(cfg.Tolerance, 0) {
		return nil, pinvErrorf(ErrBadTolerance)
	}

	// Validate the input via the canonical matrix validators.
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, pinvErrorf(err)
	}
	if err := matrix.ValidateShape(m); err != nil {
		return nil, pinvErrorf(err)
	}
	if err := matrix.ValidateFinite(m); err != nil {
		return nil, pinvErrorf(err)
	}

	// Hand A to the decomposition collaborator.
	rows, cols := m.Rows(), m.Cols()
	a, err := toGonum(m)
	if err != nil {
		return nil, pinvErrorf(err)
	}

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, pinvErrorf(ErrNoConvergence)
	}

	// Thin factors: U is R×k, V is C×k, k = min(R, C); s holds the
	// singular values in descending order.
	s := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	// Resolve the cutoff: explicit tolerance wins, otherwise the
	// standard relative-epsilon rule on the largest singular value.
	tol := cfg.Tolerance
	if tol == 0 {
		tol = float64(max(rows, cols)) * s[0] * epsilon
	}

	// Σ⁺: reciprocal of every singular value above the cutoff, zero below.
	k := len(s)
	sigmaPlus, err := matrix.NewDense(k, k)
	if err != nil {
		return nil, pinvErrorf(err)
	}
	for i, sv := range s {
		if sv > tol {
			if err = sigmaPlus.Set(i, i, 1/sv); err != nil {
				return nil, pinvErrorf(err)
			}
		}
	}

	// Compose A⁺ = V · Σ⁺ · Uᵀ with the matrix kernels.
	vd, err := fromGonum(&v)
	if err != nil {
		return nil, pinvErrorf(err)
	}
	ud, err := fromGonum(&u)
	if err != nil {
		return nil, pinvErrorf(err)
	}

	vs, err := matrix.Mul(vd, sigmaPlus)
	if err != nil {
		return nil, pinvErrorf(err)
	}
	ut, err := matrix.Transpose(ud)
	if err != nil {
		return nil, pinvErrorf(err)
	}
	res, err := matrix.Mul(vs, ut)
	if err != nil {
		return nil, pinvErrorf(err)
	}

	// Mul always materializes a *Dense.
	return res.(*matrix.Dense), nil
}

// toGonum copies a Matrix into a gonum *mat.Dense.
// Complexity: O(r*c).
func toGonum(m matrix.Matrix) (*mat.Dense, error) {
	rows, cols := m.Rows(), m.Cols()
	buf := make([]float64, rows*cols)

	var (
		v   float64
		err error
	)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			buf[i*cols+j] = v
		}
	}

	return mat.NewDense(rows, cols, buf), nil
}

// fromGonum copies a gonum matrix into a lvlnum *matrix.Dense.
// Complexity: O(r*c).
func fromGonum(g mat.Matrix) (*matrix.Dense, error) {
	rows, cols := g.Dims()
	d, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if err = d.Set(i, j, g.At(i, j)); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}
