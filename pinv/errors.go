// SPDX-License-Identifier: MIT
// Package pinv: sentinel error set.
// Shape and numeric-policy violations reuse the matrix package
// sentinels (ErrNilMatrix, ErrInvalidDimensions, ErrNaNInf); this file
// adds only the failures specific to the decomposition step. Tests
// check all of them via errors.Is.

package pinv

import "errors"

var (
	// ErrNoConvergence indicates that the singular value decomposition
	// failed to converge on the input. Propagated from the
	// linear-algebra collaborator; the computation has no partial result.
	ErrNoConvergence = errors.New("pinv: singular value decomposition did not converge")

	// ErrBadTolerance indicates that WithTolerance received a negative
	// or non-finite cutoff.
	ErrBadTolerance = errors.New("pinv: tolerance must be finite and >= 0")
)
