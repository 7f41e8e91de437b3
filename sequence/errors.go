// SPDX-License-Identifier: MIT
// Package sequence: sentinel error set.
// All functions MUST return these sentinels (optionally wrapped) and
// tests MUST check them via errors.Is. No function panics on
// user-triggered error conditions.

package sequence

import "errors"

var (
	// ErrZeroStep indicates that Arange was called with step == 0,
	// which would never terminate.
	ErrZeroStep = errors.New("sequence: step must be non-zero")

	// ErrOutOfRange indicates that SplitByIndex received bounds outside
	// the valid [0, len] window, or start > end.
	ErrOutOfRange = errors.New("sequence: index out of range")
)
