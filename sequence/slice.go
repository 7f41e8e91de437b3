// SPDX-License-Identifier: MIT
// Package sequence - pure slice utilities.
//
// Every function returns a freshly allocated slice; inputs are never
// mutated or aliased, so results are safe to retain and modify.

package sequence

import "fmt"

// Reverse returns a new slice with the element order inverted.
// Complexity: O(n) time and memory.
func Reverse[T any](s []T) []T {
	out := make([]T, len(s))
	// Mirror copy, fixed order.
	for i, v := range s {
		out[len(s)-1-i] = v
	}

	return out
}

// Concatenate returns a new slice holding a's elements followed by b's.
// Complexity: O(len(a)+len(b)) time and memory.
func Concatenate[T any](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)

	return out
}

// SplitByIndex returns a copy of the elements in [start, end).
// start == end yields an empty slice.
//
// Errors: ErrOutOfRange when start < 0, end > len(s) or start > end.
//
// Complexity: O(end-start) time and memory.
func SplitByIndex[T any](s []T, start, end int) ([]T, error) {
	// Validate the half-open window against the slice bounds.
	if start < 0 || end > len(s) || start > end {
		return nil, fmt.Errorf("SplitByIndex(%d,%d) of len %d: %w", start, end, len(s), ErrOutOfRange)
	}

	out := make([]T, end-start)
	copy(out, s[start:end])

	return out, nil
}
