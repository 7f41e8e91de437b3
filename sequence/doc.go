// Package sequence generates evenly spaced numeric sequences and
// provides small slice utilities (reverse, concatenate, split).
//
// ✨ Key operations:
//   - Linspace / LinspaceRepeated — NumPy-style evenly spaced values
//     over [start, stop], inclusive or half-open.
//   - Arange — fixed-step half-open range, counting up or down.
//   - Reverse, Concatenate, SplitByIndex — pure slice helpers that
//     always return freshly allocated results.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlnum/sequence"
//
//	xs := sequence.Linspace(0, 10, 5, true) // [0 2.5 5 7.5 10]
//	ys, err := sequence.Arange(0, 10, 2)    // [0 2 4 6 8]
//
// All functions are deterministic, allocate exactly one result, and
// never panic on user input: invalid arguments surface as sentinel
// errors (ErrZeroStep, ErrOutOfRange) matched with errors.Is.
package sequence
