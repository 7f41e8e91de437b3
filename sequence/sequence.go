// SPDX-License-Identifier: MIT
// Package sequence - evenly spaced sequence generators.
//
// Purpose:
//   - Deterministic linspace/arange generation with a fixed fill loop,
//     one allocation per call and no global state.
//   - Endpoints of any numeric type; spacing always computed in float64.
//
// Determinism policy:
//   - Values are produced by a single accumulating loop; for inclusive
//     spacing the final element is snapped to exactly stop so rounding
//     drift never leaks into the endpoint.

package sequence

// Linspace returns samples evenly spaced float64 values starting at start.
//
// Spacing:
//   - includeEnd = true : step = (stop-start)/(samples-1); the last
//     element is set to exactly stop.
//   - includeEnd = false: step = (stop-start)/samples; stop is excluded
//     per the half-open convention.
//
// Edge cases:
//   - samples == 0 → nil.
//   - samples == 1 with includeEnd → [stop]; without → [start].
//
// Complexity: O(samples) time and memory.
func Linspace[T Number](start, stop T, samples int, includeEnd bool) []float64 {
	// Validate size early.
	if samples <= 0 {
		return nil
	}

	// Widen endpoints once; all arithmetic below is float64.
	startF, stopF := float64(start), float64(stop)
	span := stopF - startF

	var step float64
	if includeEnd {
		step = span / float64(samples-1)
	} else {
		step = span / float64(samples)
	}

	// Fill by accumulation, fixed order.
	values := make([]float64, samples)
	current := startF
	for i := 0; i < samples; i++ {
		values[i] = current
		current += step
	}

	// Snap the endpoint so accumulated rounding never shifts it.
	if includeEnd {
		values[samples-1] = stopF
	}

	return values
}

// LinspaceRepeated returns the inclusive Linspace run of samples values
// concatenated repeats times, useful for periodic sampling grids.
//
// Edge cases: samples == 0 or repeats == 0 → nil.
//
// Complexity: O(samples*repeats) time and memory.
func LinspaceRepeated[T Number](start, stop T, samples, repeats int) []float64 {
	// Validate sizes early.
	if samples <= 0 || repeats <= 0 {
		return nil
	}

	// Generate the base run once, then tile it.
	run := Linspace(start, stop, samples, true)
	out := make([]float64, 0, samples*repeats)
	for i := 0; i < repeats; i++ {
		out = append(out, run...)
	}

	return out
}

// Arange returns values stepping from start towards stop by step, stop
// exclusive per the half-open convention. A positive step counts up
// while v < stop; a negative step counts down while v > stop.
//
// Errors: ErrZeroStep when step == 0 (the loop would never terminate).
//
// Complexity: O(|stop-start|/|step|) time and memory.
func Arange[T Int | Float](start, stop, step T) ([]T, error) {
	// Reject the non-terminating case up front.
	if step == 0 {
		return nil, ErrZeroStep
	}

	var values []T
	if step > 0 {
		for v := start; v < stop; v += step {
			values = append(values, v)
		}
	} else {
		for v := start; v > stop; v += step {
			values = append(values, v)
		}
	}

	return values, nil
}
