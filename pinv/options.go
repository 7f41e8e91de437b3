// Package pinv options: the singular-value cutoff policy.
package pinv

// Options configures PseudoInverse.
//
// Fields:
//   - Tolerance — absolute cutoff below which a singular value is
//     treated as zero (its reciprocal becomes zero instead of blowing
//     up). Zero selects the automatic relative rule
//     max(R,C)·σ_max·machine-epsilon.
//
// Example:
//
//	ap, err := pinv.PseudoInverse(a, pinv.WithTolerance(1e-10))
type Options struct {
	Tolerance float64
}

// Option mutates Options before the computation starts.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: automatic
// relative-epsilon cutoff.
func DefaultOptions() Options {
	return Options{Tolerance: 0}
}

// WithTolerance sets an explicit absolute singular-value cutoff.
// Values <= t are zeroed rather than inverted. Negative or non-finite
// t makes PseudoInverse fail with ErrBadTolerance.
func WithTolerance(t float64) Option {
	return func(o *Options) { o.Tolerance = t }
}
