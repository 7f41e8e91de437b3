// Package sequence numeric constraint sets shared by the generators.
package sequence

// Int is the set of signed integer element types.
type Int interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Uint is the set of unsigned integer element types.
type Uint interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float is the set of floating-point element types.
type Float interface {
	~float32 | ~float64
}

// Number is any numeric type accepted as a Linspace endpoint; values
// are widened to float64 before spacing is computed.
type Number interface {
	Int | Uint | Float
}
