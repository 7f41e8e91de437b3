// Package matrix core contract: the Matrix interface implemented by Dense
// and accepted by every kernel in this package.
package matrix

// Matrix is a rectangular table of float64 values with error-returning
// accessors. Implementations must keep Rows() >= 1 and Cols() >= 1 for
// any value obtainable through public constructors.
//
//   - At/Set return ErrOutOfRange on bad indices instead of panicking.
//   - Clone returns a deep, independent copy.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At retrieves the element at (row, col).
	At(row, col int) (float64, error)

	// Set assigns v at (row, col).
	Set(row, col int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}
