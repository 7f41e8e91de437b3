package sequence_test

import (
	"fmt"

	"github.com/katalvlaran/lvlnum/sequence"
)

// ExampleLinspace samples a closed interval.
func ExampleLinspace() {
	fmt.Println(sequence.Linspace(0, 10, 5, true))
	fmt.Println(sequence.Linspace(0, 10, 5, false))
	// Output:
	// [0 2.5 5 7.5 10]
	// [0 2 4 6 8]
}

// ExampleArange steps through a half-open range.
func ExampleArange() {
	up, _ := sequence.Arange(0, 10, 2)
	down, _ := sequence.Arange(10, 0, -2)
	fmt.Println(up)
	fmt.Println(down)
	// Output:
	// [0 2 4 6 8]
	// [10 8 6 4 2]
}

// ExampleConcatenate joins two runs and reverses the result.
func ExampleConcatenate() {
	joined := sequence.Concatenate([]int{1, 2}, []int{3, 4})
	fmt.Println(joined)
	fmt.Println(sequence.Reverse(joined))
	// Output:
	// [1 2 3 4]
	// [4 3 2 1]
}
