package rangeset_test

import (
	"fmt"

	"github.com/hupe1980/rangeset"
)

// Example demonstrates accumulating pixel indexes and combining them.
func Example() {
	// Pixels of a region, accumulated as they are produced.
	coverage := rangeset.New()
	coverage.AddRange(12, 16)
	coverage.AddRange(16, 20) // abuts the previous run and merges
	coverage.Add(42)

	fmt.Println(coverage)
	// Output: {[12, 20), [42, 43)}
}

func ExampleRangeSet_Complement() {
	s := rangeset.New(3)
	s.Complement()

	fmt.Println(s)
	// Output: {[0, 3), [4, 0)}
}

func ExampleAnd() {
	a := rangeset.NewRange(0, 10)
	b := rangeset.NewRange(5, 15)

	fmt.Println(rangeset.And(a, b))
	// Output: {[5, 10)}
}

func ExampleXor() {
	a := rangeset.NewRange(0, 10)
	b := rangeset.NewRange(5, 15)

	fmt.Println(rangeset.Xor(a, b))
	// Output: {[0, 5), [10, 15)}
}

func ExampleRangeSet_Simplify() {
	s := rangeset.NewRanges(
		rangeset.Range{Start: 6, End: 7},
		rangeset.Range{Start: 9, End: 12},
	)

	// Coarsen to multiples of 2^2, trading precision for fewer ranges.
	s.Simplify(2)

	fmt.Println(s)
	// Output: {[4, 12)}
}

func ExampleRangeSet_Scale() {
	// Descend one quadtree subdivision level: every pixel index maps to
	// four child indexes.
	s := rangeset.NewRange(2, 4)
	s.Scale(4)

	fmt.Println(s)
	// Output: {[8, 16)}
}

func ExampleRangeSet_Ranges() {
	s := rangeset.NewRange(0, 10)
	s.RemoveRange(4, 6)

	for start, end := range s.Ranges() {
		fmt.Printf("[%d, %d)\n", start, end)
	}
	// Output:
	// [0, 4)
	// [6, 10)
}
