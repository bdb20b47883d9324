package rangeset

import (
	"fmt"
	"iter"
	"strings"
)

// Ranges returns an iterator over the disjoint, non-adjacent half-open
// [start, end) ranges of the set in increasing order. Pairs are produced
// by value, and the sequence can be restarted by ranging over it again.
// Mutating the set invalidates any iteration in flight.
func (s *RangeSet) Ranges() iter.Seq2[uint64, uint64] {
	return func(yield func(uint64, uint64) bool) {
		b, e := s.bounds()
		for i := b; i < e; i += 2 {
			if !yield(s.ranges[i], s.ranges[i+1]) {
				return
			}
		}
	}
}

// ComplementRanges returns an iterator over the ranges of the set's
// complement. It reads the same boundary vector with the opposite
// parity; no complement set is materialized.
func (s *RangeSet) ComplementRanges() iter.Seq2[uint64, uint64] {
	return func(yield func(uint64, uint64) bool) {
		b, e := s.complementBounds()
		for i := b; i < e; i += 2 {
			if !yield(s.ranges[i], s.ranges[i+1]) {
				return
			}
		}
	}
}

// Values returns an iterator over every integer in the set in increasing
// order. Note that a set near the top of the 64 bit universe is finite
// but can still be enormous: iterating a full set yields 2^64 values.
func (s *RangeSet) Values() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for start, end := range s.Ranges() {
			// end == 0 stands for 2^64, so the loop terminates on the
			// wrapped successor instead of comparing against end.
			for u := start; ; u++ {
				if !yield(u) {
					return
				}
				if u+1 == end {
					break
				}
			}
		}
	}
}

// String renders the ranges of the set for diagnostics, for example
// "{[3, 6), [9, 0)}". The output is not a stable or parseable format.
func (s *RangeSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for start, end := range s.Ranges() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "[%d, %d)", start, end)
	}
	sb.WriteByte('}')
	return sb.String()
}
