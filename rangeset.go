package rangeset

import (
	"iter"
	"slices"
	"sort"
)

// A Range is a half-open interval [Start, End) of unsigned 64 bit
// integers. Endpoint arithmetic is modular: a range whose largest element
// is math.MaxUint64 has End == 0. A range with Start == End contains all
// 2^64 values, and a range with Start > End wraps around, containing
// every value except those in [End, Start).
type Range struct {
	Start uint64
	End   uint64
}

// RangeSet is a set of unsigned 64 bit integers, stored as a sorted list
// of disjoint, non-empty, non-adjacent half-open ranges.
//
// The zero value is not usable; obtain sets from New, NewRange,
// NewRanges, Full, Collect, CollectRanges or FromRoaring.
type RangeSet struct {
	// ranges holds the range boundaries, bookended with 0 at both ends.
	// All values before the final one are strictly increasing. Reading
	// consecutive pairs starting at the parity offset yields the ranges
	// of the set; reading pairs starting at the opposite offset yields
	// the ranges of its complement.
	ranges []uint64

	// offset is false if the set contains 0, and true otherwise.
	offset bool
}

// New creates a set containing the given integers.
func New(values ...uint64) *RangeSet {
	s := &RangeSet{ranges: []uint64{0, 0}, offset: true}
	for _, u := range values {
		s.Add(u)
	}
	return s
}

// NewRange creates a set containing the integers in [start, end).
// Full (start == end) and wraparound (start > end) intervals are valid.
func NewRange(start, end uint64) *RangeSet {
	s := New()
	s.AddRange(start, end)
	return s
}

// NewRanges creates a set containing the integers of the given ranges.
func NewRanges(ranges ...Range) *RangeSet {
	s := New()
	for _, r := range ranges {
		s.AddRange(r.Start, r.End)
	}
	return s
}

// Full creates a set containing all 2^64 integers.
func Full() *RangeSet {
	return &RangeSet{ranges: []uint64{0, 0}, offset: false}
}

// Collect creates a set containing the integers produced by seq.
func Collect(seq iter.Seq[uint64]) *RangeSet {
	s := New()
	for u := range seq {
		s.Add(u)
	}
	return s
}

// CollectRanges creates a set containing the integers of the half-open
// [start, end) pairs produced by seq.
func CollectRanges(seq iter.Seq2[uint64, uint64]) *RangeSet {
	s := New()
	for start, end := range seq {
		s.AddRange(start, end)
	}
	return s
}

// span locates the boundaries of the logical ranges selected by the
// given parity inside a boundary vector of length n: the first boundary
// index and the index just past the last one. The trailing bookend
// participates as a range end exactly when the vector length and the
// parity line up, which is what the (n & 1) term sorts out.
func span(n int, offset bool) (b, e int) {
	if offset {
		b = 1
	}
	e = n - ((n & 1) ^ b)
	return b, e
}

// bounds returns the index range of the set's own boundaries.
func (s *RangeSet) bounds() (b, e int) {
	return span(len(s.ranges), s.offset)
}

// complementBounds returns the index range of the complement's
// boundaries within the same vector.
func (s *RangeSet) complementBounds() (b, e int) {
	return span(len(s.ranges), !s.offset)
}

// toggles returns the points in (0, 2^64) at which set membership flips,
// together with whether 0 is a member. The interior of the boundary
// vector is exactly the toggle list, for the set and its complement
// alike.
func (s *RangeSet) toggles() ([]uint64, bool) {
	return s.ranges[1 : len(s.ranges)-1], !s.offset
}

// Clone returns a deep copy of the set.
func (s *RangeSet) Clone() *RangeSet {
	return &RangeSet{ranges: slices.Clone(s.ranges), offset: s.offset}
}

// Equal reports whether the two sets contain the same integers. The
// representation is canonical, so this is a plain structural comparison.
func (s *RangeSet) Equal(o *RangeSet) bool {
	return s.offset == o.offset && slices.Equal(s.ranges, o.ranges)
}

// Clear removes all integers from the set.
func (s *RangeSet) Clear() {
	s.ranges = append(s.ranges[:0], 0, 0)
	s.offset = true
}

// Fill adds all 2^64 integers to the set.
func (s *RangeSet) Fill() {
	s.ranges = append(s.ranges[:0], 0, 0)
	s.offset = false
}

// IsEmpty reports whether the set contains no integers.
func (s *RangeSet) IsEmpty() bool {
	b, e := s.bounds()
	return b == e
}

// IsFull reports whether the set contains all 2^64 integers.
func (s *RangeSet) IsFull() bool {
	b, e := s.complementBounds()
	return b == e
}

// NumRanges returns the number of disjoint ranges in the set.
func (s *RangeSet) NumRanges() int {
	b, e := s.bounds()
	return (e - b) / 2
}

// Cardinality returns the number of integers in the set, modulo 2^64.
// Both the empty set and the full set report 0 (a full set contains 2^64
// integers); use IsEmpty or IsFull to disambiguate.
func (s *RangeSet) Cardinality() uint64 {
	var n uint64
	b, e := s.bounds()
	for i := b; i < e; i += 2 {
		n += s.ranges[i+1] - s.ranges[i]
	}
	return n
}

// Add adds the integer u to the set.
func (s *RangeSet) Add(u uint64) {
	s.AddRange(u, u+1)
}

// AddRange adds every integer in [start, end) to the set. Adding runs in
// amortized constant time when the interval extends or follows the last
// range of the set, and O(N) in the number of ranges otherwise.
func (s *RangeSet) AddRange(start, end uint64) {
	switch {
	case start == end:
		s.Fill()
	case start < end:
		s.insert(start, end)
	case end == 0:
		s.insert(start, 0)
	default:
		// A wraparound interval covers [start, 2^64) and [0, end).
		s.insert(start, 0)
		s.insert(0, end)
	}
}

// Remove removes the integer u from the set.
func (s *RangeSet) Remove(u uint64) {
	s.RemoveRange(u, u+1)
}

// RemoveRange removes every integer in [start, end) from the set.
// Removing an interval from the set is the same as inserting it into the
// complement, and complementing is a constant-time parity flip.
func (s *RangeSet) RemoveRange(start, end uint64) {
	s.Complement()
	s.AddRange(start, end)
	s.Complement()
}

// insert splices the interval [start, end) into the boundary vector,
// coalescing it with every range it overlaps or abuts. The interval must
// not be full or wrap around zero: either start < end, or end == 0
// standing for 2^64.
func (s *RangeSet) insert(start, end uint64) {
	b, e := s.bounds()
	m := (e - b) / 2

	// i indexes the first range whose end reaches start (the leftmost
	// range the interval can touch), and j the first range beginning
	// strictly after end. Ranges in [i, j) coalesce with the interval.
	i := sort.Search(m, func(k int) bool {
		re := s.ranges[b+2*k+1]
		return re == 0 || re >= start
	})
	j := m
	if end != 0 {
		j = i + sort.Search(m-i, func(k int) bool {
			return s.ranges[b+2*(i+k)] > end
		})
	}

	newStart, newEnd := start, end
	if i < j {
		if rs := s.ranges[b+2*i]; rs < newStart {
			newStart = rs
		}
		if re := s.ranges[b+2*j-1]; re == 0 || (newEnd != 0 && re > newEnd) {
			newEnd = re
		}
	}

	lo, hi := b+2*i, b+2*j
	if newStart == 0 && lo == 1 {
		// The merged range now begins at 0: its beginning coincides
		// with the leading bookend and the set gains the integer 0.
		lo = 0
		s.offset = false
	}
	if newEnd == 0 && hi == len(s.ranges)-1 {
		// The merged range now ends at 2^64: its end coincides with
		// the trailing bookend.
		hi = len(s.ranges)
	}
	s.ranges = slices.Replace(s.ranges, lo, hi, newStart, newEnd)
}

// IsValid checks the representation invariants: a boundary vector of at
// least two values, zero bookends at both ends, and strictly increasing
// values everywhere before the final bookend (which rules out empty,
// overlapping and abutting ranges). It exists for tests; a false return
// means the implementation broke its own invariants.
func (s *RangeSet) IsValid() bool {
	n := len(s.ranges)
	if n < 2 {
		return false
	}
	if s.ranges[0] != 0 || s.ranges[n-1] != 0 {
		return false
	}
	for i := 1; i < n-1; i++ {
		if s.ranges[i] <= s.ranges[i-1] {
			return false
		}
	}
	return true
}
