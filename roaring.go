package rangeset

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// ToRoaring materializes the set as a 64 bit Roaring bitmap. Roaring
// stores elements rather than boundaries, so this is intended for sets
// of practical size, such as pixel coverages exchanged with bitmap-based
// indexes.
func (s *RangeSet) ToRoaring() *roaring64.Bitmap {
	rb := roaring64.New()
	for start, end := range s.Ranges() {
		if end == 0 {
			// AddRange takes an exclusive uint64 end and cannot express
			// 2^64, so the topmost value is added separately.
			rb.AddRange(start, math.MaxUint64)
			rb.Add(math.MaxUint64)
			continue
		}
		rb.AddRange(start, end)
	}
	return rb
}

// FromRoaring creates a set from a 64 bit Roaring bitmap, coalescing
// runs of consecutive values into ranges.
func FromRoaring(rb *roaring64.Bitmap) *RangeSet {
	s := New()
	it := rb.Iterator()
	if !it.HasNext() {
		return s
	}
	start := it.Next()
	prev := start
	for it.HasNext() {
		u := it.Next()
		if u == prev+1 {
			prev = u
			continue
		}
		s.AddRange(start, prev+1)
		start, prev = u, u
	}
	s.AddRange(start, prev+1) // prev+1 wraps to 0 when prev is MaxUint64
	return s
}
