package rangeset

// Simplify coarsens the set and returns it: the beginning of every range
// is rounded down to the nearest multiple of 2^n and the end is rounded
// up, after which ranges that have come to overlap or abut are merged.
// The result is always a superset of the original and never has more
// ranges. If the ranges are pixel indexes of a hierarchical pixelization
// overlapping a region, this computes a lower resolution representation
// of the coverage.
func (s *RangeSet) Simplify(n uint32) *RangeSet {
	if n == 0 || s.IsEmpty() {
		return s
	}
	if n >= 64 {
		s.Fill()
		return s
	}
	mask := uint64(1)<<n - 1

	b, e := s.bounds()
	merged := make([]uint64, 0, e-b) // flattened [start, end) pairs
	for i := b; i < e; i += 2 {
		start := s.ranges[i] &^ mask
		end := (s.ranges[i+1] + mask) &^ mask
		if k := len(merged); k > 0 && (merged[k-1] == 0 || start <= merged[k-1]) {
			// Overlaps or abuts the previous rounded range. An end of
			// 0 stands for 2^64 and swallows everything after it.
			if merged[k-1] != 0 && (end == 0 || end > merged[k-1]) {
				merged[k-1] = end
			}
			continue
		}
		merged = append(merged, start, end)
	}

	ranges := make([]uint64, 0, len(merged)+2)
	if merged[0] != 0 {
		ranges = append(ranges, 0)
	}
	ranges = append(ranges, merged...)
	if merged[len(merged)-1] != 0 {
		ranges = append(ranges, 0)
	}
	s.ranges = ranges
	s.offset = merged[0] != 0
	return s
}

// Scale multiplies the endpoints of every range by i, modulo 2^64, and
// returns the set. For ranges holding pixel indexes of a hierarchical
// pixelization such as HTM or Q3C, scaling by 4 corresponds to increasing
// the subdivision level by 1.
//
// Endpoint arithmetic wraps: a range whose scaled endpoints overflow
// becomes a wraparound range, and a range whose scaled endpoints collide
// becomes the full universe. Scaling a non-empty set by 0 collapses it
// to {0}.
func (s *RangeSet) Scale(i uint64) *RangeSet {
	if i == 1 || s.IsEmpty() {
		return s
	}
	if i == 0 {
		s.Clear()
		s.Add(0)
		return s
	}
	r := New()
	b, e := s.bounds()
	for k := b; k < e; k += 2 {
		r.AddRange(s.ranges[k]*i, s.ranges[k+1]*i)
	}
	*s = *r
	return s
}
