package rangeset

import "sort"

// Contains reports whether u is a member of the set.
func (s *RangeSet) Contains(u uint64) bool {
	b, e := s.bounds()
	m := (e - b) / 2
	i := sort.Search(m, func(k int) bool {
		re := s.ranges[b+2*k+1]
		return re == 0 || re > u
	})
	return i < m && s.ranges[b+2*i] <= u
}

// ContainsRange reports whether every integer in [start, end) is a
// member of the set.
func (s *RangeSet) ContainsRange(start, end uint64) bool {
	switch {
	case start == end:
		return s.IsFull()
	case start > end && end != 0:
		return s.ContainsRange(start, 0) && s.ContainsRange(0, end)
	}
	b, e := s.bounds()
	m := (e - b) / 2
	i := sort.Search(m, func(k int) bool {
		re := s.ranges[b+2*k+1]
		return re == 0 || re > start
	})
	if i == m || s.ranges[b+2*i] > start {
		return false
	}
	re := s.ranges[b+2*i+1]
	return re == 0 || (end != 0 && re >= end)
}

// IntersectsRange reports whether the set and [start, end) share at
// least one integer. Ranges that merely abut do not intersect.
func (s *RangeSet) IntersectsRange(start, end uint64) bool {
	switch {
	case start == end:
		return !s.IsEmpty()
	case start > end && end != 0:
		return s.IntersectsRange(start, 0) || s.IntersectsRange(0, end)
	}
	b, e := s.bounds()
	m := (e - b) / 2
	i := sort.Search(m, func(k int) bool {
		re := s.ranges[b+2*k+1]
		return re == 0 || re > start
	})
	return i < m && (end == 0 || s.ranges[b+2*i] < end)
}

// Intersects reports whether the set and o share at least one integer.
// It is an early-exit variant of the intersection sweep: the walk stops
// at the first point where both membership bits are set instead of
// materializing a result.
func (s *RangeSet) Intersects(o *RangeSet) bool {
	st, sz := s.toggles()
	ot, oz := o.toggles()
	return sweepIntersects(st, sz, ot, oz)
}

func sweepIntersects(at []uint64, a bool, bt []uint64, b bool) bool {
	if a && b {
		return true
	}
	i, j := 0, 0
	for i < len(at) || j < len(bt) {
		switch {
		case j == len(bt) || (i < len(at) && at[i] < bt[j]):
			a = !a
			i++
		case i == len(at) || bt[j] < at[i]:
			b = !b
			j++
		default:
			a, b = !a, !b
			i++
			j++
		}
		if a && b {
			return true
		}
	}
	return false
}

// IsSuperset reports whether every member of o is also a member of the
// set, i.e. whether o ∩ ¬S is empty. Complementing S is a parity flip,
// so this is a single early-exit sweep.
func (s *RangeSet) IsSuperset(o *RangeSet) bool {
	st, sz := s.toggles()
	ot, oz := o.toggles()
	return !sweepIntersects(ot, oz, st, !sz)
}

// IsSubset reports whether every member of the set is also a member
// of o.
func (s *RangeSet) IsSubset(o *RangeSet) bool {
	return o.IsSuperset(s)
}

// Within reports whether every member of the set lies in [start, end).
func (s *RangeSet) Within(start, end uint64) bool {
	if start == end {
		return true
	}
	// The complement of [start, end) is [end, start).
	return !s.IntersectsRange(end, start)
}

// IntersectsValue reports whether the set and {u} share an integer. It
// is the single-integer form of IntersectsRange and equivalent to
// Contains.
func (s *RangeSet) IntersectsValue(u uint64) bool {
	return s.Contains(u)
}

// WithinValue reports whether the set has no members other than u.
func (s *RangeSet) WithinValue(u uint64) bool {
	return s.Within(u, u+1)
}

// IsDisjoint reports whether the set and o have no members in common.
func (s *RangeSet) IsDisjoint(o *RangeSet) bool {
	return !s.Intersects(o)
}

// IsDisjointRange reports whether the set and [start, end) have no
// members in common.
func (s *RangeSet) IsDisjointRange(start, end uint64) bool {
	return !s.IntersectsRange(start, end)
}

// IsDisjointValue reports whether u is not a member of the set.
func (s *RangeSet) IsDisjointValue(u uint64) bool {
	return !s.Contains(u)
}
