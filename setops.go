package rangeset

// Complement replaces the set with its complement and returns it. The
// boundary vector already describes both the set and its complement, so
// only the parity flag changes: the operation is O(1) and never fails.
func (s *RangeSet) Complement() *RangeSet {
	s.offset = !s.offset
	return s
}

// intersect computes the intersection of two sets given by their toggle
// representations: the strictly increasing points at which membership
// flips, plus whether 0 is a member. It walks both point lists in a
// single merged sweep, tracking one membership bit per operand, and
// records an output boundary whenever the conjunction of the two bits
// changes. The output is assembled directly in canonical bookended form.
func intersect(at []uint64, a bool, bt []uint64, b bool) *RangeSet {
	r := &RangeSet{
		ranges: make([]uint64, 1, len(at)+len(bt)+2),
		offset: !(a && b),
	}
	out := a && b
	i, j := 0, 0
	for i < len(at) || j < len(bt) {
		var p uint64
		switch {
		case j == len(bt) || (i < len(at) && at[i] < bt[j]):
			p, a = at[i], !a
			i++
		case i == len(at) || bt[j] < at[i]:
			p, b = bt[j], !b
			j++
		default:
			// A boundary shared by both operands flips both bits at
			// once; emitting it twice would corrupt the output.
			p, a, b = at[i], !a, !b
			i++
			j++
		}
		if c := a && b; c != out {
			r.ranges = append(r.ranges, p)
			out = c
		}
	}
	r.ranges = append(r.ranges, 0)
	return r
}

// And returns the intersection of a and b. It runs in O(N+M) over the
// operands' range counts and mutates neither operand.
func And(a, b *RangeSet) *RangeSet {
	at, az := a.toggles()
	bt, bz := b.toggles()
	return intersect(at, az, bt, bz)
}

// Or returns the union of a and b. Per De Morgan, A ∪ B = ¬(¬A ∩ ¬B);
// complementing only flips parity bits, so the union costs exactly one
// intersection sweep.
func Or(a, b *RangeSet) *RangeSet {
	at, az := a.toggles()
	bt, bz := b.toggles()
	return intersect(at, !az, bt, !bz).Complement()
}

// AndNot returns the difference a ∖ b, computed as A ∩ ¬B.
func AndNot(a, b *RangeSet) *RangeSet {
	at, az := a.toggles()
	bt, bz := b.toggles()
	return intersect(at, az, bt, !bz)
}

// Xor returns the symmetric difference of a and b, computed as
// (A ∖ B) ∪ (B ∖ A).
func Xor(a, b *RangeSet) *RangeSet {
	return Or(AndNot(a, b), AndNot(b, a))
}

// And replaces the set with its intersection with o and returns it. The
// result is computed into a fresh boundary vector and swapped in, so the
// set is never observable in a half-updated state.
func (s *RangeSet) And(o *RangeSet) *RangeSet {
	if s == o {
		return s
	}
	*s = *And(s, o)
	return s
}

// Or replaces the set with its union with o and returns it.
func (s *RangeSet) Or(o *RangeSet) *RangeSet {
	if s == o {
		return s
	}
	*s = *Or(s, o)
	return s
}

// AndNot removes every member of o from the set and returns it.
// Subtracting a set from itself empties it without running the sweep.
func (s *RangeSet) AndNot(o *RangeSet) *RangeSet {
	if s == o {
		s.Clear()
		return s
	}
	*s = *AndNot(s, o)
	return s
}

// Xor replaces the set with its symmetric difference with o and returns
// it. A ⊕ A is always empty, so the self case clears the set directly.
func (s *RangeSet) Xor(o *RangeSet) *RangeSet {
	if s == o {
		s.Clear()
		return s
	}
	*s = *Xor(s, o)
	return s
}
