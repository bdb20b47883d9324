// Package rangeset provides a compact ordered set of unsigned 64 bit
// integers.
//
// Elements are tracked as a sorted list of disjoint, non-empty, half-open
// ranges, which is memory efficient for sets containing long runs of
// consecutive integers. Given a hierarchical pixelization of the sphere
// and a spherical region, a RangeSet is a good way to store the indexes
// of the pixels intersecting the region: such index sets are naturally
// composed of long contiguous runs.
//
// # Representation
//
// The beginnings and ends of the ranges are stored in a single boundary
// vector whose first and last values are always 0, together with a parity
// flag selecting whether the first range of the set starts at index 0 or
// index 1. For a set containing the single integer 3 the vector is
//
//	[0, 3, 4, 0]
//
// Reading consecutive pairs starting at index 1 yields [3, 4), the
// contents of the set. Reading pairs starting at index 0 yields [0, 3)
// and [4, 0), the integers NOT in the set. One vector thus describes both
// the set and its complement, so toggling the parity flag complements the
// set in constant time. Union and difference piggyback on a single
// intersection sweep, since A ∪ B = ¬(¬A ∩ ¬B) and A ∖ B = A ∩ ¬B.
//
// # Ranges
//
// All endpoint arithmetic is modular over the unsigned 64 bit integers.
// A range [start, end) whose largest element is math.MaxUint64 has an end
// of 0. A range with start == end contains all 2^64 values, and a range
// with start > end wraps around: it contains every value except those in
// [end, start).
//
// # Concurrency
//
// A RangeSet has no internal synchronization. Concurrent reads of an
// unmutated set are safe; any concurrent write requires external
// locking.
package rangeset
