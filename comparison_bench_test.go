package rangeset

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Comparative benchmarks: RangeSet vs 64 bit Roaring Bitmap.
// Run with: go test -bench=Comparison -benchmem

const benchRanges = 1024

// ==============================================================================
// AddRange comparison
// ==============================================================================

func BenchmarkComparison_AddRange_RangeSet(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s := New()
		for k := uint64(0); k < benchRanges; k++ {
			s.AddRange(k*8, k*8+4)
		}
	}
}

func BenchmarkComparison_AddRange_Roaring64(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		rb := roaring64.New()
		for k := uint64(0); k < benchRanges; k++ {
			rb.AddRange(k*8, k*8+4)
		}
	}
}

// ==============================================================================
// AND operation comparison
// ==============================================================================

func benchOperands() (*RangeSet, *RangeSet) {
	a, x := New(), New()
	for k := uint64(0); k < benchRanges; k++ {
		a.AddRange(k*8, k*8+5)
		x.AddRange(k*8+3, k*8+7)
	}
	return a, x
}

func BenchmarkComparison_And_RangeSet(b *testing.B) {
	a, x := benchOperands()

	var sink *RangeSet
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink = And(a, x)
	}
	_ = sink
}

func BenchmarkComparison_And_Roaring64(b *testing.B) {
	at, xt := benchOperands()
	a, x := at.ToRoaring(), xt.ToRoaring()

	var sink *roaring64.Bitmap
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r := a.Clone()
		r.And(x)
		sink = r
	}
	_ = sink
}

// ==============================================================================
// Contains comparison
// ==============================================================================

func BenchmarkComparison_Contains_RangeSet(b *testing.B) {
	s, _ := benchOperands()

	var hits int
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if s.Contains(uint64(i) % (benchRanges * 8)) {
			hits++
		}
	}
	_ = hits
}

func BenchmarkComparison_Contains_Roaring64(b *testing.B) {
	st, _ := benchOperands()
	s := st.ToRoaring()

	var hits int
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if s.Contains(uint64(i) % (benchRanges * 8)) {
			hits++
		}
	}
	_ = hits
}

// ==============================================================================
// Cardinality comparison
// ==============================================================================

func BenchmarkComparison_Cardinality_RangeSet(b *testing.B) {
	s, _ := benchOperands()

	var sink uint64
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = s.Cardinality()
	}
	_ = sink
}

func BenchmarkComparison_Cardinality_Roaring64(b *testing.B) {
	st, _ := benchOperands()
	s := st.ToRoaring()

	var sink uint64
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = s.GetCardinality()
	}
	_ = sink
}
