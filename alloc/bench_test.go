package alloc

import (
	"testing"

	"github.com/gopherheap/heaparena/arena"
)

// Benchmark_Malloc_SmallBlocks benchmarks repeated small allocations
// against a generous, never-freeing heap.
func Benchmark_Malloc_SmallBlocks(b *testing.B) {
	a, err := New(arena.New(0))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		size := 64 + (i%64)*2
		if _, allocErr := a.Malloc(size); allocErr != nil {
			b.Fatal(allocErr)
		}
	}
}

// Benchmark_MallocFree_SteadyState benchmarks the slow path: every
// allocation immediately frees its predecessor, forcing free-list churn
// instead of growth. The lone block sits between the prologue and the
// epilogue, so no coalescing takes place.
func Benchmark_MallocFree_SteadyState(b *testing.B) {
	a, err := New(arena.New(0))
	if err != nil {
		b.Fatal(err)
	}

	ptr, err := a.Malloc(128)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if err := a.Free(ptr); err != nil {
			b.Fatal(err)
		}
		ptr, err = a.Malloc(128)
		if err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark_Malloc_BestOfK measures BestOfK placement overhead under
// fragmentation.
func Benchmark_Malloc_BestOfK(b *testing.B) {
	a, err := New(arena.New(0), WithPlacementPolicy(BestOfK(8)))
	if err != nil {
		b.Fatal(err)
	}

	var ptrs []int
	for i := 0; i < 256; i++ {
		ptr, allocErr := a.Malloc(32 + (i%16)*16)
		if allocErr != nil {
			b.Fatal(allocErr)
		}
		ptrs = append(ptrs, ptr)
	}
	for i := 0; i < len(ptrs); i += 2 {
		if err := a.Free(ptrs[i]); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, allocErr := a.Malloc(64); allocErr != nil {
			b.Fatal(allocErr)
		}
	}
}
