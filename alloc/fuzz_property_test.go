package alloc

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gopherheap/heaparena/arena"
)

// TestFuzzRandomAllocFreeGuardsInvariants performs random alloc/free/realloc
// operations and validates every heap and free-list invariant after each
// step, with a fixed seed for reproducibility.
func TestFuzzRandomAllocFreeGuardsInvariants(t *testing.T) {
	a, err := New(arena.NewBounded(0, 1<<22))
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	live := map[int]int{}

	for i := 0; i < 500; i++ {
		op := rng.Intn(3)
		switch op {
		case 0:
			size := 1 + rng.Intn(2048)
			ptr, allocErr := a.Malloc(size)
			if allocErr == nil {
				live[ptr] = size
				t.Logf("step %d: malloc(%d) -> %d", i, size, ptr)
			} else {
				t.Logf("step %d: malloc(%d) failed: %v", i, size, allocErr)
			}

		case 1:
			if len(live) > 0 {
				for ptr := range live {
					require.NoError(t, a.Free(ptr), "step %d: free(%d)", i, ptr)
					delete(live, ptr)
					t.Logf("step %d: freed %d", i, ptr)
					break
				}
			}

		case 2:
			if len(live) > 0 {
				for ptr := range live {
					size := 1 + rng.Intn(4096)
					newPtr, reallocErr := a.Realloc(ptr, size)
					require.NoError(t, reallocErr, "step %d: realloc(%d, %d)", i, ptr, size)
					delete(live, ptr)
					live[newPtr] = size
					t.Logf("step %d: realloc(%d) -> %d, size=%d", i, ptr, newPtr, size)
					break
				}
			}
		}

		require.NoError(t, a.Check(), "step %d: invariant check failed", i)
	}

	t.Logf("500 random operations completed, %d allocations still live", len(live))
}

// TestFuzzStressAllocFree runs repeated fill-then-drain rounds and checks
// consistency after each round.
func TestFuzzStressAllocFree(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping stress test in short mode")
	}

	a, err := New(arena.NewBounded(0, 1<<22))
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(12345))

	for round := 0; round < 10; round++ {
		var ptrs []int
		for i := 0; i < 50; i++ {
			size := 64 + rng.Intn(256)
			ptr, allocErr := a.Malloc(size)
			require.NoError(t, allocErr)
			ptrs = append(ptrs, ptr)
		}

		for _, ptr := range ptrs {
			require.NoError(t, a.Free(ptr))
		}

		require.NoError(t, a.Check(), "round %d: invariant check failed", round)
	}

	t.Logf("stress test: 10 rounds of 50 alloc/free cycles completed")
}
