package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"github.com/gopherheap/heaparena/alloc"
	"github.com/gopherheap/heaparena/arena"
)

// runWorkload builds a fresh allocator bounded to heapSize bytes and
// drives it through n pseudo-random operations seeded by seed, so that
// every invocation with the same flags reproduces the exact same
// sequence of allocator calls.
func runWorkload(n int, seed int64, maxHeap int, logVerbose bool) (*alloc.Allocator, error) {
	region := arena.NewBounded(0, maxHeap)

	var opts []alloc.Option
	opts = append(opts, alloc.WithDebugChecks(true))
	if logVerbose {
		opts = append(opts, alloc.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))))
	}

	a, err := alloc.New(region, opts...)
	if err != nil {
		return nil, fmt.Errorf("allocbench: building allocator: %w", err)
	}

	rng := rand.New(rand.NewSource(seed))
	var live []int

	for i := 0; i < n; i++ {
		switch {
		case len(live) == 0 || rng.Intn(3) != 0:
			size := 1 + rng.Intn(2048)
			ptr, err := a.Malloc(size)
			if err != nil {
				return a, fmt.Errorf("allocbench: op %d: malloc(%d): %w", i, size, err)
			}
			live = append(live, ptr)

		case rng.Intn(4) == 0:
			idx := rng.Intn(len(live))
			size := 1 + rng.Intn(4096)
			newPtr, err := a.Realloc(live[idx], size)
			if err != nil {
				return a, fmt.Errorf("allocbench: op %d: realloc: %w", i, err)
			}
			live[idx] = newPtr

		default:
			idx := rng.Intn(len(live))
			if err := a.Free(live[idx]); err != nil {
				return a, fmt.Errorf("allocbench: op %d: free: %w", i, err)
			}
			live[idx] = live[len(live)-1]
			live = live[:len(live)-1]
		}
	}

	return a, nil
}
