// Package alloc implements a segregated free-list heap allocator over a
// caller-supplied, growable byte region: a classic boundary-tag malloc
// with no global state and no raw pointers — every "address" is an int
// byte offset into the region's backing slice, and an *Allocator value
// threads all of it explicitly.
package alloc

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/gopherheap/heaparena/arena"
	"github.com/gopherheap/heaparena/internal/obslog"
	"github.com/gopherheap/heaparena/internal/word"
)

// initBytes is the size of the bootstrap heap: one word of alignment
// padding, a two-word prologue (header+footer, no payload), and a
// one-word epilogue header.
const initBytes = 4 * word.Size

// firstBlockOffset is where the first real block's header lands: New
// writes the bootstrap epilogue header at initBytes-word.Size, and
// extendHeap overwrites that exact offset with the first real block's
// header rather than appending after it.
const firstBlockOffset = initBytes - word.Size

// Allocator is a segregated free-list heap over an arena.Region. The
// zero value is not usable; construct with New.
type Allocator struct {
	region arena.Region
	heads  [numClasses]int
	policy Policy
	stats  Stats

	debug      bool
	zeroOnFree bool
	logger     *slog.Logger
}

// Option configures an Allocator at construction time.
type Option func(*Allocator)

// WithDebugChecks runs Check after every Malloc and Free, turning the
// first corrupted invariant into a returned error instead of a later,
// harder-to-diagnose failure. Expensive; intended for tests and
// debugging, not production hot paths.
func WithDebugChecks(enabled bool) Option {
	return func(a *Allocator) { a.debug = enabled }
}

// WithLogger routes structured debug events (heap growth, splits,
// coalescing) through l instead of discarding them.
func WithLogger(l *slog.Logger) Option {
	return func(a *Allocator) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithZeroOnFree overwrites a block's payload with zeros before it is
// coalesced and returned to a free list, trading a memset for not
// leaking freed data through a subsequent allocation. Once the block is
// on a free list, its first two payload words hold the list links.
func WithZeroOnFree(enabled bool) Option {
	return func(a *Allocator) { a.zeroOnFree = enabled }
}

// WithPlacementPolicy selects the search strategy findFreeBlock uses.
// Defaults to FirstFit.
func WithPlacementPolicy(p Policy) Option {
	return func(a *Allocator) { a.policy = p }
}

// New constructs an Allocator over r, writing the bootstrap prologue and
// epilogue. r must be empty (Sbrk starting at offset 0) — New owns the
// entire region from its first byte.
func New(r arena.Region, opts ...Option) (*Allocator, error) {
	a := &Allocator{region: r, logger: obslog.Discard()}
	for i := range a.heads {
		a.heads[i] = emptyHead
	}
	for _, opt := range opts {
		opt(a)
	}

	base, err := r.Sbrk(initBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGrowFail, err)
	}
	if base != 0 {
		return nil, fmt.Errorf("alloc: region is not empty, got base offset %d", base)
	}

	data := r.Bytes()
	prologue := word.Size
	writeHeader(data, prologue, word.Size*2, true, true)
	writeFooter(data, footerOffset(prologue, word.Size*2), word.Size*2, true)

	epilogue := prologue + word.Size*2
	writeHeader(data, epilogue, 0, true, true)

	return a, nil
}

// Malloc reserves at least size bytes and returns the offset of the
// payload. size == 0 returns (0, nil). size < 0 returns ErrNeedNegative.
// Returns ErrNoSpace if the region cannot grow to satisfy the request.
func (a *Allocator) Malloc(size int) (int, error) {
	if size < 0 {
		return 0, ErrNeedNegative
	}
	if size == 0 {
		return 0, nil
	}
	need := normalizeSize(size)

	var ptr int
	if h, ok := a.findFreeBlock(need); ok {
		blockSize := decodeSize(headerWord(a.region.Bytes(), h))
		ptr = a.placeInto(h, blockSize, need)
	} else {
		h, err := a.extendHeap(need)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrNoSpace, err)
		}
		ptr = payloadOffset(h)
	}

	a.stats.AllocCalls++
	a.stats.BytesAllocated += need

	if a.debug {
		if err := a.Check(); err != nil {
			return 0, err
		}
	}
	return ptr, nil
}

// Free releases the block at ptr, a payload offset previously returned
// by Malloc, Calloc, or Realloc. Freeing offset 0 is a no-op.
func (a *Allocator) Free(ptr int) error {
	if ptr == 0 {
		return nil
	}
	if ptr < firstBlockOffset || ptr >= a.region.Hi() || ptr%word.Align != 0 {
		return ErrBadRef
	}

	data := a.region.Bytes()
	h := headerOfPayload(ptr)
	hw := headerWord(data, h)
	if !decodeAlloc(hw) {
		return ErrDoubleFree
	}
	size := decodeSize(hw)

	if a.zeroOnFree {
		for i := ptr; i < h+size; i++ {
			data[i] = 0
		}
	}

	a.releaseAndCoalesce(h)
	a.stats.FreeCalls++
	a.stats.BytesFreed += size

	if a.debug {
		return a.Check()
	}
	return nil
}

// Realloc resizes the block at ptr to size bytes, preserving the
// contents up to the smaller of the old and new sizes. ptr == 0 behaves
// like Malloc; size <= 0 frees ptr and returns (0, nil).
func (a *Allocator) Realloc(ptr, size int) (int, error) {
	if ptr == 0 {
		return a.Malloc(size)
	}
	if size <= 0 {
		if err := a.Free(ptr); err != nil {
			return 0, err
		}
		return 0, nil
	}

	data := a.region.Bytes()
	oldHeader := headerOfPayload(ptr)
	oldBlockSize := decodeSize(headerWord(data, oldHeader))
	oldPayloadSize := oldBlockSize - word.Size

	need := normalizeSize(size)
	if need <= oldBlockSize {
		return ptr, nil
	}

	newPtr, err := a.Malloc(size)
	if err != nil {
		return 0, err
	}

	data = a.region.Bytes()
	n := oldPayloadSize
	if size < n {
		n = size
	}
	copy(data[newPtr:newPtr+n], data[ptr:ptr+n])

	if err := a.Free(ptr); err != nil {
		return 0, err
	}
	return newPtr, nil
}

// Calloc reserves space for nmemb elements of size bytes each, zeroed,
// or returns ErrOverflow if nmemb*size would overflow an int.
func (a *Allocator) Calloc(nmemb, size int) (int, error) {
	if nmemb < 0 || size < 0 {
		return 0, ErrNeedNegative
	}
	if nmemb == 0 || size == 0 {
		return 0, nil
	}
	if nmemb > math.MaxInt/size {
		return 0, ErrOverflow
	}
	total := nmemb * size

	ptr, err := a.Malloc(total)
	if err != nil {
		return 0, err
	}

	data := a.region.Bytes()
	for i := ptr; i < ptr+total; i++ {
		data[i] = 0
	}
	return ptr, nil
}
