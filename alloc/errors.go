package alloc

import "errors"

var (
	// ErrNoSpace indicates that no free block large enough was found and
	// the heap provider could not grow the region to satisfy the request.
	ErrNoSpace = errors.New("alloc: no space: heap provider could not satisfy request")

	// ErrBadRef indicates a pointer that is not a block the allocator
	// currently considers allocated (out of bounds, misaligned, or 0
	// outside a context where 0 is the null pointer).
	ErrBadRef = errors.New("alloc: bad reference")

	// ErrGrowFail indicates the heap provider rejected a grow request.
	ErrGrowFail = errors.New("alloc: grow failed")

	// ErrNotFree indicates an attempt to treat an allocated block as free.
	ErrNotFree = errors.New("alloc: expected free block")

	// ErrNeedNegative indicates a negative size was passed to Malloc,
	// Realloc, or Calloc.
	ErrNeedNegative = errors.New("alloc: requested size must be >= 0")

	// ErrOverflow indicates Calloc's nmemb*size product overflowed.
	ErrOverflow = errors.New("alloc: calloc size overflow")

	// ErrDoubleFree is returned by Free when the pointer refers to a
	// block already marked free.
	ErrDoubleFree = errors.New("alloc: double free")
)
