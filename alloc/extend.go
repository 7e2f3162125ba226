package alloc

import (
	"fmt"

	"github.com/gopherheap/heaparena/internal/word"
)

// extendHeap grows the backing region by exactly need bytes and returns
// the header of a new, already-allocated block of exactly that size. No
// footer is written and the block is not inserted into any free list —
// it is handed straight back to the caller, which already knows exactly
// how much space it asked for.
func (a *Allocator) extendHeap(need int) (int, error) {
	data := a.region.Bytes()
	oldLen := len(data)
	oldEpilogue := oldLen - word.Size
	prevAlloc := decodePrevAlloc(headerWord(data, oldEpilogue))

	if _, err := a.region.Sbrk(need); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrGrowFail, err)
	}
	data = a.region.Bytes()

	newHeader := oldEpilogue
	writeHeader(data, newHeader, need, prevAlloc, true)

	newEpilogue := newHeader + need
	writeHeader(data, newEpilogue, 0, true, true)

	a.stats.GrowCalls++
	a.stats.GrowBytes += need

	a.logger.Debug("heap grown", "bytes", need, "new_len", len(data))

	return newHeader, nil
}
