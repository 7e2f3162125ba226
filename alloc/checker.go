package alloc

import (
	"fmt"

	"github.com/gopherheap/heaparena/internal/word"
)

// InvariantError reports a specific consistency violation found by Check,
// naming the invariant, a human-readable message, and the byte offset at
// which the violation was observed.
type InvariantError struct {
	Type    string
	Message string
	Offset  int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("alloc: invariant %q violated at offset %d: %s", e.Type, e.Offset, e.Message)
}

// Check walks the heap from the first real block to the epilogue,
// verifying block-level invariants, then walks every free-list class
// verifying registry invariants. It is intended for use under
// WithDebugChecks and in tests, not on the hot allocation path.
func (a *Allocator) Check() error {
	data := a.region.Bytes()
	epilogue := len(data) - word.Size

	h := firstBlockOffset
	prevWasFree := false
	for h < epilogue {
		hw := headerWord(data, h)
		size := decodeSize(hw)
		alloc := decodeAlloc(hw)

		if size < minBlockSize {
			return &InvariantError{"min-size", "block smaller than the minimum block size", h}
		}
		if size%word.Align != 0 {
			return &InvariantError{"alignment", "block size is not 16-byte aligned", h}
		}
		if h+size > epilogue {
			return &InvariantError{"bounds", "block extends past the epilogue", h}
		}

		if !alloc {
			fw := headerWord(data, footerOffset(h, size))
			if decodeSize(fw) != size || decodeAlloc(fw) {
				return &InvariantError{"header-footer", "free block header and footer disagree", h}
			}
			if prevWasFree {
				return &InvariantError{"coalescing", "two free blocks sit next to each other uncoalesced", h}
			}
		}

		wantPrevAlloc := !prevWasFree
		if decodePrevAlloc(hw) != wantPrevAlloc {
			return &InvariantError{"prev-alloc", "prevAlloc bit disagrees with predecessor's actual state", h}
		}

		prevWasFree = !alloc
		h = nextHeaderOffset(h, size)
	}
	if h != epilogue {
		return &InvariantError{"heap-walk", "block walk did not land exactly on the epilogue", h}
	}

	return a.checkFreeLists()
}

func (a *Allocator) checkFreeLists() error {
	data := a.region.Bytes()
	for class, head := range a.heads {
		if head == emptyHead {
			continue
		}
		node := head
		for {
			h := headerOfPayload(node)
			hw := headerWord(data, h)
			if decodeAlloc(hw) {
				return &InvariantError{"free-list", "allocated block present in a free list", h}
			}
			if got := classIndex(decodeSize(hw)); got != class {
				return &InvariantError{"size-class", fmt.Sprintf("block belongs in class %d, found in %d", got, class), h}
			}
			next := nodeNext(data, node)
			if nodePrev(data, next) != node {
				return &InvariantError{"free-list", "list links are not mutually consistent", h}
			}
			node = next
			if node == head {
				break
			}
		}
	}
	return nil
}
