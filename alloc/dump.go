package alloc

import (
	"fmt"
	"io"

	"github.com/gopherheap/heaparena/internal/word"
)

// DumpHeap writes a line per physical block, in address order, from the
// first real block to the epilogue.
func (a *Allocator) DumpHeap(w io.Writer) error {
	data := a.region.Bytes()
	epilogue := len(data) - word.Size

	h := firstBlockOffset
	for h < epilogue {
		hw := headerWord(data, h)
		size := decodeSize(hw)
		state := "alloc"
		if !decodeAlloc(hw) {
			state = "free"
		}
		if _, err := fmt.Fprintf(w, "%6d  size=%-6d %-5s class=%d prevAlloc=%v\n",
			h, size, state, classIndex(size), decodePrevAlloc(hw)); err != nil {
			return err
		}
		h = nextHeaderOffset(h, size)
	}
	_, err := fmt.Fprintf(w, "%6d  epilogue\n", epilogue)
	return err
}

// DumpFreeLists writes the contents of every non-empty size class, in
// list order starting from its head.
func (a *Allocator) DumpFreeLists(w io.Writer) error {
	data := a.region.Bytes()
	for class, head := range a.heads {
		if head == emptyHead {
			continue
		}
		if _, err := fmt.Fprintf(w, "class %2d:", class); err != nil {
			return err
		}
		node := head
		for {
			h := headerOfPayload(node)
			size := decodeSize(headerWord(data, h))
			if _, err := fmt.Fprintf(w, " %d(%d)", h, size); err != nil {
				return err
			}
			node = nodeNext(data, node)
			if node == head {
				break
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
