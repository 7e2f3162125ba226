package alloc

import "github.com/gopherheap/heaparena/internal/word"

// Free-list registry: 16 classes, each a circular doubly-linked list
// threaded through the payload of its free blocks. A class's head is any
// member of its list, or emptyHead when the class holds nothing.
//
// The node address is the block's payload address (navigator.go's
// payloadOffset): the first word of the payload holds next, the second
// holds prev. No list node is ever allocated separately from its block.

const emptyHead = -1

func nodeNext(data []byte, node int) int { return int(word.Read(data, node)) }
func nodePrev(data []byte, node int) int { return int(word.Read(data, node+word.Size)) }

func setNodeNext(data []byte, node, next int) { word.Put(data, node, uint64(next)) }
func setNodePrev(data []byte, node, prev int) { word.Put(data, node+word.Size, uint64(prev)) }

// flAdd inserts the block at header offset h (of the given size) into the
// free list for its size class, in O(1). The header must already reflect
// the block's final size and free state — flAdd derives the class from
// size, not from re-reading the header.
func (a *Allocator) flAdd(h, size int) {
	data := a.region.Bytes()
	node := payloadOffset(h)
	class := classIndex(size)
	head := a.heads[class]

	if head == emptyHead {
		setNodeNext(data, node, node)
		setNodePrev(data, node, node)
		a.heads[class] = node
		return
	}

	last := nodePrev(data, head)
	setNodeNext(data, node, head)
	setNodePrev(data, node, last)
	setNodeNext(data, last, node)
	setNodePrev(data, head, node)
	a.heads[class] = node
}

// flRemove unlinks the block at header offset h (of the given size) from
// its class's list, in O(1). Callers must pass the class the block
// belongs to under its *current* size, derived before any size mutation.
func (a *Allocator) flRemove(h, size int) {
	data := a.region.Bytes()
	node := payloadOffset(h)
	class := classIndex(size)

	next := nodeNext(data, node)
	prev := nodePrev(data, node)

	if next == node {
		a.heads[class] = emptyHead
		return
	}
	if a.heads[class] == node {
		a.heads[class] = next
	}
	setNodeNext(data, prev, next)
	setNodePrev(data, next, prev)
}
