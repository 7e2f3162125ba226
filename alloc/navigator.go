package alloc

import "github.com/gopherheap/heaparena/internal/word"

// Block navigator: given a header offset and the data it lives in, locates
// the footer, the next header, the previous footer/header, the payload,
// and maps a payload offset back to its header.
//
// All derived offsets are plain int arithmetic over a single backing
// slice — there is no pointer type here, only offsets into a single
// heap base + length representation.

// headerWord reads the raw header/footer word at offset h.
func headerWord(data []byte, h int) uint64 { return word.Read(data, h) }

func writeHeader(data []byte, h int, size int, prevAlloc, alloc bool) {
	word.Put(data, h, encodeHeader(size, prevAlloc, alloc))
}

func writeFooter(data []byte, f int, size int, alloc bool) {
	word.Put(data, f, encodeFooter(size, alloc))
}

// writeRawWord writes an already-encoded header/footer word verbatim,
// used when only a single bit (prevAlloc) is being flipped in place.
func writeRawWord(data []byte, off int, w uint64) {
	word.Put(data, off, w)
}

// footerOffset returns the offset of the footer of a block of size size
// starting at header offset h. Only valid when the block is free.
func footerOffset(h, size int) int { return h + size - word.Size }

// nextHeaderOffset returns the header offset of the block physically
// following a block of size size starting at h.
func nextHeaderOffset(h, size int) int { return h + size }

// payloadOffset returns the start of the payload for a block header at h.
func payloadOffset(h int) int { return h + word.Size }

// headerOfPayload maps a payload offset back to its block's header
// offset. The free-list node address is identified with the payload
// address, so this is also how a list node maps back to its header.
func headerOfPayload(p int) int { return p - word.Size }

// prevFooterOffset returns the offset of the footer belonging to the
// block physically preceding the block at header offset h. Valid only
// when that header's prevAlloc bit is clear (the predecessor is free);
// the prologue guarantees a valid word exists here even when h is the
// first real block, so the read is always safe — it is the *trust* in
// the value that prevAlloc gates, not the memory access itself.
func prevFooterOffset(h int) int { return h - word.Size }

// prevHeaderOffset returns the header offset of the block whose footer
// sits at prevFooterOffset(h), derived from the size recorded in that
// footer.
func prevHeaderOffset(data []byte, prevFooter int) int {
	prevSize := decodeSize(headerWord(data, prevFooter))
	return prevFooter - prevSize + word.Size
}
