package alloc

// Release & coalesce: given the header of a newly-freed block, examines
// both physical neighbors and merges with whichever are also free before
// reinserting into the free-list registry. Four cases, by neighbor state.
//
// The removed-then-inserted discipline (remove a coalescing neighbor from
// its old class, only then insert the merged block into its new class) is
// required because coalescing can change which size class the result
// belongs to.
func (a *Allocator) releaseAndCoalesce(h int) {
	data := a.region.Bytes()
	size := decodeSize(headerWord(data, h))
	prevFree := !decodePrevAlloc(headerWord(data, h))
	nextH := nextHeaderOffset(h, size)
	nextFree := !decodeAlloc(headerWord(data, nextH))

	switch {
	case !prevFree && !nextFree:
		// Both neighbors allocated: mark free, keep prevAlloc, clear the
		// successor's prevAlloc bit, and insert.
		writeHeader(data, h, size, true, false)
		writeFooter(data, footerOffset(h, size), size, false)
		writeRawWord(data, nextH, clearPrevAlloc(headerWord(data, nextH)))
		a.flAdd(h, size)

	case prevFree && !nextFree:
		a.stats.CoalesceBackward++
		prevH := prevHeaderOffset(data, prevFooterOffset(h))
		prevSize := decodeSize(headerWord(data, prevH))
		a.flRemove(prevH, prevSize)

		merged := prevSize + size
		prevPrevAlloc := decodePrevAlloc(headerWord(data, prevH))
		writeHeader(data, prevH, merged, prevPrevAlloc, false)
		writeFooter(data, footerOffset(h, size), merged, false)
		writeRawWord(data, nextH, clearPrevAlloc(headerWord(data, nextH)))
		a.flAdd(prevH, merged)
		a.logger.Debug("coalesced backward", "header", prevH, "merged", merged)

	case !prevFree && nextFree:
		a.stats.CoalesceForward++
		nextSize := decodeSize(headerWord(data, nextH))
		a.flRemove(nextH, nextSize)

		merged := size + nextSize
		writeHeader(data, h, merged, true, false)
		writeFooter(data, footerOffset(nextH, nextSize), merged, false)
		a.flAdd(h, merged)
		a.logger.Debug("coalesced forward", "header", h, "merged", merged)

	default: // both neighbors free
		a.stats.CoalesceBackward++
		a.stats.CoalesceForward++
		prevH := prevHeaderOffset(data, prevFooterOffset(h))
		prevSize := decodeSize(headerWord(data, prevH))
		nextSize := decodeSize(headerWord(data, nextH))
		a.flRemove(prevH, prevSize)
		a.flRemove(nextH, nextSize)

		merged := prevSize + size + nextSize
		prevPrevAlloc := decodePrevAlloc(headerWord(data, prevH))
		writeHeader(data, prevH, merged, prevPrevAlloc, false)
		writeFooter(data, footerOffset(nextH, nextSize), merged, false)
		a.flAdd(prevH, merged)
		a.logger.Debug("coalesced both directions", "header", prevH, "merged", merged)
	}
}
