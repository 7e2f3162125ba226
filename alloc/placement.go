package alloc

// minBlockSize is the smallest legal block: header + two link words +
// footer, all 8-byte words, rounded to the 16-byte alignment guarantee.
const minBlockSize = 4 * 8 // 32

// Policy selects the placement engine's search strategy. FirstFit is the
// default; BestOfK trades a little search time for a tighter fit.
type Policy struct {
	bestOfK int // 0 means first-fit
}

// FirstFit returns the first block in the starting class (or above) large
// enough to satisfy the request.
var FirstFit = Policy{}

// BestOfK scans up to k fitting candidates within the search and returns
// the smallest of them, trading a little search time for tighter fit.
func BestOfK(k int) Policy {
	if k < 1 {
		k = 1
	}
	return Policy{bestOfK: k}
}

// normalizeSize computes n' = max(32, align16(n + word)): one word is
// reserved for the header, and the result is floored at the minimum
// block size.
func normalizeSize(n int) int {
	need := roundUp16(n + 8)
	if need < minBlockSize {
		need = minBlockSize
	}
	return need
}

func roundUp16(n int) int {
	const mask = 15
	return (n + mask) &^ mask
}

// findFreeBlock searches the free-list registry for a block of at least
// need bytes, starting at classIndex(need) and walking classes upward.
// On success it removes the winning block from its list and returns its
// header offset; the caller owns it from that point.
func (a *Allocator) findFreeBlock(need int) (h int, ok bool) {
	if a.policy.bestOfK == 0 {
		return a.findFirstFit(need)
	}
	return a.findBestOfK(need, a.policy.bestOfK)
}

func (a *Allocator) findFirstFit(need int) (int, bool) {
	data := a.region.Bytes()
	start := classIndex(need)
	for class := start; class < numClasses; class++ {
		head := a.heads[class]
		if head == emptyHead {
			continue
		}
		node := head
		for {
			h := headerOfPayload(node)
			size := decodeSize(headerWord(data, h))
			next := nodeNext(data, node)
			if size >= need {
				a.flRemove(h, size)
				return h, true
			}
			node = next
			if node == head {
				break
			}
		}
	}
	return 0, false
}

func (a *Allocator) findBestOfK(need, k int) (int, bool) {
	data := a.region.Bytes()
	start := classIndex(need)
	for class := start; class < numClasses; class++ {
		head := a.heads[class]
		if head == emptyHead {
			continue
		}
		bestH, bestSize, found, seen := 0, 0, false, 0
		node := head
		for {
			h := headerOfPayload(node)
			size := decodeSize(headerWord(data, h))
			next := nodeNext(data, node)
			if size >= need {
				if !found || size < bestSize {
					bestH, bestSize, found = h, size, true
				}
				seen++
				if seen >= k {
					break
				}
			}
			node = next
			if node == head {
				break
			}
		}
		if found {
			a.flRemove(bestH, bestSize)
			return bestH, true
		}
	}
	return 0, false
}

// placeInto splits or consumes the block at header offset h (of size
// blockSize) to satisfy a request of need bytes, marking it allocated and
// returning its payload offset. The successor's prevAlloc bit is kept
// correct in both branches.
func (a *Allocator) placeInto(h, blockSize, need int) int {
	data := a.region.Bytes()
	prevAlloc := decodePrevAlloc(headerWord(data, h))
	remainder := blockSize - need

	if remainder >= minBlockSize {
		a.stats.SplitCount++

		writeHeader(data, h, need, prevAlloc, true)

		tail := h + need
		writeHeader(data, tail, remainder, true, false)
		writeFooter(data, footerOffset(tail, remainder), remainder, false)
		a.flAdd(tail, remainder)
		a.logger.Debug("block split", "header", h, "taken", need, "remainder", remainder)
	} else {
		writeHeader(data, h, blockSize, prevAlloc, true)
		succ := nextHeaderOffset(h, blockSize)
		writeRawWord(data, succ, setPrevAlloc(headerWord(data, succ)))
	}

	return payloadOffset(h)
}
