package osmem

import "unsafe"

// acquireHeapBlock selects or creates a HEAP_ALLOCATED block of exactly
// size payload bytes on the heap portion of the registry, following an
// ordered best-fit policy:
//
//  1. coalesce the registry
//  2. search for the smallest FREE block that still fits, ties broken by
//     list order
//  3. split off a trailing FREE remainder if the excess exceeds one
//     header stride
//  4. flip the chosen block to HEAP_ALLOCATED
//  5. failing a match, grow a FREE tail block in place
//  6. failing that, extend the heap with a fresh HEAP_ALLOCATED block
//
// Program-break failures are fatal and are handled inside growHeap;
// acquireHeapBlock never returns on that path, so callers need not
// handle it.
func (a *Allocator) acquireHeapBlock(size uintptr) *header {
	a.reg.coalesceHeapFrees()

	var best *header
	for cur := a.reg.head; cur != nil; cur = cur.next {
		if cur.status != free {
			continue
		}
		if cur.size >= size && (best == nil || cur.size < best.size) {
			best = cur
		}
	}

	if best != nil {
		total := size + headerStride
		if best.size > total {
			remainder := headerAt(uintptr(unsafe.Pointer(best)) + total)
			remainder.status = free
			remainder.size = best.size - total
			a.reg.splice(best, remainder)
			best.size = size
		}
		best.status = heapAllocated
		return best
	}

	last := a.reg.tail()
	if last == nil {
		// Only reachable if a mapping free wiped the registry out from
		// under a still-live heap; the C source dereferences a NULL tail
		// here and crashes. We preserve "this is an unrecoverable state"
		// rather than silently recovering from it.
		die("osmem: heap registry corrupt (empty tail during best-fit)")
	}

	if last.status == free {
		grow := size - last.size
		a.growHeap(grow)
		last.size = size
		last.status = heapAllocated
		return last
	}

	base := a.growHeap(size + headerStride)
	fresh := headerAt(base)
	fresh.size = size
	fresh.status = heapAllocated
	a.reg.splice(last, fresh)
	return fresh
}
