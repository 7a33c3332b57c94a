package osmem

import "unsafe"

// Allocator holds all process-wide state for one independent allocator
// instance: the block registry, the first-heap-allocation latch, and the
// effective mapping threshold. Its zero value is ready to use — there is
// no constructor, mirroring the process-wide globals of the allocator
// this package is modeled on.
//
// Allocator is not safe for concurrent use; the contract is strictly
// single-threaded, and no field here is synchronized.
type Allocator struct {
	reg                registry
	firstHeapAlloc     bool
	effectiveThreshold uintptr
}

// Default is the package-wide allocator used by the Allocate, Free,
// Zalloc and Resize functions below. Most programs only ever need this
// one instance; Allocator is exported separately for callers who want an
// isolated registry (e.g. tests).
var Default Allocator

// Allocate reserves size bytes and returns a pointer to them, or nil.
// Allocate(0) returns nil. The allocator makes no guarantee about the
// contents of the returned memory.
func Allocate(size int) unsafe.Pointer { return Default.Allocate(size) }

// Free releases memory previously returned by Allocate, Zalloc or
// Resize. Free(nil) is a no-op, as is freeing an already-free block.
func Free(p unsafe.Pointer) { Default.Free(p) }

// Zalloc reserves space for count objects of unit bytes each, zeroed,
// and returns a pointer to them, or nil if either factor is zero.
func Zalloc(count, unit int) unsafe.Pointer { return Default.Zalloc(count, unit) }

// Resize changes the size of the allocation at p to newSize bytes,
// preserving the overlapping prefix, and returns the (possibly
// relocated) pointer, or nil.
func Resize(p unsafe.Pointer, newSize int) unsafe.Pointer { return Default.Resize(p, newSize) }

func (a *Allocator) threshold() uintptr {
	if a.effectiveThreshold == 0 {
		return mmapThreshold
	}
	return a.effectiveThreshold
}

// Allocate is the method form of the package-level Allocate, scoped to
// this Allocator's own registry.
func (a *Allocator) Allocate(requested int) unsafe.Pointer {
	if requested <= 0 {
		return nil
	}

	s := align8(uintptr(requested))
	total := s + align8(headerStride)

	if total > a.threshold() {
		base := mmapAnon(total)
		h := headerAt(base)
		h.size = s
		h.status = mappingBacked
		a.reg.appendMapping(h)
		traceOp("Allocate(%#x) [mmap] -> %p\n", requested, h.payload())
		return h.payload()
	}

	if !a.firstHeapAlloc {
		a.firstHeapAlloc = true
		base := a.growHeap(heapPrelude)
		prelude := headerAt(base)
		prelude.status = free
		prelude.size = heapPrelude - headerStride
		prelude.prev = nil
		prelude.next = nil
		a.reg.head = prelude
	}

	h := a.acquireHeapBlock(s)
	traceOp("Allocate(%#x) [heap] -> %p\n", requested, h.payload())
	return h.payload()
}

// Free is the method form of the package-level Free.
func (a *Allocator) Free(p unsafe.Pointer) {
	if p == nil {
		return
	}

	h := headerOf(p)
	if h.status == free {
		return
	}

	switch h.status {
	case heapAllocated:
		h.status = free
	case mappingBacked:
		total := h.size + headerStride
		munmapAt(uintptr(unsafe.Pointer(h)), total)
		// Matches the source's registry reset on mapping free:
		// deliberately preserved, not "fixed", because the two block
		// kinds never need to interoperate through this field in the
		// original's own usage pattern. See DESIGN.md.
		a.reg.head = nil
	}
	traceOp("Free(%p)\n", p)
}

// Zalloc is the method form of the package-level Zalloc.
func (a *Allocator) Zalloc(count, unit int) unsafe.Pointer {
	if count == 0 || unit == 0 {
		return nil
	}

	saved := a.effectiveThreshold
	a.effectiveThreshold = kernelPageSize()
	p := a.Allocate(count * unit)
	a.effectiveThreshold = saved

	if p != nil {
		zero(p, uintptr(count*unit))
	}
	traceOp("Zalloc(%d, %d) -> %p\n", count, unit, p)
	return p
}

// Resize is the method form of the package-level Resize.
func (a *Allocator) Resize(p unsafe.Pointer, newRequested int) (np unsafe.Pointer) {
	if trace {
		defer func() { traceOp("Resize(%p, %#x) -> %p\n", p, newRequested, np) }()
	}
	if p == nil {
		return a.Allocate(newRequested)
	}
	if newRequested <= 0 {
		a.Free(p)
		return nil
	}

	h := headerOf(p)
	if h.status == free {
		return nil
	}

	old := h.size
	s := align8(uintptr(newRequested))
	total := s + align8(headerStride)

	if h.status == mappingBacked || total >= mmapThreshold {
		return a.relocate(p, old, newRequested)
	}

	if old == s {
		return p
	}

	if old > s {
		if old > total {
			remainder := headerAt(uintptr(unsafe.Pointer(h)) + total)
			remainder.status = free
			remainder.size = old - total
			a.reg.splice(h, remainder)
			h.size = s
			return p
		}
		// Excess too small to host its own header: fall through and
		// relocate instead of splitting.
	}

	return a.relocate(p, old, newRequested)
}

// relocate implements the "allocate fresh, copy the overlap, free the
// old block" path shared by several Resize cases.
func (a *Allocator) relocate(p unsafe.Pointer, oldSize uintptr, newRequested int) unsafe.Pointer {
	np := a.Allocate(newRequested)
	if np == nil {
		return nil
	}
	n := uintptr(newRequested)
	if oldSize < n {
		n = oldSize
	}
	copyBytes(np, p, n)
	a.Free(p)
	return np
}
