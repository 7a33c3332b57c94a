package osmem

import "unsafe"

// status tags a block's role in the registry.
type status uint8

const (
	free status = iota
	heapAllocated
	mappingBacked
)

func (s status) String() string {
	switch s {
	case free:
		return "FREE"
	case heapAllocated:
		return "HEAP_ALLOCATED"
	case mappingBacked:
		return "MAPPING_BACKED"
	default:
		return "UNKNOWN"
	}
}

// header is the fixed-layout block record that immediately precedes every
// payload the allocator ever hands out. size counts payload bytes only; it
// never includes headerStride.
type header struct {
	size   uintptr
	status status
	prev   *header
	next   *header
}

const (
	alignment = 8
	// mmapThreshold is the default cutoff between the heap and mapping
	// paths, measured against aligned(size)+aligned(headerStride).
	mmapThreshold = 128 * 1024
	// heapPrelude is the size of the one-shot initial heap reservation.
	heapPrelude = mmapThreshold
)

// headerStride is the 8-byte-aligned size of header, i.e. the arithmetic
// offset between a client pointer and its header.
var headerStride = align8(unsafe.Sizeof(header{}))

// align8 rounds n up to the next multiple of 8.
func align8(n uintptr) uintptr {
	return (n + alignment - 1) &^ (alignment - 1)
}

// headerOf recovers the header immediately preceding a client payload
// pointer. This is the one narrow place the client-pointer/header
// correspondence crosses into raw pointer arithmetic.
func headerOf(p unsafe.Pointer) *header {
	return (*header)(unsafe.Pointer(uintptr(p) - headerStride))
}

// payload returns the client-visible address of h's payload, i.e. the
// first byte after the header.
func (h *header) payload() unsafe.Pointer {
	return unsafe.Pointer(uintptr(unsafe.Pointer(h)) + headerStride)
}

// end returns the address one past h's payload — for a heap block this is
// where the next physically adjacent header must begin.
func (h *header) end() uintptr {
	return uintptr(unsafe.Pointer(h)) + headerStride + h.size
}

// headerAt reinterprets the memory at addr as a *header, for initializing
// freshly obtained OS memory in place.
func headerAt(addr uintptr) *header {
	return (*header)(unsafe.Pointer(addr))
}
