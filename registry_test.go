package osmem

import (
	"testing"
	"unsafe"
)

// checkRegistryInvariants walks a's registry and fails t if any of the
// universal structural invariants are violated. requireCoalesced
// additionally asserts that no two adjacent FREE entries survive;
// callers should only set it true right after an operation that runs
// coalesceHeapFrees, since coalescing is otherwise deferred.
func checkRegistryInvariants(t *testing.T, a *Allocator, requireCoalesced bool) {
	t.Helper()

	prevWasFree := false
	for cur := a.reg.head; cur != nil; cur = cur.next {
		switch cur.status {
		case free, heapAllocated, mappingBacked:
		default:
			t.Fatalf("invalid status %v at %p", cur.status, cur)
		}

		if cur.size%alignment != 0 {
			t.Fatalf("size %d at %p is not 8-aligned", cur.size, cur)
		}

		if requireCoalesced && cur.status == free && prevWasFree {
			t.Fatalf("two adjacent FREE blocks survived coalescing at %p", cur)
		}
		prevWasFree = cur.status == free

		if cur.next != nil && cur.next.prev != cur {
			t.Fatalf("broken back-link after %p", cur)
		}

		// Two list-adjacent heap entries must be physically contiguous.
		// Mapping-backed entries are exempt from this check.
		if cur.next != nil && cur.status != mappingBacked && cur.next.status != mappingBacked {
			if cur.end() != uintptr(unsafe.Pointer(cur.next)) {
				t.Fatalf("heap blocks at %p and %p are not physically adjacent", cur, cur.next)
			}
		}
	}
}

// totalFreeBytes sums the FREE payload bytes across the registry.
func totalFreeBytes(a *Allocator) uintptr {
	var n uintptr
	for cur := a.reg.head; cur != nil; cur = cur.next {
		if cur.status == free {
			n += cur.size
		}
	}
	return n
}
