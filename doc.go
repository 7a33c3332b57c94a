// Package osmem implements a user-space dynamic memory allocator that
// replaces the platform allocator for a single-threaded process.
//
// It services four operations — Allocate, Free, Zalloc and Resize — by
// managing raw address space obtained directly from the operating system:
// small and medium requests are carved out of a heap grown by repeatedly
// advancing the program break, while requests above a size threshold get
// their own anonymous mapping. Block metadata lives as an intrusive,
// doubly linked list of fixed-layout headers, one immediately preceding
// each payload; best-fit search, splitting and coalescing keep
// fragmentation down on the heap side.
//
// osmem assumes exclusive single-threaded use. There is no locking, no
// per-size-class free list, no slab cache, and heap memory is never
// returned to the kernel — only mapping-backed blocks are. None of this
// is meant to outperform or replace Go's own garbage-collected heap for
// ordinary Go values; it exists to hand out raw, unsafe.Pointer-addressed
// memory the way a C allocator would, to code that specifically needs
// that.
package osmem

import (
	"fmt"
	"os"
)

// trace gates one-line diagnostics written to stderr from each entry
// point. Off by default; flip it during development, not in committed
// code paths that run in production.
const trace = false

func traceOp(format string, args ...any) {
	if !trace {
		return
	}
	fmt.Fprintf(os.Stderr, format, args...)
}
