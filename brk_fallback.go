//go:build !linux

package osmem

import "errors"

// brk(2) is Linux-specific; it isn't exposed on modern Darwin and doesn't
// exist on Windows. On these platforms we emulate a monotonic,
// never-shrinking program break as a bump pointer over one large
// anonymous reservation obtained up front, the same reserve-then-bump
// shape used elsewhere in the retrieval pack for growable address-space
// arenas (e.g. address-space/arena allocators that reserve a big range
// and commit into it incrementally). This keeps the break's contract —
// monotonically non-decreasing, fatal on exhaustion — without claiming a
// kernel facility this platform doesn't have.
const fallbackArenaSize = 1 << 30 // 1 GiB of reserved address space

var fallbackArena struct {
	base uintptr
	used uintptr
}

var errFallbackArenaExhausted = errors.New("osmem: emulated program break exhausted")

func sbrk(delta uintptr) (uintptr, error) {
	if fallbackArena.base == 0 {
		base, err := mmapAnonRaw(fallbackArenaSize)
		if err != nil {
			return 0, err
		}
		fallbackArena.base = base
	}

	if fallbackArena.used+delta > fallbackArenaSize {
		return 0, errFallbackArenaExhausted
	}

	prev := fallbackArena.base + fallbackArena.used
	fallbackArena.used += delta
	return prev, nil
}
