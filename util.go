package osmem

import "unsafe"

// zero writes n zero bytes starting at p. Used by Zalloc to guarantee
// the zero-fill contract over raw, untyped memory.
func zero(p unsafe.Pointer, n uintptr) {
	if n == 0 {
		return
	}
	b := unsafe.Slice((*byte)(p), n)
	for i := range b {
		b[i] = 0
	}
}

// copyBytes copies n bytes from src to dst. Used by Resize's relocate
// path to preserve the overlapping prefix of a moved allocation.
func copyBytes(dst, src unsafe.Pointer, n uintptr) {
	if n == 0 {
		return
	}
	d := unsafe.Slice((*byte)(dst), n)
	s := unsafe.Slice((*byte)(src), n)
	copy(d, s)
}
