//go:build darwin || dragonfly || freebsd || linux || openbsd || solaris || netbsd

package osmem

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// mmapAnonRaw obtains an anonymous, private, read-write mapping of size
// bytes and returns its base address.
func mmapAnonRaw(size uintptr) (uintptr, error) {
	b, err := unix.Mmap(-1, 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return 0, err
	}
	return uintptr(unsafe.Pointer(&b[0])), nil
}

// munmapRaw releases the size bytes mapped at base.
func munmapRaw(base, size uintptr) error {
	b := unsafe.Slice((*byte)(unsafe.Pointer(base)), size)
	return unix.Munmap(b)
}
