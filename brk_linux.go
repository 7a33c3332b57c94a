//go:build linux

package osmem

import "golang.org/x/sys/unix"

// sbrk emulates the classic libc sbrk(2) on top of the raw brk(2) syscall:
// it reads the current break, requests the break be moved forward by
// delta, and returns the break's previous value (the base of the newly
// available region) on success. brk(2) has no dedicated failure sentinel
// of its own — on failure the kernel simply leaves the break unchanged —
// so success is detected by checking the break actually moved as
// requested.
func sbrk(delta uintptr) (uintptr, error) {
	cur, _, errno := unix.Syscall(unix.SYS_BRK, 0, 0, 0)
	if errno != 0 {
		return 0, errno
	}

	if delta == 0 {
		return cur, nil
	}

	want := cur + delta
	got, _, errno := unix.Syscall(unix.SYS_BRK, want, 0, 0)
	if errno != 0 {
		return 0, errno
	}
	if got != want {
		return 0, unix.ENOMEM
	}
	return cur, nil
}
