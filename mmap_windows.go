//go:build windows

package osmem

import (
	"errors"
	"os"

	"golang.org/x/sys/windows"
)

// Windows has no single mmap(2) equivalent: a mapping is created in two
// steps, a file-mapping object backed by the system paging file, then a
// view of it. We keep the handle each view came from so munmapRaw can
// close it again.
var handleMap = map[uintptr]windows.Handle{}

func mmapAnonRaw(size uintptr) (uintptr, error) {
	maxSizeHigh := uint32(uint64(size) >> 32)
	maxSizeLow := uint32(uint64(size) & 0xffffffff)

	h, err := windows.CreateFileMapping(windows.InvalidHandle, nil, windows.PAGE_READWRITE, maxSizeHigh, maxSizeLow, nil)
	if err != nil {
		return 0, os.NewSyscallError("CreateFileMapping", err)
	}

	addr, err := windows.MapViewOfFile(h, windows.FILE_MAP_WRITE, 0, 0, size)
	if err != nil {
		return 0, os.NewSyscallError("MapViewOfFile", err)
	}

	handleMap[addr] = h
	return addr, nil
}

func munmapRaw(base, size uintptr) error {
	_ = size
	if err := windows.UnmapViewOfFile(base); err != nil {
		return err
	}

	h, ok := handleMap[base]
	if !ok {
		return errors.New("osmem: unknown mapping base address")
	}
	delete(handleMap, base)

	if err := windows.CloseHandle(h); err != nil {
		return os.NewSyscallError("CloseHandle", err)
	}
	return nil
}

// Windows has no brk(2) either; the shared reserve-and-bump fallback in
// brk_fallback.go (build tag !linux) covers it, using mmapAnonRaw above
// for its one-time reservation.
