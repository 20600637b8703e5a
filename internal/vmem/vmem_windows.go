//go:build windows

package vmem

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Reserve commits n bytes of zeroed page memory via VirtualAlloc.
func Reserve(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("vmem: negative reservation size %d", n)
	}
	if n == 0 {
		return []byte{}, nil
	}
	addr, err := windows.VirtualAlloc(0, uintptr(n),
		windows.MEM_COMMIT|windows.MEM_RESERVE,
		windows.PAGE_READWRITE)
	if err != nil {
		return nil, fmt.Errorf("vmem: reserve %d bytes: %w", n, err)
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), n), nil
}

// Release decommits and releases memory previously returned by Reserve.
func Release(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	return windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
}
