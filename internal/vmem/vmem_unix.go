//go:build unix

package vmem

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Reserve maps n bytes of zeroed anonymous memory. Reservation and commit
// happen in this single call; there is no incremental commit afterwards.
func Reserve(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("vmem: negative reservation size %d", n)
	}
	if n == 0 {
		return []byte{}, nil
	}
	buf, err := unix.Mmap(-1, 0, n,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("vmem: reserve %d bytes: %w", n, err)
	}
	return buf, nil
}

// Release unmaps memory previously returned by Reserve.
func Release(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	err := unix.Munmap(buf)
	if errors.Is(err, unix.EINVAL) {
		// Treat double-release as no-op for callers.
		return nil
	}
	return err
}
