//go:build unix

package scanfile

import (
	"os"

	"golang.org/x/sys/unix"
)

// mmap memory-maps f read-only, per §9's "memory-mapped read-only file as a
// byte range" design note: the mapping owns the bytes, the returned slice
// borrows from it, and the caller must invoke the returned release func
// before the mapping may be discarded. A zero-length file is never mapped
// (unix.Mmap rejects a zero length); Scan falls back to its buffered read
// path for that case.
func mmap(f *os.File, size int64) ([]byte, func() error, error) {
	if size == 0 {
		return nil, nil, errEmptyFile
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, err
	}
	return data, func() error { return unix.Munmap(data) }, nil
}
