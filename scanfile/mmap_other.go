//go:build !unix

package scanfile

import "os"

// mmap is unavailable on non-unix platforms; Scan always falls back to its
// buffered io.ReadAll path there.
func mmap(f *os.File, size int64) ([]byte, func() error, error) {
	return nil, nil, errMmapUnsupported
}
