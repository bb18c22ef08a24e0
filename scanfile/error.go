package scanfile

import "errors"

// Sentinel errors for conditions that never carry dynamic detail: plain
// package-level errors.New values rather than a custom type.
var (
	// errEmptyFile signals that a zero-length file was not mapped; Scan
	// treats this the same as any other mmap-unavailable condition and
	// falls back to io.ReadAll.
	errEmptyFile = errors.New("scanfile: cannot mmap empty file")

	// errMmapUnsupported signals that the current platform has no mmap
	// path at all.
	errMmapUnsupported = errors.New("scanfile: mmap unsupported on this platform")
)
