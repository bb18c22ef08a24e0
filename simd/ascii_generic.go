package simd

import (
	"encoding/binary"
)

// isASCIIGeneric is the gate behind scanfile's fold-once optimization
// (searchView, scanfile.go): newSearchView only folds a whole file buffer
// up front when every byte in it is ASCII, so this runs once per file under
// --ignore-case, not once per candidate match. It checks 8 bytes at a time
// via a SWAR high-bit test (bit 7 set means >= 0x80) rather than looping
// byte by byte; the scan is still linear in the file length, but takes an
// eighth as many loop iterations.
func isASCIIGeneric(data []byte) bool {
	dataLen := len(data)
	if dataLen == 0 {
		return true
	}

	if dataLen < 8 {
		for i := 0; i < dataLen; i++ {
			if data[i] >= 0x80 {
				return false
			}
		}
		return true
	}

	const hi8 = uint64(0x8080808080808080)

	idx := 0
	for idx+8 <= dataLen {
		chunk := binary.LittleEndian.Uint64(data[idx:])
		if chunk&hi8 != 0 {
			return false
		}
		idx += 8
	}

	for idx < dataLen {
		if data[idx] >= 0x80 {
			return false
		}
		idx++
	}

	return true
}

// CountNonASCII returns the number of non-ASCII bytes in data.
func CountNonASCII(data []byte) int {
	count := 0
	for _, b := range data {
		if b >= 0x80 {
			count++
		}
	}
	return count
}

// FirstNonASCII returns the index of the first non-ASCII byte in data, or
// -1 if data is entirely ASCII.
func FirstNonASCII(data []byte) int {
	for i, b := range data {
		if b >= 0x80 {
			return i
		}
	}
	return -1
}
