package simd

// Memrchr returns the index of the last instance of needle in haystack, or
// -1 if needle is not present. The line emitter uses this to walk backward
// from a match offset to the newline that starts its line (spec: "line
// boundary recovery... for lineStart a reverse search is used — this is
// O(line length), not O(file)"), so it is always called on a short slice
// and does not need its own wide-lane tier.
func Memrchr(haystack []byte, needle byte) int {
	for i := len(haystack) - 1; i >= 0; i-- {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}
