// Package emit recovers line boundaries and line numbers from absolute byte
// offsets in a haystack and formats the resulting match records, without
// rescanning the file from the start for every match.
//
// # Line boundary recovery
//
// lineStart is one past the last '\n' at or before the match offset (0 if
// there is none); lineEnd is the offset of the next '\n' at or after the
// match (or len(haystack) if there is none). Both are found with the
// length-1 scanner in the simd package: lineEnd is a forward Memchr,
// lineStart a reverse Memrchr, so locating a line costs O(line length), not
// O(file length).
//
// # Line numbering
//
// A Cursor tracks (trackedNewlineOffset, trackedLineNumber) for a single
// file. On the first match it is seeded by counting newlines in
// [0, lineStart); on every later match it advances by counting newlines in
// (trackedNewlineOffset, lineEnd] (plus one when the line is the last and
// has no trailing newline) rather than rescanning from the top of the
// file, the same incremental approach sourcegraph's readerGrep.Find uses via
// hydrateLineNumbers.
package emit

import "github.com/coregx/grepcore/simd"

// LineBounds returns the [start, end) byte range of the line containing
// offset. end does not include the trailing newline, if any.
func LineBounds(haystack []byte, offset int) (start, end int) {
	if idx := simd.Memrchr(haystack[:offset], '\n'); idx >= 0 {
		start = idx + 1
	} else {
		start = 0
	}

	if idx := simd.Memchr(haystack[offset:], '\n'); idx >= 0 {
		end = offset + idx
	} else {
		end = len(haystack)
	}
	return start, end
}

// Cursor tracks per-file line-number state. It must not be shared across
// files or goroutines: the file processor owns one Cursor per file it scans.
type Cursor struct {
	initialized bool
	newlineOff  int
	lineNumber  int
}

// Advance reports the 1-based line number of the line [lineStart, lineEnd)
// and updates the cursor for the next call. Calls must be made in
// non-decreasing lineStart order within a file.
func (c *Cursor) Advance(haystack []byte, lineStart, lineEnd int) int {
	if !c.initialized {
		c.lineNumber = 1 + countNewlines(haystack[:lineStart])
		c.newlineOff = lineEnd
		c.initialized = true
		return c.lineNumber
	}

	upper := lineEnd + 1
	if upper > len(haystack) {
		upper = len(haystack)
		// The final line has no trailing '\n' of its own to count.
		c.lineNumber++
	}
	c.lineNumber += countNewlines(haystack[c.newlineOff+1 : upper])
	c.newlineOff = lineEnd
	return c.lineNumber
}

func countNewlines(b []byte) int {
	n := 0
	pos := 0
	for {
		idx := simd.Memchr(b[pos:], '\n')
		if idx < 0 {
			return n
		}
		n++
		pos += idx + 1
	}
}
