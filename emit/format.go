package emit

import (
	"bytes"
	"fmt"

	"github.com/fatih/color"

	"github.com/coregx/grepcore/simd"
)

// Formatter renders match records into a per-file output buffer. A
// Formatter is stateless across files: callers construct one per Searcher
// (not per file) and reuse it, since its only state is the TTY/fold mode,
// which is fixed for the run.
type Formatter struct {
	tty        bool
	fold       bool
	query      []byte
	pathColor  *color.Color
	matchColor *color.Color
}

// NewFormatter builds a Formatter. tty selects the colorized, path-header
// output shape (§6); fold selects ASCII case-insensitive highlight search.
func NewFormatter(tty, fold bool) *Formatter {
	path := color.New(color.FgCyan, color.Bold)
	match := color.New(color.FgRed, color.Bold)
	if tty {
		path.EnableColor()
		match.EnableColor()
	} else {
		path.DisableColor()
		match.DisableColor()
	}
	return &Formatter{tty: tty, fold: fold, pathColor: path, matchColor: match}
}

// FileHeader writes the once-per-file path banner used in TTY mode. It is a
// no-op in non-TTY mode, where the path is instead prefixed on every line.
func (f *Formatter) FileHeader(buf *bytes.Buffer, path string) {
	if f.tty {
		f.pathColor.Fprintln(buf, path)
	}
}

// MatchLine writes one match record for the line [lineStart, lineEnd) of
// haystack, given a match already located at haystack[matchStart:matchEnd].
func (f *Formatter) MatchLine(buf *bytes.Buffer, path string, lineNumber int, withLineNumber bool, haystack []byte, lineStart, lineEnd, matchStart, matchEnd int, onlyMatching bool) {
	line := haystack[lineStart:lineEnd]

	if onlyMatching {
		f.writePrefix(buf, path, lineNumber, withLineNumber)
		buf.Write(haystack[matchStart:matchEnd])
		buf.WriteByte('\n')
		return
	}

	f.writePrefix(buf, path, lineNumber, withLineNumber)
	f.writeHighlighted(buf, line)
	buf.WriteByte('\n')
}

func (f *Formatter) writePrefix(buf *bytes.Buffer, path string, lineNumber int, withLineNumber bool) {
	if !f.tty {
		buf.WriteString(path)
		buf.WriteByte(':')
	}
	if withLineNumber {
		fmt.Fprintf(buf, "%d:", lineNumber)
	}
}

// HighlightLine writes line to buf exactly as writeHighlighted does. It is
// exported for the stdin pipeline (C6), which has no path or line number to
// prefix and so calls straight into the highlighting logic instead of going
// through MatchLine.
func (f *Formatter) HighlightLine(buf *bytes.Buffer, line []byte) {
	f.writeHighlighted(buf, line)
}

// writeHighlighted writes line to buf, colorizing every occurrence of the
// query substring when in TTY mode. Non-TTY mode writes the line unchanged.
// The query itself is not available here; the Formatter is told it via
// SetQuery before a run begins.
func (f *Formatter) writeHighlighted(buf *bytes.Buffer, line []byte) {
	if !f.tty || len(f.query) == 0 {
		buf.Write(line)
		return
	}

	pos := 0
	for pos < len(line) {
		var idx int
		if f.fold {
			idx = simd.MemmemFold(line[pos:], f.query)
		} else {
			idx = simd.Memmem(line[pos:], f.query)
		}
		if idx < 0 {
			buf.Write(line[pos:])
			return
		}
		start := pos + idx
		end := start + len(f.query)
		buf.Write(line[pos:start])
		f.matchColor.Fprint(buf, string(line[start:end]))
		pos = end
	}
}

// SetQuery records the query bytes used for within-line highlighting. It
// must be called once before any MatchLine call; the Searcher calls it at
// construction time since the query is fixed for the whole run.
func (f *Formatter) SetQuery(query []byte) {
	f.query = query
}

// BinaryNotice writes the single-line record emitted for a binary file
// (§4.3: "Binary file <path> matches"). This line is never colorized.
func BinaryNotice(buf *bytes.Buffer, path string) {
	fmt.Fprintf(buf, "Binary file %s matches\n", path)
}

// Count writes the per-file match count record used by --count.
func Count(buf *bytes.Buffer, path string, count int) {
	fmt.Fprintf(buf, "%s:%d\n", path, count)
}

// Filename writes a bare filename record, used by --files-with-matches and
// --files-without-match.
func Filename(buf *bytes.Buffer, path string) {
	fmt.Fprintln(buf, path)
}
