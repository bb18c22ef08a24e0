// Package scanfile maps a single file read-only, classifies it, and drives
// the byte scanner (simd) and line emitter (emit) across its bytes,
// accumulating matches into a private per-file output buffer under the
// limits in Options (§4.3). Scan never retries and never aborts a caller's
// walk: any I/O failure yields a zero buffer and a non-nil error that the
// dispatcher treats as "skip this file, continue."
package scanfile

import (
	"bytes"
	"io"
	"os"

	"github.com/coregx/grepcore/emit"
	"github.com/coregx/grepcore/simd"
)

// Options configures a single-file scan. It is built once per run from the
// shared search.Config and passed by value to every worker; it carries no
// mutable state of its own (the Formatter it references is itself stateless
// across files — see emit.Formatter).
type Options struct {
	Query               []byte
	Fold                bool
	MaxCount            int // 0 means unlimited
	FilesWithMatches    bool
	FilesWithoutMatch   bool
	Count               bool
	OnlyMatching        bool
	WithLineNumber      bool
	ProcessBinaryAsText bool
	MaxSize             int64 // 0 means unlimited
	Formatter           *emit.Formatter
}

// Stats summarizes one file's scan for search.Result accounting.
type Stats struct {
	Matched         bool
	MatchCount      int
	SkippedTooLarge bool
	SkippedBinary   bool
}

// Scan processes a single file per §4.3's sequence: map, classify
// (binary/too-large), drive the scanner/emitter, and return the assembled
// per-file output buffer. The mapping is released before Scan returns in
// every case, so no byte slice it hands out escapes the call.
func Scan(path string, opts Options) ([]byte, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, Stats{}, err
	}
	size := info.Size()
	if opts.MaxSize > 0 && size > opts.MaxSize {
		return nil, Stats{SkippedTooLarge: true}, nil
	}
	if size < int64(len(opts.Query)) {
		return nil, Stats{}, nil
	}

	data, unmap, err := mmap(f, size)
	if err != nil || data == nil {
		data, err = io.ReadAll(f)
		if err != nil {
			return nil, Stats{}, err
		}
		unmap = noopUnmap
	}
	defer unmap()

	sv := newSearchView(data, opts)

	if idx := bytes.IndexByte(data, 0); idx >= 0 && !opts.ProcessBinaryAsText {
		out, stats, err := scanBinary(path, data, sv, opts)
		stats.SkippedBinary = !stats.Matched
		return out, stats, err
	}

	return scanText(path, data, sv, opts)
}

func noopUnmap() error { return nil }

// searchView holds the bytes a scan actually matches against, which may
// differ from the displayed data when case folding is active (see
// newSearchView). matchOffset results found in haystack/query apply
// unchanged to the original data, since folding never changes length.
type searchView struct {
	haystack []byte
	query    []byte
	fold     bool
}

// newSearchView decides how to search data for opts.Query. When folding is
// requested and data is entirely ASCII, the whole buffer and query are
// lowercased once up front (simd.IsASCII, simd.FoldASCII) and matched with
// the plain byte-exact Memmem, the same "lowercase once, then compare
// byte-exact" technique readerGrep.Find's ignoreCase path uses — cheaper
// than folding on every single candidate comparison. If data contains
// non-ASCII bytes, FoldASCII's per-byte fold.go.FoldByte has nothing to
// gain over checking each candidate as it's found, so the existing
// MemmemFold path runs unmodified instead of copying the whole buffer for
// no benefit.
func newSearchView(data []byte, opts Options) searchView {
	if !opts.Fold || !simd.IsASCII(data) {
		return searchView{haystack: data, query: opts.Query, fold: opts.Fold}
	}

	folded := make([]byte, len(data))
	simd.FoldASCII(folded, data)
	foldedQuery := make([]byte, len(opts.Query))
	simd.FoldASCII(foldedQuery, opts.Query)
	return searchView{haystack: folded, query: foldedQuery, fold: false}
}

func find(haystack, needle []byte, fold bool) int {
	if fold {
		return simd.MemmemFold(haystack, needle)
	}
	return simd.Memmem(haystack, needle)
}

// scanBinary implements §4.3's binary-file short circuit: find the first
// match (if any), emit the single "Binary file ... matches" record (or its
// -l/-L equivalent), and stop — unlike scanText it never emits per-line
// records, since a binary file's "lines" are not meaningful.
func scanBinary(path string, data []byte, sv searchView, opts Options) ([]byte, Stats, error) {
	idx := find(sv.haystack, sv.query, sv.fold)
	if idx < 0 {
		var buf bytes.Buffer
		if opts.FilesWithoutMatch {
			emit.Filename(&buf, path)
		}
		return buf.Bytes(), Stats{}, nil
	}

	var buf bytes.Buffer
	switch {
	case opts.FilesWithMatches:
		emit.Filename(&buf, path)
	case opts.FilesWithoutMatch:
		// matched; -L only reports files with zero matches.
	case opts.Count:
		emit.Count(&buf, path, 1)
	default:
		emit.BinaryNotice(&buf, path)
	}
	return buf.Bytes(), Stats{Matched: true, MatchCount: 1}, nil
}

// scanText implements §4.3 step 3 for a non-binary file: repeatedly find
// the query, recover line bounds and number, format a record, then resume
// scanning after the newline following the match (at most one match record
// per line, per §3's "Match cursor" definition), until end of haystack,
// --max-count, or a files-with-matches short circuit.
func scanText(path string, data []byte, sv searchView, opts Options) ([]byte, Stats, error) {
	var buf bytes.Buffer
	var cursor emit.Cursor

	matchCount := 0
	headerWritten := false
	pos := 0
	limit := len(sv.haystack) - len(sv.query)

	for pos <= limit {
		idx := find(sv.haystack[pos:], sv.query, sv.fold)
		if idx < 0 {
			break
		}
		matchOffset := pos + idx
		lineStart, lineEnd := emit.LineBounds(data, matchOffset)
		lineNumber := cursor.Advance(data, lineStart, lineEnd)
		matchCount++

		if opts.FilesWithMatches {
			var out bytes.Buffer
			emit.Filename(&out, path)
			return out.Bytes(), Stats{Matched: true, MatchCount: matchCount}, nil
		}

		if !opts.Count && !opts.FilesWithoutMatch {
			if !headerWritten {
				opts.Formatter.FileHeader(&buf, path)
				headerWritten = true
			}
			opts.Formatter.MatchLine(&buf, path, lineNumber, opts.WithLineNumber, data,
				lineStart, lineEnd, matchOffset, matchOffset+len(opts.Query), opts.OnlyMatching)
		}

		stop := opts.MaxCount > 0 && matchCount >= opts.MaxCount
		if stop || lineEnd >= len(data) {
			break
		}
		pos = lineEnd + 1
	}

	stats := Stats{Matched: matchCount > 0, MatchCount: matchCount}

	switch {
	case opts.FilesWithoutMatch:
		if matchCount == 0 {
			emit.Filename(&buf, path)
		}
	case opts.Count:
		if matchCount > 0 {
			emit.Count(&buf, path, matchCount)
		}
	}

	return buf.Bytes(), stats, nil
}
