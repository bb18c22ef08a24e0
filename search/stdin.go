package search

import (
	"bufio"
	"bytes"
	"context"
	"io"

	"github.com/coregx/grepcore/simd"
)

const maxStdinLine = 1 << 20

// RunStdin implements C6: when stdin is not a TTY, each line is treated as
// an independent haystack and run through the scanner/highlighter
// synchronously, with no line number, no filename, and no mmap (§4.6). This
// path never touches the walker or the worker pool.
func (s *Searcher) RunStdin(ctx context.Context, r io.Reader) (Result, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxStdinLine)

	var result Result
	var buf bytes.Buffer

	for scanner.Scan() {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		line := scanner.Bytes()
		if len(line) == 0 || len(line) < len(s.cfg.Query) {
			continue
		}

		var idx int
		if s.cfg.IgnoreCase {
			idx = simd.MemmemFold(line, s.cfg.Query)
		} else {
			idx = simd.Memmem(line, s.cfg.Query)
		}
		if idx < 0 {
			continue
		}

		result.TotalMatches++

		buf.Reset()
		if s.cfg.OnlyMatching {
			buf.Write(line[idx : idx+len(s.cfg.Query)])
		} else {
			s.formatter.HighlightLine(&buf, line)
		}
		buf.WriteByte('\n')
		s.flush(buf.Bytes())
	}

	if err := scanner.Err(); err != nil {
		return result, err
	}
	return result, nil
}
