// Package search implements the Searcher: a fixed-size worker pool (C5)
// that drives the walker (C4) and file processor (C3) across a tree, plus
// the synchronous stdin line filter (C6). Output discipline follows §4.5's
// "per-file buffered flush under a global output mutex" design: each
// worker assembles its file's output locally (scanfile.Scan already does
// this) and the flush only holds stdout's mutex while copying the finished
// buffer out, so lock contention is bounded by the worker count.
package search

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/coregx/grepcore/emit"
	"github.com/coregx/grepcore/scanfile"
	"github.com/coregx/grepcore/walk"
)

// Searcher runs a search against one or more roots (file-tree mode) or
// against stdin (line-filter mode). It is safe for concurrent use by its
// own worker goroutines; cfg is read-only after NewSearcher and the output
// mutex is the only shared mutable state workers touch directly.
type Searcher struct {
	cfg       Config
	formatter *emit.Formatter
	out       io.Writer

	mu         sync.Mutex
	pipeBroken bool
}

// NewSearcher validates cfg and builds a Searcher that writes match output
// to out (typically os.Stdout).
func NewSearcher(cfg Config, out io.Writer) (*Searcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	formatter := emit.NewFormatter(cfg.TTY, cfg.IgnoreCase)
	formatter.SetQuery(cfg.Query)
	return &Searcher{cfg: cfg, formatter: formatter, out: out}, nil
}

// Run drives roots through the walker and dispatcher. A root that is
// itself a regular file is scanned directly (C3 without the walker, per
// §2's "runs C3 directly on a single file" control-flow case). ctx
// cancellation (e.g. from signal.NotifyContext on SIGINT) is cooperative:
// checked between files, never mid-scan, so no per-file buffer is ever
// partially flushed (expanded operation 4).
func (s *Searcher) Run(ctx context.Context, roots []string) (Result, error) {
	if len(roots) == 0 {
		roots = []string{"."}
	}

	var result Result
	for _, root := range roots {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		info, err := os.Stat(root)
		if err != nil {
			return result, &walk.RootError{Path: root, Err: err}
		}

		var r Result
		if info.IsDir() {
			r, err = s.runTree(ctx, root)
		} else {
			r, err = s.runFile(root)
		}
		result.merge(r)
		if err != nil {
			return result, err
		}
	}
	return result, nil
}

func (s *Searcher) runFile(path string) (Result, error) {
	var result Result
	out, stats, err := scanfile.Scan(path, s.fileOptions())
	if err != nil {
		// Per §7, a per-file failure is not fatal; it simply contributes
		// no output.
		return result, nil
	}
	result.accumulate(stats)
	s.flush(out)
	return result, nil
}

func (s *Searcher) runTree(ctx context.Context, root string) (Result, error) {
	var result Result

	opts := walk.Options{
		Root:            root,
		MinSize:         int64(len(s.cfg.Query)),
		MaxSize:         s.cfg.MaxFileSize,
		Include:         s.cfg.Include,
		Exclude:         s.cfg.Exclude,
		Filter:          s.cfg.Filter,
		PrunedDirs:      s.cfg.PrunedDirs,
		SuffixBlacklist: s.cfg.SuffixBlacklist,
	}
	paths, walkErrc := walk.Walk(ctx, opts)

	workers := s.cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var mu sync.Mutex
	fileOpts := s.fileOptions()

	for path := range paths {
		path := path
		if gctx.Err() != nil {
			continue
		}
		g.Go(func() error {
			out, stats, err := scanfile.Scan(path, fileOpts)
			if err != nil {
				// Skip this file, continue the walk (§7).
				return nil
			}

			mu.Lock()
			result.accumulate(stats)
			mu.Unlock()

			if len(out) > 0 {
				s.flush(out)
			}
			return nil
		})
	}

	groupErr := g.Wait()

	var walkErr error
	select {
	case walkErr = <-walkErrc:
	default:
	}

	if groupErr != nil {
		return result, groupErr
	}
	return result, walkErr
}

func (s *Searcher) fileOptions() scanfile.Options {
	return scanfile.Options{
		Query:               s.cfg.Query,
		Fold:                s.cfg.IgnoreCase,
		MaxCount:            s.cfg.MaxCount,
		FilesWithMatches:    s.cfg.FilesWithMatches,
		FilesWithoutMatch:   s.cfg.FilesWithoutMatch,
		Count:               s.cfg.Count,
		OnlyMatching:        s.cfg.OnlyMatching,
		WithLineNumber:      s.cfg.PrintLineNumbers,
		ProcessBinaryAsText: s.cfg.ProcessBinaryAsText,
		MaxSize:             s.cfg.MaxFileSize,
		Formatter:           s.formatter,
	}
}

// flush writes a completed per-file buffer to stdout under the output
// mutex (§4.5). A broken pipe (§7) permanently disables further writes
// instead of propagating an error up through every remaining worker.
func (s *Searcher) flush(out []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pipeBroken {
		return
	}
	if _, err := s.out.Write(out); err != nil {
		if errors.Is(err, syscall.EPIPE) {
			s.pipeBroken = true
			return
		}
	}
}
