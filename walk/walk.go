// Package walk performs a pruning-aware, single-producer directory traversal
// and yields candidate file paths to a channel. Only one goroutine ever
// walks the tree (spec: "Exactly one producer (walker, on the main thread)
// and W consumers"); concurrency lives downstream in the dispatcher that
// drains the channel, not in the walk itself.
//
// Grounded in opencoff-go-fio's walk.go for the overall shape (a channel of
// results, an error channel, glob-based exclusion on the basename), adapted
// from its concurrent multi-worker design down to the single-producer model
// this spec calls for.
package walk

import (
	"context"
	"io/fs"
	"path/filepath"
)

// Options controls pruning and file filtering during a walk.
type Options struct {
	// Root is the starting directory or file.
	Root string

	// MinSize is the smallest file size considered (typically the query
	// length: a file shorter than the needle cannot contain it).
	MinSize int64

	// MaxSize is the size cap above which files are skipped silently.
	MaxSize int64

	// Include, if non-empty, requires the basename to match at least one
	// glob pattern.
	Include []string

	// Exclude, if non-empty, rejects any basename matching a pattern.
	Exclude []string

	// Filter is an fnmatch-style pattern matched against the whole path;
	// empty means no path filter.
	Filter string

	// PrunedDirs names directories that are skipped whole, matched
	// case-sensitively against the exact basename.
	PrunedDirs map[string]bool

	// SuffixBlacklist names file suffixes (".o", ".png", ...) and exact
	// filenames (e.g. "Thumbs.db") that are always skipped.
	SuffixBlacklist map[string]bool
}

// Walk traverses opts.Root and sends every candidate file path on the
// returned channel. Both channels are closed when the walk completes.
// Permission errors on a directory skip that subtree silently; they are
// never sent on the error channel, matching §4.4 ("Permission errors skip
// the offending subtree silently").
func Walk(ctx context.Context, opts Options) (<-chan string, <-chan error) {
	out := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errc)

		err := filepath.WalkDir(opts.Root, func(path string, d fs.DirEntry, err error) error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if err != nil {
				// Permission denied or similar: skip this entry/subtree,
				// continue the walk.
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				if path != opts.Root && shouldPruneDir(d.Name(), opts.PrunedDirs) {
					return fs.SkipDir
				}
				return nil
			}

			if acceptFile(path, d, opts) {
				select {
				case out <- path:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})

		if err != nil && err != context.Canceled {
			errc <- err
		}
	}()

	return out, errc
}

func shouldPruneDir(name string, pruned map[string]bool) bool {
	if len(name) > 0 && name[0] == '.' {
		return true
	}
	return pruned[name]
}

// acceptFile applies the file-filtering sequence from §4.4, in order.
func acceptFile(path string, d fs.DirEntry, opts Options) bool {
	name := d.Name()

	// 1. no dotfiles
	if len(name) > 0 && name[0] == '.' {
		return false
	}

	// 2. must have an extension
	ext := filepath.Ext(name)
	if ext == "" {
		return false
	}

	info, err := d.Info()
	if err != nil {
		return false
	}

	// 3. file size >= query length
	if info.Size() < opts.MinSize {
		return false
	}

	// 4. file size <= cap
	if opts.MaxSize > 0 && info.Size() > opts.MaxSize {
		return false
	}

	// 5. suffix blacklist
	if opts.SuffixBlacklist != nil {
		if opts.SuffixBlacklist[name] || opts.SuffixBlacklist[ext] {
			return false
		}
	}

	// 6. include whitelist
	if len(opts.Include) > 0 {
		matched := false
		for _, pat := range opts.Include {
			if MatchGlob(name, pat) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	// 7. exclude blacklist
	for _, pat := range opts.Exclude {
		if MatchGlob(name, pat) {
			return false
		}
	}

	// 8. optional whole-path fnmatch filter
	if opts.Filter != "" && !MatchGlob(path, opts.Filter) {
		return false
	}

	return true
}
