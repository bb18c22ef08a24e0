package search

import (
	"github.com/coregx/grepcore/walk"
)

// Config is the Searcher's read-only configuration (§3 "Searcher
// configuration"): built once at startup by DefaultConfig and customized by
// the caller, then shared by reference across every worker. Mirrors the
// teacher's meta.Config / meta.DefaultConfig / Config.Validate shape.
type Config struct {
	// Query is the literal byte sequence to search for. Must be non-empty.
	Query []byte

	// IgnoreCase enables ASCII-only case-insensitive matching (-i).
	IgnoreCase bool

	// PrintLineNumbers prefixes each match record with its 1-based line
	// number (-n).
	PrintLineNumbers bool

	// Count, when set, suppresses match records and prints only the
	// per-file match count (-c).
	Count bool

	// FilesWithMatches prints only the path of files with >=1 match (-l).
	FilesWithMatches bool

	// FilesWithoutMatch prints only the path of files with 0 matches (-L).
	FilesWithoutMatch bool

	// OnlyMatching prints the matched substring instead of the whole
	// line (-o).
	OnlyMatching bool

	// MaxCount stops a file after this many matches; 0 means unlimited
	// (-m N).
	MaxCount int

	// ProcessBinaryAsText disables binary detection short-circuiting (-a).
	ProcessBinaryAsText bool

	// Filter is an fnmatch pattern matched against the whole path
	// (-f GLOB, default "*.*").
	Filter string

	// Include is a whitelist of filename globs (--include, repeatable).
	Include []string

	// Exclude is a blacklist of filename globs (--exclude, repeatable).
	Exclude []string

	// Workers is the fixed worker-pool size; 0 means synchronous,
	// in-thread execution (-j N).
	Workers int

	// MaxFileSize is the size cap above which files are skipped, in
	// bytes. Default 400 KiB.
	MaxFileSize int64

	// TTY selects colorized, path-headered output (§6).
	TTY bool

	// PrunedDirs and SuffixBlacklist override the walker's default
	// pruning rules; both default to the walk package's canonical sets.
	PrunedDirs      map[string]bool
	SuffixBlacklist map[string]bool
}

// DefaultConfig returns a Config with grepcore's documented defaults: a
// 400 KiB size cap, a 4-worker pool, the canonical path filter, and the
// canonical directory/suffix blacklists.
func DefaultConfig() Config {
	return Config{
		Filter:          "*.*",
		Workers:         4,
		MaxFileSize:     400 * 1024,
		PrunedDirs:      walk.DefaultPrunedDirs,
		SuffixBlacklist: walk.DefaultSuffixBlacklist,
	}
}

// Validate checks that c is usable: required fields set, numeric fields
// within range.
func (c Config) Validate() error {
	if len(c.Query) == 0 {
		return &ConfigError{Field: "Query", Message: "must not be empty"}
	}
	if c.Workers < 0 {
		return &ConfigError{Field: "Workers", Message: "must be >= 0"}
	}
	if c.MaxCount < 0 {
		return &ConfigError{Field: "MaxCount", Message: "must be >= 0"}
	}
	if c.MaxFileSize < 0 {
		return &ConfigError{Field: "MaxFileSize", Message: "must be >= 0"}
	}
	if c.FilesWithMatches && c.FilesWithoutMatch {
		return &ConfigError{Field: "FilesWithMatches", Message: "cannot be combined with FilesWithoutMatch"}
	}
	return nil
}
