// Package cliopts maps parsed command-line flags onto a search.Config. It
// is deliberately thin — the out-of-core "glue" §1 calls a competent
// engineer's afternoon of work — but it still needs a home, since cmd's
// flag struct and search.Config have different shapes (flags are CLI
// vocabulary; Config is the engine's vocabulary).
package cliopts

import (
	"github.com/coregx/grepcore/search"
	"github.com/coregx/grepcore/walk"
)

// Options mirrors the flag table in §6, one field per recognized flag.
type Options struct {
	IgnoreCase        bool
	LineNumber        bool
	Count             bool
	FilesWithMatches  bool
	FilesWithoutMatch bool
	OnlyMatching      bool
	MaxCount          int
	Text              bool
	Filter            string
	Workers           int
	Include           []string
	Exclude           []string
	TTY               bool
}

// ToConfig builds a search.Config for query, layered over
// search.DefaultConfig so unset Options fields fall back to the documented
// defaults (a 400 KiB size cap, a 4-worker pool, and the canonical
// directory/suffix blacklists).
func (o Options) ToConfig(query string) search.Config {
	cfg := search.DefaultConfig()
	cfg.Query = []byte(query)
	cfg.IgnoreCase = o.IgnoreCase
	cfg.PrintLineNumbers = o.LineNumber
	cfg.Count = o.Count
	cfg.FilesWithMatches = o.FilesWithMatches
	cfg.FilesWithoutMatch = o.FilesWithoutMatch
	cfg.OnlyMatching = o.OnlyMatching
	cfg.MaxCount = o.MaxCount
	cfg.ProcessBinaryAsText = o.Text
	cfg.TTY = o.TTY
	cfg.Include = o.Include
	cfg.Exclude = o.Exclude

	if o.Filter != "" {
		cfg.Filter = o.Filter
	}
	if o.Workers > 0 {
		cfg.Workers = o.Workers
	}
	cfg.PrunedDirs = walk.DefaultPrunedDirs
	cfg.SuffixBlacklist = walk.DefaultSuffixBlacklist
	return cfg
}
