package search

import "github.com/coregx/grepcore/scanfile"

// Result accumulates run-wide accounting beyond raw stdout bytes (expanded
// operation 3): how many files were scanned, how many matched, the total
// match count, and how many were skipped for being too large or binary.
// Tests assert against this directly instead of parsing formatted stdout
// text (§8 properties 3-6).
type Result struct {
	FilesScanned         int
	FilesMatched         int
	TotalMatches         int
	FilesSkippedTooLarge int
	FilesSkippedBinary   int
}

func (r *Result) accumulate(s scanfile.Stats) {
	r.FilesScanned++
	if s.Matched {
		r.FilesMatched++
	}
	r.TotalMatches += s.MatchCount
	if s.SkippedTooLarge {
		r.FilesSkippedTooLarge++
	}
	if s.SkippedBinary {
		r.FilesSkippedBinary++
	}
}

func (r *Result) merge(other Result) {
	r.FilesScanned += other.FilesScanned
	r.FilesMatched += other.FilesMatched
	r.TotalMatches += other.TotalMatches
	r.FilesSkippedTooLarge += other.FilesSkippedTooLarge
	r.FilesSkippedBinary += other.FilesSkippedBinary
}
