// Command grepcore is the CLI entry point: argument parsing, terminal
// detection, and the mapping from flags to search.Config (§1's explicitly
// out-of-core "thin glue"). The throughput core lives in simd, emit,
// scanfile, walk, and search; this file only wires it to a terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/coregx/grepcore/cliopts"
	"github.com/coregx/grepcore/search"
)

var errLog = func(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// cobra has already printed usage; just set the exit code (§6:
		// "Non-zero only on invalid usage").
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts cliopts.Options

	cmd := &cobra.Command{
		Use:     "grepcore QUERY [PATH...]",
		Short:   "A recursive literal substring search tool",
		Version: "0.1.0",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := args[0]
			paths := args[1:]
			opts.TTY = isatty.IsTerminal(os.Stdout.Fd())

			cfg := opts.ToConfig(query)
			if err := cfg.Validate(); err != nil {
				return err
			}

			searcher, err := search.NewSearcher(cfg, os.Stdout)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			stdinIsTTY := isatty.IsTerminal(os.Stdin.Fd())
			var result search.Result
			if len(paths) == 0 && !stdinIsTTY {
				result, err = searcher.RunStdin(ctx, os.Stdin)
			} else {
				result, err = searcher.Run(ctx, paths)
			}
			if err != nil {
				errLog("grepcore: %v", err)
			}
			_ = result
			return nil
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&opts.IgnoreCase, "ignore-case", "i", false, "ASCII case-insensitive match")
	f.BoolVarP(&opts.LineNumber, "line-number", "n", false, "prefix each match with its line number")
	f.BoolVarP(&opts.Count, "count", "c", false, "print only a count of matching lines per file")
	f.BoolVarP(&opts.FilesWithMatches, "files-with-matches", "l", false, "print only filenames with matches")
	f.BoolVarP(&opts.FilesWithoutMatch, "files-without-match", "L", false, "print only filenames without matches")
	f.BoolVarP(&opts.OnlyMatching, "only-matching", "o", false, "print only the matched substring")
	f.IntVarP(&opts.MaxCount, "max-count", "m", 0, "stop a file after N matches")
	f.BoolVarP(&opts.Text, "text", "a", false, "process binary files as text")
	f.StringVarP(&opts.Filter, "filter", "f", "*.*", "fnmatch filter against the full path")
	f.IntVarP(&opts.Workers, "jobs", "j", 0, "worker count (0 selects the default)")
	f.StringSliceVar(&opts.Include, "include", nil, "whitelist filename glob (repeatable)")
	f.StringSliceVar(&opts.Exclude, "exclude", nil, "blacklist filename glob (repeatable)")
	f.BoolP("recursive", "r", true, "recurse into subdirectories (always on; kept for flag compatibility)")

	// context.Background is overridden per-run by signal.NotifyContext above.
	cmd.SetContext(context.Background())

	return cmd
}
