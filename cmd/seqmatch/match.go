package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/seqmatch/pkg/seqmatch"
	"github.com/randalmurphal/seqmatch/pkg/seqmatch/charclass"
	"github.com/randalmurphal/seqmatch/pkg/seqmatch/patternstore"
)

var matchCmd = &cobra.Command{
	Use:   "match [pattern] [file...]",
	Short: "Match input lines against a pattern",
	Long: `Reads lines from the given files (or stdin) and prints the lines the
pattern accepts in full. With --name, the pattern is loaded from the
store instead of taken from the command line.

Exits 0 if at least one line matched, 1 if none did, 2 on error.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		matched, err := runMatch(cmd, args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "seqmatch: %v\n", err)
			os.Exit(2)
		}
		if !matched {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	matchCmd.Flags().StringP("name", "n", "", "Use a stored pattern by name")
	matchCmd.Flags().BoolP("invert", "v", false, "Print lines that do not match")
	matchCmd.Flags().BoolP("quiet", "q", false, "Suppress output, report via exit status only")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) (bool, error) {
	name, _ := cmd.Flags().GetString("name")
	invert, _ := cmd.Flags().GetBool("invert")
	quiet, _ := cmd.Flags().GetBool("quiet")

	pattern, files, err := resolvePattern(cmd, name, args)
	if err != nil {
		return false, err
	}

	p, err := charclass.Parse(pattern)
	if err != nil {
		return false, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	automaton := p.Compile()

	// Per-line match logging only under --verbose; grep-like output stays
	// clean otherwise.
	var opts []seqmatch.Option
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		opts = append(opts, seqmatch.WithLogger(commandLogger(cmd)))
	}

	if len(files) == 0 {
		return matchLines(cmd, automaton, os.Stdin, invert, quiet, opts)
	}

	anyMatched := false
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			return anyMatched, fmt.Errorf("open %s: %w", path, err)
		}
		matched, err := matchLines(cmd, automaton, f, invert, quiet, opts)
		f.Close()
		if err != nil {
			return anyMatched, err
		}
		anyMatched = anyMatched || matched
	}
	return anyMatched, nil
}

// resolvePattern decides where the pattern comes from. With --name the
// pattern is loaded from the store and every positional arg is a file;
// otherwise the first arg is the pattern.
func resolvePattern(cmd *cobra.Command, name string, args []string) (string, []string, error) {
	if name != "" {
		store, err := openStore(cmd)
		if err != nil {
			return "", nil, err
		}
		defer store.Close()
		pattern, err := store.Load(name)
		if err != nil {
			return "", nil, fmt.Errorf("load pattern %q: %w", name, err)
		}
		return pattern, args, nil
	}
	if len(args) == 0 {
		return "", nil, fmt.Errorf("a pattern argument or --name is required")
	}
	return args[0], args[1:], nil
}

func matchLines(cmd *cobra.Command, a *seqmatch.Automaton[rune], r io.Reader, invert, quiet bool, opts []seqmatch.Option) (bool, error) {
	scanner := bufio.NewScanner(r)
	anyMatched := false
	for scanner.Scan() {
		line := scanner.Text()
		matched := a.Match(cmd.Context(), []rune(line), opts...)
		if matched != invert {
			anyMatched = true
			if quiet {
				return true, nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
	}
	if err := scanner.Err(); err != nil {
		return anyMatched, fmt.Errorf("read input: %w", err)
	}
	return anyMatched, nil
}

func openStore(cmd *cobra.Command) (patternstore.Store, error) {
	path, _ := cmd.Flags().GetString("store")
	store, err := patternstore.NewSQLiteStore(path)
	if err != nil {
		return nil, fmt.Errorf("open pattern store: %w", err)
	}
	return store, nil
}
