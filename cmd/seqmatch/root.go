package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "seqmatch",
	Short: "Seqmatch matches whole lines against character patterns",
	Long: `Seqmatch compiles pattern text into nondeterministic finite automata
and matches input lines against them. A line matches only when the
whole line is accepted.

Pattern syntax: literals, (), |, *, +, ?, and the classes \a (alpha),
\d (digit), \s (whitespace).`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("store", "patterns.db", "Path to the pattern store database")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
}

// commandLogger builds a stderr slog logger honoring --verbose.
func commandLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
