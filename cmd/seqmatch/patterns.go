package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/seqmatch/pkg/seqmatch/charclass"
	"github.com/randalmurphal/seqmatch/pkg/seqmatch/patternfile"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Manage the pattern store",
}

var patternsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored patterns",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		infos, err := store.List()
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tPATTERN\tUPDATED")
		for _, info := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\n", info.Name, info.Pattern, info.UpdatedAt.Format(time.RFC3339))
		}
		return w.Flush()
	},
}

var patternsAddCmd = &cobra.Command{
	Use:   "add <name> <pattern>",
	Short: "Add or replace a stored pattern",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, pattern := args[0], args[1]

		// Reject patterns that will not compile later.
		if _, err := charclass.Parse(pattern); err != nil {
			return fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}

		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()
		return store.Save(name, pattern)
	},
}

var patternsRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a stored pattern",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()
		return store.Delete(args[0])
	},
}

var patternsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import patterns from a YAML or JSON document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := patternfile.FromFile(args[0])
		if err != nil {
			return err
		}
		// Validate the whole document before touching the store.
		if _, err := doc.Compile(); err != nil {
			return err
		}

		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		for _, def := range doc.Patterns {
			if err := store.Save(def.Name, def.Pattern); err != nil {
				return err
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d patterns\n", len(doc.Patterns))
		return nil
	},
}

func init() {
	patternsCmd.AddCommand(patternsListCmd)
	patternsCmd.AddCommand(patternsAddCmd)
	patternsCmd.AddCommand(patternsRemoveCmd)
	patternsCmd.AddCommand(patternsImportCmd)
	rootCmd.AddCommand(patternsCmd)
}
