package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/seqmatch/pkg/seqmatch/charclass"
	"github.com/randalmurphal/seqmatch/pkg/seqmatch/patternfile"
)

var checkCmd = &cobra.Command{
	Use:   "check <pattern|file>",
	Short: "Check pattern syntax without matching",
	Long: `Parses and compiles the argument. A .yaml, .yml, or .json argument is
treated as a pattern document and every definition in it is checked;
anything else is checked as a single pattern.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runCheck(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "seqmatch: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("OK")
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(arg string) error {
	if isDocumentPath(arg) {
		doc, err := patternfile.FromFile(arg)
		if err != nil {
			return err
		}
		_, err = doc.Compile()
		return err
	}

	p, err := charclass.Parse(arg)
	if err != nil {
		return err
	}
	a := p.Compile()
	fmt.Printf("pattern compiles to %d states\n", a.StateCount())
	return nil
}

func isDocumentPath(arg string) bool {
	for _, ext := range []string{".yaml", ".yml", ".json"} {
		if len(arg) > len(ext) && arg[len(arg)-len(ext):] == ext {
			return true
		}
	}
	return false
}
