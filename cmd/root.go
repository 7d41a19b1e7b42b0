package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "sympta",
	Short:        "Symptom lookup with optional voice and translation",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `Sympta matches a free-text symptom description against a curated
advice table and prints the best-matching guidance. Optional collaborators
translate queries and answers or speak the result aloud.`,
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
