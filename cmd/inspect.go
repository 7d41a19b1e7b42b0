package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/medkb/sympta-cli/internal/dataset"
	"github.com/spf13/cobra"
)

var flagInspectData string

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show the loaded symptom table and data problems",
	Long: `Display every record in the symptom table with its normalized key
phrase, then report data hygiene problems: empty keys, duplicate keys, and
near-duplicate keys that would shadow each other during matching.`,
	Args: cobra.NoArgs,
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&flagInspectData, "data", "", "Path to the symptom CSV (default: data_path from sympta.yaml)")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(_ *cobra.Command, _ []string) error {
	cfg, err := effectiveConfig(flagInspectData)
	if err != nil {
		return err
	}
	records, err := dataset.Load(cfg.DataPath)
	if err != nil {
		return err
	}

	printSection("Dataset")
	fmt.Printf("  %s — %d records\n\n", cfg.DataPath, len(records))

	tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  ROW\tSYMPTOM\tNORMALIZED\tCONDITIONS")
	for i, r := range records {
		fmt.Fprintf(tw, "  %d\t%s\t%s\t%s\n", i, r.Symptom, r.SymptomNorm(), truncate(r.Conditions, 40))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	printSection("Audit")
	problems := dataset.Audit(records)
	if len(problems) == 0 {
		printOK("", "no problems found")
		return nil
	}
	for _, p := range problems {
		printWarn(fmt.Sprintf("row %d", p.Row), p.Detail)
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
