package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/medkb/sympta-cli/internal/dataset"
	"github.com/spf13/cobra"
)

var (
	flagChatData string
	flagChatLang string
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive symptom lookup loop",
	Long: `Read symptom descriptions from stdin, one per line, and print the
best-matching advice for each. Type "exit" or "quit" to leave.

When stdin is not a terminal, a single demo query ("fever") is answered
instead.`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVar(&flagChatData, "data", "", "Path to the symptom CSV (default: data_path from sympta.yaml)")
	chatCmd.Flags().StringVar(&flagChatLang, "lang", "", "Query language code (default: language from sympta.yaml)")
	rootCmd.AddCommand(chatCmd)
}

func runChat(_ *cobra.Command, _ []string) error {
	cfg, err := effectiveConfig(flagChatData)
	if err != nil {
		return err
	}
	lang := cfg.Language
	if flagChatLang != "" {
		lang = flagChatLang
	}

	records, err := dataset.Load(cfg.DataPath)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no symptom data loaded from %s", cfg.DataPath)
	}

	tr := wireTranslator(cfg)
	answerOne := func(query string) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		ans := askPipeline(ctx, tr, records, query, lang, cfg.MinScore)
		fmt.Println(ans.Text)
		if ans.Record == nil && len(ans.Suggestions) > 0 {
			printInfo("", "did you mean: "+strings.Join(ans.Suggestions, ", "))
		}
		fmt.Println()
	}

	if fi, err := os.Stdin.Stat(); err == nil && fi.Mode()&os.ModeCharDevice == 0 {
		printInfo("", "interactive input not available, demo query: fever")
		answerOne("fever")
		return nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Describe your symptom: ")
		if !scanner.Scan() {
			fmt.Println("\nExiting.")
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if low := strings.ToLower(text); low == "exit" || low == "quit" {
			break
		}
		answerOne(text)
	}
	return scanner.Err()
}
