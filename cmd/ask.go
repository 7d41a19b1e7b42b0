package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/medkb/sympta-cli/internal/config"
	"github.com/medkb/sympta-cli/internal/dataset"
	"github.com/medkb/sympta-cli/internal/speech"
	"github.com/spf13/cobra"
)

var (
	flagAskData     string
	flagAskLang     string
	flagAskMinScore float64
	flagAskJSON     bool
	flagAskScore    bool
	flagAskSpeak    string
	flagAskAudio    string
)

var askCmd = &cobra.Command{
	Use:   "ask <symptom description>",
	Short: "Look up advice for a symptom description",
	Long: `Match a free-text symptom description against the advice table and
print the best-matching record.

With --lang, the query is translated to English before matching and the
answer translated back (requires the translation provider in sympta.yaml).
With --speak, the answer is synthesized to an mp3 file as well. With
--audio, a recorded audio file is transcribed and used as the query.

Example:
  sympta ask I have a headache
  sympta ask --lang hi --speak advice.mp3 mujhe bukhar hai
  sympta ask --audio query.mp3`,
	Args: cobra.ArbitraryArgs,
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVar(&flagAskData, "data", "", "Path to the symptom CSV (default: data_path from sympta.yaml)")
	askCmd.Flags().StringVar(&flagAskLang, "lang", "", "Query language code (default: language from sympta.yaml)")
	askCmd.Flags().Float64Var(&flagAskMinScore, "min-score", 0, "Minimum confidence score to accept a match")
	askCmd.Flags().BoolVar(&flagAskJSON, "json", false, "Print the result as JSON")
	askCmd.Flags().BoolVar(&flagAskScore, "score", false, "Print the match score")
	askCmd.Flags().StringVar(&flagAskSpeak, "speak", "", "Write the spoken answer to this mp3 file")
	askCmd.Flags().StringVar(&flagAskAudio, "audio", "", "Transcribe this audio file and use the text as the query")
	rootCmd.AddCommand(askCmd)
}

// askJSON is the --json output shape.
type askJSON struct {
	Matched      bool     `json:"matched"`
	Score        float64  `json:"score"`
	Symptom      string   `json:"symptom,omitempty"`
	Conditions   string   `json:"conditions,omitempty"`
	Medicines    string   `json:"medicines,omitempty"`
	Eat          string   `json:"eat,omitempty"`
	Avoid        string   `json:"avoid,omitempty"`
	DoctorAdvice string   `json:"doctor_advice,omitempty"`
	Advice       string   `json:"advice"`
	Suggestions  []string `json:"suggestions,omitempty"`
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, err := effectiveConfig(flagAskData)
	if err != nil {
		return err
	}

	lang := cfg.Language
	if flagAskLang != "" {
		lang = flagAskLang
	}
	minScore := cfg.MinScore
	if cmd.Flags().Changed("min-score") {
		minScore = flagAskMinScore
	}

	records, err := dataset.Load(cfg.DataPath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	query := strings.Join(args, " ")
	if flagAskAudio != "" {
		query, err = transcribeQuery(ctx, cfg, flagAskAudio, lang)
		if err != nil {
			return err
		}
		printInfo("", "heard: "+query)
	}
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("describe a symptom, or pass --audio with a recording")
	}
	ans := askPipeline(ctx, wireTranslator(cfg), records, query, lang, minScore)

	if flagAskJSON {
		out := askJSON{
			Matched:     ans.Record != nil,
			Score:       ans.Score,
			Advice:      ans.Text,
			Suggestions: ans.Suggestions,
		}
		if ans.Record != nil {
			out.Symptom = ans.Record.Symptom
			out.Conditions = ans.Record.Conditions
			out.Medicines = ans.Record.Medicines
			out.Eat = ans.Record.Eat
			out.Avoid = ans.Record.Avoid
			out.DoctorAdvice = ans.Record.DoctorAdvice
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Println(ans.Text)
	if flagAskScore {
		printInfo("", fmt.Sprintf("score: %.3f", ans.Score))
	}
	if ans.Record == nil && len(ans.Suggestions) > 0 {
		printInfo("", "did you mean: "+strings.Join(ans.Suggestions, ", "))
	}

	if flagAskSpeak != "" {
		speakAnswer(ctx, cfg, ans.Text, lang, flagAskSpeak)
	}
	return nil
}

// transcribeQuery turns a recorded audio file into query text. Unlike speech
// output, a failure here is fatal: without a query there is nothing to match.
func transcribeQuery(ctx context.Context, cfg *config.Config, audioPath, lang string) (string, error) {
	rec, err := speech.NewRecognizerFromConfig(cfg.Speech)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", fmt.Errorf("--audio requires the speech provider to be enabled in sympta.yaml")
	}
	return rec.Transcribe(ctx, audioPath, lang)
}

// speakAnswer synthesizes the answer to outPath. Speech is optional: every
// failure is reported as a warning and the command still succeeds.
func speakAnswer(ctx context.Context, cfg *config.Config, text, lang, outPath string) {
	synth, err := speech.NewSynthFromConfig(cfg.Speech)
	if err != nil {
		printWarn("speech", fmt.Sprintf("provider unavailable, skipping audio: %v", err))
		return
	}
	if synth == nil {
		printSkip("speech", "provider disabled in sympta.yaml, skipping audio")
		return
	}
	audio, err := synth.Synthesize(ctx, text, lang)
	if err != nil {
		printWarn("speech", fmt.Sprintf("synthesis failed, skipping audio: %v", err))
		return
	}
	if err := speech.WriteAudio(outPath, audio); err != nil {
		printWarn("speech", fmt.Sprintf("cannot save audio: %v", err))
		return
	}
	printOK("speech", "spoken answer written to "+outPath)
}
