package cmd

import (
	"context"
	"fmt"

	"github.com/medkb/sympta-cli/internal/config"
	"github.com/medkb/sympta-cli/internal/match"
	"github.com/medkb/sympta-cli/internal/translate"
)

// defaultSuggestions is how many "did you mean" candidates follow a rejected
// query.
const defaultSuggestions = 3

// answer is the outcome of one query through the full pipeline.
type answer struct {
	Record      *match.Record
	Score       float64
	Text        string   // formatted advice, back-translated when applicable
	Suggestions []string // populated only when no record matched
}

// effectiveConfig loads ~/.sympta/sympta.yaml. When no config exists yet the
// caller may still proceed with built-in defaults by supplying a data path.
func effectiveConfig(flagData string) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		if flagData == "" {
			return nil, fmt.Errorf("cannot load config: %w\nRun 'sympta init' first, or pass --data.", err)
		}
		cfg, err = config.DefaultConfig()
		if err != nil {
			return nil, err
		}
	}
	if flagData != "" {
		cfg.DataPath = flagData
	}
	return cfg, nil
}

// askPipeline runs one query end to end: forward-translate to English, match,
// format, back-translate. Translation failures pass text through silently;
// the match itself never depends on a collaborator being reachable.
func askPipeline(ctx context.Context, tr translate.Translator, records []match.Record, query, lang string, minScore float64) answer {
	english := translate.Best(ctx, tr, query, lang, "en")
	rec, score := match.FindBestMatch(english, records, minScore)

	out := answer{Record: rec, Score: score}
	if rec == nil {
		out.Text = translate.Best(ctx, tr, match.NoMatchMessage, "en", lang)
		out.Suggestions = match.Suggest(english, records, defaultSuggestions)
		return out
	}
	out.Text = translate.Best(ctx, tr, match.FormatRecord(rec), "en", lang)
	return out
}

// wireTranslator builds the configured translator, degrading to a no-op with
// a warning if the provider cannot be wired.
func wireTranslator(cfg *config.Config) translate.Translator {
	tr, err := translate.NewFromConfig(cfg.Translate)
	if err != nil {
		printWarn("translate", fmt.Sprintf("provider unavailable, continuing without translation: %v", err))
		return translate.Noop{}
	}
	return tr
}
