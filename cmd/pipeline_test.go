package cmd

import (
	"context"
	"strings"
	"testing"

	"github.com/medkb/sympta-cli/internal/match"
	"github.com/medkb/sympta-cli/internal/translate"
)

func pipelineRecords() []match.Record {
	return []match.Record{
		match.NewRecord("headache", "Tension headache", "Paracetamol", "Water", "Caffeine", "If lasts more than 2 days"),
		match.NewRecord("stomach pain", "Indigestion", "Antacids", "Rice", "Spicy food", "If severe"),
		match.NewRecord("fever", "Viral infection", "Paracetamol", "Coconut water", "Fried food", "If >102F"),
	}
}

func TestAskPipelineMatch(t *testing.T) {
	ans := askPipeline(context.Background(), translate.Noop{}, pipelineRecords(), "I have a headache", "en", match.DefaultMinScore)
	if ans.Record == nil || ans.Record.Symptom != "headache" {
		t.Fatalf("got %+v, want headache", ans.Record)
	}
	if !strings.Contains(ans.Text, "Symptom: headache") {
		t.Errorf("answer text = %q", ans.Text)
	}
	if ans.Suggestions != nil {
		t.Errorf("matched answers carry no suggestions, got %v", ans.Suggestions)
	}
}

func TestAskPipelineNoMatch(t *testing.T) {
	ans := askPipeline(context.Background(), translate.Noop{}, pipelineRecords(), "broken arm", "en", match.DefaultMinScore)
	if ans.Record != nil {
		t.Fatalf("got %+v, want no match", ans.Record)
	}
	if ans.Text != match.NoMatchMessage {
		t.Errorf("answer text = %q, want %q", ans.Text, match.NoMatchMessage)
	}
}

func TestAskPipelineSuggestsOnMisspelling(t *testing.T) {
	ans := askPipeline(context.Background(), translate.Noop{}, pipelineRecords(), "hedache", "en", 0.9)
	if ans.Record != nil {
		t.Fatalf("expected rejection at min score 0.9")
	}
	found := false
	for _, s := range ans.Suggestions {
		if s == "headache" {
			found = true
		}
	}
	if !found {
		t.Errorf("suggestions = %v, want headache included", ans.Suggestions)
	}
}

// A translator that fails must never break the match pipeline.
type brokenTranslator struct{}

func (brokenTranslator) Translate(context.Context, string, string, string) (string, error) {
	return "", context.DeadlineExceeded
}

func TestAskPipelineTranslatorFailureDegrades(t *testing.T) {
	ans := askPipeline(context.Background(), brokenTranslator{}, pipelineRecords(), "I have a fever", "hi", match.DefaultMinScore)
	if ans.Record == nil || ans.Record.Symptom != "fever" {
		t.Fatalf("match must proceed on untranslated text, got %+v", ans.Record)
	}
}
