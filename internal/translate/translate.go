// Package translate provides the optional translation collaborator. The
// matcher core never depends on it; hosts wire a Translator in front of and
// behind the match step, and any failure degrades to passing text through
// untranslated.
package translate

import "context"

// Translator converts text between two ISO 639-1 language codes.
type Translator interface {
	Translate(ctx context.Context, text, from, to string) (string, error)
}

// Noop passes text through unchanged.
type Noop struct{}

func (Noop) Translate(_ context.Context, text, _, _ string) (string, error) {
	return text, nil
}

// Best translates text and falls back to the input on any failure: a missing
// translator, identical languages, a transport error, or an empty response
// all yield the original text.
func Best(ctx context.Context, t Translator, text, from, to string) string {
	if t == nil || text == "" || from == to {
		return text
	}
	out, err := t.Translate(ctx, text, from, to)
	if err != nil || out == "" {
		return text
	}
	return out
}
