package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldAccents decomposes and strips combining marks so that accented input
// ("migraña", "fièvre") reduces to its ASCII skeleton before matching.
var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes free text for matching: accents folded, lower-cased,
// every rune outside [a-z0-9] replaced by a space, whitespace collapsed and
// trimmed. Total and idempotent: the output alphabet is [a-z0-9 ] with single
// internal spaces, which the function maps to itself.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	if folded, _, err := transform.String(foldAccents, text); err == nil {
		text = folded
	}
	text = strings.ToLower(text)
	text = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return ' '
	}, text)
	return strings.Join(strings.Fields(text), " ")
}

// tokenSet returns the set of whitespace-separated words in a normalized
// string. Duplicates collapse; order is irrelevant.
func tokenSet(s string) map[string]struct{} {
	fields := strings.Fields(s)
	out := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		out[f] = struct{}{}
	}
	return out
}
