package match

import (
	"sort"

	"github.com/antzucaro/matchr"
	"github.com/sahilm/fuzzy"
)

// suggestMinSimilarity is the Jaro-Winkler score a phonetic candidate must
// reach to be offered as a suggestion.
const suggestMinSimilarity = 0.72

// Suggest returns up to limit key phrases that plausibly resemble the query,
// for "did you mean" hints after a rejected match. Two passes: subsequence
// fuzzy matching on the normalized key phrases, then phonetic candidates
// (Double Metaphone code overlap) ranked by Jaro-Winkler similarity.
//
// Advisory only: suggestions never influence FindBestMatch.
func Suggest(query string, records []Record, limit int) []string {
	q := Normalize(query)
	if q == "" || len(records) == 0 || limit <= 0 {
		return nil
	}

	// Distinct normalized keys, earliest record wins.
	var keys []string
	display := make(map[string]string)
	for _, r := range records {
		if r.symptomNorm == "" {
			continue
		}
		if _, seen := display[r.symptomNorm]; seen {
			continue
		}
		display[r.symptomNorm] = r.Symptom
		keys = append(keys, r.symptomNorm)
	}
	if len(keys) == 0 {
		return nil
	}

	var out []string
	seen := make(map[string]struct{})
	add := func(key string) {
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		out = append(out, display[key])
	}

	for _, m := range fuzzy.Find(q, keys) {
		add(m.Str)
	}

	for _, key := range phoneticCandidates(q, keys) {
		add(key)
	}

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// phoneticCandidates returns keys sharing a Double Metaphone code with the
// query, ordered by descending Jaro-Winkler similarity to it.
func phoneticCandidates(q string, keys []string) []string {
	qCodes := metaphoneCodes(q)
	if len(qCodes) == 0 {
		return nil
	}

	type scored struct {
		key   string
		score float64
	}
	var ranked []scored
	for _, key := range keys {
		if !codesOverlap(qCodes, metaphoneCodes(key)) {
			continue
		}
		if s := matchr.JaroWinkler(q, key, false); s >= suggestMinSimilarity {
			ranked = append(ranked, scored{key: key, score: s})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	out := make([]string, len(ranked))
	for i, c := range ranked {
		out[i] = c.key
	}
	return out
}

// metaphoneCodes computes the Double Metaphone codes of every token in a
// normalized string.
func metaphoneCodes(s string) map[string]struct{} {
	out := make(map[string]struct{})
	for tok := range tokenSet(s) {
		primary, secondary := matchr.DoubleMetaphone(tok)
		if primary != "" {
			out[primary] = struct{}{}
		}
		if secondary != "" {
			out[secondary] = struct{}{}
		}
	}
	return out
}

func codesOverlap(a, b map[string]struct{}) bool {
	for code := range a {
		if _, ok := b[code]; ok {
			return true
		}
	}
	return false
}
