package dataset

import (
	"fmt"

	"github.com/antzucaro/matchr"
	"github.com/medkb/sympta-cli/internal/match"
)

// nearDuplicateSimilarity is the Jaro-Winkler score above which two distinct
// key phrases are flagged as likely duplicates.
const nearDuplicateSimilarity = 0.92

// Problem describes a data hygiene issue found in the loaded table.
type Problem struct {
	Row    int // 0-based record index
	Detail string
}

// Audit checks the table for records the matcher cannot use or that would
// shadow each other: empty key phrases, exact duplicate normalized keys, and
// near-duplicate keys (small edit distance or high Jaro-Winkler similarity).
func Audit(records []match.Record) []Problem {
	var out []Problem
	seen := make(map[string]int)

	for i, r := range records {
		key := r.SymptomNorm()
		if key == "" {
			out = append(out, Problem{Row: i, Detail: "empty symptom key phrase; record can never match"})
			continue
		}
		if prev, dup := seen[key]; dup {
			out = append(out, Problem{
				Row:    i,
				Detail: fmt.Sprintf("duplicate key phrase %q (same as row %d); only the earlier row can win", key, prev),
			})
			continue
		}
		for j := 0; j < i; j++ {
			prevKey := records[j].SymptomNorm()
			if prevKey == "" || prevKey == key {
				continue
			}
			if isNearDuplicate(key, prevKey) {
				out = append(out, Problem{
					Row:    i,
					Detail: fmt.Sprintf("key phrase %q is nearly identical to %q (row %d)", key, prevKey, j),
				})
			}
		}
		seen[key] = i
	}
	return out
}

func isNearDuplicate(a, b string) bool {
	if matchr.Levenshtein(a, b) <= 1 {
		return true
	}
	return matchr.JaroWinkler(a, b, false) >= nearDuplicateSimilarity
}
