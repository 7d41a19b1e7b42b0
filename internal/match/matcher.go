package match

import (
	"math"
	"strings"
)

const (
	// DefaultMinScore is the confidence threshold below which a best
	// candidate is rejected and "no match" reported instead.
	DefaultMinScore = 0.15

	// substringFloor is the minimum score granted when the whole normalized
	// key phrase occurs verbatim inside the query.
	substringFloor = 0.9

	// sequenceDiscount scales character-level similarity relative to
	// token-overlap scores, which are the stronger signal.
	sequenceDiscount = 0.8
)

// FindBestMatch scores every record's key phrase against the query and
// returns the best candidate with its score in [0,1], or nil if no candidate
// reaches minScore. The score returned alongside a nil record is still the
// true best score seen. The returned pointer aliases the records slice.
//
// The function is total: it never fails, for any input shape. Ties keep the
// earliest record.
func FindBestMatch(query string, records []Record, minScore float64) (*Record, float64) {
	if query == "" || len(records) == 0 {
		return nil, 0.0
	}

	q := Normalize(query)
	qTokens := tokenSet(q)

	var best *Record
	bestScore := 0.0
	for i := range records {
		s := records[i].symptomNorm
		if s == "" {
			continue
		}
		sTokens := tokenSet(s)

		var score float64
		if shared := intersection(sTokens, qTokens); shared > 0 {
			// Fraction of the key phrase's own tokens present in the
			// query. Deliberately asymmetric: a long query containing
			// every key-phrase word still scores 1.0.
			score = float64(shared) / math.Max(1, float64(len(sTokens)))
			if strings.Contains(q, s) {
				score = math.Max(score, substringFloor)
			}
		} else {
			score = math.Max(jaccard(qTokens, sTokens), sequenceRatio(q, s)*sequenceDiscount)
		}

		if score > bestScore {
			best = &records[i]
			bestScore = score
		}
	}

	if bestScore >= minScore {
		return best, bestScore
	}
	return nil, bestScore
}

// intersection counts tokens common to both sets.
func intersection(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			n++
		}
	}
	return n
}

// jaccard computes |A∩B| / |A∪B| over two token sets, 0.0 if either is empty.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	inter := intersection(a, b)
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}
