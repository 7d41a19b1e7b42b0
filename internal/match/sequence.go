package match

// sequenceRatio computes a character-level similarity in [0,1]: the Dice
// coefficient over rune bigrams, i.e. twice the number of matching character
// pairs divided by the total number of pairs in both strings. Strings too
// short to form a bigram compare by equality.
func sequenceRatio(a, b string) float64 {
	ab := bigrams(a)
	bb := bigrams(b)
	if len(ab) == 0 || len(bb) == 0 {
		if a == b && a != "" {
			return 1.0
		}
		return 0.0
	}

	counts := make(map[string]int, len(ab))
	for _, g := range ab {
		counts[g]++
	}
	matches := 0
	for _, g := range bb {
		if counts[g] > 0 {
			counts[g]--
			matches++
		}
	}
	return 2.0 * float64(matches) / float64(len(ab)+len(bb))
}

func bigrams(s string) []string {
	r := []rune(s)
	if len(r) < 2 {
		return nil
	}
	out := make([]string, len(r)-1)
	for i := 0; i+1 < len(r); i++ {
		out[i] = string(r[i : i+2])
	}
	return out
}
