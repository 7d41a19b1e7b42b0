package match

import (
	"math"
	"testing"
)

func testRecords() []Record {
	return []Record{
		NewRecord("headache", "Tension headache", "Paracetamol", "Water", "Caffeine", "If lasts more than 2 days"),
		NewRecord("stomach pain", "Indigestion", "Antacids", "Rice", "Spicy food", "If severe"),
		NewRecord("fever", "Viral infection", "Paracetamol", "Coconut water", "Fried food", "If >102F"),
	}
}

func TestFindBestMatchExactPhrase(t *testing.T) {
	r, score := FindBestMatch("I have a headache", testRecords(), DefaultMinScore)
	if r == nil || r.Symptom != "headache" {
		t.Fatalf("got %v, want headache record", r)
	}
	if score != 1.0 {
		t.Errorf("score = %v, want 1.0", score)
	}
}

func TestFindBestMatchTokenOverlap(t *testing.T) {
	r, score := FindBestMatch("stomach hurts", testRecords(), DefaultMinScore)
	if r == nil || r.Symptom != "stomach pain" {
		t.Fatalf("got %v, want stomach pain record", r)
	}
	if score != 0.5 {
		t.Errorf("score = %v, want 0.5 (one of two key tokens present)", score)
	}
}

func TestFindBestMatchNoTokenOverlap(t *testing.T) {
	r, score := FindBestMatch("broken arm", testRecords(), DefaultMinScore)
	if r != nil {
		t.Fatalf("got %q, want no match", r.Symptom)
	}
	if score >= DefaultMinScore {
		t.Errorf("score = %v, want below threshold %v", score, DefaultMinScore)
	}
}

func TestFindBestMatchGibberish(t *testing.T) {
	r, score := FindBestMatch("zzzz", testRecords(), DefaultMinScore)
	if r != nil || score != 0.0 {
		t.Errorf("got (%v, %v), want (nil, 0)", r, score)
	}
}

func TestFindBestMatchShortCircuits(t *testing.T) {
	if r, score := FindBestMatch("", testRecords(), DefaultMinScore); r != nil || score != 0.0 {
		t.Errorf("empty query: got (%v, %v), want (nil, 0)", r, score)
	}
	if r, score := FindBestMatch("fever", nil, DefaultMinScore); r != nil || score != 0.0 {
		t.Errorf("empty table: got (%v, %v), want (nil, 0)", r, score)
	}
}

// A rejected query still reports the true best score, not zero.
func TestFindBestMatchRejectedScoreReported(t *testing.T) {
	r, score := FindBestMatch("hedache", testRecords(), 0.9)
	if r != nil {
		t.Fatalf("got %q, want rejection at min score 0.9", r.Symptom)
	}
	want := 10.0 / 13.0 * sequenceDiscount // bigram dice of hedache/headache, discounted
	if math.Abs(score-want) > 1e-9 {
		t.Errorf("score = %v, want %v", score, want)
	}
}

func TestFindBestMatchMinScoreOverride(t *testing.T) {
	r, _ := FindBestMatch("hedache", testRecords(), 0.05)
	if r == nil || r.Symptom != "headache" {
		t.Errorf("got %v, want headache with lowered threshold", r)
	}
}

// Appending the exact key phrase to a query never decreases that candidate's score.
func TestFindBestMatchSubstringMonotonic(t *testing.T) {
	records := []Record{NewRecord("stomach pain", "", "", "", "", "")}
	queries := []string{"pain", "my stomach", "it hurts a lot", "zzzz"}
	for _, q := range queries {
		_, before := FindBestMatch(q, records, 0)
		_, after := FindBestMatch(q+" stomach pain", records, 0)
		if after < before {
			t.Errorf("query %q: score dropped from %v to %v after appending key phrase", q, before, after)
		}
		if after < substringFloor {
			t.Errorf("query %q: score %v below substring floor %v", q, after, substringFloor)
		}
	}
}

func TestFindBestMatchFirstSeenWinsOnTie(t *testing.T) {
	records := []Record{
		NewRecord("fever", "first", "", "", "", ""),
		NewRecord("fever", "second", "", "", "", ""),
	}
	r, score := FindBestMatch("fever", records, DefaultMinScore)
	if r == nil || r.Conditions != "first" {
		t.Fatalf("got %v, want the earlier of two tied records", r)
	}
	if score != 1.0 {
		t.Errorf("score = %v, want 1.0", score)
	}
}

func TestFindBestMatchDeterministic(t *testing.T) {
	records := testRecords()
	firstRec, firstScore := FindBestMatch("stomach hurts", records, DefaultMinScore)
	for i := 0; i < 5; i++ {
		r, score := FindBestMatch("stomach hurts", records, DefaultMinScore)
		if r != firstRec || score != firstScore {
			t.Fatalf("call %d: got (%p, %v), want (%p, %v)", i, r, score, firstRec, firstScore)
		}
	}
}

func TestFindBestMatchSkipsEmptyKeyPhrases(t *testing.T) {
	records := []Record{
		NewRecord("", "blank", "", "", "", ""),
		NewRecord("fever", "Viral infection", "", "", "", ""),
	}
	r, _ := FindBestMatch("fever", records, DefaultMinScore)
	if r == nil || r.Symptom != "fever" {
		t.Fatalf("got %v, want fever record", r)
	}

	allBlank := []Record{NewRecord("", "", "", "", "", "")}
	if r, score := FindBestMatch("fever", allBlank, DefaultMinScore); r != nil || score != 0.0 {
		t.Errorf("all-blank table: got (%v, %v), want (nil, 0)", r, score)
	}
}
