package dataset

import (
	"sync"
	"testing"

	"github.com/medkb/sympta-cli/internal/match"
)

func TestTableReplace(t *testing.T) {
	old := []match.Record{match.NewRecord("fever", "", "", "", "", "")}
	tb := NewTable(old)
	if tb.Len() != 1 {
		t.Fatalf("Len = %d, want 1", tb.Len())
	}

	snapshot := tb.Records()
	tb.Replace([]match.Record{
		match.NewRecord("headache", "", "", "", "", ""),
		match.NewRecord("fever", "", "", "", "", ""),
	})

	if tb.Len() != 2 {
		t.Errorf("Len after replace = %d, want 2", tb.Len())
	}
	// The old snapshot must be unaffected by the swap.
	if len(snapshot) != 1 || snapshot[0].Symptom != "fever" {
		t.Errorf("old snapshot changed: %+v", snapshot)
	}
}

func TestTableNilReplace(t *testing.T) {
	tb := NewTable(nil)
	if tb.Records() == nil || tb.Len() != 0 {
		t.Errorf("nil table should present an empty snapshot")
	}
}

func TestTableConcurrentReads(t *testing.T) {
	tb := NewTable([]match.Record{match.NewRecord("fever", "", "", "", "", "")})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				recs := tb.Records()
				match.FindBestMatch("fever", recs, match.DefaultMinScore)
			}
		}()
	}
	for j := 0; j < 100; j++ {
		tb.Replace([]match.Record{match.NewRecord("headache", "", "", "", "", "")})
		tb.Replace([]match.Record{match.NewRecord("fever", "", "", "", "", "")})
	}
	wg.Wait()
}
