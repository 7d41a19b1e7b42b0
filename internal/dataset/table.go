package dataset

import (
	"sync/atomic"

	"github.com/medkb/sympta-cli/internal/match"
)

// Table holds an immutable snapshot of the record slice behind an atomic
// pointer, so concurrent matches keep reading a consistent snapshot while a
// reload swaps the whole table underneath them.
type Table struct {
	p atomic.Pointer[[]match.Record]
}

// NewTable creates a table holding records.
func NewTable(records []match.Record) *Table {
	t := &Table{}
	t.Replace(records)
	return t
}

// Records returns the current snapshot. Callers must not mutate it.
func (t *Table) Records() []match.Record {
	return *t.p.Load()
}

// Replace swaps in a new snapshot wholesale.
func (t *Table) Replace(records []match.Record) {
	if records == nil {
		records = []match.Record{}
	}
	t.p.Store(&records)
}

// Len returns the number of records in the current snapshot.
func (t *Table) Len() int {
	return len(t.Records())
}
