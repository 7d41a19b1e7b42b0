// Package dataset loads and holds the symptom advice table. The table is the
// only state the matcher reads; records are immutable once loaded.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/medkb/sympta-cli/internal/match"
)

// Column headers recognized in the CSV. A missing column means the field is
// empty for every record; unknown columns are ignored.
const (
	colSymptom      = "symptom"
	colConditions   = "conditions"
	colMedicines    = "medicines"
	colEat          = "eat"
	colAvoid        = "avoid"
	colDoctorAdvice = "doctor_advice"
)

// Load reads the symptom table from a CSV file with a header row.
func Load(path string) ([]match.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open symptom data %s: %w", path, err)
	}
	defer f.Close()

	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read symptom data %s: %w", path, err)
	}
	return records, nil
}

// Read parses CSV content from r. Exposed separately so tests and the serve
// reload path can feed arbitrary readers.
func Read(r io.Reader) ([]match.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return []match.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read header row: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}

	var out []match.Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("invalid CSV row: %w", err)
		}
		field := func(col string) string {
			i, ok := idx[col]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		out = append(out, match.NewRecord(
			field(colSymptom),
			field(colConditions),
			field(colMedicines),
			field(colEat),
			field(colAvoid),
			field(colDoctorAdvice),
		))
	}
	return out, nil
}
