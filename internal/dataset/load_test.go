package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSV = `symptom,conditions,medicines,eat,avoid,doctor_advice
headache,Tension headache,Paracetamol,Water,Caffeine,If lasts more than 2 days
stomach pain,Indigestion,Antacids,Rice,Spicy food,If severe
fever,Viral infection,Paracetamol,Coconut water,Fried food,If >102F
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "symptom_data.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	records, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if records[1].Symptom != "stomach pain" || records[1].Medicines != "Antacids" {
		t.Errorf("unexpected record: %+v", records[1])
	}
	if records[1].SymptomNorm() != "stomach pain" {
		t.Errorf("SymptomNorm = %q, want %q", records[1].SymptomNorm(), "stomach pain")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadMissingColumn(t *testing.T) {
	csv := "symptom,conditions\nfever,Viral infection\n"
	records, err := Read(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	r := records[0]
	if r.Symptom != "fever" || r.Conditions != "Viral infection" {
		t.Errorf("unexpected record: %+v", r)
	}
	if r.Medicines != "" || r.Eat != "" || r.Avoid != "" || r.DoctorAdvice != "" {
		t.Errorf("missing columns should read as empty strings: %+v", r)
	}
}

func TestReadExtraAndReorderedColumns(t *testing.T) {
	csv := "notes,doctor_advice,symptom\nignored,If severe,fever\n"
	records, err := Read(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if records[0].Symptom != "fever" || records[0].DoctorAdvice != "If severe" {
		t.Errorf("unexpected record: %+v", records[0])
	}
}

func TestReadBOMAndWhitespace(t *testing.T) {
	csv := "\ufeffsymptom,conditions\n  fever  ,  Viral infection  \n"
	records, err := Read(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if records[0].Symptom != "fever" {
		t.Errorf("Symptom = %q, want %q", records[0].Symptom, "fever")
	}
	if records[0].Conditions != "Viral infection" {
		t.Errorf("Conditions = %q, want %q", records[0].Conditions, "Viral infection")
	}
}

func TestReadEmptyInput(t *testing.T) {
	records, err := Read(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}

func TestReadShortRow(t *testing.T) {
	csv := "symptom,conditions,medicines\nfever\n"
	records, err := Read(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if records[0].Symptom != "fever" || records[0].Conditions != "" {
		t.Errorf("unexpected record: %+v", records[0])
	}
}
