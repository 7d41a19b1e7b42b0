package match

import "testing"

func TestFormatRecordNil(t *testing.T) {
	if got := FormatRecord(nil); got != NoMatchMessage {
		t.Errorf("FormatRecord(nil) = %q, want %q", got, NoMatchMessage)
	}
}

func TestFormatRecord(t *testing.T) {
	r := NewRecord("fever", "Viral infection", "Paracetamol", "Coconut water", "Fried food", "If >102F")
	want := "Symptom: fever\n" +
		"Possible Conditions: Viral infection\n" +
		"Medicines: Paracetamol\n" +
		"Recommended Food: Coconut water\n" +
		"Avoid: Fried food\n" +
		"See Doctor If: If >102F"
	if got := FormatRecord(&r); got != want {
		t.Errorf("FormatRecord = %q, want %q", got, want)
	}
}

func TestFormatRecordEmptyFields(t *testing.T) {
	r := NewRecord("fever", "", "", "", "", "")
	want := "Symptom: fever\n" +
		"Possible Conditions: \n" +
		"Medicines: \n" +
		"Recommended Food: \n" +
		"Avoid: \n" +
		"See Doctor If: "
	if got := FormatRecord(&r); got != want {
		t.Errorf("FormatRecord = %q, want %q", got, want)
	}
}
