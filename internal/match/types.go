package match

// Record is one row of the symptom table. Records are immutable after load:
// the normalized key phrase is computed once by NewRecord and never changes.
type Record struct {
	Symptom      string
	Conditions   string
	Medicines    string
	Eat          string
	Avoid        string
	DoctorAdvice string

	symptomNorm string
}

// NewRecord builds a Record and caches the normalized key phrase.
func NewRecord(symptom, conditions, medicines, eat, avoid, doctorAdvice string) Record {
	return Record{
		Symptom:      symptom,
		Conditions:   conditions,
		Medicines:    medicines,
		Eat:          eat,
		Avoid:        avoid,
		DoctorAdvice: doctorAdvice,
		symptomNorm:  Normalize(symptom),
	}
}

// SymptomNorm returns the cached normalized key phrase.
func (r Record) SymptomNorm() string {
	return r.symptomNorm
}
