package match

import (
	"fmt"
	"strings"
)

// NoMatchMessage is the fixed sentence shown when no record clears the
// confidence threshold.
const NoMatchMessage = "No matching symptom found."

// FormatRecord renders a record as labeled lines in fixed order. A nil record
// yields NoMatchMessage. Empty fields render as empty strings.
func FormatRecord(r *Record) string {
	if r == nil {
		return NoMatchMessage
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Symptom: %s\n", r.Symptom)
	fmt.Fprintf(&b, "Possible Conditions: %s\n", r.Conditions)
	fmt.Fprintf(&b, "Medicines: %s\n", r.Medicines)
	fmt.Fprintf(&b, "Recommended Food: %s\n", r.Eat)
	fmt.Fprintf(&b, "Avoid: %s\n", r.Avoid)
	fmt.Fprintf(&b, "See Doctor If: %s", r.DoctorAdvice)
	return b.String()
}
