package diag

import "strings"

// Severity defines the importance of a classified tool-output line.
// The order matters: grouping and the summary rely on it.
type Severity uint8

const (
	// SevIgnore is for lines without any recognized marker.
	SevIgnore Severity = iota
	// SevNote is for note diagnostics.
	SevNote
	// SevInfo is reserved; no marker currently produces it.
	SevInfo
	// SevWarning is for warning diagnostics.
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevIgnore:
		return "IGNORE"
	case SevNote:
		return "NOTE"
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Marker sets per severity, probed in order. First match wins, so a
// line carrying both a note and a warning marker counts as a note.
var (
	noteMarkers = []string{
		"note:", // GCC, Doxygen
		"note[", // IAR
	}
	warningMarkers = []string{
		"warning:", // GCC, Doxygen, cmocka
		"warning[", // IAR, BullseyeCoverage
		":fail:",   // Unity test framework
	}
	errorMarkers = []string{
		"error:",              // GCC, Doxygen, cmocka
		"error[",              // IAR
		"undefined reference", // GCC linker
	}
)

// Classify tags a single output line with a severity by case-insensitive
// substring search over the fixed marker sets.
func Classify(line string) Severity {
	lower := strings.ToLower(line)
	switch {
	case containsAny(lower, noteMarkers):
		return SevNote
	case containsAny(lower, warningMarkers):
		return SevWarning
	case containsAny(lower, errorMarkers):
		return SevError
	}
	return SevIgnore
}

func containsAny(line string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(line, m) {
			return true
		}
	}
	return false
}
