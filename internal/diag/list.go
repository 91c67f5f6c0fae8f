package diag

// List accumulates processed lines in input order together with the
// per-severity counters reported in the summary. It is owned by a
// single processing pass; nothing is ever removed once appended,
// suppression only prevents creation.
type List struct {
	entries    []Entry
	accepted   [SevError + 1]int
	suppressed [SevError + 1]int
	lines      int

	suppressIdentical bool
	keepBefore        bool
	seen              map[string]struct{}
}

// NewList constructs an empty List. With suppressIdentical, a primary
// text equal to an already accepted one is counted as suppressed and
// not recorded. With keepBefore, banner context handed to Append is
// recorded ahead of the primary entry.
func NewList(suppressIdentical, keepBefore bool) *List {
	l := &List{
		suppressIdentical: suppressIdentical,
		keepBefore:        keepBefore,
	}
	if suppressIdentical {
		l.seen = make(map[string]struct{})
	}
	return l
}

// Append records one primary diagnostic, optionally preceded by its
// banner line. It returns the severity actually recorded, or SevIgnore
// when the entry was suppressed as a duplicate.
func (l *List) Append(sev Severity, text, before string) Severity {
	if l.suppressIdentical {
		if _, ok := l.seen[text]; ok {
			l.suppressed[sev]++
			return SevIgnore
		}
		l.seen[text] = struct{}{}
	}
	l.accepted[sev]++
	if l.keepBefore && before != "" {
		l.entries = append(l.entries, Entry{Tag: Tag{Severity: sev, Kind: KindBefore}, Text: before})
	}
	l.entries = append(l.entries, Entry{Tag: Tag{Severity: sev, Kind: KindPrimary}, Text: text})
	return sev
}

// AppendBehind records one continuation line for the preceding
// diagnostic. Continuations bypass counters and deduplication.
func (l *List) AppendBehind(sev Severity, text string) {
	l.entries = append(l.entries, Entry{Tag: Tag{Severity: sev, Kind: KindBehind}, Text: text})
}

// CountLine bumps the total-lines counter, once per input line.
func (l *List) CountLine() {
	l.lines++
}

// Entries returns a read-only view of the recorded entries.
// Do not modify the returned slice.
func (l *List) Entries() []Entry {
	return l.entries
}

func (l *List) Len() int {
	return len(l.entries)
}

// Accepted returns how many primary entries of sev were recorded.
func (l *List) Accepted(sev Severity) int {
	return l.accepted[sev]
}

// Suppressed returns how many duplicates of sev were dropped.
func (l *List) Suppressed(sev Severity) int {
	return l.suppressed[sev]
}

// Lines returns the number of input lines seen by the pass.
func (l *List) Lines() int {
	return l.lines
}

// HasErrors reports whether at least one error was accepted.
func (l *List) HasErrors() bool {
	return l.accepted[SevError] > 0
}

// HasWarnings reports whether at least one warning was accepted.
func (l *List) HasWarnings() bool {
	return l.accepted[SevWarning] > 0
}
