package diag

// Kind distinguishes a primary diagnostic from the context lines the
// multi-line modes attach to it.
type Kind uint8

const (
	// KindPrimary is a classified diagnostic line.
	KindPrimary Kind = iota
	// KindBefore is a banner line recorded ahead of its diagnostic.
	KindBefore
	// KindBehind is an indented continuation recorded after it.
	KindBehind
)

func (k Kind) String() string {
	switch k {
	case KindPrimary:
		return "primary"
	case KindBefore:
		return "before"
	case KindBehind:
		return "behind"
	}
	return "unknown"
}

// Tag pairs a base severity with the entry kind. Context entries carry
// the severity of the diagnostic they belong to, but only KindPrimary
// entries take part in counting and deduplication.
type Tag struct {
	Severity Severity
	Kind     Kind
}

// Entry is one recorded output line. Entries are append-only: the List
// never reorders or mutates them after insertion.
type Entry struct {
	Tag  Tag
	Text string
}
