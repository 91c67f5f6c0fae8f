package engine

import "fmt"

// MultiLineMode selects which context lines get stitched to a
// diagnostic: the banner line before it, the indented continuation
// lines behind it, or both.
type MultiLineMode uint8

const (
	MultiOff MultiLineMode = iota
	MultiBefore
	MultiBehind
	MultiBoth
)

// ParseMultiLineMode converts the CLI/config value into a mode.
func ParseMultiLineMode(s string) (MultiLineMode, error) {
	switch s {
	case "", "off":
		return MultiOff, nil
	case "before":
		return MultiBefore, nil
	case "behind":
		return MultiBehind, nil
	case "both":
		return MultiBoth, nil
	}
	return MultiOff, fmt.Errorf("unknown multi-line mode: %s", s)
}

func (m MultiLineMode) String() string {
	switch m {
	case MultiOff:
		return "off"
	case MultiBefore:
		return "before"
	case MultiBehind:
		return "behind"
	case MultiBoth:
		return "both"
	}
	return "unknown"
}

// Before reports whether banner lines are recorded.
func (m MultiLineMode) Before() bool {
	return m == MultiBefore || m == MultiBoth
}

// Behind reports whether continuation lines are recorded.
func (m MultiLineMode) Behind() bool {
	return m == MultiBehind || m == MultiBoth
}

// Options is the read-only configuration handed to Process. Validation
// happens in the CLI layer; Process assumes the values it receives are
// already valid.
type Options struct {
	// WorkingDir enables bare-filename resolution when non-empty.
	WorkingDir string
	// MultiLine selects context stitching.
	MultiLine MultiLineMode
	// SuppressIdentical drops repeated primary texts.
	SuppressIdentical bool
}
