package report

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/kzachmann/VSJumpToLine/internal/diag"
	"github.com/kzachmann/VSJumpToLine/internal/engine"
)

// TextOptions controls the grouped text report. Color follows the
// package-global fatih/color setting configured by the CLI.
type TextOptions struct {
	// Prefix is prepended to primary lines only; context lines stay bare
	// so the editor does not mistake them for locations.
	Prefix string
	// Compact drops the blank line between messages.
	Compact bool
	// MultiLine decides which context entries are interleaved.
	MultiLine engine.MultiLineMode
}

var (
	noteHeaderColor    = color.New(color.FgCyan, color.Bold)
	warningHeaderColor = color.New(color.FgYellow, color.Bold)
	errorHeaderColor   = color.New(color.FgRed, color.Bold)
)

// Text renders one section per base severity that accepted entries,
// in ascending severity order, followed by the summary footer.
func Text(w io.Writer, list *diag.List, opts TextOptions, elapsed time.Duration) {
	if list.Accepted(diag.SevNote) > 0 {
		headline(w, noteHeaderColor, fmt.Sprintf(" notes: %d ", list.Accepted(diag.SevNote)), '+')
		printGroup(w, list, diag.SevNote, opts)
	}
	if list.Accepted(diag.SevWarning) > 0 {
		headline(w, warningHeaderColor, fmt.Sprintf(" warnings: %d ", list.Accepted(diag.SevWarning)), '*')
		printGroup(w, list, diag.SevWarning, opts)
	}
	if list.Accepted(diag.SevError) > 0 {
		headline(w, errorHeaderColor, fmt.Sprintf(" errors: %d ", list.Accepted(diag.SevError)), '#')
		printGroup(w, list, diag.SevError, opts)
	}

	Summary(w, list, elapsed)
}

// printGroup walks the whole entry sequence and emits the entries of
// one base severity, interleaving before/behind context per mode.
func printGroup(w io.Writer, list *diag.List, sev diag.Severity, opts TextOptions) {
	first := true
	beforePrinted := false
	for _, e := range list.Entries() {
		if e.Tag.Severity != sev {
			continue
		}
		switch e.Tag.Kind {
		case diag.KindPrimary:
			if first || opts.Compact || beforePrinted {
				fmt.Fprintf(w, "%s%s\n", opts.Prefix, e.Text)
			} else {
				fmt.Fprintf(w, "\n%s%s\n", opts.Prefix, e.Text)
			}
			first = false
			beforePrinted = false
		case diag.KindBefore:
			if !opts.MultiLine.Before() {
				continue
			}
			if first || opts.Compact {
				fmt.Fprintf(w, "%s\n", e.Text)
			} else {
				fmt.Fprintf(w, "\n%s\n", e.Text)
			}
			first = false
			beforePrinted = true
		case diag.KindBehind:
			if !opts.MultiLine.Behind() {
				continue
			}
			fmt.Fprintf(w, "%s\n", e.Text)
		}
	}
}

// Summary writes the finished-totals footer. Totals show
// accepted+suppressed over suppressed per severity.
func Summary(w io.Writer, list *diag.List, elapsed time.Duration) {
	fill := '='
	if list.HasErrors() || list.HasWarnings() {
		fill = '~'
	}

	Rule(w, fill)
	Infof(w, "finished (totals): time: %.2fs, errors: %d/%d, warnings: %d/%d, notes: %d/%d, lines: %d",
		elapsed.Seconds(),
		list.Accepted(diag.SevError)+list.Suppressed(diag.SevError), list.Suppressed(diag.SevError),
		list.Accepted(diag.SevWarning)+list.Suppressed(diag.SevWarning), list.Suppressed(diag.SevWarning),
		list.Accepted(diag.SevNote)+list.Suppressed(diag.SevNote), list.Suppressed(diag.SevNote),
		list.Lines())
	Rule(w, fill)
}

func headline(w io.Writer, c *color.Color, title string, fill rune) {
	fmt.Fprintf(w, "%s: %s\n", appShort, c.Sprint(center(title, headerWidth, fill)))
}
