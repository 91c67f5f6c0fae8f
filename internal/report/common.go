// Package report renders the accumulated result list: the grouped
// text report with its summary, plus json, sarif and binary archive
// exports.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	appShort = "jtol"

	// headerWidth is the fixed width of headline and rule lines.
	headerWidth = 100
)

// Infof writes one informational line with the tool's short-name prefix.
func Infof(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s: %s\n", appShort, fmt.Sprintf(format, args...))
}

// Headline writes a prefixed title line centered inside fill runes.
func Headline(w io.Writer, title string, fill rune) {
	Infof(w, "%s", center(title, headerWidth, fill))
}

// Rule writes a prefixed full-width line of fill runes.
func Rule(w io.Writer, fill rune) {
	Headline(w, "", fill)
}

func center(s string, width int, fill rune) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(string(fill), left) + s + strings.Repeat(string(fill), pad-left)
}

// HumanSize formats a byte count in base-10 units (1 kB = 1000 B).
func HumanSize(size int64) string {
	const (
		kilobyte = 1000
		megabyte = kilobyte * 1000
		gigabyte = megabyte * 1000
	)
	switch {
	case size >= gigabyte:
		return fmt.Sprintf("%.2fGB", float64(size)/gigabyte)
	case size >= megabyte:
		return fmt.Sprintf("%.2fMB", float64(size)/megabyte)
	case size >= kilobyte:
		return fmt.Sprintf("%.2fkB", float64(size)/kilobyte)
	}
	return fmt.Sprintf("%dB", size)
}
