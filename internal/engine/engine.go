// Package engine runs the per-line conversion pipeline: severity
// classification, location rewriting, path resolution, multi-line
// context stitching and result accumulation.
package engine

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/kzachmann/VSJumpToLine/internal/diag"
	"github.com/kzachmann/VSJumpToLine/internal/resolve"
	"github.com/kzachmann/VSJumpToLine/internal/rewrite"
)

// ErrDecode is reported when the input stream is not valid UTF-8.
// A decode failure aborts the whole pass; no partial results survive.
var ErrDecode = encoding.ErrInvalidUTF8

// GCC prints a banner like `test.c: In function 'main':` one line
// ahead of the diagnostics it refers to.
var bannerPattern = regexp.MustCompile(`(?i): In function.+:`)

const maxLineLen = 1024 * 1024

// Process reads tool output line by line and returns the accumulated
// result list. The pass is strictly sequential; the only state carried
// across lines is the previous severity and the pending banner line.
func Process(r io.Reader, opts Options, log hclog.Logger) (*diag.List, error) {
	list := diag.NewList(opts.SuppressIdentical, opts.MultiLine.Before())

	scanner := bufio.NewScanner(transform.NewReader(r, encoding.UTF8Validator))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLen)

	prev := diag.SevIgnore
	pendingBanner := ""
	for scanner.Scan() {
		list.CountLine()
		// Line endings carry no information here, regardless of origin.
		line := strings.ReplaceAll(scanner.Text(), "\r", "")

		sev := diag.Classify(line)

		// An indented, non-blank line right after a diagnostic continues it.
		if opts.MultiLine.Behind() && prev > diag.SevIgnore && sev == diag.SevIgnore &&
			line != "" && (line[0] == ' ' || line[0] == '\t') && strings.TrimSpace(line) != "" {
			list.AppendBehind(prev, line)
			pendingBanner = ""
			continue
		}

		if sev > diag.SevIgnore {
			processed := rewrite.Location(line)
			if processed != "" {
				if special := rewrite.Special(processed); special != "" {
					processed = special
				}
			} else {
				// Already canonical or a format not yet covered.
				log.Debug("no location pattern matched", "line", line)
				processed = line
			}
			if resolved := resolve.Bare(processed, opts.WorkingDir, log); resolved != "" {
				processed = resolved
			}

			before := ""
			if opts.MultiLine.Before() {
				before = pendingBanner
			}
			// A suppressed duplicate degrades to SevIgnore so that
			// following continuation lines do not attach to it.
			sev = list.Append(sev, processed, before)
		}

		if bannerPattern.MatchString(line) {
			pendingBanner = line
		} else {
			pendingBanner = ""
		}
		prev = sev
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}

	return list, nil
}
