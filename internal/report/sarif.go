package report

import (
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/kzachmann/VSJumpToLine/internal/diag"
	"github.com/kzachmann/VSJumpToLine/internal/version"
)

const sarifRuleID = "jtol/diagnostic"

// canonicalLocation splits a rewritten line back into its parts:
// `path(line[,column]): message`.
var canonicalLocation = regexp.MustCompile(`^(.+)\((\d+)(?:,(\d+))?\):\s?(.*)$`)

// Sarif writes the primary entries as a SARIF 2.1.0 report. Context
// entries are presentation detail and stay out; entries whose text is
// not in canonical notation become results without a location.
func Sarif(w io.Writer, list *diag.List) error {
	out, err := sarif.New(sarif.Version210)
	if err != nil {
		return fmt.Errorf("failed to create SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI("jtol", "https://github.com/kzachmann/VSJumpToLine")
	run.AddRule(sarifRuleID).
		WithDescription("Diagnostic line recognized in captured tool output")

	for _, e := range list.Entries() {
		if e.Tag.Kind != diag.KindPrimary {
			continue
		}
		result := sarif.NewRuleResult(sarifRuleID).
			WithLevel(toSarifLevel(e.Tag.Severity)).
			WithMessage(sarif.NewTextMessage(e.Text))

		if m := canonicalLocation.FindStringSubmatch(e.Text); m != nil {
			line, err := strconv.Atoi(m[2])
			if err != nil {
				line = 0
			}
			region := sarif.NewRegion().WithStartLine(line)
			if m[3] != "" {
				if col, err := strconv.Atoi(m[3]); err == nil {
					region = region.WithStartColumn(col)
				}
			}
			location := sarif.NewLocation().WithPhysicalLocation(
				sarif.NewPhysicalLocation().
					WithArtifactLocation(sarif.NewArtifactLocation().WithUri(m[1])).
					WithRegion(region),
			)
			result = result.WithLocations([]*sarif.Location{location})
		}
		run.AddResult(result)
	}
	semver := version.Number
	run.Tool.Driver.SemanticVersion = &semver
	out.AddRun(run)

	return out.PrettyWrite(w)
}

func toSarifLevel(sev diag.Severity) string {
	switch sev {
	case diag.SevWarning:
		return "warning"
	case diag.SevError:
		return "error"
	default:
		return "note"
	}
}
