package report

import (
	"encoding/json"
	"io"

	"github.com/kzachmann/VSJumpToLine/internal/diag"
)

type jsonEntry struct {
	Severity string `json:"severity"`
	Kind     string `json:"kind"`
	Text     string `json:"text"`
}

type jsonCounter struct {
	Accepted   int `json:"accepted"`
	Suppressed int `json:"suppressed"`
}

type jsonReport struct {
	Entries  []jsonEntry            `json:"entries"`
	Counters map[string]jsonCounter `json:"counters"`
	Lines    int                    `json:"lines"`
}

// JSON writes the whole result list as an indented JSON document.
func JSON(w io.Writer, list *diag.List) error {
	out := jsonReport{
		Entries:  make([]jsonEntry, 0, list.Len()),
		Counters: make(map[string]jsonCounter, 4),
		Lines:    list.Lines(),
	}
	for _, e := range list.Entries() {
		out.Entries = append(out.Entries, jsonEntry{
			Severity: e.Tag.Severity.String(),
			Kind:     e.Tag.Kind.String(),
			Text:     e.Text,
		})
	}
	for _, sev := range []diag.Severity{diag.SevNote, diag.SevInfo, diag.SevWarning, diag.SevError} {
		out.Counters[sev.String()] = jsonCounter{
			Accepted:   list.Accepted(sev),
			Suppressed: list.Suppressed(sev),
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
