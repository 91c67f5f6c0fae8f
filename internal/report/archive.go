package report

import (
	"fmt"
	"io"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/kzachmann/VSJumpToLine/internal/diag"
	"github.com/kzachmann/VSJumpToLine/internal/version"
)

// Current schema version - increment when ArchivePayload format changes
const archiveSchemaVersion uint16 = 1

// ArchiveEntry is one recorded line in the binary archive.
type ArchiveEntry struct {
	Severity uint8
	Kind     uint8
	Text     string
}

// ArchivePayload is the msgpack document written by WriteArchive so
// downstream tooling can consume a run's results without re-parsing
// the textual report.
type ArchivePayload struct {
	// Schema version for safe invalidation when the format changes
	Schema uint16

	Tool        string
	ToolVersion string

	Lines uint32

	Notes    uint32
	Infos    uint32
	Warnings uint32
	Errors   uint32

	SuppressedNotes    uint32
	SuppressedInfos    uint32
	SuppressedWarnings uint32
	SuppressedErrors   uint32

	Entries []ArchiveEntry
}

// WriteArchive serialises the result list as msgpack.
func WriteArchive(w io.Writer, list *diag.List) error {
	payload, err := buildArchive(list)
	if err != nil {
		return err
	}
	if err := msgpack.NewEncoder(w).Encode(payload); err != nil {
		return fmt.Errorf("failed to encode archive: %w", err)
	}
	return nil
}

// ReadArchive decodes a payload written by WriteArchive.
func ReadArchive(r io.Reader) (ArchivePayload, error) {
	var payload ArchivePayload
	if err := msgpack.NewDecoder(r).Decode(&payload); err != nil {
		return ArchivePayload{}, fmt.Errorf("failed to decode archive: %w", err)
	}
	if payload.Schema != archiveSchemaVersion {
		return ArchivePayload{}, fmt.Errorf("unsupported archive schema %d", payload.Schema)
	}
	return payload, nil
}

func buildArchive(list *diag.List) (ArchivePayload, error) {
	payload := ArchivePayload{
		Schema:      archiveSchemaVersion,
		Tool:        appShort,
		ToolVersion: version.Number,
		Entries:     make([]ArchiveEntry, 0, list.Len()),
	}

	counts := []struct {
		dst *uint32
		val int
	}{
		{&payload.Lines, list.Lines()},
		{&payload.Notes, list.Accepted(diag.SevNote)},
		{&payload.Infos, list.Accepted(diag.SevInfo)},
		{&payload.Warnings, list.Accepted(diag.SevWarning)},
		{&payload.Errors, list.Accepted(diag.SevError)},
		{&payload.SuppressedNotes, list.Suppressed(diag.SevNote)},
		{&payload.SuppressedInfos, list.Suppressed(diag.SevInfo)},
		{&payload.SuppressedWarnings, list.Suppressed(diag.SevWarning)},
		{&payload.SuppressedErrors, list.Suppressed(diag.SevError)},
	}
	for _, c := range counts {
		v, err := safecast.Conv[uint32](c.val)
		if err != nil {
			return ArchivePayload{}, fmt.Errorf("counter out of range: %w", err)
		}
		*c.dst = v
	}

	for _, e := range list.Entries() {
		payload.Entries = append(payload.Entries, ArchiveEntry{
			Severity: uint8(e.Tag.Severity),
			Kind:     uint8(e.Tag.Kind),
			Text:     e.Text,
		})
	}
	return payload, nil
}
