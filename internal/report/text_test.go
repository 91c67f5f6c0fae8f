package report

import (
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/kzachmann/VSJumpToLine/internal/diag"
	"github.com/kzachmann/VSJumpToLine/internal/engine"
)

func init() {
	// Deterministic output regardless of the test terminal.
	color.NoColor = true
}

func TestTextGroupsBySeverity(t *testing.T) {
	list := diag.NewList(false, false)
	list.Append(diag.SevError, "a.c(5,2): error: bad", "")
	list.Append(diag.SevNote, "a.c(7): note: declared here", "")
	list.Append(diag.SevWarning, "b.c(1): warning: odd", "")
	list.CountLine()
	list.CountLine()
	list.CountLine()

	var b strings.Builder
	Text(&b, list, TextOptions{Prefix: "src/"}, 1500*time.Millisecond)
	out := b.String()

	for _, want := range []string{
		" notes: 1 ",
		" warnings: 1 ",
		" errors: 1 ",
		"src/a.c(5,2): error: bad",
		"src/b.c(1): warning: odd",
		"finished (totals): time: 1.50s, errors: 1/0, warnings: 1/0, notes: 1/0, lines: 3",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}

	// Sections come in ascending severity order.
	if strings.Index(out, " notes: ") > strings.Index(out, " errors: ") {
		t.Error("notes section must precede errors")
	}
}

func TestTextSkipsEmptyGroups(t *testing.T) {
	list := diag.NewList(false, false)
	list.Append(diag.SevWarning, "b.c(1): warning: odd", "")

	var b strings.Builder
	Text(&b, list, TextOptions{}, 0)
	out := b.String()

	if strings.Contains(out, "notes:") || strings.Contains(out, "errors:") {
		t.Errorf("empty groups must not be printed:\n%s", out)
	}
}

func TestTextContextInterleaving(t *testing.T) {
	list := diag.NewList(false, true)
	list.Append(diag.SevWarning, "test.c(9,5): warning: unused variable 'x'", "test.c: In function 'main':")
	list.AppendBehind(diag.SevWarning, "  int x;")

	var b strings.Builder
	Text(&b, list, TextOptions{Prefix: ">", MultiLine: engine.MultiBoth}, 0)
	out := b.String()

	banner := strings.Index(out, "test.c: In function 'main':")
	primary := strings.Index(out, ">test.c(9,5): warning:")
	behind := strings.Index(out, "  int x;")
	if banner == -1 || primary == -1 || behind == -1 {
		t.Fatalf("missing entries in output:\n%s", out)
	}
	if !(banner < primary && primary < behind) {
		t.Errorf("context ordering wrong: banner=%d primary=%d behind=%d\n%s", banner, primary, behind, out)
	}

	// Context lines never carry the prefix.
	if strings.Contains(out, ">test.c: In function") || strings.Contains(out, ">  int x;") {
		t.Errorf("context lines must stay unprefixed:\n%s", out)
	}
}

func TestTextContextHiddenWhenModeOff(t *testing.T) {
	list := diag.NewList(false, true)
	list.Append(diag.SevWarning, "test.c(9,5): warning: unused variable 'x'", "test.c: In function 'main':")
	list.AppendBehind(diag.SevWarning, "  int x;")

	var b strings.Builder
	Text(&b, list, TextOptions{MultiLine: engine.MultiOff}, 0)
	out := b.String()

	if strings.Contains(out, "In function") || strings.Contains(out, "int x;") {
		t.Errorf("context must be hidden with multi-line off:\n%s", out)
	}
}

func TestSummarySuppressedTotals(t *testing.T) {
	list := diag.NewList(true, false)
	list.Append(diag.SevError, "a.c(1): error: dup", "")
	list.Append(diag.SevError, "a.c(1): error: dup", "")
	list.CountLine()
	list.CountLine()

	var b strings.Builder
	Summary(&b, list, 0)

	if !strings.Contains(b.String(), "errors: 2/1") {
		t.Errorf("summary should show accepted+suppressed/suppressed:\n%s", b.String())
	}
}

func TestHumanSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0B"},
		{999, "999B"},
		{1000, "1.00kB"},
		{1536, "1.54kB"},
		{2_500_000, "2.50MB"},
		{3_000_000_000, "3.00GB"},
	}
	for _, tt := range tests {
		if got := HumanSize(tt.size); got != tt.want {
			t.Errorf("HumanSize(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}

func TestCenterWidth(t *testing.T) {
	got := center(" notes: 3 ", 20, '+')
	if len(got) != 20 {
		t.Errorf("centered width = %d, want 20 (%q)", len(got), got)
	}
	if !strings.HasPrefix(got, "+++++") || !strings.HasSuffix(got, "+++++") {
		t.Errorf("fill missing: %q", got)
	}
}
