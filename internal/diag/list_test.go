package diag

import "testing"

func TestListAppendCountsAndOrder(t *testing.T) {
	list := NewList(false, false)

	if got := list.Append(SevError, "a.c(5,2): error: bad", ""); got != SevError {
		t.Fatalf("Append returned %v, want %v", got, SevError)
	}
	list.Append(SevWarning, "b.c(1): warning: odd", "")

	if list.Len() != 2 {
		t.Fatalf("Len = %d, want 2", list.Len())
	}
	if list.Accepted(SevError) != 1 || list.Accepted(SevWarning) != 1 {
		t.Errorf("accepted counters wrong: errors=%d warnings=%d", list.Accepted(SevError), list.Accepted(SevWarning))
	}
	first := list.Entries()[0]
	if first.Tag.Kind != KindPrimary || first.Tag.Severity != SevError {
		t.Errorf("first entry tag = %+v, want primary error", first.Tag)
	}
	if !list.HasErrors() || !list.HasWarnings() {
		t.Error("HasErrors/HasWarnings should both report true")
	}
}

func TestListSuppressIdentical(t *testing.T) {
	list := NewList(true, false)

	list.Append(SevWarning, "a.c(1): warning: dup", "")
	if got := list.Append(SevWarning, "a.c(1): warning: dup", ""); got != SevIgnore {
		t.Fatalf("duplicate Append returned %v, want %v", got, SevIgnore)
	}

	if list.Len() != 1 {
		t.Errorf("Len = %d, want 1 (duplicate must not grow the sequence)", list.Len())
	}
	if list.Accepted(SevWarning) != 1 {
		t.Errorf("accepted warnings = %d, want 1", list.Accepted(SevWarning))
	}
	if list.Suppressed(SevWarning) != 1 {
		t.Errorf("suppressed warnings = %d, want 1", list.Suppressed(SevWarning))
	}
}

func TestListDuplicatesKeptWithoutSuppress(t *testing.T) {
	list := NewList(false, false)

	list.Append(SevError, "a.c(1): error: dup", "")
	list.Append(SevError, "a.c(1): error: dup", "")

	if list.Len() != 2 || list.Accepted(SevError) != 2 || list.Suppressed(SevError) != 0 {
		t.Errorf("got len=%d accepted=%d suppressed=%d, want 2/2/0",
			list.Len(), list.Accepted(SevError), list.Suppressed(SevError))
	}
}

func TestListBeforeContext(t *testing.T) {
	banner := "test.c: In function 'main':"

	list := NewList(false, true)
	list.Append(SevWarning, "test.c(9,5): warning: unused variable 'x'", banner)

	if list.Len() != 2 {
		t.Fatalf("Len = %d, want 2 (banner + primary)", list.Len())
	}
	if got := list.Entries()[0]; got.Tag.Kind != KindBefore || got.Text != banner {
		t.Errorf("first entry = %+v, want before-tagged banner", got)
	}
	if list.Accepted(SevWarning) != 1 {
		t.Errorf("accepted warnings = %d, want 1 (context must not count)", list.Accepted(SevWarning))
	}

	// Same input without the before mode: the banner is dropped.
	list = NewList(false, false)
	list.Append(SevWarning, "test.c(9,5): warning: unused variable 'x'", banner)
	if list.Len() != 1 {
		t.Errorf("Len = %d, want 1 without before mode", list.Len())
	}
}

func TestListAppendBehindBypassesCounters(t *testing.T) {
	list := NewList(true, false)

	list.Append(SevError, "a.c(5): error: bad", "")
	list.AppendBehind(SevError, "  expected ';' before '}' token")
	list.AppendBehind(SevError, "  expected ';' before '}' token")

	if list.Len() != 3 {
		t.Fatalf("Len = %d, want 3", list.Len())
	}
	if list.Accepted(SevError) != 1 || list.Suppressed(SevError) != 0 {
		t.Errorf("counters moved for continuations: accepted=%d suppressed=%d",
			list.Accepted(SevError), list.Suppressed(SevError))
	}
	last := list.Entries()[2]
	if last.Tag.Kind != KindBehind || last.Tag.Severity != SevError {
		t.Errorf("continuation tag = %+v, want behind error", last.Tag)
	}
}
