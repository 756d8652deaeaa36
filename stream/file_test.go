package stream

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.xml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEvents(t *testing.T) {
	path := writeDoc(t, `<a><b/>x</a>`)
	var got []Event
	for ev, err := range Events(path) {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, ev)
	}
	want := []Event{
		{0, EventStart, "a"},
		{1, EventEmpty, "b"},
		{2, EventText, "x"},
		{3, EventEnd, "a"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

// openFDs counts the process's open file descriptors.
func openFDs(t *testing.T) int {
	t.Helper()
	ents, err := os.ReadDir("/proc/self/fd")
	if err != nil {
		t.Skipf("cannot inspect open descriptors: %v", err)
	}
	return len(ents)
}

func TestEventsEarlyBreak(t *testing.T) {
	path := writeDoc(t, `<a><b/><c/><d/></a>`)
	before := openFDs(t)
	n := 0
	for _, err := range Events(path) {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("consumed %d events, want 2", n)
	}
	if after := openFDs(t); after != before {
		t.Errorf("open descriptors went from %d to %d; break leaked the file", before, after)
	}
}

// Two passes over the same file yield the same events, element for
// element.
func TestEventsIdempotent(t *testing.T) {
	path := writeDoc(t, `<a>x<b/><c>y</c><!-- note --></a>`)
	pass := func() []Event {
		var res []Event
		for ev, err := range Events(path) {
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			res = append(res, ev)
		}
		return res
	}
	first := pass()
	second := pass()
	if len(first) == 0 {
		t.Fatal("no events decoded")
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second pass differs (-first +second):\n%s", diff)
	}
}

func TestEventsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.xml")
	sawErr := false
	for _, err := range Events(path) {
		if err == nil {
			t.Fatal("yielded an event for a missing file")
		}
		sawErr = true
	}
	if !sawErr {
		t.Error("expected an open error to be yielded")
	}
}

func TestEventsParseFailure(t *testing.T) {
	path := writeDoc(t, `<a></b>`)
	var got []Event
	var gotErr error
	for ev, err := range Events(path) {
		if err != nil {
			gotErr = err
			continue
		}
		got = append(got, ev)
	}
	if gotErr == nil {
		t.Fatal("expected a parse failure")
	}
	if len(got) != 1 {
		t.Errorf("got %d events before failure, want 1", len(got))
	}
}

func TestOpenClose(t *testing.T) {
	path := writeDoc(t, `<a/>`)
	fd, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	ev, err := fd.ReadEvent()
	if err != nil {
		t.Fatalf("ReadEvent: %v", err)
	}
	if ev.Type != EventEmpty || ev.Value != "a" {
		t.Errorf("unexpected event %v", ev)
	}
	if err := fd.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
