package devtools

import (
	"context"
	"testing"
	"time"
)

func TestTracker_RingBuffer(t *testing.T) {
	t.Parallel()

	tr := NewTracker()
	tr.logLimit = 3
	for i := range 5 {
		tr.Record(context.Background(), Entry{Kind: EntryRender, Subject: string(rune('a' + i))})
	}

	entries := tr.LogEntries()
	if len(entries) != 3 {
		t.Fatalf("len(LogEntries()) = %d, want 3", len(entries))
	}
	want := []string{"c", "d", "e"}
	for i, e := range entries {
		if e.Entry.Subject != want[i] {
			t.Fatalf("entries[%d].Subject = %q, want %q", i, e.Entry.Subject, want[i])
		}
		if e.Seq != uint64(i+2) {
			t.Fatalf("entries[%d].Seq = %d, want %d", i, e.Seq, i+2)
		}
	}
}

func TestTracker_Origin(t *testing.T) {
	t.Parallel()

	tr := NewTracker()
	tr.Record(WithOrigin(context.Background(), "startup"), Entry{Kind: EntrySkip})
	tr.Record(context.Background(), Entry{Kind: EntryRender})

	entries := tr.LogEntries()
	if entries[0].Origin != "startup" {
		t.Fatalf("Origin = %q, want startup", entries[0].Origin)
	}
	if entries[1].Origin != "dashboard" {
		t.Fatalf("Origin = %q, want dashboard", entries[1].Origin)
	}
	if tr.Count(EntrySkip) != 1 {
		t.Fatalf("Count(EntrySkip) = %d, want 1", tr.Count(EntrySkip))
	}
}

func TestTracker_NilSafe(t *testing.T) {
	t.Parallel()

	var tr *Tracker
	tr.Record(context.Background(), Entry{})
	if got := tr.LogEntries(); got != nil {
		t.Fatalf("LogEntries() = %v, want nil", got)
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := map[time.Duration]string{
		500 * time.Microsecond:  "500us",
		12 * time.Millisecond:   "12ms",
		1500 * time.Millisecond: "1.5s",
		42 * time.Second:        "42s",
	}
	for d, want := range tests {
		if got := FormatDuration(d); got != want {
			t.Errorf("FormatDuration(%v) = %q, want %q", d, got, want)
		}
	}
}
