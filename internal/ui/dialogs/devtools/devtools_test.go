package devtools

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	coredevtools "github.com/kpumuk/lazyplot/internal/devtools"
	"github.com/kpumuk/lazyplot/internal/ui/dialogs/dialogtest"
)

func seedTracker() *coredevtools.Tracker {
	tracker := coredevtools.NewTracker()
	tracker.AppendLog(coredevtools.LogEntry{
		Time:   time.Date(2024, 1, 2, 3, 4, 5, 678000000, time.UTC),
		Origin: "startup",
		Entry: coredevtools.Entry{
			Kind:     coredevtools.EntryRender,
			Subject:  "contour",
			Detail:   "ntcharts 41x12",
			Duration: 3 * time.Millisecond,
		},
	})
	tracker.AppendLog(coredevtools.LogEntry{
		Time:   time.Date(2024, 1, 2, 3, 4, 6, 0, time.UTC),
		Origin: "dashboard",
		Entry: coredevtools.Entry{
			Kind:    coredevtools.EntrySkip,
			Subject: "stem",
			Detail:  "slot not mounted",
		},
	})
	tracker.AppendLog(coredevtools.LogEntry{
		Time:   time.Date(2024, 1, 2, 3, 4, 7, 0, time.UTC),
		Origin: "presets",
		Entry: coredevtools.Entry{
			Kind:     coredevtools.EntryCommand,
			Subject:  "hgetall lazyplot:preset",
			Duration: 1200 * time.Microsecond,
		},
	})
	return tracker
}

func TestDevToolsCloseKeys(t *testing.T) {
	t.Parallel()

	for _, msg := range []tea.Msg{
		dialogtest.KeyText("~"),
		dialogtest.KeyCode(tea.KeyEscape),
		dialogtest.KeyCode(tea.KeyF12),
	} {
		m := New(WithTracker(seedTracker()))
		m.Init()
		_, cmd := dialogtest.Update(t, m, msg)
		if !dialogtest.Closes(dialogtest.Collect(t, cmd)) {
			t.Fatalf("%v did not close the console", msg)
		}
	}
}

func TestDevToolsRows(t *testing.T) {
	t.Parallel()

	m := New(WithTracker(seedTracker()))
	m.Init()

	rows := m.Rows()
	if len(rows) != 3 {
		t.Fatalf("len(Rows()) = %d, want 3", len(rows))
	}
	want := []string{"0", "03:04:05.678", "startup", "render", "3ms", "contour: ntcharts 41x12"}
	for i, cell := range rows[0].Cells {
		if cell != want[i] {
			t.Fatalf("cell %d = %q, want %q", i, cell, want[i])
		}
	}
	if rows[1].Cells[4] != "" {
		t.Fatalf("skip duration = %q, want empty", rows[1].Cells[4])
	}
	if got := rows[2].Cells[3]; got != "redis" {
		t.Fatalf("command kind = %q, want redis", got)
	}
}

func TestDevToolsFilter(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		query string
		want  int
	}{
		"by kind":    {query: "redis", want: 1},
		"by subject": {query: "CONTOUR", want: 1},
		"by origin":  {query: "dash", want: 1},
		"by detail":  {query: "mounted", want: 1},
		"no match":   {query: "zzz", want: 0},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			m := New(WithTracker(seedTracker()))
			m.Init()
			m = dialogtest.Type(t, m, tc.query)
			if got := len(m.Rows()); got != tc.want {
				t.Fatalf("len(Rows()) = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestDevToolsCtrlUClearsFilter(t *testing.T) {
	t.Parallel()

	m := New(WithTracker(seedTracker()))
	m.Init()
	m = dialogtest.Type(t, m, "zzz")
	m, _ = dialogtest.Update(t, m, tea.KeyPressMsg(tea.Key{Code: 'u', Mod: tea.ModCtrl}))
	if m.input.Value() != "" || len(m.Rows()) != 3 {
		t.Fatalf("after ctrl+u value = %q rows = %d", m.input.Value(), len(m.Rows()))
	}
}

func TestDevToolsToggleFocus(t *testing.T) {
	t.Parallel()

	m := New(WithTracker(seedTracker()))
	m.Init()
	m, _ = dialogtest.Update(t, m, dialogtest.KeyCode(tea.KeyTab))
	if m.inputFocused {
		t.Fatalf("input still focused after tab")
	}
	m = dialogtest.Type(t, m, "k")
	if m.input.Value() != "" {
		t.Fatalf("blurred input received text %q", m.input.Value())
	}
	if m.table.Cursor() != 1 {
		t.Fatalf("Cursor() = %d, want 1", m.table.Cursor())
	}
}

func TestDevToolsFollowsTail(t *testing.T) {
	t.Parallel()

	tracker := seedTracker()
	m := New(WithTracker(tracker))
	m.Init()
	tracker.Record(t.Context(), coredevtools.Entry{Kind: coredevtools.EntryExport, Subject: "contour.png"})
	m, _ = dialogtest.Update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m.View()
	if m.table.Cursor() != 3 {
		t.Fatalf("Cursor() = %d, want 3", m.table.Cursor())
	}
}

func TestDevToolsView(t *testing.T) {
	t.Parallel()

	m := New(WithTracker(seedTracker()))
	m.Init()
	m, _ = dialogtest.Update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	view := m.View()
	if got := lipglossHeight(view); got != 15 {
		t.Fatalf("height = %d, want 15", got)
	}
	plain := ansi.Strip(view)
	for _, want := range []string{"Dev Console", "3/3", "contour: ntcharts 41x12", "filter>"} {
		if !strings.Contains(plain, want) {
			t.Fatalf("view missing %q:\n%s", want, plain)
		}
	}
}

func lipglossHeight(s string) int {
	return strings.Count(s, "\n") + 1
}
