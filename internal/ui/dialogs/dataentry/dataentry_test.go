package dataentry

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/kpumuk/lazyplot/internal/chart"
	"github.com/kpumuk/lazyplot/internal/ui/dialogs/dialogtest"
)

func TestDataEntrySubmit(t *testing.T) {
	t.Parallel()

	m := New(chart.Stem)
	m.Init()
	m = dialogtest.Type(t, m, `{"labels":["a"],"values":[1]}`)

	_, cmd := dialogtest.Update(t, m, dialogtest.KeyCode(tea.KeyEnter))
	msgs := dialogtest.Collect(t, cmd)
	submit, ok := dialogtest.Find[SubmitMsg](msgs)
	if !ok {
		t.Fatalf("no SubmitMsg in %v", msgs)
	}
	if submit.Kind != chart.Stem || submit.Text != `{"labels":["a"],"values":[1]}` {
		t.Fatalf("SubmitMsg = %+v", submit)
	}
	if dialogtest.Closes(msgs) {
		t.Fatalf("dialog closed before the result arrived")
	}

	// A second enter while the first submit is pending is ignored.
	if _, cmd := dialogtest.Update(t, m, dialogtest.KeyCode(tea.KeyEnter)); cmd != nil {
		t.Fatalf("pending submit was sent twice")
	}
}

func TestDataEntryEmptyInput(t *testing.T) {
	t.Parallel()

	m := New(chart.Stem)
	m.Init()
	if _, cmd := dialogtest.Update(t, m, dialogtest.KeyCode(tea.KeyEnter)); cmd != nil {
		t.Fatalf("empty input produced a command")
	}
}

func TestDataEntryResult(t *testing.T) {
	t.Parallel()

	m := New(chart.Gantt, WithValue(`{"tasks":["a"]}`))
	m.Init()
	m, _ = dialogtest.Update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = dialogtest.Update(t, m, dialogtest.KeyCode(tea.KeyEnter))

	rejected := errors.New("malformed input: durations: missing")
	m, cmd := dialogtest.Update(t, m, ResultMsg{Err: rejected})
	if cmd != nil {
		t.Fatalf("rejection produced a command")
	}
	if !errors.Is(m.Err(), rejected) {
		t.Fatalf("Err() = %v, want %v", m.Err(), rejected)
	}
	if view := ansi.Strip(m.View()); !strings.Contains(view, "durations: missing") {
		t.Fatalf("view missing error:\n%s", view)
	}

	m, _ = dialogtest.Update(t, m, dialogtest.KeyCode(tea.KeyEnter))
	_, cmd = dialogtest.Update(t, m, ResultMsg{})
	if !dialogtest.Closes(dialogtest.Collect(t, cmd)) {
		t.Fatalf("accepted data did not close the dialog")
	}
}

func TestDataEntryExample(t *testing.T) {
	t.Parallel()

	m := New(chart.Dumbbell)
	m.Init()
	m, _ = dialogtest.Update(t, m, tea.KeyPressMsg(tea.Key{Code: 'e', Mod: tea.ModCtrl}))

	if got, want := m.input.Value(), chart.Example(chart.Dumbbell); got != want {
		t.Fatalf("input = %q, want %q", got, want)
	}
	if m.preview.Err() != nil || m.preview.LineCount() < 3 {
		t.Fatalf("preview lines = %d err = %v", m.preview.LineCount(), m.preview.Err())
	}
}

func TestDataEntryView(t *testing.T) {
	t.Parallel()

	m := New(chart.Funnel)
	m.Init()
	m, _ = dialogtest.Update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m = dialogtest.Type(t, m, `{"labels":`)

	view := ansi.Strip(m.View())
	for _, want := range []string{"Custom data", chart.Funnel.Title(), "Keys: labels, values", "not valid JSON yet"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
	if got := strings.Count(view, "\n") + 1; got != 20 {
		t.Fatalf("height = %d, want 20", got)
	}
}
