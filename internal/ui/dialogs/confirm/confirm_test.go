package confirm

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/kpumuk/lazyplot/internal/ui/dialogs/dialogtest"
)

func TestConfirmKeys(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		keys          []tea.Msg
		wantConfirmed bool
	}{
		"yes":             {keys: []tea.Msg{dialogtest.KeyText("y")}, wantConfirmed: true},
		"no":              {keys: []tea.Msg{dialogtest.KeyText("n")}, wantConfirmed: false},
		"enter default":   {keys: []tea.Msg{dialogtest.KeyCode(tea.KeyEnter)}, wantConfirmed: false},
		"tab then enter":  {keys: []tea.Msg{dialogtest.KeyCode(tea.KeyTab), dialogtest.KeyCode(tea.KeyEnter)}, wantConfirmed: true},
		"left then enter": {keys: []tea.Msg{dialogtest.KeyCode(tea.KeyLeft), dialogtest.KeyCode(tea.KeyEnter)}, wantConfirmed: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			m := New(WithTag("reset-style"))
			var cmd tea.Cmd
			for _, k := range tc.keys {
				m, cmd = dialogtest.Update(t, m, k)
			}
			msgs := dialogtest.Collect(t, cmd)
			action, ok := dialogtest.Find[ActionMsg](msgs)
			if !ok {
				t.Fatalf("no ActionMsg in %v", msgs)
			}
			if action.Confirmed != tc.wantConfirmed || action.Tag != "reset-style" {
				t.Fatalf("ActionMsg = %+v, want confirmed %v", action, tc.wantConfirmed)
			}
			if !dialogtest.Closes(msgs) {
				t.Fatalf("dialog did not close")
			}
		})
	}
}

func TestConfirmEscCloses(t *testing.T) {
	t.Parallel()

	m := New()
	_, cmd := dialogtest.Update(t, m, dialogtest.KeyCode(tea.KeyEscape))
	msgs := dialogtest.Collect(t, cmd)
	if !dialogtest.Closes(msgs) {
		t.Fatalf("esc did not close")
	}
	if _, ok := dialogtest.Find[ActionMsg](msgs); ok {
		t.Fatalf("esc produced an answer")
	}
}

func TestConfirmView(t *testing.T) {
	t.Parallel()

	m := New(WithTitle("Reset style"), WithMessage("Restore the default style?"))
	m, _ = dialogtest.Update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	view := ansi.Strip(m.View())
	for _, want := range []string{"Reset style", "Restore the default style?", "Yes", "No"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
	row, col := m.Position()
	if row <= 0 || col <= 0 {
		t.Fatalf("Position() = %d,%d, want centered", row, col)
	}
}
