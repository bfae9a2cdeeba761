// Package dialogtest provides helpers for dialog tests.
package dialogtest

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/kpumuk/lazyplot/internal/ui/dialogs"
)

// KeyCode returns a key press for a special key such as tea.KeyEnter.
func KeyCode(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: code})
}

// KeyText returns a key press for printable text.
func KeyText(text string) tea.KeyPressMsg {
	var code rune
	for _, r := range text {
		code = r
		break
	}
	return tea.KeyPressMsg(tea.Key{Text: text, Code: code})
}

// Type sends text one rune at a time.
func Type[T dialogs.DialogModel](t *testing.T, m T, text string) T {
	t.Helper()
	for _, r := range text {
		m, _ = Update(t, m, KeyText(string(r)))
	}
	return m
}

// Update runs m.Update and asserts the dialog keeps its concrete type.
func Update[T dialogs.DialogModel](t *testing.T, m T, msg tea.Msg) (T, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	updated, ok := next.(T)
	if !ok {
		t.Fatalf("Update returned %T, want %T", next, m)
	}
	return updated, cmd
}

// Collect runs cmd and flattens batches into the produced messages.
// Tick commands would block, so callers only pass immediate commands.
func Collect(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if msg == nil {
		return nil
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, Collect(t, c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// Find returns the first message of type M.
func Find[M tea.Msg](msgs []tea.Msg) (M, bool) {
	for _, msg := range msgs {
		if m, ok := msg.(M); ok {
			return m, true
		}
	}
	var zero M
	return zero, false
}

// Closes reports whether msgs contain a CloseDialogMsg.
func Closes(msgs []tea.Msg) bool {
	_, ok := Find[dialogs.CloseDialogMsg](msgs)
	return ok
}
