package filter

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/kpumuk/lazyplot/internal/ui/dialogs/dialogtest"
)

func testChoices() []Choice {
	return []Choice{
		{Value: "all", Label: "All charts"},
		{Value: "contour", Label: "Contour Plot"},
		{Value: "stem", Label: "Stem Plot"},
		{Value: "funnel", Label: "Funnel Chart"},
	}
}

func TestFilterSelectsAndApplies(t *testing.T) {
	t.Parallel()

	m := New(WithChoices(testChoices()), WithCurrent("all"))
	m.Init()
	m, _ = dialogtest.Update(t, m, dialogtest.KeyCode(tea.KeyDown))
	m, _ = dialogtest.Update(t, m, dialogtest.KeyCode(tea.KeyDown))
	_, cmd := dialogtest.Update(t, m, dialogtest.KeyCode(tea.KeyEnter))

	msgs := dialogtest.Collect(t, cmd)
	action, ok := dialogtest.Find[ActionMsg](msgs)
	if !ok || action.Filter != "stem" {
		t.Fatalf("ActionMsg = %+v, %v, want stem", action, ok)
	}
	if !dialogtest.Closes(msgs) {
		t.Fatalf("dialog did not close")
	}
}

func TestFilterNarrowsByTyping(t *testing.T) {
	t.Parallel()

	m := New(WithChoices(testChoices()), WithCurrent("all"))
	m.Init()
	m = dialogtest.Type(t, m, "plot")

	var got []string
	for _, c := range m.Matches() {
		got = append(got, c.Value)
	}
	if strings.Join(got, ",") != "contour,stem" {
		t.Fatalf("Matches() = %v, want [contour stem]", got)
	}

	_, cmd := dialogtest.Update(t, m, dialogtest.KeyCode(tea.KeyEnter))
	action, _ := dialogtest.Find[ActionMsg](dialogtest.Collect(t, cmd))
	if action.Filter != "contour" {
		t.Fatalf("ActionMsg.Filter = %q, want contour", action.Filter)
	}
}

func TestFilterCurrentOnlyCloses(t *testing.T) {
	t.Parallel()

	m := New(WithChoices(testChoices()), WithCurrent("funnel"))
	m.Init()
	_, cmd := dialogtest.Update(t, m, dialogtest.KeyCode(tea.KeyEnter))
	msgs := dialogtest.Collect(t, cmd)
	if _, ok := dialogtest.Find[ActionMsg](msgs); ok {
		t.Fatalf("reselecting the current filter produced an action")
	}
	if !dialogtest.Closes(msgs) {
		t.Fatalf("dialog did not close")
	}
}

func TestFilterNoMatches(t *testing.T) {
	t.Parallel()

	m := New(WithChoices(testChoices()))
	m.Init()
	m, _ = dialogtest.Update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m = dialogtest.Type(t, m, "zzz")

	if _, cmd := dialogtest.Update(t, m, dialogtest.KeyCode(tea.KeyEnter)); cmd != nil {
		t.Fatalf("enter with no matches returned a command")
	}
	if !strings.Contains(ansi.Strip(m.View()), "no matching chart") {
		t.Fatalf("view missing empty message")
	}
}
