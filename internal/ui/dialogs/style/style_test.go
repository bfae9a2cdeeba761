package style

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/kpumuk/lazyplot/internal/preset"
	"github.com/kpumuk/lazyplot/internal/ui/dialogs"
	"github.com/kpumuk/lazyplot/internal/ui/dialogs/confirm"
	"github.com/kpumuk/lazyplot/internal/ui/dialogs/dialogtest"
)

func TestStyleRoundTrip(t *testing.T) {
	t.Parallel()

	p := preset.Default()
	p.ColorScheme = "pastel"
	p.ShadowEffect = false
	m := New(p)

	got, err := m.Preset()
	if err != nil {
		t.Fatalf("Preset() error = %v", err)
	}
	if got != p {
		t.Fatalf("Preset() = %+v, want %+v", got, p)
	}
}

func TestStyleEnterApplies(t *testing.T) {
	t.Parallel()

	m := New(preset.Default())
	m.Init()
	// Move to the colour scheme and step it forward.
	for range 3 {
		m, _ = dialogtest.Update(t, m, dialogtest.KeyCode(tea.KeyDown))
	}
	m, _ = dialogtest.Update(t, m, dialogtest.KeyCode(tea.KeyRight))

	_, cmd := dialogtest.Update(t, m, dialogtest.KeyCode(tea.KeyEnter))
	action, ok := dialogtest.Find[ActionMsg](dialogtest.Collect(t, cmd))
	if !ok || action.Action != ActionApply {
		t.Fatalf("ActionMsg = %+v, %v, want apply", action, ok)
	}
	if action.Preset.ColorScheme != "pastel" {
		t.Fatalf("ColorScheme = %q, want pastel", action.Preset.ColorScheme)
	}
}

func TestStyleAdjustFields(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		down  int
		key   tea.Msg
		check func(preset.Preset) bool
	}{
		"title size up":  {down: 5, key: dialogtest.KeyCode(tea.KeyRight), check: func(p preset.Preset) bool { return p.TitleSize == 19 }},
		"spacing down":   {down: 8, key: dialogtest.KeyCode(tea.KeyLeft), check: func(p preset.Preset) bool { return p.ChartSpacing == 19 }},
		"shadow toggles": {down: 10, key: dialogtest.KeyCode(tea.KeySpace), check: func(p preset.Preset) bool { return !p.ShadowEffect }},
		"weight wraps":   {down: 7, key: dialogtest.KeyCode(tea.KeyLeft), check: func(p preset.Preset) bool { return p.FontWeight == "bold" }},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			m := New(preset.Default())
			m.Init()
			for range tc.down {
				m, _ = dialogtest.Update(t, m, dialogtest.KeyCode(tea.KeyDown))
			}
			m, _ = dialogtest.Update(t, m, tc.key)
			p, err := m.Preset()
			if err != nil {
				t.Fatalf("Preset() error = %v", err)
			}
			if !tc.check(p) {
				t.Fatalf("Preset() = %+v", p)
			}
		})
	}
}

func TestStyleInvalidColour(t *testing.T) {
	t.Parallel()

	m := New(preset.Default())
	m.Init()
	m, _ = dialogtest.Update(t, m, dialogtest.KeyCode(tea.KeyBackspace))
	m = dialogtest.Type(t, m, "Z")

	if _, cmd := dialogtest.Update(t, m, dialogtest.KeyCode(tea.KeyEnter)); cmd != nil {
		t.Fatalf("invalid colour produced a command")
	}
	if m.err == nil || !strings.Contains(m.err.Error(), "themeColor") {
		t.Fatalf("err = %v, want themeColor error", m.err)
	}
}

func TestStyleActionButtons(t *testing.T) {
	t.Parallel()

	m := New(preset.Default())
	m.Init()
	// Up from the first field wraps to the button row.
	m, _ = dialogtest.Update(t, m, dialogtest.KeyCode(tea.KeyUp))

	m, _ = dialogtest.Update(t, m, dialogtest.KeyCode(tea.KeyRight))
	_, cmd := dialogtest.Update(t, m, dialogtest.KeyCode(tea.KeyEnter))
	action, _ := dialogtest.Find[ActionMsg](dialogtest.Collect(t, cmd))
	if action.Action != ActionSave || action.Preset != preset.Default() {
		t.Fatalf("ActionMsg = %+v, want save with defaults", action)
	}

	m, _ = dialogtest.Update(t, m, dialogtest.KeyCode(tea.KeyRight))
	_, cmd = dialogtest.Update(t, m, dialogtest.KeyCode(tea.KeyEnter))
	action, _ = dialogtest.Find[ActionMsg](dialogtest.Collect(t, cmd))
	if action.Action != ActionLoad {
		t.Fatalf("ActionMsg = %+v, want load", action)
	}

	m, _ = dialogtest.Update(t, m, dialogtest.KeyCode(tea.KeyRight))
	_, cmd = dialogtest.Update(t, m, dialogtest.KeyCode(tea.KeyEnter))
	open, ok := dialogtest.Find[dialogs.OpenDialogMsg](dialogtest.Collect(t, cmd))
	if !ok || open.Model.ID() != confirm.DialogID {
		t.Fatalf("reset did not ask for confirmation: %+v", open)
	}
}

func TestStyleSetPreset(t *testing.T) {
	t.Parallel()

	m := New(preset.Default())
	loaded := preset.Default()
	loaded.ThemeColor = "#FF0000"
	loaded.FontFamily = "Georgia"
	m, _ = dialogtest.Update(t, m, SetPresetMsg{Preset: loaded})

	got, err := m.Preset()
	if err != nil || got != loaded {
		t.Fatalf("Preset() = %+v, %v, want %+v", got, err, loaded)
	}
}

func TestStyleView(t *testing.T) {
	t.Parallel()

	m := New(preset.Default())
	m.Init()
	m, _ = dialogtest.Update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	view := ansi.Strip(m.View())
	for _, want := range []string{"Style", "Theme colour", "#667EEA", "‹ default ›", "[ Apply ]", "[ Reset ]"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}
