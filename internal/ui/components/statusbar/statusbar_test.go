package statusbar

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

func testStyles() Styles {
	return Styles{
		Bar:       lipgloss.NewStyle().Padding(0, 1),
		Label:     lipgloss.NewStyle(),
		Value:     lipgloss.NewStyle(),
		Separator: lipgloss.NewStyle(),
	}
}

func testData() Data {
	return Data{
		Factor:  87.5,
		Theme:   "pastel",
		Filter:  "all",
		Style:   "default",
		Visible: 10,
		Total:   10,
	}
}

func TestViewDimensions(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		width     int
		wantEmpty bool
	}{
		"zero width": {width: 0, wantEmpty: true},
		"narrow":     {width: 30},
		"wide":       {width: 140},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			m := New(WithStyles(testStyles()), WithWidth(tc.width), WithData(testData()))
			output := m.View()
			if tc.wantEmpty {
				if output != "" {
					t.Fatalf("View() = %q, want empty", output)
				}
				return
			}
			if strings.Contains(output, "\n") {
				t.Fatalf("View() wrapped: %q", output)
			}
			if w := ansi.StringWidth(output); w != tc.width {
				t.Fatalf("width = %d, want %d", w, tc.width)
			}
		})
	}
}

func TestViewContent(t *testing.T) {
	t.Parallel()

	m := New(WithStyles(testStyles()), WithWidth(160), WithBrand("lazyplot"), WithData(testData()))
	plain := ansi.Strip(m.View())
	for _, want := range []string{"lazyplot", "Scale: 87.5%", "Theme: pastel", "Filter: all", "Style: default", "Charts: 10/10"} {
		if !strings.Contains(plain, want) {
			t.Fatalf("View() = %q, missing %q", plain, want)
		}
	}
	if strings.Contains(plain, "Drop mode") || strings.Contains(plain, "Loading") {
		t.Fatalf("View() = %q, shows inactive flags", plain)
	}

	data := testData()
	data.DragDrop = true
	data.Loading = true
	m.SetData(data)
	plain = ansi.Strip(m.View())
	if !strings.Contains(plain, "Drop mode") || !strings.Contains(plain, "Loading…") {
		t.Fatalf("View() = %q, missing active flags", plain)
	}
}
