package charts

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

func TestPlaceLabels_DropsOverlaps(t *testing.T) {
	t.Parallel()

	got := PlaceLabels(12, []int{1, 2, 9}, []string{"ab", "cd", "ef"})
	if len([]rune(got)) != 12 {
		t.Fatalf("width = %d, want 12", len([]rune(got)))
	}
	if !strings.Contains(got, "ab") || strings.Contains(got, "cd") || !strings.Contains(got, "ef") {
		t.Fatalf("PlaceLabels = %q, want ab and ef without cd", got)
	}
}

func TestApplyYAxisLabels(t *testing.T) {
	t.Parallel()

	lines := []string{"x", "y"}
	got := ApplyYAxisLabels(lines, map[int]string{1: "10"}, 3, lipgloss.NewStyle())
	if ansi.Strip(got[1]) != " 10 y" {
		t.Fatalf("line = %q, want %q", ansi.Strip(got[1]), " 10 y")
	}
	if ansi.Strip(got[0]) != "    x" {
		t.Fatalf("line = %q, want %q", ansi.Strip(got[0]), "    x")
	}
}

func TestRenderCentered(t *testing.T) {
	t.Parallel()

	got := strings.Split(RenderCentered(5, 3, "hi"), "\n")
	if len(got) != 3 {
		t.Fatalf("lines = %d, want 3", len(got))
	}
	if !strings.Contains(got[1], "hi") {
		t.Fatalf("middle line = %q, want it to contain hi", got[1])
	}
}
