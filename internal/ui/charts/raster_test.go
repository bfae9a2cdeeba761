package charts

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/kpumuk/lazyplot/internal/chart"
)

func rasterLines(t *testing.T, scene chart.Scene, width, height int) []string {
	t.Helper()
	out := ansi.Strip(Raster(scene, width, height, DefaultStyles()))
	return strings.Split(out, "\n")
}

func TestRaster_AllKindsFitArea(t *testing.T) {
	t.Parallel()

	for _, k := range chart.Kinds() {
		t.Run(k.ID(), func(t *testing.T) {
			t.Parallel()
			scene := chart.MustBuild(k, chart.Input{Factor: 100})
			lines := rasterLines(t, scene, 60, 16)
			if len(lines) != 16 {
				t.Fatalf("lines = %d, want 16", len(lines))
			}
			for i, line := range lines {
				if w := ansi.StringWidth(line); w > 60 {
					t.Fatalf("line %d width = %d, want <= 60", i, w)
				}
			}
		})
	}
}

func TestRaster_TooSmall(t *testing.T) {
	t.Parallel()

	scene := chart.MustBuild(chart.Stem, chart.Input{Factor: 100})
	out := ansi.Strip(Raster(scene, 4, 2, DefaultStyles()))
	if strings.TrimSpace(out) != "" {
		t.Fatalf("Raster = %q, want blank", out)
	}
}

func TestRaster_StemShowsCategories(t *testing.T) {
	t.Parallel()

	scene := chart.MustBuild(chart.Stem, chart.Input{Factor: 100})
	out := strings.Join(rasterLines(t, scene, 120, 20), "\n")
	if !strings.Contains(out, chart.StemLabels[0]) {
		t.Fatalf("Raster missing category %q:\n%s", chart.StemLabels[0], out)
	}
	if !strings.Contains(out, "█") {
		t.Fatalf("Raster missing bars:\n%s", out)
	}
}

func TestRaster_FunnelShowsStages(t *testing.T) {
	t.Parallel()

	scene := chart.MustBuild(chart.Funnel, chart.Input{Factor: 100})
	out := strings.Join(rasterLines(t, scene, 100, 20), "\n")
	for _, stage := range chart.FunnelStages {
		if !strings.Contains(out, stage) {
			t.Fatalf("Raster missing stage %q:\n%s", stage, out)
		}
	}
}

func TestRaster_SankeyLabelsNodes(t *testing.T) {
	t.Parallel()

	scene := chart.MustBuild(chart.Sankey, chart.Input{Factor: 100})
	out := strings.Join(rasterLines(t, scene, 160, 30), "\n")
	if !strings.Contains(out, "█") {
		t.Fatalf("Raster missing nodes:\n%s", out)
	}
}

func TestLegend(t *testing.T) {
	t.Parallel()

	scene := chart.Scene{Series: []chart.Series{
		{Name: "2013", ShowLegend: true},
		{Name: "hidden"},
	}}
	got := ansi.Strip(Legend(scene, 80, DefaultStyles()))
	if got != "■ 2013" {
		t.Fatalf("Legend = %q, want %q", got, "■ 2013")
	}
	if Legend(chart.Scene{}, 80, DefaultStyles()) != "" {
		t.Fatal("Legend of empty scene should be blank")
	}
}

func TestMarkerRune(t *testing.T) {
	t.Parallel()

	tests := []struct {
		marker chart.Marker
		want   rune
	}{
		{chart.Marker{}, '●'},
		{chart.Marker{Symbol: chart.SymbolSquare}, '■'},
		{chart.Marker{Symbol: chart.SymbolTriangle, Angle: 0}, '→'},
		{chart.Marker{Symbol: chart.SymbolTriangle, Angle: 90}, '↑'},
		{chart.Marker{Symbol: chart.SymbolTriangle, Angle: -90}, '↓'},
	}
	for _, tt := range tests {
		if got := markerRune(tt.marker); got != tt.want {
			t.Fatalf("markerRune(%+v) = %q, want %q", tt.marker, got, tt.want)
		}
	}
}
