package chart

import (
	"math"

	"github.com/kpumuk/lazyplot/internal/mathutil"
)

// Themes lists the selectable colour schemes in cycle order.
var Themes = []string{"default", "pastel", "vibrant", "monochrome", "rainbow"}

// DefaultTheme is the theme selected at startup and after a style reset.
const DefaultTheme = "default"

// ContourPalette is the fixed colour scale of the contour chart.
const ContourPalette = "Slate"

var palettes = map[string][]string{
	"Copper":  {"#000000", "#4D3020", "#9A6040", "#E89060", "#FFC77F"},
	"Pastel":  {"#FBB4AE", "#B3CDE3", "#CCEBC5", "#DECBE4", "#FED9A6", "#FFFFCC"},
	"Viridis": {"#440154", "#3B528B", "#21908C", "#5DC963", "#FDE725"},
	"Greys":   {"#000000", "#525252", "#969696", "#D9D9D9", "#FFFFFF"},
	"Rainbow": {"#96005A", "#0000C8", "#0019FF", "#0098FF", "#2CFF96", "#97FF00", "#FFEA00", "#FF6F00", "#FF0000"},
	"Slate":   {"#2C3E50", "#34495E", "#7F8C8D", "#95A5A6", "#BDC3C7", "#ECF0F1"},
}

// PaletteForTheme maps a theme name to its colour scale. Unknown themes use
// Copper.
func PaletteForTheme(theme string) string {
	switch theme {
	case "pastel":
		return "Pastel"
	case "vibrant":
		return "Viridis"
	case "monochrome":
		return "Greys"
	case "rainbow":
		return "Rainbow"
	default:
		return "Copper"
	}
}

// Palette returns the colour stops of a named scale, defaulting to Copper.
func Palette(name string) []string {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes["Copper"]
}

// ColorAt returns the stop nearest to t in [0,1] on the named scale.
func ColorAt(name string, t float64) string {
	stops := Palette(name)
	if math.IsNaN(t) {
		t = 0
	}
	t = mathutil.Clamp(t, 0, 1)
	return stops[int(math.Round(t*float64(len(stops)-1)))]
}

// Normalize maps v into [0,1] relative to [lo, hi].
func Normalize(v, lo, hi float64) float64 {
	if hi <= lo {
		return 0
	}
	return (v - lo) / (hi - lo)
}

// Categorical is the colour cycle for unordered categories such as sankey
// nodes.
var Categorical = []string{"#1F77B4", "#FF7F0E", "#2CA02C", "#D62728", "#9467BD", "#8C564B", "#E377C2", "#7F7F7F", "#BCBD22", "#17BECF"}

// CategoricalColor returns the colour of category i.
func CategoricalColor(i int) string {
	return Categorical[((i%len(Categorical))+len(Categorical))%len(Categorical)]
}
