package chart

import "github.com/kpumuk/lazyplot/internal/mathutil"

func buildScatterCluster(in Input) Scene {
	labels := States
	xs := mathutil.ScaleAll(StateMurder, in.Factor)
	ys := mathutil.ScaleAll(StateAssault, in.Factor)
	colors := mathutil.ScaleAll(StateUrbanPop, in.Factor)
	xTitle, yTitle := "Murder rate", "Assault rate"

	if d, ok := in.Data.(Points); ok {
		labels = d.Labels
		xs = mathutil.ScaleAll(d.X, in.Factor)
		ys = mathutil.ScaleAll(d.Y, in.Factor)
		colors = ys
		xTitle, yTitle = "x", "y"
	}

	return Scene{
		Subtitle: "linkage: " + param(ScatterCluster, "linkage").Choice(in.Params),
		Series: []Series{{
			Name:        "States",
			Type:        SeriesMarkers,
			X:           xs,
			Y:           ys,
			Text:        append([]string(nil), labels...),
			ShowText:    true,
			ColorValues: colors,
			Marker:      Marker{Symbol: SymbolCircle, Size: 12},
		}},
		XAxis:    Axis{Title: xTitle},
		YAxis:    Axis{Title: yTitle},
		Palette:  PaletteForTheme(in.Theme),
		ColorBar: "Urban population",
	}
}
