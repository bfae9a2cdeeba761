package chart

import "github.com/kpumuk/lazyplot/internal/mathutil"

func buildDumbbell(in Input) Scene {
	cities, v2013, v2014 := DumbbellCities, Dumbbell2013, Dumbbell2014
	if d, ok := in.Data.(Cohorts); ok {
		cities, v2013, v2014 = d.Labels, d.Values2013, d.Values2014
	}
	s2013 := mathutil.ScaleAll(v2013, in.Factor)
	s2014 := mathutil.ScaleAll(v2014, in.Factor)
	ys := indexes(len(cities))

	series := make([]Series, 0, len(cities)+2)
	for i := range cities {
		series = append(series, Series{
			Type:  SeriesLine,
			X:     []float64{s2013[i], s2014[i]},
			Y:     []float64{float64(i), float64(i)},
			Color: "#87CEEB",
			Width: 4,
		})
	}
	series = append(series,
		Series{
			Name:       "2014",
			Type:       SeriesMarkers,
			X:          s2014,
			Y:          ys,
			Text:       cities,
			Color:      "#0E668B",
			Marker:     Marker{Symbol: SymbolCircle, Size: 12},
			ShowLegend: true,
		},
		Series{
			Name:       "2013",
			Type:       SeriesMarkers,
			X:          s2013,
			Y:          ys,
			Text:       cities,
			Color:      "#A3C4DC",
			Marker:     Marker{Symbol: SymbolCircle, Size: 12},
			ShowLegend: true,
		},
	)

	return Scene{
		Series: series,
		XAxis: Axis{
			Title:    "Change rate",
			Range:    &Range{Min: 0, Max: max(0.25, mathutil.MaxFloat(s2014)*1.1)},
			TickVals: []float64{0.05, 0.10, 0.15, 0.20, 0.25},
			TickText: []string{"5%", "10%", "15%", "20%", "25%"},
		},
		YAxis: Axis{
			Range:    &Range{Min: -0.5, Max: float64(len(cities)) - 0.5},
			TickVals: ys,
			TickText: append([]string(nil), cities...),
		},
		ShowLegend: true,
	}
}
