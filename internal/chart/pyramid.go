package chart

import (
	"strconv"

	"github.com/kpumuk/lazyplot/internal/mathutil"
)

var pyramidTicks = []float64{-100000, -75000, -50000, -25000, 0, 25000, 50000, 75000, 100000}

func buildPyramid(in Input) Scene {
	groups := min(max(param(Pyramid, "ageGroups").Int(in.Params), 1), len(PyramidLabels))
	labels := append([]string(nil), PyramidLabels[:groups]...)
	male := mathutil.ScaleAll(PyramidMale[:groups], in.Factor)
	female := mathutil.ScaleAll(PyramidFemale[:groups], in.Factor)

	negMale := make([]float64, len(male))
	for i, v := range male {
		negMale[i] = -v
	}

	f := in.Factor / 100
	tickVals := make([]float64, len(pyramidTicks))
	tickText := make([]string, len(pyramidTicks))
	for i, t := range pyramidTicks {
		tickVals[i] = t * f
		tickText[i] = strconv.FormatFloat(abs(t), 'f', -1, 64)
	}
	limit := 100000 * f

	return Scene{
		Series: []Series{
			{
				Name:        "Male",
				Type:        SeriesBar,
				Orientation: Horizontal,
				Categories:  labels,
				X:           negMale,
				Custom:      male,
				Color:       "#6699FF",
				ShowLegend:  true,
			},
			{
				Name:        "Female",
				Type:        SeriesBar,
				Orientation: Horizontal,
				Categories:  labels,
				X:           female,
				Custom:      female,
				Color:       "#CC6699",
				ShowLegend:  true,
			},
		},
		XAxis: Axis{
			Title:    "Population",
			Range:    &Range{Min: -limit, Max: limit},
			TickVals: tickVals,
			TickText: tickText,
		},
		YAxis:      Axis{Title: "Age group", TickVals: indexes(groups), TickText: labels},
		ShowLegend: true,
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
