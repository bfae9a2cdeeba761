package chart

import (
	"strconv"

	"github.com/kpumuk/lazyplot/internal/mathutil"
)

func buildStem(in Input) Scene {
	labels, values := StemLabels, StemValues
	if d, ok := in.Data.(LabelValues); ok {
		labels, values = d.Labels, d.Values
	}
	scaled := mathutil.ScaleAll(values, in.Factor)

	series := Series{
		Name:        "Fuel consumption",
		Type:        SeriesBar,
		Orientation: Vertical,
		Categories:  append([]string(nil), labels...),
		Y:           scaled,
		Color:       "#667EEA",
	}
	if param(Stem, "showValues").Bool(in.Params) {
		series.ShowText = true
		series.Text = make([]string, len(scaled))
		for i, v := range scaled {
			series.Text[i] = strconv.FormatFloat(v, 'f', 1, 64)
		}
	}

	return Scene{
		Series: []Series{series},
		XAxis:  Axis{Title: "Model"},
		YAxis:  Axis{Title: "Fuel consumption (L/100km)", Range: &Range{Min: 0, Max: max(mathutil.MaxFloat(scaled)*1.1, 1)}},
	}
}
