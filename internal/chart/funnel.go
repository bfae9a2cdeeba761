package chart

import (
	"fmt"
	"strconv"

	"github.com/kpumuk/lazyplot/internal/mathutil"
)

func buildFunnel(in Input) Scene {
	stages, values := FunnelStages, FunnelValues
	if d, ok := in.Data.(LabelValues); ok {
		stages, values = d.Labels, d.Values
	}
	scaled := mathutil.ScaleAll(values, in.Factor)

	text := make([]string, len(scaled))
	colors := make([]string, len(scaled))
	for i, v := range scaled {
		text[i] = fmt.Sprintf("%s (%s%%)", strconv.FormatFloat(v, 'f', -1, 64), Percent(v, scaled[0]))
		colors[i] = hsl(200+float64(i)*20, 0.7, min(0.5+float64(i)*0.08, 0.9))
	}

	return Scene{
		Series: []Series{{
			Name:        "Customers",
			Type:        SeriesBar,
			Orientation: Horizontal,
			Categories:  append([]string(nil), stages...),
			X:           scaled,
			Text:        text,
			ShowText:    true,
			Colors:      colors,
		}},
		XAxis: Axis{Title: "Customers", Range: &Range{Min: 0, Max: max(mathutil.MaxFloat(scaled)*1.1, 1)}},
		YAxis: Axis{TickVals: indexes(len(stages)), TickText: append([]string(nil), stages...)},
	}
}

// Percent formats part/whole*100 with one decimal. A zero whole yields "0.0".
func Percent(part, whole float64) string {
	if whole == 0 {
		return "0.0"
	}
	return strconv.FormatFloat(part/whole*100, 'f', 1, 64)
}
