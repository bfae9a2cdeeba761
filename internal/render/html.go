package render

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/kpumuk/lazyplot/internal/chart"
)

// PageTitle is the title of the exported HTML page.
const PageTitle = "lazyplot dashboard"

// HTML writes an interactive page with one chart per scene.
func HTML(w io.Writer, scenes []chart.Scene) error {
	page := components.NewPage()
	page.PageTitle = PageTitle
	for _, s := range scenes {
		page.AddCharts(echart(s))
	}
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

func echart(s chart.Scene) components.Charter {
	switch {
	case isSankey(s):
		return sankeyChart(s)
	case s.Kind == chart.Funnel:
		return funnelChart(s)
	case hasSeries(s, chart.SeriesContour):
		return heatMapChart(s)
	case hasSeries(s, chart.SeriesBar):
		return barChart(s)
	default:
		return scatterChart(s)
	}
}

func hasSeries(s chart.Scene, t chart.SeriesType) bool {
	for _, series := range s.Series {
		if series.Type == t {
			return true
		}
	}
	return false
}

func globalOpts(s chart.Scene) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{Title: s.Title, Subtitle: s.Subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(s.ShowLegend), Top: "8%"}),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// tickFormatter is an ECharts axis label formatter. Exact tick values show
// their text; values between two numeric tick texts are interpolated, so
// mirrored axes keep showing magnitudes.
const tickFormatter = `function (value) {
	var vals = %s, text = %s;
	for (var i = 0; i < vals.length; i++) {
		if (Math.abs(vals[i] - value) <= 1e-9 * (1 + Math.abs(value))) { return text[i]; }
	}
	for (var i = 1; i < vals.length; i++) {
		if (value > vals[i - 1] && value < vals[i]) {
			var a = Number(text[i - 1]), b = Number(text[i]);
			if (isNaN(a) || isNaN(b)) { return ''; }
			var t = (value - vals[i - 1]) / (vals[i] - vals[i - 1]);
			return String(Math.round((a + (b - a) * t) * 100) / 100);
		}
	}
	return '';
}`

// tickLabel returns axis label options that render the custom ticks of a,
// or nil when a has none.
func tickLabel(a chart.Axis) *opts.AxisLabel {
	if len(a.TickVals) == 0 || len(a.TickText) < len(a.TickVals) {
		return nil
	}
	type tick struct {
		val  float64
		text string
	}
	ticks := make([]tick, len(a.TickVals))
	for i, v := range a.TickVals {
		ticks[i] = tick{val: v, text: a.TickText[i]}
	}
	slices.SortStableFunc(ticks, func(x, y tick) int { return cmp.Compare(x.val, y.val) })
	vals := make([]float64, len(ticks))
	text := make([]string, len(ticks))
	for i, t := range ticks {
		vals[i], text[i] = t.val, t.text
	}
	v, err := json.Marshal(vals)
	if err != nil {
		return nil
	}
	return &opts.AxisLabel{
		Show:      opts.Bool(true),
		Formatter: opts.FuncOpts(fmt.Sprintf(tickFormatter, v, jsStrings(text))),
	}
}

// jsStrings renders values as a JavaScript array of single-quoted strings.
// Function options are embedded in JSON, where double quotes would stay
// escaped.
func jsStrings(values []string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", " ", "\t", " ")
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + r.Replace(v) + "'"
	}
	return "[" + strings.Join(quoted, ",") + "]"
}

func barChart(s chart.Scene) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOpts(s)...)

	// Axis options replace the whole axis, so they go in before SetXAxis
	// fills the category data. Horizontal bars keep the value axis on X and
	// swap on render.
	if hasHorizontalBars(s) {
		bar.SetGlobalOptions(charts.WithXAxisOpts(opts.XAxis{Name: s.XAxis.Title, AxisLabel: tickLabel(s.XAxis)}))
	} else {
		bar.SetGlobalOptions(charts.WithYAxisOpts(opts.YAxis{Name: s.YAxis.Title, AxisLabel: tickLabel(s.YAxis)}))
	}

	horizontal := false
	for _, series := range s.Series {
		if series.Type != chart.SeriesBar {
			continue
		}
		horizontal = series.Orientation == chart.Horizontal
		bar.SetXAxis(series.Categories)
		values := series.Y
		if horizontal {
			values = series.X
		}

		if len(series.Base) > 0 {
			base := make([]opts.BarData, len(series.Base))
			for i, v := range series.Base {
				base[i] = opts.BarData{Value: round2(v)}
			}
			bar.AddSeries("", base,
				charts.WithBarChartOpts(opts.BarChart{Stack: "total"}),
				charts.WithItemStyleOpts(opts.ItemStyle{Color: "transparent"}),
			)
		}

		data := make([]opts.BarData, len(values))
		for i, v := range values {
			data[i] = opts.BarData{Value: round2(v)}
			if c := pick(series.Colors, i, ""); c != "" {
				data[i].ItemStyle = &opts.ItemStyle{Color: c}
			}
		}
		seriesOpts := []charts.SeriesOpts{charts.WithBarChartOpts(opts.BarChart{Stack: "total"})}
		if series.Color != "" {
			seriesOpts = append(seriesOpts, charts.WithItemStyleOpts(opts.ItemStyle{Color: series.Color}))
		}
		if series.ShowText {
			seriesOpts = append(seriesOpts, charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}))
		}
		bar.AddSeries(series.Name, data, seriesOpts...)
	}
	if horizontal {
		bar.XYReversal()
	}
	return bar
}

func hasHorizontalBars(s chart.Scene) bool {
	for _, series := range s.Series {
		if series.Type == chart.SeriesBar && series.Orientation == chart.Horizontal {
			return true
		}
	}
	return false
}

func funnelChart(s chart.Scene) *charts.Funnel {
	funnel := charts.NewFunnel()
	funnel.SetGlobalOptions(globalOpts(s)...)
	for _, series := range s.Series {
		data := make([]opts.FunnelData, 0, len(series.X))
		for i, v := range series.X {
			name := ""
			if i < len(series.Categories) {
				name = series.Categories[i]
			}
			data = append(data, opts.FunnelData{Name: name, Value: round2(v)})
		}
		funnel.AddSeries(series.Name, data)
	}
	return funnel
}

func heatMapChart(s chart.Scene) *charts.HeatMap {
	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(globalOpts(s)...)

	for _, series := range s.Series {
		if series.Type != chart.SeriesContour {
			continue
		}
		xs := make([]string, len(series.X))
		for i, x := range series.X {
			xs[i] = fmt.Sprintf("%.2f", x)
		}
		ys := make([]string, len(series.Y))
		for i, y := range series.Y {
			ys[i] = fmt.Sprintf("%.2f", y)
		}
		lo, hi := math.Inf(1), math.Inf(-1)
		var data []opts.HeatMapData
		for i, row := range series.Z {
			for j, z := range row {
				lo, hi = min(lo, z), max(hi, z)
				data = append(data, opts.HeatMapData{Value: [3]any{j, i, round2(z)}})
			}
		}
		if len(data) == 0 {
			lo, hi = 0, 1
		}
		hm.SetGlobalOptions(
			charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: xs}),
			charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: ys}),
			charts.WithVisualMapOpts(opts.VisualMap{
				Calculable: opts.Bool(true),
				Min:        float32(lo),
				Max:        float32(hi),
				Text:       []string{s.ColorBar},
				InRange:    &opts.VisualMapInRange{Color: chart.Palette(s.Palette)},
			}),
		)
		hm.SetXAxis(xs)
		hm.AddSeries(series.Name, data)
	}
	return hm
}

func sankeyChart(s chart.Scene) *charts.Sankey {
	sankey := charts.NewSankey()
	sankey.SetGlobalOptions(globalOpts(s)...)
	series := s.Series[0]
	nodes := make([]opts.SankeyNode, len(series.Nodes))
	for i, name := range series.Nodes {
		nodes[i] = opts.SankeyNode{Name: name}
	}
	var links []opts.SankeyLink
	for _, l := range series.Links {
		if l.Source < 0 || l.Source >= len(nodes) || l.Target < 0 || l.Target >= len(nodes) {
			continue
		}
		links = append(links, opts.SankeyLink{
			Source: series.Nodes[l.Source],
			Target: series.Nodes[l.Target],
			Value:  float32(l.Value),
		})
	}
	sankey.AddSeries("flow", nodes, links, charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}))
	return sankey
}

func scatterChart(s chart.Scene) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(globalOpts(s)...)
	xr, yr := s.Bounds()
	scatter.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value", Name: s.XAxis.Title,
			Min: round2(xr.Min), Max: round2(xr.Max),
			AxisLabel: tickLabel(s.XAxis),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value", Name: s.YAxis.Title,
			Min: round2(yr.Min), Max: round2(yr.Max),
			AxisLabel: tickLabel(s.YAxis),
		}),
	)

	var line *charts.Line
	for _, series := range s.Series {
		n := min(len(series.X), len(series.Y))
		if series.LegendOnly || n == 0 {
			continue
		}
		switch series.Type {
		case chart.SeriesLine:
			if line == nil {
				line = charts.NewLine()
			}
			data := make([]opts.LineData, n)
			for i := range n {
				data[i] = opts.LineData{Value: []float64{round2(series.X[i]), round2(series.Y[i])}}
			}
			var seriesOpts []charts.SeriesOpts
			if series.Color != "" {
				seriesOpts = append(seriesOpts,
					charts.WithItemStyleOpts(opts.ItemStyle{Color: series.Color}),
					charts.WithLineStyleOpts(opts.LineStyle{Color: series.Color}),
				)
			}
			line.AddSeries(series.Name, data, seriesOpts...)
		case chart.SeriesMarkers:
			data := make([]opts.ScatterData, n)
			for i := range n {
				data[i] = opts.ScatterData{Value: []float64{round2(series.X[i]), round2(series.Y[i])}}
				if i < len(series.Text) {
					data[i].Name = series.Text[i]
				}
			}
			var seriesOpts []charts.SeriesOpts
			if series.Color != "" {
				seriesOpts = append(seriesOpts, charts.WithItemStyleOpts(opts.ItemStyle{Color: series.Color}))
			}
			scatter.AddSeries(series.Name, data, seriesOpts...)
		}
	}
	if line != nil {
		scatter.Overlap(line)
	}
	return scatter
}
