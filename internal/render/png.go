package render

import (
	"bytes"
	"fmt"
	"math"
	"slices"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/kpumuk/lazyplot/internal/chart"
)

var defaultColor = drawing.ColorFromHex("667EEA")

// PNG renders scene as a PNG image of ExportWidth×ExportHeight multiplied by
// scale.
func PNG(scene chart.Scene, scale int) ([]byte, error) {
	scale = max(scale, 1)
	xr, yr := scene.Bounds()
	sankey := isSankey(scene)
	if sankey {
		xr, yr = sankeyRanges(scene.Series[0])
	}
	p := &painter{scene: scene, xr: xr, yr: yr, scale: float64(scale)}

	axisStyle := gochart.Style{FontSize: 9 * p.scale, Hidden: sankey}
	graph := gochart.Chart{
		Title:      title(scene),
		TitleStyle: gochart.Style{FontSize: 14 * p.scale},
		Width:      ExportWidth * scale,
		Height:     ExportHeight * scale,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 60 * scale, Left: 20 * scale, Right: 20 * scale, Bottom: 20 * scale},
		},
		XAxis: gochart.XAxis{
			Name:  scene.XAxis.Title,
			Style: axisStyle,
			Range: &gochart.ContinuousRange{Min: xr.Min, Max: xr.Max},
			Ticks: p.xTicks(),
		},
		YAxis: gochart.YAxis{
			Name:  scene.YAxis.Title,
			Style: axisStyle,
			Range: &gochart.ContinuousRange{Min: yr.Min, Max: yr.Max},
			Ticks: p.yTicks(),
		},
		Series: p.series(),
	}
	graph.Elements = []gochart.Renderable{p.shapes, p.legend}

	var buf bytes.Buffer
	if err := graph.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", scene.Kind.Slot(), err)
	}
	return buf.Bytes(), nil
}

func title(scene chart.Scene) string {
	if scene.Subtitle == "" {
		return scene.Title
	}
	return scene.Title + " (" + scene.Subtitle + ")"
}

func isSankey(scene chart.Scene) bool {
	return len(scene.Series) > 0 && scene.Series[0].Type == chart.SeriesSankey
}

func sankeyRanges(s chart.Series) (chart.Range, chart.Range) {
	depths := chart.SankeyDepths(len(s.Nodes), s.Links)
	columns := 1
	if len(depths) > 0 {
		columns = slices.Max(depths) + 1
	}
	return chart.Range{Min: -0.2, Max: float64(columns) - 0.2}, chart.Range{Min: 0, Max: 1}
}

func hexColor(hex string, fallback drawing.Color) drawing.Color {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return fallback
	}
	return drawing.ColorFromHex(hex)
}

type painter struct {
	scene    chart.Scene
	xr, yr   chart.Range
	scale    float64
	box      gochart.Box
	defaults gochart.Style
}

func (p *painter) xTicks() []gochart.Tick {
	for _, s := range p.scene.Series {
		if s.Type == chart.SeriesBar && s.Orientation != chart.Horizontal {
			return categoryTicks(s.Categories)
		}
	}
	return axisTicks(p.scene.XAxis)
}

func (p *painter) yTicks() []gochart.Tick {
	for _, s := range p.scene.Series {
		if s.Type == chart.SeriesBar && s.Orientation == chart.Horizontal {
			return categoryTicks(s.Categories)
		}
	}
	return axisTicks(p.scene.YAxis)
}

func categoryTicks(categories []string) []gochart.Tick {
	if len(categories) == 0 {
		return nil
	}
	ticks := make([]gochart.Tick, len(categories))
	for i, c := range categories {
		ticks[i] = gochart.Tick{Value: float64(i), Label: c}
	}
	return ticks
}

// axisTicks returns the custom ticks of a, or nil when they do not span a
// range; go-chart derives the axis range from custom ticks.
func axisTicks(a chart.Axis) []gochart.Tick {
	if len(a.TickVals) == 0 || len(a.TickText) < len(a.TickVals) {
		return nil
	}
	if slices.Min(a.TickVals) == slices.Max(a.TickVals) {
		return nil
	}
	ticks := make([]gochart.Tick, len(a.TickVals))
	for i, v := range a.TickVals {
		ticks[i] = gochart.Tick{Value: v, Label: a.TickText[i]}
	}
	return ticks
}

func (p *painter) series() []gochart.Series {
	// go-chart refuses to render without a visible series.
	out := []gochart.Series{gochart.ContinuousSeries{
		XValues: []float64{p.xr.Min, p.xr.Max},
		YValues: []float64{p.yr.Min, p.yr.Min},
		Style:   gochart.Style{StrokeColor: drawing.ColorTransparent, StrokeWidth: 1},
	}}
	for _, s := range p.scene.Series {
		n := min(len(s.X), len(s.Y))
		if s.LegendOnly || n == 0 {
			continue
		}
		switch s.Type {
		case chart.SeriesLine:
			width := s.Width
			if width <= 0 {
				width = 1.5
			}
			out = append(out, gochart.ContinuousSeries{
				Name:    s.Name,
				XValues: s.X[:n],
				YValues: s.Y[:n],
				Style:   gochart.Style{StrokeColor: hexColor(s.Color, defaultColor), StrokeWidth: width * p.scale},
			})
		case chart.SeriesMarkers:
			size := s.Marker.Size
			if size <= 0 {
				size = 8
			}
			style := gochart.Style{
				StrokeWidth: gochart.Disabled,
				DotWidth:    size / 2 * p.scale,
				DotColor:    hexColor(s.Color, defaultColor),
			}
			if len(s.ColorValues) > 0 || len(s.Colors) > 0 {
				style.DotColorProvider = p.dotColors(s)
			}
			out = append(out, gochart.ContinuousSeries{Name: s.Name, XValues: s.X[:n], YValues: s.Y[:n], Style: style})
		}
	}
	if len(p.scene.Annotations) > 0 {
		values := make([]gochart.Value2, len(p.scene.Annotations))
		for i, a := range p.scene.Annotations {
			values[i] = gochart.Value2{XValue: a.X, YValue: a.Y, Label: a.Text}
		}
		out = append(out, gochart.AnnotationSeries{
			Annotations: values,
			Style:       gochart.Style{FontSize: 10 * p.scale},
		})
	}
	return out
}

func (p *painter) dotColors(s chart.Series) gochart.DotColorProvider {
	lo, hi := 0.0, 0.0
	if len(s.ColorValues) > 0 {
		lo, hi = slices.Min(s.ColorValues), slices.Max(s.ColorValues)
	}
	fallback := hexColor(s.Color, defaultColor)
	return func(_, _ gochart.Range, index int, _, _ float64) drawing.Color {
		if index < len(s.ColorValues) {
			return hexColor(chart.ColorAt(p.scene.Palette, chart.Normalize(s.ColorValues[index], lo, hi)), fallback)
		}
		if index < len(s.Colors) {
			return hexColor(s.Colors[index], fallback)
		}
		return fallback
	}
}

func (p *painter) px(v float64) int {
	return p.box.Left + int(math.Round(chart.Normalize(v, p.xr.Min, p.xr.Max)*float64(p.box.Width())))
}

func (p *painter) py(v float64) int {
	return p.box.Bottom - int(math.Round(chart.Normalize(v, p.yr.Min, p.yr.Max)*float64(p.box.Height())))
}

func (p *painter) shapes(r gochart.Renderer, box gochart.Box, defaults gochart.Style) {
	p.box, p.defaults = box, defaults
	for _, s := range p.scene.Series {
		switch {
		case s.Type == chart.SeriesContour:
			p.contour(r, s)
		case s.Type == chart.SeriesSankey:
			p.sankey(r, s)
		case s.Type == chart.SeriesBar && s.Orientation == chart.Horizontal:
			p.hbars(r, s)
		case s.Type == chart.SeriesBar:
			p.columns(r, s)
		case s.Type == chart.SeriesMarkers && s.ShowText:
			for i := range min(len(s.X), len(s.Y), len(s.Text)) {
				p.text(r, s.Text[i], p.px(s.X[i]), p.py(s.Y[i])-int(10*p.scale), 8, drawing.ColorBlack)
			}
		}
	}
}

func (p *painter) rect(r gochart.Renderer, x0, y0, x1, y1 int, c drawing.Color) {
	r.SetFillColor(c)
	r.SetStrokeWidth(0)
	r.MoveTo(x0, y0)
	r.LineTo(x1, y0)
	r.LineTo(x1, y1)
	r.LineTo(x0, y1)
	r.Close()
	r.Fill()
}

func (p *painter) text(r gochart.Renderer, body string, x, y int, size float64, c drawing.Color) {
	if body == "" || p.defaults.Font == nil {
		return
	}
	r.SetFont(p.defaults.Font)
	r.SetFontSize(size * p.scale)
	r.SetFontColor(c)
	tb := r.MeasureText(body)
	r.Text(body, x-tb.Width()/2, y+tb.Height()/2)
}

func (p *painter) contour(r gochart.Renderer, s chart.Series) {
	if len(s.X) < 2 || len(s.Y) < 2 || len(s.Z) < len(s.Y) {
		return
	}
	zmin, zmax := math.Inf(1), math.Inf(-1)
	for _, row := range s.Z {
		for _, z := range row {
			zmin, zmax = min(zmin, z), max(zmax, z)
		}
	}
	levels := max(p.scene.Levels, 1)
	dx := (s.X[len(s.X)-1] - s.X[0]) / float64(len(s.X)-1) / 2
	dy := (s.Y[len(s.Y)-1] - s.Y[0]) / float64(len(s.Y)-1) / 2
	for i, y := range s.Y {
		for j, x := range s.X {
			if j >= len(s.Z[i]) {
				continue
			}
			band := min(int(chart.Normalize(s.Z[i][j], zmin, zmax)*float64(levels)), levels-1)
			t := 0.0
			if levels > 1 {
				t = float64(band) / float64(levels-1)
			}
			color := hexColor(chart.ColorAt(p.scene.Palette, t), defaultColor)
			p.rect(r, p.px(x-dx), p.py(y+dy), p.px(x+dx), p.py(y-dy), color)
		}
	}
}

func (p *painter) columns(r gochart.Renderer, s chart.Series) {
	base := max(p.yr.Min, 0)
	for i, v := range s.Y {
		c := hexColor(pick(s.Colors, i, s.Color), defaultColor)
		x := float64(i)
		p.rect(r, p.px(x-0.35), p.py(v), p.px(x+0.35), p.py(base), c)
		if s.ShowText && i < len(s.Text) {
			p.text(r, s.Text[i], p.px(x), p.py(v)-int(8*p.scale), 8, drawing.ColorBlack)
		}
	}
}

func (p *painter) hbars(r gochart.Renderer, s chart.Series) {
	for i, v := range s.X {
		base := 0.0
		if i < len(s.Base) {
			base = s.Base[i]
		}
		c := hexColor(pick(s.Colors, i, s.Color), defaultColor)
		y := float64(i)
		x0, x1 := p.px(base), p.px(base+v)
		p.rect(r, min(x0, x1), p.py(y+0.35), max(x0, x1), p.py(y-0.35), c)
		if s.ShowText && i < len(s.Text) {
			p.text(r, s.Text[i], (x0+x1)/2, p.py(y), 9, drawing.ColorWhite)
		}
	}
}

func (p *painter) sankey(r gochart.Renderer, s chart.Series) {
	depths := chart.SankeyDepths(len(s.Nodes), s.Links)
	if len(depths) == 0 {
		return
	}
	columns := make(map[int][]int)
	for node, d := range depths {
		columns[d] = append(columns[d], node)
	}
	type point struct{ x, y int }
	pos := make([]point, len(s.Nodes))
	for d, nodes := range columns {
		for k, node := range nodes {
			pos[node] = point{x: p.px(float64(d)), y: p.py(1 - (float64(k)+0.5)/float64(len(nodes)))}
		}
	}

	total := 0.0
	for _, l := range s.Links {
		total = max(total, l.Value)
	}
	nodeWidth := int(12 * p.scale)
	for _, l := range s.Links {
		if l.Source < 0 || l.Source >= len(pos) || l.Target < 0 || l.Target >= len(pos) {
			continue
		}
		from, to := pos[l.Source], pos[l.Target]
		width := 2.0
		if total > 0 {
			width = max(2, l.Value/total*24)
		}
		r.SetStrokeColor(hexColor(chart.CategoricalColor(l.Source), defaultColor).WithAlpha(110))
		r.SetStrokeWidth(width * p.scale)
		r.MoveTo(from.x+nodeWidth, from.y)
		r.LineTo(to.x, to.y)
		r.Stroke()
	}
	half := int(14 * p.scale)
	for node, at := range pos {
		p.rect(r, at.x, at.y-half, at.x+nodeWidth, at.y+half, hexColor(chart.CategoricalColor(node), defaultColor))
		p.text(r, s.Nodes[node], at.x+nodeWidth/2, at.y-half-int(8*p.scale), 9, drawing.ColorBlack)
	}
}

func (p *painter) legend(r gochart.Renderer, box gochart.Box, defaults gochart.Style) {
	p.defaults = defaults
	x := box.Left
	y := box.Top - int(20*p.scale)
	swatch := int(10 * p.scale)
	for _, s := range p.scene.Series {
		if !s.ShowLegend || s.Name == "" {
			continue
		}
		p.rect(r, x, y-swatch/2, x+swatch, y+swatch/2, hexColor(s.Color, defaultColor))
		if defaults.Font == nil {
			continue
		}
		r.SetFont(defaults.Font)
		r.SetFontSize(9 * p.scale)
		r.SetFontColor(drawing.ColorBlack)
		tb := r.MeasureText(s.Name)
		r.Text(s.Name, x+swatch+int(4*p.scale), y+tb.Height()/2)
		x += swatch + tb.Width() + int(16*p.scale)
	}
	if p.scene.ColorBar == "" || p.scene.Palette == "" {
		return
	}
	stops := chart.Palette(p.scene.Palette)
	x = box.Right - len(stops)*swatch
	for i, stop := range stops {
		p.rect(r, x+i*swatch, y-swatch/2, x+(i+1)*swatch, y+swatch/2, hexColor(stop, defaultColor))
	}
	p.text(r, p.scene.ColorBar, x-int(30*p.scale), y, 9, drawing.ColorBlack)
}

func pick(values []string, i int, fallback string) string {
	if i < len(values) && values[i] != "" {
		return values[i]
	}
	return fallback
}
