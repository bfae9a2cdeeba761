package charts

import (
	"math"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/NimbleMarkets/ntcharts/v2/canvas"
	"github.com/NimbleMarkets/ntcharts/v2/canvas/graph"
	"github.com/charmbracelet/x/ansi"

	"github.com/kpumuk/lazyplot/internal/chart"
	"github.com/kpumuk/lazyplot/internal/mathutil"
	"github.com/kpumuk/lazyplot/internal/ui/format"
)

// Styles holds the styles used to rasterize scenes.
type Styles struct {
	Axis  lipgloss.Style
	Label lipgloss.Style
	Muted lipgloss.Style
	Text  lipgloss.Style
}

// DefaultStyles returns default raster styles.
func DefaultStyles() Styles {
	return Styles{
		Axis:  lipgloss.NewStyle().Faint(true),
		Label: lipgloss.NewStyle().Bold(true),
		Muted: lipgloss.NewStyle().Faint(true),
		Text:  lipgloss.NewStyle(),
	}
}

var (
	shades = []rune{'·', '░', '▒', '▓', '█'}
	arrows = []rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}
)

// Raster draws a scene into a width×height block of terminal cells.
func Raster(scene chart.Scene, width, height int, styles Styles) string {
	if width < 8 || height < 3 {
		return RenderCentered(width, height, "")
	}
	if len(scene.Series) > 0 && scene.Series[0].Type == chart.SeriesSankey {
		return rasterSankey(scene.Series[0], width, height, styles)
	}

	var footer []string
	if legend := Legend(scene, width, styles); legend != "" && height >= 6 {
		footer = append(footer, legend)
	}
	chartHeight := height - len(footer)
	showX := chartHeight >= 5
	if showX {
		chartHeight--
	}

	xr, yr := scene.Bounds()
	yLabels := yAxisLabels(scene, yr, chartHeight)
	labelWidth := min(MaxLabelWidth(yLabels), width/3)
	plotWidth := width - labelWidth - 1
	if plotWidth < 4 {
		return RenderCentered(width, height, "")
	}

	c := canvas.New(plotWidth, chartHeight, canvas.WithViewWidth(plotWidth), canvas.WithViewHeight(chartHeight))
	graph.DrawXYAxis(&c, canvas.Point{X: 0, Y: chartHeight - 1}, styles.Axis)

	p := &plot{c: &c, width: plotWidth, height: chartHeight, xr: xr, yr: yr, styles: styles, scene: scene}
	for _, s := range scene.Series {
		if s.LegendOnly {
			continue
		}
		p.draw(s)
	}
	for _, a := range scene.Annotations {
		p.centered(p.px(a.X), p.py(a.Y), a.Text, styles.Label)
	}

	lines := strings.Split(c.View(), "\n")
	lines = ApplyYAxisLabels(lines, yLabels, labelWidth, styles.Muted)
	if showX {
		positions, labels := xAxisTicks(scene, xr, plotWidth)
		lines = append(lines, strings.Repeat(" ", labelWidth+1)+styles.Muted.Render(PlaceLabels(plotWidth, positions, labels)))
	}
	lines = append(lines, footer...)
	return strings.Join(lines, "\n")
}

// Legend renders the legend entries and colour bar of a scene on one line.
func Legend(scene chart.Scene, width int, styles Styles) string {
	var items []string
	for _, s := range scene.Series {
		if !s.ShowLegend || s.Name == "" {
			continue
		}
		items = append(items, colorStyle(s.Color, styles.Text).Render("■")+" "+styles.Muted.Render(s.Name))
	}
	if scene.ColorBar != "" && scene.Palette != "" {
		var bar strings.Builder
		for _, stop := range chart.Palette(scene.Palette) {
			bar.WriteString(colorStyle(stop, styles.Text).Render("█"))
		}
		items = append(items, styles.Muted.Render(scene.ColorBar)+" "+bar.String())
	}
	if len(items) == 0 {
		return ""
	}
	return ansi.Truncate(strings.Join(items, "  "), width, "…")
}

type plot struct {
	c      *canvas.Model
	width  int
	height int
	xr, yr chart.Range
	styles Styles
	scene  chart.Scene
}

func colFor(x float64, r chart.Range, width int) int {
	t := chart.Normalize(x, r.Min, r.Max)
	return mathutil.Clamp(1+int(math.Round(t*float64(width-2))), 1, width-1)
}

func rowFor(y float64, r chart.Range, height int) int {
	t := chart.Normalize(y, r.Min, r.Max)
	return mathutil.Clamp(height-2-int(math.Round(t*float64(height-2))), 0, height-2)
}

func (p *plot) px(x float64) int { return colFor(x, p.xr, p.width) }
func (p *plot) py(y float64) int { return rowFor(y, p.yr, p.height) }

func (p *plot) inside(x, y float64) bool {
	return x >= p.xr.Min && x <= p.xr.Max && y >= p.yr.Min && y <= p.yr.Max
}

func (p *plot) set(x, y int, r rune, st lipgloss.Style) {
	if x < 1 || x >= p.width || y < 0 || y > p.height-2 {
		return
	}
	p.c.SetRuneWithStyle(canvas.Point{X: x, Y: y}, r, st)
}

func (p *plot) write(x, y int, s string, st lipgloss.Style) {
	for i, r := range []rune(s) {
		p.set(x+i, y, r, st)
	}
}

func (p *plot) centered(x, y int, s string, st lipgloss.Style) {
	n := len([]rune(s))
	start := mathutil.Clamp(x-n/2, 1, max(p.width-n, 1))
	p.write(start, y, s, st)
}

func (p *plot) draw(s chart.Series) {
	switch s.Type {
	case chart.SeriesContour:
		p.drawContour(s)
	case chart.SeriesBar:
		if s.Orientation == chart.Horizontal {
			p.drawHBars(s)
		} else {
			p.drawColumns(s)
		}
	case chart.SeriesLine:
		p.drawLine(s)
	case chart.SeriesMarkers:
		p.drawMarkers(s)
	}
}

func (p *plot) drawContour(s chart.Series) {
	if len(s.Z) == 0 || len(s.X) < 2 || len(s.Y) < 2 {
		return
	}
	zmin, zmax := math.Inf(1), math.Inf(-1)
	for _, row := range s.Z {
		for _, z := range row {
			zmin, zmax = min(zmin, z), max(zmax, z)
		}
	}
	levels := max(p.scene.Levels, 1)
	for cy := 0; cy <= p.height-2; cy++ {
		y := p.yr.Max - float64(cy)/float64(max(p.height-2, 1))*(p.yr.Max-p.yr.Min)
		i := nearest(s.Y, y)
		for cx := 1; cx < p.width; cx++ {
			x := p.xr.Min + float64(cx-1)/float64(max(p.width-2, 1))*(p.xr.Max-p.xr.Min)
			z := s.Z[i][nearest(s.X, x)]
			band := min(int(chart.Normalize(z, zmin, zmax)*float64(levels)), levels-1)
			t := 0.0
			if levels > 1 {
				t = float64(band) / float64(levels-1)
			}
			shade := shades[int(math.Round(t*float64(len(shades)-1)))]
			p.set(cx, cy, shade, colorStyle(chart.ColorAt(p.scene.Palette, t), p.styles.Text))
		}
	}
}

// nearest returns the index of the grid value closest to v on an evenly
// spaced axis.
func nearest(axis []float64, v float64) int {
	n := len(axis)
	t := chart.Normalize(v, axis[0], axis[n-1])
	return mathutil.Clamp(int(math.Round(t*float64(n-1))), 0, n-1)
}

func (p *plot) drawColumns(s chart.Series) {
	n := len(s.Y)
	if n == 0 {
		return
	}
	plotWidth := p.width - 1
	slot := max(plotWidth/n, 1)
	barWidth := max(slot-1, 1)
	maxHeight := float64(max(p.height-1, 1))
	heights := make([]float64, plotWidth)
	for i, v := range s.Y {
		h := mathutil.Clamp(chart.Normalize(v, p.yr.Min, p.yr.Max), 0, 1) * maxHeight
		center := p.px(float64(i)) - 1
		start := center - barWidth/2
		for x := start; x < start+barWidth; x++ {
			if x >= 0 && x < plotWidth {
				heights[x] = h
			}
		}
	}
	graph.DrawColumns(p.c, canvas.Point{X: 1, Y: max(p.height-2, 0)}, heights, colorStyle(s.Color, p.styles.Text))

	if !s.ShowText {
		return
	}
	for i, v := range s.Y {
		if i >= len(s.Text) || len([]rune(s.Text[i])) > slot {
			continue
		}
		p.centered(p.px(float64(i)), max(p.py(v)-1, 0), s.Text[i], p.styles.Muted)
	}
}

func (p *plot) drawHBars(s chart.Series) {
	for i, v := range s.X {
		base := 0.0
		if i < len(s.Base) {
			base = s.Base[i]
		}
		st := colorStyle(pick(s.Colors, i, s.Color), p.styles.Text)
		row := p.py(float64(i))
		x0, x1 := p.px(base), p.px(base+v)
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		for x := x0; x <= x1; x++ {
			p.set(x, row, '█', st)
		}
		if s.ShowText && i < len(s.Text) {
			label := s.Text[i]
			n := len([]rune(label))
			if n <= x1-x0+1 {
				p.write(x0+(x1-x0+1-n)/2, row, label, p.styles.Label.Reverse(true))
			} else {
				p.write(x1+2, row, label, p.styles.Muted)
			}
		}
	}
}

func (p *plot) drawLine(s chart.Series) {
	st := colorStyle(s.Color, p.styles.Text)
	for i := range min(len(s.X), len(s.Y)) {
		if !p.inside(s.X[i], s.Y[i]) {
			continue
		}
		x1, y1 := p.px(s.X[i]), p.py(s.Y[i])
		if i == 0 || !p.inside(s.X[i-1], s.Y[i-1]) {
			p.set(x1, y1, '·', st)
			continue
		}
		x0, y0 := p.px(s.X[i-1]), p.py(s.Y[i-1])
		steps := max(absInt(x1-x0), absInt(y1-y0), 1)
		for k := 0; k <= steps; k++ {
			x := x0 + int(math.Round(float64(k*(x1-x0))/float64(steps)))
			y := y0 + int(math.Round(float64(k*(y1-y0))/float64(steps)))
			p.set(x, y, '·', st)
		}
	}
}

func (p *plot) drawMarkers(s chart.Series) {
	n := min(len(s.X), len(s.Y))
	lo, hi := 0.0, 0.0
	if len(s.ColorValues) > 0 {
		lo, hi = slices.Min(s.ColorValues), slices.Max(s.ColorValues)
	}
	if s.ShowText {
		for i := range n {
			if i < len(s.Text) && p.inside(s.X[i], s.Y[i]) {
				p.write(p.px(s.X[i])+2, p.py(s.Y[i]), s.Text[i], p.styles.Muted)
			}
		}
	}
	r := markerRune(s.Marker)
	for i := range n {
		if !p.inside(s.X[i], s.Y[i]) {
			continue
		}
		color := pick(s.Colors, i, s.Color)
		if i < len(s.ColorValues) {
			color = chart.ColorAt(p.scene.Palette, chart.Normalize(s.ColorValues[i], lo, hi))
		}
		p.set(p.px(s.X[i]), p.py(s.Y[i]), r, colorStyle(color, p.styles.Text))
	}
}

func markerRune(m chart.Marker) rune {
	switch m.Symbol {
	case chart.SymbolSquare:
		return '■'
	case chart.SymbolTriangle:
		idx := int(math.Round(m.Angle/45)) % len(arrows)
		if idx < 0 {
			idx += len(arrows)
		}
		return arrows[idx]
	default:
		return '●'
	}
}

func yAxisLabels(scene chart.Scene, yr chart.Range, height int) map[int]string {
	labels := make(map[int]string)
	if height < 2 {
		return labels
	}
	put := func(y float64, label string) {
		row := rowFor(y, yr, height)
		if _, taken := labels[row]; !taken {
			labels[row] = label
		}
	}
	for _, s := range scene.Series {
		if s.Type == chart.SeriesBar && s.Orientation == chart.Horizontal {
			for i, c := range s.Categories {
				put(float64(i), c)
			}
			return labels
		}
	}
	if len(scene.YAxis.TickText) > 0 {
		for i, v := range scene.YAxis.TickVals {
			if i < len(scene.YAxis.TickText) && v >= yr.Min && v <= yr.Max {
				put(v, scene.YAxis.TickText[i])
			}
		}
		return labels
	}
	ticks := min(4, height-1)
	for i := range ticks {
		v := yr.Max - float64(i)*(yr.Max-yr.Min)/float64(max(ticks-1, 1))
		put(v, format.Axis(v))
	}
	return labels
}

func xAxisTicks(scene chart.Scene, xr chart.Range, width int) ([]int, []string) {
	var positions []int
	var labels []string
	for _, s := range scene.Series {
		if s.Type == chart.SeriesBar && s.Orientation != chart.Horizontal {
			for i, c := range s.Categories {
				positions = append(positions, colFor(float64(i), xr, width))
				labels = append(labels, c)
			}
			return positions, labels
		}
	}
	if len(scene.XAxis.TickText) > 0 {
		for i, v := range scene.XAxis.TickVals {
			if i < len(scene.XAxis.TickText) && v >= xr.Min && v <= xr.Max {
				positions = append(positions, colFor(v, xr, width))
				labels = append(labels, scene.XAxis.TickText[i])
			}
		}
		return positions, labels
	}
	for _, v := range []float64{xr.Min, (xr.Min + xr.Max) / 2, xr.Max} {
		positions = append(positions, colFor(v, xr, width))
		labels = append(labels, format.Axis(v))
	}
	return positions, labels
}

func rasterSankey(s chart.Series, width, height int, styles Styles) string {
	depths := chart.SankeyDepths(len(s.Nodes), s.Links)
	if len(depths) == 0 {
		return RenderCentered(width, height, "")
	}
	columns := slices.Max(depths) + 1
	colWidth := max(width/columns, 4)

	byColumn := make([][]int, columns)
	for node, d := range depths {
		byColumn[d] = append(byColumn[d], node)
	}
	type cell struct{ x, y int }
	pos := make([]cell, len(s.Nodes))
	for d, nodes := range byColumn {
		for k, node := range nodes {
			y := int(math.Floor((float64(k) + 0.5) * float64(height) / float64(len(nodes))))
			pos[node] = cell{x: d * colWidth, y: mathutil.Clamp(y, 0, height-1)}
		}
	}

	c := canvas.New(width, height, canvas.WithViewWidth(width), canvas.WithViewHeight(height))
	set := func(x, y int, r rune, st lipgloss.Style) {
		if x >= 0 && x < width && y >= 0 && y < height {
			c.SetRuneWithStyle(canvas.Point{X: x, Y: y}, r, st)
		}
	}

	var values []float64
	for _, l := range s.Links {
		values = append(values, l.Value)
	}
	median := 0.0
	if len(values) > 0 {
		sorted := slices.Sorted(slices.Values(values))
		median = sorted[len(sorted)/2]
	}
	for _, l := range s.Links {
		if l.Source < 0 || l.Source >= len(pos) || l.Target < 0 || l.Target >= len(pos) {
			continue
		}
		from, to := pos[l.Source], pos[l.Target]
		r := '·'
		if l.Value >= median {
			r = '•'
		}
		st := colorStyle(chart.CategoricalColor(l.Source), styles.Text)
		x0, x1 := from.x+1, to.x-1
		steps := max(absInt(x1-x0), absInt(to.y-from.y), 1)
		for k := 0; k <= steps; k++ {
			x := x0 + int(math.Round(float64(k*(x1-x0))/float64(steps)))
			y := from.y + int(math.Round(float64(k*(to.y-from.y))/float64(steps)))
			set(x, y, r, st)
		}
	}
	for node, at := range pos {
		set(at.x, at.y, '█', colorStyle(chart.CategoricalColor(node), styles.Text))
		label := ansi.Truncate(s.Nodes[node], max(colWidth-3, 1), "…")
		for i, r := range []rune(label) {
			set(at.x+2+i, at.y, r, styles.Label)
		}
	}
	return c.View()
}

func colorStyle(hex string, base lipgloss.Style) lipgloss.Style {
	if hex == "" {
		return base
	}
	return base.Foreground(lipgloss.Color(hex))
}

func pick(values []string, i int, fallback string) string {
	if i < len(values) && values[i] != "" {
		return values[i]
	}
	return fallback
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
