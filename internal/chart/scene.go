package chart

// SeriesType is the primitive a series is drawn with.
type SeriesType string

const (
	SeriesBar     SeriesType = "bar"
	SeriesLine    SeriesType = "line"
	SeriesMarkers SeriesType = "markers"
	SeriesContour SeriesType = "contour"
	SeriesSankey  SeriesType = "sankey"
)

// Orientation of bar series.
type Orientation string

const (
	Vertical   Orientation = "v"
	Horizontal Orientation = "h"
)

// Symbol is a marker glyph.
type Symbol string

const (
	SymbolCircle   Symbol = "circle"
	SymbolSquare   Symbol = "square"
	SymbolTriangle Symbol = "triangle-right"
)

// Marker describes how points are drawn.
type Marker struct {
	Symbol Symbol  `json:"symbol,omitempty"`
	Size   float64 `json:"size,omitempty"`
	// Angle rotates the symbol, in degrees counter-clockwise from +x.
	Angle float64 `json:"angle,omitempty"`
}

// Link is a weighted edge between two sankey nodes.
type Link struct {
	Source int     `json:"source"`
	Target int     `json:"target"`
	Value  float64 `json:"value"`
}

// Series is one drawable layer of a scene.
//
// Bars use Categories for the category axis and X (horizontal) or Y
// (vertical) for lengths; Base offsets horizontal bars along the value axis.
// Contours sample Z[i][j] at (X[j], Y[i]).
type Series struct {
	Name        string      `json:"name,omitempty"`
	Type        SeriesType  `json:"type"`
	Orientation Orientation `json:"orientation,omitempty"`
	X           []float64   `json:"x,omitempty"`
	Y           []float64   `json:"y,omitempty"`
	Z           [][]float64 `json:"z,omitempty"`
	Base        []float64   `json:"base,omitempty"`
	Categories  []string    `json:"categories,omitempty"`
	Text        []string    `json:"text,omitempty"`
	// ShowText draws Text next to each point instead of keeping it for inspection.
	ShowText bool `json:"showText,omitempty"`
	// Custom carries per-point payload shown on inspection (bar ends, absolute values).
	Custom []float64 `json:"custom,omitempty"`
	Color  string    `json:"color,omitempty"`
	// Colors overrides Color per point.
	Colors []string `json:"colors,omitempty"`
	// ColorValues are mapped through the scene palette.
	ColorValues []float64 `json:"colorValues,omitempty"`
	Marker      Marker    `json:"marker,omitzero"`
	Width       float64   `json:"width,omitempty"`
	Nodes       []string  `json:"nodes,omitempty"`
	Links       []Link    `json:"links,omitempty"`
	ShowLegend  bool      `json:"showLegend,omitempty"`
	// LegendOnly series carry no data and only contribute a legend entry.
	LegendOnly bool `json:"legendOnly,omitempty"`
}

// Range is a closed numeric axis range.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Axis describes one scene axis.
type Axis struct {
	Title    string    `json:"title,omitempty"`
	Range    *Range    `json:"range,omitempty"`
	TickVals []float64 `json:"tickVals,omitempty"`
	TickText []string  `json:"tickText,omitempty"`
}

// Annotation is free text placed at data coordinates.
type Annotation struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Text string  `json:"text"`
}

// Scene is the renderer-neutral description of a chart.
type Scene struct {
	Kind        Kind         `json:"-"`
	Slot        string       `json:"slot"`
	Title       string       `json:"title"`
	Subtitle    string       `json:"subtitle,omitempty"`
	Series      []Series     `json:"series"`
	XAxis       Axis         `json:"xAxis,omitzero"`
	YAxis       Axis         `json:"yAxis,omitzero"`
	Annotations []Annotation `json:"annotations,omitempty"`
	ShowLegend  bool         `json:"showLegend,omitempty"`
	// Palette names the colour scale used for ColorValues and contour bands.
	Palette string `json:"palette,omitempty"`
	// ColorBar titles the colour scale legend when set.
	ColorBar string `json:"colorBar,omitempty"`
	Levels   int    `json:"levels,omitempty"`
}

// Bounds returns the data extent of the scene over all non legend-only series,
// preferring explicit axis ranges.
func (s Scene) Bounds() (x, y Range) {
	x = Range{Min: 0, Max: 1}
	y = Range{Min: 0, Max: 1}
	first := true
	extend := func(px, py float64) {
		if first {
			x = Range{Min: px, Max: px}
			y = Range{Min: py, Max: py}
			first = false
			return
		}
		x.Min, x.Max = min(x.Min, px), max(x.Max, px)
		y.Min, y.Max = min(y.Min, py), max(y.Max, py)
	}
	for _, sr := range s.Series {
		if sr.LegendOnly {
			continue
		}
		switch {
		case sr.Type == SeriesBar && sr.Orientation == Horizontal:
			for i, v := range sr.X {
				base := at(sr.Base, i)
				extend(base, float64(i)-0.5)
				extend(base+v, float64(i)+0.5)
			}
		case sr.Type == SeriesBar:
			for i, v := range sr.Y {
				extend(float64(i)-0.5, 0)
				extend(float64(i)+0.5, v)
			}
		default:
			for i := range min(len(sr.X), len(sr.Y)) {
				extend(sr.X[i], sr.Y[i])
			}
		}
	}
	if s.XAxis.Range != nil {
		x = *s.XAxis.Range
	}
	if s.YAxis.Range != nil {
		y = *s.YAxis.Range
	}
	if x.Max == x.Min {
		x.Max = x.Min + 1
	}
	if y.Max == y.Min {
		y.Max = y.Min + 1
	}
	return x, y
}

func at(values []float64, i int) float64 {
	if i < len(values) {
		return values[i]
	}
	return 0
}
