// Package chart defines the preset chart kinds, their literal datasets and
// the builders that turn a dashboard snapshot into a renderer-neutral scene.
package chart

import "strings"

// Kind identifies one of the preset charts.
type Kind int

// Chart kinds in dashboard order.
const (
	Contour Kind = iota
	Stream
	Stem
	Dumbbell
	Gantt
	Pyramid
	Funnel
	Sankey
	ScatterCluster
	Waffle

	kindCount
)

// Count is the number of chart kinds.
const Count = int(kindCount)

// Backend selects the renderer family a kind is drawn with.
type Backend int

const (
	// BackendDeclarative rebuilds the whole chart from a scene on every update.
	BackendDeclarative Backend = iota
	// BackendCanvas keeps a long-lived handle and updates it in place.
	BackendCanvas
)

// Kinds returns every kind in the fixed dashboard order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, Count)
	for k := range kindCount {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseKind resolves a kind from its id ("stem") or slot id ("stemChart").
func ParseKind(s string) (Kind, bool) {
	s = strings.TrimSpace(s)
	for _, k := range Kinds() {
		if s == k.ID() || s == k.Slot() {
			return k, true
		}
	}
	return 0, false
}

// Valid reports whether k names a known kind.
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

// ID returns the short identifier used by the filter and the CLI.
func (k Kind) ID() string {
	if !k.Valid() {
		return "unknown"
	}
	return definitions[k].id
}

// Slot returns the render slot id, which is also the export file stem.
func (k Kind) Slot() string {
	return k.ID() + "Chart"
}

// Title returns the default chart title.
func (k Kind) Title() string {
	if !k.Valid() {
		return ""
	}
	return definitions[k].title
}

// Backend returns the renderer family for k.
func (k Kind) Backend() Backend {
	if !k.Valid() {
		return BackendDeclarative
	}
	return definitions[k].backend
}

// Shape returns the custom data shape k accepts.
func (k Kind) Shape() Shape {
	if !k.Valid() {
		return ShapeNone
	}
	return definitions[k].shape
}

// Params returns the parameter specs of k.
func (k Kind) Params() []ParamSpec {
	if !k.Valid() {
		return nil
	}
	return definitions[k].params
}

func (k Kind) String() string {
	return k.ID()
}

type definition struct {
	id      string
	title   string
	backend Backend
	shape   Shape
	params  []ParamSpec
	build   func(Input) Scene
}

var definitions = [kindCount]definition{
	Contour: {
		id:    "contour",
		title: "Contour map",
		params: []ParamSpec{
			{Key: "density", Label: "density", Type: ParamInt, Default: "256", Min: 2, Max: 512, Step: 16},
			{Key: "levels", Label: "levels", Type: ParamInt, Default: "8", Min: 1, Max: 32, Step: 1},
		},
	},
	Stream: {
		id:    "stream",
		title: "Vector field streamlines",
		params: []ParamSpec{
			{Key: "density", Label: "density", Type: ParamInt, Default: "10", Min: 1, Max: 50, Step: 1},
		},
	},
	Stem: {
		id:      "stem",
		title:   "Fuel consumption by car model",
		backend: BackendCanvas,
		shape:   ShapeLabelValues,
		params: []ParamSpec{
			{Key: "showValues", Label: "values", Type: ParamBool, Default: "true"},
		},
	},
	Dumbbell: {
		id:    "dumbbell",
		title: "Population PCT change, 2013 vs 2014",
		shape: ShapeCohorts,
	},
	Gantt: {
		id:    "gantt",
		title: "Survey project schedule",
		shape: ShapeSchedule,
	},
	Pyramid: {
		id:    "pyramid",
		title: "City population pyramid",
		params: []ParamSpec{
			{Key: "ageGroups", Label: "age groups", Type: ParamInt, Default: "10", Min: 1, Max: 10, Step: 1},
		},
	},
	Funnel: {
		id:    "funnel",
		title: "Customer conversion funnel",
		shape: ShapeLabelValues,
	},
	Sankey: {
		id:    "sankey",
		title: "Daily spending flows",
	},
	ScatterCluster: {
		id:    "tree",
		title: "US state crime clusters",
		shape: ShapePoints,
		params: []ParamSpec{
			{Key: "linkage", Label: "linkage", Type: ParamChoice, Default: "ward", Choices: []string{"ward", "complete", "average", "single"}},
		},
	},
	Waffle: {
		id:    "waffle",
		title: "Cinema seat occupancy",
		params: []ParamSpec{
			{Key: "rows", Label: "rows", Type: ParamInt, Default: "10", Min: 1, Max: 30, Step: 1},
			{Key: "cols", Label: "cols", Type: ParamInt, Default: "10", Min: 1, Max: 30, Step: 1},
		},
	},
}

// Builders read their parameter specs through definitions, so they are
// attached after it is initialized.
func init() {
	definitions[Contour].build = buildContour
	definitions[Stream].build = buildStream
	definitions[Stem].build = buildStem
	definitions[Dumbbell].build = buildDumbbell
	definitions[Gantt].build = buildGantt
	definitions[Pyramid].build = buildPyramid
	definitions[Funnel].build = buildFunnel
	definitions[Sankey].build = buildSankey
	definitions[ScatterCluster].build = buildScatterCluster
	definitions[Waffle].build = buildWaffle
}
