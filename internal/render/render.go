// Package render hands chart scenes to one of two backends: a declarative
// backend that replaces the whole rendering on every update, and an
// incremental canvas backend that keeps a long-lived handle per slot.
package render

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/kpumuk/lazyplot/internal/chart"
)

// Export dimensions.
const (
	ExportWidth  = 800
	ExportHeight = 600
	ExportScale  = 2
)

// ErrNoHandle is returned when exporting a slot that has not been rendered.
var ErrNoHandle = errors.New("no rendered chart")

// Handle is the rendering of one chart slot.
type Handle interface {
	Kind() chart.Kind
	// Scene returns the scene currently visible in the slot.
	Scene() chart.Scene
}

// Declarative is a handle produced by the declarative backend. Each render
// replaces it wholesale.
type Declarative struct {
	scene chart.Scene
}

func (d *Declarative) Kind() chart.Kind    { return d.scene.Kind }
func (d *Declarative) Scene() chart.Scene { return d.scene }

// Canvas is a long-lived incremental handle. Data and labels are staged
// with the setters and become visible on Update.
type Canvas struct {
	kind    chart.Kind
	visible chart.Scene
	pending chart.Scene
	redraws int
}

// NewCanvas creates a canvas handle showing scene.
func NewCanvas(scene chart.Scene) *Canvas {
	c := &Canvas{kind: scene.Kind, pending: cloneScene(scene)}
	c.Update()
	return c
}

func (c *Canvas) Kind() chart.Kind    { return c.kind }
func (c *Canvas) Scene() chart.Scene { return c.visible }

// Redraws reports how many times the canvas has been redrawn.
func (c *Canvas) Redraws() int { return c.redraws }

// SetData stages new values for the first series.
func (c *Canvas) SetData(values []float64) {
	if len(c.pending.Series) == 0 {
		return
	}
	c.pending.Series[0].Y = slices.Clone(values)
}

// SetLabels stages new category labels for the first series.
func (c *Canvas) SetLabels(labels []string) {
	if len(c.pending.Series) == 0 {
		return
	}
	c.pending.Series[0].Categories = slices.Clone(labels)
}

// SetValueLabels stages the per-bar value labels. A nil slice hides them.
func (c *Canvas) SetValueLabels(text []string) {
	if len(c.pending.Series) == 0 {
		return
	}
	c.pending.Series[0].Text = slices.Clone(text)
	c.pending.Series[0].ShowText = text != nil
}

// SetAxes stages axis options.
func (c *Canvas) SetAxes(x, y chart.Axis) {
	c.pending.XAxis = x
	c.pending.YAxis = y
}

// Update commits staged changes and redraws.
func (c *Canvas) Update() {
	c.visible = cloneScene(c.pending)
	c.redraws++
}

// ToBase64Image returns the visible canvas as a base64 encoded PNG.
func (c *Canvas) ToBase64Image() (string, error) {
	data, err := PNG(c.visible, 1)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// Adapter routes scenes to the backend their kind uses.
type Adapter struct{}

// NewAdapter creates an adapter.
func NewAdapter() *Adapter {
	return &Adapter{}
}

// Render displays scene, replacing prev. Canvas kinds update prev in place
// when it is already a canvas handle.
func (a *Adapter) Render(prev Handle, scene chart.Scene) Handle {
	if scene.Kind.Backend() != chart.BackendCanvas {
		return &Declarative{scene: cloneScene(scene)}
	}
	c, ok := prev.(*Canvas)
	if !ok || c == nil || len(scene.Series) == 0 {
		return NewCanvas(scene)
	}
	s := scene.Series[0]
	c.SetLabels(s.Categories)
	c.SetData(s.Y)
	if s.ShowText {
		c.SetValueLabels(s.Text)
	} else {
		c.SetValueLabels(nil)
	}
	c.SetAxes(scene.XAxis, scene.YAxis)
	c.pending.Title, c.pending.Subtitle = scene.Title, scene.Subtitle
	c.Update()
	return c
}

// ExportPNG returns the PNG image of a handle. Canvas handles export
// through their base64 image at nominal size; declarative handles render
// at ExportScale.
func (a *Adapter) ExportPNG(h Handle) ([]byte, error) {
	switch h := h.(type) {
	case nil:
		return nil, ErrNoHandle
	case *Canvas:
		encoded, err := h.ToBase64Image()
		if err != nil {
			return nil, err
		}
		data, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("decode %s image: %w", h.Kind().Slot(), err)
		}
		return data, nil
	default:
		return PNG(h.Scene(), ExportScale)
	}
}

// ExportHTML writes an interactive page with one chart per handle.
func (a *Adapter) ExportHTML(w io.Writer, handles []Handle) error {
	scenes := make([]chart.Scene, 0, len(handles))
	for _, h := range handles {
		if h != nil {
			scenes = append(scenes, h.Scene())
		}
	}
	return HTML(w, scenes)
}

func cloneScene(s chart.Scene) chart.Scene {
	out := s
	out.Series = make([]chart.Series, len(s.Series))
	for i, series := range s.Series {
		series.X = slices.Clone(series.X)
		series.Y = slices.Clone(series.Y)
		series.Base = slices.Clone(series.Base)
		series.Categories = slices.Clone(series.Categories)
		series.Text = slices.Clone(series.Text)
		out.Series[i] = series
	}
	out.Annotations = slices.Clone(s.Annotations)
	return out
}
