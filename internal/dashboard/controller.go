package dashboard

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/kpumuk/lazyplot/internal/chart"
	"github.com/kpumuk/lazyplot/internal/devtools"
	"github.com/kpumuk/lazyplot/internal/ingest"
	"github.com/kpumuk/lazyplot/internal/mathutil"
	"github.com/kpumuk/lazyplot/internal/preset"
	"github.com/kpumuk/lazyplot/internal/render"
)

// Controller owns the dashboard state and the chart registry.
type Controller struct {
	state    State
	registry *Registry
	params   map[chart.Kind]chart.Values
	custom   map[chart.Kind]any
	adapter  *render.Adapter
	store    preset.Store
	tracker  *devtools.Tracker
	rand     func() float64
	preview  ingest.Preview
	pending  []Notification
}

// Option configures a Controller.
type Option func(*Controller)

// WithStore sets the style preset store.
func WithStore(s preset.Store) Option {
	return func(c *Controller) {
		if s != nil {
			c.store = s
		}
	}
}

// WithTracker sets the devtools tracker.
func WithTracker(t *devtools.Tracker) Option {
	return func(c *Controller) {
		c.tracker = t
	}
}

// WithRand sets the uniform [0,1) source used by Refresh.
func WithRand(f func() float64) Option {
	return func(c *Controller) {
		if f != nil {
			c.rand = f
		}
	}
}

// WithState sets the initial state.
func WithState(s State) Option {
	return func(c *Controller) {
		c.state = s
	}
}

// WithRenderer sets the renderer adapter.
func WithRenderer(a *render.Adapter) Option {
	return func(c *Controller) {
		if a != nil {
			c.adapter = a
		}
	}
}

// New creates a controller with the default state and an in-memory store.
func New(opts ...Option) *Controller {
	c := &Controller{
		state:    DefaultState(),
		registry: NewRegistry(),
		params:   make(map[chart.Kind]chart.Values),
		custom:   make(map[chart.Kind]any),
		adapter:  render.NewAdapter(),
		store:    preset.NewMemoryStore(),
		rand:     rand.Float64,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a copy of the current state.
func (c *Controller) State() State { return c.state }

// Registry returns the chart registry.
func (c *Controller) Registry() *Registry { return c.registry }

// Tracker returns the devtools tracker, which may be nil.
func (c *Controller) Tracker() *devtools.Tracker { return c.tracker }

// Preview returns the ingest preview entries.
func (c *Controller) Preview() []ingest.PreviewEntry { return c.preview.Entries() }

// Params returns a copy of the raw parameter values of k.
func (c *Controller) Params(k chart.Kind) chart.Values {
	return c.params[k].Clone()
}

// Custom returns the custom dataset of k, if one was accepted.
func (c *Controller) Custom(k chart.Kind) (any, bool) {
	d, ok := c.custom[k]
	return d, ok
}

// Scene returns the visible scene of k.
func (c *Controller) Scene(k chart.Kind) (chart.Scene, bool) {
	e := c.registry.Entry(k)
	if e.Handle == nil {
		return chart.Scene{}, false
	}
	return e.Handle.Scene(), true
}

func (c *Controller) input(k chart.Kind) chart.Input {
	return chart.Input{
		Factor: c.state.Factor,
		Theme:  c.state.Theme,
		Params: c.params[k],
		Data:   c.custom[k],
	}
}

// render rebuilds one slot from the current state.
func (c *Controller) render(ctx context.Context, k chart.Kind) error {
	e := c.registry.entry(k)
	if e == nil {
		return fmt.Errorf("render: unknown chart kind %d", int(k))
	}
	if !e.Mounted {
		c.tracker.Record(ctx, devtools.Entry{Kind: devtools.EntrySkip, Subject: k.Slot(), Detail: ErrMissingTarget.Error()})
		return fmt.Errorf("render %s: %w", k.Slot(), ErrMissingTarget)
	}
	start := time.Now()
	scene, err := chart.Build(k, c.input(k))
	if err != nil {
		c.tracker.Record(ctx, devtools.Entry{Kind: devtools.EntryError, Subject: k.Slot(), Detail: err.Error()})
		return fmt.Errorf("render %s: %w", k.Slot(), err)
	}
	e.Handle = c.adapter.Render(e.Handle, scene)
	c.tracker.Record(ctx, devtools.Entry{Kind: devtools.EntryRender, Subject: k.Slot(), Duration: time.Since(start)})
	return nil
}

// BeginStartup marks every slot loading and returns the startup schedule.
func (c *Controller) BeginStartup() *Scheduler {
	c.registry.setLoading(true)
	return NewScheduler(chart.Kinds())
}

// RunTask renders the kind of one startup task. A missing target is logged
// and skipped.
func (c *Controller) RunTask(ctx context.Context, t Task) {
	_ = c.render(ctx, t.Kind)
}

// FinishStartup clears every loading flag.
func (c *Controller) FinishStartup() {
	c.registry.setLoading(false)
	c.notify(LevelSuccess, "All charts loaded")
}

// Startup runs the staggered startup sequence, waiting with sleep before
// each task. Loading flags are cleared even when sleep fails.
func (c *Controller) Startup(ctx context.Context, sleep func(context.Context, time.Duration) error) error {
	s := c.BeginStartup()
	for {
		t, ok := s.Next()
		if !ok {
			c.FinishStartup()
			return nil
		}
		if sleep != nil {
			if err := sleep(ctx, t.Delay); err != nil {
				c.registry.setLoading(false)
				return err
			}
		}
		c.RunTask(ctx, t)
	}
}

// Sleep waits for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// UpdateAll rebuilds every kind in order. It returns the number of slots
// rendered.
func (c *Controller) UpdateAll(ctx context.Context) int {
	rendered := 0
	for _, k := range chart.Kinds() {
		if err := c.render(ctx, k); err == nil {
			rendered++
		}
	}
	return rendered
}

// SetFilter changes which slots are visible without re-rendering.
func (c *Controller) SetFilter(f string) error {
	if !ValidFilter(f) {
		return fmt.Errorf("%w: %q", ErrUnknownFilter, f)
	}
	c.state.Filter = f
	for i := range c.registry.entries {
		e := &c.registry.entries[i]
		e.Hidden = f != FilterAll && f != e.Kind.ID()
	}
	return nil
}

// CycleFilter moves the filter by delta through Filters.
func (c *Controller) CycleFilter(delta int) string {
	filters := Filters()
	i := slices.Index(filters, c.state.Filter)
	i = ((i+delta)%len(filters) + len(filters)) % len(filters)
	_ = c.SetFilter(filters[i])
	return filters[i]
}

// ApplyCustom parses text as custom data for k and re-renders that slot.
// On failure nothing changes and an error notification is queued.
func (c *Controller) ApplyCustom(ctx context.Context, k chart.Kind, text string) error {
	data, err := chart.ParseCustom(k, text)
	if err != nil {
		c.notify(LevelError, "Invalid data for %s: %v", k.Title(), err)
		err = fmt.Errorf("%w: %s: %w", ErrMalformedInput, k.ID(), err)
		c.tracker.Record(ctx, devtools.Entry{Kind: devtools.EntryError, Subject: k.Slot(), Detail: err.Error()})
		return err
	}
	prev, had := c.custom[k]
	c.custom[k] = data
	if err := c.render(ctx, k); err != nil && !errors.Is(err, ErrMissingTarget) {
		if had {
			c.custom[k] = prev
		} else {
			delete(c.custom, k)
		}
		c.notify(LevelError, "Could not apply data to %s: %v", k.Title(), err)
		return fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	c.notify(LevelSuccess, "Custom data applied to %s", k.Title())
	return nil
}

// Refresh draws a new factor from [80,100) and updates every chart.
func (c *Controller) Refresh(ctx context.Context) float64 {
	c.state.Factor = 80 + c.rand()*20
	c.UpdateAll(ctx)
	c.notify(LevelSuccess, "Data refreshed")
	return c.state.Factor
}

// SetFactor sets the global factor and updates every chart. Negative
// values are treated as zero.
func (c *Controller) SetFactor(ctx context.Context, f float64) {
	c.state.Factor = max(f, 0)
	c.UpdateAll(ctx)
}

// AdjustFactor moves the factor by delta within the slider bounds. A factor
// already outside the bounds is never pulled back across them by a step in
// the other direction.
func (c *Controller) AdjustFactor(ctx context.Context, delta float64) float64 {
	cur := c.state.Factor
	low, high := min(MinFactor, cur), max(MaxFactor, cur)
	c.SetFactor(ctx, mathutil.Clamp(cur+delta, low, high))
	return c.state.Factor
}

// SetParam stores a raw parameter value for k and re-renders that slot.
func (c *Controller) SetParam(ctx context.Context, k chart.Kind, key, value string) error {
	values := c.params[k].Clone()
	if values == nil {
		values = chart.Values{}
	}
	values[key] = value
	c.params[k] = values
	return c.render(ctx, k)
}

// AdjustParam moves a parameter of k by delta steps.
func (c *Controller) AdjustParam(ctx context.Context, k chart.Kind, key string, delta int) error {
	for _, spec := range k.Params() {
		if spec.Key == key {
			return c.SetParam(ctx, k, key, spec.Adjust(c.params[k], delta))
		}
	}
	return fmt.Errorf("%s: unknown parameter %q", k.ID(), key)
}

// SetTheme switches the colour theme and updates every chart.
func (c *Controller) SetTheme(ctx context.Context, theme string) {
	c.state.Theme = theme
	c.UpdateAll(ctx)
}

// CycleTheme moves to the next theme.
func (c *Controller) CycleTheme(ctx context.Context) string {
	i := slices.Index(chart.Themes, c.state.Theme)
	c.SetTheme(ctx, chart.Themes[(i+1)%len(chart.Themes)])
	return c.state.Theme
}

// ToggleDragDrop flips drag-and-drop mode and returns the new value.
func (c *Controller) ToggleDragDrop() bool {
	c.state.DragDrop = !c.state.DragDrop
	if c.state.DragDrop {
		c.notify(LevelInfo, "Drag and drop mode enabled")
	}
	return c.state.DragDrop
}

// CloseDragDrop leaves drag-and-drop mode.
func (c *Controller) CloseDragDrop() {
	c.state.DragDrop = false
}
