package dashboard

import (
	"context"
	"fmt"
	"slices"

	"github.com/kpumuk/lazyplot/internal/chart"
	"github.com/kpumuk/lazyplot/internal/preset"
)

// ApplyStyle makes p the current style. A colour scheme naming a known
// theme also switches the theme. Every chart is updated.
func (c *Controller) ApplyStyle(ctx context.Context, p preset.Preset) error {
	if err := p.Validate(); err != nil {
		c.notify(LevelError, "Invalid style: %v", err)
		return fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	c.state.Style = p
	c.state.HasStyle = true
	if slices.Contains(chart.Themes, p.ColorScheme) {
		c.state.Theme = p.ColorScheme
	}
	c.UpdateAll(ctx)
	c.notify(LevelSuccess, "Style applied")
	return nil
}

// ResetStyle restores the default style and theme.
func (c *Controller) ResetStyle(ctx context.Context) {
	c.state.Style = preset.Default()
	c.state.HasStyle = false
	c.state.Theme = chart.DefaultTheme
	c.UpdateAll(ctx)
	c.notify(LevelInfo, "Style reset to defaults")
}

// SaveStyle persists the applied style. Without one it only warns.
func (c *Controller) SaveStyle(ctx context.Context) error {
	save := c.StyleSaver()
	if save == nil {
		return nil
	}
	return c.StyleSaved(save(ctx))
}

// StyleSaver returns the store write for the applied style. The returned
// func touches only the store, so it may run outside the update loop. It is
// nil, with a warning queued, when no style is applied.
func (c *Controller) StyleSaver() func(context.Context) error {
	if !c.state.HasStyle {
		c.notify(LevelWarning, "No style applied yet")
		return nil
	}
	store, p := c.store, c.state.Style
	return func(ctx context.Context) error {
		return store.Save(ctx, p)
	}
}

// StyleSaved reports the outcome of a StyleSaver call.
func (c *Controller) StyleSaved(err error) error {
	if err != nil {
		c.notify(LevelError, "Could not save style: %v", err)
		return err
	}
	c.notify(LevelSuccess, "Style saved")
	return nil
}

// LoadStyle applies the persisted style, if any.
func (c *Controller) LoadStyle(ctx context.Context) error {
	p, ok, err := c.StyleLoader()(ctx)
	return c.StyleLoaded(ctx, p, ok, err)
}

// StyleLoader returns the store read for the persisted style. Like
// StyleSaver, the returned func touches only the store.
func (c *Controller) StyleLoader() func(context.Context) (preset.Preset, bool, error) {
	return c.store.Load
}

// StyleLoaded applies the result of a StyleLoader call.
func (c *Controller) StyleLoaded(ctx context.Context, p preset.Preset, ok bool, err error) error {
	if err != nil {
		c.notify(LevelError, "Could not load style: %v", err)
		return err
	}
	if !ok {
		c.notify(LevelInfo, "No saved style")
		return nil
	}
	return c.ApplyStyle(ctx, p)
}
