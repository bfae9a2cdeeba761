// Package dashboard orchestrates the chart builders, the renderer adapter
// and the shared dashboard state.
package dashboard

import (
	"github.com/kpumuk/lazyplot/internal/chart"
	"github.com/kpumuk/lazyplot/internal/preset"
)

// FilterAll shows every chart.
const FilterAll = "all"

// Scale factor bounds used by the interactive controls.
const (
	DefaultFactor = 100
	MinFactor     = 0
	MaxFactor     = 100
)

// State is the shared dashboard state.
type State struct {
	// Factor is the global scale factor in percent.
	Factor float64
	// Filter is FilterAll or a chart kind id.
	Filter string
	Theme  string
	// Style is the applied style preset; HasStyle is false until one is applied.
	Style    preset.Preset
	HasStyle bool
	DragDrop bool
}

// DefaultState returns the startup state.
func DefaultState() State {
	return State{
		Factor: DefaultFactor,
		Filter: FilterAll,
		Theme:  chart.DefaultTheme,
		Style:  preset.Default(),
	}
}

// Filters lists the accepted filter values in display order.
func Filters() []string {
	out := []string{FilterAll}
	for _, k := range chart.Kinds() {
		out = append(out, k.ID())
	}
	return out
}

// ValidFilter reports whether f is FilterAll or a kind id.
func ValidFilter(f string) bool {
	if f == FilterAll {
		return true
	}
	k, ok := chart.ParseKind(f)
	return ok && k.ID() == f
}
