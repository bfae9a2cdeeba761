// Package statusbar renders the top bar with the shared dashboard controls.
package statusbar

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/kpumuk/lazyplot/internal/ui/format"
)

// Data holds the values shown in the bar.
type Data struct {
	Factor   float64
	Theme    string
	Filter   string
	Style    string
	Visible  int
	Total    int
	Loading  bool
	DragDrop bool
}

// Styles holds the styles needed by the status bar.
type Styles struct {
	Bar       lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Separator lipgloss.Style
}

// DefaultStyles returns default styles for the status bar.
func DefaultStyles() Styles {
	return Styles{
		Bar:       lipgloss.NewStyle().Padding(0, 1),
		Label:     lipgloss.NewStyle().Faint(true),
		Value:     lipgloss.NewStyle().Bold(true),
		Separator: lipgloss.NewStyle().Faint(true),
	}
}

// Model defines state for the status bar component.
type Model struct {
	styles Styles
	brand  string
	data   Data
	width  int
}

// Option is used to set options in New.
type Option func(*Model)

// New creates a new status bar model.
func New(opts ...Option) Model {
	m := Model{
		styles: DefaultStyles(),
	}

	for _, opt := range opts {
		opt(&m)
	}

	return m
}

// WithStyles sets the styles.
func WithStyles(s Styles) Option {
	return func(m *Model) {
		m.styles = s
	}
}

// WithBrand sets the application name shown first.
func WithBrand(brand string) Option {
	return func(m *Model) {
		m.brand = brand
	}
}

// WithWidth sets the width.
func WithWidth(w int) Option {
	return func(m *Model) {
		m.width = w
	}
}

// WithData sets the initial data.
func WithData(d Data) Option {
	return func(m *Model) {
		m.data = d
	}
}

// SetStyles sets the styles.
func (m *Model) SetStyles(s Styles) {
	m.styles = s
}

// SetWidth sets the width.
func (m *Model) SetWidth(w int) {
	m.width = w
}

// SetData sets the displayed values.
func (m *Model) SetData(d Data) {
	m.data = d
}

// Data returns the displayed values.
func (m Model) Data() Data {
	return m.data
}

// Height returns the height of the status bar (always 1).
func (m Model) Height() int {
	return 1
}

// View renders the status bar.
func (m Model) View() string {
	if m.width <= 0 {
		return ""
	}

	item := func(label, value string) string {
		return m.styles.Label.Render(label+": ") + m.styles.Value.Render(value)
	}
	items := []string{
		item("Scale", format.Factor(m.data.Factor)),
		item("Theme", m.data.Theme),
		item("Filter", m.data.Filter),
		item("Style", m.data.Style),
		item("Charts", format.Ratio(m.data.Visible, m.data.Total)),
	}
	if m.data.Loading {
		items = append(items, m.styles.Value.Render("Loading…"))
	}
	if m.data.DragDrop {
		items = append(items, m.styles.Value.Render("Drop mode"))
	}
	if m.brand != "" {
		items = append([]string{m.styles.Value.Render(m.brand)}, items...)
	}

	content := strings.Join(items, m.styles.Separator.Render(" │ "))
	inner := max(m.width-m.styles.Bar.GetHorizontalFrameSize(), 0)
	content = ansi.Truncate(content, inner, "…")
	return m.styles.Bar.Width(m.width).Render(content)
}
