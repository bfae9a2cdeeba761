// Package footer renders the bottom bar of key hints.
package footer

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Styles holds the styles needed by the footer.
type Styles struct {
	Bar  lipgloss.Style
	Key  lipgloss.Style
	Item lipgloss.Style
}

// DefaultStyles returns default styles for the footer.
func DefaultStyles() Styles {
	return Styles{
		Bar:  lipgloss.NewStyle().Padding(0, 1),
		Key:  lipgloss.NewStyle().Padding(0, 1),
		Item: lipgloss.NewStyle().PaddingRight(1),
	}
}

// Model defines state for the footer component.
type Model struct {
	styles   Styles
	bindings []key.Binding
	width    int
}

// Option is used to set options in New.
type Option func(*Model)

// New creates a new footer model.
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

// WithBindings sets the bindings to display.
func WithBindings(bindings []key.Binding) Option {
	return func(m *Model) {
		m.bindings = bindings
	}
}

// WithWidth sets the width.
func WithWidth(w int) Option {
	return func(m *Model) {
		m.width = w
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

// Height returns the height of the footer (always 1).
func (m Model) Height() int {
	return 1
}

// View renders enabled bindings until the width runs out.
func (m Model) View() string {
	if m.width <= 0 {
		return ""
	}
	inner := max(m.width-m.styles.Bar.GetHorizontalFrameSize(), 0)

	var b strings.Builder
	used := 0
	for _, binding := range m.bindings {
		if !binding.Enabled() {
			continue
		}
		help := binding.Help()
		item := m.styles.Key.Render(help.Key) + m.styles.Item.Render(help.Desc)
		w := lipgloss.Width(item)
		if used+w > inner {
			break
		}
		b.WriteString(item)
		used += w
	}
	return m.styles.Bar.Width(m.width).Render(ansi.Truncate(b.String(), inner, ""))
}
