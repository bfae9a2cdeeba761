// Package frame renders a titled bordered box used for chart panels and dialogs.
package frame

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// StyleState holds styles for a focus state.
type StyleState struct {
	Title  lipgloss.Style
	Muted  lipgloss.Style
	Border lipgloss.Style
}

// Styles holds focus-aware styles for a frame.
type Styles struct {
	Focused StyleState
	Blurred StyleState
}

// DefaultStyles returns default styles for a frame.
func DefaultStyles() Styles {
	state := StyleState{
		Title:  lipgloss.NewStyle().Bold(true),
		Muted:  lipgloss.NewStyle().Faint(true),
		Border: lipgloss.NewStyle(),
	}
	return Styles{
		Focused: state,
		Blurred: state,
	}
}

// Model defines state for the frame component.
type Model struct {
	styles       Styles
	title        Title
	meta         string
	footer       string
	content      string
	width        int
	height       int
	minHeight    int
	padding      int
	titlePadding int
	focused      bool
	border       lipgloss.Border
}

// Option is used to set options in New.
type Option func(*Model)

// New creates a new frame model.
func New(opts ...Option) Model {
	m := Model{
		styles:       DefaultStyles(),
		titlePadding: 1,
		border:       lipgloss.RoundedBorder(),
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

// WithTitle sets the title.
func WithTitle(title string) Option {
	return func(m *Model) {
		m.title.text = title
	}
}

// WithTag sets a bracketed label rendered after the title.
func WithTag(tag string) Option {
	return func(m *Model) {
		m.title.tag = tag
	}
}

// WithMeta sets a label rendered at the right end of the top border.
func WithMeta(meta string) Option {
	return func(m *Model) {
		m.meta = meta
	}
}

// WithFooter sets a label rendered inside the bottom border.
func WithFooter(footer string) Option {
	return func(m *Model) {
		m.footer = footer
	}
}

// WithContent sets the content.
func WithContent(content string) Option {
	return func(m *Model) {
		m.content = content
	}
}

// WithSize sets width and height.
func WithSize(width, height int) Option {
	return func(m *Model) {
		m.width = width
		m.height = height
	}
}

// WithMinHeight sets the minimum height.
func WithMinHeight(height int) Option {
	return func(m *Model) {
		m.minHeight = height
	}
}

// WithPadding sets horizontal padding inside the frame.
func WithPadding(padding int) Option {
	return func(m *Model) {
		m.padding = padding
	}
}

// WithTitlePadding sets the title padding.
func WithTitlePadding(padding int) Option {
	return func(m *Model) {
		m.titlePadding = padding
	}
}

// WithFocused sets the focus state.
func WithFocused(focused bool) Option {
	return func(m *Model) {
		m.focused = focused
	}
}

// WithBorder sets the border characters.
func WithBorder(border lipgloss.Border) Option {
	return func(m *Model) {
		m.border = border
	}
}

// ContentSize returns the inner area available to content.
func (m Model) ContentSize() (int, int) {
	height := max(m.height, m.minHeight)
	return max(m.width-2-2*m.padding, 0), max(height-2, 0)
}

// View renders the frame with the current content.
func (m Model) View() string {
	height := max(m.height, m.minHeight)
	if m.width < 2 || height < 2 {
		return ""
	}

	state := m.styles.Blurred
	if m.focused {
		state = m.styles.Focused
	}

	inner := m.width - 2
	rows := height - 2

	lines := make([]string, 0, height)
	lines = append(lines, m.topBorder(state, inner))
	left := state.Border.Render(m.border.Left)
	right := state.Border.Render(m.border.Right)
	content := strings.Split(m.content, "\n")
	for i := range rows {
		line := ""
		if i < len(content) {
			line = content[i]
		}
		lines = append(lines, left+padLine(line, inner, m.padding)+right)
	}
	lines = append(lines, m.bottomBorder(state, inner))
	return strings.Join(lines, "\n")
}

func (m Model) topBorder(state StyleState, inner int) string {
	bar := state.Border.Render(m.border.Top)
	available := max(inner-2, 0)

	meta := ""
	if m.meta != "" {
		meta = state.Border.Render("╖") + state.Muted.Render(" "+m.meta+" ") + state.Border.Render("╓")
	}
	metaWidth := lipgloss.Width(meta)
	if metaWidth > available/2 {
		meta, metaWidth = "", 0
	}

	title := m.title.Render(state, available-metaWidth, m.titlePadding)
	fill := max(available-lipgloss.Width(title)-metaWidth, 0)

	return state.Border.Render(m.border.TopLeft) + bar + title +
		strings.Repeat(bar, fill) + meta + bar +
		state.Border.Render(m.border.TopRight)
}

func (m Model) bottomBorder(state StyleState, inner int) string {
	bar := state.Border.Render(m.border.Bottom)
	footer := ""
	if m.footer != "" && inner > 4 {
		footer = state.Muted.Render(" " + truncateWithEllipsis(m.footer, inner-4) + " ")
	}
	fill := max(inner-1-lipgloss.Width(footer), 0)
	if footer == "" {
		fill = inner
	} else {
		footer = bar + footer
	}
	return state.Border.Render(m.border.BottomLeft) + footer +
		strings.Repeat(bar, fill) +
		state.Border.Render(m.border.BottomRight)
}

func padLine(line string, width, padding int) string {
	if width <= 0 {
		return ""
	}
	if padding > 0 {
		line = strings.Repeat(" ", padding) + line
	}
	w := lipgloss.Width(line)
	if w > width {
		return ansi.Truncate(line, width, "")
	}
	return line + strings.Repeat(" ", width-w)
}
