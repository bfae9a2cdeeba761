// Package filter provides the chart filter dialog: a type-to-narrow list of
// "all" plus every chart kind.
package filter

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kpumuk/lazyplot/internal/mathutil"
	"github.com/kpumuk/lazyplot/internal/ui/components/frame"
	"github.com/kpumuk/lazyplot/internal/ui/dialogs"
)

// DialogID identifies the filter dialog.
const DialogID dialogs.DialogID = "filter"

// Choice is one selectable filter value.
type Choice struct {
	Value string
	Label string
}

// ActionMsg reports the chosen filter value.
type ActionMsg struct {
	Filter string
}

// Styles holds the styles used by the filter dialog.
type Styles struct {
	Title       lipgloss.Style
	Border      lipgloss.Style
	Prompt      lipgloss.Style
	Text        lipgloss.Style
	Muted       lipgloss.Style
	Placeholder lipgloss.Style
	Selected    lipgloss.Style
}

// Model defines state for the filter dialog component.
type Model struct {
	styles       Styles
	input        textinput.Model
	choices      []Choice
	matches      []Choice
	current      string
	cursor       int
	width        int
	height       int
	windowWidth  int
	windowHeight int
	row          int
	col          int
}

// Option configures the filter dialog.
type Option func(*Model)

// New creates a new filter dialog model.
func New(opts ...Option) *Model {
	m := &Model{input: textinput.New()}
	m.input.Prompt = "› "
	m.input.Placeholder = "type to narrow"

	for _, opt := range opts {
		opt(m)
	}

	m.applyStyles()
	m.narrow()
	return m
}

// WithStyles sets the styles.
func WithStyles(s Styles) Option {
	return func(m *Model) { m.styles = s }
}

// WithChoices sets the selectable values.
func WithChoices(choices []Choice) Option {
	return func(m *Model) { m.choices = choices }
}

// WithCurrent preselects the active filter.
func WithCurrent(value string) Option {
	return func(m *Model) { m.current = value }
}

// Init focuses the input.
func (m *Model) Init() tea.Cmd {
	return m.input.Focus()
}

// Update handles input and dialog lifecycle.
func (m *Model) Update(msg tea.Msg) (dialogs.DialogModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth, m.windowHeight = msg.Width, msg.Height
		m.applySize()
		return m, nil
	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, dialogs.Keys.Close):
			return m, dialogs.Close
		case key.Matches(msg, dialogs.Keys.Up, dialogs.Keys.Prev):
			m.cursor = mathutil.Clamp(m.cursor-1, 0, max(len(m.matches)-1, 0))
			return m, nil
		case key.Matches(msg, dialogs.Keys.Down, dialogs.Keys.Next):
			m.cursor = mathutil.Clamp(m.cursor+1, 0, max(len(m.matches)-1, 0))
			return m, nil
		case key.Matches(msg, dialogs.Keys.Confirm):
			if len(m.matches) == 0 {
				return m, nil
			}
			chosen := m.matches[m.cursor].Value
			if chosen == m.current {
				return m, dialogs.Close
			}
			return m, tea.Batch(dialogs.Emit(ActionMsg{Filter: chosen}), dialogs.Close)
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			m.narrow()
		}
		return m, cmd
	}
	return m, nil
}

// Matches returns the choices left after narrowing.
func (m *Model) Matches() []Choice {
	return m.matches
}

// narrow keeps choices whose value or label contains the query and moves the
// cursor to the current filter when it survives.
func (m *Model) narrow() {
	query := strings.ToLower(strings.TrimSpace(m.input.Value()))
	m.matches = m.matches[:0]
	m.cursor = 0
	for _, c := range m.choices {
		if query != "" &&
			!strings.Contains(strings.ToLower(c.Value), query) &&
			!strings.Contains(strings.ToLower(c.Label), query) {
			continue
		}
		if c.Value == m.current {
			m.cursor = len(m.matches)
		}
		m.matches = append(m.matches, c)
	}
}

// View renders the filter dialog.
func (m *Model) View() string {
	contentWidth, contentHeight := max(m.width-4, 1), max(m.height-2, 1)
	lines := []string{m.input.View(), ""}

	visible := max(contentHeight-len(lines), 1)
	start := mathutil.Clamp(m.cursor-visible+1, 0, max(len(m.matches)-visible, 0))
	for i := start; i < min(start+visible, len(m.matches)); i++ {
		c := m.matches[i]
		label := c.Label
		if c.Value == m.current {
			label += " •"
		}
		line := lipgloss.NewStyle().Width(contentWidth).MaxWidth(contentWidth).Render(label)
		if i == m.cursor {
			line = m.styles.Selected.Render(line)
		} else {
			line = m.styles.Text.Render(line)
		}
		lines = append(lines, line)
	}
	if len(m.matches) == 0 {
		lines = append(lines, m.styles.Muted.Render("no matching chart"))
	}

	box := frame.New(
		frame.WithStyles(dialogs.FrameStyles(m.styles.Title, m.styles.Muted, m.styles.Border)),
		frame.WithTitle("Filter"),
		frame.WithTitlePadding(0),
		frame.WithContent(strings.Join(lines, "\n")),
		frame.WithPadding(1),
		frame.WithSize(m.width, m.height),
		frame.WithFocused(true),
	)
	return box.View()
}

// Position returns the dialog position.
func (m *Model) Position() (int, int) {
	return m.row, m.col
}

// ID returns the dialog ID.
func (m *Model) ID() dialogs.DialogID {
	return DialogID
}

func (m *Model) applyStyles() {
	styles := m.input.Styles()
	styles.Focused.Prompt = m.styles.Prompt
	styles.Focused.Text = m.styles.Text
	styles.Focused.Placeholder = m.styles.Placeholder
	styles.Blurred.Prompt = m.styles.Prompt
	styles.Blurred.Text = m.styles.Text
	styles.Blurred.Placeholder = m.styles.Placeholder
	m.input.SetStyles(styles)
}

func (m *Model) applySize() {
	m.width, m.height = dialogs.Size(m.windowWidth, m.windowHeight, 40, len(m.choices)+4)
	m.row, m.col = dialogs.Center(m.windowWidth, m.windowHeight, m.width, m.height)
	// textinput renders a virtual cursor that adds one extra column.
	m.input.SetWidth(max(m.width-4-lipgloss.Width(m.input.Prompt)-1, 1))
}
