// Package dataentry provides the custom data dialog for one chart.
package dataentry

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kpumuk/lazyplot/internal/chart"
	"github.com/kpumuk/lazyplot/internal/ui/components/frame"
	"github.com/kpumuk/lazyplot/internal/ui/components/jsonview"
	"github.com/kpumuk/lazyplot/internal/ui/dialogs"
)

// DialogID identifies the custom data dialog.
const DialogID dialogs.DialogID = "dataentry"

// SubmitMsg asks the app to apply text as custom data for Kind.
type SubmitMsg struct {
	Kind chart.Kind
	Text string
}

// ResultMsg reports the outcome of a submit back to the dialog. A nil Err
// closes the dialog.
type ResultMsg struct {
	Err error
}

// Styles holds the styles used by the custom data dialog.
type Styles struct {
	Title       lipgloss.Style
	Border      lipgloss.Style
	Prompt      lipgloss.Style
	Text        lipgloss.Style
	Muted       lipgloss.Style
	Placeholder lipgloss.Style
	Error       lipgloss.Style
	JSON        jsonview.Styles
}

var exampleKey = key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "example"))

// Model defines state for the custom data dialog.
type Model struct {
	styles       Styles
	kind         chart.Kind
	input        textinput.Model
	preview      jsonview.Model
	err          error
	pending      bool
	width        int
	height       int
	windowWidth  int
	windowHeight int
	row          int
	col          int
}

// Option configures the custom data dialog.
type Option func(*Model)

// New creates a custom data dialog for k.
func New(k chart.Kind, opts ...Option) *Model {
	m := &Model{
		kind:    k,
		input:   textinput.New(),
		preview: jsonview.New(),
	}
	m.input.Prompt = "json› "
	m.input.Placeholder = chart.Example(k)

	for _, opt := range opts {
		opt(m)
	}
	m.applyStyles()
	return m
}

// WithStyles sets the styles.
func WithStyles(s Styles) Option {
	return func(m *Model) { m.styles = s }
}

// WithValue prefills the input, typically with the current custom data.
func WithValue(text string) Option {
	return func(m *Model) {
		m.input.SetValue(text)
		m.preview.SetText(text)
	}
}

// Kind returns the chart the dialog edits.
func (m *Model) Kind() chart.Kind {
	return m.kind
}

// Err returns the last rejection.
func (m *Model) Err() error {
	return m.err
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
	case ResultMsg:
		m.pending = false
		m.err = msg.Err
		if msg.Err == nil {
			return m, dialogs.Close
		}
		return m, nil
	case tea.PasteMsg:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.refreshPreview()
		return m, cmd
	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, dialogs.Keys.Close):
			return m, dialogs.Close
		case key.Matches(msg, dialogs.Keys.Confirm):
			text := strings.TrimSpace(m.input.Value())
			if text == "" || m.pending {
				return m, nil
			}
			m.pending = true
			return m, dialogs.Emit(SubmitMsg{Kind: m.kind, Text: text})
		case key.Matches(msg, exampleKey):
			m.input.SetValue(chart.Example(m.kind))
			m.input.CursorEnd()
			m.refreshPreview()
			return m, nil
		case key.Matches(msg, dialogs.Keys.Up):
			m.preview.ScrollBy(-1, 0)
			return m, nil
		case key.Matches(msg, dialogs.Keys.Down):
			m.preview.ScrollBy(1, 0)
			return m, nil
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			m.refreshPreview()
		}
		return m, cmd
	}
	return m, nil
}

func (m *Model) refreshPreview() {
	m.err = nil
	m.preview.SetText(m.input.Value())
	m.preview.ScrollTop()
}

// View renders the dialog.
func (m *Model) View() string {
	contentWidth := max(m.width-4, 1)
	lines := []string{
		m.styles.Muted.Render("Keys: " + strings.Join(m.kind.Shape().Keys(), ", ")),
		m.input.View(),
		m.styles.Muted.Render(strings.Repeat("─", contentWidth)),
	}
	lines = append(lines, m.preview.View())

	status := ""
	switch {
	case m.err != nil:
		status = m.styles.Error.Render(m.err.Error())
	case m.preview.Err() != nil:
		status = m.styles.Muted.Render("not valid JSON yet")
	}
	lines = append(lines, lipgloss.NewStyle().MaxWidth(contentWidth).Render(status))

	box := frame.New(
		frame.WithStyles(dialogs.FrameStyles(m.styles.Title, m.styles.Muted, m.styles.Border)),
		frame.WithTitle("Custom data"),
		frame.WithTag(m.kind.Title()),
		frame.WithTitlePadding(0),
		frame.WithFooter("enter apply • ctrl+e example • esc cancel"),
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
	styles.Blurred = styles.Focused
	m.input.SetStyles(styles)
	m.preview = jsonview.New(jsonview.WithStyles(m.styles.JSON))
	m.preview.SetText(m.input.Value())
}

func (m *Model) applySize() {
	m.width, m.height = dialogs.Size(m.windowWidth, m.windowHeight, 72, 20)
	m.row, m.col = dialogs.Center(m.windowWidth, m.windowHeight, m.width, m.height)
	contentWidth := max(m.width-4, 1)
	m.input.SetWidth(max(contentWidth-lipgloss.Width(m.input.Prompt)-1, 1))
	// Keys line, input, divider and status surround the preview.
	m.preview.SetSize(contentWidth, max(m.height-2-4, 1))
}
