// Package confirm provides a yes/no confirmation dialog.
package confirm

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kpumuk/lazyplot/internal/ui/components/frame"
	"github.com/kpumuk/lazyplot/internal/ui/dialogs"
)

// DialogID identifies the confirmation dialog.
const DialogID dialogs.DialogID = "confirm"

// ActionMsg reports the answer together with the caller's tag.
type ActionMsg struct {
	Confirmed bool
	Tag       string
}

// Styles holds the styles used by the confirmation dialog.
type Styles struct {
	Title       lipgloss.Style
	Border      lipgloss.Style
	Text        lipgloss.Style
	Muted       lipgloss.Style
	Button      lipgloss.Style
	ButtonFocus lipgloss.Style
}

// Model defines state for the confirmation dialog component.
type Model struct {
	styles       Styles
	title        string
	message      string
	tag          string
	yes          bool
	width        int
	height       int
	windowWidth  int
	windowHeight int
	row          int
	col          int
}

// Option configures the confirmation dialog.
type Option func(*Model)

// New creates a confirmation dialog with "No" selected.
func New(opts ...Option) *Model {
	m := &Model{title: "Confirm"}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WithStyles sets the styles.
func WithStyles(s Styles) Option {
	return func(m *Model) { m.styles = s }
}

// WithTitle sets the dialog title.
func WithTitle(title string) Option {
	return func(m *Model) { m.title = strings.TrimSpace(title) }
}

// WithMessage sets the question.
func WithMessage(message string) Option {
	return func(m *Model) { m.message = strings.TrimSpace(message) }
}

// WithTag sets the value echoed back in ActionMsg.
func WithTag(tag string) Option {
	return func(m *Model) { m.tag = tag }
}

// Init implements dialogs.DialogModel.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles input and dialog lifecycle.
func (m *Model) Update(msg tea.Msg) (dialogs.DialogModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth, m.windowHeight = msg.Width, msg.Height
		m.applySize()
	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, dialogs.Keys.Close):
			return m, dialogs.Close
		case msg.String() == "y":
			return m, m.answer(true)
		case msg.String() == "n":
			return m, m.answer(false)
		case key.Matches(msg, dialogs.Keys.Confirm):
			return m, m.answer(m.yes)
		case key.Matches(msg, dialogs.Keys.Next, dialogs.Keys.Prev),
			msg.String() == "left", msg.String() == "right", msg.String() == "h", msg.String() == "l":
			m.yes = !m.yes
		}
	}
	return m, nil
}

func (m *Model) answer(yes bool) tea.Cmd {
	return tea.Batch(dialogs.Emit(ActionMsg{Confirmed: yes, Tag: m.tag}), dialogs.Close)
}

// View renders the confirmation dialog.
func (m *Model) View() string {
	contentWidth := max(m.width-4, 1)
	message := lipgloss.Wrap(m.message, contentWidth, " ")
	lines := make([]string, 0, 4)
	for _, line := range strings.Split(message, "\n") {
		lines = append(lines, center(m.styles.Text.Render(line), contentWidth))
	}
	lines = append(lines, "", center(m.buttons(), contentWidth))

	box := frame.New(
		frame.WithStyles(dialogs.FrameStyles(m.styles.Title, m.styles.Muted, m.styles.Border)),
		frame.WithTitle(m.title),
		frame.WithTitlePadding(0),
		frame.WithContent(strings.Join(lines, "\n")),
		frame.WithPadding(1),
		frame.WithSize(m.width, m.height),
		frame.WithFocused(true),
	)
	return box.View()
}

func (m *Model) buttons() string {
	yes, no := m.styles.Button, m.styles.ButtonFocus
	if m.yes {
		yes, no = no, yes
	}
	return yes.Render("Yes") + "  " + no.Render("No")
}

// Position returns the dialog position.
func (m *Model) Position() (int, int) {
	return m.row, m.col
}

// ID returns the dialog ID.
func (m *Model) ID() dialogs.DialogID {
	return DialogID
}

func (m *Model) applySize() {
	width := max(m.windowWidth/2, 40)
	contentWidth := max(width-4, 1)
	height := lipgloss.Height(lipgloss.Wrap(m.message, contentWidth, " ")) + 4
	m.width, m.height = dialogs.Size(m.windowWidth, m.windowHeight, width, height)
	m.row, m.col = dialogs.Center(m.windowWidth, m.windowHeight, m.width, m.height)
}

func center(line string, width int) string {
	pad := (width - lipgloss.Width(line)) / 2
	if pad <= 0 {
		return line
	}
	return strings.Repeat(" ", pad) + line
}
