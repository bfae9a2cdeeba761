// Package inspect shows the scene description of one chart as JSON.
package inspect

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kpumuk/lazyplot/internal/chart"
	"github.com/kpumuk/lazyplot/internal/ui/components/frame"
	"github.com/kpumuk/lazyplot/internal/ui/components/jsonview"
	"github.com/kpumuk/lazyplot/internal/ui/components/scrollbar"
	"github.com/kpumuk/lazyplot/internal/ui/dialogs"
)

// DialogID identifies the inspect dialog.
const DialogID dialogs.DialogID = "inspect"

// CopyMsg asks the app to copy Text to the clipboard.
type CopyMsg struct {
	Text string
}

// Styles holds the styles used by the inspect dialog.
type Styles struct {
	Title     lipgloss.Style
	Border    lipgloss.Style
	Muted     lipgloss.Style
	JSON      jsonview.Styles
	Scrollbar scrollbar.Styles
}

// Model defines state for the inspect dialog.
type Model struct {
	styles       Styles
	scene        chart.Scene
	view         jsonview.Model
	width        int
	height       int
	windowWidth  int
	windowHeight int
	row          int
	col          int
}

// Option configures the inspect dialog.
type Option func(*Model)

// New creates an inspect dialog for scene.
func New(scene chart.Scene, opts ...Option) *Model {
	m := &Model{scene: scene}
	for _, opt := range opts {
		opt(m)
	}
	m.view = jsonview.New(jsonview.WithStyles(m.styles.JSON))
	m.view.SetValue(scene)
	return m
}

// WithStyles sets the styles.
func WithStyles(s Styles) Option {
	return func(m *Model) { m.styles = s }
}

// Init implements dialogs.DialogModel.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles scrolling and dialog lifecycle.
func (m *Model) Update(msg tea.Msg) (dialogs.DialogModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth, m.windowHeight = msg.Width, msg.Height
		m.applySize()
	case tea.KeyPressMsg:
		page := max(m.height-2, 1)
		switch msg.String() {
		case "esc", "i", "q":
			return m, dialogs.Close
		case "y":
			return m, dialogs.Emit(CopyMsg{Text: m.view.Text()})
		case "up", "k":
			m.view.ScrollBy(-1, 0)
		case "down", "j":
			m.view.ScrollBy(1, 0)
		case "left", "h":
			m.view.ScrollBy(0, -4)
		case "right", "l":
			m.view.ScrollBy(0, 4)
		case "pgup":
			m.view.ScrollBy(-page, 0)
		case "pgdown", "space":
			m.view.ScrollBy(page, 0)
		case "home", "g":
			m.view.ScrollTop()
		case "end", "G":
			m.view.ScrollBy(m.view.LineCount(), 0)
		}
	}
	return m, nil
}

// Offset returns the first visible line.
func (m *Model) Offset() int {
	return m.view.Offset()
}

// View renders the dialog.
func (m *Model) View() string {
	height := max(m.height-2, 1)
	bar := scrollbar.New(m.styles.Scrollbar, height)
	bar.SetRange(m.view.LineCount(), height, m.view.Offset())
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.view.View(), bar.View())

	box := frame.New(
		frame.WithStyles(dialogs.FrameStyles(m.styles.Title, m.styles.Muted, m.styles.Border)),
		frame.WithTitle(m.scene.Title),
		frame.WithTag(m.scene.Slot),
		frame.WithTitlePadding(0),
		frame.WithMeta(strconv.Itoa(len(m.scene.Series))+" series"),
		frame.WithFooter(strings.Join([]string{"↑/↓ scroll", "y copy", "esc close"}, " • ")),
		frame.WithContent(body),
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

func (m *Model) applySize() {
	m.width, m.height = dialogs.Size(m.windowWidth, m.windowHeight, max(m.windowWidth*3/4, 60), max(m.windowHeight*3/4, 12))
	m.row, m.col = dialogs.Center(m.windowWidth, m.windowHeight, m.width, m.height)
	// One column is reserved for the scrollbar.
	m.view.SetSize(max(m.width-4-1, 1), max(m.height-2, 1))
}
