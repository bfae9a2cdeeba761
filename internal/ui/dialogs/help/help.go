// Package help provides the keybindings help dialog.
package help

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/kpumuk/lazyplot/internal/mathutil"
	"github.com/kpumuk/lazyplot/internal/ui/components/frame"
	"github.com/kpumuk/lazyplot/internal/ui/components/scrollbar"
	"github.com/kpumuk/lazyplot/internal/ui/dialogs"
)

// DialogID identifies the help dialog.
const DialogID dialogs.DialogID = "help"

// Section groups bindings or free-form lines under a title.
type Section struct {
	Title    string
	Bindings []key.Binding
	Lines    []string
}

// Styles holds the styles used by the help dialog.
type Styles struct {
	Title     lipgloss.Style
	Border    lipgloss.Style
	Section   lipgloss.Style
	Key       lipgloss.Style
	Desc      lipgloss.Style
	Muted     lipgloss.Style
	Scrollbar scrollbar.Styles
}

// Model defines state for the help dialog component.
type Model struct {
	styles       Styles
	sections     []Section
	width        int
	height       int
	windowWidth  int
	windowHeight int
	row          int
	col          int
	yOffset      int
}

// Option configures the help dialog.
type Option func(*Model)

// New creates a new help dialog model.
func New(opts ...Option) *Model {
	m := &Model{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WithStyles sets the styles.
func WithStyles(s Styles) Option {
	return func(m *Model) { m.styles = s }
}

// WithSections sets the help sections.
func WithSections(sections []Section) Option {
	return func(m *Model) { m.sections = sections }
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
		switch msg.String() {
		case "?", "esc", "q":
			return m, dialogs.Close
		case "up", "k":
			m.scrollTo(m.yOffset - 1)
		case "down", "j":
			m.scrollTo(m.yOffset + 1)
		case "pgup":
			m.scrollTo(m.yOffset - m.contentHeight())
		case "pgdown", "space":
			m.scrollTo(m.yOffset + m.contentHeight())
		case "home", "g":
			m.scrollTo(0)
		case "end", "G":
			m.scrollTo(len(m.lines()))
		}
	}
	return m, nil
}

// View renders the help dialog.
func (m *Model) View() string {
	height := m.contentHeight()
	lines := m.lines()
	bar := scrollbar.New(m.styles.Scrollbar, height)
	bar.SetRange(len(lines), height, m.yOffset)
	barLines := strings.Split(bar.View(), "\n")

	width := m.contentWidth()
	out := make([]string, 0, height)
	for i := range height {
		line := ""
		if idx := m.yOffset + i; idx < len(lines) {
			line = lines[idx]
		}
		out = append(out, padRight(line, width-1)+barLines[i])
	}

	box := frame.New(
		frame.WithStyles(dialogs.FrameStyles(m.styles.Title, m.styles.Muted, m.styles.Border)),
		frame.WithTitle("Help"),
		frame.WithTitlePadding(0),
		frame.WithFooter("esc close • ↑/↓ scroll"),
		frame.WithContent(strings.Join(out, "\n")),
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
	m.width, m.height = dialogs.Size(m.windowWidth, m.windowHeight, max(m.windowWidth*2/3, 64), max(m.windowHeight*2/3, 12))
	m.row, m.col = dialogs.Center(m.windowWidth, m.windowHeight, m.width, m.height)
	m.scrollTo(m.yOffset)
}

func (m *Model) contentWidth() int {
	return max(m.width-4, 1)
}

func (m *Model) contentHeight() int {
	return max(m.height-2, 1)
}

func (m *Model) scrollTo(offset int) {
	m.yOffset = mathutil.Clamp(offset, 0, max(len(m.lines())-m.contentHeight(), 0))
}

// lines lays sections out in two columns when the dialog is wide enough.
func (m *Model) lines() []string {
	width := m.contentWidth() - 1
	if width < 48 {
		return renderSections(m.sections, width, m.styles)
	}
	const gap = 4
	colWidth := (width - gap) / 2
	left, right := splitSections(m.sections)
	l := renderSections(left, colWidth, m.styles)
	r := renderSections(right, colWidth, m.styles)
	out := make([]string, max(len(l), len(r)))
	for i := range out {
		var a, b string
		if i < len(l) {
			a = l[i]
		}
		if i < len(r) {
			b = r[i]
		}
		out[i] = padRight(a, colWidth) + strings.Repeat(" ", gap) + b
	}
	return out
}

// splitSections keeps section order and moves the boundary so both columns
// hold about the same number of lines.
func splitSections(sections []Section) ([]Section, []Section) {
	total := 0
	for _, s := range sections {
		total += sectionHeight(s)
	}
	acc := 0
	for i, s := range sections {
		if acc > 0 && acc+sectionHeight(s)/2 >= total/2 {
			return sections[:i], sections[i:]
		}
		acc += sectionHeight(s)
	}
	return sections, nil
}

func sectionHeight(s Section) int {
	return 2 + len(s.Lines) + len(s.Bindings)
}

func renderSections(sections []Section, width int, styles Styles) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for i, section := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		if title := strings.TrimSpace(section.Title); title != "" {
			lines = append(lines, ansi.Truncate(styles.Section.Render(title), width, ""))
		}
		for _, line := range section.Lines {
			lines = append(lines, ansi.Truncate(styles.Muted.Render(line), width, ""))
		}

		keyWidth := 0
		for _, b := range section.Bindings {
			if b.Enabled() {
				keyWidth = max(keyWidth, ansi.StringWidth(b.Help().Key))
			}
		}
		for _, b := range section.Bindings {
			if !b.Enabled() || b.Help().Key == "" {
				continue
			}
			k := padRight(b.Help().Key, keyWidth)
			line := styles.Key.Render(k) + "  " + styles.Desc.Render(b.Help().Desc)
			lines = append(lines, ansi.Truncate(line, width, ""))
		}
	}
	return lines
}

func padRight(value string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(value)
	if w > width {
		return ansi.Truncate(value, width, "")
	}
	return value + strings.Repeat(" ", width-w)
}
