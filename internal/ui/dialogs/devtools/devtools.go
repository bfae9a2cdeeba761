// Package devtools provides a quake-style console over the dashboard event log.
package devtools

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kpumuk/lazyplot/internal/devtools"
	"github.com/kpumuk/lazyplot/internal/ui/components/frame"
	"github.com/kpumuk/lazyplot/internal/ui/components/table"
	"github.com/kpumuk/lazyplot/internal/ui/dialogs"
)

// DialogID identifies the dev tools dialog.
const DialogID dialogs.DialogID = "devtools"

// Styles holds the styles used by the dev tools console.
type Styles struct {
	Title          lipgloss.Style
	Border         lipgloss.Style
	Text           lipgloss.Style
	Muted          lipgloss.Style
	Prompt         lipgloss.Style
	Placeholder    lipgloss.Style
	TableHeader    lipgloss.Style
	TableSelected  lipgloss.Style
	TableSeparator lipgloss.Style
}

var logColumns = []table.Column{
	{Title: "#", Width: 5},
	{Title: "Time", Width: 12},
	{Title: "Origin", Width: 10},
	{Title: "Kind", Width: 6},
	{Title: "Dur", Width: 7},
	{Title: "Event"},
}

// Model defines state for the dev tools console.
type Model struct {
	styles       Styles
	tracker      *devtools.Tracker
	table        *table.Model
	input        textinput.Model
	inputFocused bool
	matched      int
	width        int
	height       int
	windowWidth  int
	windowHeight int
}

// Option configures the dev tools console.
type Option func(*Model)

// New creates a new dev tools console model.
func New(opts ...Option) *Model {
	m := &Model{
		table: table.New(logColumns).SetEmptyMessage("No events recorded."),
		input: textinput.New(),
	}
	m.input.Prompt = "filter> "
	m.input.Placeholder = "render, export, redis, slot name…"

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

// WithTracker sets the event log shown by the console.
func WithTracker(tracker *devtools.Tracker) Option {
	return func(m *Model) { m.tracker = tracker }
}

// Init focuses the filter input.
func (m *Model) Init() tea.Cmd {
	m.inputFocused = true
	m.sync()
	return m.input.Focus()
}

// Update handles input and console lifecycle.
func (m *Model) Update(msg tea.Msg) (dialogs.DialogModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth, m.windowHeight = msg.Width, msg.Height
		m.applySize()
		return m, nil
	case tea.KeyPressMsg:
		switch msg.String() {
		case "f12", "~", "esc":
			return m, dialogs.Close
		case "tab", "shift+tab":
			return m, m.toggleFocus()
		case "ctrl+u":
			m.input.SetValue("")
			m.sync()
			return m, nil
		}

		if m.inputFocused {
			switch msg.String() {
			case "up", "down", "pgup", "pgdown":
				_, cmd := m.table.Update(msg)
				return m, cmd
			}
			before := m.input.Value()
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			if m.input.Value() != before {
				m.sync()
			}
			return m, cmd
		}
		_, cmd := m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the console.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	m.sync()

	contentWidth := max(m.width-4, 0)
	tableHeight := max(m.height-4, 1)
	m.table.SetSize(contentWidth, tableHeight)
	m.input.SetWidth(max(contentWidth-lipgloss.Width(m.input.Prompt)-1, 1))

	tableView := m.table.View()
	if pad := tableHeight - lipgloss.Height(tableView); pad > 0 {
		tableView += strings.Repeat("\n", pad)
	}
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		tableView,
		m.styles.Muted.Render(strings.Repeat("─", contentWidth)),
		m.input.View(),
	)

	total := 0
	if m.tracker != nil {
		total = len(m.tracker.LogEntries())
	}
	box := frame.New(
		frame.WithStyles(dialogs.FrameStyles(m.styles.Title, m.styles.Muted, m.styles.Border)),
		frame.WithTitle("Dev Console"),
		frame.WithTitlePadding(0),
		frame.WithMeta(strconv.Itoa(m.matched)+"/"+strconv.Itoa(total)),
		frame.WithContent(content),
		frame.WithPadding(1),
		frame.WithSize(m.width, m.height),
		frame.WithMinHeight(5),
		frame.WithFocused(true),
	)
	return box.View()
}

// Position returns the dialog position.
func (m *Model) Position() (int, int) {
	return 0, 0
}

// ID returns the dialog ID.
func (m *Model) ID() dialogs.DialogID {
	return DialogID
}

// Rows returns the rows currently shown.
func (m *Model) Rows() []table.Row {
	return m.table.Rows()
}

func (m *Model) toggleFocus() tea.Cmd {
	m.inputFocused = !m.inputFocused
	if !m.inputFocused {
		m.input.Blur()
		return nil
	}
	return m.input.Focus()
}

func (m *Model) applyStyles() {
	m.table.SetStyles(table.Styles{
		Text:      m.styles.Text,
		Muted:     m.styles.Muted,
		Header:    m.styles.TableHeader,
		Selected:  m.styles.TableSelected,
		Separator: m.styles.TableSeparator,
	})
	styles := m.input.Styles()
	styles.Focused.Text = m.styles.Text
	styles.Focused.Placeholder = m.styles.Placeholder
	styles.Focused.Prompt = m.styles.Prompt
	styles.Blurred.Text = m.styles.Muted
	styles.Blurred.Placeholder = m.styles.Placeholder
	styles.Blurred.Prompt = m.styles.Muted
	m.input.SetStyles(styles)
}

// applySize docks the console to the top half of the window.
func (m *Model) applySize() {
	if m.windowWidth == 0 || m.windowHeight == 0 {
		return
	}
	m.width = m.windowWidth
	m.height = max(min(max(m.windowHeight/2, 10), m.windowHeight-1), 1)
}

// sync rebuilds rows from the tracker and follows the tail when the cursor
// was already on the last row.
func (m *Model) sync() {
	var entries []devtools.LogEntry
	if m.tracker != nil {
		entries = m.tracker.LogEntries()
	}
	prev := m.table.Rows()
	following := len(prev) == 0 || m.table.Cursor() >= len(prev)-1

	query := strings.ToLower(strings.TrimSpace(m.input.Value()))
	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		event := eventLabel(e.Entry)
		if query != "" && !matches(query, e, event) {
			continue
		}
		id := strconv.FormatUint(e.Seq, 10)
		rows = append(rows, table.Row{
			ID: id,
			Cells: []string{
				id,
				e.Time.Format("15:04:05.000"),
				e.Origin,
				e.Entry.Kind.String(),
				formatDuration(e.Entry),
				event,
			},
		})
	}
	m.matched = len(rows)
	m.table.SetRows(rows)
	if following {
		m.table.GotoBottom()
	}
}

func matches(query string, e devtools.LogEntry, event string) bool {
	return strings.Contains(strings.ToLower(event), query) ||
		strings.Contains(e.Entry.Kind.String(), query) ||
		strings.Contains(strings.ToLower(e.Origin), query)
}

func eventLabel(e devtools.Entry) string {
	if e.Detail == "" {
		return oneLine(e.Subject)
	}
	return oneLine(e.Subject + ": " + e.Detail)
}

func formatDuration(e devtools.Entry) string {
	if e.Duration <= 0 {
		return ""
	}
	return devtools.FormatDuration(e.Duration)
}

func oneLine(value string) string {
	return strings.NewReplacer("\r\n", "\\n", "\n", "\\n", "\r", "\\n", "\t", "\\t").Replace(value)
}
