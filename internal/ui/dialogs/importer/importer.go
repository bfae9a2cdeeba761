// Package importer provides the drag-and-drop import dialog. Terminals paste
// dropped files as paths, so the dialog accepts typed or pasted paths and
// lists what each file contained.
package importer

import (
	"errors"
	"path/filepath"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kpumuk/lazyplot/internal/ingest"
	"github.com/kpumuk/lazyplot/internal/ui/components/frame"
	"github.com/kpumuk/lazyplot/internal/ui/components/table"
	"github.com/kpumuk/lazyplot/internal/ui/dialogs"
)

// DialogID identifies the import dialog.
const DialogID dialogs.DialogID = "importer"

// ImportMsg asks the app to read Paths.
type ImportMsg struct {
	Paths []string
}

// PreviewMsg replaces the listed files.
type PreviewMsg struct {
	Entries []ingest.PreviewEntry
}

// ResetMsg asks the app to clear the preview list.
type ResetMsg struct{}

// ClosedMsg is sent when the dialog closes.
type ClosedMsg struct{}

var errUnterminated = errors.New("unterminated quoted path")

var resetKey = key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "clear list"))

// Styles holds the styles used by the import dialog.
type Styles struct {
	Title          lipgloss.Style
	Border         lipgloss.Style
	Prompt         lipgloss.Style
	Text           lipgloss.Style
	Muted          lipgloss.Style
	Placeholder    lipgloss.Style
	Error          lipgloss.Style
	TableHeader    lipgloss.Style
	TableSelected  lipgloss.Style
	TableSeparator lipgloss.Style
}

var previewColumns = []table.Column{
	{Title: "File", Width: 24},
	{Title: "Plotted", Width: 7},
	{Title: "Contents"},
}

// Model defines state for the import dialog.
type Model struct {
	styles       Styles
	input        textinput.Model
	table        *table.Model
	entries      []ingest.PreviewEntry
	err          error
	width        int
	height       int
	windowWidth  int
	windowHeight int
	row          int
	col          int
}

// Option configures the import dialog.
type Option func(*Model)

// New creates an import dialog.
func New(opts ...Option) *Model {
	m := &Model{
		input: textinput.New(),
		table: table.New(previewColumns).SetEmptyMessage("Drop .json or .csv files here"),
	}
	m.input.Prompt = "path› "
	m.input.Placeholder = "drop files or type a path"

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

// WithEntries seeds the list with files imported earlier.
func WithEntries(entries []ingest.PreviewEntry) Option {
	return func(m *Model) { m.setEntries(entries) }
}

// Init focuses the input.
func (m *Model) Init() tea.Cmd {
	return m.input.Focus()
}

// Close implements dialogs.CloseCallback.
func (m *Model) Close() tea.Cmd {
	return dialogs.Emit(ClosedMsg{})
}

// Entries returns the listed files.
func (m *Model) Entries() []ingest.PreviewEntry {
	return m.entries
}

// Update handles input and dialog lifecycle.
func (m *Model) Update(msg tea.Msg) (dialogs.DialogModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth, m.windowHeight = msg.Width, msg.Height
		m.applySize()
		return m, nil
	case PreviewMsg:
		m.setEntries(msg.Entries)
		return m, nil
	case tea.PasteMsg:
		// A drop submits immediately.
		return m, m.submit(msg.Content)
	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, dialogs.Keys.Close):
			return m, dialogs.Close
		case key.Matches(msg, dialogs.Keys.Confirm):
			cmd := m.submit(m.input.Value())
			if m.err == nil {
				m.input.SetValue("")
			}
			return m, cmd
		case key.Matches(msg, resetKey):
			m.setEntries(nil)
			return m, dialogs.Emit(ResetMsg{})
		case key.Matches(msg, dialogs.Keys.Up, dialogs.Keys.Down):
			_, cmd := m.table.Update(msg)
			return m, cmd
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.err = nil
		return m, cmd
	}
	return m, nil
}

func (m *Model) submit(text string) tea.Cmd {
	paths, err := SplitPaths(text)
	if err != nil {
		m.err = err
		return nil
	}
	m.err = nil
	if len(paths) == 0 {
		return nil
	}
	return dialogs.Emit(ImportMsg{Paths: paths})
}

func (m *Model) setEntries(entries []ingest.PreviewEntry) {
	m.entries = entries
	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		plotted := ""
		if e.Plotted {
			plotted = "yes"
		}
		rows = append(rows, table.Row{
			ID:    e.Name,
			Cells: []string{filepath.Base(e.Name), plotted, e.Summary()},
		})
	}
	m.table.SetRows(rows)
	m.table.GotoBottom()
}

// SplitPaths tokenizes pasted or typed paths. Whitespace separates paths;
// quotes and backslash escapes keep spaces inside one path, as terminals
// produce when files are dropped.
func SplitPaths(input string) ([]string, error) {
	var paths []string
	var buf strings.Builder
	var quote rune
	escaped := false

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		paths = append(paths, buf.String())
		buf.Reset()
	}

	for _, r := range input {
		if escaped {
			buf.WriteRune(r)
			escaped = false
			continue
		}
		if r == '\\' && quote != '\'' {
			escaped = true
			continue
		}
		if quote != 0 {
			if r == quote {
				quote = 0
				continue
			}
			buf.WriteRune(r)
			continue
		}
		switch r {
		case '"', '\'':
			quote = r
		case ' ', '\t', '\n', '\r':
			flush()
		default:
			buf.WriteRune(r)
		}
	}
	if escaped || quote != 0 {
		return nil, errUnterminated
	}
	flush()
	for i, p := range paths {
		paths[i] = strings.TrimPrefix(p, "file://")
	}
	return paths, nil
}

// View renders the dialog.
func (m *Model) View() string {
	contentWidth := max(m.width-4, 1)
	tableHeight := max(m.height-2-3, 3)
	m.table.SetSize(contentWidth, tableHeight)

	tableView := m.table.View()
	if pad := tableHeight - lipgloss.Height(tableView); pad > 0 {
		tableView += strings.Repeat("\n", pad)
	}
	status := m.styles.Muted.Render("Accepts .json and .csv")
	if m.err != nil {
		status = m.styles.Error.Render(m.err.Error())
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.input.View(),
		status,
		m.styles.Muted.Render(strings.Repeat("─", contentWidth)),
		tableView,
	)

	box := frame.New(
		frame.WithStyles(dialogs.FrameStyles(m.styles.Title, m.styles.Muted, m.styles.Border)),
		frame.WithTitle("Import data"),
		frame.WithTitlePadding(0),
		frame.WithMeta(plural(len(m.entries), "file")),
		frame.WithFooter("enter import • ctrl+r clear • esc close"),
		frame.WithContent(content),
		frame.WithPadding(1),
		frame.WithSize(m.width, m.height),
		frame.WithFocused(true),
	)
	return box.View()
}

func plural(n int, noun string) string {
	if n != 1 {
		noun += "s"
	}
	return strconv.Itoa(n) + " " + noun
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
	m.table.SetStyles(table.Styles{
		Text:      m.styles.Text,
		Muted:     m.styles.Muted,
		Header:    m.styles.TableHeader,
		Selected:  m.styles.TableSelected,
		Separator: m.styles.TableSeparator,
	})
	styles := m.input.Styles()
	styles.Focused.Prompt = m.styles.Prompt
	styles.Focused.Text = m.styles.Text
	styles.Focused.Placeholder = m.styles.Placeholder
	styles.Blurred = styles.Focused
	m.input.SetStyles(styles)
}

func (m *Model) applySize() {
	m.width, m.height = dialogs.Size(m.windowWidth, m.windowHeight, 80, 18)
	m.row, m.col = dialogs.Center(m.windowWidth, m.windowHeight, m.width, m.height)
	m.input.SetWidth(max(m.width-4-lipgloss.Width(m.input.Prompt)-1, 1))
}
