// Package table renders a selectable, vertically scrolling table.
package table

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/kpumuk/lazyplot/internal/mathutil"
	"github.com/kpumuk/lazyplot/internal/ui/components/scrollbar"
)

// Column defines a table column. The last column takes the remaining width.
type Column struct {
	Title string
	Width int
}

// Row is a table row; ID keeps the selection stable across SetRows calls.
type Row struct {
	ID    string
	Cells []string
}

// Styles holds the styles needed by the table.
type Styles struct {
	Text      lipgloss.Style
	Muted     lipgloss.Style
	Header    lipgloss.Style
	Selected  lipgloss.Style
	Separator lipgloss.Style
	Scrollbar scrollbar.Styles
}

// Model is a scrollable table with a selected row.
type Model struct {
	columns      []Column
	rows         []Row
	styles       Styles
	width        int
	height       int
	cursor       int
	yOffset      int
	emptyMessage string
}

// New creates a new table.
func New(columns []Column) *Model {
	return &Model{
		columns:      columns,
		emptyMessage: "No data",
	}
}

// SetEmptyMessage sets the message shown when there are no rows.
func (t *Model) SetEmptyMessage(msg string) *Model {
	t.emptyMessage = msg
	return t
}

// SetStyles updates the table styles.
func (t *Model) SetStyles(styles Styles) {
	t.styles = styles
}

// SetSize sets the table dimensions, header included.
func (t *Model) SetSize(width, height int) {
	t.width = width
	t.height = height
	t.clamp()
}

// SetRows replaces the rows, keeping the selected row when its ID survives.
func (t *Model) SetRows(rows []Row) {
	selected := ""
	if t.cursor < len(t.rows) {
		selected = t.rows[t.cursor].ID
	}
	t.rows = rows
	for i, row := range rows {
		if selected != "" && row.ID == selected {
			t.cursor = i
			break
		}
	}
	t.clamp()
}

// Rows returns the rows.
func (t *Model) Rows() []Row {
	return t.rows
}

// Cursor returns the selected row index.
func (t *Model) Cursor() int {
	return t.cursor
}

// SelectedRow returns the selected row.
func (t *Model) SelectedRow() (Row, bool) {
	if t.cursor < 0 || t.cursor >= len(t.rows) {
		return Row{}, false
	}
	return t.rows[t.cursor], true
}

// MoveUp moves the selection up by n rows.
func (t *Model) MoveUp(n int) {
	t.cursor -= n
	t.clamp()
}

// MoveDown moves the selection down by n rows.
func (t *Model) MoveDown(n int) {
	t.cursor += n
	t.clamp()
}

// GotoBottom selects the last row.
func (t *Model) GotoBottom() {
	t.MoveDown(len(t.rows))
}

// Update handles navigation keys.
func (t *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return t, nil
	}
	switch key.String() {
	case "up", "k":
		t.MoveUp(1)
	case "down", "j":
		t.MoveDown(1)
	case "pgup":
		t.MoveUp(t.viewport())
	case "pgdown":
		t.MoveDown(t.viewport())
	case "home", "g":
		t.MoveUp(len(t.rows))
	case "end", "G":
		t.GotoBottom()
	}
	return t, nil
}

func (t *Model) viewport() int {
	return max(t.height-2, 1)
}

func (t *Model) clamp() {
	t.cursor = mathutil.Clamp(t.cursor, 0, max(len(t.rows)-1, 0))
	vp := t.viewport()
	if t.cursor < t.yOffset {
		t.yOffset = t.cursor
	}
	if t.cursor >= t.yOffset+vp {
		t.yOffset = t.cursor - vp + 1
	}
	t.yOffset = mathutil.Clamp(t.yOffset, 0, max(len(t.rows)-vp, 0))
}

// View renders the header, a separator and the visible rows.
func (t *Model) View() string {
	if t.width <= 0 || t.height <= 0 {
		return ""
	}
	bodyWidth := max(t.width-1, 0)
	widths := t.columnWidths(bodyWidth)

	lines := make([]string, 0, t.height)
	titles := make([]string, len(t.columns))
	for i, col := range t.columns {
		titles[i] = col.Title
	}
	lines = append(lines, t.styles.Header.Render(formatRow(titles, widths, t.width)))
	lines = append(lines, t.styles.Separator.Render(strings.Repeat("─", t.width)))

	vp := t.viewport()
	if len(t.rows) == 0 {
		lines = append(lines, t.styles.Muted.Render(formatRow([]string{t.emptyMessage}, []int{t.width}, t.width)))
		return strings.Join(lines, "\n")
	}

	bar := scrollbar.New(t.styles.Scrollbar, vp)
	bar.SetRange(len(t.rows), vp, t.yOffset)
	barLines := strings.Split(bar.View(), "\n")
	for i := range vp {
		idx := t.yOffset + i
		text := strings.Repeat(" ", bodyWidth)
		if idx < len(t.rows) {
			text = formatRow(t.rows[idx].Cells, widths, bodyWidth)
			if idx == t.cursor {
				text = t.styles.Selected.Render(text)
			} else {
				text = t.styles.Text.Render(text)
			}
		}
		lines = append(lines, text+barLines[i])
	}
	return strings.Join(lines, "\n")
}

func (t *Model) columnWidths(total int) []int {
	widths := make([]int, len(t.columns))
	used := 0
	for i, col := range t.columns[:max(len(t.columns)-1, 0)] {
		widths[i] = col.Width
		used += col.Width + 1
	}
	if n := len(widths); n > 0 {
		widths[n-1] = max(total-used, 0)
	}
	return widths
}

// formatRow lays cells out in fixed-width columns separated by one space and
// truncates the result to width.
func formatRow(cells []string, widths []int, width int) string {
	var b strings.Builder
	for i, w := range widths {
		if i > 0 {
			b.WriteByte(' ')
		}
		cell := ""
		if i < len(cells) {
			cell = strings.ReplaceAll(cells[i], "\n", " ")
		}
		cell = ansi.Truncate(cell, w, "…")
		b.WriteString(cell)
		b.WriteString(strings.Repeat(" ", max(w-ansi.StringWidth(cell), 0)))
	}
	line := ansi.Truncate(b.String(), width, "")
	return line + strings.Repeat(" ", max(width-ansi.StringWidth(line), 0))
}
