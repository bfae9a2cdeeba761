// Package scrollbar renders a one-column vertical scrollbar for dialogs that
// show more lines than fit, such as the scene inspector and the dev console.
package scrollbar

import (
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/kpumuk/lazyplot/internal/mathutil"
)

const (
	thumbRune = "█"
	trackRune = "│"
)

// Styles holds the styles needed for the scrollbar.
type Styles struct {
	Track lipgloss.Style
	Thumb lipgloss.Style
}

// Model is a vertical scrollbar.
type Model struct {
	styles  Styles
	height  int
	total   int
	visible int
	offset  int
}

// New creates a scrollbar of height rows.
func New(styles Styles, height int) Model {
	return Model{styles: styles, height: height}
}

// SetRange updates the total line count, the visible line count and the top
// offset.
func (m *Model) SetRange(total, visible, offset int) {
	m.total = total
	m.visible = visible
	m.offset = offset
}

// Scrollable reports whether the content overflows the view.
func (m Model) Scrollable() bool {
	return m.visible > 0 && m.total > m.visible
}

// View renders the scrollbar, or a blank column when nothing overflows.
func (m Model) View() string {
	if m.height <= 0 {
		return ""
	}
	rows := make([]string, m.height)
	if !m.Scrollable() {
		for i := range rows {
			rows[i] = " "
		}
		return strings.Join(rows, "\n")
	}

	scale := float64(m.height) / float64(m.total)
	thumb := max(1, int(math.Round(float64(m.visible)*scale)))
	start := mathutil.Clamp(int(math.Round(float64(m.offset)*scale)), 0, max(m.height-thumb, 0))
	for i := range rows {
		if i >= start && i < start+thumb {
			rows[i] = m.styles.Thumb.Render(thumbRune)
		} else {
			rows[i] = m.styles.Track.Render(trackRune)
		}
	}
	return strings.Join(rows, "\n")
}
