// Package toast renders short-lived notification boxes.
package toast

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kpumuk/lazyplot/internal/ui/components/frame"
)

// Lifetime is how long a toast stays on screen.
const Lifetime = 3 * time.Second

// Level is the severity of a toast.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelError
)

// Title returns the heading shown in the toast border.
func (l Level) Title() string {
	switch l {
	case LevelSuccess:
		return "Success"
	case LevelWarning:
		return "Warning"
	case LevelError:
		return "Error"
	default:
		return "Info"
	}
}

// Toast is a single notification.
type Toast struct {
	ID      int
	Level   Level
	Message string
}

// ExpireMsg removes the toast with ID.
type ExpireMsg struct {
	ID int
}

// Styles holds the styles needed by the toast stack.
type Styles struct {
	Text    lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// DefaultStyles returns default styles for toasts.
func DefaultStyles() Styles {
	return Styles{
		Text:    lipgloss.NewStyle(),
		Info:    lipgloss.NewStyle(),
		Success: lipgloss.NewStyle(),
		Warning: lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle().Bold(true),
	}
}

// Model is a stack of visible toasts, newest last.
type Model struct {
	styles Styles
	toasts []Toast
	nextID int
	width  int
	limit  int
}

// Option is used to set options in New.
type Option func(*Model)

// New creates a new toast stack.
func New(opts ...Option) Model {
	m := Model{
		styles: DefaultStyles(),
		width:  44,
		limit:  4,
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

// WithWidth sets the width of each toast.
func WithWidth(w int) Option {
	return func(m *Model) {
		m.width = w
	}
}

// WithLimit sets how many toasts are kept; older ones are dropped first.
func WithLimit(n int) Option {
	return func(m *Model) {
		m.limit = max(n, 1)
	}
}

// SetStyles sets the styles.
func (m *Model) SetStyles(s Styles) {
	m.styles = s
}

// Width returns the width of each toast.
func (m Model) Width() int {
	return m.width
}

// Toasts returns the visible toasts, oldest first.
func (m Model) Toasts() []Toast {
	return m.toasts
}

// Empty reports whether no toast is visible.
func (m Model) Empty() bool {
	return len(m.toasts) == 0
}

// Push shows a toast and returns the command that expires it.
func (m *Model) Push(level Level, message string) tea.Cmd {
	m.nextID++
	id := m.nextID
	m.toasts = append(m.toasts, Toast{ID: id, Level: level, Message: message})
	if len(m.toasts) > m.limit {
		m.toasts = m.toasts[len(m.toasts)-m.limit:]
	}
	return tea.Tick(Lifetime, func(time.Time) tea.Msg {
		return ExpireMsg{ID: id}
	})
}

// Update handles expiry messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(ExpireMsg); ok {
		kept := m.toasts[:0:0]
		for _, t := range m.toasts {
			if t.ID != msg.ID {
				kept = append(kept, t)
			}
		}
		m.toasts = kept
	}
	return m, nil
}

// View renders the stack, one box per toast.
func (m Model) View() string {
	if len(m.toasts) == 0 || m.width < 6 {
		return ""
	}
	boxes := make([]string, 0, len(m.toasts))
	for _, t := range m.toasts {
		boxes = append(boxes, m.renderToast(t))
	}
	return strings.Join(boxes, "\n")
}

func (m Model) renderToast(t Toast) string {
	accent := m.levelStyle(t.Level)
	contentWidth := m.width - 4
	message := lipgloss.Wrap(t.Message, contentWidth, " ")
	lines := strings.Split(message, "\n")
	for i, line := range lines {
		lines[i] = m.styles.Text.Render(line)
	}
	state := frame.StyleState{
		Title:  accent.Bold(true),
		Muted:  accent,
		Border: accent,
	}
	box := frame.New(
		frame.WithStyles(frame.Styles{Focused: state, Blurred: state}),
		frame.WithTitle(t.Level.Title()),
		frame.WithContent(strings.Join(lines, "\n")),
		frame.WithPadding(1),
		frame.WithSize(m.width, len(lines)+2),
	)
	return box.View()
}

func (m Model) levelStyle(l Level) lipgloss.Style {
	switch l {
	case LevelSuccess:
		return m.styles.Success
	case LevelWarning:
		return m.styles.Warning
	case LevelError:
		return m.styles.Error
	default:
		return m.styles.Info
	}
}
