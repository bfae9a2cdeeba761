// Package dialogs provides the modal dialog stack drawn over the chart grid.
package dialogs

import (
	"slices"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kpumuk/lazyplot/internal/ui/components/frame"
)

// DialogID identifies a dialog instance.
type DialogID string

// DialogModel represents a dialog component that can be displayed.
type DialogModel interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (DialogModel, tea.Cmd)
	View() string
	Position() (int, int)
	ID() DialogID
}

// CloseCallback allows dialogs to perform cleanup when closed.
type CloseCallback interface {
	Close() tea.Cmd
}

// OpenDialogMsg is sent to open a new dialog.
type OpenDialogMsg struct {
	Model DialogModel
}

// CloseDialogMsg is sent to close the topmost dialog.
type CloseDialogMsg struct{}

// Stack holds open dialogs; only the top one receives input.
type Stack struct {
	width, height int
	dialogs       []DialogModel
}

// NewStack creates an empty dialog stack.
func NewStack() Stack {
	return Stack{}
}

// Update handles dialog lifecycle and forwards other messages to the top dialog.
func (s Stack) Update(msg tea.Msg) (Stack, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width, s.height = msg.Width, msg.Height
		cmds := make([]tea.Cmd, 0, len(s.dialogs))
		for i, d := range s.dialogs {
			var cmd tea.Cmd
			s.dialogs[i], cmd = d.Update(msg)
			cmds = append(cmds, cmd)
		}
		return s, tea.Batch(cmds...)
	case OpenDialogMsg:
		return s.open(msg.Model)
	case CloseDialogMsg:
		return s.closeTop()
	}

	if len(s.dialogs) == 0 {
		return s, nil
	}
	top := len(s.dialogs) - 1
	var cmd tea.Cmd
	s.dialogs[top], cmd = s.dialogs[top].Update(msg)
	return s, cmd
}

// Send delivers msg to the dialog with id wherever it sits in the stack.
func (s Stack) Send(id DialogID, msg tea.Msg) (Stack, tea.Cmd) {
	i := s.index(id)
	if i < 0 {
		return s, nil
	}
	var cmd tea.Cmd
	s.dialogs[i], cmd = s.dialogs[i].Update(msg)
	return s, cmd
}

// Dialogs returns the open dialogs, bottom first.
func (s Stack) Dialogs() []DialogModel {
	return s.dialogs
}

// HasDialogs reports whether any dialog is open.
func (s Stack) HasDialogs() bool {
	return len(s.dialogs) > 0
}

// Contains reports whether the dialog with id is open.
func (s Stack) Contains(id DialogID) bool {
	return s.index(id) >= 0
}

// ActiveModel returns the top dialog.
func (s Stack) ActiveModel() DialogModel {
	if len(s.dialogs) == 0 {
		return nil
	}
	return s.dialogs[len(s.dialogs)-1]
}

// ActiveDialogID returns the ID of the top dialog.
func (s Stack) ActiveDialogID() DialogID {
	if d := s.ActiveModel(); d != nil {
		return d.ID()
	}
	return ""
}

// Layers returns one compositor layer per dialog, stacked above the base view.
func (s Stack) Layers() []*lipgloss.Layer {
	layers := make([]*lipgloss.Layer, 0, len(s.dialogs))
	for i, d := range s.dialogs {
		row, col := d.Position()
		layers = append(layers, lipgloss.NewLayer(d.View()).X(col).Y(row).Z(i+2))
	}
	return layers
}

func (s Stack) index(id DialogID) int {
	return slices.IndexFunc(s.dialogs, func(d DialogModel) bool { return d.ID() == id })
}

func (s Stack) open(model DialogModel) (Stack, tea.Cmd) {
	i := s.index(model.ID())
	if i >= 0 && i == len(s.dialogs)-1 {
		return s, nil
	}
	if i >= 0 {
		// Raise the open instance and keep its state.
		model = s.dialogs[i]
		s.dialogs = slices.Delete(slices.Clone(s.dialogs), i, i+1)
	}
	s.dialogs = append(s.dialogs, model)

	init := model.Init()
	_, sized := model.Update(tea.WindowSizeMsg{Width: s.width, Height: s.height})
	return s, tea.Batch(init, sized)
}

func (s Stack) closeTop() (Stack, tea.Cmd) {
	if len(s.dialogs) == 0 {
		return s, nil
	}
	top := s.dialogs[len(s.dialogs)-1]
	s.dialogs = s.dialogs[:len(s.dialogs)-1]
	if c, ok := top.(CloseCallback); ok {
		return s, c.Close()
	}
	return s, nil
}

// FrameStyles returns frame styles for a dialog, which is always focused.
func FrameStyles(title, muted, border lipgloss.Style) frame.Styles {
	state := frame.StyleState{Title: title, Muted: muted, Border: border}
	return frame.Styles{Focused: state, Blurred: state}
}
