// Package style provides the style preset form.
package style

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/kpumuk/lazyplot/internal/chart"
	"github.com/kpumuk/lazyplot/internal/mathutil"
	"github.com/kpumuk/lazyplot/internal/preset"
	"github.com/kpumuk/lazyplot/internal/ui/components/frame"
	"github.com/kpumuk/lazyplot/internal/ui/dialogs"
	"github.com/kpumuk/lazyplot/internal/ui/dialogs/confirm"
)

// DialogID identifies the style dialog.
const DialogID dialogs.DialogID = "style"

// ResetTag tags the confirmation asked before a reset.
const ResetTag = "reset-style"

// Action is a form button.
type Action int

const (
	ActionApply Action = iota
	ActionSave
	ActionLoad
	ActionReset
)

var actionLabels = [...]string{"Apply", "Save", "Load", "Reset"}

func (a Action) String() string {
	return actionLabels[a]
}

// ActionMsg asks the app to run a form action. Preset carries the current
// form values; only ActionApply uses them.
type ActionMsg struct {
	Action Action
	Preset preset.Preset
}

// SetPresetMsg replaces the form values, e.g. after a load or reset.
type SetPresetMsg struct {
	Preset preset.Preset
}

// Styles holds the styles used by the style dialog.
type Styles struct {
	Title       lipgloss.Style
	Border      lipgloss.Style
	Label       lipgloss.Style
	Text        lipgloss.Style
	Muted       lipgloss.Style
	Placeholder lipgloss.Style
	Selected    lipgloss.Style
	Error       lipgloss.Style
	Button      lipgloss.Style
	ButtonFocus lipgloss.Style
}

type fieldType int

const (
	fieldColor fieldType = iota
	fieldChoice
	fieldInt
	fieldBool
)

type field struct {
	key     string
	label   string
	typ     fieldType
	choices []string
	min     int
	max     int
	input   textinput.Model
	value   string
}

var (
	fontFamilies = []string{"Inter", "Roboto", "Helvetica", "Georgia", "monospace"}
	fontWeights  = []string{"normal", "500", "600", "bold"}
	onOff        = []string{"on", "off"}
)

var (
	adjustLeft  = key.NewBinding(key.WithKeys("left", "h"))
	adjustRight = key.NewBinding(key.WithKeys("right", "l"))
)

// Model defines state for the style dialog.
type Model struct {
	styles       Styles
	fields       []field
	cursor       int
	action       Action
	err          error
	width        int
	height       int
	windowWidth  int
	windowHeight int
	row          int
	col          int
}

// Option configures the style dialog.
type Option func(*Model)

// New creates a style form seeded from p.
func New(p preset.Preset, opts ...Option) *Model {
	m := &Model{}
	for _, opt := range opts {
		opt(m)
	}
	m.fields = []field{
		m.colorField("themeColor", "Theme colour"),
		m.colorField("bgColor", "Background"),
		m.colorField("textColor", "Text colour"),
		{key: "colorScheme", label: "Colour scheme", typ: fieldChoice, choices: chart.Themes},
		{key: "fontFamily", label: "Font family", typ: fieldChoice, choices: fontFamilies},
		{key: "titleSize", label: "Title size", typ: fieldInt, min: 8, max: 48},
		{key: "bodySize", label: "Body size", typ: fieldInt, min: 8, max: 32},
		{key: "fontWeight", label: "Font weight", typ: fieldChoice, choices: fontWeights},
		{key: "chartSpacing", label: "Chart spacing", typ: fieldInt, min: 0, max: 80},
		{key: "borderRadius", label: "Border radius", typ: fieldInt, min: 0, max: 40},
		{key: "shadowEffect", label: "Shadow", typ: fieldBool, choices: onOff},
		{key: "animationEffect", label: "Animation", typ: fieldBool, choices: onOff},
	}
	m.load(p)
	return m
}

// WithStyles sets the styles.
func WithStyles(s Styles) Option {
	return func(m *Model) { m.styles = s }
}

func (m *Model) colorField(key, label string) field {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = "#RRGGBB"
	in.CharLimit = 7
	styles := in.Styles()
	styles.Focused.Text = m.styles.Text
	styles.Focused.Placeholder = m.styles.Placeholder
	styles.Blurred.Text = m.styles.Text
	styles.Blurred.Placeholder = m.styles.Placeholder
	in.SetStyles(styles)
	in.SetWidth(8)
	return field{key: key, label: label, typ: fieldColor, input: in}
}

// Init focuses the first field.
func (m *Model) Init() tea.Cmd {
	return m.focus()
}

// Update handles input and dialog lifecycle.
func (m *Model) Update(msg tea.Msg) (dialogs.DialogModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth, m.windowHeight = msg.Width, msg.Height
		m.applySize()
		return m, nil
	case SetPresetMsg:
		m.load(msg.Preset)
		m.err = nil
		return m, nil
	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, dialogs.Keys.Close):
			return m, dialogs.Close
		case key.Matches(msg, dialogs.Keys.Up, dialogs.Keys.Prev):
			return m, m.move(-1)
		case key.Matches(msg, dialogs.Keys.Down, dialogs.Keys.Next):
			return m, m.move(1)
		case key.Matches(msg, dialogs.Keys.Confirm):
			return m, m.run()
		}

		if m.onActions() {
			switch {
			case key.Matches(msg, adjustLeft):
				m.action = Action(mathutil.Clamp(int(m.action)-1, 0, len(actionLabels)-1))
			case key.Matches(msg, adjustRight):
				m.action = Action(mathutil.Clamp(int(m.action)+1, 0, len(actionLabels)-1))
			}
			return m, nil
		}

		f := &m.fields[m.cursor]
		if f.typ == fieldColor {
			var cmd tea.Cmd
			f.input, cmd = f.input.Update(msg)
			m.err = nil
			return m, cmd
		}
		switch {
		case key.Matches(msg, adjustLeft):
			m.adjust(f, -1)
		case key.Matches(msg, adjustRight), msg.String() == "space":
			m.adjust(f, 1)
		}
	}
	return m, nil
}

// Preset returns the form values. Unparsable sizes are reported as an error.
func (m *Model) Preset() (preset.Preset, error) {
	var p preset.Preset
	for _, f := range m.fields {
		v := f.value
		if f.typ == fieldColor {
			v = strings.TrimSpace(f.input.Value())
		}
		switch f.key {
		case "themeColor":
			p.ThemeColor = v
		case "bgColor":
			p.BgColor = v
		case "textColor":
			p.TextColor = v
		case "colorScheme":
			p.ColorScheme = v
		case "fontFamily":
			p.FontFamily = v
		case "fontWeight":
			p.FontWeight = v
		case "shadowEffect":
			p.ShadowEffect = v == "on"
		case "animationEffect":
			p.AnimationEffect = v == "on"
		default:
			n, err := strconv.Atoi(v)
			if err != nil {
				return preset.Preset{}, fmt.Errorf("%s: %w", f.label, err)
			}
			switch f.key {
			case "titleSize":
				p.TitleSize = n
			case "bodySize":
				p.BodySize = n
			case "chartSpacing":
				p.ChartSpacing = n
			case "borderRadius":
				p.BorderRadius = n
			}
		}
	}
	return p, p.Validate()
}

func (m *Model) load(p preset.Preset) {
	values := map[string]string{
		"themeColor":      p.ThemeColor,
		"bgColor":         p.BgColor,
		"textColor":       p.TextColor,
		"colorScheme":     p.ColorScheme,
		"fontFamily":      p.FontFamily,
		"titleSize":       strconv.Itoa(p.TitleSize),
		"bodySize":        strconv.Itoa(p.BodySize),
		"fontWeight":      p.FontWeight,
		"chartSpacing":    strconv.Itoa(p.ChartSpacing),
		"borderRadius":    strconv.Itoa(p.BorderRadius),
		"shadowEffect":    boolValue(p.ShadowEffect),
		"animationEffect": boolValue(p.AnimationEffect),
	}
	for i := range m.fields {
		f := &m.fields[i]
		f.value = values[f.key]
		if f.typ == fieldColor {
			f.input.SetValue(f.value)
			f.input.CursorEnd()
		}
	}
}

func boolValue(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (m *Model) adjust(f *field, delta int) {
	switch f.typ {
	case fieldChoice, fieldBool:
		i := slices.Index(f.choices, f.value)
		if i < 0 {
			i = 0
		} else {
			i = (i + delta + len(f.choices)) % len(f.choices)
		}
		f.value = f.choices[i]
	case fieldInt:
		n, _ := strconv.Atoi(f.value)
		f.value = strconv.Itoa(mathutil.Clamp(n+delta, f.min, f.max))
	}
}

func (m *Model) onActions() bool {
	return m.cursor == len(m.fields)
}

func (m *Model) move(delta int) tea.Cmd {
	if !m.onActions() && m.fields[m.cursor].typ == fieldColor {
		m.fields[m.cursor].input.Blur()
	}
	m.cursor = (m.cursor + delta + len(m.fields) + 1) % (len(m.fields) + 1)
	return m.focus()
}

func (m *Model) focus() tea.Cmd {
	if m.onActions() || m.fields[m.cursor].typ != fieldColor {
		return nil
	}
	return m.fields[m.cursor].input.Focus()
}

// run performs the selected action. Enter on a field applies the form.
func (m *Model) run() tea.Cmd {
	action := ActionApply
	if m.onActions() {
		action = m.action
	}
	switch action {
	case ActionLoad:
		return dialogs.Emit(ActionMsg{Action: ActionLoad})
	case ActionReset:
		return dialogs.Emit(dialogs.OpenDialogMsg{Model: confirm.New(
			confirm.WithStyles(confirm.Styles{
				Title:       m.styles.Title,
				Border:      m.styles.Border,
				Text:        m.styles.Text,
				Muted:       m.styles.Muted,
				Button:      m.styles.Button,
				ButtonFocus: m.styles.ButtonFocus,
			}),
			confirm.WithTitle("Reset style"),
			confirm.WithMessage("Restore the default style and theme?"),
			confirm.WithTag(ResetTag),
		)})
	}
	p, err := m.Preset()
	if err != nil {
		m.err = err
		return nil
	}
	m.err = nil
	return dialogs.Emit(ActionMsg{Action: action, Preset: p})
}

// View renders the form.
func (m *Model) View() string {
	contentWidth := max(m.width-4, 1)
	labelWidth := 15
	lines := make([]string, 0, len(m.fields)+4)
	for i, f := range m.fields {
		label := m.styles.Label.Render(fmt.Sprintf("%-*s", labelWidth, f.label))
		var value string
		switch f.typ {
		case fieldColor:
			value = f.input.View()
			if c := strings.TrimSpace(f.input.Value()); preset.IsHexColor(c) {
				value += " " + lipgloss.NewStyle().Background(lipgloss.Color(c)).Render("  ")
			}
		default:
			value = "‹ " + f.value + " ›"
			if i == m.cursor {
				value = m.styles.Selected.Render(value)
			} else {
				value = m.styles.Text.Render(value)
			}
		}
		marker := "  "
		if i == m.cursor {
			marker = m.styles.Selected.Render("›") + " "
		}
		lines = append(lines, ansi.Truncate(marker+label+value, contentWidth, ""))
	}

	lines = append(lines, "")
	buttons := make([]string, len(actionLabels))
	for i, label := range actionLabels {
		style := m.styles.Button
		if m.onActions() && Action(i) == m.action {
			style = m.styles.ButtonFocus
		}
		buttons[i] = style.Render("[ " + label + " ]")
	}
	lines = append(lines, strings.Join(buttons, " "))
	if m.err != nil {
		lines = append(lines, ansi.Truncate(m.styles.Error.Render(m.err.Error()), contentWidth, "…"))
	}

	box := frame.New(
		frame.WithStyles(dialogs.FrameStyles(m.styles.Title, m.styles.Muted, m.styles.Border)),
		frame.WithTitle("Style"),
		frame.WithTitlePadding(0),
		frame.WithFooter("↑/↓ field • ←/→ change • enter apply"),
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

func (m *Model) applySize() {
	m.width, m.height = dialogs.Size(m.windowWidth, m.windowHeight, 48, len(m.fields)+6)
	m.row, m.col = dialogs.Center(m.windowWidth, m.windowHeight, m.width, m.height)
}
