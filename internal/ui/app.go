// Package ui renders the Bubble Tea application UI.
package ui

import (
	"context"
	"encoding/json"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kpumuk/lazyplot/internal/chart"
	"github.com/kpumuk/lazyplot/internal/dashboard"
	devlog "github.com/kpumuk/lazyplot/internal/devtools"
	"github.com/kpumuk/lazyplot/internal/ui/components/footer"
	"github.com/kpumuk/lazyplot/internal/ui/components/statusbar"
	"github.com/kpumuk/lazyplot/internal/ui/components/toast"
	"github.com/kpumuk/lazyplot/internal/ui/dialogs"
	"github.com/kpumuk/lazyplot/internal/ui/dialogs/confirm"
	"github.com/kpumuk/lazyplot/internal/ui/dialogs/dataentry"
	"github.com/kpumuk/lazyplot/internal/ui/dialogs/devtools"
	"github.com/kpumuk/lazyplot/internal/ui/dialogs/filter"
	"github.com/kpumuk/lazyplot/internal/ui/dialogs/help"
	"github.com/kpumuk/lazyplot/internal/ui/dialogs/importer"
	"github.com/kpumuk/lazyplot/internal/ui/dialogs/inspect"
	"github.com/kpumuk/lazyplot/internal/ui/dialogs/style"
	"github.com/kpumuk/lazyplot/internal/ui/theme"
)

// scaleStep is the factor change per key press, in percent.
const scaleStep = 5

// App is the main application model.
type App struct {
	keys      KeyMap
	ctrl      *dashboard.Controller
	styles    theme.Styles
	styled    bool
	accent    string
	width     int
	height    int
	ready     bool
	focus     chart.Kind
	top       int
	scheduler *dashboard.Scheduler
	exportDir string
	imports   []string
	clipboard func(string) error
	statusbar statusbar.Model
	footer    footer.Model
	toasts    toast.Model
	dialogs   dialogs.Stack
}

// Option configures the App.
type Option func(*App)

// WithExportDir sets where the export key writes files.
func WithExportDir(dir string) Option {
	return func(a *App) {
		if dir != "" {
			a.exportDir = dir
		}
	}
}

// WithImports sets files to import once the app starts.
func WithImports(paths []string) Option {
	return func(a *App) {
		a.imports = paths
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(a *App) {
		if write != nil {
			a.clipboard = write
		}
	}
}

// New creates a new App instance driving ctrl. The startup schedule begins
// immediately; Init fires its first task.
func New(ctrl *dashboard.Controller, opts ...Option) App {
	a := App{
		keys:      DefaultKeyMap(),
		ctrl:      ctrl,
		focus:     chart.Kinds()[0],
		exportDir: ".",
		clipboard: defaultClipboard,
		dialogs:   dialogs.NewStack(),
	}
	for _, opt := range opts {
		opt(&a)
	}

	a.statusbar = statusbar.New(statusbar.WithBrand("lazyplot"))
	a.footer = footer.New(footer.WithBindings(a.keys.ShortHelp()))
	a.toasts = toast.New()
	a.applyStyles()

	a.scheduler = ctrl.BeginStartup()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		nextStartupCmd(a.scheduler),
		readFilesCmd(a.imports),
	)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.statusbar.SetWidth(msg.Width)
		a.footer.SetWidth(msg.Width)
		a.scrollToFocus()
		cmds = append(cmds, a.updateDialogs(msg))

	case startupTaskMsg:
		a.ctrl.RunTask(origin("startup"), msg.task)
		cmds = append(cmds, nextStartupCmd(a.scheduler))

	case startupDoneMsg:
		a.ctrl.FinishStartup()

	case fileReadMsg:
		a.ctrl.Ingest(origin("import"), msg.path, msg.result, msg.err)
		cmds = append(cmds, a.sendDialog(importer.DialogID, importer.PreviewMsg{Entries: a.ctrl.Preview()}))

	case clipboardMsg:
		if msg.err != nil {
			cmds = append(cmds, a.toasts.Push(toast.LevelError, "Copy failed: "+msg.err.Error()))
		} else {
			cmds = append(cmds, a.toasts.Push(toast.LevelSuccess, "Scene copied to clipboard"))
		}

	case toast.ExpireMsg:
		a.toasts, _ = a.toasts.Update(msg)

	case dataentry.SubmitMsg:
		err := a.ctrl.ApplyCustom(origin("dialog"), msg.Kind, msg.Text)
		cmds = append(cmds, a.sendDialog(dataentry.DialogID, dataentry.ResultMsg{Err: err}))

	case style.ActionMsg:
		cmds = append(cmds, a.styleAction(msg))

	case styleSavedMsg:
		_ = a.ctrl.StyleSaved(msg.err)

	case styleLoadedMsg:
		if err := a.ctrl.StyleLoaded(origin("dialog"), msg.preset, msg.ok, msg.err); err == nil && msg.ok {
			cmds = append(cmds, a.sendDialog(style.DialogID, style.SetPresetMsg{Preset: a.ctrl.State().Style}))
		}

	case confirm.ActionMsg:
		if msg.Tag == style.ResetTag && msg.Confirmed {
			a.ctrl.ResetStyle(origin("dialog"))
			cmds = append(cmds, a.sendDialog(style.DialogID, style.SetPresetMsg{Preset: a.ctrl.State().Style}))
		}

	case filter.ActionMsg:
		if err := a.ctrl.SetFilter(msg.Filter); err != nil {
			cmds = append(cmds, a.toasts.Push(toast.LevelError, err.Error()))
		}
		a.refocus()

	case importer.ImportMsg:
		cmds = append(cmds, readFilesCmd(msg.Paths))

	case importer.ResetMsg:
		a.ctrl.ResetPreview()

	case importer.ClosedMsg:
		a.ctrl.CloseDragDrop()

	case inspect.CopyMsg:
		cmds = append(cmds, copyCmd(a.clipboard, msg.Text))

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.dialogs.HasDialogs() {
			cmds = append(cmds, a.updateDialogs(msg))
			break
		}
		cmd, quit := a.handleKey(msg)
		if quit {
			return a, tea.Quit
		}
		cmds = append(cmds, cmd)

	default:
		cmds = append(cmds, a.updateDialogs(msg))
	}

	cmds = append(cmds, a.drainNotifications()...)
	a.applyStyles()
	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	ctx := origin("keys")
	switch {
	case key.Matches(msg, a.keys.Quit):
		return nil, true
	case key.Matches(msg, a.keys.Left, a.keys.ShiftTab):
		a.moveFocus(-1)
	case key.Matches(msg, a.keys.Right, a.keys.Tab):
		a.moveFocus(1)
	case key.Matches(msg, a.keys.ScaleUp):
		a.ctrl.AdjustFactor(ctx, scaleStep)
	case key.Matches(msg, a.keys.ScaleDown):
		a.ctrl.AdjustFactor(ctx, -scaleStep)
	case key.Matches(msg, a.keys.Refresh):
		a.ctrl.Refresh(ctx)
	case key.Matches(msg, a.keys.Export):
		// Failures are reported through the controller notifications.
		_, _ = a.ctrl.Export(ctx, a.exportDir)
	case key.Matches(msg, a.keys.Theme):
		a.ctrl.CycleTheme(ctx)
	case key.Matches(msg, a.keys.ParamDown):
		return a.adjustParam(ctx, 0, -1), false
	case key.Matches(msg, a.keys.ParamUp):
		return a.adjustParam(ctx, 0, 1), false
	case key.Matches(msg, a.keys.AltDown):
		return a.adjustParam(ctx, 1, -1), false
	case key.Matches(msg, a.keys.AltUp):
		return a.adjustParam(ctx, 1, 1), false
	case key.Matches(msg, a.keys.Toggle):
		return a.toggleParam(ctx), false
	case key.Matches(msg, a.keys.Copy):
		return a.copyScene(), false
	case key.Matches(msg, a.keys.Filter):
		return a.openFilter(), false
	case key.Matches(msg, a.keys.Style):
		return a.openDialog(style.New(a.ctrl.State().Style, style.WithStyles(styleFormStyles(a.styles)))), false
	case key.Matches(msg, a.keys.Custom):
		return a.openDataEntry(), false
	case key.Matches(msg, a.keys.Import):
		a.ctrl.ToggleDragDrop()
		return a.openDialog(importer.New(
			importer.WithStyles(importerStyles(a.styles)),
			importer.WithEntries(a.ctrl.Preview()),
		)), false
	case key.Matches(msg, a.keys.Inspect):
		scene, ok := a.ctrl.Scene(a.focus)
		if !ok {
			return a.toasts.Push(toast.LevelWarning, a.focus.Title()+" is not rendered yet"), false
		}
		return a.openDialog(inspect.New(scene, inspect.WithStyles(inspectStyles(a.styles)))), false
	case key.Matches(msg, a.keys.Console):
		return a.openDialog(devtools.New(
			devtools.WithTracker(a.ctrl.Tracker()),
			devtools.WithStyles(devtoolsStyles(a.styles)),
		)), false
	case key.Matches(msg, a.keys.Help):
		return a.openDialog(help.New(
			help.WithSections(a.helpSections()),
			help.WithStyles(helpStyles(a.styles)),
		)), false
	}
	return nil, false
}

func (a *App) styleAction(msg style.ActionMsg) tea.Cmd {
	ctx := origin("dialog")
	switch msg.Action {
	case style.ActionApply:
		_ = a.ctrl.ApplyStyle(ctx, msg.Preset)
	case style.ActionSave:
		return saveStyleCmd(ctx, a.ctrl.StyleSaver())
	case style.ActionLoad:
		return loadStyleCmd(ctx, a.ctrl.StyleLoader())
	}
	return nil
}

// adjustParam moves the parameter at index i of the focused chart.
func (a *App) adjustParam(ctx context.Context, i, delta int) tea.Cmd {
	specs := a.focus.Params()
	if i >= len(specs) {
		return nil
	}
	if err := a.ctrl.AdjustParam(ctx, a.focus, specs[i].Key, delta); err != nil {
		return a.toasts.Push(toast.LevelError, err.Error())
	}
	return nil
}

// toggleParam flips the first boolean parameter of the focused chart.
func (a *App) toggleParam(ctx context.Context) tea.Cmd {
	for _, s := range a.focus.Params() {
		if s.Type == chart.ParamBool {
			if err := a.ctrl.AdjustParam(ctx, a.focus, s.Key, 1); err != nil {
				return a.toasts.Push(toast.LevelError, err.Error())
			}
			return nil
		}
	}
	return nil
}

func (a *App) copyScene() tea.Cmd {
	scene, ok := a.ctrl.Scene(a.focus)
	if !ok {
		return a.toasts.Push(toast.LevelWarning, a.focus.Title()+" is not rendered yet")
	}
	b, err := json.MarshalIndent(scene, "", "  ")
	if err != nil {
		return a.toasts.Push(toast.LevelError, "Copy failed: "+err.Error())
	}
	return copyCmd(a.clipboard, string(b))
}

func (a *App) openFilter() tea.Cmd {
	choices := []filter.Choice{{Value: dashboard.FilterAll, Label: "All charts"}}
	for _, k := range chart.Kinds() {
		choices = append(choices, filter.Choice{Value: k.ID(), Label: k.Title()})
	}
	return a.openDialog(filter.New(
		filter.WithStyles(filterStyles(a.styles)),
		filter.WithChoices(choices),
		filter.WithCurrent(a.ctrl.State().Filter),
	))
}

func (a *App) openDataEntry() tea.Cmd {
	if a.focus.Shape() == chart.ShapeNone {
		return a.toasts.Push(toast.LevelWarning, a.focus.Title()+" does not accept custom data")
	}
	opts := []dataentry.Option{dataentry.WithStyles(dataentryStyles(a.styles))}
	if d, ok := a.ctrl.Custom(a.focus); ok {
		if b, err := json.Marshal(d); err == nil {
			opts = append(opts, dataentry.WithValue(string(b)))
		}
	}
	return a.openDialog(dataentry.New(a.focus, opts...))
}

func (a *App) openDialog(m dialogs.DialogModel) tea.Cmd {
	return a.updateDialogs(dialogs.OpenDialogMsg{Model: m})
}

func (a *App) updateDialogs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	a.dialogs, cmd = a.dialogs.Update(msg)
	return cmd
}

func (a *App) sendDialog(id dialogs.DialogID, msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	a.dialogs, cmd = a.dialogs.Send(id, msg)
	return cmd
}

// drainNotifications turns queued controller notifications into toasts.
func (a *App) drainNotifications() []tea.Cmd {
	var cmds []tea.Cmd
	for _, n := range a.ctrl.Notifications() {
		cmds = append(cmds, a.toasts.Push(toastLevel(n.Level), n.Message))
	}
	return cmds
}

func toastLevel(l dashboard.Level) toast.Level {
	switch l {
	case dashboard.LevelSuccess:
		return toast.LevelSuccess
	case dashboard.LevelWarning:
		return toast.LevelWarning
	case dashboard.LevelError:
		return toast.LevelError
	default:
		return toast.LevelInfo
	}
}

// applyStyles derives the UI styles from the applied preset accent.
func (a *App) applyStyles() {
	st := a.ctrl.State()
	accent := ""
	if st.HasStyle {
		accent = st.Style.ThemeColor
	}
	if a.styled && accent == a.accent {
		return
	}
	a.styled = true
	a.accent = accent
	a.styles = theme.StylesFor(theme.DefaultTheme.WithAccent(accent))
	a.statusbar.SetStyles(statusbarStyles(a.styles))
	a.footer.SetStyles(footerStyles(a.styles))
	a.toasts.SetStyles(toastStyles(a.styles))
}

func (a App) helpSections() []help.Section {
	groups := a.keys.FullHelp()
	titles := []string{"Navigation", "Dashboard", "Focused chart", "Style and data", "General"}
	sections := make([]help.Section, 0, len(groups)+1)
	for i, g := range groups {
		sections = append(sections, help.Section{Title: titles[i], Bindings: g})
	}
	sections = append(sections, help.Section{
		Title: "Charts",
		Lines: chartLines(),
	})
	return sections
}

func chartLines() []string {
	lines := make([]string, 0, chart.Count)
	for _, k := range chart.Kinds() {
		lines = append(lines, k.ID()+": "+k.Title())
	}
	return lines
}

func (a App) statusData() statusbar.Data {
	st := a.ctrl.State()
	styleName := "default"
	if st.HasStyle {
		styleName = "custom"
	}
	return statusbar.Data{
		Factor:   st.Factor,
		Theme:    st.Theme,
		Filter:   st.Filter,
		Style:    styleName,
		Visible:  len(a.ctrl.Registry().Visible()),
		Total:    chart.Count,
		Loading:  a.ctrl.Registry().Loading(),
		DragDrop: st.DragDrop,
	}
}

// render composites the base view, the dialogs and the toasts.
func (a App) render() string {
	a.statusbar.SetData(a.statusData())
	base := lipgloss.JoinVertical(
		lipgloss.Left,
		a.statusbar.View(),
		a.renderGrid(),
		a.footer.View(),
	)

	layers := []*lipgloss.Layer{lipgloss.NewLayer(base)}
	layers = append(layers, a.dialogs.Layers()...)
	if !a.toasts.Empty() {
		x := max(a.width-a.toasts.Width()-1, 0)
		layers = append(layers, lipgloss.NewLayer(a.toasts.View()).
			X(x).
			Y(a.statusbar.Height()).
			Z(len(a.dialogs.Dialogs())+2))
	}
	return lipgloss.NewCompositor(layers...).Render()
}

// View implements tea.Model.
func (a App) View() tea.View {
	var v tea.View
	v.AltScreen = true

	if !a.ready {
		v.SetContent("Initializing...")
		return v
	}
	v.SetContent(a.render())
	return v
}

func origin(name string) context.Context {
	return devlog.WithOrigin(context.Background(), name)
}
