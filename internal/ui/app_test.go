package ui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/kpumuk/lazyplot/internal/chart"
	"github.com/kpumuk/lazyplot/internal/dashboard"
	"github.com/kpumuk/lazyplot/internal/preset"
	"github.com/kpumuk/lazyplot/internal/ui/dialogs/dataentry"
	"github.com/kpumuk/lazyplot/internal/ui/dialogs/dialogtest"
	"github.com/kpumuk/lazyplot/internal/ui/dialogs/filter"
	"github.com/kpumuk/lazyplot/internal/ui/dialogs/help"
	"github.com/kpumuk/lazyplot/internal/ui/dialogs/importer"
	"github.com/kpumuk/lazyplot/internal/ui/dialogs/style"
)

func update(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	next, cmd := a.Update(msg)
	app, ok := next.(App)
	if !ok {
		t.Fatalf("Update returned %T, want App", next)
	}
	return app, cmd
}

func press(t *testing.T, a App, keys ...string) App {
	t.Helper()
	for _, k := range keys {
		a, _ = update(t, a, dialogtest.KeyText(k))
	}
	return a
}

// startedApp runs the startup schedule without waiting for its delays.
func startedApp(t *testing.T, width, height int, opts ...Option) (App, *dashboard.Controller) {
	t.Helper()
	ctrl := dashboard.New()
	a := New(ctrl, opts...)
	a, _ = update(t, a, tea.WindowSizeMsg{Width: width, Height: height})
	for {
		task, ok := a.scheduler.Next()
		if !ok {
			break
		}
		a, _ = update(t, a, startupTaskMsg{task: task})
	}
	a, _ = update(t, a, startupDoneMsg{})
	return a, ctrl
}

func hasToast(a App, message string) bool {
	for _, t := range a.toasts.Toasts() {
		if t.Message == message {
			return true
		}
	}
	return false
}

func TestAppStartup(t *testing.T) {
	t.Parallel()

	a, ctrl := startedApp(t, 160, 48)
	for _, e := range ctrl.Registry().Entries() {
		if !e.Rendered() {
			t.Fatalf("%s not rendered after startup", e.Kind.Slot())
		}
	}
	if !hasToast(a, "All charts loaded") {
		t.Fatalf("toasts = %+v, want startup success", a.toasts.Toasts())
	}

	view := ansi.Strip(a.render())
	for _, want := range []string{"lazyplot", "Scale: 100%", "Contour map", "[contour]"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
	if lines := strings.Count(view, "\n") + 1; lines != 48 {
		t.Fatalf("view lines = %d, want 48", lines)
	}
}

func TestAppLoadingPanels(t *testing.T) {
	t.Parallel()

	a := New(dashboard.New())
	a, _ = update(t, a, tea.WindowSizeMsg{Width: 120, Height: 40})
	view := ansi.Strip(a.render())
	if !strings.Contains(view, "Loading…") {
		t.Fatalf("view should show loading panels:\n%s", view)
	}
}

func TestAppScaleKeys(t *testing.T) {
	t.Parallel()

	a, ctrl := startedApp(t, 120, 40)
	a = press(t, a, "-", "-")
	if got := ctrl.State().Factor; got != 90 {
		t.Fatalf("Factor = %v, want 90", got)
	}
	press(t, a, "+", "+", "+")
	if got := ctrl.State().Factor; got != dashboard.MaxFactor {
		t.Fatalf("Factor = %v, want %v", got, dashboard.MaxFactor)
	}
}

func TestAppFocusCycles(t *testing.T) {
	t.Parallel()

	a, _ := startedApp(t, 120, 40)
	a = press(t, a, "l")
	if a.focus != chart.Stream {
		t.Fatalf("focus = %v, want stream", a.focus)
	}
	a = press(t, a, "h", "h")
	if a.focus != chart.Waffle {
		t.Fatalf("focus = %v, want waffle", a.focus)
	}
}

func TestLayoutGrid(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		n, width, height int
		want             gridLayout
	}{
		"wide":   {n: 10, width: 160, height: 46, want: gridLayout{cols: 4, rows: 3, total: 3, width: 40, height: 15}},
		"narrow": {n: 10, width: 80, height: 24, want: gridLayout{cols: 2, rows: 2, total: 5, width: 40, height: 12}},
		"single": {n: 1, width: 200, height: 50, want: gridLayout{cols: 1, rows: 1, total: 1, width: 200, height: 50}},
		"tiny":   {n: 3, width: 20, height: 5, want: gridLayout{cols: 1, rows: 1, total: 3, width: 20, height: 5}},
		"empty":  {n: 0, width: 80, height: 24, want: gridLayout{}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := layoutGrid(tc.n, tc.width, tc.height); got != tc.want {
				t.Fatalf("layoutGrid(%d, %d, %d) = %+v, want %+v", tc.n, tc.width, tc.height, got, tc.want)
			}
		})
	}
}

func TestAppScrollsToFocus(t *testing.T) {
	t.Parallel()

	// 80x26 leaves a 24 line grid: two columns, two visible rows of five.
	a, _ := startedApp(t, 80, 26)
	a = press(t, a, "l", "l", "l", "l")
	if a.top != 1 {
		t.Fatalf("top = %d, want 1", a.top)
	}
	a = press(t, a, "l", "l", "l", "l", "l")
	if a.focus != chart.Waffle || a.top != 3 {
		t.Fatalf("focus = %v top = %d, want waffle at 3", a.focus, a.top)
	}
	a = press(t, a, "l")
	if a.focus != chart.Contour || a.top != 0 {
		t.Fatalf("focus = %v top = %d, want contour at 0", a.focus, a.top)
	}
}

func TestAppFilter(t *testing.T) {
	t.Parallel()

	a, ctrl := startedApp(t, 120, 40)
	a = press(t, a, "f")
	if got := a.dialogs.ActiveDialogID(); got != filter.DialogID {
		t.Fatalf("active dialog = %q, want filter", got)
	}

	a, _ = update(t, a, filter.ActionMsg{Filter: chart.Waffle.ID()})
	if got := len(ctrl.Registry().Visible()); got != 1 {
		t.Fatalf("visible = %d, want 1", got)
	}
	if a.focus != chart.Waffle {
		t.Fatalf("focus = %v, want waffle", a.focus)
	}
}

func TestAppParamKeys(t *testing.T) {
	t.Parallel()

	a, ctrl := startedApp(t, 120, 40)
	a = press(t, a, "]", "}")
	params := ctrl.Params(chart.Contour)
	if params["density"] != "272" || params["levels"] != "9" {
		t.Fatalf("contour params = %v, want density 272 and levels 9", params)
	}

	a = press(t, a, "l", "l", " ")
	if got := ctrl.Params(chart.Stem)["showValues"]; got != "false" {
		t.Fatalf("showValues = %q, want false", got)
	}
	if panel := ansi.Strip(a.renderPanel(ctrl.Registry().Entry(chart.Stem), 60, 14)); !strings.Contains(panel, "values off") {
		t.Fatalf("stem panel should show the toggled option:\n%s", panel)
	}
}

func TestAppCustomData(t *testing.T) {
	t.Parallel()

	a, ctrl := startedApp(t, 120, 40)

	a = press(t, a, "c")
	if a.dialogs.HasDialogs() {
		t.Fatalf("contour takes no custom data, got dialog %q", a.dialogs.ActiveDialogID())
	}
	if !hasToast(a, "Contour map does not accept custom data") {
		t.Fatalf("toasts = %+v", a.toasts.Toasts())
	}

	a, _ = update(t, a, filter.ActionMsg{Filter: chart.Funnel.ID()})
	a = press(t, a, "c")
	if got := a.dialogs.ActiveDialogID(); got != dataentry.DialogID {
		t.Fatalf("active dialog = %q, want dataentry", got)
	}

	a, _ = update(t, a, dataentry.SubmitMsg{Kind: chart.Funnel, Text: `{"labels":["a","b"],"values":[2,1]}`})
	if _, ok := ctrl.Custom(chart.Funnel); !ok {
		t.Fatal("custom data not applied")
	}
	if !hasToast(a, "Custom data applied to "+chart.Funnel.Title()) {
		t.Fatalf("toasts = %+v", a.toasts.Toasts())
	}
	if panel := ansi.Strip(a.renderPanel(ctrl.Registry().Entry(chart.Funnel), 60, 14)); !strings.Contains(panel, "custom data") {
		t.Fatalf("panel should be marked as custom:\n%s", panel)
	}
}

func TestAppImport(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "points.csv")
	if err := os.WriteFile(path, []byte("name,x,y\na,1,2\nb,3,4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	a, ctrl := startedApp(t, 120, 40)
	a = press(t, a, "d")
	if !ctrl.State().DragDrop {
		t.Fatal("import key should enable drag and drop mode")
	}
	if got := a.dialogs.ActiveDialogID(); got != importer.DialogID {
		t.Fatalf("active dialog = %q, want importer", got)
	}

	a, _ = update(t, a, readFileCmd(path)())
	preview := ctrl.Preview()
	if len(preview) != 1 || !preview[0].Plotted {
		t.Fatalf("preview = %+v, want one plotted entry", preview)
	}
	if view := ansi.Strip(a.render()); !strings.Contains(view, "points.csv") {
		t.Fatalf("importer should list the file:\n%s", view)
	}

	a, _ = update(t, a, importer.ClosedMsg{})
	if ctrl.State().DragDrop {
		t.Fatal("closing the importer should leave drag and drop mode")
	}
}

func TestAppCopyScene(t *testing.T) {
	t.Parallel()

	var copied string
	a, _ := startedApp(t, 120, 40, WithClipboard(func(text string) error {
		copied = text
		return nil
	}))

	a, cmd := update(t, a, dialogtest.KeyText("y"))
	msg, ok := dialogtest.Find[clipboardMsg](dialogtest.Collect(t, cmd))
	if !ok {
		t.Fatal("copy key did not write to the clipboard")
	}
	if !strings.Contains(copied, `"slot": "contourChart"`) {
		t.Fatalf("copied = %q, want contour scene JSON", copied)
	}

	a, _ = update(t, a, msg)
	if !hasToast(a, "Scene copied to clipboard") {
		t.Fatalf("toasts = %+v", a.toasts.Toasts())
	}
	a, _ = update(t, a, clipboardMsg{err: errors.New("no clipboard")})
	if !hasToast(a, "Copy failed: no clipboard") {
		t.Fatalf("toasts = %+v", a.toasts.Toasts())
	}
}

func TestAppExport(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a, _ := startedApp(t, 120, 40, WithExportDir(dir))
	a = press(t, a, "e")
	for _, name := range []string{"funnelChart.png", dashboard.HTMLFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
	}
	if !hasToast(a, "Exported 10 charts to "+dir) {
		t.Fatalf("toasts = %+v", a.toasts.Toasts())
	}
}

func TestAppDialogsCaptureKeys(t *testing.T) {
	t.Parallel()

	a, ctrl := startedApp(t, 120, 40)
	a = press(t, a, "?")
	if got := a.dialogs.ActiveDialogID(); got != help.DialogID {
		t.Fatalf("active dialog = %q, want help", got)
	}
	if view := ansi.Strip(a.render()); !strings.Contains(view, "Focused chart") {
		t.Fatalf("help should list sections:\n%s", view)
	}

	press(t, a, "-")
	if got := ctrl.State().Factor; got != dashboard.DefaultFactor {
		t.Fatalf("Factor = %v, want keys captured by the dialog", got)
	}
}

func TestAppQuit(t *testing.T) {
	t.Parallel()

	a, _ := startedApp(t, 120, 40)
	_, cmd := update(t, a, dialogtest.KeyText("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q should quit")
	}
}

// countingStore records store calls so tests can tell when they happen.
type countingStore struct {
	preset.MemoryStore
	saves, loads int
}

func (s *countingStore) Save(ctx context.Context, p preset.Preset) error {
	s.saves++
	return s.MemoryStore.Save(ctx, p)
}

func (s *countingStore) Load(ctx context.Context) (preset.Preset, bool, error) {
	s.loads++
	return s.MemoryStore.Load(ctx)
}

func TestAppStyleStoreRunsInCommands(t *testing.T) {
	t.Parallel()

	store := &countingStore{}
	ctrl := dashboard.New(dashboard.WithStore(store))
	a := New(ctrl)
	a, _ = update(t, a, tea.WindowSizeMsg{Width: 120, Height: 40})

	p := preset.Default()
	p.ThemeColor = "#FF0000"
	if err := ctrl.ApplyStyle(context.Background(), p); err != nil {
		t.Fatalf("ApplyStyle() error = %v", err)
	}
	// Drain the apply notification so the next command is the store call.
	a, _ = update(t, a, tea.WindowSizeMsg{Width: 120, Height: 40})

	a, cmd := update(t, a, style.ActionMsg{Action: style.ActionSave})
	if store.saves != 0 {
		t.Fatalf("saves = %d after Update, want 0", store.saves)
	}
	if cmd == nil {
		t.Fatal("save should return a command")
	}
	msg := cmd()
	if _, ok := msg.(styleSavedMsg); !ok {
		t.Fatalf("command returned %T, want styleSavedMsg", msg)
	}
	if store.saves != 1 {
		t.Fatalf("saves = %d after command, want 1", store.saves)
	}
	a, _ = update(t, a, msg)
	if !hasToast(a, "Style saved") {
		t.Fatalf("toasts = %+v, want save success", a.toasts.Toasts())
	}

	ctrl.ResetStyle(context.Background())
	a, _ = update(t, a, tea.WindowSizeMsg{Width: 120, Height: 40})
	a, cmd = update(t, a, style.ActionMsg{Action: style.ActionLoad})
	if store.loads != 0 {
		t.Fatalf("loads = %d after Update, want 0", store.loads)
	}
	if cmd == nil {
		t.Fatal("load should return a command")
	}
	a, _ = update(t, a, cmd())
	if store.loads != 1 {
		t.Fatalf("loads = %d, want 1", store.loads)
	}
	if !ctrl.State().HasStyle || ctrl.State().Style != p {
		t.Fatalf("Style = %+v, want %+v", ctrl.State().Style, p)
	}
	if !hasToast(a, "Style applied") {
		t.Fatalf("toasts = %+v, want style applied", a.toasts.Toasts())
	}
}

func TestAppSaveWithoutStyleWarns(t *testing.T) {
	t.Parallel()

	store := &countingStore{}
	a := New(dashboard.New(dashboard.WithStore(store)))
	a, _ = update(t, a, tea.WindowSizeMsg{Width: 120, Height: 40})
	a, _ = update(t, a, style.ActionMsg{Action: style.ActionSave})
	if store.saves != 0 {
		t.Fatalf("saves = %d, want 0", store.saves)
	}
	if !hasToast(a, "No style applied yet") {
		t.Fatalf("toasts = %+v, want warning", a.toasts.Toasts())
	}
}
