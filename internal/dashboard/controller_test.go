package dashboard

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"testing"
	"time"

	"github.com/kpumuk/lazyplot/internal/chart"
	"github.com/kpumuk/lazyplot/internal/devtools"
	"github.com/kpumuk/lazyplot/internal/ingest"
	"github.com/kpumuk/lazyplot/internal/mathutil"
	"github.com/kpumuk/lazyplot/internal/preset"
)

func newStartedController(t *testing.T, opts ...Option) *Controller {
	t.Helper()
	c := New(opts...)
	if err := c.Startup(context.Background(), nil); err != nil {
		t.Fatalf("Startup() error = %v", err)
	}
	c.Notifications()
	return c
}

func lastNotification(t *testing.T, c *Controller) Notification {
	t.Helper()
	n := c.Notifications()
	if len(n) == 0 {
		t.Fatal("expected a notification")
	}
	return n[len(n)-1]
}

func TestStartup_RendersAllSlotsInOrder(t *testing.T) {
	t.Parallel()

	c := New()
	var delays []time.Duration
	sleep := func(_ context.Context, d time.Duration) error {
		delays = append(delays, d)
		if !c.Registry().Loading() {
			t.Fatal("slots should be loading during startup")
		}
		return nil
	}
	if err := c.Startup(context.Background(), sleep); err != nil {
		t.Fatalf("Startup() error = %v", err)
	}

	if len(delays) != chart.Count {
		t.Fatalf("delays = %d, want %d", len(delays), chart.Count)
	}
	if delays[0] != FirstDelay || delays[1] != StepDelay {
		t.Fatalf("delays = %v, want %v then %v", delays[:2], FirstDelay, StepDelay)
	}
	for _, e := range c.Registry().Entries() {
		if !e.Rendered() {
			t.Fatalf("%s not rendered after startup", e.Kind.Slot())
		}
	}
}

func TestStartup_ToleratesMissingTarget(t *testing.T) {
	t.Parallel()

	tracker := devtools.NewTracker()
	c := New(WithTracker(tracker))
	c.Registry().Mount(chart.Gantt, false)
	if err := c.Startup(context.Background(), nil); err != nil {
		t.Fatalf("Startup() error = %v", err)
	}

	for _, e := range c.Registry().Entries() {
		if e.Loading {
			t.Fatalf("%s still loading", e.Kind.Slot())
		}
		if e.Kind == chart.Gantt {
			if e.Handle != nil {
				t.Fatal("gantt should have been skipped")
			}
			continue
		}
		if !e.Rendered() {
			t.Fatalf("%s not rendered", e.Kind.Slot())
		}
	}
	if got := tracker.Count(devtools.EntrySkip); got != 1 {
		t.Fatalf("skips = %d, want 1", got)
	}
}

func TestStartup_SleepErrorClearsLoading(t *testing.T) {
	t.Parallel()

	c := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := c.Startup(ctx, Sleep); !errors.Is(err, context.Canceled) {
		t.Fatalf("Startup() error = %v, want context.Canceled", err)
	}
	if c.Registry().Loading() {
		t.Fatal("loading flags should be cleared")
	}
}

func TestScheduler(t *testing.T) {
	t.Parallel()

	s := NewScheduler(chart.Kinds())
	if s.Len() != chart.Count {
		t.Fatalf("Len() = %d, want %d", s.Len(), chart.Count)
	}
	if got, want := s.Total(), FirstDelay+time.Duration(chart.Count-1)*StepDelay; got != want {
		t.Fatalf("Total() = %v, want %v", got, want)
	}
	var order []chart.Kind
	for {
		task, ok := s.Next()
		if !ok {
			break
		}
		order = append(order, task.Kind)
	}
	if !slices.Equal(order, chart.Kinds()) {
		t.Fatalf("order = %v, want %v", order, chart.Kinds())
	}
	if !s.Done() {
		t.Fatal("Done() = false after exhausting tasks")
	}
}

func TestApplyCustom_Stem(t *testing.T) {
	t.Parallel()

	c := newStartedController(t)
	before := make(map[chart.Kind]chart.Scene)
	for _, k := range chart.Kinds() {
		before[k], _ = c.Scene(k)
	}

	if err := c.ApplyCustom(context.Background(), chart.Stem, `{"labels":["A","B"],"values":[1,2]}`); err != nil {
		t.Fatalf("ApplyCustom() error = %v", err)
	}
	if n := lastNotification(t, c); n.Level != LevelSuccess {
		t.Fatalf("notification level = %v, want success", n.Level)
	}

	scene, _ := c.Scene(chart.Stem)
	s := scene.Series[0]
	if !slices.Equal(s.Categories, []string{"A", "B"}) || !slices.Equal(s.Y, []float64{1, 2}) {
		t.Fatalf("stem = %v %v, want [A B] [1 2]", s.Categories, s.Y)
	}
	for _, k := range chart.Kinds() {
		if k == chart.Stem {
			continue
		}
		after, _ := c.Scene(k)
		if !reflect.DeepEqual(before[k], after) {
			t.Fatalf("%s changed after stem custom data", k.ID())
		}
	}
}

func TestApplyCustom_InvalidLeavesStateUnchanged(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		kind chart.Kind
		text string
	}{
		"invalid json":   {kind: chart.Stem, text: `{"labels":["A"`},
		"wrong shape":    {kind: chart.Stem, text: `{"tasks":["A"],"durations":[1],"starts":[0]}`},
		"length":         {kind: chart.Gantt, text: `{"tasks":["A","B"],"durations":[1],"starts":[0]}`},
		"no custom data": {kind: chart.Sankey, text: `{"labels":["A"],"values":[1]}`},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			c := newStartedController(t)
			before, _ := c.Scene(tt.kind)

			err := c.ApplyCustom(context.Background(), tt.kind, tt.text)
			if !errors.Is(err, ErrMalformedInput) {
				t.Fatalf("ApplyCustom() error = %v, want ErrMalformedInput", err)
			}
			if n := lastNotification(t, c); n.Level != LevelError {
				t.Fatalf("notification level = %v, want error", n.Level)
			}
			if _, ok := c.Custom(tt.kind); ok {
				t.Fatal("custom data should not be stored")
			}
			after, _ := c.Scene(tt.kind)
			if !reflect.DeepEqual(before, after) {
				t.Fatal("scene changed after rejected data")
			}
		})
	}
}

func TestSetFilter_OnlyTogglesVisibility(t *testing.T) {
	t.Parallel()

	tracker := devtools.NewTracker()
	c := newStartedController(t, WithTracker(tracker))
	renders := tracker.Count(devtools.EntryRender)

	if err := c.SetFilter("funnel"); err != nil {
		t.Fatalf("SetFilter() error = %v", err)
	}
	visible := c.Registry().Visible()
	if len(visible) != 1 || visible[0].Kind != chart.Funnel {
		t.Fatalf("visible = %v, want only funnel", visible)
	}
	if got := tracker.Count(devtools.EntryRender); got != renders {
		t.Fatalf("renders = %d, want %d", got, renders)
	}

	if err := c.SetFilter(FilterAll); err != nil {
		t.Fatalf("SetFilter(all) error = %v", err)
	}
	if got := len(c.Registry().Visible()); got != chart.Count {
		t.Fatalf("visible = %d, want %d", got, chart.Count)
	}
	if err := c.SetFilter("pie"); !errors.Is(err, ErrUnknownFilter) {
		t.Fatalf("SetFilter(pie) error = %v, want ErrUnknownFilter", err)
	}
	if c.State().Filter != FilterAll {
		t.Fatalf("Filter = %q, want all", c.State().Filter)
	}
}

func TestCycleFilter(t *testing.T) {
	t.Parallel()

	c := New()
	if got := c.CycleFilter(1); got != chart.Contour.ID() {
		t.Fatalf("CycleFilter(1) = %q, want %q", got, chart.Contour.ID())
	}
	if got := c.CycleFilter(-2); got != chart.Waffle.ID() {
		t.Fatalf("CycleFilter(-2) = %q, want %q", got, chart.Waffle.ID())
	}
}

func TestRefresh(t *testing.T) {
	t.Parallel()

	tests := []struct {
		r    float64
		want float64
	}{
		{r: 0, want: 80},
		{r: 0.5, want: 90},
		{r: 0.25, want: 85},
	}
	for _, tt := range tests {
		c := New(WithRand(func() float64 { return tt.r }))
		if got := c.Refresh(context.Background()); got != tt.want {
			t.Fatalf("Refresh() = %v, want %v", got, tt.want)
		}
		scene, ok := c.Scene(chart.Funnel)
		if !ok {
			t.Fatal("Refresh should render every chart")
		}
		if got, want := scene.Series[0].X[0], mathutil.Scale(chart.FunnelValues[0], tt.want); got != want {
			t.Fatalf("funnel[0] = %v, want %v", got, want)
		}
		if n := lastNotification(t, c); n.Message != "Data refreshed" {
			t.Fatalf("notification = %q, want %q", n.Message, "Data refreshed")
		}
	}
}

func TestRefresh_Range(t *testing.T) {
	t.Parallel()

	c := New()
	for range 50 {
		f := c.Refresh(context.Background())
		if f < 80 || f >= 100 {
			t.Fatalf("Refresh() = %v, want [80,100)", f)
		}
	}
}

func TestAdjustFactor_Clamps(t *testing.T) {
	t.Parallel()

	c := New()
	if got := c.AdjustFactor(context.Background(), 5); got != MaxFactor {
		t.Fatalf("AdjustFactor(+5) = %v, want %v", got, MaxFactor)
	}
	c.SetFactor(context.Background(), 3)
	if got := c.AdjustFactor(context.Background(), -5); got != MinFactor {
		t.Fatalf("AdjustFactor(-5) = %v, want %v", got, MinFactor)
	}
	scene, _ := c.Scene(chart.Waffle)
	if scene.Series[len(scene.Series)-2].Name != "Occupied (0)" {
		t.Fatalf("waffle legend = %q, want Occupied (0)", scene.Series[len(scene.Series)-2].Name)
	}
}

func TestAdjustFactor_OutsideBounds(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		start float64
		delta float64
		want  float64
	}{
		"above max up":     {start: 150, delta: 5, want: 150},
		"above max down":   {start: 150, delta: -5, want: 145},
		"inside up to max": {start: 98, delta: 5, want: MaxFactor},
		"inside down":      {start: 50, delta: -5, want: 45},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			st := DefaultState()
			st.Factor = tt.start
			c := New(WithState(st))
			if got := c.AdjustFactor(context.Background(), tt.delta); got != tt.want {
				t.Fatalf("AdjustFactor(%v) from %v = %v, want %v", tt.delta, tt.start, got, tt.want)
			}
		})
	}
}

func TestStyleSaver_DefersStoreWrite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := preset.NewMemoryStore()
	c := New(WithStore(store))
	if save := c.StyleSaver(); save != nil {
		t.Fatal("StyleSaver() without a style should be nil")
	}

	p := preset.Default()
	p.ThemeColor = "#00FF00"
	if err := c.ApplyStyle(ctx, p); err != nil {
		t.Fatalf("ApplyStyle() error = %v", err)
	}
	save := c.StyleSaver()
	if save == nil {
		t.Fatal("StyleSaver() = nil, want a store write")
	}
	if _, ok, _ := store.Load(ctx); ok {
		t.Fatal("StyleSaver() should not write until called")
	}
	if err := c.StyleSaved(save(ctx)); err != nil {
		t.Fatalf("save error = %v", err)
	}
	if got, ok, _ := store.Load(ctx); !ok || got != p {
		t.Fatalf("stored = %+v/%v, want %+v", got, ok, p)
	}
	if n := lastNotification(t, c); n.Message != "Style saved" {
		t.Fatalf("notification = %q, want Style saved", n.Message)
	}

	failed := errors.New("connection refused")
	if err := c.StyleSaved(failed); !errors.Is(err, failed) {
		t.Fatalf("StyleSaved() error = %v, want %v", err, failed)
	}
	if n := lastNotification(t, c); n.Level != LevelError {
		t.Fatalf("notification level = %v, want error", n.Level)
	}
}

func TestAdjustParam(t *testing.T) {
	t.Parallel()

	c := newStartedController(t)
	if err := c.AdjustParam(context.Background(), chart.Waffle, "rows", -1); err != nil {
		t.Fatalf("AdjustParam() error = %v", err)
	}
	if got := c.Params(chart.Waffle)["rows"]; got != "9" {
		t.Fatalf("rows = %q, want 9", got)
	}
	if err := c.AdjustParam(context.Background(), chart.Waffle, "nope", 1); err == nil {
		t.Fatal("AdjustParam(unknown) should fail")
	}
}

func TestCycleTheme(t *testing.T) {
	t.Parallel()

	c := New()
	if got := c.CycleTheme(context.Background()); got != chart.Themes[1] {
		t.Fatalf("CycleTheme() = %q, want %q", got, chart.Themes[1])
	}
	scene, _ := c.Scene(chart.ScatterCluster)
	if scene.Palette != chart.PaletteForTheme(chart.Themes[1]) {
		t.Fatalf("palette = %q, want %q", scene.Palette, chart.PaletteForTheme(chart.Themes[1]))
	}
}

func TestSaveStyle_WithoutStyleWarns(t *testing.T) {
	t.Parallel()

	store := preset.NewMemoryStore()
	c := New(WithStore(store))
	if err := c.SaveStyle(context.Background()); err != nil {
		t.Fatalf("SaveStyle() error = %v", err)
	}
	if n := lastNotification(t, c); n.Level != LevelWarning {
		t.Fatalf("notification level = %v, want warning", n.Level)
	}
	if _, ok, _ := store.Load(context.Background()); ok {
		t.Fatal("nothing should have been saved")
	}
}

func TestStyle_ApplySaveLoad(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := preset.NewMemoryStore()
	c := New(WithStore(store))

	p := preset.Default()
	p.ColorScheme = "pastel"
	p.ThemeColor = "#FF0000"
	if err := c.ApplyStyle(ctx, p); err != nil {
		t.Fatalf("ApplyStyle() error = %v", err)
	}
	if c.State().Theme != "pastel" {
		t.Fatalf("Theme = %q, want pastel", c.State().Theme)
	}
	if err := c.SaveStyle(ctx); err != nil {
		t.Fatalf("SaveStyle() error = %v", err)
	}

	c.ResetStyle(ctx)
	if c.State().HasStyle || c.State().Theme != chart.DefaultTheme {
		t.Fatalf("state after reset = %+v", c.State())
	}
	if err := c.LoadStyle(ctx); err != nil {
		t.Fatalf("LoadStyle() error = %v", err)
	}
	if got := c.State().Style; got != p {
		t.Fatalf("Style = %+v, want %+v", got, p)
	}
}

func TestApplyStyle_Invalid(t *testing.T) {
	t.Parallel()

	c := New()
	p := preset.Default()
	p.BgColor = "white"
	if err := c.ApplyStyle(context.Background(), p); !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("ApplyStyle() error = %v, want ErrMalformedInput", err)
	}
	if c.State().HasStyle {
		t.Fatal("invalid style should not be applied")
	}
}

func TestExport(t *testing.T) {
	t.Parallel()

	c := New()
	c.Registry().Mount(chart.Sankey, false)
	if err := c.Startup(context.Background(), nil); err != nil {
		t.Fatalf("Startup() error = %v", err)
	}

	dir := t.TempDir()
	report, err := c.Export(context.Background(), dir)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if len(report.Written) != chart.Count-1 {
		t.Fatalf("written = %d, want %d", len(report.Written), chart.Count-1)
	}
	if !slices.Equal(report.Skipped, []chart.Kind{chart.Sankey}) {
		t.Fatalf("skipped = %v, want [sankey]", report.Skipped)
	}
	for _, k := range chart.Kinds() {
		_, err := os.Stat(filepath.Join(dir, k.Slot()+".png"))
		if k == chart.Sankey {
			if !os.IsNotExist(err) {
				t.Fatalf("%s.png should not exist", k.Slot())
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s.png: %v", k.Slot(), err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, HTMLFile)); err != nil {
		t.Fatalf("%s: %v", HTMLFile, err)
	}
}

func TestIngest(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := newStartedController(t)

	r, err := ingest.Parse("points.csv", []byte("name,x,y\na,1,2\nb,3,4\n"))
	c.Ingest(ctx, "points.csv", r, err)
	if n := lastNotification(t, c); n.Level != LevelSuccess {
		t.Fatalf("notification level = %v, want success", n.Level)
	}
	scene, _ := c.Scene(chart.ScatterCluster)
	if !slices.Equal(scene.Series[0].X, []float64{1, 3}) {
		t.Fatalf("x = %v, want [1 3]", scene.Series[0].X)
	}

	r, err = ingest.Parse("keys.json", []byte(`{"a":"b"}`))
	c.Ingest(ctx, "keys.json", r, err)
	if n := c.Notifications(); len(n) != 0 {
		t.Fatalf("notifications = %v, want none for a file without candidate", n)
	}

	r, err = ingest.Parse("notes.txt", []byte("hello"))
	c.Ingest(ctx, "notes.txt", r, err)
	if n := lastNotification(t, c); n.Level != LevelError {
		t.Fatalf("notification level = %v, want error", n.Level)
	}

	preview := c.Preview()
	if len(preview) != 3 {
		t.Fatalf("preview = %d entries, want 3", len(preview))
	}
	if !preview[0].Plotted || preview[1].Plotted {
		t.Fatalf("plotted = %v/%v, want true/false", preview[0].Plotted, preview[1].Plotted)
	}
	if preview[2].Name != "notes.txt" || preview[2].Err == nil {
		t.Fatalf("preview[2] = %+v, want notes.txt error", preview[2])
	}
}

func TestToggleDragDrop(t *testing.T) {
	t.Parallel()

	c := New()
	if !c.ToggleDragDrop() {
		t.Fatal("ToggleDragDrop() = false, want true")
	}
	c.CloseDragDrop()
	if c.State().DragDrop {
		t.Fatal("DragDrop should be off")
	}
}
