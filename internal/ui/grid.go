package ui

import (
	"slices"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/kpumuk/lazyplot/internal/chart"
	"github.com/kpumuk/lazyplot/internal/dashboard"
	"github.com/kpumuk/lazyplot/internal/mathutil"
	"github.com/kpumuk/lazyplot/internal/ui/charts"
	"github.com/kpumuk/lazyplot/internal/ui/components/frame"
)

const (
	panelMinWidth  = 40
	panelMinHeight = 12
)

// gridLayout is the panel arrangement for a given area.
type gridLayout struct {
	cols int
	// rows is the number of panel rows that fit on screen; total is the
	// number of rows needed for every visible panel.
	rows   int
	total  int
	width  int
	height int
}

func layoutGrid(n, width, height int) gridLayout {
	if n <= 0 || width <= 0 || height <= 0 {
		return gridLayout{}
	}
	cols := mathutil.Clamp(width/panelMinWidth, 1, n)
	total := (n + cols - 1) / cols
	rows := mathutil.Clamp(height/panelMinHeight, 1, total)
	return gridLayout{
		cols:   cols,
		rows:   rows,
		total:  total,
		width:  width / cols,
		height: height / rows,
	}
}

func (a App) gridHeight() int {
	return max(a.height-a.statusbar.Height()-a.footer.Height(), 0)
}

func (a App) layout() gridLayout {
	return layoutGrid(len(a.ctrl.Registry().Visible()), a.width, a.gridHeight())
}

// focusIndex returns the position of the focused kind among the visible
// slots, or -1.
func (a App) focusIndex(visible []dashboard.Entry) int {
	return slices.IndexFunc(visible, func(e dashboard.Entry) bool { return e.Kind == a.focus })
}

// moveFocus cycles the focus through the visible slots.
func (a *App) moveFocus(delta int) {
	visible := a.ctrl.Registry().Visible()
	if len(visible) == 0 {
		return
	}
	i := a.focusIndex(visible)
	if i < 0 {
		i = 0
	} else {
		i = ((i+delta)%len(visible) + len(visible)) % len(visible)
	}
	a.focus = visible[i].Kind
	a.scrollToFocus()
}

// refocus moves the focus to the first visible slot when the focused one
// was filtered out.
func (a *App) refocus() {
	visible := a.ctrl.Registry().Visible()
	if len(visible) > 0 && a.focusIndex(visible) < 0 {
		a.focus = visible[0].Kind
	}
	a.scrollToFocus()
}

// scrollToFocus keeps the row of the focused panel on screen.
func (a *App) scrollToFocus() {
	l := a.layout()
	if l.cols == 0 {
		a.top = 0
		return
	}
	row := max(a.focusIndex(a.ctrl.Registry().Visible()), 0) / l.cols
	if row < a.top {
		a.top = row
	}
	if row >= a.top+l.rows {
		a.top = row - l.rows + 1
	}
	a.top = mathutil.Clamp(a.top, 0, max(l.total-l.rows, 0))
}

func (a App) renderGrid() string {
	height := a.gridHeight()
	visible := a.ctrl.Registry().Visible()
	l := layoutGrid(len(visible), a.width, height)
	if l.cols == 0 {
		return charts.RenderCentered(a.width, height, a.styles.ViewMuted.Render("No charts match the filter"))
	}

	rows := make([]string, 0, l.rows)
	for r := a.top; r < min(a.top+l.rows, l.total); r++ {
		h := l.height
		if r == a.top+l.rows-1 {
			h = height - (l.rows-1)*l.height
		}
		panels := make([]string, 0, l.cols)
		for c := range l.cols {
			i := r*l.cols + c
			w := l.width
			if c == l.cols-1 {
				w = a.width - (l.cols-1)*l.width
			}
			if i >= len(visible) {
				panels = append(panels, charts.RenderCentered(w, h, ""))
				continue
			}
			panels = append(panels, a.renderPanel(visible[i], w, h))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, panels...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (a App) renderPanel(e dashboard.Entry, width, height int) string {
	st := a.ctrl.State()
	title := e.Kind.Title()
	var scene chart.Scene
	if e.Handle != nil {
		scene = e.Handle.Scene()
		if scene.Title != "" {
			title = scene.Title
		}
	}

	var meta string
	switch {
	case e.Loading && e.Handle == nil:
		meta = "loading"
	case a.hasCustom(e.Kind):
		meta = "custom data"
	}

	border := lipgloss.RoundedBorder()
	if st.Style.BorderRadius == 0 {
		border = lipgloss.NormalBorder()
	}
	opts := []frame.Option{
		frame.WithStyles(panelStyles(a.styles)),
		frame.WithTitle(title),
		frame.WithTag(e.Kind.ID()),
		frame.WithMeta(meta),
		frame.WithFooter(paramSummary(e.Kind, a.ctrl.Params(e.Kind))),
		frame.WithSize(width, height),
		frame.WithPadding(mathutil.Clamp(st.Style.ChartSpacing/20, 0, 2)),
		frame.WithBorder(border),
		frame.WithFocused(e.Kind == a.focus),
	}
	cw, ch := frame.New(opts...).ContentSize()

	var content string
	switch {
	case e.Handle != nil:
		content = charts.Raster(scene, cw, ch, rasterStyles(a.styles))
	case e.Loading:
		content = charts.RenderCentered(cw, ch, a.styles.ViewMuted.Render("Loading…"))
	case !e.Mounted:
		content = charts.RenderCentered(cw, ch, a.styles.ViewMuted.Render("No render target"))
	default:
		content = charts.RenderCentered(cw, ch, a.styles.ViewMuted.Render("Not rendered"))
	}
	return frame.New(append(opts, frame.WithContent(content))...).View()
}

func (a App) hasCustom(k chart.Kind) bool {
	_, ok := a.ctrl.Custom(k)
	return ok
}

// paramSummary lists the effective parameter values of k.
func paramSummary(k chart.Kind, values chart.Values) string {
	specs := k.Params()
	if len(specs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(specs))
	for _, s := range specs {
		parts = append(parts, s.Label+" "+s.Display(values))
	}
	return strings.Join(parts, " • ")
}
