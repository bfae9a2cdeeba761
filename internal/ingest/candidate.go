package ingest

import (
	"fmt"
	"math"
	"strings"

	"github.com/kpumuk/lazyplot/internal/chart"
)

// Candidate picks the first two numeric columns of the first row as (x,y)
// and collects them from every row where both parse. The first non-numeric
// column, when present, supplies point labels.
func Candidate(r Result) (chart.Points, error) {
	t := r.Table
	if len(t.Rows) == 0 || len(t.Columns) < 2 {
		return chart.Points{}, ErrNoCandidate
	}

	first := t.Rows[0]
	var numeric []string
	label := ""
	for _, col := range t.Columns {
		if _, ok := toFloat(first[col]); ok {
			numeric = append(numeric, col)
		} else if label == "" {
			label = col
		}
	}
	if len(numeric) < 2 {
		return chart.Points{}, ErrNoCandidate
	}
	xKey, yKey := numeric[0], numeric[1]

	var pts chart.Points
	for _, row := range t.Rows {
		x, okX := toFloat(row[xKey])
		y, okY := toFloat(row[yKey])
		if !okX || !okY {
			continue
		}
		pts.X = append(pts.X, x)
		pts.Y = append(pts.Y, y)
		if label != "" {
			pts.Labels = append(pts.Labels, fmt.Sprint(row[label]))
		}
	}
	if len(pts.X) == 0 {
		return chart.Points{}, ErrNoCandidate
	}
	return pts, nil
}

// Columns returns the names of the two candidate columns, for display.
func Columns(r Result) (string, string, bool) {
	t := r.Table
	if len(t.Rows) == 0 {
		return "", "", false
	}
	var numeric []string
	for _, col := range t.Columns {
		if _, ok := toFloat(t.Rows[0][col]); ok {
			numeric = append(numeric, col)
		}
	}
	if len(numeric) < 2 {
		return "", "", false
	}
	return numeric[0], numeric[1], true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n) && !math.IsInf(n, 0)
	case string:
		return parseFinite(strings.TrimSpace(n))
	default:
		return 0, false
	}
}
