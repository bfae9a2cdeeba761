package chart

import (
	"fmt"
	"math"
)

const (
	waffleOccupiedColor = "#20B2AA"
	waffleEmptyColor    = "#D3D3D3"
)

// WaffleOccupied returns the number of occupied cells for a grid and factor.
// Non-finite or negative factors leave the grid empty.
func WaffleOccupied(rows, cols int, factor float64) int {
	total := float64(max(rows*cols, 0))
	target := math.Floor(WaffleBaseOccupied * (factor / 100))
	if math.IsNaN(target) || target <= 0 {
		return 0
	}
	return int(min(target, total))
}

func buildWaffle(in Input) Scene {
	rows := max(param(Waffle, "rows").Bounded(in.Params), 1)
	cols := max(param(Waffle, "cols").Bounded(in.Params), 1)
	total := rows * cols
	occupied := WaffleOccupied(rows, cols, in.Factor)
	empty := total - occupied

	series := make([]Series, 0, total+2)
	n := 0
	for row := range rows {
		for col := range cols {
			color, text := waffleEmptyColor, "Empty"
			if n < occupied {
				color, text = waffleOccupiedColor, "Occupied"
			}
			series = append(series, Series{
				Type:   SeriesMarkers,
				X:      []float64{float64(col)},
				Y:      []float64{float64(rows - row - 1)},
				Text:   []string{text},
				Color:  color,
				Marker: Marker{Symbol: SymbolSquare, Size: 20},
			})
			n++
		}
	}
	series = append(series,
		Series{
			Name:       fmt.Sprintf("Occupied (%d)", occupied),
			Type:       SeriesMarkers,
			Color:      waffleOccupiedColor,
			Marker:     Marker{Symbol: SymbolSquare, Size: 15},
			ShowLegend: true,
			LegendOnly: true,
		},
		Series{
			Name:       fmt.Sprintf("Empty (%d)", empty),
			Type:       SeriesMarkers,
			Color:      waffleEmptyColor,
			Marker:     Marker{Symbol: SymbolSquare, Size: 15},
			ShowLegend: true,
			LegendOnly: true,
		},
	)

	return Scene{
		Series: series,
		XAxis:  Axis{Range: &Range{Min: -0.5, Max: float64(cols) - 0.5}},
		YAxis:  Axis{Range: &Range{Min: -0.5, Max: float64(rows) - 0.5}},
		Annotations: []Annotation{{
			X:    float64(cols-1) / 2,
			Y:    float64(rows),
			Text: fmt.Sprintf("Occupancy: %s%%", Percent(float64(occupied), float64(total))),
		}},
		ShowLegend: true,
	}
}
