package chart

import (
	"fmt"
	"math"
)

const (
	streamGrid  = 50
	streamSteps = 10
	streamDt    = 0.05
	arrowScale  = 0.1
)

func buildStream(in Input) Scene {
	density := min(max(param(Stream, "density").Int(in.Params), 1), streamGrid)
	step := streamGrid / density
	grid := evenly(0, 5, streamGrid)
	f := in.Factor / 100

	var lines, arrows []Series
	for i := 0; i < streamGrid; i += step {
		for j := 0; j < streamGrid; j += step {
			x, y := grid[j], grid[i]
			u, v := x*f, y*f

			xs, ys := []float64{x}, []float64{y}
			cx, cy := x, y
			for range streamSteps {
				cx += u * streamDt
				cy += v * streamDt
				if cx < 0 || cx > 5 || cy < 0 || cy > 5 {
					break
				}
				xs = append(xs, cx)
				ys = append(ys, cy)
			}
			hue := 200 + float64(i)/streamGrid*60
			lines = append(lines, Series{
				Type:  SeriesLine,
				X:     xs,
				Y:     ys,
				Color: hsl(hue, 0.7, 0.5),
				Width: 2,
			})

			au, av := u*arrowScale, v*arrowScale
			arrows = append(arrows, Series{
				Type:  SeriesMarkers,
				X:     []float64{x, x + au},
				Y:     []float64{y, y + av},
				Color: "#0064C8",
				Marker: Marker{
					Symbol: SymbolTriangle,
					Size:   6,
					Angle:  math.Atan2(av, au) * 180 / math.Pi,
				},
			})
		}
	}

	return Scene{
		Series: append(lines, arrows...),
		XAxis:  Axis{Title: "X", Range: &Range{Min: 0, Max: 5}},
		YAxis:  Axis{Title: "Y", Range: &Range{Min: 0, Max: 5}},
	}
}

// hsl formats a colour given hue in degrees and saturation/lightness in [0,1].
func hsl(h, s, l float64) string {
	c := (1 - math.Abs(2*l-1)) * s
	hp := math.Mod(h, 360) / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	var r, g, b float64
	switch {
	case hp < 1:
		r, g = c, x
	case hp < 2:
		r, g = x, c
	case hp < 3:
		g, b = c, x
	case hp < 4:
		g, b = x, c
	case hp < 5:
		r, b = x, c
	default:
		r, b = c, x
	}
	m := l - c/2
	return fmt.Sprintf("#%02X%02X%02X", to8(r+m), to8(g+m), to8(b+m))
}

func to8(v float64) int {
	return int(math.Round(min(max(v, 0), 1) * 255))
}
