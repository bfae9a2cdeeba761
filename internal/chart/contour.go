package chart

import "math"

const contourMaxDensity = 50

func buildContour(in Input) Scene {
	density := param(Contour, "density").Int(in.Params)
	levels := param(Contour, "levels").Bounded(in.Params)
	n := min(max(density, 2), contourMaxDensity)

	xs := evenly(-2, 2, n)
	ys := evenly(-2, 2, n)
	z := make([][]float64, n)
	for i := range n {
		z[i] = make([]float64, n)
		for j := range n {
			z[i][j] = height(xs[j], ys[i]) * (in.Factor / 100)
		}
	}

	return Scene{
		Series: []Series{{
			Name: "height",
			Type: SeriesContour,
			X:    xs,
			Y:    ys,
			Z:    z,
		}},
		XAxis:    Axis{Title: "X", Range: &Range{Min: -2, Max: 2}},
		YAxis:    Axis{Title: "Y", Range: &Range{Min: -2, Max: 2}},
		Palette:  ContourPalette,
		ColorBar: "Height",
		Levels:   levels,
	}
}

func height(x, y float64) float64 {
	return (1 - x/2 + math.Pow(x, 5) + math.Pow(y, 3)) * math.Exp(-x*x-y*y)
}
