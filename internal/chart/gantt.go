package chart

import "github.com/kpumuk/lazyplot/internal/mathutil"

func buildGantt(in Input) Scene {
	tasks, durations, starts := GanttTasks, GanttDurations, GanttStarts
	if d, ok := in.Data.(Schedule); ok {
		tasks, durations, starts = d.Tasks, d.Durations, d.Starts
	}
	sDur := mathutil.ScaleAll(durations, in.Factor)
	sStart := mathutil.ScaleAll(starts, in.Factor)
	ends := make([]float64, len(sDur))
	for i := range ends {
		ends[i] = sStart[i] + sDur[i]
	}

	return Scene{
		Series: []Series{{
			Name:        "Tasks",
			Type:        SeriesBar,
			Orientation: Horizontal,
			Categories:  append([]string(nil), tasks...),
			X:           sDur,
			Base:        sStart,
			Custom:      ends,
			Color:       "#CD5C5C",
		}},
		XAxis: Axis{Title: "Progress (days)", Range: &Range{Min: 0, Max: max(12, mathutil.MaxFloat(ends)*1.1)}},
		YAxis: Axis{TickVals: indexes(len(tasks)), TickText: append([]string(nil), tasks...)},
	}
}
