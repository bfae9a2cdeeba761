package chart

import "github.com/kpumuk/lazyplot/internal/mathutil"

func buildSankey(in Input) Scene {
	links := make([]Link, len(SankeyLinks))
	for i, l := range SankeyLinks {
		l.Value = mathutil.Scale(l.Value, in.Factor)
		links[i] = l
	}
	return Scene{
		Series: []Series{{
			Type:  SeriesSankey,
			Nodes: append([]string(nil), SankeyNodes...),
			Links: links,
		}},
	}
}

// SankeyDepths returns the column of each node: sources sit at depth 0 and
// every target sits one column right of its deepest source.
func SankeyDepths(nodes int, links []Link) []int {
	depth := make([]int, nodes)
	for range nodes {
		changed := false
		for _, l := range links {
			if l.Source < 0 || l.Source >= nodes || l.Target < 0 || l.Target >= nodes {
				continue
			}
			if d := depth[l.Source] + 1; d > depth[l.Target] && d < nodes {
				depth[l.Target] = d
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return depth
}
