package chart_test

import (
	"testing"

	"github.com/kpumuk/lazyplot/internal/chart"
)

func TestParamSpec_Int(t *testing.T) {
	t.Parallel()

	spec := chart.ParamSpec{Key: "n", Type: chart.ParamInt, Default: "10"}
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{name: "missing", raw: "", want: 10},
		{name: "plain", raw: "7", want: 7},
		{name: "leading whitespace", raw: "  7", want: 7},
		{name: "trailing garbage", raw: "7rows", want: 7},
		{name: "zero falls back", raw: "0", want: 10},
		{name: "malformed", raw: "x7", want: 10},
		{name: "negative", raw: "-3", want: -3},
		{name: "fraction truncates", raw: "4.9", want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := spec.Int(chart.Values{"n": tt.raw}); got != tt.want {
				t.Errorf("Int(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParamSpec_Bounded(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		spec chart.ParamSpec
		raw  string
		want int
	}{
		"inside range": {spec: chart.ParamSpec{Key: "n", Default: "10", Min: 1, Max: 30}, raw: "12", want: 12},
		"above max":    {spec: chart.ParamSpec{Key: "n", Default: "10", Min: 1, Max: 30}, raw: "999999", want: 30},
		"below min":    {spec: chart.ParamSpec{Key: "n", Default: "10", Min: 1, Max: 30}, raw: "-4", want: 1},
		"default":      {spec: chart.ParamSpec{Key: "n", Default: "10", Min: 1, Max: 30}, raw: "", want: 10},
		"no range":     {spec: chart.ParamSpec{Key: "n", Default: "10"}, raw: "999999", want: 999999},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := tt.spec.Bounded(chart.Values{"n": tt.raw}); got != tt.want {
				t.Fatalf("Bounded(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParamSpec_Adjust(t *testing.T) {
	t.Parallel()

	intSpec := chart.ParamSpec{Key: "n", Type: chart.ParamInt, Default: "10", Min: 1, Max: 12, Step: 2}
	if got := intSpec.Adjust(chart.Values{}, 1); got != "12" {
		t.Fatalf("Adjust(+1) = %q, want 12", got)
	}
	if got := intSpec.Adjust(chart.Values{"n": "12"}, 1); got != "12" {
		t.Fatalf("Adjust(+1) at max = %q, want 12", got)
	}
	if got := intSpec.Adjust(chart.Values{"n": "2"}, -1); got != "1" {
		t.Fatalf("Adjust(-1) = %q, want 1", got)
	}

	boolSpec := chart.ParamSpec{Key: "b", Type: chart.ParamBool, Default: "true"}
	if got := boolSpec.Adjust(chart.Values{}, 1); got != "false" {
		t.Fatalf("toggle = %q, want false", got)
	}

	choice := chart.ParamSpec{Key: "c", Type: chart.ParamChoice, Default: "a", Choices: []string{"a", "b", "c"}}
	if got := choice.Adjust(chart.Values{}, -1); got != "c" {
		t.Fatalf("cycle back = %q, want c", got)
	}
	if got := choice.Adjust(chart.Values{"c": "c"}, 1); got != "a" {
		t.Fatalf("cycle forward = %q, want a", got)
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		want chart.Kind
		ok   bool
	}{
		"stem":        {want: chart.Stem, ok: true},
		"stemChart":   {want: chart.Stem, ok: true},
		"tree":        {want: chart.ScatterCluster, ok: true},
		"waffleChart": {want: chart.Waffle, ok: true},
		"all":         {ok: false},
		"pie":         {ok: false},
		"":            {ok: false},
	}
	for in, tt := range tests {
		got, ok := chart.ParseKind(in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseKind(%q) = %v, %v; want %v, %v", in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestKinds_Order(t *testing.T) {
	t.Parallel()

	want := []string{"contour", "stream", "stem", "dumbbell", "gantt", "pyramid", "funnel", "sankey", "tree", "waffle"}
	kinds := chart.Kinds()
	if len(kinds) != len(want) {
		t.Fatalf("len(Kinds()) = %d, want %d", len(kinds), len(want))
	}
	for i, k := range kinds {
		if k.ID() != want[i] {
			t.Errorf("Kinds()[%d] = %q, want %q", i, k.ID(), want[i])
		}
	}
	if chart.Stem.Backend() != chart.BackendCanvas {
		t.Errorf("stem backend = %v, want canvas", chart.Stem.Backend())
	}
}
