package chart

import "fmt"

// Input is the snapshot a builder reads. Builders never touch dashboard
// state directly.
type Input struct {
	// Factor is the global scale factor in percent.
	Factor float64
	Theme  string
	Params Values
	// Data replaces the literal dataset when non-nil.
	Data any
}

// Build produces the scene of kind k for the given snapshot.
func Build(k Kind, in Input) (Scene, error) {
	if !k.Valid() {
		return Scene{}, fmt.Errorf("unknown chart kind %d", int(k))
	}
	def := definitions[k]
	if in.Data != nil && !def.shape.Accepts(in.Data) {
		return Scene{}, fmt.Errorf("%s: %T: %w", def.id, in.Data, ErrShape)
	}
	if in.Params == nil {
		in.Params = Values{}
	}

	scene := def.build(in)
	scene.Kind = k
	scene.Slot = k.Slot()
	if scene.Title == "" {
		scene.Title = def.title
	}
	return scene, nil
}

// MustBuild is Build for callers that pass only literal data.
func MustBuild(k Kind, in Input) Scene {
	s, err := Build(k, in)
	if err != nil {
		panic(err)
	}
	return s
}

func evenly(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	for i := range n {
		out[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	return out
}

func indexes(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}
