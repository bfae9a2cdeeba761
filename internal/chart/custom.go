package chart

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
)

// ErrShape reports custom data that does not match what a kind accepts.
var ErrShape = errors.New("unsupported data shape")

// Shape names a custom data layout.
type Shape int

const (
	ShapeNone Shape = iota
	// ShapeLabelValues is {"labels": [...], "values": [...]}.
	ShapeLabelValues
	// ShapeCohorts is {"labels": [...], "values2013": [...], "values2014": [...]}.
	ShapeCohorts
	// ShapeSchedule is {"tasks": [...], "durations": [...], "starts": [...]}.
	ShapeSchedule
	// ShapePoints is an (x,y) candidate produced by file ingest.
	ShapePoints
)

// LabelValues is one value per label.
type LabelValues struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// Cohorts pairs two yearly values per label.
type Cohorts struct {
	Labels     []string  `json:"labels"`
	Values2013 []float64 `json:"values2013"`
	Values2014 []float64 `json:"values2014"`
}

// Schedule lists tasks with a start offset and a duration.
type Schedule struct {
	Tasks     []string  `json:"tasks"`
	Durations []float64 `json:"durations"`
	Starts    []float64 `json:"starts"`
}

// Points is a list of (x,y) pairs with optional labels.
type Points struct {
	Labels []string  `json:"labels,omitempty"`
	X      []float64 `json:"x"`
	Y      []float64 `json:"y"`
}

// Accepts reports whether data has the concrete type of shape s.
func (s Shape) Accepts(data any) bool {
	switch data.(type) {
	case LabelValues:
		return s == ShapeLabelValues
	case Cohorts:
		return s == ShapeCohorts
	case Schedule:
		return s == ShapeSchedule
	case Points:
		return s == ShapePoints
	default:
		return false
	}
}

// Keys returns the JSON object keys a shape requires.
func (s Shape) Keys() []string {
	switch s {
	case ShapeLabelValues:
		return []string{"labels", "values"}
	case ShapeCohorts:
		return []string{"labels", "values2013", "values2014"}
	case ShapeSchedule:
		return []string{"tasks", "durations", "starts"}
	case ShapePoints:
		return []string{"x", "y"}
	default:
		return nil
	}
}

// Example returns a sample payload for k, or "" when k takes no custom data.
func Example(k Kind) string {
	var v any
	switch k.Shape() {
	case ShapeLabelValues:
		v = LabelValues{Labels: []string{"A", "B", "C"}, Values: []float64{3, 2, 1}}
	case ShapeCohorts:
		v = Cohorts{Labels: []string{"A", "B"}, Values2013: []float64{0.1, 0.2}, Values2014: []float64{0.15, 0.18}}
	case ShapeSchedule:
		v = Schedule{Tasks: []string{"Plan", "Build"}, Durations: []float64{2, 3}, Starts: []float64{0, 2}}
	case ShapePoints:
		v = Points{X: []float64{1, 2, 3}, Y: []float64{4, 5, 6}}
	default:
		return ""
	}
	b, _ := json.Marshal(v)
	return string(b)
}

// ParseCustom decodes text into the custom data shape accepted by k.
func ParseCustom(k Kind, text string) (any, error) {
	shape := k.Shape()
	if shape == ShapeNone {
		return nil, fmt.Errorf("%s takes no custom data: %w", k.ID(), ErrShape)
	}

	fields, err := decodeObject(text)
	if err != nil {
		return nil, err
	}
	for _, key := range shape.Keys() {
		if _, ok := fields[key]; !ok {
			return nil, fmt.Errorf("missing %q: %w", key, ErrShape)
		}
	}

	var data any
	switch shape {
	case ShapeLabelValues:
		var v LabelValues
		err = json.Unmarshal([]byte(text), &v)
		if err == nil {
			err = sameLength(len(v.Labels), len(v.Values))
		}
		data = v
	case ShapeCohorts:
		var v Cohorts
		err = json.Unmarshal([]byte(text), &v)
		if err == nil {
			err = sameLength(len(v.Labels), len(v.Values2013), len(v.Values2014))
		}
		data = v
	case ShapeSchedule:
		var v Schedule
		err = json.Unmarshal([]byte(text), &v)
		if err == nil {
			err = sameLength(len(v.Tasks), len(v.Durations), len(v.Starts))
		}
		data = v
	case ShapePoints:
		var v Points
		err = json.Unmarshal([]byte(text), &v)
		if err == nil {
			err = sameLength(len(v.X), len(v.Y))
		}
		if err == nil && len(v.Labels) > 0 {
			err = sameLength(len(v.Labels), len(v.X))
		}
		data = v
	}
	if err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("field %q: %w", typeErr.Field, ErrShape)
		}
		return nil, err
	}
	return data, nil
}

func decodeObject(text string) (map[string]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(text)))
	var fields map[string]json.RawMessage
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, errors.New("invalid JSON: trailing data")
	}
	if fields == nil {
		return nil, fmt.Errorf("expected an object: %w", ErrShape)
	}
	return fields, nil
}

func sameLength(lengths ...int) error {
	if lengths[0] == 0 {
		return fmt.Errorf("empty series: %w", ErrShape)
	}
	if slices.ContainsFunc(lengths, func(n int) bool { return n != lengths[0] }) {
		return fmt.Errorf("series lengths differ %v: %w", lengths, ErrShape)
	}
	return nil
}
