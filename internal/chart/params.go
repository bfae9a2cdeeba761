package chart

import (
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// ParamType describes how a parameter value is edited and parsed.
type ParamType int

const (
	ParamInt ParamType = iota
	ParamBool
	ParamChoice
)

// ParamSpec describes one per-chart parameter control.
type ParamSpec struct {
	Key     string
	Label   string
	Type    ParamType
	Default string
	// Min, Max and Step bound keyboard adjustment of integer parameters.
	Min     int
	Max     int
	Step    int
	Choices []string
}

// Values holds raw parameter strings keyed by ParamSpec.Key.
type Values map[string]string

// Clone returns a copy of v.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Int parses the parameter from values. Missing, malformed or zero input
// falls back to the default.
func (s ParamSpec) Int(values Values) int {
	if n, ok := leadingInt(values[s.Key]); ok && n != 0 {
		return n
	}
	n, _ := leadingInt(s.Default)
	return n
}

// Bounded parses an integer parameter like Int and clamps it to [Min, Max]
// when the spec has a range.
func (s ParamSpec) Bounded(values Values) int {
	n := s.Int(values)
	if s.Max > s.Min {
		n = min(max(n, s.Min), s.Max)
	}
	return n
}

// Bool parses a boolean parameter, falling back to the default.
func (s ParamSpec) Bool(values Values) bool {
	if b, err := strconv.ParseBool(strings.TrimSpace(values[s.Key])); err == nil {
		return b
	}
	b, _ := strconv.ParseBool(s.Default)
	return b
}

// Choice returns the selected choice, falling back to the default.
func (s ParamSpec) Choice(values Values) string {
	v := strings.TrimSpace(values[s.Key])
	if slices.Contains(s.Choices, v) {
		return v
	}
	return s.Default
}

// Display returns the effective value formatted for display.
func (s ParamSpec) Display(values Values) string {
	switch s.Type {
	case ParamBool:
		if s.Bool(values) {
			return "on"
		}
		return "off"
	case ParamChoice:
		return s.Choice(values)
	default:
		return strconv.Itoa(s.Int(values))
	}
}

// Adjust returns the raw value after moving the parameter by delta steps.
// Integers are clamped to [Min, Max]; booleans toggle; choices cycle.
func (s ParamSpec) Adjust(values Values, delta int) string {
	switch s.Type {
	case ParamBool:
		return strconv.FormatBool(!s.Bool(values))
	case ParamChoice:
		if len(s.Choices) == 0 {
			return s.Default
		}
		i := slices.Index(s.Choices, s.Choice(values))
		i = ((i+delta)%len(s.Choices) + len(s.Choices)) % len(s.Choices)
		return s.Choices[i]
	default:
		step := max(s.Step, 1)
		n := s.Int(values) + delta*step
		if s.Max > s.Min {
			n = min(max(n, s.Min), s.Max)
		}
		return strconv.Itoa(n)
	}
}

// param looks up a spec by key on a kind.
func param(k Kind, key string) ParamSpec {
	for _, p := range k.Params() {
		if p.Key == key {
			return p
		}
	}
	return ParamSpec{Key: key}
}

// leadingInt parses an optional sign followed by decimal digits at the start
// of s, ignoring leading whitespace and any trailing characters.
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
