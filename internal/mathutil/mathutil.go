// Package mathutil provides common mathematical utility functions.
package mathutil

import "cmp"

// Clamp restricts a value to be within a specified range.
// Returns low if val < low, high if val > high, otherwise returns val.
func Clamp[T cmp.Ordered](val, low, high T) T {
	if val < low {
		return low
	}
	if val > high {
		return high
	}
	return val
}

// Scale multiplies value by factor percent. A factor of 100 is the identity.
func Scale(value, factor float64) float64 {
	return value * (factor / 100)
}

// ScaleAll scales every element of values and returns a new slice.
func ScaleAll(values []float64, factor float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = Scale(v, factor)
	}
	return out
}

// MaxFloat returns the largest element of values, or 0 for an empty slice.
func MaxFloat(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		m = max(m, v)
	}
	return m
}
