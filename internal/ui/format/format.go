// Package format provides UI formatting helpers.
package format

import (
	"fmt"
	"math"
	"strconv"
)

// ShortNumber formats a number into a compact 4-char max string (e.g., 999, 9.9K, 120K).
func ShortNumber(n int64) string {
	switch {
	case n < 1_000:
		return fmt.Sprintf("%d", n)
	case n < 10_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	case n < 1_000_000:
		return fmt.Sprintf("%dK", n/1_000)
	case n < 10_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n < 1_000_000_000:
		return fmt.Sprintf("%dM", n/1_000_000)
	case n < 10_000_000_000:
		return fmt.Sprintf("%.1fB", float64(n)/1_000_000_000)
	default:
		return fmt.Sprintf("%dB", n/1_000_000_000)
	}
}

// Axis formats a tick value: compact suffixes from 1000 up, at most two
// decimals below.
func Axis(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "-"
	}
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	if v >= 1000 {
		return sign + ShortNumber(int64(math.Round(v)))
	}
	v = math.Round(v*100) / 100
	if v == 0 {
		return "0"
	}
	return sign + strconv.FormatFloat(v, 'f', -1, 64)
}

// Factor formats a scale factor percentage.
func Factor(f float64) string {
	return strconv.FormatFloat(math.Round(f*10)/10, 'f', -1, 64) + "%"
}

// Ratio formats a part of a whole, such as visible charts out of all charts.
func Ratio(part, total int) string {
	return strconv.Itoa(part) + "/" + strconv.Itoa(total)
}
