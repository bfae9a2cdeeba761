package charts

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// MaxLabelWidth returns the maximum display width of labels in a map.
func MaxLabelWidth(labels map[int]string) int {
	maxWidth := 0
	for _, label := range labels {
		maxWidth = max(maxWidth, lipgloss.Width(label))
	}
	return maxWidth
}

// ApplyYAxisLabels prepends Y-axis labels to chart lines.
// Each line gets a label if present in the labels map, or spacing otherwise.
// Labels wider than width are truncated.
func ApplyYAxisLabels(lines []string, labels map[int]string, width int, style lipgloss.Style) []string {
	if width <= 0 {
		return lines
	}
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		raw := ansi.Truncate(labels[i], width, "…")
		padWidth := max(width-lipgloss.Width(raw), 0)
		prefix := strings.Repeat(" ", padWidth)
		if raw != "" {
			raw = style.Render(raw)
		}
		out = append(out, prefix+raw+" "+line)
	}
	return out
}

// PlaceLabels writes labels centered at the given columns of a blank line,
// dropping any label that would overlap the previous one.
func PlaceLabels(width int, positions []int, labels []string) string {
	if width <= 0 {
		return ""
	}
	line := []rune(strings.Repeat(" ", width))
	lastEnd := -1
	for i, label := range labels {
		if label == "" || i >= len(positions) {
			continue
		}
		labelRunes := []rune(label)
		start := max(positions[i]-len(labelRunes)/2, 0)
		end := min(start+len(labelRunes), width)
		if start <= lastEnd+1 {
			continue
		}
		length := end - start
		if length <= 0 {
			continue
		}
		labelRunes = labelRunes[:length]
		copy(line[start:], labelRunes)
		lastEnd = start + len(labelRunes) - 1
	}
	return string(line)
}

// RenderCentered centers content within a given width and height.
// Handles multi-line content by centering vertically and horizontally.
func RenderCentered(width, height int, value string) string {
	if height < 1 {
		return ""
	}
	lines := make([]string, height)
	for i := range lines {
		lines[i] = strings.Repeat(" ", max(width, 0))
	}
	if width <= 0 {
		return strings.Join(lines, "\n")
	}

	contentLines := strings.Split(value, "\n")
	startLine := max((height-len(contentLines))/2, 0)

	for i, contentLine := range contentLines {
		lineIdx := startLine + i
		if lineIdx >= height {
			break
		}
		trimmed := ansi.Truncate(contentLine, width, "")
		pad := max((width-lipgloss.Width(trimmed))/2, 0)
		lines[lineIdx] = strings.Repeat(" ", pad) + trimmed + strings.Repeat(" ", max(width-pad-lipgloss.Width(trimmed), 0))
	}

	return strings.Join(lines, "\n")
}
