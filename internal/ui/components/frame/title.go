package frame

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Title is a frame title with an optional bracketed tag, such as the kind
// id of a chart panel.
type Title struct {
	text string
	tag  string
}

// Render renders the title within maxWidth, dropping the tag before
// truncating the text.
func (t Title) Render(style StyleState, maxWidth, padding int) string {
	width := maxWidth - 2*padding
	if width <= 0 || t.text == "" {
		return ""
	}

	textWidth := lipgloss.Width(t.text)
	tag := strings.TrimSpace(t.tag)
	rendered := ""
	switch {
	case textWidth >= width:
		rendered = style.Title.Render(truncateWithEllipsis(t.text, width))
	case tag == "" || width-textWidth-3 <= 0:
		rendered = style.Title.Render(t.text)
	default:
		tag = truncateWithEllipsis(tag, width-textWidth-3)
		rendered = style.Title.Render(t.text) + " " +
			style.Muted.Render("["+tag+"]")
	}

	if padding <= 0 {
		return rendered
	}
	pad := style.Title.Render(strings.Repeat(" ", padding))
	return pad + rendered + pad
}

func truncateWithEllipsis(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if lipgloss.Width(text) <= maxWidth {
		return text
	}
	const ellipsis = "…"
	if maxWidth == 1 {
		return ellipsis
	}
	var b strings.Builder
	width := 0
	for _, r := range text {
		rw := lipgloss.Width(string(r))
		if width+rw > maxWidth-1 {
			break
		}
		b.WriteRune(r)
		width += rw
	}
	return b.String() + ellipsis
}
