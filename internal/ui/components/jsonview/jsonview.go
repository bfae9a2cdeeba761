// Package jsonview renders scrollable, syntax-highlighted JSON.
package jsonview

import (
	"bytes"
	"encoding/json"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/charmbracelet/x/ansi"

	"github.com/kpumuk/lazyplot/internal/mathutil"
)

// Styles holds styles for JSON tokens.
type Styles struct {
	Text        lipgloss.Style
	Key         lipgloss.Style
	String      lipgloss.Style
	Number      lipgloss.Style
	Bool        lipgloss.Style
	Null        lipgloss.Style
	Punctuation lipgloss.Style
	Muted       lipgloss.Style
}

// DefaultStyles returns default styles.
func DefaultStyles() Styles {
	return Styles{}
}

// Model is the JSON view component state.
type Model struct {
	styles  Styles
	width   int
	height  int
	yOffset int
	xOffset int

	lines    []string
	tokens   [][]chroma.Token
	maxWidth int
	err      error
}

// Option is used to set options in New.
type Option func(*Model)

// New creates a new JSON view model.
func New(opts ...Option) Model {
	m := Model{
		styles: DefaultStyles(),
	}

	for _, opt := range opts {
		opt(&m)
	}

	return m
}

// WithStyles sets the styles.
func WithStyles(s Styles) Option {
	return func(m *Model) {
		m.styles = s
	}
}

// WithSize sets the dimensions.
func WithSize(width, height int) Option {
	return func(m *Model) {
		m.width = width
		m.height = height
	}
}

// SetSize sets the dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.clamp()
}

// LineCount returns the number of lines.
func (m Model) LineCount() int {
	return len(m.lines)
}

// MaxWidth returns the maximum line width.
func (m Model) MaxWidth() int {
	return m.maxWidth
}

// Err returns the syntax error of the last SetText call, if any.
func (m Model) Err() error {
	return m.err
}

// Text returns the displayed lines joined with newlines.
func (m Model) Text() string {
	return strings.Join(m.lines, "\n")
}

// SetValue formats and tokenizes a JSON-serializable value.
func (m *Model) SetValue(value any) {
	if value == nil {
		m.setLines("")
		return
	}
	b, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		m.err = err
		m.setLines("")
		return
	}
	m.err = nil
	m.setLines(string(b))
}

// SetText shows raw JSON text, indented when it is valid. Invalid text is
// kept as typed and its syntax error is reported by Err.
func (m *Model) SetText(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		m.err = nil
		m.setLines("")
		return
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(text), "", "  "); err != nil {
		m.err = err
		m.setLines(text)
		return
	}
	m.err = nil
	m.setLines(buf.String())
}

func (m *Model) setLines(text string) {
	m.lines = nil
	m.tokens = nil
	m.maxWidth = 0
	if text != "" {
		m.lines = strings.Split(text, "\n")
		m.tokens = tokenizeLines(text)
		if len(m.tokens) != len(m.lines) {
			m.tokens = nil
		}
	}
	for _, line := range m.lines {
		m.maxWidth = max(m.maxWidth, ansi.StringWidth(line))
	}
	m.clamp()
}

// ScrollBy moves the view by dy lines and dx columns.
func (m *Model) ScrollBy(dy, dx int) {
	m.yOffset += dy
	m.xOffset += dx
	m.clamp()
}

// ScrollTop resets both offsets.
func (m *Model) ScrollTop() {
	m.yOffset = 0
	m.xOffset = 0
}

// Offset returns the vertical scroll offset.
func (m Model) Offset() int {
	return m.yOffset
}

func (m *Model) clamp() {
	m.yOffset = mathutil.Clamp(m.yOffset, 0, max(len(m.lines)-m.height, 0))
	m.xOffset = mathutil.Clamp(m.xOffset, 0, max(m.maxWidth-m.width, 0))
}

// View renders the visible window of lines.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	out := make([]string, 0, m.height)
	for i := range m.height {
		line := m.RenderLine(m.yOffset+i, m.xOffset, m.width)
		if line == "" {
			line = strings.Repeat(" ", m.width)
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// RenderLine renders a single line with horizontal scroll and syntax highlighting.
func (m Model) RenderLine(index, offset, width int) string {
	if width <= 0 || index < 0 || index >= len(m.lines) {
		return ""
	}
	offset = max(offset, 0)
	if m.tokens == nil {
		return m.styles.Text.Render(cutPadded(m.lines[index], offset, width))
	}

	var b strings.Builder
	col := 0
	end := offset + width
	for _, token := range m.tokens[index] {
		w := ansi.StringWidth(token.Value)
		if col+w > offset && col < end {
			start := mathutil.Clamp(offset-col, 0, w)
			stop := mathutil.Clamp(end-col, 0, w)
			if segment := ansi.Cut(token.Value, start, stop); segment != "" {
				b.WriteString(m.styleFor(token).Render(segment))
			}
		}
		col += w
		if col >= end {
			break
		}
	}
	rendered := b.String()
	if w := ansi.StringWidth(rendered); w < width {
		rendered += strings.Repeat(" ", width-w)
	}
	return rendered
}

func (m Model) styleFor(token chroma.Token) lipgloss.Style {
	switch {
	case token.Type == chroma.NameTag:
		return m.styles.Key
	case token.Type.InSubCategory(chroma.LiteralString):
		return m.styles.String
	case token.Type.InSubCategory(chroma.LiteralNumber):
		return m.styles.Number
	case token.Type.InCategory(chroma.Keyword):
		if token.Value == "null" {
			return m.styles.Null
		}
		return m.styles.Bool
	case token.Type == chroma.Error:
		return m.styles.Muted
	case token.Type == chroma.Punctuation:
		return m.styles.Punctuation
	default:
		return m.styles.Text
	}
}

func cutPadded(line string, offset, width int) string {
	cut := ansi.Cut(line, offset, offset+width)
	if w := ansi.StringWidth(cut); w < width {
		cut += strings.Repeat(" ", width-w)
	}
	return cut
}

// tokenizeLines splits the lexer output into one token slice per line.
func tokenizeLines(text string) [][]chroma.Token {
	if jsonLexer == nil {
		return nil
	}
	iterator, err := jsonLexer.Tokenise(nil, text)
	if err != nil {
		return nil
	}

	lines := [][]chroma.Token{nil}
	for token := iterator(); token != chroma.EOF; token = iterator() {
		for i, part := range strings.Split(token.Value, "\n") {
			if i > 0 {
				lines = append(lines, nil)
			}
			if part != "" {
				last := len(lines) - 1
				lines[last] = append(lines[last], chroma.Token{Type: token.Type, Value: part})
			}
		}
	}
	return lines
}

var jsonLexer = func() chroma.Lexer {
	lexer := lexers.Get("json")
	if lexer == nil {
		return nil
	}
	return chroma.Coalesce(lexer)
}()
