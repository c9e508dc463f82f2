package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/speed/internal/corpus"
	"github.com/verte-zerg/speed/internal/generator"
	"github.com/verte-zerg/speed/internal/session"
)

// flashSeparator stands in for an expected separator while flashing, since a
// coloured space would be invisible.
const flashSeparator = "•"

var (
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	remainingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	flashStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	caretStyle     = remainingStyle.Underline(true)
	typedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

var separator = string(corpus.Separator)

// RenderLine draws line into three zones: words before the cursor are
// correct, the cursor word is split at the cursor offset, and later words are
// remaining. The untyped part of the cursor word uses the flash style while
// flashing; otherwise its first character is the caret. Bubble Tea hides the
// terminal cursor, so the caret is drawn as an underline at cur.Column
// (padding plus consumed columns) instead of moving the cursor there.
func RenderLine(c *corpus.Corpus, line generator.Line, cur session.Cursor, flashing bool) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", line.Padding))
	last := line.Len() - 1
	for i, idx := range line.Indices {
		word := c.Text(idx)
		switch {
		case i < cur.Word:
			b.WriteString(correctStyle.Render(word))
			if i < last {
				b.WriteString(correctStyle.Render(separator))
			}
		case i == cur.Word:
			typed, untyped := splitWord(word, cur.Offset)
			b.WriteString(renderSplitWord(typed, untyped, flashing))
			if i < last {
				b.WriteString(renderSeparator(untyped == "", flashing))
			}
		default:
			b.WriteString(remainingStyle.Render(word))
			if i < last {
				b.WriteString(remainingStyle.Render(separator))
			}
		}
	}
	return b.String()
}

func splitWord(word string, offset int) (string, string) {
	runes := []rune(word)
	if offset > len(runes) {
		offset = len(runes)
	}
	if offset < 0 {
		offset = 0
	}
	return string(runes[:offset]), string(runes[offset:])
}

func renderSplitWord(typed, untyped string, flashing bool) string {
	var b strings.Builder
	if typed != "" {
		b.WriteString(correctStyle.Render(typed))
	}
	if untyped == "" {
		return b.String()
	}
	if flashing {
		b.WriteString(flashStyle.Render(untyped))
		return b.String()
	}
	runes := []rune(untyped)
	b.WriteString(caretStyle.Render(string(runes[0])))
	if len(runes) > 1 {
		b.WriteString(remainingStyle.Render(string(runes[1:])))
	}
	return b.String()
}

func renderSeparator(expected, flashing bool) string {
	switch {
	case expected && flashing:
		return flashStyle.Render(flashSeparator)
	case expected:
		return caretStyle.Render(separator)
	default:
		return remainingStyle.Render(separator)
	}
}
