package stats

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// row is a labelled value in the result table.
type row struct {
	label string
	value string
}

// formatRows left-aligns labels and right-aligns values into two columns.
func formatRows(rows []row) []string {
	labelWidth, valueWidth := 0, 0
	for _, r := range rows {
		labelWidth = max(labelWidth, runewidth.StringWidth(r.label))
		valueWidth = max(valueWidth, runewidth.StringWidth(r.value))
	}
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		label := runewidth.FillRight(r.label, labelWidth)
		value := strings.Repeat(" ", valueWidth-runewidth.StringWidth(r.value)) + r.value
		lines = append(lines, label+" "+value)
	}
	return lines
}
