// Package stats contains scoring formulas and result reporting.
package stats

import (
	"fmt"
	"io"
	"time"
)

// charsPerWord is the conventional word unit used for WPM.
const charsPerWord = 5

// Result is the outcome of a typing round.
type Result struct {
	Correct int
	Wrong   int
	Elapsed time.Duration
}

// WPM returns words per minute: 60/charsPerWord × correct / seconds, which
// is 12 × correct / seconds.
func WPM(correct int, elapsed time.Duration) float64 {
	secs := elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return 60.0 / charsPerWord * float64(correct) / secs
}

// Accuracy returns 100 × (correct − wrong) / correct. It is negative when
// there were more wrong keystrokes than correct ones.
func Accuracy(correct, wrong int) float64 {
	if correct <= 0 {
		return 0
	}
	return float64(correct-wrong) * 100.0 / float64(correct)
}

// WPM returns the result's words per minute.
func (r Result) WPM() float64 {
	return WPM(r.Correct, r.Elapsed)
}

// Accuracy returns the result's accuracy percentage.
func (r Result) Accuracy() float64 {
	return Accuracy(r.Correct, r.Wrong)
}

// RenderResult prints a result table.
func RenderResult(w io.Writer, r Result) error {
	rows := []row{
		{label: "WPM", value: fmt.Sprintf("%.1f", r.WPM())},
		{label: "Accuracy", value: fmt.Sprintf("%.1f%%", r.Accuracy())},
		{label: "Correct", value: fmt.Sprintf("%d", r.Correct)},
		{label: "Wrong", value: fmt.Sprintf("%d", r.Wrong)},
		{label: "Time", value: fmt.Sprintf("%.1fs", r.Elapsed.Seconds())},
	}
	lines := formatRows(rows)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
