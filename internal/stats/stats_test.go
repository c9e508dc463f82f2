package stats

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"
)

func TestWPMFormula(t *testing.T) {
	if got := WPM(100, 60*time.Second); math.Abs(got-20) > 1e-9 {
		t.Fatalf("expected 20 WPM, got %f", got)
	}
	if got := WPM(50, 5*time.Second); math.Abs(got-120) > 1e-9 {
		t.Fatalf("expected 120 WPM, got %f", got)
	}
	if got := WPM(10, 0); got != 0 {
		t.Fatalf("expected 0 WPM without elapsed time, got %f", got)
	}
}

func TestAccuracyFormula(t *testing.T) {
	if got := Accuracy(80, 4); math.Abs(got-95) > 1e-9 {
		t.Fatalf("expected 95%%, got %f", got)
	}
	if got := Accuracy(0, 3); got != 0 {
		t.Fatalf("expected 0 without correct chars, got %f", got)
	}
	if got := Accuracy(2, 4); got != -100 {
		t.Fatalf("expected -100, got %f", got)
	}
}

func TestRenderResult(t *testing.T) {
	var buf bytes.Buffer
	res := Result{Correct: 60, Wrong: 3, Elapsed: 12 * time.Second}
	if err := RenderResult(&buf, res); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d: %q", len(lines), out)
	}
	if lines[0] != "WPM       60.0" {
		t.Fatalf("unexpected WPM line: %q", lines[0])
	}
	if lines[1] != "Accuracy 95.0%" {
		t.Fatalf("unexpected accuracy line: %q", lines[1])
	}
}
