package stats

import "testing"

func TestFormatRowsAlignsColumns(t *testing.T) {
	lines := formatRows([]row{
		{label: "WPM", value: "72.4"},
		{label: "Accuracy", value: "8.0%"},
		{label: "Time", value: "112.5s"},
	})
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "WPM        72.4" {
		t.Fatalf("unexpected row line: %q", lines[0])
	}
	if lines[1] != "Accuracy   8.0%" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "Time     112.5s" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatRowsWideLabels(t *testing.T) {
	lines := formatRows([]row{{label: "日本", value: "1"}, {label: "abc", value: "22"}})
	if lines[0] != "日本  1" {
		t.Fatalf("unexpected wide row: %q", lines[0])
	}
	if lines[1] != "abc  22" {
		t.Fatalf("unexpected row: %q", lines[1])
	}
}

func TestFormatRowsEmpty(t *testing.T) {
	if lines := formatRows(nil); len(lines) != 0 {
		t.Fatalf("expected no lines, got %q", lines)
	}
}
