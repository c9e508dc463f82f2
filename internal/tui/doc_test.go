package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/speed/internal/corpus"
	"github.com/verte-zerg/speed/internal/model"
)

func newTestDoc(t *testing.T, text string) *DocModel {
	t.Helper()
	c, err := corpus.Parse([]byte(text), corpus.Separator)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return NewDocModel(model.DocConfig{}, c)
}

func TestDocModelCompletes(t *testing.T) {
	m := newTestDoc(t, "hello\n\n  world\n")
	if string(m.target) != "hello world" {
		t.Fatalf("unexpected target %q", string(m.target))
	}
	var cmd tea.Cmd
	for _, r := range "hellpo worl" {
		_, cmd = m.Update(keyFor(r))
	}
	if m.Done() {
		t.Fatalf("document should not be complete yet")
	}
	_, cmd = m.Update(keyFor('d'))
	if !m.Done() || !isQuit(cmd) {
		t.Fatalf("expected completion and quit")
	}
	res := m.Result()
	if res.Correct != 11 || res.Wrong != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestDocModelQuitKeepsProgress(t *testing.T) {
	m := newTestDoc(t, "one two")
	for _, r := range "one" {
		m.Update(keyFor(r))
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlQ})
	if !isQuit(cmd) {
		t.Fatalf("expected quit on ctrl+q")
	}
	if m.Done() {
		t.Fatalf("expected incomplete document")
	}
	if got := m.Result().Correct; got != 3 {
		t.Fatalf("expected 3 correct characters, got %d", got)
	}
}

func TestDocModelViewWraps(t *testing.T) {
	m := newTestDoc(t, "foo bar lmao")
	m.Update(tea.WindowSizeMsg{Width: 8, Height: 10})
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 lines, got %d", len(lines))
	}
	if lipgloss.Width(lines[0]) != 7 || lipgloss.Width(lines[1]) != 4 {
		t.Fatalf("unexpected wrapped lines: %q", lines[:2])
	}
	if !strings.Contains(lines[9], "Progress 0%") {
		t.Fatalf("expected footer on the last line, got %q", lines[9])
	}
}
