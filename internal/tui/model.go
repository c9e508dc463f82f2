// Package tui provides the Bubble Tea typing interfaces.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/speed/internal/corpus"
	"github.com/verte-zerg/speed/internal/generator"
	"github.com/verte-zerg/speed/internal/model"
	"github.com/verte-zerg/speed/internal/session"
	"github.com/verte-zerg/speed/internal/stats"
)

// flashDoneMsg ends the flash started with the same sequence number.
type flashDoneMsg struct {
	seq int
}

// Model implements the Bubble Tea word-line trainer.
type Model struct {
	config  model.Config
	corpus  *corpus.Corpus
	session *session.Session
	keys    keyMap
	help    help.Model

	flashing bool
	flashSeq int
	pending  []rune

	width  int
	height int
}

// NewModel constructs a trainer for one composed line.
func NewModel(cfg model.Config, c *corpus.Corpus, line generator.Line) *Model {
	return &Model{
		config:  cfg,
		corpus:  c,
		session: session.New(c, line),
		keys:    trainKeys(),
		help:    help.New(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case flashDoneMsg:
		if msg.seq != m.flashSeq || !m.flashing {
			return m, nil
		}
		m.flashing = false
		return m, m.drain()
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	line := RenderLine(m.corpus, m.session.Line(), m.session.Cursor(), m.flashing)
	body := strings.Repeat("\n", m.config.Row) + line
	gap := m.height - m.config.Row - 1
	if m.width == 0 || gap < 1 {
		return body
	}
	footer := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.renderFooter())
	return body + strings.Repeat("\n", gap) + footer
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Abort) {
		if !m.session.Done() && !m.session.Aborted() {
			_, _ = m.session.Feed(session.AbortKey)
		}
		m.flashing = false
		m.pending = nil
		return m, tea.Quit
	}
	if m.session.Done() {
		return m, nil
	}
	m.pending = append(m.pending, keyRunes(msg)...)
	// Keys typed during a flash wait until it ends.
	if m.flashing {
		return m, nil
	}
	return m, m.drain()
}

// drain feeds queued input in order and stops at the first mismatch, which
// starts a new flash with the rest still queued.
func (m *Model) drain() tea.Cmd {
	for len(m.pending) > 0 {
		r := m.pending[0]
		m.pending = m.pending[1:]
		outcome, err := m.session.Feed(r)
		if err != nil {
			m.pending = nil
			return tea.Quit
		}
		switch outcome {
		case session.Advanced:
			if m.session.Done() {
				m.pending = nil
				return tea.Quit
			}
		case session.Mismatched:
			return m.startFlash()
		}
	}
	return nil
}

func (m *Model) startFlash() tea.Cmd {
	m.flashing = true
	m.flashSeq++
	seq := m.flashSeq
	return tea.Tick(m.config.FlashDuration, func(time.Time) tea.Msg {
		return flashDoneMsg{seq: seq}
	})
}

func (m *Model) renderFooter() string {
	line := m.session.Line()
	word := m.session.Cursor().Word
	if word > line.Len() {
		word = line.Len()
	}
	progress := footerStyle.Render(fmt.Sprintf("%d/%d words", word, line.Len()))
	return progress + "  " + m.help.View(m.keys)
}

// Flashing reports whether the error flash is showing.
func (m *Model) Flashing() bool {
	return m.flashing
}

// Done reports whether the line was typed completely.
func (m *Model) Done() bool {
	return m.session.Done()
}

// Aborted reports whether the player quit early.
func (m *Model) Aborted() bool {
	return m.session.Aborted()
}

// Result returns the round's score inputs.
func (m *Model) Result() stats.Result {
	return m.session.Result()
}
