package tui

import (
	"fmt"
	"strings"

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

// DocModel types a whole document in order. Mismatches are counted but do
// not flash.
type DocModel struct {
	config  model.DocConfig
	session *session.Session
	target  []rune
	keys    keyMap
	help    help.Model

	width  int
	height int
}

// NewDocModel constructs a document model over every word of c in order.
func NewDocModel(cfg model.DocConfig, c *corpus.Corpus) *DocModel {
	line := generator.Line{Indices: make([]int, c.Len())}
	words := make([]string, c.Len())
	for i := range line.Indices {
		line.Indices[i] = i
		words[i] = c.Text(i)
	}
	return &DocModel{
		config:  cfg,
		session: session.New(c, line),
		target:  []rune(strings.Join(words, string(corpus.Separator))),
		keys:    docKeys(),
		help:    help.New(),
	}
}

// Init implements tea.Model.
func (m *DocModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *DocModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Abort) {
			if !m.session.Done() && !m.session.Aborted() {
				_, _ = m.session.Feed(session.AbortKey)
			}
			return m, tea.Quit
		}
		for _, r := range keyRunes(msg) {
			if _, err := m.session.Feed(r); err != nil {
				return m, tea.Quit
			}
			if m.session.Done() {
				return m, tea.Quit
			}
		}
		return m, nil
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *DocModel) View() string {
	runes := buildDocRunes(m.target, m.head())
	text := wrapStyledRunes(runes, m.width)
	body := strings.Repeat("\n", m.config.Row) + text
	if m.width == 0 || m.height == 0 {
		return body
	}
	used := m.config.Row + lipgloss.Height(text)
	if gap := m.height - used; gap >= 1 {
		body += strings.Repeat("\n", gap) + lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.renderFooter())
	}
	return body
}

// head is the number of document characters typed so far.
func (m *DocModel) head() int {
	return m.session.Result().Correct
}

func (m *DocModel) renderFooter() string {
	progress := 0
	if len(m.target) > 0 {
		progress = m.head() * 100 / len(m.target)
	}
	return footerStyle.Render(fmt.Sprintf("Progress %d%%", progress)) + "  " + m.help.View(m.keys)
}

// Done reports whether the whole document was typed.
func (m *DocModel) Done() bool {
	return m.session.Done()
}

// Result returns the document score inputs. Quitting early still scores the
// characters typed so far.
func (m *DocModel) Result() stats.Result {
	return m.session.Result()
}
