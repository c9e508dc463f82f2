package tui

import (
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Abort key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Abort}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func trainKeys() keyMap {
	return keyMap{
		Abort: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

func docKeys() keyMap {
	return keyMap{
		Abort: key.NewBinding(
			key.WithKeys("ctrl+q", "esc", "ctrl+c"),
			key.WithHelp("ctrl+q", "finish"),
		),
	}
}

// keyRunes maps a key press to the characters it types. Keys that type
// nothing return nil; enter, tab and backspace map to control characters so
// they count as wrong keystrokes.
func keyRunes(msg tea.KeyMsg) []rune {
	switch msg.Type {
	case tea.KeySpace:
		return []rune{' '}
	case tea.KeyRunes:
		if msg.Alt {
			return []rune{utf8.RuneError}
		}
		return msg.Runes
	case tea.KeyEnter:
		return []rune{'\n'}
	case tea.KeyTab:
		return []rune{'\t'}
	case tea.KeyBackspace:
		return []rune{'\b'}
	default:
		return nil
	}
}
