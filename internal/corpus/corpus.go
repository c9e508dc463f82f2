// Package corpus builds the immutable word collection lines are composed from.
package corpus

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// Separator is the character placed between words.
const Separator = ' '

// ErrEmpty is returned when no usable word is available.
var ErrEmpty = errors.New("corpus is empty")

// Word is a view into the corpus storage.
type Word struct {
	Offset int
	Size   int
	Width  int
}

// Corpus is an ordered, read-only collection of words.
type Corpus struct {
	text     string
	words    []Word
	minWidth int
}

// New builds a corpus from already split words. Words that are empty, have no
// display width or contain control characters are skipped.
func New(words []string) (*Corpus, error) {
	var b strings.Builder
	c := &Corpus{}
	for _, w := range words {
		w = strings.TrimSpace(w)
		width := runewidth.StringWidth(w)
		if w == "" || width == 0 || hasControl(w) {
			continue
		}
		c.words = append(c.words, Word{Offset: b.Len(), Size: len(w), Width: width})
		b.WriteString(w)
		if c.minWidth == 0 || width < c.minWidth {
			c.minWidth = width
		}
	}
	if len(c.words) == 0 {
		return nil, ErrEmpty
	}
	c.text = b.String()
	return c, nil
}

// hasControl reports whether w holds a character no key press can type,
// including the abort key.
func hasControl(w string) bool {
	return strings.IndexFunc(w, unicode.IsControl) >= 0
}

// Parse normalizes raw text and splits it on delim.
func Parse(data []byte, delim rune) (*Corpus, error) {
	text := Normalize(data)
	parts := strings.Split(text, string(delim))
	words := make([]string, 0, len(parts))
	for _, part := range parts {
		word := strings.Trim(part, string(Separator))
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	return New(words)
}

// Load reads a word list file and parses it with Parse.
func Load(path string, delim rune) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data, delim)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Normalize collapses every whitespace run into a single Separator and drops
// the leading and trailing one.
func Normalize(data []byte) string {
	var b strings.Builder
	b.Grow(len(data))
	pendingSep := false
	for _, r := range string(data) {
		if unicode.IsSpace(r) {
			pendingSep = b.Len() > 0
			continue
		}
		if pendingSep {
			b.WriteRune(Separator)
			pendingSep = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Len returns the number of words.
func (c *Corpus) Len() int {
	return len(c.words)
}

// MinWidth returns the display width of the shortest word.
func (c *Corpus) MinWidth() int {
	return c.minWidth
}

// Word returns the view at index i.
func (c *Corpus) Word(i int) Word {
	return c.words[i]
}

// Text returns the characters of the word at index i.
func (c *Corpus) Text(i int) string {
	w := c.words[i]
	return c.text[w.Offset : w.Offset+w.Size]
}

// Width returns the display width of the word at index i.
func (c *Corpus) Width(i int) int {
	return c.words[i].Width
}

// Filter returns a new corpus keeping the words accepted by keep.
func (c *Corpus) Filter(keep FilterFunc) (*Corpus, error) {
	words := make([]string, 0, len(c.words))
	for i := range c.words {
		if text := c.Text(i); keep(text) {
			words = append(words, text)
		}
	}
	return New(words)
}
