// Package generator composes lines of random words fitted to a display budget.
package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/verte-zerg/speed/internal/corpus"
)

// DefaultCoverage is the share of the terminal width a line may occupy.
const DefaultCoverage = 0.8

// maxDraws bounds the rejection loop for a single slot before falling back to
// a direct pick among the fitting words.
const maxDraws = 64

// Line is one round's fitted sequence of corpus word indices.
type Line struct {
	Indices   []int
	Budget    int
	Padding   int
	Remaining int
}

// Len returns the number of words in the line.
func (l Line) Len() int {
	return len(l.Indices)
}

// Empty reports whether no word could be placed.
func (l Line) Empty() bool {
	return len(l.Indices) == 0
}

// Width returns the columns taken by the words and the separators between them.
func (l Line) Width(c *corpus.Corpus) int {
	if len(l.Indices) == 0 {
		return 0
	}
	total := len(l.Indices) - 1
	for _, idx := range l.Indices {
		total += c.Width(idx)
	}
	return total
}

// Composer draws random lines from a corpus.
type Composer struct {
	rnd      *rand.Rand
	coverage float64
}

// New returns a Composer seeded with the current time.
func New(coverage float64) *Composer {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()), coverage)
}

// NewWithSource returns a Composer drawing from src.
func NewWithSource(src rand.Source, coverage float64) *Composer {
	return &Composer{rnd: rand.New(src), coverage: coverage}
}

// BudgetFor returns the display budget and the left padding that centres it
// for a terminal of the given width.
func (g *Composer) BudgetFor(width int) (budget, padding int) {
	if width <= 0 {
		return 0, 0
	}
	budget = int(float64(width) * g.coverage)
	if budget > width {
		budget = width
	}
	return budget, (width - budget) / 2
}

// ComposeForWidth composes a centred line for a terminal of the given width.
func (g *Composer) ComposeForWidth(c *corpus.Corpus, width int) Line {
	budget, padding := g.BudgetFor(width)
	line := g.Compose(c, budget)
	line.Padding = padding
	return line
}

// Compose selects words until the remaining budget is smaller than the
// shortest word. The result is empty when budget < c.MinWidth().
func (g *Composer) Compose(c *corpus.Corpus, budget int) Line {
	line := Line{Budget: budget}
	remaining := budget
	if budget > 0 {
		line.Indices = make([]int, 0, budget/(c.MinWidth()+1)+1)
	}
	for remaining >= c.MinWidth() {
		idx := g.pick(c, remaining)
		line.Indices = append(line.Indices, idx)
		remaining -= c.Width(idx)
		if remaining > 0 {
			remaining--
		}
	}
	line.Remaining = remaining
	return line
}

// pick draws a uniform index among the words no wider than remaining.
// Callers guarantee remaining >= c.MinWidth(), so the shortest word always fits.
func (g *Composer) pick(c *corpus.Corpus, remaining int) int {
	for i := 0; i < maxDraws; i++ {
		idx := g.rnd.Intn(c.Len())
		if c.Width(idx) <= remaining {
			return idx
		}
	}
	fitting := make([]int, 0, c.Len())
	for idx := 0; idx < c.Len(); idx++ {
		if c.Width(idx) <= remaining {
			fitting = append(fitting, idx)
		}
	}
	if len(fitting) == 0 {
		panic(fmt.Sprintf("generator: no word fits %d columns (min width %d)", remaining, c.MinWidth()))
	}
	return fitting[g.rnd.Intn(len(fitting))]
}
