// Package session implements the per-keystroke typing state machine.
package session

import (
	"errors"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/speed/internal/corpus"
	"github.com/verte-zerg/speed/internal/generator"
	"github.com/verte-zerg/speed/internal/stats"
)

// AbortKey is the input that cancels the round (Esc).
const AbortKey rune = 0x1b

// ErrClosed is returned by Feed once the round is complete or aborted.
var ErrClosed = errors.New("session is closed")

// Outcome is the result of feeding one input character.
type Outcome int

const (
	// Advanced means the input matched and the cursor moved forward.
	Advanced Outcome = iota
	// Mismatched means the input did not match; the cursor did not move.
	Mismatched
	// Aborted means the abort key was received.
	Aborted
)

func (o Outcome) String() string {
	switch o {
	case Advanced:
		return "advanced"
	case Mismatched:
		return "mismatched"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Cursor points at the next expected character of a line.
type Cursor struct {
	// Word is the index into the line, equal to the line length once complete.
	Word int
	// Offset is the rune offset within the word. Offset == len(word) means
	// the separator after the word is expected.
	Offset int
	// Column is the absolute display column of the expected character.
	Column int
}

// Session is the mutable state of one round.
type Session struct {
	line  generator.Line
	words [][]rune

	cursor  Cursor
	done    bool
	aborted bool

	correct   int
	wrong     int
	startedAt time.Time
	endedAt   time.Time
	now       func() time.Time
}

// New starts a round over line. An empty line yields a session that is
// already done.
func New(c *corpus.Corpus, line generator.Line) *Session {
	words := make([][]rune, len(line.Indices))
	for i, idx := range line.Indices {
		words[i] = []rune(c.Text(idx))
	}
	return &Session{
		line:   line,
		words:  words,
		cursor: Cursor{Column: line.Padding},
		done:   len(words) == 0,
		now:    time.Now,
	}
}

// SetClock replaces the time source used for the result timing.
func (s *Session) SetClock(now func() time.Time) {
	s.now = now
}

// Line returns the line being typed.
func (s *Session) Line() generator.Line {
	return s.line
}

// Cursor returns the current cursor.
func (s *Session) Cursor() Cursor {
	return s.cursor
}

// Done reports whether every character of the line was typed.
func (s *Session) Done() bool {
	return s.done
}

// Aborted reports whether the round was cancelled.
func (s *Session) Aborted() bool {
	return s.aborted
}

// Expected returns the character the player must type next.
func (s *Session) Expected() (rune, bool) {
	if s.done || s.aborted {
		return 0, false
	}
	word := s.words[s.cursor.Word]
	if s.cursor.Offset < len(word) {
		return word[s.cursor.Offset], true
	}
	return corpus.Separator, true
}

// Feed consumes one input character.
func (s *Session) Feed(r rune) (Outcome, error) {
	if s.done || s.aborted {
		return 0, ErrClosed
	}
	if r == AbortKey {
		s.aborted = true
		if !s.startedAt.IsZero() {
			s.endedAt = s.now()
		}
		return Aborted, nil
	}
	expected, _ := s.Expected()
	if r != expected {
		s.wrong++
		return Mismatched, nil
	}
	if s.correct == 0 {
		s.startedAt = s.now()
	}
	s.correct++
	s.advance(r)
	return Advanced, nil
}

func (s *Session) advance(typed rune) {
	s.cursor.Column += runewidth.RuneWidth(typed)
	word := s.words[s.cursor.Word]
	if s.cursor.Offset < len(word) {
		s.cursor.Offset++
		if s.cursor.Offset < len(word) || s.cursor.Word < len(s.words)-1 {
			return
		}
		// The last word carries no trailing separator.
		s.cursor.Word++
		s.cursor.Offset = 0
		s.done = true
		s.endedAt = s.now()
		return
	}
	s.cursor.Word++
	s.cursor.Offset = 0
}

// Result reports the correct and wrong keystrokes and the time from the first
// correct keystroke to completion or abort, or to now while the round is running.
func (s *Session) Result() stats.Result {
	res := stats.Result{Correct: s.correct, Wrong: s.wrong}
	switch {
	case s.startedAt.IsZero():
	case s.endedAt.IsZero():
		res.Elapsed = s.now().Sub(s.startedAt)
	default:
		res.Elapsed = s.endedAt.Sub(s.startedAt)
	}
	return res
}
