package corpus

import (
	_ "embed"
	"strings"
)

//go:embed fallback.txt
var fallbackWords string

// Fallback returns the built-in word set used when no file is given.
func Fallback() *Corpus {
	c, err := New(strings.Fields(fallbackWords))
	if err != nil {
		panic("corpus: embedded fallback word set is empty")
	}
	return c
}
