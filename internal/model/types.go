// Package model defines shared data structures.
package model

import "time"

// Config defines trainer settings.
type Config struct {
	WordListPath  string
	Coverage      float64
	FlashDuration time.Duration
	Row           int
	Delimiter     rune
	ASCIIOnly     bool
}

// DocConfig defines whole-document mode settings.
type DocConfig struct {
	Path string
	Row  int
}
