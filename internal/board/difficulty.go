package board

import (
	"errors"
	"fmt"
)

// ErrUnknownDifficulty is returned by Lookup for keys outside the preset table.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty describes the board size for one preset.
type Difficulty struct {
	Key       string
	Label     string
	Rows      int
	Cols      int
	PairCount int
}

var presets = []Difficulty{
	{Key: "easy", Label: "Easy", Rows: 4, Cols: 4, PairCount: 8},
	// 5x5 would leave one cell without a partner, so medium is 4x6.
	{Key: "medium", Label: "Medium", Rows: 4, Cols: 6, PairCount: 12},
	{Key: "hard", Label: "Hard", Rows: 6, Cols: 6, PairCount: 18},
}

// DefaultDifficulty is the preset selected when nothing else is configured.
const DefaultDifficulty = "medium"

// Presets returns a copy of the preset table, easiest first.
func Presets() []Difficulty {
	out := make([]Difficulty, len(presets))
	copy(out, presets)
	return out
}

// Keys lists the preset keys, easiest first.
func Keys() []string {
	keys := make([]string, len(presets))
	for i, d := range presets {
		keys[i] = d.Key
	}
	return keys
}

// Lookup returns the preset registered under key.
func Lookup(key string) (Difficulty, error) {
	for _, d := range presets {
		if d.Key == key {
			return d, nil
		}
	}
	return Difficulty{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, key)
}

// Tiles is the number of cells on the board.
func (d Difficulty) Tiles() int {
	return d.Rows * d.Cols
}

// Validate checks that the grid holds exactly two tiles per pair.
func (d Difficulty) Validate() error {
	if d.PairCount <= 0 {
		return &ConfigurationError{Difficulty: d.Key, PairCount: d.PairCount, Reason: "pair count must be positive"}
	}
	if d.Tiles() != 2*d.PairCount {
		return &ConfigurationError{
			Difficulty: d.Key,
			PairCount:  d.PairCount,
			Reason:     fmt.Sprintf("%dx%d grid cannot hold %d pairs", d.Rows, d.Cols, d.PairCount),
		}
	}
	return nil
}

func (d Difficulty) String() string {
	return fmt.Sprintf("%s (%dx%d, %d pairs)", d.Label, d.Rows, d.Cols, d.PairCount)
}
