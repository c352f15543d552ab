package board

import (
	"math/rand"
	"time"
)

// NewRand returns a generator seeded with seed, or with the current time
// when seed is zero.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Generate builds a shuffled board for d using the first d.PairCount symbols
// of palette. Every symbol appears exactly twice and ids follow board order.
func Generate(d Difficulty, palette Palette, rng *rand.Rand) ([]*Tile, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if d.PairCount > len(palette) {
		return nil, &ConfigurationError{
			Difficulty:  d.Key,
			PairCount:   d.PairCount,
			PaletteSize: len(palette),
			Reason:      "not enough symbols in palette",
		}
	}

	symbols := make([]Symbol, 0, 2*d.PairCount)
	seen := make(map[Symbol]bool, d.PairCount)
	for _, sym := range palette[:d.PairCount] {
		if seen[sym] {
			return nil, &ConfigurationError{
				Difficulty:  d.Key,
				PairCount:   d.PairCount,
				PaletteSize: len(palette),
				Reason:      "palette symbol " + string(sym) + " is repeated",
			}
		}
		seen[sym] = true
		symbols = append(symbols, sym, sym)
	}

	// rand.Shuffle is Fisher-Yates, so every permutation is equally likely.
	rng.Shuffle(len(symbols), func(i, j int) {
		symbols[i], symbols[j] = symbols[j], symbols[i]
	})

	tiles := make([]*Tile, len(symbols))
	for i, sym := range symbols {
		tiles[i] = NewTile(i, sym)
	}
	return tiles, nil
}
