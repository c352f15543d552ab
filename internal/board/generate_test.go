package board

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresets_GridHoldsAllPairs(t *testing.T) {
	for _, d := range Presets() {
		t.Run(d.Key, func(t *testing.T) {
			assert.Equal(t, 2*d.PairCount, d.Rows*d.Cols)
			assert.NoError(t, d.Validate())
		})
	}
}

func TestLookup(t *testing.T) {
	d, err := Lookup("easy")
	require.NoError(t, err)
	assert.Equal(t, 8, d.PairCount)
	assert.Equal(t, 16, d.Tiles())

	_, err = Lookup("nightmare")
	assert.True(t, errors.Is(err, ErrUnknownDifficulty))

	assert.Equal(t, []string{"easy", "medium", "hard"}, Keys())
}

func TestGenerate_PairsForEveryPreset(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, d := range Presets() {
		t.Run(d.Key, func(t *testing.T) {
			tiles, err := Generate(d, DefaultPalette(), rng)
			require.NoError(t, err)
			require.Len(t, tiles, 2*d.PairCount)

			counts := make(map[Symbol]int)
			for i, tile := range tiles {
				assert.Equal(t, i, tile.ID)
				assert.Equal(t, FaceDown, tile.Face())
				counts[tile.Symbol]++
			}
			assert.Len(t, counts, d.PairCount)
			for sym, n := range counts {
				assert.Equal(t, 2, n, "symbol %s", sym)
			}
		})
	}
}

func TestGenerate_PaletteTooSmall(t *testing.T) {
	d := Difficulty{Key: "huge", Label: "Huge", Rows: 5, Cols: 10, PairCount: 25}

	_, err := Generate(d, DefaultPalette(), rand.New(rand.NewSource(1)))

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, 25, cfgErr.PairCount)
	assert.Equal(t, len(DefaultPalette()), cfgErr.PaletteSize)
	assert.Contains(t, err.Error(), "huge")
}

func TestGenerate_BadGrid(t *testing.T) {
	d := Difficulty{Key: "square", Rows: 5, Cols: 5, PairCount: 12}

	_, err := Generate(d, DefaultPalette(), rand.New(rand.NewSource(1)))

	var cfgErr *ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestGenerate_RepeatedPaletteSymbol(t *testing.T) {
	d := Difficulty{Key: "tiny", Rows: 2, Cols: 2, PairCount: 2}

	_, err := Generate(d, Palette{"A", "A", "B"}, rand.New(rand.NewSource(1)))

	var cfgErr *ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
}

// The first palette symbol should land on every position with equal
// probability. Expected count per cell is runs*2/tiles.
func TestGenerate_ShuffleIsUniform(t *testing.T) {
	d, err := Lookup("easy")
	require.NoError(t, err)

	const runs = 16000
	rng := rand.New(rand.NewSource(42))
	palette := DefaultPalette()
	target := palette[0]
	hits := make([]int, d.Tiles())

	for i := 0; i < runs; i++ {
		tiles, err := Generate(d, palette, rng)
		require.NoError(t, err)
		for _, tile := range tiles {
			if tile.Symbol == target {
				hits[tile.ID]++
			}
		}
	}

	expected := float64(runs*2) / float64(d.Tiles())
	for pos, n := range hits {
		assert.InDelta(t, expected, float64(n), expected*0.15, "position %d", pos)
	}
}
