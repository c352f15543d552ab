package state

import (
	"time"

	"memmatch/internal/board"
)

// TileByID returns the tile with the given id, or nil.
func (s *State) TileByID(id int) *board.Tile {
	if id < 0 || id >= len(s.Tiles) {
		return nil
	}
	return s.Tiles[id]
}

// CanFlip reports whether t may be turned over right now.
func (s *State) CanFlip(t *board.Tile) bool {
	if t == nil || !s.Active() || s.Resolving() {
		return false
	}
	if t.Flipped() {
		return false
	}
	return len(s.Selection) < 2
}

// Owns reports whether t belongs to the current board.
func (s *State) Owns(t *board.Tile) bool {
	return t != nil && s.TileByID(t.ID) == t
}

// IsSelection reports whether a and b are, in order, the pending pair.
func (s *State) IsSelection(a, b *board.Tile) bool {
	return len(s.Selection) == 2 && s.Selection[0] == a && s.Selection[1] == b
}

func (s *State) TotalPairs() int {
	return s.Difficulty.PairCount
}

func (s *State) IsComplete() bool {
	return s.TotalPairs() > 0 && s.MatchedPairs == s.TotalPairs()
}

// ElapsedSeconds is the whole number of seconds since the game started.
func (s *State) ElapsedSeconds(now time.Time) int {
	if s.StartTime.IsZero() || now.Before(s.StartTime) {
		return 0
	}
	return int(now.Sub(s.StartTime) / time.Second)
}
