package scoring

import (
	"sort"
)

// ScoreHistory holds the finished games for one difficulty, including the
// game currently being recorded.
type ScoreHistory struct {
	Entries      []ScoreHistoryEntry
	BestEntry    *ScoreHistoryEntry
	CurrentScore *ScoreHistoryEntry
	Attempts     int
}

// ScoreHistoryEntry is a single finished game.
type ScoreHistoryEntry struct {
	Difficulty string
	Moves      int
	Seconds    int
	Stars      int
	Timestamp  string
}

// Better reports whether e ranks above other: fewer moves, then less time.
func (e ScoreHistoryEntry) Better(other ScoreHistoryEntry) bool {
	if e.Moves != other.Moves {
		return e.Moves < other.Moves
	}
	return e.Seconds < other.Seconds
}

func sortEntries(entries []ScoreHistoryEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Better(entries[j])
	})
}

// GetBestEntry returns the best previous entry, or nil on the first game.
func (sh ScoreHistory) GetBestEntry() *ScoreHistoryEntry {
	return sh.BestEntry
}

// GetNScoreEntries returns the top N entries, previous games and the
// current one combined.
func (sh ScoreHistory) GetNScoreEntries(n int) []ScoreHistoryEntry {
	entriesCopy := make([]ScoreHistoryEntry, 0, len(sh.Entries)+1)
	entriesCopy = append(entriesCopy, sh.Entries...)
	if sh.CurrentScore != nil {
		entriesCopy = append(entriesCopy, *sh.CurrentScore)
	}

	sortEntries(entriesCopy)

	if len(entriesCopy) < n {
		return entriesCopy
	}
	return entriesCopy[:n]
}

// GotBestScore reports whether the current game ties or beats every
// previous one.
func (sh ScoreHistory) GotBestScore() bool {
	if sh.BestEntry == nil || sh.CurrentScore == nil {
		return true
	}
	return !sh.BestEntry.Better(*sh.CurrentScore)
}
