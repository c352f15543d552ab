package scoring

import (
	"fmt"
	"time"
)

// Scoring records the result of one game and compares it with earlier
// games of the same difficulty.
type Scoring struct {
	// public
	Rating Rating
	// private
	storage    ScoreStorage
	history    ScoreHistory
	difficulty string
}

// InitScoring loads the earlier results for difficulty from storage.
func InitScoring(difficulty string, storage ScoreStorage) (*Scoring, error) {
	s := &Scoring{
		storage:    storage,
		difficulty: difficulty,
	}

	allEntries, err := s.storage.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("could not load score history: %w", err)
	}

	filteredEntries := []ScoreHistoryEntry{}
	for _, entry := range allEntries {
		if entry.Difficulty == difficulty {
			filteredEntries = append(filteredEntries, entry)
		}
	}
	sortEntries(filteredEntries)

	s.history.Entries = filteredEntries
	s.history.Attempts = len(filteredEntries)
	if len(filteredEntries) > 0 {
		best := filteredEntries[0]
		s.history.BestEntry = &best
	}

	return s, nil
}

// Record rates the finished game and stores it.
func (s *Scoring) Record(moves, seconds, pairCount int, at time.Time) (Rating, error) {
	s.Rating = Rate(moves, pairCount)
	s.history.CurrentScore = &ScoreHistoryEntry{
		Difficulty: s.difficulty,
		Moves:      moves,
		Seconds:    seconds,
		Stars:      s.Rating.Stars,
		Timestamp:  at.Format(time.RFC3339),
	}
	return s.Rating, s.SaveEntries()
}

// SaveEntries appends the current game to storage.
func (s *Scoring) SaveEntries() error {
	if s.history.CurrentScore == nil {
		return nil
	}

	allEntries, err := s.storage.LoadAll()
	if err != nil {
		return fmt.Errorf("could not load scores for saving: %w", err)
	}

	updatedEntries := append(allEntries, *s.history.CurrentScore)
	if err := s.storage.SaveAll(updatedEntries); err != nil {
		return fmt.Errorf("could not save scores: %w", err)
	}
	return nil
}

// Accessor methods for score history, delegating to the history object.
func (s *Scoring) GetBestEntry() *ScoreHistoryEntry {
	return s.history.GetBestEntry()
}

func (s *Scoring) GetAttempts() int {
	return s.history.Attempts
}

func (s *Scoring) GotBestScore() bool {
	return s.history.GotBestScore()
}

func (s *Scoring) GetNScoreEntries(n int) []ScoreHistoryEntry {
	return s.history.GetNScoreEntries(n)
}
