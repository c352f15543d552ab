package scoring

import (
	"errors"
	"testing"
	"time"
)

// MockScoreStorage is a mock implementation of the ScoreStorage interface
// that stores score entries in memory. This is used for testing.
type MockScoreStorage struct {
	Entries []ScoreHistoryEntry
	err     error // To simulate errors from the storage layer.
}

func (m *MockScoreStorage) LoadAll() ([]ScoreHistoryEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.Entries, nil
}

func (m *MockScoreStorage) SaveAll(entries []ScoreHistoryEntry) error {
	if m.err != nil {
		return m.err
	}
	m.Entries = entries
	return nil
}

var finished = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

// TestRate covers each tier boundary of the moves-per-pair ratio.
func TestRate(t *testing.T) {
	tests := []struct {
		name      string
		moves     int
		pairs     int
		wantStars int
		wantMsg   string
	}{
		{"perfect", 8, 8, 3, "Outstanding! Near perfect!"},
		{"ratio 1.2", 12, 10, 3, "Outstanding! Near perfect!"},
		{"ratio 1.5", 12, 8, 2, "Great job! Well played!"},
		{"ratio 2.0", 16, 8, 1, "Good effort! Keep practicing!"},
		{"ratio 2.5", 20, 8, 0, "Nice try! Play again to improve!"},
		{"just over 1.2", 13, 10, 2, "Great job! Well played!"},
		{"no pairs", 5, 0, 0, "Nice try! Play again to improve!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rate(tt.moves, tt.pairs)
			if got.Stars != tt.wantStars {
				t.Errorf("Rate(%d, %d).Stars = %d, want %d", tt.moves, tt.pairs, got.Stars, tt.wantStars)
			}
			if got.Message != tt.wantMsg {
				t.Errorf("Rate(%d, %d).Message = %q, want %q", tt.moves, tt.pairs, got.Message, tt.wantMsg)
			}
		})
	}
}

func TestRating_Glyphs(t *testing.T) {
	if got := (Rating{Stars: 2}).Glyphs(); got != "★★☆" {
		t.Errorf("expected ★★☆, got %q", got)
	}
	if got := (Rating{Stars: 0}).Glyphs(); got != "☆☆☆" {
		t.Errorf("expected ☆☆☆, got %q", got)
	}
}

// TestInitScoring_NewDifficulty verifies a first game has no history.
func TestInitScoring_NewDifficulty(t *testing.T) {
	scoring, err := InitScoring("easy", &MockScoreStorage{})
	if err != nil {
		t.Fatalf("InitScoring returned an unexpected error: %v", err)
	}

	if scoring.GetAttempts() != 0 {
		t.Errorf("expected 0 attempts, but got %d", scoring.GetAttempts())
	}
	if scoring.GetBestEntry() != nil {
		t.Errorf("expected nil best entry, but got %v", scoring.GetBestEntry())
	}
	if !scoring.GotBestScore() {
		t.Error("a first game is always the best so far")
	}
}

// TestInitScoring_WithHistory verifies filtering by difficulty and best-entry selection.
func TestInitScoring_WithHistory(t *testing.T) {
	mockStorage := &MockScoreStorage{
		Entries: []ScoreHistoryEntry{
			{Difficulty: "hard", Moves: 3},
			{Difficulty: "easy", Moves: 14, Seconds: 40},
			{Difficulty: "easy", Moves: 10, Seconds: 50},
			{Difficulty: "easy", Moves: 10, Seconds: 30},
		},
	}

	scoring, err := InitScoring("easy", mockStorage)
	if err != nil {
		t.Fatalf("InitScoring returned an unexpected error: %v", err)
	}

	if scoring.GetAttempts() != 3 {
		t.Errorf("expected 3 attempts, but got %d", scoring.GetAttempts())
	}

	best := scoring.GetBestEntry()
	if best == nil {
		t.Fatalf("expected a best entry, but got nil")
	}
	if best.Moves != 10 || best.Seconds != 30 {
		t.Errorf("expected best 10 moves/30s, got %d moves/%ds", best.Moves, best.Seconds)
	}
}

func TestInitScoring_StorageError(t *testing.T) {
	_, err := InitScoring("easy", &MockScoreStorage{err: errors.New("boom")})
	if err == nil {
		t.Fatal("expected error from failing storage")
	}
}

// TestRecord rates the game, saves it and compares against history.
func TestRecord(t *testing.T) {
	mockStorage := &MockScoreStorage{
		Entries: []ScoreHistoryEntry{
			{Difficulty: "easy", Moves: 12, Seconds: 60},
			{Difficulty: "medium", Moves: 20, Seconds: 90},
		},
	}
	scoring, _ := InitScoring("easy", mockStorage)

	rating, err := scoring.Record(9, 45, 8, finished)
	if err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	if rating.Stars != 3 {
		t.Errorf("expected 3 stars for 9 moves / 8 pairs, got %d", rating.Stars)
	}
	if !scoring.GotBestScore() {
		t.Error("9 moves should beat 12")
	}

	if len(mockStorage.Entries) != 3 {
		t.Fatalf("expected 3 stored entries, got %d", len(mockStorage.Entries))
	}
	saved := mockStorage.Entries[2]
	if saved.Difficulty != "easy" || saved.Moves != 9 || saved.Timestamp != finished.Format(time.RFC3339) {
		t.Errorf("saved entry mismatch: %+v", saved)
	}
}

func TestRecord_NotBest(t *testing.T) {
	mockStorage := &MockScoreStorage{
		Entries: []ScoreHistoryEntry{{Difficulty: "easy", Moves: 8, Seconds: 20}},
	}
	scoring, _ := InitScoring("easy", mockStorage)

	if _, err := scoring.Record(8, 25, 8, finished); err != nil {
		t.Fatal(err)
	}
	if scoring.GotBestScore() {
		t.Error("same moves but slower should not be best")
	}
}

// TestGetNScoreEntries_IncludesCurrent verifies the current game is ranked
// together with history.
func TestGetNScoreEntries_IncludesCurrent(t *testing.T) {
	mockStorage := &MockScoreStorage{
		Entries: []ScoreHistoryEntry{
			{Difficulty: "easy", Moves: 20},
			{Difficulty: "easy", Moves: 10},
		},
	}
	scoring, _ := InitScoring("easy", mockStorage)
	scoring.Record(15, 0, 8, finished)

	entries := scoring.GetNScoreEntries(5)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	want := []int{10, 15, 20}
	for i, moves := range want {
		if entries[i].Moves != moves {
			t.Errorf("entry %d: expected %d moves, got %d", i, moves, entries[i].Moves)
		}
	}

	if top := scoring.GetNScoreEntries(1); len(top) != 1 || top[0].Moves != 10 {
		t.Errorf("expected top entry with 10 moves, got %+v", top)
	}
}
