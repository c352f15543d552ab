package game

import (
	"memmatch/internal/board"
	"memmatch/internal/scoring"
)

// Screen names the view the presenter should show.
type Screen int

const (
	ScreenTitle Screen = iota
	ScreenGame
	ScreenWin
)

func (s Screen) String() string {
	switch s {
	case ScreenTitle:
		return "title"
	case ScreenGame:
		return "game"
	case ScreenWin:
		return "win"
	default:
		return "unknown"
	}
}

// Feedback is a cosmetic cue, usually a sound.
type Feedback int

const (
	FeedbackClick Feedback = iota
	FeedbackMatch
	FeedbackWin
)

func (f Feedback) String() string {
	switch f {
	case FeedbackClick:
		return "click"
	case FeedbackMatch:
		return "match"
	case FeedbackWin:
		return "win"
	default:
		return "unknown"
	}
}

// Summary is what the win screen shows.
type Summary struct {
	Difficulty     board.Difficulty
	Moves          int
	ElapsedSeconds int
	TotalPairs     int
	Rating         scoring.Rating
	// Best is the best earlier game at this difficulty, nil on the first win.
	Best     *scoring.ScoreHistoryEntry
	NewBest  bool
	Attempts int
	// Top is the best results at this difficulty, this game included.
	Top []scoring.ScoreHistoryEntry
}

// Presenter draws the game. The controller calls it synchronously after
// every state change; implementations must not call back into the controller
// from these methods.
type Presenter interface {
	RenderBoard(tiles []*board.Tile)
	RenderTileFlip(t *board.Tile)
	RenderTileUnflip(t *board.Tile)
	RenderTileMatched(t *board.Tile)
	UpdateStats(moves, matchedPairs, totalPairs int)
	UpdateElapsedTime(seconds int)
	ShowScreen(s Screen)
	// PlayFeedback is best effort. Errors are logged by the controller and
	// never stop the game.
	PlayFeedback(f Feedback) error
	ShowWinSummary(s Summary)
}
