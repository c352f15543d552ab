package state

import (
	"context"
	"time"

	"memmatch/internal/board"

	"github.com/google/uuid"
	"github.com/looplab/fsm"
)

// Phases of a session.
const (
	PhaseTitle     = "title"
	PhaseIdle      = "idle"
	PhaseOneUp     = "oneUp"
	PhaseResolving = "resolving"
	PhaseWon       = "won"
)

// Events accepted by the phase machine.
const (
	EventStart  = "start"
	EventFlip   = "flip"
	EventPair   = "pair"
	EventSettle = "settle"
	EventWin    = "win"
	EventQuit   = "quit"
)

// State holds everything about the game in progress. It is owned by a
// single controller and is not safe for concurrent use.
type State struct {
	ID           string
	Generation   uint64
	Difficulty   board.Difficulty
	Tiles        []*board.Tile
	Selection    []*board.Tile
	MatchedPairs int
	MoveCount    int
	StartTime    time.Time
	FSM          *fsm.FSM
}

// NewState returns a session sitting on the title screen.
func NewState() *State {
	s := &State{}
	s.FSM = fsm.NewFSM(
		PhaseTitle,
		getStateTransitions(),
		getStateCallbacks(s),
	)
	return s
}

// Reset installs a fresh board and moves the session to idle.
func (s *State) Reset(d board.Difficulty, tiles []*board.Tile, now time.Time) {
	s.ID = uuid.NewString()
	s.Generation++
	s.Difficulty = d
	s.Tiles = tiles
	s.Selection = s.Selection[:0]
	s.MatchedPairs = 0
	s.MoveCount = 0
	s.StartTime = now

	// start is a no-op transition when already idle.
	_ = s.FSM.Event(context.Background(), EventStart)
}

// Select records an accepted flip and advances the phase.
func (s *State) Select(t *board.Tile) {
	s.Selection = append(s.Selection, t)
	if len(s.Selection) == 1 {
		_ = s.FSM.Event(context.Background(), EventFlip)
		return
	}
	_ = s.FSM.Event(context.Background(), EventPair)
}

// Settle ends a resolution. It moves to won when every pair is matched.
func (s *State) Settle() {
	if s.IsComplete() {
		_ = s.FSM.Event(context.Background(), EventWin)
		return
	}
	_ = s.FSM.Event(context.Background(), EventSettle)
}

// Quit returns the session to the title screen.
func (s *State) Quit() {
	_ = s.FSM.Event(context.Background(), EventQuit)
}

func (s *State) Phase() string { return s.FSM.Current() }

// Active reports whether a game is running (including a pending resolution).
func (s *State) Active() bool {
	switch s.FSM.Current() {
	case PhaseIdle, PhaseOneUp, PhaseResolving:
		return true
	}
	return false
}

// Resolving reports whether a two-tile comparison is pending.
func (s *State) Resolving() bool {
	return s.FSM.Is(PhaseResolving)
}

func getStateTransitions() []fsm.EventDesc {
	return fsm.Events{
		{Name: EventStart, Src: []string{PhaseTitle, PhaseWon, PhaseIdle, PhaseOneUp, PhaseResolving}, Dst: PhaseIdle},

		// Selection
		{Name: EventFlip, Src: []string{PhaseIdle}, Dst: PhaseOneUp},
		{Name: EventPair, Src: []string{PhaseOneUp}, Dst: PhaseResolving},

		// Resolution
		{Name: EventSettle, Src: []string{PhaseResolving}, Dst: PhaseIdle},
		{Name: EventWin, Src: []string{PhaseResolving}, Dst: PhaseWon},

		{Name: EventQuit, Src: []string{PhaseIdle, PhaseOneUp, PhaseResolving, PhaseWon}, Dst: PhaseTitle},
	}
}

func getStateCallbacks(s *State) map[string]fsm.Callback {
	return fsm.Callbacks{
		"enter_" + PhaseResolving: func(_ context.Context, _ *fsm.Event) {
			s.MoveCount++
		},
		// Whatever ends a resolution (settle, win, quit, restart) drops the pair.
		"leave_" + PhaseResolving: func(_ context.Context, _ *fsm.Event) {
			s.Selection = s.Selection[:0]
		},
	}
}
