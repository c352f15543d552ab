// Package ui is the terminal front end: a bubbletea model that also serves
// as the game's presenter.
package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"memmatch/internal/board"
	"memmatch/internal/game"
	"memmatch/internal/schedule"
	"memmatch/internal/sound"
)

// TaskMsg carries a scheduled callback onto the event loop.
type TaskMsg struct {
	Fn func()
}

// Dispatcher turns scheduler callbacks into TaskMsgs sent through send,
// usually (*tea.Program).Send.
func Dispatcher(send func(tea.Msg)) schedule.Dispatch {
	return func(fn func()) {
		send(TaskMsg{Fn: fn})
	}
}

// Model is the bubbletea model. It owns the game controller and receives
// its presenter calls.
type Model struct {
	game *game.Game
	bell *sound.Bell
	log  *zap.Logger
	keys KeyMap
	help help.Model

	screen  game.Screen
	tiles   []*board.Tile
	cols    int
	cursor  int
	moves   int
	matched int
	total   int
	elapsed int
	status  string
	summary *game.Summary
	err     error
}

// New builds the model and its controller. bell may be nil.
func New(sched schedule.Scheduler, opts game.Options, bell *sound.Bell) (*Model, error) {
	m := &Model{
		bell:   bell,
		log:    opts.Logger,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		screen: game.ScreenTitle,
	}
	if m.log == nil {
		m.log = zap.NewNop()
	}

	g, err := game.NewGame(m, sched, opts)
	if err != nil {
		return nil, err
	}
	m.game = g
	return m, nil
}

// Game exposes the controller.
func (m *Model) Game() *game.Game {
	return m.game
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TaskMsg:
		msg.Fn()
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Exit):
		m.game.Stop()
		return tea.Quit
	case key.Matches(msg, m.keys.Sound):
		m.toggleSound()
		return nil
	}

	switch m.screen {
	case game.ScreenTitle:
		return m.handleTitleKey(msg)
	case game.ScreenGame:
		m.handleGameKey(msg)
	case game.ScreenWin:
		m.handleWinKey(msg)
	}
	return nil
}

func (m *Model) handleTitleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Prev):
		m.cycleDifficulty(-1)
	case key.Matches(msg, m.keys.Next):
		m.cycleDifficulty(1)
	case key.Matches(msg, m.keys.Start):
		m.start()
	case key.Matches(msg, m.keys.Back):
		m.game.Stop()
		return tea.Quit
	}
	return nil
}

func (m *Model) handleGameKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-m.cols)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(m.cols)
	case key.Matches(msg, m.keys.Left):
		if m.cols > 0 && m.cursor%m.cols > 0 {
			m.moveCursor(-1)
		}
	case key.Matches(msg, m.keys.Right):
		if m.cols > 0 && m.cursor%m.cols < m.cols-1 {
			m.moveCursor(1)
		}
	case key.Matches(msg, m.keys.Flip):
		m.game.RequestFlip(m.cursor)
	case key.Matches(msg, m.keys.Back):
		m.game.QuitToTitle()
	}
}

func (m *Model) handleWinKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Again):
		m.start()
	case key.Matches(msg, m.keys.Home):
		m.game.QuitToTitle()
	}
}

func (m *Model) start() {
	if err := m.game.StartGame(""); err != nil {
		m.err = err
		m.screen = game.ScreenTitle
		return
	}
	m.err = nil
}

func (m *Model) cycleDifficulty(step int) {
	keys := board.Keys()
	cur := 0
	for i, k := range keys {
		if k == m.game.Selected().Key {
			cur = i
		}
	}
	next := (cur + step + len(keys)) % len(keys)
	if err := m.game.SelectDifficulty(keys[next]); err != nil {
		m.err = err
		return
	}
	m.err = nil
}

func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= len(m.tiles) {
		return
	}
	m.cursor = next
}

func (m *Model) toggleSound() {
	if m.bell == nil {
		return
	}
	on := m.bell.Toggle()
	m.log.Debug("sound toggled", zap.Bool("enabled", on))
}

func (m *Model) soundOn() bool {
	return m.bell != nil && m.bell.Enabled()
}

// Presenter

func (m *Model) RenderBoard(tiles []*board.Tile) {
	m.tiles = tiles
	m.cols = m.game.State.Difficulty.Cols
	m.cursor = 0
	m.status = ""
	m.summary = nil
}

func (m *Model) RenderTileFlip(*board.Tile) {
	m.status = ""
}

func (m *Model) RenderTileUnflip(*board.Tile) {
	m.status = "No match"
}

func (m *Model) RenderTileMatched(t *board.Tile) {
	m.status = "Match! " + string(t.Symbol)
}

func (m *Model) UpdateStats(moves, matchedPairs, totalPairs int) {
	m.moves, m.matched, m.total = moves, matchedPairs, totalPairs
}

func (m *Model) UpdateElapsedTime(seconds int) {
	m.elapsed = seconds
}

func (m *Model) ShowScreen(s game.Screen) {
	m.screen = s
}

func (m *Model) PlayFeedback(f game.Feedback) error {
	if m.bell == nil {
		return nil
	}
	switch f {
	case game.FeedbackMatch:
		return m.bell.Play(sound.Match)
	case game.FeedbackWin:
		return m.bell.Play(sound.Win)
	default:
		return m.bell.Play(sound.Click)
	}
}

func (m *Model) ShowWinSummary(s game.Summary) {
	m.summary = &s
	m.elapsed = s.ElapsedSeconds
}
