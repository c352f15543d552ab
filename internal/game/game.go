package game

import (
	"fmt"
	"math/rand"
	"time"

	"memmatch/internal/board"
	"memmatch/internal/schedule"
	"memmatch/internal/scoring"
	"memmatch/internal/state"

	"go.uber.org/zap"
)

const (
	DefaultSettleDelay  = 600 * time.Millisecond
	DefaultTickInterval = time.Second

	// TopResults is how many results the win summary lists.
	TopResults = 5
)

// Options configures a Game. Zero values fall back to defaults.
type Options struct {
	Difficulty   string
	SettleDelay  time.Duration
	TickInterval time.Duration
	Palette      board.Palette
	Rand         *rand.Rand
	Logger       *zap.Logger
	Scores       scoring.ScoreStorage
}

// Game is the controller: it is the only code that mutates State, and it
// enforces the flip and match rules. Game is not safe for concurrent use;
// the scheduler must deliver callbacks on the same goroutine as input.
type Game struct {
	State *state.State

	presenter Presenter
	sched     schedule.Scheduler
	log       *zap.Logger
	palette   board.Palette
	rng       *rand.Rand
	scores    scoring.ScoreStorage
	settle    time.Duration
	tick      time.Duration
	selected  board.Difficulty

	pending schedule.Task
	ticker  schedule.Task
}

// NewGame creates a controller sitting on the title screen.
func NewGame(p Presenter, sched schedule.Scheduler, opts Options) (*Game, error) {
	if opts.Difficulty == "" {
		opts.Difficulty = board.DefaultDifficulty
	}
	selected, err := board.Lookup(opts.Difficulty)
	if err != nil {
		return nil, err
	}

	g := &Game{
		State:     state.NewState(),
		presenter: p,
		sched:     sched,
		log:       opts.Logger,
		palette:   opts.Palette,
		rng:       opts.Rand,
		scores:    opts.Scores,
		settle:    opts.SettleDelay,
		tick:      opts.TickInterval,
		selected:  selected,
	}
	if g.log == nil {
		g.log = zap.NewNop()
	}
	if g.palette == nil {
		g.palette = board.DefaultPalette()
	}
	if g.rng == nil {
		g.rng = board.NewRand(0)
	}
	if g.scores == nil {
		g.scores = scoring.NewMemoryStorage()
	}
	if g.settle <= 0 {
		g.settle = DefaultSettleDelay
	}
	if g.tick <= 0 {
		g.tick = DefaultTickInterval
	}
	return g, nil
}

// Selected is the difficulty the next StartGame("") will use.
func (g *Game) Selected() board.Difficulty {
	return g.selected
}

// SelectDifficulty changes the difficulty for the next game. A game in
// progress is not affected.
func (g *Game) SelectDifficulty(key string) error {
	d, err := board.Lookup(key)
	if err != nil {
		return err
	}
	g.selected = d
	g.log.Debug("difficulty selected", zap.String("difficulty", d.Key))
	return nil
}

// StartGame deals a new board and discards any game in progress. An empty
// key uses the selected difficulty. If the board cannot be built the
// current state is left as it was.
func (g *Game) StartGame(key string) error {
	d := g.selected
	if key != "" {
		var err error
		if d, err = board.Lookup(key); err != nil {
			return fmt.Errorf("start game: %w", err)
		}
	}

	tiles, err := board.Generate(d, g.palette, g.rng)
	if err != nil {
		g.log.Error("board generation failed", zap.String("difficulty", d.Key), zap.Error(err))
		return fmt.Errorf("start game: %w", err)
	}

	g.cancelPending()
	g.stopTimer()
	g.selected = d
	g.State.Reset(d, tiles, g.sched.Now())

	g.log.Info("game started",
		zap.String("session", g.State.ID),
		zap.Uint64("generation", g.State.Generation),
		zap.String("difficulty", d.Key))

	g.presenter.RenderBoard(tiles)
	g.presenter.UpdateStats(0, 0, d.PairCount)
	g.presenter.UpdateElapsedTime(0)
	g.presenter.ShowScreen(ScreenGame)

	g.ticker = g.sched.Every(g.tick, g.HandleTick)
	return nil
}

// RequestFlip turns over the tile with the given id. Requests that break a
// rule are ignored and reported as false.
func (g *Game) RequestFlip(tileID int) bool {
	t := g.State.TileByID(tileID)
	if !g.State.CanFlip(t) {
		g.log.Debug("flip ignored",
			zap.Int("tile", tileID),
			zap.String("phase", g.State.Phase()))
		return false
	}

	t.Flip()
	g.State.Select(t)
	g.presenter.RenderTileFlip(t)
	g.feedback(FeedbackClick)

	if g.State.Resolving() {
		a, b := g.State.Selection[0], g.State.Selection[1]
		gen := g.State.Generation
		g.pending = g.sched.After(g.settle, func() { g.resolve(gen, a, b) })
		g.log.Debug("pair selected",
			zap.Int("first", a.ID),
			zap.Int("second", b.ID),
			zap.Int("moves", g.State.MoveCount))
	}

	g.updateStats()
	return true
}

// resolve applies the outcome of a pair. It runs after the settle delay and
// does nothing if the session it was scheduled for has moved on.
func (g *Game) resolve(gen uint64, a, b *board.Tile) {
	if gen != g.State.Generation || !g.State.Resolving() ||
		!g.State.Owns(a) || !g.State.Owns(b) || !g.State.IsSelection(a, b) {
		g.log.Debug("stale resolution dropped",
			zap.Uint64("scheduled", gen),
			zap.Uint64("current", g.State.Generation))
		return
	}
	g.pending = nil

	if a.Symbol == b.Symbol {
		a.MarkMatched()
		b.MarkMatched()
		g.State.MatchedPairs++
		g.presenter.RenderTileMatched(a)
		g.presenter.RenderTileMatched(b)
		g.feedback(FeedbackMatch)
	} else {
		a.Unflip()
		b.Unflip()
		g.presenter.RenderTileUnflip(a)
		g.presenter.RenderTileUnflip(b)
	}

	g.State.Settle()
	g.updateStats()

	if g.State.Phase() == state.PhaseWon {
		g.win()
	}
}

func (g *Game) win() {
	g.stopTimer()

	d := g.State.Difficulty
	now := g.sched.Now()
	elapsed := g.State.ElapsedSeconds(now)
	summary := Summary{
		Difficulty:     d,
		Moves:          g.State.MoveCount,
		ElapsedSeconds: elapsed,
		TotalPairs:     d.PairCount,
		NewBest:        true,
		Attempts:       1,
	}

	// Result history is extra information; a failure here must not hide the win.
	if sc, err := scoring.InitScoring(d.Key, g.scores); err != nil {
		g.log.Warn("score history unavailable", zap.Error(err))
		summary.Rating = scoring.Rate(summary.Moves, d.PairCount)
	} else {
		if summary.Rating, err = sc.Record(summary.Moves, elapsed, d.PairCount, now); err != nil {
			g.log.Warn("could not record result", zap.Error(err))
		}
		summary.Best = sc.GetBestEntry()
		summary.NewBest = sc.GotBestScore()
		summary.Attempts = sc.GetAttempts() + 1
		summary.Top = sc.GetNScoreEntries(TopResults)
	}

	g.log.Info("game won",
		zap.String("session", g.State.ID),
		zap.Int("moves", summary.Moves),
		zap.Int("seconds", elapsed),
		zap.Int("stars", summary.Rating.Stars))

	g.feedback(FeedbackWin)
	g.presenter.ShowWinSummary(summary)
	g.presenter.ShowScreen(ScreenWin)
}

// QuitToTitle abandons the current game. Tiles are left as they are.
func (g *Game) QuitToTitle() {
	if g.State.Active() || g.State.Phase() == state.PhaseWon {
		g.log.Info("returned to title",
			zap.String("session", g.State.ID),
			zap.String("phase", g.State.Phase()))
	}
	g.State.Quit()
	g.stopTimer()
	g.cancelPending()
	g.presenter.ShowScreen(ScreenTitle)
}

// HandleTick pushes the elapsed time to the presenter while a game runs.
func (g *Game) HandleTick() {
	if !g.State.Active() {
		return
	}
	g.presenter.UpdateElapsedTime(g.State.ElapsedSeconds(g.sched.Now()))
}

// Stop releases scheduled work. The controller can still be used afterwards.
func (g *Game) Stop() {
	g.stopTimer()
	g.cancelPending()
}

func (g *Game) updateStats() {
	g.presenter.UpdateStats(g.State.MoveCount, g.State.MatchedPairs, g.State.TotalPairs())
}

func (g *Game) feedback(f Feedback) {
	if err := g.presenter.PlayFeedback(f); err != nil {
		g.log.Warn("feedback failed", zap.Stringer("kind", f), zap.Error(err))
	}
}

func (g *Game) stopTimer() {
	if g.ticker != nil {
		g.ticker.Stop()
		g.ticker = nil
	}
}

func (g *Game) cancelPending() {
	if g.pending != nil {
		g.pending.Stop()
		g.pending = nil
	}
}
