// Package schedule runs deferred and repeating callbacks for the game loop.
//
// Callbacks never run concurrently with each other when the Realtime
// scheduler is given a Dispatch that forwards them onto a single event loop.
package schedule

import (
	"sync"
	"time"
)

// Task is a handle to a scheduled callback.
type Task interface {
	// Stop prevents future runs. It reports whether the task was still pending.
	Stop() bool
}

// Scheduler is the clock the game controller runs against.
type Scheduler interface {
	Now() time.Time
	After(d time.Duration, fn func()) Task
	Every(d time.Duration, fn func()) Task
}

// Dispatch hands a callback to the goroutine that owns game state.
type Dispatch func(fn func())

// Realtime schedules callbacks on the wall clock.
type Realtime struct {
	mu       sync.Mutex
	dispatch Dispatch
}

// NewRealtime creates a wall-clock scheduler. A nil dispatch runs callbacks
// directly on the timer goroutine.
func NewRealtime(dispatch Dispatch) *Realtime {
	return &Realtime{dispatch: dispatch}
}

// SetDispatch replaces the dispatch function. Used when the event loop is
// created after the scheduler.
func (r *Realtime) SetDispatch(dispatch Dispatch) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dispatch = dispatch
}

func (r *Realtime) run(fn func()) {
	r.mu.Lock()
	dispatch := r.dispatch
	r.mu.Unlock()

	if dispatch == nil {
		fn()
		return
	}
	dispatch(fn)
}

func (r *Realtime) Now() time.Time { return time.Now() }

// After runs fn once after d.
func (r *Realtime) After(d time.Duration, fn func()) Task {
	return &timerTask{timer: time.AfterFunc(d, func() { r.run(fn) })}
}

// Every runs fn every d until stopped.
func (r *Realtime) Every(d time.Duration, fn func()) Task {
	t := &tickerTask{
		ticker: time.NewTicker(d),
		done:   make(chan struct{}),
	}
	go func() {
		for {
			select {
			case <-t.done:
				return
			case <-t.ticker.C:
				r.run(fn)
			}
		}
	}()
	return t
}

type timerTask struct {
	timer *time.Timer
}

func (t *timerTask) Stop() bool { return t.timer.Stop() }

type tickerTask struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

// Stop halts the ticker. It does not wait for the goroutine: Stop is usually
// called from the event loop that a pending dispatch may be blocked on.
func (t *tickerTask) Stop() bool {
	stopped := false
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
		stopped = true
	})
	return stopped
}
