package schedule

import (
	"sync"
	"time"
)

// Manual is a scheduler whose clock only moves when Advance is called.
// Callbacks run synchronously inside Advance, in due-time order.
type Manual struct {
	mu    sync.Mutex
	now   time.Time
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	owner  *Manual
	seq    int
	due    time.Time
	period time.Duration
	fn     func()
	done   bool
}

// NewManual returns a manual clock starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) After(d time.Duration, fn func()) Task {
	return m.add(d, 0, fn)
}

func (m *Manual) Every(d time.Duration, fn func()) Task {
	return m.add(d, d, fn)
}

func (m *Manual) add(d, period time.Duration, fn func()) Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &manualTask{owner: m, seq: m.seq, due: m.now.Add(d), period: period, fn: fn}
	m.tasks = append(m.tasks, t)
	return t
}

// Pending reports how many tasks are still scheduled.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.tasks {
		if !t.done {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d, running every callback that falls
// due on the way. Repeating tasks fire once per elapsed period.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		m.mu.Lock()
		next := m.nextDue(target)
		if next == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		m.now = next.due
		if next.period > 0 {
			next.due = next.due.Add(next.period)
		} else {
			next.done = true
		}
		m.compact()
		fn := next.fn
		m.mu.Unlock()

		fn()
	}
}

func (m *Manual) nextDue(limit time.Time) *manualTask {
	var best *manualTask
	for _, t := range m.tasks {
		if t.done || t.due.After(limit) {
			continue
		}
		if best == nil || t.due.Before(best.due) || (t.due.Equal(best.due) && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (m *Manual) compact() {
	live := m.tasks[:0]
	for _, t := range m.tasks {
		if !t.done {
			live = append(live, t)
		}
	}
	m.tasks = live
}

func (t *manualTask) Stop() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	t.owner.compact()
	return true
}
