// Package sound plays cosmetic feedback through the terminal bell.
package sound

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// Cue identifies a feedback sound.
type Cue int

const (
	Click Cue = iota
	Match
	Win
)

func (c Cue) String() string {
	switch c {
	case Click:
		return "click"
	case Match:
		return "match"
	case Win:
		return "win"
	default:
		return "unknown"
	}
}

// rings is how many bells each cue emits.
var rings = map[Cue]int{
	Click: 1,
	Match: 2,
	Win:   3,
}

// Bell writes BEL characters to a terminal.
type Bell struct {
	mu      sync.Mutex
	out     io.Writer
	enabled bool
}

// NewBell returns an enabled bell writing to out.
func NewBell(out io.Writer) *Bell {
	return &Bell{out: out, enabled: true}
}

func (b *Bell) Enabled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.enabled
}

func (b *Bell) SetEnabled(on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.enabled = on
}

// Toggle flips the sound setting and returns the new value.
func (b *Bell) Toggle() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.enabled = !b.enabled
	return b.enabled
}

// Play rings the bell for cue. A disabled bell or missing writer is silent.
func (b *Bell) Play(cue Cue) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.enabled || b.out == nil {
		return nil
	}
	n, ok := rings[cue]
	if !ok {
		return fmt.Errorf("unknown sound cue %d", cue)
	}
	if _, err := b.out.Write(bytes.Repeat([]byte{'\a'}, n)); err != nil {
		return fmt.Errorf("play %s: %w", cue, err)
	}
	return nil
}
