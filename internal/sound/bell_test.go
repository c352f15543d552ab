package sound

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("device busy") }

func TestBell_Play(t *testing.T) {
	tests := []struct {
		cue  Cue
		want string
	}{
		{Click, "\a"},
		{Match, "\a\a"},
		{Win, "\a\a\a"},
	}

	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			var buf bytes.Buffer
			b := NewBell(&buf)
			require.NoError(t, b.Play(tt.cue))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestBell_Disabled(t *testing.T) {
	var buf bytes.Buffer
	b := NewBell(&buf)

	assert.False(t, b.Toggle())
	assert.False(t, b.Enabled())
	require.NoError(t, b.Play(Win))
	assert.Empty(t, buf.String())

	b.SetEnabled(true)
	require.NoError(t, b.Play(Click))
	assert.Equal(t, "\a", buf.String())
}

func TestBell_Errors(t *testing.T) {
	b := NewBell(failingWriter{})
	err := b.Play(Match)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "match")

	assert.Error(t, NewBell(&bytes.Buffer{}).Play(Cue(9)))
	assert.NoError(t, NewBell(nil).Play(Click))
}
