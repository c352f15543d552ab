package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with fresh flag state.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{
		"MEMMATCH_DIFFICULTY", "MEMMATCH_SOUND", "MEMMATCH_SEED",
		"MEMMATCH_SETTLE_DELAY", "MEMMATCH_LOG_FILE",
	} {
		if _, set := os.LookupEnv(k); !set {
			t.Setenv(k, "")
		}
	}
	t.Setenv("HOME", t.TempDir())

	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	configCmd.Flags().VisitAll(reset)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestPresetsCommand(t *testing.T) {
	out, err := execute(t, "presets", "-d", "hard")
	require.NoError(t, err)
	assert.Contains(t, out, "4x4")
	assert.Contains(t, out, "4x6")
	assert.Contains(t, out, "6x6")
	assert.Contains(t, out, "18")
	assert.Contains(t, out, "*")
}

func TestUnknownDifficultyFlag(t *testing.T) {
	_, err := execute(t, "presets", "--difficulty", "nightmare")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown difficulty")
}

func TestConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("difficulty: easy\nsettle_delay: 250ms\nseed: 1\n"), 0644))
	t.Setenv("MEMMATCH_SEED", "5")

	out, err := execute(t, "config", "--config", path, "--settle", "100ms")
	require.NoError(t, err)
	assert.Contains(t, out, "difficulty: easy")
	assert.Contains(t, out, "seed: 5")
	assert.Contains(t, out, "settle_delay: 100ms")
	assert.Contains(t, out, "sound: true")
}

func TestConfigWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memmatch", "config.yaml")

	_, err := execute(t, "config", "--config", path, "--no-sound", "--write")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "sound: false")
}

func TestLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "memmatch.log")

	_, err := execute(t, "presets", "--log-file", logPath, "-v")
	require.NoError(t, err)
	logger.Debug("probe")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "probe")
}
