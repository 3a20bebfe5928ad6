package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsNormalize(t *testing.T) {
	s := Settings{Volume: 140, FrameRateIndex: 9}.Normalize()
	assert.Equal(t, 100, s.Volume)
	assert.Equal(t, DefaultSettings().FrameRateIndex, s.FrameRateIndex)

	assert.Equal(t, 0, Settings{Volume: -3}.Normalize().Volume)
}

func TestSettingsFrameRate(t *testing.T) {
	assert.Equal(t, 30, Settings{FrameRateIndex: 0}.TPS())
	assert.Equal(t, 120, Settings{FrameRateIndex: 2}.TPS())
	assert.Equal(t, 60, Settings{FrameRateIndex: 3}.TPS(), "unlimited keeps the default tick rate")
	assert.False(t, Settings{FrameRateIndex: 3}.VSync())
	assert.True(t, Settings{FrameRateIndex: 1}.VSync())
	assert.Equal(t, 0.5, Settings{Volume: 50}.VolumeScale())
}

func TestLoadTuningOverlaysFile(t *testing.T) {
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	doc := "player:\n  jump_strength: -12\nghost:\n  chase_speed: 90\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	applied, err := LoadTuning(path)
	require.NoError(t, err)
	assert.Equal(t, path, applied)

	assert.Equal(t, -12.0, Player.JumpStrength)
	assert.Equal(t, 90.0, Ghost.ChaseSpeed)
	// untouched fields keep defaults
	assert.Equal(t, 0.6, Player.Gravity)
	assert.Equal(t, 100.0, Ghost.ReturnSpeed)
}

func TestLoadTuningMissingFile(t *testing.T) {
	t.Cleanup(Reset)

	_, err := LoadTuning(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDumpTuningRoundTrip(t *testing.T) {
	t.Cleanup(Reset)

	data, err := DumpTuning()
	require.NoError(t, err)
	assert.Contains(t, string(data), "countdown_duration: 3")

	Player.MoveStep = 99
	require.NoError(t, ApplyTuning(data))
	assert.Equal(t, 3.0, Player.MoveStep)
}
