package components

import (
	"testing"

	cfg "github.com/ModricFX/JumpScape-sub000/config"
	"github.com/stretchr/testify/assert"
)

func TestMenuMoveWraps(t *testing.T) {
	m := NewMenuData(0)
	m.Move(-1)
	assert.Equal(t, MenuQuit, m.Selected())
	m.Move(1)
	assert.Equal(t, MenuPlay, m.Selected())
	m.Move(2)
	assert.Equal(t, MenuVolume, m.Selected())
}

func TestMenuAdjust(t *testing.T) {
	base := cfg.DefaultSettings()

	tests := []struct {
		name   string
		row    int
		dir    int
		expect func(t *testing.T, m MenuData, s cfg.Settings)
	}{
		{"volume up", 2, 1, func(t *testing.T, _ MenuData, s cfg.Settings) {
			assert.Equal(t, base.Volume+10, s.Volume)
		}},
		{"volume down", 2, -1, func(t *testing.T, _ MenuData, s cfg.Settings) {
			assert.Equal(t, base.Volume-10, s.Volume)
		}},
		{"frame rate wraps", 3, -2, func(t *testing.T, _ MenuData, s cfg.Settings) {
			assert.Equal(t, len(cfg.FrameRates)-1, s.FrameRateIndex)
		}},
		{"fullscreen toggles", 4, 1, func(t *testing.T, _ MenuData, s cfg.Settings) {
			assert.True(t, s.Fullscreen)
		}},
		{"level wraps", 1, -1, func(t *testing.T, m MenuData, s cfg.Settings) {
			assert.Equal(t, 3, m.LevelIndex)
			assert.Equal(t, base, s)
		}},
		{"play is inert", 0, 1, func(t *testing.T, m MenuData, s cfg.Settings) {
			assert.Equal(t, 0, m.LevelIndex)
			assert.Equal(t, base, s)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMenuData(0)
			m.SelectedIndex = tt.row
			s := m.Adjust(base, tt.dir, 4)
			tt.expect(t, m, s)
		})
	}
}

func TestMenuVolumeClamps(t *testing.T) {
	m := NewMenuData(0)
	m.SelectedIndex = 2
	s := cfg.Settings{Volume: 95, FrameRateIndex: 1}
	s = m.Adjust(s, 1, 1)
	assert.Equal(t, 100, s.Volume)
}
