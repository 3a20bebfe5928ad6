package config

import "github.com/hajimehoshi/ebiten/v2"

// FrameRateUnlimited marks the uncapped frame-rate option.
const FrameRateUnlimited = 0

// FrameRates are the selectable tick rates, indexed by Settings.FrameRateIndex.
var FrameRates = []int{30, 60, 120, FrameRateUnlimited}

// Settings holds the persisted user preferences.
type Settings struct {
	Volume         int  `json:"volume"` // 0..100
	FrameRateIndex int  `json:"frame_rate_index"`
	Fullscreen     bool `json:"fullscreen"`
}

// DefaultSettings returns the preferences used when nothing has been saved.
func DefaultSettings() Settings {
	return Settings{
		Volume:         50,
		FrameRateIndex: 1,
		Fullscreen:     false,
	}
}

// Normalize clamps out-of-range values read from disk.
func (s Settings) Normalize() Settings {
	if s.Volume < 0 {
		s.Volume = 0
	}
	if s.Volume > 100 {
		s.Volume = 100
	}
	if s.FrameRateIndex < 0 || s.FrameRateIndex >= len(FrameRates) {
		s.FrameRateIndex = DefaultSettings().FrameRateIndex
	}
	return s
}

// VolumeScale returns the master volume as a 0..1 factor.
func (s Settings) VolumeScale() float64 {
	return float64(s.Normalize().Volume) / 100
}

// TPS returns the ebiten tick rate for the chosen frame rate. The unlimited
// option keeps 60 TPS and only uncaps drawing.
func (s Settings) TPS() int {
	fps := FrameRates[s.Normalize().FrameRateIndex]
	if fps == FrameRateUnlimited {
		return ebiten.DefaultTPS
	}
	return fps
}

// VSync reports whether drawing should stay synced to the display.
func (s Settings) VSync() bool {
	return FrameRates[s.Normalize().FrameRateIndex] != FrameRateUnlimited
}
