package components

import (
	cfg "github.com/ModricFX/JumpScape-sub000/config"
	"github.com/yohamta/donburi"
)

// SoundRequest is one sound to play at a volume (0..1) and pan (-1..1).
type SoundRequest struct {
	ID     cfg.SoundID
	Volume float64
	Pan    float64
}

// AudioData stores global audio state (singleton component). Gameplay systems
// queue requests; the audio system flushes them to the sink at the end of the
// tick.
type AudioData struct {
	MasterVolume float64 // 0.0 - 1.0
	PendingSFX   []SoundRequest
	// Loops holds the looping sounds wanted this tick, keyed by source.
	Loops map[int]SoundRequest
}

var Audio = donburi.NewComponentType[AudioData]()

// Queue adds a one-shot sound.
func (a *AudioData) Queue(id cfg.SoundID, volume, pan float64) {
	a.PendingSFX = append(a.PendingSFX, SoundRequest{ID: id, Volume: volume, Pan: pan})
}

// Loop requests that a looping sound keyed by source keeps playing.
func (a *AudioData) Loop(source int, id cfg.SoundID, volume, pan float64) {
	if a.Loops == nil {
		a.Loops = make(map[int]SoundRequest)
	}
	a.Loops[source] = SoundRequest{ID: id, Volume: volume, Pan: pan}
}
