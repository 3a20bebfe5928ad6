package systems

import (
	cfg "github.com/ModricFX/JumpScape-sub000/config"
	"github.com/ModricFX/JumpScape-sub000/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// AudioSystem flushes the sounds queued during a tick to a sink and keeps
// track of which loops the sink is playing.
type AudioSystem struct {
	sink   AudioSink
	active map[int]bool
}

func NewAudioSystem(sink AudioSink) *AudioSystem {
	return &AudioSystem{sink: sink, active: make(map[int]bool)}
}

// Update plays queued one-shots and refreshes loops. Loops that were not
// requested again this tick are stopped.
func (s *AudioSystem) Update(e *ecs.ECS) {
	audio := getAudio(e)

	for _, req := range audio.PendingSFX {
		if vol := scaledVolume(req.ID, req.Volume); vol > 0 {
			s.sink.Play(req.ID, vol, req.Pan)
		}
	}
	audio.PendingSFX = audio.PendingSFX[:0]

	for key := range s.active {
		if _, ok := audio.Loops[key]; !ok {
			s.sink.StopLoop(key)
			delete(s.active, key)
		}
	}
	for key, req := range audio.Loops {
		s.sink.SetLoop(key, req.ID, scaledVolume(req.ID, req.Volume), req.Pan)
		s.active[key] = true
	}
	clear(audio.Loops)
}

// StopAll silences every loop, used when a level is torn down.
func (s *AudioSystem) StopAll() {
	for key := range s.active {
		s.sink.StopLoop(key)
		delete(s.active, key)
	}
}

func scaledVolume(id cfg.SoundID, volume float64) float64 {
	if mult, ok := cfg.Audio.VolumeMultipliers[id]; ok {
		volume *= mult
	}
	return gamemath.Clamp(volume, 0, 1)
}
