package systems

import (
	"github.com/ModricFX/JumpScape-sub000/components"
	cfg "github.com/ModricFX/JumpScape-sub000/config"
	"github.com/ModricFX/JumpScape-sub000/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// InputSource reports which actions are held this tick.
type InputSource interface {
	Poll() [cfg.ActionCount]bool
}

// AudioSink plays the sounds queued by gameplay systems.
type AudioSink interface {
	Play(id cfg.SoundID, volume, pan float64)
	SetLoop(key int, id cfg.SoundID, volume, pan float64)
	StopLoop(key int)
}

// GetLevel returns the level singleton, or nil before a level is built.
func GetLevel(e *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

// GetPlayer returns the player entry and its data.
func GetPlayer(e *ecs.ECS) (*donburi.Entry, *components.PlayerData, bool) {
	entry, ok := tags.Player.First(e.World)
	if !ok {
		return nil, nil, false
	}
	return entry, components.Player.Get(entry), true
}

// GetInput returns the action buffers, creating them if needed.
func GetInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

func getAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
	}
	return components.Audio.Get(entry)
}

// delta is the current tick length in seconds.
func delta(e *ecs.ECS) float64 {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).Delta
}

// IsPlaying reports whether the level has neither been completed nor failed.
func IsPlaying(e *ecs.ECS) bool {
	lvl := GetLevel(e)
	return lvl != nil && lvl.Outcome == components.LevelPlaying
}

// WhilePlaying wraps a system so it stops once the level has an outcome.
func WhilePlaying(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !IsPlaying(e) {
			return
		}
		system(e)
	}
}
