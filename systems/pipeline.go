package systems

import (
	"math/rand"

	cfg "github.com/ModricFX/JumpScape-sub000/config"
	"github.com/yohamta/donburi/ecs"
)

// Pipeline is what a scene needs to run a level.
type Pipeline struct {
	Input InputSource
	Audio *AudioSystem
	Rand  *rand.Rand
	// Step is the tick length in seconds.
	Step  float64
	Debug bool
}

// Register adds the systems in tick order and the renderers by layer.
func (p Pipeline) Register(e *ecs.ECS) {
	e.AddSystem(NewClockSystem(p.Step))
	e.AddSystem(NewInputSystem(p.Input))
	e.AddSystem(WhilePlaying(UpdateParticles))
	e.AddSystem(WhilePlaying(UpdatePlayer))
	e.AddSystem(WhilePlaying(UpdateMonsters))
	e.AddSystem(WhilePlaying(UpdateGhosts))
	e.AddSystem(WhilePlaying(UpdatePhysics))
	e.AddSystem(WhilePlaying(ResolvePlatformCollisions))
	e.AddSystem(WhilePlaying(UpdateInteractions))
	e.AddSystem(WhilePlaying(NewPlatformSystem(p.Rand)))
	e.AddSystem(UpdateOutcome)
	e.AddSystem(UpdateCamera)
	if p.Audio != nil {
		e.AddSystem(p.Audio.Update)
	}

	e.AddRenderer(cfg.Default, DrawWorld)
	if p.Debug {
		e.AddRenderer(cfg.Default, DrawDebug)
	}
	e.AddRenderer(cfg.HUDLayer, DrawHUD)
	e.AddRenderer(cfg.HUDLayer, DrawOutcome)
}
