package systems

import (
	"math/rand"

	"github.com/ModricFX/JumpScape-sub000/components"
	cfg "github.com/ModricFX/JumpScape-sub000/config"
	"github.com/ModricFX/JumpScape-sub000/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateParticles moves debris and drops the pieces whose lifetime ran out.
// It runs first in the tick so expired debris never reaches a renderer.
func UpdateParticles(e *ecs.ECS) {
	dt := delta(e)
	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		components.Platform.Get(entry).UpdateParticles(dt)
	})
}

// NewPlatformSystem advances every disappearing platform. The crack loop is
// requested while a platform counts down and the break sound plays once,
// both attenuated by the distance to the player.
func NewPlatformSystem(rng *rand.Rand) ecs.System {
	return func(e *ecs.ECS) {
		dt := delta(e)
		audio := getAudio(e)

		var lx, ly float64
		if _, player, ok := GetPlayer(e); ok {
			b := player.Bounds()
			lx, ly = b.CenterX(), b.CenterY()
		}

		tags.Platform.Each(e.World, func(entry *donburi.Entry) {
			platform := components.Platform.Get(entry)
			ev := platform.Advance(dt, rng)

			switch {
			case ev == components.PlatformEventBroke:
				vol, pan := platform.SoundLevel(lx, ly)
				audio.Queue(cfg.SoundBreak, vol, pan)
			case platform.Cracking():
				vol, pan := platform.SoundLevel(lx, ly)
				audio.Loop(platform.Index, cfg.SoundCrack, vol, pan)
			}
		})
	}
}
