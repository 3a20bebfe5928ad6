package systems

import (
	"github.com/ModricFX/JumpScape-sub000/components"
	"github.com/yohamta/donburi/ecs"
)

// NewClockSystem advances the shared clock by a fixed step each tick.
func NewClockSystem(step float64) ecs.System {
	return func(e *ecs.ECS) {
		entry, ok := components.Clock.First(e.World)
		if !ok {
			return
		}
		clock := components.Clock.Get(entry)
		clock.Delta = step
		clock.Elapsed += step
		clock.Ticks++

		if lvl := GetLevel(e); lvl != nil && lvl.Outcome == components.LevelPlaying {
			lvl.Elapsed += step
		}
	}
}
