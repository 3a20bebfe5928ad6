package systems

import (
	cfg "github.com/ModricFX/JumpScape-sub000/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer applies this tick's movement intent and advances the player's
// timers. Gravity is applied later by UpdatePhysics.
func UpdatePlayer(e *ecs.ECS) {
	_, player, ok := GetPlayer(e)
	if !ok {
		return
	}

	input := GetInput(e)
	if player.HandleInput(input.Intent(), float64(cfg.C.Width)) {
		audio := getAudio(e)
		audio.Queue(cfg.SoundJump, audio.MasterVolume, 0)
	}
	player.UpdateTimers(delta(e))
}
