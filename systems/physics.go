package systems

import (
	"github.com/ModricFX/JumpScape-sub000/components"
	cfg "github.com/ModricFX/JumpScape-sub000/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates gravity and velocity for the player and kills a
// player that falls below the level.
func UpdatePhysics(e *ecs.ECS) {
	entry, player, ok := GetPlayer(e)
	if !ok {
		return
	}
	lvl := GetLevel(e)

	// A dead player out of the world stops moving.
	if player.Dead && lvl != nil && player.Position.Y > lvl.Bounds.Bottom() {
		return
	}

	player.Integrate(float64(cfg.C.Width))

	if lvl != nil && !player.Dead && player.Position.Y > lvl.Bounds.Bottom() {
		player.Kill()
		audio := getAudio(e)
		audio.Queue(cfg.SoundHurt, audio.MasterVolume, 0)
	}

	syncObject(entry, player)
}

// syncObject moves the player's collision body to its logical position.
func syncObject(entry *donburi.Entry, player *components.PlayerData) {
	if !entry.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(entry)
	if obj.Object == nil {
		return
	}
	obj.X, obj.Y = player.Position.X, player.Position.Y
	obj.Update()
}
