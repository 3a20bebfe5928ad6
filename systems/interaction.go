package systems

import (
	"math"

	"github.com/ModricFX/JumpScape-sub000/components"
	cfg "github.com/ModricFX/JumpScape-sub000/config"
	"github.com/ModricFX/JumpScape-sub000/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInteractions handles every player contact that is not a platform:
// key pickup, the door, and damage from monsters and ghosts.
func UpdateInteractions(e *ecs.ECS) {
	_, player, ok := GetPlayer(e)
	if !ok {
		return
	}
	dt := delta(e)
	audio := getAudio(e)
	input := GetInput(e)
	lvl := GetLevel(e)

	tags.Key.Each(e.World, func(entry *donburi.Entry) {
		item := components.Item.Get(entry)
		item.Animate(dt)
		if player.Dead || !item.CanCollect(player.Bounds()) {
			return
		}
		if player.Collect(item.Kind) && item.Collect() {
			audio.Queue(cfg.SoundPickup, audio.MasterVolume, 0)
		}
	})

	tags.Door.Each(e.World, func(entry *donburi.Entry) {
		door := components.Door.Get(entry)
		door.Animate(dt)
		if player.Dead || !input.JustPressed(cfg.ActionInteract) || !door.Bounds().Intersects(player.Bounds()) {
			return
		}
		switch door.Interact(player.Inventory) {
		case components.DoorEventUnlocked:
			player.SyncKey()
			audio.Queue(cfg.SoundDoor, audio.MasterVolume, 0)
		case components.DoorEventOpened:
			audio.Queue(cfg.SoundDoor, audio.MasterVolume, 0)
			if lvl != nil {
				lvl.Outcome = components.LevelComplete
			}
		}
	})

	tags.Monster.Each(e.World, func(entry *donburi.Entry) {
		monster := components.Monster.Get(entry)
		if !monster.Bounds().Intersects(player.Bounds()) {
			return
		}
		amount, direction := monster.ContactDamage(player.Bounds())
		hurtPlayer(e, player, amount, direction)
	})

	tags.Ghost.Each(e.World, func(entry *donburi.Entry) {
		ghost := components.Ghost.Get(entry)
		if player.IsInvincible() || player.Dead || !ghost.Bounds().Intersects(player.Bounds()) {
			return
		}
		amount, direction := ghost.OnContact()
		hurtPlayer(e, player, amount, direction)
	})
}

func hurtPlayer(e *ecs.ECS, player *components.PlayerData, amount, direction float64) {
	if !player.LoseHeart(amount, direction) {
		return
	}
	audio := getAudio(e)
	audio.Queue(cfg.SoundHurt, audio.MasterVolume, 0)
	AddScreenShake(e, cfg.Camera.ShakeIntensity, cfg.Camera.ShakeDuration)
}

// UpdateOutcome fails the level once the death animation has finished or the
// player has dropped out of the world.
func UpdateOutcome(e *ecs.ECS) {
	lvl := GetLevel(e)
	_, player, ok := GetPlayer(e)
	if lvl == nil || !ok || lvl.Outcome != components.LevelPlaying || !player.Dead {
		return
	}
	if player.DeathRotation <= -math.Pi/2 || player.Position.Y > lvl.Bounds.Bottom() {
		lvl.Outcome = components.LevelFailed
	}
}
