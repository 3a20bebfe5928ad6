package systems

import (
	"github.com/ModricFX/JumpScape-sub000/components"
	"github.com/ModricFX/JumpScape-sub000/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMonsters runs the patrol and sight checks for every monster.
func UpdateMonsters(e *ecs.ECS) {
	_, player, ok := GetPlayer(e)
	if !ok {
		return
	}
	pb := player.Bounds()
	dt := delta(e)

	tags.Monster.Each(e.World, func(entry *donburi.Entry) {
		components.Monster.Get(entry).Update(dt, pb)
	})
}

// UpdateGhosts runs the chase/return state machine for every ghost.
func UpdateGhosts(e *ecs.ECS) {
	_, player, ok := GetPlayer(e)
	if !ok {
		return
	}
	pb := player.Bounds()
	invincible := player.IsInvincible()
	dt := delta(e)

	tags.Ghost.Each(e.World, func(entry *donburi.Entry) {
		components.Ghost.Get(entry).Update(dt, pb, invincible)
	})
}
