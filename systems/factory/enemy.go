package factory

import (
	"github.com/ModricFX/JumpScape-sub000/archetypes"
	"github.com/ModricFX/JumpScape-sub000/components"
	"github.com/ModricFX/JumpScape-sub000/shared/gamemath"
	"github.com/ModricFX/JumpScape-sub000/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMonster spawns a monster patrolling the given platform extent.
func CreateMonster(ecs *ecs.ECS, platform gamemath.Rect) *donburi.Entry {
	monster := archetypes.Monster.Spawn(ecs)
	components.Monster.SetValue(monster, components.NewMonsterData(platform))
	return monster
}

func CreateGhost(ecs *ecs.ECS, spec leveldata.GhostSpec) *donburi.Entry {
	ghost := archetypes.Ghost.Spawn(ecs)
	components.Ghost.SetValue(ghost, components.NewGhostData(spec.X, spec.Y, spec.Radius))
	return ghost
}
