package factory

import (
	"github.com/ModricFX/JumpScape-sub000/archetypes"
	"github.com/ModricFX/JumpScape-sub000/components"
	"github.com/ModricFX/JumpScape-sub000/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateKey(ecs *ecs.ECS, at leveldata.Point) *donburi.Entry {
	key := archetypes.Key.Spawn(ecs)
	components.Item.SetValue(key, components.NewKeyData(at.X, at.Y))
	return key
}

func CreateDoor(ecs *ecs.ECS, spec leveldata.DoorSpec) *donburi.Entry {
	door := archetypes.Door.Spawn(ecs)
	components.Door.SetValue(door, components.NewDoorData(spec.X, spec.Y, spec.Locked))
	return door
}
