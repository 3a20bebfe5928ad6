package archetypes

import (
	"github.com/ModricFX/JumpScape-sub000/components"
	cfg "github.com/ModricFX/JumpScape-sub000/config"
	"github.com/ModricFX/JumpScape-sub000/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Platform,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
	)
	Monster = newArchetype(
		tags.Monster,
		components.Monster,
	)
	Ghost = newArchetype(
		tags.Ghost,
		components.Ghost,
	)
	Key = newArchetype(
		tags.Key,
		components.Item,
	)
	Door = newArchetype(
		tags.Door,
		components.Door,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
		components.Clock,
		components.Input,
		components.Audio,
	)
	Camera = newArchetype(
		components.Camera,
		components.ScreenShake,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
