package factory

import (
	"github.com/ModricFX/JumpScape-sub000/archetypes"
	"github.com/ModricFX/JumpScape-sub000/components"
	"github.com/ModricFX/JumpScape-sub000/shared/leveldata"
	"github.com/ModricFX/JumpScape-sub000/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform spawns a platform and registers its body in the space.
// masterVolume scales the platform's crack and break sounds.
func CreatePlatform(ecs *ecs.ECS, index int, spec leveldata.PlatformSpec, masterVolume float64) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	data := components.NewPlatformData(index, spec.X, spec.Y, spec.Length, spec.Disappearing, spec.HasMonster, masterVolume)
	components.Platform.SetValue(platform, data)

	b := data.Bounds()
	obj := resolv.NewObject(b.X, b.Y, b.W, b.H, tags.ResolvPlatform)
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return platform
}
