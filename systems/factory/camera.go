package factory

import (
	"github.com/ModricFX/JumpScape-sub000/archetypes"
	"github.com/ModricFX/JumpScape-sub000/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{})
	return camera
}
