package factory

import (
	"math"

	"github.com/ModricFX/JumpScape-sub000/archetypes"
	"github.com/ModricFX/JumpScape-sub000/components"
	cfg "github.com/ModricFX/JumpScape-sub000/config"
	"github.com/ModricFX/JumpScape-sub000/shared/gamemath"
	"github.com/ModricFX/JumpScape-sub000/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level singleton that also carries the clock, input
// and audio queues.
func CreateLevel(ecs *ecs.ECS, lvl *leveldata.Level, index int, masterVolume float64) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	bounds := LevelBounds(lvl)
	components.Level.SetValue(level, components.LevelData{
		Name:        lvl.Name,
		Index:       index,
		Outcome:     components.LevelPlaying,
		Bounds:      bounds,
		SpaceWidth:  math.Ceil(bounds.Right()),
		SpaceHeight: math.Ceil(bounds.Bottom()),
	})
	components.Audio.SetValue(level, components.AudioData{MasterVolume: masterVolume})

	return level
}

// LevelBounds is the screen extended to cover every platform, door and ghost.
func LevelBounds(lvl *leveldata.Level) gamemath.Rect {
	minX, minY := 0.0, 0.0
	maxX, maxY := float64(cfg.C.Width), float64(cfg.C.Height)

	grow := func(r gamemath.Rect) {
		minX = math.Min(minX, r.X)
		minY = math.Min(minY, r.Y)
		maxX = math.Max(maxX, r.Right())
		maxY = math.Max(maxY, r.Bottom())
	}
	for _, p := range lvl.Platforms {
		length := p.Length
		if length <= 0 {
			length = cfg.Platform.DefaultLength
		}
		grow(gamemath.NewRect(p.X, p.Y, length, cfg.Platform.Height))
	}
	if lvl.Door != nil {
		grow(gamemath.NewRect(lvl.Door.X, lvl.Door.Y, cfg.Item.DoorWidth, cfg.Item.DoorHeight))
	}
	for _, g := range lvl.Ghosts {
		grow(gamemath.NewRect(g.X, g.Y, cfg.Ghost.Width, cfg.Ghost.Height))
	}
	return gamemath.NewRect(minX, minY, maxX-minX, maxY-minY)
}

// BuildLevel populates an empty world from a level descriptor. Platforms are
// created in file order, which fixes their collision order.
func BuildLevel(ecs *ecs.ECS, lvl *leveldata.Level, index int, settings cfg.Settings) *donburi.Entry {
	master := settings.VolumeScale()

	level := CreateLevel(ecs, lvl, index, master)
	data := components.Level.Get(level)
	CreateSpace(ecs, int(data.SpaceWidth), int(data.SpaceHeight), spaceCellSize, spaceCellSize)
	CreateCamera(ecs)

	for i, spec := range lvl.Platforms {
		platform := CreatePlatform(ecs, i, spec, master)
		if spec.HasMonster {
			CreateMonster(ecs, components.Platform.Get(platform).Bounds())
		}
	}
	for _, g := range lvl.Ghosts {
		CreateGhost(ecs, g)
	}
	if lvl.Key != nil {
		CreateKey(ecs, *lvl.Key)
	}
	if lvl.Door != nil {
		CreateDoor(ecs, *lvl.Door)
	}
	CreatePlayer(ecs, lvl.PlayerSpawn.X, lvl.PlayerSpawn.Y)

	return level
}
