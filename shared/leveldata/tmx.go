package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from Tiled maps.
const (
	GroupPlayerSpawn = "PlayerSpawn"
	GroupKey         = "Key"
	GroupDoor        = "Door"
	GroupPlatforms   = "Platforms"
	GroupGhosts      = "Ghosts"
)

// LoadTMX parses a Tiled map whose object groups carry the same fields as the
// text format. Platform length comes from the object width; flags and the
// ghost radius are custom properties. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	lvl := &Level{Name: stem(tmxPath)}
	hasSpawn := false

	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			switch og.Name {
			case GroupPlayerSpawn:
				if !hasSpawn {
					lvl.PlayerSpawn = Point{X: o.X, Y: o.Y}
					hasSpawn = true
				}
			case GroupKey:
				lvl.Key = &Point{X: o.X, Y: o.Y}
			case GroupDoor:
				lvl.Door = &DoorSpec{X: o.X, Y: o.Y, Locked: o.Properties.GetBool("locked")}
			case GroupPlatforms:
				length := o.Width
				if length <= 0 {
					length = DefaultPlatformLength
				}
				lvl.Platforms = append(lvl.Platforms, PlatformSpec{
					X:            o.X,
					Y:            o.Y,
					Length:       length,
					HasMonster:   o.Properties.GetBool("hasMonster"),
					Disappearing: o.Properties.GetBool("disappearing"),
				})
			case GroupGhosts:
				radius := o.Properties.GetFloat("radius")
				if radius <= 0 {
					radius = DefaultGhostRadius
				}
				lvl.Ghosts = append(lvl.Ghosts, GhostSpec{X: o.X, Y: o.Y, Radius: radius})
			}
		}
	}

	// Tiled does not guarantee object order; keep platforms stable top-left first.
	sort.SliceStable(lvl.Platforms, func(i, j int) bool {
		if lvl.Platforms[i].Y != lvl.Platforms[j].Y {
			return lvl.Platforms[i].Y < lvl.Platforms[j].Y
		}
		return lvl.Platforms[i].X < lvl.Platforms[j].X
	})

	if !hasSpawn {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoPlayerSpawn)
	}
	return lvl, nil
}

func stem(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}
