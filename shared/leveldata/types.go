// Package leveldata parses level descriptions from the line-based text format
// and from Tiled maps. It has no dependencies on ebitengine, donburi, or
// resolv. Pure data only.
package leveldata

import "errors"

// ErrNoPlayerSpawn is returned when a level does not define where the player
// starts.
var ErrNoPlayerSpawn = errors.New("leveldata: no player spawn defined")

// Defaults for malformed or missing numeric fields.
const (
	DefaultPlatformLength = 100
	DefaultGhostRadius    = 150
)

// Line keys of the text format.
const (
	KeyPlayerSpawn = "PlayerSpawn"
	KeyKey         = "KeyPosition"
	KeyDoor        = "DoorPosition"
	KeyPlatform    = "Platform"
	KeyGhost       = "Ghost"
)

// Placeholder tokens substituted from the window size before parsing.
const (
	TokenGroundY      = "groundY"
	TokenGroundLength = "groundLength"
)

// Point is a position in world units.
type Point struct {
	X, Y float64
}

// PlatformSpec describes one platform line.
type PlatformSpec struct {
	X, Y         float64
	Length       float64
	HasMonster   bool
	Disappearing bool
}

// DoorSpec describes the level exit.
type DoorSpec struct {
	X, Y   float64
	Locked bool
}

// GhostSpec describes a ghost's home and activation radius.
type GhostSpec struct {
	X, Y   float64
	Radius float64
}

// Level is everything needed to build a playable world.
type Level struct {
	Name        string
	PlayerSpawn Point
	Key         *Point
	Door        *DoorSpec
	Platforms   []PlatformSpec
	Ghosts      []GhostSpec
}

// Window is the screen size the ground placeholders are computed from.
type Window struct {
	Width, Height float64
}

// GroundMargin is the distance from the bottom of the window to the top of
// the ground platform.
const GroundMargin = 40

// GroundY is the value substituted for groundY.
func (w Window) GroundY() float64 {
	return w.Height - GroundMargin
}

// GroundLength is the value substituted for groundLength.
func (w Window) GroundLength() float64 {
	return w.Width
}
