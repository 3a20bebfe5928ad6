package components

import (
	"github.com/ModricFX/JumpScape-sub000/shared/gamemath"
	"github.com/yohamta/donburi"
)

// LevelOutcome is what the scene driver polls after each tick.
type LevelOutcome int

const (
	LevelPlaying LevelOutcome = iota
	LevelComplete
	LevelFailed
)

func (o LevelOutcome) String() string {
	switch o {
	case LevelPlaying:
		return "playing"
	case LevelComplete:
		return "complete"
	case LevelFailed:
		return "failed"
	}
	return "unknown"
}

type LevelData struct {
	Name    string
	Index   int
	Outcome LevelOutcome

	// World extent used by the camera and the kill plane.
	Bounds gamemath.Rect
	// Extent of the collision space, which always starts at the origin.
	SpaceWidth  float64
	SpaceHeight float64

	// Time spent in the level, in seconds.
	Elapsed float64
}

var Level = donburi.NewComponentType[LevelData]()
