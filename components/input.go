package components

import (
	cfg "github.com/ModricFX/JumpScape-sub000/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state
}

var Input = donburi.NewComponentType[InputData]()

func (in *InputData) Pressed(a cfg.ActionID) bool {
	return in.Current[a]
}

func (in *InputData) JustPressed(a cfg.ActionID) bool {
	return in.Current[a] && !in.Previous[a]
}

// Intent is the player's movement request for this tick.
func (in *InputData) Intent() PlayerIntent {
	return PlayerIntent{
		Left:  in.Pressed(cfg.ActionMoveLeft),
		Right: in.Pressed(cfg.ActionMoveRight),
		Jump:  in.Pressed(cfg.ActionJump),
	}
}
