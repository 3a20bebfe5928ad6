package systems

import (
	cfg "github.com/ModricFX/JumpScape-sub000/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// NewInputSystem swaps the action buffers and polls src.
// Must run BEFORE UpdatePlayer in the system order.
func NewInputSystem(src InputSource) ecs.System {
	return func(e *ecs.ECS) {
		input := GetInput(e)
		input.Previous = input.Current
		input.Current = src.Poll()
	}
}

// EbitenInput polls the keyboard and every standard-layout gamepad through
// the configured bindings.
type EbitenInput struct {
	gamepadIDs []ebiten.GamepadID
}

func (in *EbitenInput) Poll() [cfg.ActionCount]bool {
	var held [cfg.ActionCount]bool

	in.gamepadIDs = ebiten.AppendGamepadIDs(in.gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				held[actionID] = true
			}
		}
		for _, gpID := range in.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					held[actionID] = true
				}
			}
		}
	}

	// Merge the left stick into movement
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range in.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -deadzone {
			held[cfg.ActionMoveLeft] = true
		}
		if horizontal > deadzone {
			held[cfg.ActionMoveRight] = true
		}
	}

	return held
}
