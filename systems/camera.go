package systems

import (
	"math"

	"github.com/ModricFX/JumpScape-sub000/components"
	cfg "github.com/ModricFX/JumpScape-sub000/config"
	"github.com/ModricFX/JumpScape-sub000/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera centre toward the player, kept inside the
// level bounds, and decays any screen shake.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	updateScreenShake(cameraEntry, delta(e))

	tx, ty, ok := cameraTarget(e)
	if !ok {
		return
	}
	camera.Position.X += (tx - camera.Position.X) * cfg.Camera.FollowSmoothing
	camera.Position.Y += (ty - camera.Position.Y) * cfg.Camera.FollowSmoothing
}

// SnapCamera moves the camera straight to its target, used when a level
// starts.
func SnapCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	if tx, ty, ok := cameraTarget(e); ok {
		camera := components.Camera.Get(cameraEntry)
		camera.Position.X, camera.Position.Y = tx, ty
	}
}

func cameraTarget(e *ecs.ECS) (float64, float64, bool) {
	_, player, ok := GetPlayer(e)
	if !ok {
		return 0, 0, false
	}
	lvl := GetLevel(e)
	if lvl == nil {
		return 0, 0, false
	}

	pb := player.Bounds()
	halfW := float64(cfg.C.Width) / 2
	halfH := float64(cfg.C.Height) / 2
	b := lvl.Bounds

	// Bounds at least as large as the screen are guaranteed by the factory.
	tx := gamemath.Clamp(pb.CenterX(), b.X+halfW, math.Max(b.X+halfW, b.Right()-halfW))
	ty := gamemath.Clamp(pb.CenterY(), b.Y+halfH, math.Max(b.Y+halfH, b.Bottom()-halfH))
	return tx, ty, true
}

// CameraOffset returns the translation from world to screen space including
// the current shake.
func CameraOffset(e *ecs.ECS) (float64, float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	ox := float64(cfg.C.Width)/2 - camera.Position.X
	oy := float64(cfg.C.Height)/2 - camera.Position.Y

	if cameraEntry.HasComponent(components.ScreenShake) {
		dx, dy := shakeOffset(components.ScreenShake.Get(cameraEntry))
		ox += dx
		oy += dy
	}
	return ox, oy
}

// AddScreenShake starts a shake, keeping the stronger of an active one.
func AddScreenShake(e *ecs.ECS, intensity, duration float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok || !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}
	shake := components.ScreenShake.Get(cameraEntry)
	shake.Intensity = math.Max(shake.Intensity, intensity)
	shake.Remaining = math.Max(shake.Remaining, duration)
}

func updateScreenShake(cameraEntry *donburi.Entry, dt float64) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}
	shake := components.ScreenShake.Get(cameraEntry)
	if shake.Remaining <= 0 {
		return
	}
	shake.Elapsed += dt
	shake.Remaining -= dt
	if shake.Remaining <= 0 {
		*shake = components.ScreenShakeData{}
	}
}

func shakeOffset(shake *components.ScreenShakeData) (float64, float64) {
	if shake.Remaining <= 0 || cfg.Camera.ShakeDuration <= 0 {
		return 0, 0
	}
	amp := shake.Intensity * math.Min(1, shake.Remaining/cfg.Camera.ShakeDuration)
	return amp * math.Sin(shake.Elapsed*47), amp * math.Cos(shake.Elapsed*31)
}
