package components

import (
	"math"

	cfg "github.com/ModricFX/JumpScape-sub000/config"
	"github.com/ModricFX/JumpScape-sub000/shared/gamemath"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// PlayerIntent is the per-tick movement request read from the input source.
type PlayerIntent struct {
	Left  bool
	Right bool
	Jump  bool
}

// PlayerData is the player controller. Position and velocity are in world
// units; horizontal stepping, gravity and jump are applied once per tick while
// every timer counts seconds.
type PlayerData struct {
	Position dmath.Vec2
	Velocity dmath.Vec2
	Width    float64
	Height   float64
	Scale    float64
	Facing   Direction

	Health    int // half hearts
	MaxHealth int

	Invincible      bool
	InvincibleTimer float64
	Flash           bool // toggles while invincible
	flashTimer      float64

	KnockbackTimer float64

	OnPlatform bool
	Jumping    bool
	HasKey     bool
	Inventory  Inventory

	Dead          bool
	DeathRotation float64

	SampledY        float64
	fallSampleTimer float64
}

var Player = donburi.NewComponentType[PlayerData]()

// NewPlayerData returns a player at full health standing at (x, y).
func NewPlayerData(x, y float64) PlayerData {
	return PlayerData{
		Position:  dmath.NewVec2(x, y),
		Width:     cfg.Player.Width,
		Height:    cfg.Player.Height,
		Scale:     1,
		Facing:    DirectionRight,
		Health:    cfg.Player.MaxHealth,
		MaxHealth: cfg.Player.MaxHealth,
		Inventory: NewSlotInventory(cfg.Player.InventorySlots),
		SampledY:  y,
	}
}

func (p *PlayerData) Bounds() gamemath.Rect {
	return gamemath.NewRect(p.Position.X, p.Position.Y, p.Width, p.Height)
}

func (p *PlayerData) IsInvincible() bool { return p.Invincible }
func (p *PlayerData) IsDead() bool       { return p.Dead }

// IsFalling compares the current height with the last periodic sample, so a
// one-tick bounce does not register.
func (p *PlayerData) IsFalling() bool {
	return p.Position.Y > p.SampledY
}

// InKnockback reports whether input and ground friction are suppressed.
func (p *PlayerData) InKnockback() bool {
	return p.KnockbackTimer > 0
}

// HandleInput applies horizontal stepping and jumping for one tick. The
// result is clamped to [0, screenWidth - Width]. It reports whether a jump
// started.
func (p *PlayerData) HandleInput(intent PlayerIntent, screenWidth float64) bool {
	if p.Dead {
		return false
	}

	if !p.InKnockback() {
		if intent.Left && !intent.Right {
			p.Position.X -= cfg.Player.MoveStep
			p.Facing = DirectionLeft
		} else if intent.Right && !intent.Left {
			p.Position.X += cfg.Player.MoveStep
			p.Facing = DirectionRight
		}
	}
	p.clampX(screenWidth)

	if intent.Jump && p.OnPlatform {
		p.Velocity.Y = cfg.Player.JumpStrength
		p.OnPlatform = false
		p.Jumping = true
		return true
	}
	return false
}

// Integrate applies gravity and velocity once.
func (p *PlayerData) Integrate(screenWidth float64) {
	if !p.InKnockback() && p.OnPlatform {
		p.Velocity.X = 0
	}
	p.Velocity.Y += cfg.Player.Gravity
	p.Position = p.Position.Add(p.Velocity)
	p.clampX(screenWidth)
}

func (p *PlayerData) clampX(screenWidth float64) {
	maxX := screenWidth - p.Width
	if maxX < 0 {
		maxX = 0
	}
	p.Position.X = gamemath.Clamp(p.Position.X, 0, maxX)
}

// UpdateTimers advances knockback, invincibility, flash, fall sampling and the
// death rotation by dt seconds.
func (p *PlayerData) UpdateTimers(dt float64) {
	if p.KnockbackTimer > 0 {
		p.KnockbackTimer -= dt
		if p.KnockbackTimer < 0 {
			p.KnockbackTimer = 0
		}
	}

	if p.Invincible {
		p.InvincibleTimer -= dt
		p.flashTimer += dt
		for p.flashTimer >= cfg.Player.FlashInterval {
			p.flashTimer -= cfg.Player.FlashInterval
			p.Flash = !p.Flash
		}
		if p.InvincibleTimer <= 0 {
			p.Invincible = false
			p.InvincibleTimer = 0
			p.Flash = false
			p.flashTimer = 0
		}
	}

	p.fallSampleTimer += dt
	if p.fallSampleTimer >= cfg.Player.FallSampleInterval {
		p.fallSampleTimer = 0
		p.SampledY = p.Position.Y
	}

	if p.Dead && p.OnPlatform {
		p.DeathRotation = math.Max(p.DeathRotation-cfg.Player.DeathRotationSpeed*dt, -math.Pi/2)
	}
}

// LoseHeart applies amount hearts of damage. direction picks the knockback
// sign. It is a no-op while invincible and reports whether damage landed.
func (p *PlayerData) LoseHeart(amount, direction float64) bool {
	if p.Invincible || p.Dead {
		return false
	}

	p.Health -= int(math.Round(amount * 2))
	if p.Health < 0 {
		p.Health = 0
	}

	p.Velocity.X, p.Velocity.Y = gamemath.Knockback(direction, cfg.Player.KnockbackX, cfg.Player.KnockbackY)
	p.KnockbackTimer = cfg.Player.KnockbackDuration
	p.OnPlatform = false

	p.Invincible = true
	p.InvincibleTimer = cfg.Player.InvincibilityDuration
	p.flashTimer = 0
	p.Flash = false

	if p.Health <= 0 {
		p.Dead = true
	}
	return true
}

// Kill sets health to zero without knockback.
func (p *PlayerData) Kill() {
	p.Health = 0
	p.Dead = true
}

// Land places the player on top of a surface.
func (p *PlayerData) Land(top float64) {
	p.Position.Y = top - p.Height
	p.Velocity.Y = 0
	p.OnPlatform = true
	p.Jumping = false
}

// HitCeiling pushes the player below a surface.
func (p *PlayerData) HitCeiling(bottom float64) {
	p.Position.Y = bottom
	p.Velocity.Y = 0
}

// Collect stores an item and raises HasKey for keys.
func (p *PlayerData) Collect(kind string) bool {
	if !p.Inventory.AddItem(kind) {
		return false
	}
	if kind == ItemKey {
		p.HasKey = true
	}
	return true
}

// SyncKey refreshes HasKey after the inventory changed.
func (p *PlayerData) SyncKey() {
	p.HasKey = p.Inventory.Contains(ItemKey)
}
