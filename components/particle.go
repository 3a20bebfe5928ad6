package components

import (
	"image/color"
	"math/rand"

	cfg "github.com/ModricFX/JumpScape-sub000/config"
	"github.com/ModricFX/JumpScape-sub000/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// Particle is a piece of platform debris. It lives in its platform's list and
// is dropped once Life reaches zero.
type Particle struct {
	Position dmath.Vec2
	Velocity dmath.Vec2 // units/s
	Life     float64
	MaxLife  float64
	Color    color.RGBA
	Scale    float64
}

// NewDebris returns a particle flung upward with a random spread.
func NewDebris(x, y float64, rng *rand.Rand) Particle {
	c := cfg.Platform
	life := c.ParticleMinLife + rng.Float64()*(c.ParticleMaxLife-c.ParticleMinLife)
	vx := (rng.Float64()*2 - 1) * c.ParticleSpeedX
	vy := -(c.ParticleMinUp + rng.Float64()*(c.ParticleMaxUp-c.ParticleMinUp))
	return Particle{
		Position: dmath.NewVec2(x, y),
		Velocity: dmath.NewVec2(vx, vy),
		Life:     life,
		MaxLife:  life,
		Color:    c.DisappearingTint,
		Scale:    0.5 + rng.Float64(),
	}
}

func (p *Particle) Update(dt float64) {
	p.Velocity.Y += cfg.Platform.ParticleGravity * dt
	p.Position = p.Position.Add(p.Velocity.MulScalar(dt))
	p.Life -= dt
}

func (p *Particle) Alive() bool {
	return p.Life > 0
}

// Alpha is the remaining fraction of the lifetime.
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return gamemath.Clamp(p.Life/p.MaxLife, 0, 1)
}
