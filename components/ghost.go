package components

import (
	"math"

	cfg "github.com/ModricFX/JumpScape-sub000/config"
	"github.com/ModricFX/JumpScape-sub000/shared/gamemath"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type GhostState int

const (
	GhostAtHome GhostState = iota
	GhostChasing
	GhostReturning
)

func (s GhostState) String() string {
	switch s {
	case GhostAtHome:
		return "at_home"
	case GhostChasing:
		return "chasing"
	case GhostReturning:
		return "returning"
	}
	return "unknown"
}

// GhostData guards an area around its home. Raw is the logical position; the
// Smoothed position trails it and is what gets drawn and collided.
type GhostData struct {
	Home     dmath.Vec2
	Radius   float64
	Raw      dmath.Vec2
	Smoothed dmath.Vec2
	Width    float64
	Height   float64

	State   GhostState
	Facing  Direction
	MoveDir Direction // last horizontal movement sense

	hoverTime float64
}

var Ghost = donburi.NewComponentType[GhostData]()

func NewGhostData(x, y, radius float64) GhostData {
	if radius <= 0 {
		radius = cfg.Ghost.DefaultRadius
	}
	home := dmath.NewVec2(x, y)
	return GhostData{
		Home:     home,
		Radius:   radius,
		Raw:      home,
		Smoothed: home,
		Width:    cfg.Ghost.Width,
		Height:   cfg.Ghost.Height,
		State:    GhostAtHome,
		Facing:   DirectionLeft,
		MoveDir:  DirectionLeft,
	}
}

// Bounds is the collision box at the smoothed position.
func (g *GhostData) Bounds() gamemath.Rect {
	return gamemath.NewRect(g.Smoothed.X, g.Smoothed.Y, g.Width, g.Height)
}

// PlayerInRange reports whether the player's centre is within Radius of the
// ghost's home centre.
func (g *GhostData) PlayerInRange(player gamemath.Rect) bool {
	hx, hy := g.Home.X+g.Width/2, g.Home.Y+g.Height/2
	return gamemath.Distance(hx, hy, player.CenterX(), player.CenterY()) <= g.Radius
}

// Update picks the state from the player's distance to home, moves the raw
// position and eases the smoothed one toward it.
func (g *GhostData) Update(dt float64, player gamemath.Rect, playerInvincible bool) {
	g.hoverTime += dt

	switch {
	case playerInvincible:
		if g.State != GhostAtHome {
			g.State = GhostReturning
		}
	case g.PlayerInRange(player):
		g.State = GhostChasing
	case g.State == GhostChasing:
		g.State = GhostReturning
	}

	prevX := g.Raw.X
	switch g.State {
	case GhostChasing:
		tx, ty := player.CenterX()-g.Width/2, player.CenterY()-g.Height/2
		g.Raw.X, g.Raw.Y, _ = gamemath.MoveToward(g.Raw.X, g.Raw.Y, tx, ty, cfg.Ghost.ChaseSpeed*dt)
	case GhostReturning:
		var home bool
		g.Raw.X, g.Raw.Y, home = gamemath.MoveToward(g.Raw.X, g.Raw.Y, g.Home.X, g.Home.Y, cfg.Ghost.ReturnSpeed*dt)
		if home {
			g.State = GhostAtHome
		}
	}

	if dx := g.Raw.X - prevX; dx != 0 {
		g.MoveDir = DirectionFromSign(dx)
	}
	if g.State == GhostAtHome {
		g.Facing = DirectionLeft
	} else {
		g.Facing = g.MoveDir
	}

	s := cfg.Ghost.Smoothing
	g.Smoothed.X = gamemath.Lerp(g.Smoothed.X, g.Raw.X, s)
	g.Smoothed.Y = gamemath.Lerp(g.Smoothed.Y, g.Raw.Y, s)
}

// OnContact sends the ghost home and returns the damage dealt with its
// knockback direction.
func (g *GhostData) OnContact() (amount, direction float64) {
	g.State = GhostReturning
	return cfg.Ghost.ContactDamage, g.MoveDir.Sign()
}

// HoverOffset is the draw-only vertical bob.
func (g *GhostData) HoverOffset() float64 {
	return cfg.Ghost.HoverAmplitude * math.Sin(g.hoverTime*cfg.Ghost.HoverFrequency)
}
