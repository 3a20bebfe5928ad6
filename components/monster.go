package components

import (
	"math"

	cfg "github.com/ModricFX/JumpScape-sub000/config"
	"github.com/ModricFX/JumpScape-sub000/shared/gamemath"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// MonsterData is a patroller confined to one platform's horizontal extent.
type MonsterData struct {
	Position dmath.Vec2
	Width    float64
	Height   float64

	Facing    Direction // toward the player
	PatrolDir Direction // movement sense

	// AI state management
	PatrolLeft  float64 // Left boundary for patrol
	PatrolRight float64 // Right boundary for patrol
	PatrolSpeed float64 // units/s

	Alert bool
}

var Monster = donburi.NewComponentType[MonsterData]()

// NewMonsterData places a monster centred on top of platform.
func NewMonsterData(platform gamemath.Rect) MonsterData {
	w, h := cfg.Monster.Width, cfg.Monster.Height
	return MonsterData{
		Position:    dmath.NewVec2(platform.CenterX()-w/2, platform.Y-h),
		Width:       w,
		Height:      h,
		Facing:      DirectionRight,
		PatrolDir:   DirectionRight,
		PatrolLeft:  platform.X,
		PatrolRight: platform.Right(),
		PatrolSpeed: cfg.Monster.Speed,
	}
}

func (m *MonsterData) Bounds() gamemath.Rect {
	return gamemath.NewRect(m.Position.X, m.Position.Y, m.Width, m.Height)
}

// Update faces the player, walks one step along the patrol and refreshes the
// alert flag.
func (m *MonsterData) Update(dt float64, player gamemath.Rect) {
	b := m.Bounds()
	m.Facing = DirectionFromSign(gamemath.DirectionSign(b.CenterX(), player.CenterX()))

	m.Position.X += m.PatrolDir.Sign() * m.PatrolSpeed * dt
	if m.Position.X <= m.PatrolLeft {
		m.Position.X = m.PatrolLeft
		m.PatrolDir = DirectionRight
	} else if m.Position.X+m.Width >= m.PatrolRight {
		m.Position.X = m.PatrolRight - m.Width
		m.PatrolDir = DirectionLeft
	}

	m.Alert = m.IsPlayerInSight(player) && m.movingToward(player)
}

// IsPlayerInSight requires the player within a vertical band around the
// monster and inside the platform extent widened by a margin on both sides.
func (m *MonsterData) IsPlayerInSight(player gamemath.Rect) bool {
	if math.Abs(player.Y-m.Position.Y) > cfg.Monster.SightVerticalBand {
		return false
	}
	margin := cfg.Monster.SightMargin
	return player.X >= m.PatrolLeft-margin && player.X <= m.PatrolRight+margin
}

func (m *MonsterData) movingToward(player gamemath.Rect) bool {
	return m.PatrolDir.Sign() == gamemath.DirectionSign(m.Bounds().CenterX(), player.CenterX())
}

// ContactDamage returns the damage and knockback direction for touching the
// player. Walking into the player hits harder than being bumped from behind.
func (m *MonsterData) ContactDamage(player gamemath.Rect) (amount, direction float64) {
	if m.movingToward(player) {
		return cfg.Monster.FacingDamage, m.Facing.Sign()
	}
	return cfg.Monster.BehindDamage, gamemath.DirectionSign(m.Bounds().CenterX(), player.CenterX())
}
