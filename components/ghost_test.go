package components

import (
	"testing"

	"github.com/ModricFX/JumpScape-sub000/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// playerAt returns a player box whose centre is (cx, cy).
func playerAt(cx, cy float64) gamemath.Rect {
	return gamemath.NewRect(cx-20, cy-30, 40, 60)
}

func TestGhostChasesInsideRadius(t *testing.T) {
	g := NewGhostData(1000, 500, 150)
	hx, hy := g.Home.X+g.Width/2, g.Home.Y+g.Height/2

	g.Update(0.1, playerAt(hx+200, hy), false)
	assert.Equal(t, GhostAtHome, g.State)
	assert.Equal(t, g.Home, g.Raw)

	g.Update(0.1, playerAt(hx+100, hy), false)
	require.Equal(t, GhostChasing, g.State)
	assert.InDelta(t, g.Home.X+15, g.Raw.X, 1e-9, "150 u/s toward the player")
	assert.InDelta(t, g.Home.Y, g.Raw.Y, 1e-9)
	assert.Equal(t, DirectionRight, g.Facing)
}

func TestGhostSmoothedTrailsRaw(t *testing.T) {
	g := NewGhostData(0, 0, 150)
	hx, hy := g.Width/2, g.Height/2

	g.Update(0.1, playerAt(hx+100, hy), false)
	assert.InDelta(t, 15, g.Raw.X, 1e-9)
	assert.InDelta(t, 3, g.Smoothed.X, 1e-9)
	assert.Equal(t, g.Smoothed.X, g.Bounds().X, "collision uses the smoothed box")
}

func TestGhostReturnsWhenPlayerLeaves(t *testing.T) {
	g := NewGhostData(0, 0, 150)
	hx, hy := g.Width/2, g.Height/2

	g.Update(0.2, playerAt(hx+100, hy), false)
	require.Equal(t, GhostChasing, g.State)

	g.Update(0.1, playerAt(hx+400, hy), false)
	assert.Equal(t, GhostReturning, g.State)
	assert.InDelta(t, 20, g.Raw.X, 1e-9, "100 u/s back home")

	g.Update(0.5, playerAt(hx+400, hy), false)
	assert.Equal(t, GhostAtHome, g.State)
	assert.Equal(t, g.Home, g.Raw)
}

func TestGhostRetreatsFromInvinciblePlayer(t *testing.T) {
	g := NewGhostData(0, 0, 150)
	hx, hy := g.Width/2, g.Height/2

	g.Update(0.2, playerAt(hx+50, hy), false)
	require.Equal(t, GhostChasing, g.State)

	g.Update(0.1, playerAt(hx+50, hy), true)
	assert.Equal(t, GhostReturning, g.State)

	h := NewGhostData(0, 0, 150)
	h.Update(0.1, playerAt(hx, hy), true)
	assert.Equal(t, GhostAtHome, h.State)
}

func TestGhostContact(t *testing.T) {
	g := NewGhostData(0, 0, 150)
	g.Update(0.1, playerAt(g.Width/2+100, g.Height/2), false)

	amount, dir := g.OnContact()
	assert.Equal(t, 0.5, amount)
	assert.Equal(t, 1.0, dir)
	assert.Equal(t, GhostReturning, g.State)
}

func TestGhostHoverIsCosmetic(t *testing.T) {
	g := NewGhostData(0, 0, 150)
	g.Update(0.5, playerAt(1000, 1000), false)
	assert.NotZero(t, g.HoverOffset())
	assert.LessOrEqual(t, g.HoverOffset(), 5.0)
	assert.Equal(t, 0.0, g.Bounds().Y)
}
