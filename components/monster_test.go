package components

import (
	"testing"

	"github.com/ModricFX/JumpScape-sub000/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMonster() MonsterData {
	return NewMonsterData(gamemath.NewRect(100, 400, 300, 20))
}

func TestMonsterSeesPlayerWithinMargin(t *testing.T) {
	m := testMonster()
	player := gamemath.NewRect(500, m.Position.Y, 40, 60)

	assert.True(t, m.IsPlayerInSight(player))

	m.Update(0.1, player)
	assert.Equal(t, DirectionRight, m.Facing)
	assert.Equal(t, DirectionRight, m.PatrolDir)
	assert.True(t, m.Alert)

	far := gamemath.NewRect(601, m.Position.Y, 40, 60)
	assert.False(t, m.IsPlayerInSight(far))

	high := gamemath.NewRect(300, m.Position.Y-81, 40, 60)
	assert.False(t, m.IsPlayerInSight(high))
}

func TestMonsterPatrolReversesAtBounds(t *testing.T) {
	m := testMonster()
	player := gamemath.NewRect(0, 0, 40, 60)

	start := m.Position.X
	m.Update(0.5, player)
	assert.Equal(t, start+50, m.Position.X)
	assert.Equal(t, DirectionLeft, m.Facing, "faces the player, not the patrol")

	m.Update(0.5, player)
	m.Update(0.5, player)
	assert.Equal(t, m.PatrolRight-m.Width, m.Position.X)
	assert.Equal(t, DirectionLeft, m.PatrolDir)

	for i := 0; i < 6; i++ {
		m.Update(0.5, player)
		require.GreaterOrEqual(t, m.Position.X, m.PatrolLeft)
		require.LessOrEqual(t, m.Position.X+m.Width, m.PatrolRight)
	}
	assert.Equal(t, m.PatrolLeft, m.Position.X)
	assert.Equal(t, DirectionRight, m.PatrolDir)
}

func TestMonsterContactDamage(t *testing.T) {
	m := testMonster()
	right := gamemath.NewRect(m.Position.X+30, m.Position.Y, 40, 60)
	m.Update(0, right)

	amount, dir := m.ContactDamage(right)
	assert.Equal(t, 1.0, amount)
	assert.Equal(t, 1.0, dir)

	m.PatrolDir = DirectionLeft
	amount, dir = m.ContactDamage(right)
	assert.Equal(t, 0.5, amount)
	assert.Equal(t, 1.0, dir, "pushed away from the monster")
}
