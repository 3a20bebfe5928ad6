package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
		ok   bool
	}{
		{"disjoint", NewRect(0, 0, 10, 10), NewRect(20, 0, 10, 10), Rect{}, false},
		{"touching edges", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), Rect{}, false},
		{"corner", NewRect(0, 0, 10, 10), NewRect(5, 8, 10, 10), NewRect(5, 8, 5, 2), true},
		{"contained", NewRect(0, 0, 100, 20), NewRect(10, 5, 5, 5), NewRect(10, 5, 5, 5), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.Overlap(tt.b)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, tt.a.Intersects(tt.b))
		})
	}
}

func TestVerticalRangeIntersects(t *testing.T) {
	a := NewRect(0, 100, 10, 20)
	assert.True(t, a.VerticalRangeIntersects(NewRect(500, 110, 5, 5)))
	assert.True(t, a.VerticalRangeIntersects(NewRect(500, 120, 5, 5)), "shared edge counts")
	assert.False(t, a.VerticalRangeIntersects(NewRect(0, 130, 5, 5)))
}

func TestMoveTowardNeverOvershoots(t *testing.T) {
	x, y, arrived := MoveToward(0, 0, 3, 4, 2)
	require.False(t, arrived)
	assert.InDelta(t, 1.2, x, 1e-9)
	assert.InDelta(t, 1.6, y, 1e-9)

	x, y, arrived = MoveToward(x, y, 3, 4, 10)
	assert.True(t, arrived)
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 4.0, y)
}

func TestKnockback(t *testing.T) {
	vx, vy := Knockback(1, 6, -8)
	assert.Equal(t, 6.0, vx)
	assert.Equal(t, -8.0, vy)

	vx, _ = Knockback(-1, 6, -8)
	assert.Equal(t, -6.0, vx)
}

func TestDirectionSign(t *testing.T) {
	assert.Equal(t, 1.0, DirectionSign(10, 20))
	assert.Equal(t, 1.0, DirectionSign(10, 10))
	assert.Equal(t, -1.0, DirectionSign(10, 5))
}

func TestAttenuate(t *testing.T) {
	assert.Equal(t, 0.5, Attenuate(0, 20, 500, 0.5), "closer than min plays at master")
	assert.Equal(t, 0.0, Attenuate(900, 20, 500, 1))
	assert.InDelta(t, 0.5, Attenuate(260, 20, 500, 1), 1e-9)
}

func TestPan(t *testing.T) {
	assert.Equal(t, -1.0, Pan(0, 1000, 500))
	assert.Equal(t, 1.0, Pan(1000, 0, 500))
	assert.InDelta(t, 0.2, Pan(200, 100, 500), 1e-9)
	assert.Equal(t, 0.0, Pan(200, 100, 0))
}

func TestLerpAndClamp(t *testing.T) {
	assert.Equal(t, 2.0, Lerp(0, 10, 0.2))
	assert.Equal(t, 5.0, Clamp(7, 0, 5))
	assert.Equal(t, 0.0, Clamp(-1, 0, 5))
	assert.InDelta(t, 5.0, Distance(0, 0, 3, 4), 1e-12)
	assert.False(t, math.IsNaN(Distance(1, 1, 1, 1)))
}
