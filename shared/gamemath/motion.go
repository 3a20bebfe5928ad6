package gamemath

import "math"

// Clamp constrains value to the range [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// Lerp returns a + t*(b-a).
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Distance returns the euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// HomingVelocity returns the velocity that moves (x, y) toward (targetX,
// targetY) at speed. A zero vector is returned when both points coincide.
func HomingVelocity(x, y, targetX, targetY, speed float64) (velX, velY float64) {
	dirX := targetX - x
	dirY := targetY - y
	dist := math.Sqrt(dirX*dirX + dirY*dirY)
	if dist > 0 {
		velX = (dirX / dist) * speed
		velY = (dirY / dist) * speed
	}
	return velX, velY
}

// MoveToward advances (x, y) toward the target by at most step units. It
// never overshoots: when the target is within reach it is returned exactly and
// arrived is true.
func MoveToward(x, y, targetX, targetY, step float64) (nx, ny float64, arrived bool) {
	dist := Distance(x, y, targetX, targetY)
	if dist <= step {
		return targetX, targetY, true
	}
	vx, vy := HomingVelocity(x, y, targetX, targetY, step)
	return x + vx, y + vy, false
}

// DirectionSign returns +1 when to lies at or right of from, -1 otherwise.
func DirectionSign(from, to float64) float64 {
	if to >= from {
		return 1
	}
	return -1
}

// Knockback returns the velocity override applied by a damage event. The
// horizontal component takes the sign of direction; vertical is used as is.
func Knockback(direction, strengthX, strengthY float64) (velX, velY float64) {
	if direction < 0 {
		return -strengthX, strengthY
	}
	return strengthX, strengthY
}
