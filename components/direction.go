package components

// Direction is a horizontal facing or movement sense.
type Direction int

const (
	DirectionLeft  Direction = -1
	DirectionRight Direction = 1
)

// Sign returns -1 or +1.
func (d Direction) Sign() float64 {
	if d == DirectionLeft {
		return -1
	}
	return 1
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	if d == DirectionLeft {
		return DirectionRight
	}
	return DirectionLeft
}

// DirectionFromSign maps a signed value to a direction; zero is treated as right.
func DirectionFromSign(v float64) Direction {
	if v < 0 {
		return DirectionLeft
	}
	return DirectionRight
}

func (d Direction) String() string {
	if d == DirectionLeft {
		return "left"
	}
	return "right"
}
