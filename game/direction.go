package game

// Direction is one of the four moves a player can request.
type Direction string

const (
	// Up moves the head towards row zero.
	Up Direction = "up"
	// Down moves the head away from row zero.
	Down Direction = "down"
	// Left moves the head towards column zero.
	Left Direction = "left"
	// Right moves the head away from column zero.
	Right Direction = "right"
)

// Velocity is the per-tick head offset. It is either zero or an axis-aligned
// unit vector.
type Velocity struct {
	X int
	Y int
}

// Velocity returns the unit vector for d and false if d is not a known
// direction.
func (d Direction) Velocity() (Velocity, bool) {
	switch d {
	case Up:
		return Velocity{X: 0, Y: -1}, true
	case Down:
		return Velocity{X: 0, Y: 1}, true
	case Left:
		return Velocity{X: -1, Y: 0}, true
	case Right:
		return Velocity{X: 1, Y: 0}, true
	}
	return Velocity{}, false
}

// Opposite reports whether v points exactly against other.
func (v Velocity) Opposite(other Velocity) bool {
	if v.IsZero() || other.IsZero() {
		return false
	}
	return v.X == -other.X && v.Y == -other.Y
}

// IsZero reports whether the velocity is still.
func (v Velocity) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
