package game

import "fmt"

// Tile is a single grid cell addressed by column and row.
type Tile struct {
	X int
	Y int
}

// Add returns the tile one step along v.
func (t Tile) Add(v Velocity) Tile {
	return Tile{X: t.X + v.X, Y: t.Y + v.Y}
}

// In reports whether the tile lies within a width x height grid.
func (t Tile) In(width, height int) bool {
	return t.X >= 0 && t.X < width && t.Y >= 0 && t.Y < height
}

func (t Tile) String() string {
	return fmt.Sprintf("(%d, %d)", t.X, t.Y)
}
