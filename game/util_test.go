package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

const testSeed = 42

// newTestState returns a 20x20 game with a fixed food seed.
func newTestState(t *testing.T) *State {
	t.Helper()
	s, err := New(Config{
		BoardWidth:  20,
		BoardHeight: 20,
		TileSize:    1,
		Rand:        rand.New(rand.NewSource(testSeed)),
	})
	require.NoError(t, err)
	return s
}

// running puts s in motion with the given velocity, body and food, bypassing
// SetDirection so tests can start from any shape.
func running(s *State, head Tile, v Velocity, body []Tile, food Tile) {
	s.head = head
	s.velocity = v
	s.body = body
	s.food = food
	s.started = true
}

// serpentine walks every tile of a width x height grid row by row, reversing
// direction on each row, so consecutive tiles are always adjacent.
func serpentine(width, height int) []Tile {
	path := []Tile{}
	for y := 0; y < height; y++ {
		for i := 0; i < width; i++ {
			x := i
			if y%2 == 1 {
				x = width - 1 - i
			}
			path = append(path, Tile{X: x, Y: y})
		}
	}
	return path
}
