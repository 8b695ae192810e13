// Package game holds the snake simulation: the board, the snake, the food and
// the rules that advance them one tick at a time. It has no knowledge of
// timers, input devices or rendering.
package game

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

// StartTile is where the head is placed on creation and after a reset.
var StartTile = Tile{X: 5, Y: 5}

// ResetVelocity is the heading given to the snake by Reset.
var ResetVelocity = Velocity{X: 1, Y: 0}

// Config sizes a new game. Board dimensions are in pixels, the grid is
// derived by dividing them by TileSize.
type Config struct {
	BoardWidth  int
	BoardHeight int
	TileSize    int

	// Rand drives food placement. A time seeded source is used when nil.
	Rand *rand.Rand
}

// State is a single game of snake. It is not safe for concurrent use; the
// owner serializes calls to Tick, SetDirection and Reset.
type State struct {
	id         string
	width      int
	height     int
	tileSize   int
	totalTiles int

	head     Tile
	body     []Tile
	food     Tile
	velocity Velocity

	turn    int64
	started bool
	over    *GameOver

	rand *rand.Rand
}

// New creates a game that is waiting for its first direction.
func New(c Config) (*State, error) {
	if c.TileSize <= 0 {
		return nil, errors.Errorf("game: invalid tile size %d", c.TileSize)
	}
	width := c.BoardWidth / c.TileSize
	height := c.BoardHeight / c.TileSize
	if !StartTile.In(width, height) {
		return nil, errors.Errorf("game: %dx%d grid does not contain start tile %s", width, height, StartTile)
	}

	r := c.Rand
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &State{
		id:         uuid.NewV4().String(),
		width:      width,
		height:     height,
		tileSize:   c.TileSize,
		totalTiles: (c.BoardWidth * c.BoardHeight) / (c.TileSize * c.TileSize),
		head:       StartTile,
		body:       []Tile{},
		rand:       r,
	}
	s.placeFood()
	return s, nil
}

// SetDirection starts the game if it is idle and steers the snake, unless the
// requested direction would reverse it onto itself.
func (s *State) SetDirection(dir Direction) {
	if s.over != nil {
		return
	}
	s.started = true

	v, ok := dir.Velocity()
	if !ok || v.Opposite(s.velocity) {
		return
	}
	s.velocity = v
}

// Reset puts the snake back on the start tile, heading right, and waits for
// input before moving again.
func (s *State) Reset() {
	s.id = uuid.NewV4().String()
	s.head = StartTile
	s.body = s.body[:0]
	s.placeFood()
	s.velocity = ResetVelocity
	s.turn = 0
	s.started = false
	s.over = nil
}

// ID identifies the current round. It changes on every Reset.
func (s *State) ID() string { return s.id }

// Width is the number of tile columns.
func (s *State) Width() int { return s.width }

// Height is the number of tile rows.
func (s *State) Height() int { return s.height }

// TileSize is the pixel size of a tile, for renderers that scale.
func (s *State) TileSize() int { return s.tileSize }

// TotalTiles is the snake length that wins the game.
func (s *State) TotalTiles() int { return s.totalTiles }

// Head returns the head position.
func (s *State) Head() Tile { return s.head }

// Body returns a copy of the body segments, head to tail.
func (s *State) Body() []Tile {
	body := make([]Tile, len(s.body))
	copy(body, s.body)
	return body
}

// Food returns the food position.
func (s *State) Food() Tile { return s.food }

// Velocity returns the heading applied on the next tick.
func (s *State) Velocity() Velocity { return s.velocity }

// Started reports whether the snake is moving.
func (s *State) Started() bool { return s.started }

// Over returns the outcome of the round, or nil while it is still live.
func (s *State) Over() *GameOver { return s.over }

// Turn counts the ticks that advanced the snake this round.
func (s *State) Turn() int64 { return s.turn }

// Score is the number of food items eaten this round.
func (s *State) Score() int { return len(s.body) }

// Snapshot is a read-only copy of a State for rendering.
type Snapshot struct {
	ID       string
	Turn     int64
	Width    int
	Height   int
	TileSize int
	Head     Tile
	Body     []Tile
	Food     Tile
	Velocity Velocity
	Started  bool
	Over     *GameOver
	Score    int
}

// Snapshot copies the current state.
func (s *State) Snapshot() Snapshot {
	var over *GameOver
	if s.over != nil {
		o := *s.over
		over = &o
	}
	return Snapshot{
		ID:       s.id,
		Turn:     s.turn,
		Width:    s.width,
		Height:   s.height,
		TileSize: s.tileSize,
		Head:     s.head,
		Body:     s.Body(),
		Food:     s.food,
		Velocity: s.velocity,
		Started:  s.started,
		Over:     over,
		Score:    s.Score(),
	}
}
