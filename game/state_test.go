package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	s := newTestState(t)

	require.Equal(t, 20, s.Width())
	require.Equal(t, 20, s.Height())
	require.Equal(t, 1, s.TileSize())
	require.Equal(t, 400, s.TotalTiles())
	require.Equal(t, Tile{X: 5, Y: 5}, s.Head())
	require.Empty(t, s.Body())
	require.Equal(t, Velocity{}, s.Velocity())
	require.False(t, s.Started())
	require.Nil(t, s.Over())
	require.NotEmpty(t, s.ID())
	require.True(t, s.Food().In(20, 20))
}

func TestNewPixelBoard(t *testing.T) {
	s, err := New(Config{BoardWidth: 600, BoardHeight: 400, TileSize: 25})
	require.NoError(t, err)
	require.Equal(t, 24, s.Width())
	require.Equal(t, 16, s.Height())
	require.Equal(t, 384, s.TotalTiles())
}

func TestNewInvalid(t *testing.T) {
	tests := []struct {
		Name   string
		Config Config
	}{
		{Name: "zero tile", Config: Config{BoardWidth: 20, BoardHeight: 20}},
		{Name: "negative tile", Config: Config{BoardWidth: 20, BoardHeight: 20, TileSize: -1}},
		{Name: "too narrow", Config: Config{BoardWidth: 5, BoardHeight: 20, TileSize: 1}},
		{Name: "too short", Config: Config{BoardWidth: 120, BoardHeight: 100, TileSize: 20}},
	}

	for _, test := range tests {
		_, err := New(test.Config)
		require.Error(t, err, test.Name)
	}
}

func TestNewFoodUsesRand(t *testing.T) {
	expected := rand.New(rand.NewSource(testSeed))
	s := newTestState(t)
	require.Equal(t, Tile{X: expected.Intn(20), Y: expected.Intn(20)}, s.Food())
}

func TestSetDirectionStarts(t *testing.T) {
	s := newTestState(t)
	s.food = Tile{X: 0, Y: 0}
	s.SetDirection(Right)

	require.True(t, s.Started())
	require.Equal(t, Velocity{X: 1, Y: 0}, s.Velocity())

	s.Tick()
	require.Equal(t, Tile{X: 6, Y: 5}, s.Head())
	require.Empty(t, s.Body())
}

func TestSetDirectionNoReverse(t *testing.T) {
	tests := []struct {
		Current  Direction
		Reverse  Direction
		Expected Velocity
	}{
		{Current: Up, Reverse: Down, Expected: Velocity{X: 0, Y: -1}},
		{Current: Down, Reverse: Up, Expected: Velocity{X: 0, Y: 1}},
		{Current: Left, Reverse: Right, Expected: Velocity{X: -1, Y: 0}},
		{Current: Right, Reverse: Left, Expected: Velocity{X: 1, Y: 0}},
	}

	for _, test := range tests {
		s := newTestState(t)
		s.SetDirection(test.Current)
		s.SetDirection(test.Reverse)
		require.Equal(t, test.Expected, s.Velocity(), "current: %s", test.Current)
	}
}

func TestSetDirectionTurns(t *testing.T) {
	s := newTestState(t)
	s.SetDirection(Right)
	s.SetDirection(Up)
	require.Equal(t, Velocity{X: 0, Y: -1}, s.Velocity())
	s.SetDirection(Left)
	require.Equal(t, Velocity{X: -1, Y: 0}, s.Velocity())
}

func TestSetDirectionReverseStillStarts(t *testing.T) {
	s := newTestState(t)
	s.Reset()
	require.False(t, s.Started())

	s.SetDirection(Left)
	require.True(t, s.Started())
	require.Equal(t, ResetVelocity, s.Velocity())
}

func TestSetDirectionUnknown(t *testing.T) {
	s := newTestState(t)
	s.SetDirection(Direction("sideways"))
	require.True(t, s.Started())
	require.Equal(t, Velocity{}, s.Velocity())
}

func TestSetDirectionIgnoredWhenOver(t *testing.T) {
	s := newTestState(t)
	running(s, Tile{X: 19, Y: 5}, Velocity{X: 1, Y: 0}, []Tile{}, Tile{X: 0, Y: 0})
	require.NotNil(t, s.Tick())

	s.SetDirection(Up)
	require.False(t, s.Started())
	require.Equal(t, Velocity{X: 1, Y: 0}, s.Velocity())
}

func TestReset(t *testing.T) {
	expected := rand.New(rand.NewSource(testSeed))
	expected.Intn(20)
	expected.Intn(20)

	s := newTestState(t)
	id := s.ID()
	running(s, Tile{X: 19, Y: 5}, Velocity{X: 1, Y: 0}, []Tile{{X: 18, Y: 5}, {X: 17, Y: 5}}, Tile{X: 0, Y: 0})
	require.NotNil(t, s.Tick())

	s.Reset()
	require.Equal(t, Tile{X: 5, Y: 5}, s.Head())
	require.Empty(t, s.Body())
	require.Equal(t, Velocity{X: 1, Y: 0}, s.Velocity())
	require.False(t, s.Started())
	require.Nil(t, s.Over())
	require.Equal(t, int64(0), s.Turn())
	require.NotEqual(t, id, s.ID())
	require.Equal(t, Tile{X: expected.Intn(20), Y: expected.Intn(20)}, s.Food())

	s.Reset()
	require.Equal(t, Tile{X: 5, Y: 5}, s.Head())
	require.Empty(t, s.Body())
	require.False(t, s.Started())
}

func TestBodyIsACopy(t *testing.T) {
	s := newTestState(t)
	running(s, Tile{X: 5, Y: 5}, Velocity{X: 1, Y: 0}, []Tile{{X: 4, Y: 5}}, Tile{X: 0, Y: 0})

	body := s.Body()
	body[0] = Tile{X: 9, Y: 9}
	require.Equal(t, []Tile{{X: 4, Y: 5}}, s.Body())
}

func TestSnapshot(t *testing.T) {
	s := newTestState(t)
	running(s, Tile{X: 5, Y: 5}, Velocity{X: 1, Y: 0}, []Tile{{X: 4, Y: 5}, {X: 3, Y: 5}}, Tile{X: 0, Y: 0})

	snap := s.Snapshot()
	require.Equal(t, s.ID(), snap.ID)
	require.Equal(t, 20, snap.Width)
	require.Equal(t, 20, snap.Height)
	require.Equal(t, Tile{X: 5, Y: 5}, snap.Head)
	require.Equal(t, []Tile{{X: 4, Y: 5}, {X: 3, Y: 5}}, snap.Body)
	require.Equal(t, Tile{X: 0, Y: 0}, snap.Food)
	require.Equal(t, 2, snap.Score)
	require.True(t, snap.Started)
	require.Nil(t, snap.Over)

	s.Tick()
	require.Equal(t, Tile{X: 5, Y: 5}, snap.Head)
	require.Equal(t, []Tile{{X: 4, Y: 5}, {X: 3, Y: 5}}, snap.Body)
}
