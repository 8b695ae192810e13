package driver

import (
	"testing"

	"github.com/battlesnakeio/snake/game"
	"github.com/stretchr/testify/require"
)

func TestInputQueueFIFO(t *testing.T) {
	q := newInputQueue(4)
	require.True(t, q.push(game.Up))
	require.True(t, q.push(game.Left))

	dir, ok := q.pop()
	require.True(t, ok)
	require.Equal(t, game.Up, dir)

	dir, ok = q.pop()
	require.True(t, ok)
	require.Equal(t, game.Left, dir)

	_, ok = q.pop()
	require.False(t, ok)
}

func TestInputQueueBounded(t *testing.T) {
	q := newInputQueue(2)
	require.True(t, q.push(game.Up))
	require.True(t, q.push(game.Left))
	require.False(t, q.push(game.Down))
	require.Equal(t, 2, len(q.dirs))
}

func TestInputQueueClear(t *testing.T) {
	q := newInputQueue(4)
	q.push(game.Up)
	q.push(game.Down)
	q.clear()
	require.Equal(t, 0, len(q.dirs))

	_, ok := q.pop()
	require.False(t, ok)
}
