package driver

import (
	"sync"

	"github.com/battlesnakeio/snake/game"
)

// maxQueuedInputs bounds how many key presses can be buffered ahead of the
// snake. Only one is applied per tick.
const maxQueuedInputs = 4

type inputQueue struct {
	sync.Mutex
	dirs []game.Direction
	max  int
}

func newInputQueue(max int) *inputQueue {
	return &inputQueue{max: max}
}

func (q *inputQueue) push(dir game.Direction) bool {
	q.Lock()
	defer q.Unlock()

	if len(q.dirs) >= q.max {
		return false
	}
	q.dirs = append(q.dirs, dir)
	return true
}

func (q *inputQueue) pop() (game.Direction, bool) {
	q.Lock()
	defer q.Unlock()

	if len(q.dirs) == 0 {
		return "", false
	}
	dir := q.dirs[0]
	q.dirs = q.dirs[1:]
	return dir, true
}

func (q *inputQueue) clear() {
	q.Lock()
	defer q.Unlock()

	q.dirs = nil
}
