package game

// Cause is the reason a round ended.
type Cause string

const (
	// CauseWallCollision is when the head leaves the board
	CauseWallCollision Cause = "wall-collision"
	// CauseSelfCollision is when the head lands on a body segment
	CauseSelfCollision Cause = "self-collision"
	// CauseWin is when the snake fills the board
	CauseWin Cause = "win"
)

// GameOver is the terminal signal returned by Tick.
type GameOver struct {
	Turn  int64
	Cause Cause
}

// Message is the text shown to the player for the outcome.
func (g *GameOver) Message() string {
	switch g.Cause {
	case CauseWallCollision:
		return "Game over! You hit a wall."
	case CauseSelfCollision:
		return "Game over! You hit yourself."
	case CauseWin:
		return "Congratulations! You've won!"
	}
	return "Game over!"
}

// Won reports whether the round ended because the board was filled.
func (g *GameOver) Won() bool {
	return g.Cause == CauseWin
}
