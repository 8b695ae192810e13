package game

import (
	log "github.com/sirupsen/logrus"
)

// Tick advances the game one step and returns the outcome if the round ended
// on this step. It does nothing until the first direction is set, and nothing
// after the round is over until Reset.
func (s *State) Tick() *GameOver {
	if !s.started || s.over != nil {
		return nil
	}
	s.turn++

	// 1. body follows the head
	// 2. head advances
	// 3. check for death
	//    a - wall collision
	//    b - self collision
	// 4. eat, grow, replace food, check for a win
	s.follow()
	s.head = s.head.Add(s.velocity)

	var cause Cause
	if collidedWithWall(s.head, s.width, s.height) {
		cause = CauseWallCollision
	}
	if cause == "" && collidedWithBody(s.head, s.body) {
		cause = CauseSelfCollision
	}

	if s.head == s.food {
		s.body = append(s.body, s.head)
		s.placeFood()
		log.WithFields(log.Fields{
			"GameID": s.id,
			"Turn":   s.turn,
			"Length": len(s.body) + 1,
			"Food":   s.food,
		}).Debug("snake ate")

		if cause == "" && len(s.body)+1 == s.totalTiles {
			cause = CauseWin
		}
	}

	if cause != "" {
		s.over = &GameOver{Turn: s.turn, Cause: cause}
		s.started = false
		log.WithFields(log.Fields{
			"GameID": s.id,
			"Turn":   s.turn,
			"Cause":  cause,
			"Score":  s.Score(),
		}).Info("game over")
		return s.over
	}
	return nil
}

// follow shifts each body segment into the position of the one ahead of it,
// the first segment taking the head's position.
func (s *State) follow() {
	for i := len(s.body) - 1; i > 0; i-- {
		s.body[i] = s.body[i-1]
	}
	if len(s.body) > 0 {
		s.body[0] = s.head
	}
}

func collidedWithWall(head Tile, width, height int) bool {
	return !head.In(width, height)
}

func collidedWithBody(head Tile, body []Tile) bool {
	for _, b := range body {
		if head == b {
			return true
		}
	}
	return false
}
