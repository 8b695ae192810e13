package game

// placeFood moves the food to a uniformly random tile. Tiles under the snake
// are not excluded.
func (s *State) placeFood() {
	s.food = Tile{
		X: s.rand.Intn(s.width),
		Y: s.rand.Intn(s.height),
	}
}
