package model

// Square is a single cell on the board. A zero Letter means the square
// is empty; Player is only meaningful when the square is occupied.
type Square struct {
	Player int  `json:"player"`
	Letter rune `json:"letter"`
}

// IsEmpty returns true if no tile occupies the square
func (s Square) IsEmpty() bool {
	return s.Letter == 0
}

// OccupiedBy returns true if the square holds a tile owned by player
func (s Square) OccupiedBy(player int) bool {
	return !s.IsEmpty() && s.Player == player
}

// EmptySquare is the content of a cleared or never-occupied cell
var EmptySquare = Square{}
