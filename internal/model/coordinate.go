package model

import "fmt"

// Coordinate identifies a square on the board
type Coordinate struct {
	X int `json:"x"` // 0-indexed from the left
	Y int `json:"y"` // 0-indexed from the top
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Direction is a compass direction on the board
type Direction string

const (
	DirectionNorth Direction = "north"
	DirectionEast  Direction = "east"
	DirectionSouth Direction = "south"
	DirectionWest  Direction = "west"
)

// Opposite returns the direction pointing the other way
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionNorth:
		return DirectionSouth
	case DirectionSouth:
		return DirectionNorth
	case DirectionEast:
		return DirectionWest
	case DirectionWest:
		return DirectionEast
	}
	return d
}

// Offset returns the coordinate delta for one step in this direction.
// North is towards row 0.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case DirectionNorth:
		return 0, -1
	case DirectionSouth:
		return 0, 1
	case DirectionEast:
		return 1, 0
	case DirectionWest:
		return -1, 0
	}
	return 0, 0
}

// cardinalDirections in the order neighbours are enumerated
var cardinalDirections = []Direction{DirectionNorth, DirectionEast, DirectionSouth, DirectionWest}
