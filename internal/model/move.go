package model

// MoveKind discriminates the two move variants
type MoveKind string

const (
	MoveKindPlace MoveKind = "place"
	MoveKindSwap  MoveKind = "swap"
)

// Move is a player's proposed action for their turn. Kind selects the
// variant: Tile and Position apply to a place, Positions to a swap.
type Move struct {
	Kind   MoveKind `json:"kind"`
	Player int      `json:"player"`

	// Place
	Tile     rune       `json:"tile,omitempty"`
	Position Coordinate `json:"position,omitzero"`

	// Swap
	Positions [2]Coordinate `json:"positions,omitzero"`
}

// PlaceMove builds a place move
func PlaceMove(player int, tile rune, position Coordinate) Move {
	return Move{Kind: MoveKindPlace, Player: player, Tile: tile, Position: position}
}

// SwapMove builds a swap move
func SwapMove(player int, a, b Coordinate) Move {
	return Move{Kind: MoveKindSwap, Player: player, Positions: [2]Coordinate{a, b}}
}
