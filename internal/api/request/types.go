package request

// Position is a board coordinate in request bodies
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// CreateGameRequest is the request body for creating a game
type CreateGameRequest struct {
	Players []string `json:"players"`
	Width   int      `json:"width,omitempty"`
	Height  int      `json:"height,omitempty"`
}

// MoveRequest is the request body for submitting a move
type MoveRequest struct {
	Kind   string `json:"kind"`
	Player int    `json:"player"`

	// Place
	Tile     string    `json:"tile,omitempty"`
	Position *Position `json:"position,omitempty"`

	// Swap
	Positions []Position `json:"positions,omitempty"`
}
