package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStatePlaying  GameState = "playing"
	GameStateFinished GameState = "finished"
)

// NoWinner is the Winner value while the game is still in progress
const NoWinner = -1

// Game is a single match: the shared board plus per-player racks, the
// tile bag, and turn bookkeeping. Player indices into Players, the
// board's roots and the hands' racks all line up.
type Game struct {
	ID    GameID    `json:"id"`
	State GameState `json:"state"`

	Board *Board `json:"board"`
	Hands *Hands `json:"hands"`
	Bag   *Bag   `json:"bag"`

	// Display names, one per seat
	Players []string `json:"players"`

	// Turn management
	CurrentTurn int `json:"current_turn"` // Index of the player to move
	MoveCount   int `json:"move_count"`
	Winner      int `json:"winner"` // NoWinner until the game ends

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasPlayer returns true if the player index has a seat in the game
func (g *Game) HasPlayer(player int) bool {
	return player >= 0 && player < len(g.Players)
}

// AdvanceTurn passes the turn to the next player
func (g *Game) AdvanceTurn() {
	g.MoveCount++
	g.CurrentTurn = (g.CurrentTurn + 1) % len(g.Players)
}

// Finish marks the game won by the given player
func (g *Game) Finish(winner int) {
	g.State = GameStateFinished
	g.Winner = winner
}
