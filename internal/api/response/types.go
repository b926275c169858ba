package response

import (
	"time"

	"github.com/dtownsend/battleword/internal/model"
	"github.com/dtownsend/battleword/internal/services/game"
)

// Square is one board cell in API responses. Empty squares have an
// empty letter and no owner.
type Square struct {
	Letter string `json:"letter,omitempty"`
	Player *int   `json:"player,omitempty"`
}

// Position is a board coordinate in API responses
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Board represents the shared board
type Board struct {
	Width        int        `json:"width"`
	Height       int        `json:"height"`
	Cells        [][]Square `json:"cells"`
	Roots        []Position `json:"roots"`
	Orientations []string   `json:"orientations"`
}

// BoardFromModel converts model.Board to a response Board
func BoardFromModel(b *model.Board) Board {
	cells := make([][]Square, b.Height)
	for y := 0; y < b.Height; y++ {
		cells[y] = make([]Square, b.Width)
		for x := 0; x < b.Width; x++ {
			sq := b.Cells[y][x]
			if sq.IsEmpty() {
				continue
			}
			owner := sq.Player
			cells[y][x] = Square{Letter: string(sq.Letter), Player: &owner}
		}
	}

	roots := make([]Position, len(b.Roots))
	for i, r := range b.Roots {
		roots[i] = Position{X: r.X, Y: r.Y}
	}
	orientations := make([]string, len(b.Orientations))
	for i, o := range b.Orientations {
		orientations[i] = string(o)
	}

	return Board{
		Width:        b.Width,
		Height:       b.Height,
		Cells:        cells,
		Roots:        roots,
		Orientations: orientations,
	}
}

// Game represents a game in API responses. Racks are letters, one
// string per player.
type Game struct {
	ID           string    `json:"id"`
	State        string    `json:"state"`
	Board        Board     `json:"board"`
	Racks        []string  `json:"racks"`
	BagRemaining int       `json:"bag_remaining"`
	Players      []string  `json:"players"`
	CurrentTurn  int       `json:"current_turn"`
	MoveCount    int       `json:"move_count"`
	Winner       *int      `json:"winner,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// GameFromModel converts model.Game to a response Game
func GameFromModel(g *model.Game) Game {
	racks := make([]string, len(g.Hands.Racks))
	for i, rack := range g.Hands.Racks {
		racks[i] = string(rack)
	}

	var winner *int
	if g.Winner != model.NoWinner {
		w := g.Winner
		winner = &w
	}

	return Game{
		ID:           string(g.ID),
		State:        string(g.State),
		Board:        BoardFromModel(g.Board),
		Racks:        racks,
		BagRemaining: g.Bag.Remaining(),
		Players:      g.Players,
		CurrentTurn:  g.CurrentTurn,
		MoveCount:    g.MoveCount,
		Winner:       winner,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}

// GameList is the response for listing games
type GameList struct {
	Games []string `json:"games"`
}

// GameListFromIDs converts game IDs to a GameList
func GameListFromIDs(ids []model.GameID) GameList {
	games := make([]string, len(ids))
	for i, id := range ids {
		games[i] = string(id)
	}
	return GameList{Games: games}
}

// Outcome describes how a battle resolved
type Outcome struct {
	Kind          string `json:"kind"`
	WeakDefenders []int  `json:"weak_defenders,omitempty"`
}

// MoveResponse is the response after a successful move
type MoveResponse struct {
	Outcome  Outcome `json:"outcome"`
	GameOver bool    `json:"game_over"`
	Winner   *int    `json:"winner,omitempty"`
	Game     Game    `json:"game"`
}

// MoveResponseFromResult converts a move result plus the updated game
func MoveResponseFromResult(result *game.MoveResult, g *model.Game) MoveResponse {
	var winner *int
	if result.Winner != model.NoWinner {
		w := result.Winner
		winner = &w
	}
	return MoveResponse{
		Outcome: Outcome{
			Kind:          string(result.Outcome.Kind),
			WeakDefenders: result.Outcome.WeakDefenders,
		},
		GameOver: result.GameOver,
		Winner:   winner,
		Game:     GameFromModel(g),
	}
}

// Health is the health check response
type Health struct {
	Status          string `json:"status"`
	DictionaryWords int    `json:"dictionary_words"`
}
