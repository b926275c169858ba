package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Game:
		o.printGame(v)
	case GameList:
		o.printGameList(v)
	case MoveResult:
		o.printMoveResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Square response type (matches API)
type Square struct {
	Letter string `json:"letter,omitempty"`
	Player *int   `json:"player,omitempty"`
}

// Position response type
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Board response type
type Board struct {
	Width        int        `json:"width"`
	Height       int        `json:"height"`
	Cells        [][]Square `json:"cells"`
	Roots        []Position `json:"roots"`
	Orientations []string   `json:"orientations"`
}

// Game response type
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

// GameList response type
type GameList struct {
	Games []string `json:"games"`
}

// Outcome response type
type Outcome struct {
	Kind          string `json:"kind"`
	WeakDefenders []int  `json:"weak_defenders,omitempty"`
}

// MoveResult response type
type MoveResult struct {
	Outcome  Outcome `json:"outcome"`
	GameOver bool    `json:"game_over"`
	Winner   *int    `json:"winner,omitempty"`
	Game     Game    `json:"game"`
}

// HealthResult response type
type HealthResult struct {
	Status          string `json:"status"`
	DictionaryWords int    `json:"dictionary_words"`
}

func (o *Output) printGame(g Game) {
	fmt.Printf("Game: %s\n", g.ID)
	fmt.Printf("State: %s\n", g.State)
	fmt.Printf("Turn: %s (player %d, move %d)\n", playerName(g.Players, g.CurrentTurn), g.CurrentTurn, g.MoveCount)
	fmt.Printf("Bag: %d tiles left\n", g.BagRemaining)

	for i, rack := range g.Racks {
		fmt.Printf("Rack %s: %s\n", playerName(g.Players, i), strings.Join(strings.Split(rack, ""), " "))
	}

	fmt.Println()
	o.printBoard(g.Board)

	if g.Winner != nil {
		fmt.Printf("\nWinner: %s\n", playerName(g.Players, *g.Winner))
	}
}

func (o *Output) printGameList(l GameList) {
	if len(l.Games) == 0 {
		fmt.Println("No games")
		return
	}
	for _, id := range l.Games {
		fmt.Println(id)
	}
}

func (o *Output) printMoveResult(m MoveResult) {
	switch m.Outcome.Kind {
	case "no_battle":
		fmt.Println("Placed without a fight")
	case "defender_wins":
		fmt.Println("The defence held: your attacking words were destroyed")
	case "attacker_wins":
		fmt.Printf("Attack succeeded: %d defending word(s) destroyed\n", len(m.Outcome.WeakDefenders))
	}

	if m.GameOver && m.Winner != nil {
		fmt.Printf("Game over! Winner: %s\n", playerName(m.Game.Players, *m.Winner))
	}

	fmt.Println()
	o.printBoard(m.Game.Board)
}

// printBoard renders the grid. Player 0's letters print uppercase and
// player 1's lowercase; empty root squares show as +.
func (o *Output) printBoard(b Board) {
	if b.Width == 0 || b.Height == 0 {
		return
	}

	roots := make(map[Position]bool, len(b.Roots))
	for _, r := range b.Roots {
		roots[r] = true
	}

	fmt.Print("    ")
	for x := 0; x < b.Width; x++ {
		fmt.Printf(" %d ", x)
	}
	fmt.Println()

	fmt.Print("   +")
	fmt.Print(strings.Repeat("---", b.Width))
	fmt.Println("+")

	for y := 0; y < b.Height; y++ {
		fmt.Printf(" %d |", y)
		for x := 0; x < b.Width; x++ {
			sq := b.Cells[y][x]
			switch {
			case sq.Letter == "" && roots[Position{X: x, Y: y}]:
				fmt.Print(" + ")
			case sq.Letter == "":
				fmt.Print(" . ")
			case sq.Player != nil && *sq.Player == 1:
				fmt.Printf(" %s ", strings.ToLower(sq.Letter))
			default:
				fmt.Printf(" %s ", sq.Letter)
			}
		}
		fmt.Println("|")
	}

	fmt.Print("   +")
	fmt.Print(strings.Repeat("---", b.Width))
	fmt.Println("+")
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
	fmt.Printf("Dictionary: %d words\n", h.DictionaryWords)
}

func playerName(players []string, i int) string {
	if i >= 0 && i < len(players) {
		return players[i]
	}
	return fmt.Sprintf("player %d", i)
}
