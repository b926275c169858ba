package model

import (
	"fmt"
	"strings"
)

// Board is the shared grid all players build territory on. Each player
// has a fixed root coordinate and a reading orientation; the board
// maintains the invariant that every occupied square is connected to
// its owner's root through same-owner cardinal adjacency.
type Board struct {
	Width        int          `json:"width"`
	Height       int          `json:"height"`
	Cells        [][]Square   `json:"cells"` // Row-major: Cells[y][x]
	Roots        []Coordinate `json:"roots"`
	Orientations []Direction  `json:"orientations"`
}

// NewBoard creates an empty two-player board. Player 0 roots at the
// midpoint of the top edge reading north, player 1 at the midpoint of
// the bottom edge reading south.
func NewBoard(width, height int) *Board {
	cells := make([][]Square, height)
	for y := range cells {
		cells[y] = make([]Square, width)
	}
	return &Board{
		Width:  width,
		Height: height,
		Cells:  cells,
		Roots: []Coordinate{
			{X: width / 2, Y: 0},
			{X: width / 2, Y: height - 1},
		},
		Orientations: []Direction{DirectionNorth, DirectionSouth},
	}
}

// Neighbour pairs a coordinate with its current content
type Neighbour struct {
	Pos    Coordinate
	Square Square
}

// InBounds returns true if the coordinate lies on the board
func (b *Board) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}

// Get returns the square at the given coordinate
func (b *Board) Get(c Coordinate) (Square, error) {
	if !b.InBounds(c) {
		return EmptySquare, &OutOfBoundsError{Pos: c, Width: b.Width, Height: b.Height}
	}
	return b.Cells[c.Y][c.X], nil
}

// Set writes an occupied square at the given coordinate
func (b *Board) Set(c Coordinate, player int, letter rune) error {
	if !b.InBounds(c) {
		return &OutOfBoundsError{Pos: c, Width: b.Width, Height: b.Height}
	}
	b.Cells[c.Y][c.X] = Square{Player: player, Letter: letter}
	return nil
}

// Clear resets the square at the given coordinate to empty
func (b *Board) Clear(c Coordinate) error {
	if !b.InBounds(c) {
		return &OutOfBoundsError{Pos: c, Width: b.Width, Height: b.Height}
	}
	b.Cells[c.Y][c.X] = EmptySquare
	return nil
}

// PlayerCount returns the number of seats on the board
func (b *Board) PlayerCount() int {
	return len(b.Roots)
}

// Root returns the given player's root coordinate
func (b *Board) Root(player int) (Coordinate, error) {
	if player < 0 || player >= len(b.Roots) {
		return Coordinate{}, &InvalidPlayerError{Player: player}
	}
	return b.Roots[player], nil
}

// Orientation returns the direction the given player reads words in
func (b *Board) Orientation(player int) (Direction, error) {
	if player < 0 || player >= len(b.Orientations) {
		return "", &InvalidPlayerError{Player: player}
	}
	return b.Orientations[player], nil
}

// Neighbours returns the up-to-four in-bounds squares cardinally
// adjacent to the given coordinate, with their content
func (b *Board) Neighbours(c Coordinate) []Neighbour {
	neighbours := make([]Neighbour, 0, 4)
	for _, d := range cardinalDirections {
		dx, dy := d.Offset()
		pos := Coordinate{X: c.X + dx, Y: c.Y + dy}
		if !b.InBounds(pos) {
			continue
		}
		neighbours = append(neighbours, Neighbour{Pos: pos, Square: b.Cells[pos.Y][pos.X]})
	}
	return neighbours
}

// Swap exchanges the letters at two coordinates, both of which must be
// occupied by the given player
func (b *Board) Swap(player int, positions [2]Coordinate) error {
	squares := [2]Square{}
	for i, pos := range positions {
		sq, err := b.Get(pos)
		if err != nil {
			return err
		}
		if !sq.OccupiedBy(player) {
			return &NotOwnedError{Player: player, Pos: pos}
		}
		squares[i] = sq
	}

	b.Cells[positions[0].Y][positions[0].X].Letter = squares[1].Letter
	b.Cells[positions[1].Y][positions[1].X].Letter = squares[0].Letter
	return nil
}

// Edge returns the coordinates of the boundary row or column on the
// given side of the board
func (b *Board) Edge(d Direction) []Coordinate {
	var edge []Coordinate
	switch d {
	case DirectionNorth:
		for x := 0; x < b.Width; x++ {
			edge = append(edge, Coordinate{X: x, Y: 0})
		}
	case DirectionSouth:
		for x := 0; x < b.Width; x++ {
			edge = append(edge, Coordinate{X: x, Y: b.Height - 1})
		}
	case DirectionWest:
		for y := 0; y < b.Height; y++ {
			edge = append(edge, Coordinate{X: 0, Y: y})
		}
	case DirectionEast:
		for y := 0; y < b.Height; y++ {
			edge = append(edge, Coordinate{X: b.Width - 1, Y: y})
		}
	}
	return edge
}

// reachable returns the set of squares occupied by player that can
// reach the player's root through same-owner cardinal adjacency. The
// walk is seeded at the root, so it is empty when the root square
// itself is not held by the player.
func (b *Board) reachable(player int) map[Coordinate]bool {
	reached := make(map[Coordinate]bool)
	if player < 0 || player >= len(b.Roots) {
		return reached
	}

	root := b.Roots[player]
	if !b.Cells[root.Y][root.X].OccupiedBy(player) {
		return reached
	}

	queue := []Coordinate{root}
	reached[root] = true
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, n := range b.Neighbours(current) {
			if reached[n.Pos] || !n.Square.OccupiedBy(player) {
				continue
			}
			reached[n.Pos] = true
			queue = append(queue, n.Pos)
		}
	}
	return reached
}

// DisconnectedSquares returns every occupied square that cannot reach
// its owner's root, in row-major order. An empty result means the
// connectivity invariant holds.
func (b *Board) DisconnectedSquares() []Coordinate {
	reachedByPlayer := make([]map[Coordinate]bool, len(b.Roots))
	for player := range b.Roots {
		reachedByPlayer[player] = b.reachable(player)
	}

	var disconnected []Coordinate
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			sq := b.Cells[y][x]
			if sq.IsEmpty() {
				continue
			}
			pos := Coordinate{X: x, Y: y}
			if sq.Player < 0 || sq.Player >= len(reachedByPlayer) || !reachedByPlayer[sq.Player][pos] {
				disconnected = append(disconnected, pos)
			}
		}
	}
	return disconnected
}

// ParseBoard builds a board from its text rendering: space-separated
// rows, one character per cell, underscore for empty. Ownership is not
// part of the text; it is recovered by walking out from each root, so
// every letter in the text must be connected to exactly one root.
func ParseBoard(text string, roots []Coordinate, orientations []Direction) (*Board, error) {
	if len(roots) != len(orientations) {
		return nil, fmt.Errorf("got %d roots but %d orientations", len(roots), len(orientations))
	}

	rows := strings.Split(strings.TrimSpace(text), "\n")
	height := len(rows)
	if height == 0 {
		return nil, fmt.Errorf("board text is empty")
	}
	width := len(strings.Fields(rows[0]))

	b := &Board{
		Width:        width,
		Height:       height,
		Cells:        make([][]Square, height),
		Roots:        roots,
		Orientations: orientations,
	}
	for y, row := range rows {
		fields := strings.Fields(row)
		if len(fields) != width {
			return nil, fmt.Errorf("row %d has %d cells, want %d", y, len(fields), width)
		}
		b.Cells[y] = make([]Square, width)
		for x, field := range fields {
			if len([]rune(field)) != 1 {
				return nil, fmt.Errorf("cell %v is %q, want a single character", Coordinate{X: x, Y: y}, field)
			}
			letter := []rune(field)[0]
			if letter == '_' {
				continue
			}
			b.Cells[y][x] = Square{Player: unowned, Letter: letter}
		}
	}

	for player, root := range roots {
		if !b.InBounds(root) {
			return nil, &OutOfBoundsError{Pos: root, Width: width, Height: height}
		}
		b.claimFrom(root, player)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if b.Cells[y][x].Player == unowned && !b.Cells[y][x].IsEmpty() {
				return nil, fmt.Errorf("square at %v is not connected to any root", Coordinate{X: x, Y: y})
			}
		}
	}

	return b, nil
}

// unowned marks parsed letters awaiting root assignment
const unowned = -1

// claimFrom assigns every unowned letter reachable from the given
// coordinate to player
func (b *Board) claimFrom(start Coordinate, player int) {
	if b.Cells[start.Y][start.X].IsEmpty() || b.Cells[start.Y][start.X].Player != unowned {
		return
	}
	b.Cells[start.Y][start.X].Player = player

	queue := []Coordinate{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, n := range b.Neighbours(current) {
			if n.Square.IsEmpty() || n.Square.Player != unowned {
				continue
			}
			b.Cells[n.Pos.Y][n.Pos.X].Player = player
			queue = append(queue, n.Pos)
		}
	}
}

// String renders the board in the parseable text format
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.Width; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			if b.Cells[y][x].IsEmpty() {
				sb.WriteByte('_')
			} else {
				sb.WriteRune(b.Cells[y][x].Letter)
			}
		}
	}
	return sb.String()
}
