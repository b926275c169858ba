package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Game errors
	ErrGameNotFound  = errors.New("game not found")
	ErrNotPlayerTurn = errors.New("not this player's turn")
	ErrGameComplete    = errors.New("game is already complete")
	ErrTooFewPlayers   = errors.New("a game needs at least two players")
	ErrTooManyPlayers  = errors.New("only two-player games are supported")
	ErrUnknownMoveKind = errors.New("unknown move kind")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
)

// OutOfBoundsError reports a coordinate outside the board
type OutOfBoundsError struct {
	Pos    Coordinate
	Width  int
	Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("coordinate %v is outside the %dx%d board", e.Pos, e.Width, e.Height)
}

// SquareOccupiedError reports a placement on a non-empty square
type SquareOccupiedError struct {
	Pos Coordinate
}

func (e *SquareOccupiedError) Error() string {
	return fmt.Sprintf("cannot place a tile in the occupied square at %v", e.Pos)
}

// NonAdjacentError reports a placement that touches none of the
// player's tiles and is not their root
type NonAdjacentError struct {
	Player int
	Pos    Coordinate
}

func (e *NonAdjacentError) Error() string {
	return fmt.Sprintf("player %d must place on their root or next to one of their tiles, not at %v", e.Player, e.Pos)
}

// InvalidPlayerError reports a player index with no seat in the game
type InvalidPlayerError struct {
	Player int
}

func (e *InvalidPlayerError) Error() string {
	return fmt.Sprintf("invalid player %d", e.Player)
}

// TileUnavailableError reports a tile the player does not hold
type TileUnavailableError struct {
	Player int
	Tile   rune
}

func (e *TileUnavailableError) Error() string {
	return fmt.Sprintf("player %d does not have the tile %q", e.Player, e.Tile)
}

// NotOwnedError reports a swap touching a square the player does not occupy
type NotOwnedError struct {
	Player int
	Pos    Coordinate
}

func (e *NotOwnedError) Error() string {
	return fmt.Sprintf("square at %v is not occupied by player %d", e.Pos, e.Player)
}

// EmptySquareError reports a word referencing an empty square. Words
// are discovered from occupied squares, so hitting this means the board
// was mutated underneath the caller.
type EmptySquareError struct {
	Pos Coordinate
}

func (e *EmptySquareError) Error() string {
	return fmt.Sprintf("word references the empty square at %v", e.Pos)
}
