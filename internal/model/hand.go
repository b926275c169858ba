package model

// Hands tracks every player's rack of held tiles
type Hands struct {
	Racks [][]rune `json:"racks"`
}

// NewHands deals handSize tiles to each player from the bag
func NewHands(players, handSize int, bag *Bag) *Hands {
	racks := make([][]rune, players)
	for p := range racks {
		racks[p] = make([]rune, 0, handSize)
		for i := 0; i < handSize; i++ {
			tile, ok := bag.Draw()
			if !ok {
				break
			}
			racks[p] = append(racks[p], tile)
		}
	}
	return &Hands{Racks: racks}
}

// Rack returns the given player's held tiles
func (h *Hands) Rack(player int) ([]rune, error) {
	if player < 0 || player >= len(h.Racks) {
		return nil, &InvalidPlayerError{Player: player}
	}
	return h.Racks[player], nil
}

// UseTile removes one copy of the tile from the player's rack
func (h *Hands) UseTile(player int, tile rune) error {
	if player < 0 || player >= len(h.Racks) {
		return &InvalidPlayerError{Player: player}
	}
	for i, held := range h.Racks[player] {
		if held == tile {
			h.Racks[player] = append(h.Racks[player][:i], h.Racks[player][i+1:]...)
			return nil
		}
	}
	return &TileUnavailableError{Player: player, Tile: tile}
}

// ReturnTile gives a tile back to its owner's rack. Tiles only come
// back off the board, so the owner index is trusted.
func (h *Hands) ReturnTile(player int, tile rune) {
	if player < 0 || player >= len(h.Racks) {
		return
	}
	h.Racks[player] = append(h.Racks[player], tile)
}
