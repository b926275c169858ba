package model

// Rand is the randomness a bag needs; satisfied by dependencies/random
type Rand interface {
	Intn(n int) int
}

// standard tile distribution, close to an English letter-frequency set
var letterCounts = []struct {
	letter rune
	count  int
}{
	{'E', 12}, {'A', 9}, {'I', 9}, {'O', 8}, {'N', 6}, {'R', 6}, {'T', 6},
	{'L', 4}, {'S', 4}, {'U', 4}, {'D', 4}, {'G', 3},
	{'B', 2}, {'C', 2}, {'M', 2}, {'P', 2}, {'F', 2}, {'H', 2}, {'V', 2}, {'W', 2}, {'Y', 2},
	{'K', 1}, {'J', 1}, {'X', 1}, {'Q', 1}, {'Z', 1},
}

// Bag holds the undrawn tiles for a game. Tiles are shuffled once at
// creation and drawn from the end, so a persisted bag replays the same
// draw order.
type Bag struct {
	Tiles []rune `json:"tiles"`
}

// NewBag creates a full bag shuffled with the given randomness source
func NewBag(r Rand) *Bag {
	var tiles []rune
	for _, lc := range letterCounts {
		for i := 0; i < lc.count; i++ {
			tiles = append(tiles, lc.letter)
		}
	}
	for i := len(tiles) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		tiles[i], tiles[j] = tiles[j], tiles[i]
	}
	return &Bag{Tiles: tiles}
}

// Draw removes and returns the next tile; ok is false once the bag is empty
func (b *Bag) Draw() (tile rune, ok bool) {
	if len(b.Tiles) == 0 {
		return 0, false
	}
	tile = b.Tiles[len(b.Tiles)-1]
	b.Tiles = b.Tiles[:len(b.Tiles)-1]
	return tile, true
}

// Remaining returns the number of undrawn tiles
func (b *Bag) Remaining() int {
	return len(b.Tiles)
}
