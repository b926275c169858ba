package model

// Word is an ordered run of same-owner occupied squares along one axis
type Word []Coordinate

// WordsThrough returns every maximal same-owner run passing through the
// occupied square at the given coordinate, one per axis. Runs along the
// owner's orientation axis read in the orientation direction; runs
// along the other axis read in increasing coordinate order. An axis run
// of length 1 is dropped when the other axis yields a longer run, but a
// letter isolated on both axes still counts as a single-letter word.
// Returns nil for an empty or out-of-bounds coordinate.
func (b *Board) WordsThrough(c Coordinate) []Word {
	sq, err := b.Get(c)
	if err != nil || sq.IsEmpty() {
		return nil
	}
	owner := sq.Player

	horizontal := b.axisRun(c, owner, 1, 0)
	vertical := b.axisRun(c, owner, 0, 1)

	if owner >= 0 && owner < len(b.Orientations) {
		switch b.Orientations[owner] {
		case DirectionNorth:
			reverse(vertical)
		case DirectionWest:
			reverse(horizontal)
		}
	}

	var words []Word
	if len(horizontal) > 1 {
		words = append(words, horizontal)
	}
	if len(vertical) > 1 {
		words = append(words, vertical)
	}
	if len(words) == 0 {
		words = append(words, Word{c})
	}
	return words
}

// axisRun collects the maximal run of squares occupied by owner through
// c along the axis given by the unit offset, in increasing order
func (b *Board) axisRun(c Coordinate, owner, dx, dy int) Word {
	start := c
	for {
		prev := Coordinate{X: start.X - dx, Y: start.Y - dy}
		if !b.InBounds(prev) || !b.Cells[prev.Y][prev.X].OccupiedBy(owner) {
			break
		}
		start = prev
	}

	var run Word
	for pos := start; b.InBounds(pos) && b.Cells[pos.Y][pos.X].OccupiedBy(owner); pos = (Coordinate{X: pos.X + dx, Y: pos.Y + dy}) {
		run = append(run, pos)
	}
	return run
}

// WordStrings maps words to the letters they spell, in word order. A
// word referencing an empty square is a caller-side invariant violation
// and yields an EmptySquareError.
func (b *Board) WordStrings(words []Word) ([]string, error) {
	strs := make([]string, 0, len(words))
	for _, word := range words {
		letters := make([]rune, 0, len(word))
		for _, pos := range word {
			sq, err := b.Get(pos)
			if err != nil {
				return nil, err
			}
			if sq.IsEmpty() {
				return nil, &EmptySquareError{Pos: pos}
			}
			letters = append(letters, sq.Letter)
		}
		strs = append(strs, string(letters))
	}
	return strs, nil
}

func reverse(w Word) {
	for i, j := 0, len(w)-1; i < j; i, j = i+1, j-1 {
		w[i], w[j] = w[j], w[i]
	}
}
