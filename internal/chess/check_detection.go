package chess

// KingPosition returns the cell of colour's king. The first king found in
// row-major order is used; ok is false when there is none.
func (b *Board) KingPosition(colour Colour) (Coord, bool) {
	for _, p := range b.Pieces() {
		if p.IsKing() && p.colour == colour {
			return p.pos, true
		}
	}
	return Coord{}, false
}

// InCheck returns true if colour's king stands on a cell reachable by a
// pseudo-legal move of any opposing piece. A colour without a king is never
// in check.
func (b *Board) InCheck(colour Colour) bool {
	kingPos, ok := b.KingPosition(colour)
	if !ok {
		return false
	}
	return b.IsAttacked(kingPos, colour.Opposite())
}

// IsAttacked returns true if any piece of byColour has c among its
// pseudo-legal destinations.
func (b *Board) IsAttacked(c Coord, byColour Colour) bool {
	for _, p := range b.Pieces() {
		if p.colour != byColour {
			continue
		}
		for _, to := range p.Moves() {
			if to == c {
				return true
			}
		}
	}
	return false
}
