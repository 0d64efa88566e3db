package chess

// HasLegalMoves returns true if any piece of colour has a legal move.
func (b *Board) HasLegalMoves(colour Colour) bool {
	for _, p := range b.PiecesOf(colour) {
		if len(p.ValidMoves()) > 0 {
			return true
		}
	}
	return false
}

// LegalMoves returns every legal (from, to) pair for colour, grouped by
// piece in row-major order.
func (b *Board) LegalMoves(colour Colour) []MovePair {
	var moves []MovePair
	for _, p := range b.PiecesOf(colour) {
		for _, to := range p.ValidMoves() {
			moves = append(moves, MovePair{From: p.pos, To: to})
		}
	}
	return moves
}

// Checkmate returns true if colour is in check and has no legal move.
func (b *Board) Checkmate(colour Colour) bool {
	if !b.InCheck(colour) {
		return false
	}
	return !b.HasLegalMoves(colour)
}

// Stalemate returns true if colour is not in check but has no legal move.
func (b *Board) Stalemate(colour Colour) bool {
	if b.InCheck(colour) {
		return false
	}
	return !b.HasLegalMoves(colour)
}
