package chess

// pawnStartRow returns the row a pawn of colour c starts on.
func pawnStartRow(c Colour) int {
	if c == White {
		return WhiteBackRow - 1
	}
	return BlackBackRow + 1
}

// pawnMoves generates pawn candidates: forward onto empty cells only (two
// cells from the start row when both are empty) and diagonally forward onto
// enemy-held cells only.
func (p *Piece) pawnMoves() []Coord {
	var moves []Coord
	dir := Forward(p.colour)

	// Forward move
	one := Coord{Row: p.pos.Row + dir, Col: p.pos.Col}
	if p.board.WithinBounds(one.Row, one.Col) && p.board.Get(one) == nil {
		moves = append(moves, one)

		// Double push from starting row
		if p.pos.Row == pawnStartRow(p.colour) {
			two := Coord{Row: one.Row + dir, Col: one.Col}
			if p.board.WithinBounds(two.Row, two.Col) && p.board.Get(two) == nil {
				moves = append(moves, two)
			}
		}
	}

	// Captures
	for dc := -1; dc <= 1; dc += 2 {
		to := Coord{Row: p.pos.Row + dir, Col: p.pos.Col + dc}
		if !p.board.WithinBounds(to.Row, to.Col) {
			continue
		}
		if occupant := p.board.Get(to); occupant != nil && occupant.colour != p.colour {
			moves = append(moves, to)
		}
	}
	return moves
}
