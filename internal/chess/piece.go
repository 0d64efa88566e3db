package chess

// Piece is one chess piece living on a Board.
//
// The board pointer is a non-owning back-reference used only to read
// occupancy and bounds. Only the Board changes a piece's position.
type Piece struct {
	kind   Kind
	colour Colour
	pos    Coord
	board  *Board
}

// Kind returns the piece type.
func (p *Piece) Kind() Kind { return p.kind }

// Colour returns the piece colour.
func (p *Piece) Colour() Colour { return p.colour }

// Position returns the cell the piece occupies.
func (p *Piece) Position() Coord { return p.pos }

// IsKing reports whether the piece is the king used for check detection.
func (p *Piece) IsKing() bool { return p.kind == King }

// String returns e.g. "White Queen".
func (p *Piece) String() string {
	return p.colour.String() + " " + p.kind.String()
}

// Moves returns the pseudo-legal destinations: everything the movement
// pattern reaches given bounds and occupancy, ignoring self-check.
func (p *Piece) Moves() []Coord {
	switch p.kind.Pattern() {
	case Sliding:
		return p.slidingMoves(slideDirections[p.kind])
	case PawnStep:
		return p.pawnMoves()
	default:
		return p.steppingMoves(stepOffsets[p.kind])
	}
}

// ValidMoves returns the subset of Moves that do not leave the mover's own
// king in check. Every candidate is played out on a disposable copy.
func (p *Piece) ValidMoves() []Coord {
	candidates := p.Moves()
	valid := make([]Coord, 0, len(candidates))
	for _, to := range candidates {
		if !p.leavesKingInCheck(to) {
			valid = append(valid, to)
		}
	}
	return valid
}

// CanMoveTo reports whether to is among ValidMoves.
func (p *Piece) CanMoveTo(to Coord) bool {
	for _, c := range p.Moves() {
		if c == to {
			return !p.leavesKingInCheck(to)
		}
	}
	return false
}

// leavesKingInCheck plays the move on a copy of the board and reports
// whether the mover's colour is in check afterwards.
func (p *Piece) leavesKingInCheck(to Coord) bool {
	testBoard := p.board.Copy()
	testBoard.ApplyMove(p.pos, to)
	return testBoard.InCheck(p.colour)
}

// target classifies cell c from the piece's point of view: whether it can be
// entered (empty or enemy-held) and whether it is occupied at all.
func (p *Piece) target(c Coord) (bool, bool) {
	occupant := p.board.Get(c)
	if occupant == nil {
		return true, false
	}
	return occupant.colour != p.colour, true
}
