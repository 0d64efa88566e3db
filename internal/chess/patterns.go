package chess

var (
	knightOffsets = []Offset{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	kingOffsets = []Offset{
		{-1, -1}, {-1, 0}, {-1, 1}, {0, -1},
		{0, 1}, {1, -1}, {1, 0}, {1, 1},
	}

	diagonalDirs = []Offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = []Offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// stepOffsets holds the fixed offset set for each stepping kind.
var stepOffsets = map[Kind][]Offset{
	Knight: knightOffsets,
	King:   kingOffsets,
}

// slideDirections holds the direction vectors for each sliding kind.
var slideDirections = map[Kind][]Offset{
	Bishop: diagonalDirs,
	Rook:   straightDirs,
	Queen:  append(append([]Offset{}, straightDirs...), diagonalDirs...),
}

// steppingMoves evaluates each offset once: in-bounds cells that are empty
// or hold an enemy piece are candidates. Nothing blocks a step.
func (p *Piece) steppingMoves(offsets []Offset) []Coord {
	moves := make([]Coord, 0, len(offsets))
	for _, off := range offsets {
		to := p.pos.Add(off)
		if !p.board.WithinBounds(to.Row, to.Col) {
			continue
		}
		if ok, _ := p.target(to); ok {
			moves = append(moves, to)
		}
	}
	return moves
}

// slidingMoves walks each direction until the board edge or an occupant.
// An enemy occupant is included as a capture; a friendly one is not.
func (p *Piece) slidingMoves(dirs []Offset) []Coord {
	var moves []Coord
	for _, dir := range dirs {
		to := p.pos.Add(dir)
		for p.board.WithinBounds(to.Row, to.Col) {
			ok, occupied := p.target(to)
			if ok {
				moves = append(moves, to)
			}
			if occupied {
				break // Blocked
			}
			to = to.Add(dir)
		}
	}
	return moves
}
