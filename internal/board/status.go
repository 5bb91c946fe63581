package board

// GameStatus classifies a position.
type GameStatus uint8

const (
	Ongoing GameStatus = iota
	Checkmate
	Stalemate
)

// String returns the status name.
func (s GameStatus) String() string {
	switch s {
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	default:
		return "Ongoing"
	}
}

// Over returns true for checkmate and stalemate.
func (s GameStatus) Over() bool {
	return s != Ongoing
}

// Status reports whether the side to move is checkmated, stalemated or
// still has a move.
func Status(p *Position) GameStatus {
	if HasLegalMoves(p) {
		return Ongoing
	}
	if InCheck(p) {
		return Checkmate
	}
	return Stalemate
}

// IsCheckmate returns true if the side to move is checkmated.
func IsCheckmate(p *Position) bool {
	return Status(p) == Checkmate
}

// IsStalemate returns true if the side to move is stalemated.
func IsStalemate(p *Position) bool {
	return Status(p) == Stalemate
}
