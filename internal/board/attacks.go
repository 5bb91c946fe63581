package board

// CastleSide selects the rook a king castles with.
type CastleSide uint8

const (
	// KingSide castles toward column 7 (the h-file rook).
	KingSide CastleSide = iota
	// QueenSide castles toward column 0 (the a-file rook).
	QueenSide
)

// String returns the side name.
func (cs CastleSide) String() string {
	if cs == KingSide {
		return "kingside"
	}
	return "queenside"
}

// dir returns the column step from the king toward the castling rook.
func (cs CastleSide) dir() int {
	if cs == KingSide {
		return 1
	}
	return -1
}

// corner returns the column of the castling rook.
func (cs CastleSide) corner() int {
	if cs == KingSide {
		return 7
	}
	return 0
}

// IsAttacked returns true if any piece of color by attacks sq.
func IsAttacked(p *Position, sq Square, by Color) bool {
	for _, from := range p.Squares(by) {
		for _, to := range PseudoMoves(p, from, true) {
			if to == sq {
				return true
			}
		}
	}
	return false
}

// InCheck returns true if the side to move is in check.
func InCheck(p *Position) bool {
	us := p.sideToMove
	return IsAttacked(p, p.kingSquare[us], us.Other())
}

// CanCastle returns true if the side to move may castle on the given side
// right now.
func CanCastle(p *Position, side CastleSide) bool {
	us := p.sideToMove
	return canCastle(p, p.kingSquare[us], us, side)
}

// canCastle checks every castling precondition for the king of color us
// standing on ksq.
func canCastle(p *Position, ksq Square, us Color, side CastleSide) bool {
	if p.PieceAt(ksq) != NewPiece(KingUnmoved, us) {
		return false
	}

	rookSq := NewSquare(ksq.Row(), side.corner())
	if p.PieceAt(rookSq) != NewPiece(RookUnmoved, us) {
		return false
	}

	// Everything between king and rook must be empty.
	step := side.dir()
	for sq := ksq.Offset(0, step); sq != rookSq; sq = sq.Offset(0, step) {
		if !sq.Valid() {
			return false
		}
		if !p.IsEmpty(sq) {
			return false
		}
	}

	// The king may not castle out of, through or into an attacked square.
	them := us.Other()
	for i := 0; i <= 2; i++ {
		if IsAttacked(p, ksq.Offset(0, i*step), them) {
			return false
		}
	}
	return true
}

// appendCastling adds the two-column king destinations that are legal.
func appendCastling(moves []Square, p *Position, ksq Square, us Color) []Square {
	for _, side := range []CastleSide{KingSide, QueenSide} {
		if canCastle(p, ksq, us, side) {
			moves = append(moves, ksq.Offset(0, 2*side.dir()))
		}
	}
	return moves
}
