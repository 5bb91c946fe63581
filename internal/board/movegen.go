package board

// Fixed step offsets for non-sliding pieces.
var (
	knightSteps = []Direction{
		{-1, -2}, {-1, 2}, {-2, -1}, {-2, 1},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	kingSteps = AllDirections
)

// PseudoMoves returns the destinations the piece on sq could reach by its
// movement pattern alone, without regard to its own king's safety.
// Moves are generated for the piece's own color, whichever side is to move.
//
// With testingCheckOnly set the result is the set of squares the piece
// attacks: castling is never considered (attack testing must not ask
// whether a king may castle), and pawns report their capture diagonals
// instead of their pushes.
func PseudoMoves(p *Position, sq Square, testingCheckOnly bool) []Square {
	piece := p.PieceAt(sq)
	if piece.IsEmpty() {
		return nil
	}

	switch piece.Kind {
	case Pawn, PawnUnmoved:
		if testingCheckOnly {
			return pawnAttacks(p, sq, piece)
		}
		return pawnMoves(p, sq, piece)
	case Rook, RookUnmoved:
		return Cast(p, sq, piece.Color, Orthogonal)
	case Bishop:
		return Cast(p, sq, piece.Color, Diagonal)
	case Queen:
		return Cast(p, sq, piece.Color, AllDirections)
	case Knight:
		return steps(p, sq, piece.Color, knightSteps)
	case King:
		return steps(p, sq, piece.Color, kingSteps)
	case KingUnmoved:
		moves := steps(p, sq, piece.Color, kingSteps)
		if !testingCheckOnly {
			moves = appendCastling(moves, p, sq, piece.Color)
		}
		return moves
	}
	return nil
}

// steps returns each in-bounds offset not occupied by a friendly piece.
func steps(p *Position, sq Square, mover Color, offsets []Direction) []Square {
	out := make([]Square, 0, len(offsets))
	for _, d := range offsets {
		to := sq.Offset(d.DRow, d.DCol)
		if !to.Valid() {
			continue
		}
		if occupant := p.PieceAt(to); occupant.IsEmpty() || occupant.Color != mover {
			out = append(out, to)
		}
	}
	return out
}

// pawnMoves generates pushes, captures and en passant for one pawn.
func pawnMoves(p *Position, sq Square, pawn Piece) []Square {
	var out []Square
	fwd := pawn.Color.Forward()

	one := sq.Offset(fwd, 0)
	if one.Valid() && p.IsEmpty(one) {
		out = append(out, one)
		if pawn.Kind == PawnUnmoved {
			two := sq.Offset(2*fwd, 0)
			if two.Valid() && p.IsEmpty(two) {
				out = append(out, two)
			}
		}
	}

	for _, dc := range []int{-1, 1} {
		to := sq.Offset(fwd, dc)
		if !to.Valid() {
			continue
		}
		occupant := p.PieceAt(to)
		switch {
		case !occupant.IsEmpty():
			if occupant.Color != pawn.Color {
				out = append(out, to)
			}
		case enPassantVictim(p, sq, dc, pawn.Color):
			out = append(out, to)
		}
	}
	return out
}

// pawnAttacks returns the diagonal squares a pawn controls.
func pawnAttacks(p *Position, sq Square, pawn Piece) []Square {
	var out []Square
	for _, dc := range []int{-1, 1} {
		to := sq.Offset(pawn.Color.Forward(), dc)
		if !to.Valid() {
			continue
		}
		if occupant := p.PieceAt(to); occupant.IsEmpty() || occupant.Color != pawn.Color {
			out = append(out, to)
		}
	}
	return out
}

// enPassantVictim reports whether the pawn of color mover on sq may capture
// en passant toward column offset dc. That holds only when the enemy pawn
// beside it arrived there with a double advance on the previous move.
func enPassantVictim(p *Position, sq Square, dc int, mover Color) bool {
	prev := p.previous
	if prev == nil {
		return false
	}
	fwd := mover.Forward()

	beside := sq.Offset(0, dc)
	if !beside.Valid() {
		return false
	}
	victim := p.PieceAt(beside)
	if victim.Kind != Pawn || victim.Color == mover {
		return false
	}

	// Where the victim stood one ply ago, two rows further along our path.
	origin := sq.Offset(2*fwd, dc)
	passed := sq.Offset(fwd, dc)
	if !origin.Valid() || !passed.Valid() {
		return false
	}
	return prev.PieceAt(origin) == NewPiece(PawnUnmoved, victim.Color) &&
		prev.IsEmpty(beside) &&
		prev.IsEmpty(passed) &&
		p.IsEmpty(origin)
}
