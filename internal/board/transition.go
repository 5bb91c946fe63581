package board

import (
	"fmt"

	"github.com/pkg/errors"
)

// ApplyMove returns the position after moving the piece on from to to.
// It does not check legality; callers pick moves from LegalMoves or use
// Play. The only failure is an empty origin square.
func ApplyMove(p *Position, from, to Square) (*Position, error) {
	if !from.Valid() || !to.Valid() {
		return nil, errors.Wrapf(ErrInvalidMove, "%s-%s off the board", from, to)
	}
	if p.IsEmpty(from) {
		return nil, errors.Wrapf(ErrInvalidMove, "no piece on %s", from)
	}
	return p.apply(from, to), nil
}

// Play applies a move after confirming that from holds a piece of the side
// to move and that to is one of its legal destinations.
func Play(p *Position, from, to Square) (*Position, error) {
	piece := p.PieceAt(from)
	switch {
	case !from.Valid() || !to.Valid():
		return nil, errors.Wrapf(ErrInvalidMove, "%s-%s off the board", from, to)
	case piece.IsEmpty():
		return nil, errors.Wrapf(ErrInvalidMove, "no piece on %s", from)
	case piece.Color != p.sideToMove:
		return nil, errors.Wrapf(ErrInvalidMove, "%s on %s belongs to %s", piece.Kind.Demote(), from, piece.Color)
	}
	for _, sq := range LegalMoves(p, from) {
		if sq == to {
			return p.apply(from, to), nil
		}
	}
	return nil, errors.Wrapf(ErrInvalidMove, "%s on %s cannot reach %s", piece.Kind.Demote(), from, to)
}

// apply builds the successor position. from must hold a piece.
func (p *Position) apply(from, to Square) *Position {
	next := p.copy()
	next.previous = p
	next.ply = p.ply + 1

	mover := p.PieceAt(from)
	us := mover.Color
	moved := mover.Moved()

	next.set(from, NoPiece)
	next.set(to, moved)

	switch moved.Kind {
	case King:
		next.kingSquare[us] = to

		// A two-column king move is castling: the rook hops over.
		if dc := to.Col() - from.Col(); dc == 2 || dc == -2 {
			side := KingSide
			if dc < 0 {
				side = QueenSide
			}
			corner := NewSquare(from.Row(), side.corner())
			next.set(rookLanding(to, side), next.PieceAt(corner).Moved())
			next.set(corner, NoPiece)
		}

	case Pawn:
		if to.Row() == 0 || to.Row() == 7 {
			next.set(to, NewPiece(Queen, us))
		}

		// Diagonal onto an empty square can only be en passant.
		if to.Col() != from.Col() && p.IsEmpty(to) {
			next.set(NewSquare(from.Row(), to.Col()), NoPiece)
		}
	}

	next.sideToMove = us.Other()

	if ks := next.kingSquare[us]; !next.PieceAt(ks).Kind.IsKing() || next.PieceAt(ks).Color != us {
		panic(fmt.Errorf("%w: %s king recorded on %s after %s-%s", ErrCorruptPosition, us, ks, from, to))
	}
	return next
}

// rookLanding returns the square the castling rook lands on: next to the
// king's destination, on the side facing the centre.
func rookLanding(kingTo Square, side CastleSide) Square {
	return kingTo.Offset(0, -side.dir())
}
