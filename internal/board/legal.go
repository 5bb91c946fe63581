package board

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// LegalMoves returns the destinations the piece on sq may move to.
// It is empty unless sq holds a piece of the side to move.
func LegalMoves(p *Position, sq Square) []Square {
	piece := p.PieceAt(sq)
	if piece.IsEmpty() || piece.Color != p.sideToMove {
		return nil
	}
	return p.filterLegal(sq, PseudoMoves(p, sq, false))
}

// AllLegalMoves returns the legal destinations of every piece of the side
// to move, keyed by origin square. Pieces without a legal move are omitted.
func AllLegalMoves(p *Position) map[Square][]Square {
	out := make(map[Square][]Square)
	for _, from := range p.Squares(p.sideToMove) {
		if moves := LegalMoves(p, from); len(moves) > 0 {
			out[from] = moves
		}
	}
	return out
}

// AllLegalMovesParallel is AllLegalMoves with one task per piece.
// A corrupt position panics on the calling goroutine, as it would in
// AllLegalMoves.
func AllLegalMovesParallel(p *Position) map[Square][]Square {
	origins := p.Squares(p.sideToMove)
	results := make([][]Square, len(origins))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, from := range origins {
		i, from := i, from
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					if e, ok := r.(error); ok {
						err = errors.Wrapf(e, "legal moves from %s", from)
						return
					}
					err = errors.Errorf("legal moves from %s: %v", from, r)
				}
			}()
			results[i] = LegalMoves(p, from)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		panic(err)
	}

	out := make(map[Square][]Square)
	for i, from := range origins {
		if len(results[i]) > 0 {
			out[from] = results[i]
		}
	}
	return out
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(p *Position) bool {
	for _, from := range p.Squares(p.sideToMove) {
		for _, to := range PseudoMoves(p, from, false) {
			if p.isLegal(from, to) {
				return true
			}
		}
	}
	return false
}

// CountLegalMoves returns the total number of legal moves for the side to move.
func CountLegalMoves(p *Position) int {
	n := 0
	for _, moves := range AllLegalMovesParallel(p) {
		n += len(moves)
	}
	return n
}

// filterLegal keeps the candidates that do not leave the mover's king attacked.
func (p *Position) filterLegal(from Square, candidates []Square) []Square {
	legal := make([]Square, 0, len(candidates))
	for _, to := range candidates {
		if p.isLegal(from, to) {
			legal = append(legal, to)
		}
	}
	return legal
}

// isLegal plays the move on a fresh position and tests the mover's king.
func (p *Position) isLegal(from, to Square) bool {
	us := p.PieceAt(from).Color
	next := p.apply(from, to)
	return !IsAttacked(next, next.kingSquare[us], us.Other())
}
