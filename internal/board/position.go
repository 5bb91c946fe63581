package board

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Position represents a complete chess position.
// A Position is never modified after construction; every move produces a
// new one, so positions may be shared freely between goroutines.
type Position struct {
	cells [8][8]Piece

	sideToMove Color

	// King positions, kept in step with cells by the transition engine.
	kingSquare [2]Square

	// The position before the last move, consulted only for en passant.
	previous *Position

	ply int
}

// NewGame creates the starting position.
func NewGame() *Position {
	p := &Position{sideToMove: White}

	back := [8]PieceKind{RookUnmoved, Knight, Bishop, Queen, KingUnmoved, Bishop, Knight, RookUnmoved}
	for col := 0; col < 8; col++ {
		for _, c := range []Color{White, Black} {
			p.cells[c.HomeRow()][col] = NewPiece(back[col], c)
			p.cells[c.PawnRow()][col] = NewPiece(PawnUnmoved, c)
		}
	}
	p.kingSquare[White] = E1
	p.kingSquare[Black] = E8

	return p
}

// copy returns a shallow copy that shares the previous chain.
func (p *Position) copy() *Position {
	newPos := *p
	return &newPos
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
func (p *Position) PieceAt(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return p.cells[sq.Row()][sq.Col()]
}

// IsEmpty returns true if the square is empty.
func (p *Position) IsEmpty(sq Square) bool {
	return p.PieceAt(sq).IsEmpty()
}

// set places a piece on a square. Only used while a position is being built.
func (p *Position) set(sq Square, piece Piece) {
	p.cells[sq.Row()][sq.Col()] = piece
}

// SideToMove returns the color whose turn it is.
func (p *Position) SideToMove() Color {
	return p.sideToMove
}

// KingSquare returns the cached square of the given color's king.
func (p *Position) KingSquare(c Color) Square {
	return p.kingSquare[c]
}

// Previous returns the position before the last move, or nil for a
// position that was not reached by a move.
func (p *Position) Previous() *Position {
	return p.previous
}

// Ply returns the number of moves made since the first position.
func (p *Position) Ply() int {
	return p.ply
}

// Cells returns a copy of the grid.
func (p *Position) Cells() [8][8]Piece {
	return p.cells
}

// Squares returns every square holding a piece of color c, in row-major order.
func (p *Position) Squares(c Color) []Square {
	out := make([]Square, 0, 16)
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			piece := p.cells[row][col]
			if !piece.IsEmpty() && piece.Color == c {
				out = append(out, NewSquare(row, col))
			}
		}
	}
	return out
}

// String returns a visual representation of the position.
func (p *Position) String() string {
	var b strings.Builder
	b.WriteString("\n   0 1 2 3 4 5 6 7\n")
	for row := 0; row < 8; row++ {
		fmt.Fprintf(&b, "%d  ", row)
		for col := 0; col < 8; col++ {
			piece := p.cells[row][col]
			if piece.IsEmpty() {
				b.WriteString(". ")
			} else {
				b.WriteString(piece.String() + " ")
			}
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\nSide to move: %s\n", p.sideToMove)
	return b.String()
}

// Validate checks the structural invariants of the position and reports
// every violation it finds.
func (p *Position) Validate() error {
	var errs *multierror.Error
	violation := func(format string, args ...interface{}) {
		errs = multierror.Append(errs, fmt.Errorf("%w: %s", ErrInvalidSetup, fmt.Sprintf(format, args...)))
	}

	if p.sideToMove >= NoColor {
		violation("side to move is %s", p.sideToMove)
	}

	var kings [2][]Square
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			piece := p.cells[row][col]
			if piece.IsEmpty() {
				continue
			}
			sq := NewSquare(row, col)
			if piece.Color >= NoColor {
				violation("piece on %s has no color", sq)
				continue
			}
			c := piece.Color
			switch piece.Kind {
			case Pawn, PawnUnmoved:
				if row == 0 || row == 7 {
					violation("%s pawn on back rank square %s", c, sq)
				}
				if piece.Kind == PawnUnmoved && row != c.PawnRow() {
					violation("%s unmoved pawn off its starting row at %s", c, sq)
				}
			case RookUnmoved:
				if row != c.HomeRow() || (col != 0 && col != 7) {
					violation("%s unmoved rook off its corner at %s", c, sq)
				}
			case King, KingUnmoved:
				kings[c] = append(kings[c], sq)
				if piece.Kind == KingUnmoved && sq != NewSquare(c.HomeRow(), 4) {
					violation("%s unmoved king off its home square at %s", c, sq)
				}
			}
		}
	}

	for _, c := range []Color{White, Black} {
		switch {
		case len(kings[c]) != 1:
			violation("%s must have exactly one king, found %d", c, len(kings[c]))
		case kings[c][0] != p.kingSquare[c]:
			violation("%s king is on %s but recorded on %s", c, kings[c][0], p.kingSquare[c])
		}
	}

	// The side that just moved cannot have left its king attacked.
	if errs == nil {
		mover := p.sideToMove.Other()
		if IsAttacked(p, p.kingSquare[mover], p.sideToMove) {
			violation("%s king on %s is capturable", mover, p.kingSquare[mover])
		}
	}

	return errs.ErrorOrNil()
}
