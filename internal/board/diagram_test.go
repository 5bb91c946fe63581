package board

import "testing"

// diagram builds a position from eight rows of piece letters, row 0 first.
// '.' is an empty square. Pawns on their starting row, kings on their home
// square and rooks on their home corners are placed in the Unmoved state.
func diagram(t *testing.T, side Color, rows ...string) *Position {
	t.Helper()
	if len(rows) != 8 {
		t.Fatalf("diagram needs 8 rows, got %d", len(rows))
	}

	s := NewSetup().SideToMove(side)
	for row, line := range rows {
		if len(line) != 8 {
			t.Fatalf("diagram row %d has %d squares", row, len(line))
		}
		for col := 0; col < 8; col++ {
			if line[col] == '.' {
				continue
			}
			piece := PieceFromChar(line[col])
			if piece.IsEmpty() {
				t.Fatalf("diagram row %d: bad piece %q", row, line[col])
			}
			s.Place(NewSquare(row, col), unmovedAt(piece, row, col))
		}
	}

	pos, err := s.Build()
	if err != nil {
		t.Fatalf("diagram: %v", err)
	}
	return pos
}

func unmovedAt(piece Piece, row, col int) Piece {
	c := piece.Color
	switch piece.Kind {
	case Pawn:
		if row == c.PawnRow() {
			return NewPiece(PawnUnmoved, c)
		}
	case King:
		if row == c.HomeRow() && col == 4 {
			return NewPiece(KingUnmoved, c)
		}
	case Rook:
		if row == c.HomeRow() && (col == 0 || col == 7) {
			return NewPiece(RookUnmoved, c)
		}
	}
	return piece
}

// play applies a sequence of algebraic square pairs, failing on the first
// illegal one.
func play(t *testing.T, p *Position, moves ...string) *Position {
	t.Helper()
	for _, m := range moves {
		if len(m) != 4 {
			t.Fatalf("bad move %q", m)
		}
		next, err := Play(p, MustSquare(m[:2]), MustSquare(m[2:]))
		if err != nil {
			t.Fatalf("play %s: %v\n%s", m, err, p)
		}
		p = next
	}
	return p
}
