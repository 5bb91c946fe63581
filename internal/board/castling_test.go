package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var castlingRows = []string{
	"r...k..r",
	"........",
	"........",
	"........",
	"........",
	"........",
	"........",
	"R...K..R",
}

func castlingPosition(t *testing.T, side Color, extra map[Square]Piece) *Position {
	t.Helper()
	pos := diagram(t, side, castlingRows...)
	if len(extra) == 0 {
		return pos
	}
	s := NewSetup().SideToMove(side)
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := NewSquare(row, col)
			s.Place(sq, pos.PieceAt(sq))
		}
	}
	for sq, piece := range extra {
		s.Place(sq, piece)
	}
	built, err := s.Build()
	if err != nil {
		t.Fatalf("castling setup: %v", err)
	}
	return built
}

func TestCastlingAvailable(t *testing.T) {
	for _, side := range []Color{White, Black} {
		pos := castlingPosition(t, side, nil)
		if !CanCastle(pos, KingSide) || !CanCastle(pos, QueenSide) {
			t.Errorf("%s: kingside=%v queenside=%v, want both", side,
				CanCastle(pos, KingSide), CanCastle(pos, QueenSide))
		}

		ksq := pos.KingSquare(side)
		moves := LegalMoves(pos, ksq)
		for _, to := range []Square{ksq.Offset(0, 2), ksq.Offset(0, -2)} {
			if !containsSquare(moves, to) {
				t.Errorf("%s: king moves %v missing %s", side, moves, to)
			}
		}
	}
}

func TestCastlingMovesRook(t *testing.T) {
	tests := []struct {
		side             Color
		from, to         Square
		rookFrom, rookTo Square
	}{
		{White, E1, G1, H1, F1},
		{White, E1, C1, A1, D1},
		{Black, E8, G8, H8, F8},
		{Black, E8, C8, A8, D8},
	}

	for _, tc := range tests {
		pos := castlingPosition(t, tc.side, nil)
		next, err := Play(pos, tc.from, tc.to)
		if err != nil {
			t.Fatalf("%s %s-%s: %v", tc.side, tc.from, tc.to, err)
		}

		if got := next.PieceAt(tc.to); got != NewPiece(King, tc.side) {
			t.Errorf("%s-%s: king square holds %v", tc.from, tc.to, got)
		}
		if got := next.PieceAt(tc.rookTo); got != NewPiece(Rook, tc.side) {
			t.Errorf("%s-%s: rook landing %s holds %v, want moved rook", tc.from, tc.to, tc.rookTo, got)
		}
		if !next.IsEmpty(tc.rookFrom) || !next.IsEmpty(tc.from) {
			t.Errorf("%s-%s: corner or king origin not cleared", tc.from, tc.to)
		}
		if next.KingSquare(tc.side) != tc.to {
			t.Errorf("%s-%s: king square recorded as %s", tc.from, tc.to, next.KingSquare(tc.side))
		}
		if err := next.Validate(); err != nil {
			t.Errorf("%s-%s: %v", tc.from, tc.to, err)
		}
	}
}

func TestCastlingBlockedOrAttacked(t *testing.T) {
	tests := []struct {
		name                string
		extra               map[Square]Piece
		kingSide, queenSide bool
	}{
		{"knight on g1", map[Square]Piece{G1: NewPiece(Knight, White)}, false, true},
		{"knight on b1", map[Square]Piece{B1: NewPiece(Knight, White)}, true, false},
		{"enemy bishop on d1", map[Square]Piece{D1: NewPiece(Bishop, Black)}, true, false},
		{"f1 attacked", map[Square]Piece{F5: NewPiece(Rook, Black)}, false, true},
		{"g1 attacked", map[Square]Piece{G5: NewPiece(Rook, Black)}, false, true},
		{"d1 attacked", map[Square]Piece{D5: NewPiece(Rook, Black)}, true, false},
		{"c1 attacked", map[Square]Piece{C5: NewPiece(Rook, Black)}, true, false},
		// b1 is crossed by the rook only, so an attack there does not matter.
		{"b1 attacked", map[Square]Piece{B5: NewPiece(Rook, Black)}, true, true},
		{"in check", map[Square]Piece{E5: NewPiece(Rook, Black)}, false, false},
		{"pawn guards f1", map[Square]Piece{E2: NewPiece(Pawn, Black)}, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos := castlingPosition(t, White, tc.extra)
			if got := CanCastle(pos, KingSide); got != tc.kingSide {
				t.Errorf("kingside = %v, want %v", got, tc.kingSide)
			}
			if got := CanCastle(pos, QueenSide); got != tc.queenSide {
				t.Errorf("queenside = %v, want %v", got, tc.queenSide)
			}
			moves := LegalMoves(pos, E1)
			if containsSquare(moves, G1) != tc.kingSide || containsSquare(moves, C1) != tc.queenSide {
				t.Errorf("king moves %v disagree with castling rights", moves)
			}
		})
	}
}

func TestCastlingLostAfterMoving(t *testing.T) {
	t.Run("king moved", func(t *testing.T) {
		pos := castlingPosition(t, White, nil)
		pos = play(t, pos, "e1f1", "a8a7", "f1e1", "a7a8")
		if pos.PieceAt(E1) != NewPiece(King, White) {
			t.Fatalf("king should be in its moved state, got %v", pos.PieceAt(E1))
		}
		if CanCastle(pos, KingSide) || CanCastle(pos, QueenSide) {
			t.Error("castling allowed after the king moved")
		}
	})

	t.Run("rook moved", func(t *testing.T) {
		pos := castlingPosition(t, White, nil)
		pos = play(t, pos, "h1h2", "a8a7", "h2h1", "a7a8")
		if CanCastle(pos, KingSide) {
			t.Error("kingside castling allowed after the h1 rook moved")
		}
		if !CanCastle(pos, QueenSide) {
			t.Error("queenside castling lost although the a1 rook never moved")
		}
		if got := pos.PieceAt(A8); got != NewPiece(Rook, Black) {
			t.Errorf("a8 rook should be demoted, got %v", got)
		}
	})
}

func TestCastlingDestinationsOnlyWhenGenerating(t *testing.T) {
	pos := castlingPosition(t, White, nil)
	want := squares("d1", "f1", "d2", "e2", "f2")
	if diff := cmp.Diff(want, PseudoMoves(pos, E1, true), sortSquares); diff != "" {
		t.Errorf("attack set must exclude castling (-want +got):\n%s", diff)
	}
}

func containsSquare(list []Square, sq Square) bool {
	for _, s := range list {
		if s == sq {
			return true
		}
	}
	return false
}
