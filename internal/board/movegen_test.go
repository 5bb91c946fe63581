package board

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var sortSquares = cmpopts.SortSlices(func(a, b Square) bool { return a < b })

func squares(names ...string) []Square {
	out := make([]Square, len(names))
	for i, n := range names {
		out[i] = MustSquare(n)
	}
	return out
}

func TestStartingPositionMoves(t *testing.T) {
	pos := NewGame()

	all := AllLegalMoves(pos)
	pawnMoves, knightMoves := 0, 0
	for from, dests := range all {
		switch pos.PieceAt(from).Kind {
		case PawnUnmoved:
			pawnMoves += len(dests)
		case Knight:
			knightMoves += len(dests)
		default:
			t.Errorf("%s on %s should not move, got %v", pos.PieceAt(from).Kind, from, dests)
		}
	}
	if pawnMoves != 16 || knightMoves != 4 {
		t.Errorf("got %d pawn and %d knight moves, want 16 and 4", pawnMoves, knightMoves)
	}

	// Black has nothing to move until White has moved.
	for _, sq := range pos.Squares(Black) {
		if moves := LegalMoves(pos, sq); len(moves) != 0 {
			t.Errorf("black %s on %s has moves %v before White moved", pos.PieceAt(sq).Kind, sq, moves)
		}
	}
}

func TestPseudoMoves(t *testing.T) {
	pos := diagram(t, White,
		"....k...",
		"........",
		"...p....",
		"........",
		"...R.N..",
		"........",
		"...P....",
		"....K...",
	)

	tests := []struct {
		name string
		from Square
		want []Square
	}{
		// Rook on d4 stops on the black pawn and on its own pawn.
		{"rook", D4, squares("d5", "d6", "d3", "e4", "c4", "b4", "a4")},
		{"knight", F4, squares("e6", "g6", "d5", "h5", "d3", "h3", "e2", "g2")},
		{"pawn blocked double", D2, squares("d3")},
		{"king", E1, squares("d1", "f1", "e2", "f2")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := PseudoMoves(pos, tc.from, false)
			if diff := cmp.Diff(tc.want, got, sortSquares); diff != "" {
				t.Errorf("PseudoMoves(%s) mismatch (-want +got):\n%s", tc.from, diff)
			}
		})
	}
}

func TestCastRay(t *testing.T) {
	pos := diagram(t, White,
		"....k...",
		"........",
		"........",
		"...p....",
		"........",
		".B......",
		"........",
		"...QK...",
	)

	got := Cast(pos, B3, White, Diagonal)
	want := squares("a4", "c4", "d5", "a2", "c2")
	if diff := cmp.Diff(want, got, sortSquares); diff != "" {
		t.Errorf("bishop rays mismatch (-want +got):\n%s", diff)
	}

	got = PseudoMoves(pos, D1, false)
	want = squares("d2", "d3", "d4", "d5", "c1", "b1", "a1", "c2", "e2", "f3", "g4", "h5")
	if diff := cmp.Diff(want, got, sortSquares); diff != "" {
		t.Errorf("queen moves mismatch (-want +got):\n%s", diff)
	}
}

func TestPawnAttacksIgnorePushes(t *testing.T) {
	pos := diagram(t, White,
		"....k...",
		"........",
		"........",
		"........",
		"........",
		"........",
		"P......P",
		"....K...",
	)

	if got := PseudoMoves(pos, A2, true); !cmp.Equal(got, squares("b3"), sortSquares) {
		t.Errorf("a2 attacks %v, want [b3]", got)
	}
	if got := PseudoMoves(pos, H2, true); !cmp.Equal(got, squares("g3"), sortSquares) {
		t.Errorf("h2 attacks %v, want [g3]", got)
	}
	if IsAttacked(pos, A3, White) {
		t.Error("a pawn push square must not count as attacked")
	}
}

func TestPinnedPieceCannotMove(t *testing.T) {
	pos := diagram(t, White,
		"....r..k",
		"........",
		"........",
		"........",
		"........",
		"........",
		"....N...",
		"....K...",
	)

	if moves := LegalMoves(pos, E2); len(moves) != 0 {
		t.Errorf("pinned knight has moves %v", moves)
	}
}

func TestMustEscapeCheck(t *testing.T) {
	pos := diagram(t, White,
		"...rk...",
		"........",
		"........",
		"........",
		"........",
		"........",
		".....R..",
		"...K....",
	)

	if !InCheck(pos) {
		t.Fatal("white should be in check from d8")
	}
	// The king steps off the d-file or the rook blocks on d2.
	want := map[Square][]Square{
		D1: squares("c1", "c2", "e1", "e2"),
		F2: squares("d2"),
	}
	if diff := cmp.Diff(want, AllLegalMoves(pos), sortSquares); diff != "" {
		t.Errorf("check evasions mismatch (-want +got):\n%s", diff)
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	positions := []*Position{
		NewGame(),
		play(t, NewGame(), "e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "g8f6"),
	}
	for _, pos := range positions {
		if diff := cmp.Diff(AllLegalMoves(pos), AllLegalMovesParallel(pos), sortSquares); diff != "" {
			t.Errorf("parallel enumeration differs (-seq +par):\n%s", diff)
		}
	}
	if got := CountLegalMoves(NewGame()); got != 20 {
		t.Errorf("CountLegalMoves(start) = %d, want 20", got)
	}
}

func TestParallelReportsCorruptPosition(t *testing.T) {
	pos := NewGame().copy()
	pos.kingSquare[White] = E4

	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, ErrCorruptPosition) {
			t.Errorf("recovered %v, want a panic wrapping ErrCorruptPosition", err)
		}
	}()
	AllLegalMovesParallel(pos)
	t.Error("expected a panic")
}
