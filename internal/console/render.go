package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/hailam/gridchess/internal/board"
)

var glyphs = map[board.Color]map[byte]string{
	board.White: {'k': "♔", 'q': "♕", 'r': "♖", 'b': "♗", 'n': "♘", 'p': "♙"},
	board.Black: {'k': "♚", 'q': "♛", 'r': "♜", 'b': "♝", 'n': "♞", 'p': "♟"},
}

// Renderer draws a position as a text grid labelled with the row and
// column numbers the console reads.
type Renderer struct {
	Unicode bool // chess glyphs instead of letters
	Flip    bool // draw from Black's side
}

// Render writes the board. Squares in marks are drawn as '*' when empty
// and bracketed when occupied.
func (r Renderer) Render(w io.Writer, pos *board.Position, marks []board.Square) {
	marked := make(map[board.Square]bool, len(marks))
	for _, sq := range marks {
		marked[sq] = true
	}

	order := []int{0, 1, 2, 3, 4, 5, 6, 7}
	if r.Flip {
		order = []int{7, 6, 5, 4, 3, 2, 1, 0}
	}

	var b strings.Builder
	b.WriteString("    ")
	for _, col := range order {
		fmt.Fprintf(&b, " %d ", col)
	}
	b.WriteString("\n")

	for _, row := range order {
		fmt.Fprintf(&b, " %d  ", row)
		for _, col := range order {
			sq := board.NewSquare(row, col)
			b.WriteString(r.cell(pos.PieceAt(sq), marked[sq]))
		}
		b.WriteString("\n")
	}

	fmt.Fprint(w, b.String())
}

func (r Renderer) cell(piece board.Piece, marked bool) string {
	if piece.IsEmpty() {
		if marked {
			return " * "
		}
		return " . "
	}

	symbol := piece.String()
	if r.Unicode {
		symbol = glyphs[piece.Color][piece.Kind.Char()]
	}
	if marked {
		return "[" + symbol + "]"
	}
	return " " + symbol + " "
}
