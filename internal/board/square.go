// Package board implements the chess rules engine over an 8x8 grid:
// immutable positions, pseudo-legal and legal move generation, move
// application and checkmate/stalemate detection.
package board

import "fmt"

// Square is one cell of the grid, stored as row*8 + column.
// Row 0 is Black's back rank and row 7 is White's, so A8=0 and H1=63.
type Square uint8

// Square constants for all 64 squares, in row-major order from a8.
const (
	A8 Square = iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A1
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	NoSquare Square = 64
)

// NewSquare creates a square from row and column (0-indexed).
// It returns NoSquare when either coordinate falls off the grid.
func NewSquare(row, col int) Square {
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return NoSquare
	}
	return Square(row*8 + col)
}

// Row returns the row of the square (0-7, where 0 is Black's back rank).
func (sq Square) Row() int {
	return int(sq) >> 3
}

// Col returns the column of the square (0-7, where 0 is the a-file).
func (sq Square) Col() int {
	return int(sq) & 7
}

// Valid returns true if the square is on the grid.
func (sq Square) Valid() bool {
	return sq < NoSquare
}

// Offset returns the square dRow rows and dCol columns away, or NoSquare
// if that leaves the grid.
func (sq Square) Offset(dRow, dCol int) Square {
	if !sq.Valid() {
		return NoSquare
	}
	return NewSquare(sq.Row()+dRow, sq.Col()+dCol)
}

// String returns the algebraic name of the square (e.g., "e4").
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.Col(), '8'-sq.Row())
}

// Coords returns the "row col" form the console accepts.
func (sq Square) Coords() string {
	if !sq.Valid() {
		return "-"
	}
	return fmt.Sprintf("%d %d", sq.Row(), sq.Col())
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	col := int(s[0]) - 'a'
	row := '8' - int(s[1])

	sq := NewSquare(row, col)
	if !sq.Valid() {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}
	return sq, nil
}

// MustSquare is ParseSquare for constant inputs; it panics on error.
func MustSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}
