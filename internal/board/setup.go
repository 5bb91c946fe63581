package board

// Setup assembles an arbitrary position. Pieces are placed exactly as
// given, so Unmoved kinds must be chosen explicitly where castling or a
// double advance should remain available.
type Setup struct {
	pos Position
}

// NewSetup returns an empty board with White to move.
func NewSetup() *Setup {
	s := &Setup{}
	s.pos.kingSquare = [2]Square{NoSquare, NoSquare}
	return s
}

// Place puts piece on sq, replacing any occupant. Placing NoPiece clears sq.
func (s *Setup) Place(sq Square, piece Piece) *Setup {
	if !sq.Valid() {
		return s
	}
	prev := s.pos.PieceAt(sq)
	if prev.Kind.IsKing() && s.pos.kingSquare[prev.Color] == sq {
		s.pos.kingSquare[prev.Color] = NoSquare
	}
	s.pos.set(sq, piece)
	if piece.Kind.IsKing() && piece.Color < NoColor {
		s.pos.kingSquare[piece.Color] = sq
	}
	return s
}

// SideToMove sets whose turn it is.
func (s *Setup) SideToMove(c Color) *Setup {
	s.pos.sideToMove = c
	return s
}

// Build validates the setup and returns it as a new position with no
// history. The returned error lists every violated invariant.
func (s *Setup) Build() (*Position, error) {
	pos := s.pos.copy()
	if err := pos.Validate(); err != nil {
		return nil, err
	}
	return pos, nil
}
