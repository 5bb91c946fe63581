package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// Forward returns the row delta a pawn of this color advances by.
// White starts on rows 6-7 and moves toward row 0.
func (c Color) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// HomeRow returns the back rank row for the color.
func (c Color) HomeRow() int {
	if c == White {
		return 7
	}
	return 0
}

// PawnRow returns the row the color's pawns start on.
func (c Color) PawnRow() int {
	return c.HomeRow() + c.Forward()
}

// PieceKind is the closed set of piece kinds. The Unmoved variants carry
// castling and double-advance eligibility; Demote turns them into the
// plain kind the first time the piece moves.
type PieceKind uint8

const (
	NoKind PieceKind = iota
	Pawn
	PawnUnmoved
	Rook
	RookUnmoved
	Knight
	Bishop
	Queen
	King
	KingUnmoved
)

// Demote returns the moved form of an Unmoved kind, or k unchanged.
func (k PieceKind) Demote() PieceKind {
	switch k {
	case PawnUnmoved:
		return Pawn
	case RookUnmoved:
		return Rook
	case KingUnmoved:
		return King
	default:
		return k
	}
}

// IsPawn reports whether k is Pawn or PawnUnmoved.
func (k PieceKind) IsPawn() bool { return k.Demote() == Pawn }

// IsKing reports whether k is King or KingUnmoved.
func (k PieceKind) IsKing() bool { return k.Demote() == King }

// String returns the piece kind name.
func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case PawnUnmoved:
		return "PawnUnmoved"
	case Rook:
		return "Rook"
	case RookUnmoved:
		return "RookUnmoved"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case KingUnmoved:
		return "KingUnmoved"
	default:
		return "None"
	}
}

// Char returns the lowercase letter for the kind, ignoring moved state.
func (k PieceKind) Char() byte {
	switch k.Demote() {
	case Pawn:
		return 'p'
	case Rook:
		return 'r'
	case Knight:
		return 'n'
	case Bishop:
		return 'b'
	case Queen:
		return 'q'
	case King:
		return 'k'
	default:
		return ' '
	}
}

// Piece is the content of one cell. The zero value is an empty cell.
type Piece struct {
	Color Color
	Kind  PieceKind
}

// NoPiece is the empty cell.
var NoPiece = Piece{}

// NewPiece creates a Piece from PieceKind and Color.
func NewPiece(k PieceKind, c Color) Piece {
	if k == NoKind || c >= NoColor {
		return NoPiece
	}
	return Piece{Color: c, Kind: k}
}

// IsEmpty returns true if the cell holds no piece.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Moved returns the piece after its first move.
func (p Piece) Moved() Piece {
	return Piece{Color: p.Color, Kind: p.Kind.Demote()}
}

// String returns the letter for the piece.
// Uppercase for white, lowercase for black.
func (p Piece) String() string {
	if p.IsEmpty() {
		return " "
	}
	c := p.Kind.Char()
	if p.Color == White {
		c -= 'a' - 'A'
	}
	return string(c)
}

// PieceFromChar converts a letter to a Piece in its moved form.
// Uppercase letters are white.
func PieceFromChar(c byte) Piece {
	color := Black
	if c >= 'A' && c <= 'Z' {
		color = White
		c += 'a' - 'A'
	}
	switch c {
	case 'p':
		return NewPiece(Pawn, color)
	case 'r':
		return NewPiece(Rook, color)
	case 'n':
		return NewPiece(Knight, color)
	case 'b':
		return NewPiece(Bishop, color)
	case 'q':
		return NewPiece(Queen, color)
	case 'k':
		return NewPiece(King, color)
	default:
		return NoPiece
	}
}
