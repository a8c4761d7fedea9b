package board

// Kind represents a chess piece type, with no color. 3 bits.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

const (
	ZeroKind Kind = NoKind
	NumKinds Kind = King + 1
)

func ParseKind(r rune) (Kind, bool) {
	switch r {
	case 'p', 'P':
		return Pawn, true
	case 'n', 'N':
		return Knight, true
	case 'b', 'B':
		return Bishop, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	default:
		return NoKind, false
	}
}

func (k Kind) IsValid() bool {
	return Pawn <= k && k <= King
}

func (k Kind) String() string {
	switch k {
	case NoKind:
		return "-"
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "?"
	}
}

// Piece is (kind, color) only, deliberately without a square: the board grid is the sole
// source of truth for placement, so make/unmake never has to keep a "piece knows its own
// square" invariant in sync with the grid it sits in. See DESIGN.md.
type Piece struct {
	Kind  Kind
	Color Color
}

// NoPiece is the zero value denoting an empty square.
var NoPiece = Piece{Kind: NoKind}

func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return "."
	}
	if p.Color == White {
		return upperRune(p.Kind.String())
	}
	return p.Kind.String()
}

func upperRune(s string) string {
	if len(s) != 1 {
		return s
	}
	b := s[0]
	if b >= 'a' && b <= 'z' {
		b -= 'a' - 'A'
	}
	return string(b)
}
