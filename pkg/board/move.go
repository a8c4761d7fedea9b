package board

import "fmt"

// MoveType classifies a move for make/unmake and scoring. The no-progress counter resets
// on any pawn move or capture; Normal moves and castling advance it.
type MoveType uint8

const (
	Normal    MoveType = iota
	Push               // pawn one-square advance
	Jump               // pawn two-square advance, sets the en passant target
	EnPassant          // pawn diagonal move capturing the en-passant target
	KingSideCastle
	QueenSideCastle
	Capture
	Promotion
	CapturePromotion
)

func (t MoveType) IsCapture() bool {
	return t == Capture || t == EnPassant || t == CapturePromotion
}

func (t MoveType) IsCastle() bool {
	return t == KingSideCastle || t == QueenSideCastle
}

func (t MoveType) IsPromotion() bool {
	return t == Promotion || t == CapturePromotion
}

// Move represents a not-necessarily-legal move, with enough metadata for search and
// make/unmake to avoid re-deriving it from the board on every use. Castling is encoded as a
// two-file king move; en passant as a pawn diagonal move onto the en-passant target.
type Move struct {
	Type      MoveType
	From, To  Square
	Piece     Kind // kind of the piece moving
	Promotion Kind // desired piece kind, if a promotion
	Capture   Kind // captured piece kind, if a capture

	// Score is move-ordering priority, filled in and consumed by the search package. It is
	// not part of move identity: Equals ignores it.
	Score int32
}

// ParseMove parses a move in pure algebraic coordinate notation, such as "a2a4" or "a7a8q",
// the same 4/5-character shape as UCI. It does not fill in context-dependent fields like
// Type, Piece or Capture -- only From/To/Promotion, which is all that is needed to match
// against a board's legal move list.
func ParseMove(str string) (Move, error) {
	runes := []rune(str)

	if len(runes) < 4 || len(runes) > 5 {
		return Move{}, fmt.Errorf("invalid move: %q", str)
	}

	from, err := ParseSquare(runes[0], runes[1])
	if err != nil {
		return Move{}, fmt.Errorf("invalid from square in %q: %w", str, err)
	}
	to, err := ParseSquare(runes[2], runes[3])
	if err != nil {
		return Move{}, fmt.Errorf("invalid to square in %q: %w", str, err)
	}

	if len(runes) == 5 {
		promo, ok := ParseKind(runes[4])
		if !ok || promo == Pawn || promo == King {
			return Move{}, fmt.Errorf("invalid promotion in %q", str)
		}
		return Move{From: from, To: to, Promotion: promo}, nil
	}
	return Move{From: from, To: to}, nil
}

// Equals compares move identity: origin, destination and promotion choice. It ignores
// Type/Piece/Capture/Score, which are derived metadata, so a caller-supplied move parsed via
// ParseMove can be matched against a fully-annotated move from LegalMoves.
func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

// String renders the move in the boundary encoding from spec §6: 4 or 5 characters,
// byte-exact with UCI move notation.
func (m Move) String() string {
	if m.Promotion.IsValid() {
		return fmt.Sprintf("%v%v%v", m.From, m.To, m.Promotion)
	}
	return fmt.Sprintf("%v%v", m.From, m.To)
}
