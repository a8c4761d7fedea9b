package board

import "strings"

// Board is the single mutable chess position used throughout search: one instance is
// created per game/search tree and advanced with Make/Unmake in place. Nothing clones it --
// see DESIGN.md for why this replaces the teacher's immutable, cloned Position.
type Board struct {
	grid     [NumSquares]Piece
	king     [NumColors]Square // cached king squares, kept in sync by Make/Unmake
	turn     Color
	castling Castling
	enpassant Square // NoSquare if none

	halfmove int // plies since the last pawn move or capture, for the 50-move rule
	fullmove int // starts at 1, increments after Black's move

	zobrist *ZobristTable
	hash    Hash
	history []Hash // hash of the starting position and after every move played, oldest first, for repetition detection
}

// NewBoard returns a board set up for a new game.
func NewBoard() *Board {
	b := &Board{zobrist: NewZobristTable(0x5EED)}
	b.SetupInitialPosition()
	return b
}

// NewBoardFromState builds a board directly from decoded FEN fields. The king cache is
// derived from the grid rather than passed in, so it can never disagree with it.
func NewBoardFromState(grid [NumSquares]Piece, turn Color, castling Castling, enpassant Square, halfmove, fullmove int) *Board {
	b := &Board{
		grid:      grid,
		turn:      turn,
		castling:  castling,
		enpassant: enpassant,
		halfmove:  halfmove,
		fullmove:  fullmove,
		zobrist:   NewZobristTable(0x5EED),
	}
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		if p := grid[sq]; p.Kind == King {
			b.king[p.Color] = sq
		}
	}
	b.recomputeHash()
	b.history = append(b.history, b.hash)
	return b
}

// SetupInitialPosition resets the board to the standard starting position.
func (b *Board) SetupInitialPosition() {
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		b.grid[sq] = NoPiece
	}

	back := [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f := ZeroFile; f < NumFiles; f++ {
		b.grid[NewSquare(f, Rank1)] = Piece{Kind: back[f], Color: White}
		b.grid[NewSquare(f, Rank2)] = Piece{Kind: Pawn, Color: White}
		b.grid[NewSquare(f, Rank7)] = Piece{Kind: Pawn, Color: Black}
		b.grid[NewSquare(f, Rank8)] = Piece{Kind: back[f], Color: Black}
	}

	b.king[White] = E1
	b.king[Black] = E8
	b.turn = White
	b.castling = FullCastingRights
	b.enpassant = NoSquare
	b.halfmove = 0
	b.fullmove = 1
	b.history = b.history[:0]
	b.recomputeHash()
	b.history = append(b.history, b.hash)
}

func (b *Board) recomputeHash() {
	if b.zobrist == nil {
		b.zobrist = NewZobristTable(0x5EED)
	}
	b.hash = b.zobrist.Hash(&b.grid, b.castling, b.enpassant, b.turn)
}

func (b *Board) Turn() Color                { return b.turn }
func (b *Board) At(sq Square) Piece         { return b.grid[sq] }
func (b *Board) CastlingRights() Castling   { return b.castling }
func (b *Board) EnPassant() Square          { return b.enpassant }
func (b *Board) HalfmoveClock() int         { return b.halfmove }
func (b *Board) FullmoveNumber() int        { return b.fullmove }
func (b *Board) Hash() Hash                 { return b.hash }
func (b *Board) King(c Color) Square        { return b.king[c] }

// pseudoLegalMoves enumerates every move for color that is legal by piece-movement rules
// alone, without checking whether it leaves the mover's own king in check.
func (b *Board) pseudoLegalMoves(color Color) []Move {
	var out []Move
	for from := ZeroSquare; from < NumSquares; from++ {
		p := b.grid[from]
		if p.IsEmpty() || p.Color != color {
			continue
		}
		for _, to := range b.pseudoDestinations(from, p) {
			out = append(out, b.classify(from, to, p)...)
		}
	}
	return out
}

// classify turns a raw (from, to) destination into one or more fully-annotated moves,
// expanding pawn promotions into one move per promotable kind.
func (b *Board) classify(from, to Square, p Piece) []Move {
	target := b.grid[to]

	if p.Kind == King {
		df := int(to.File()) - int(from.File())
		if df == 2 {
			return []Move{{Type: KingSideCastle, From: from, To: to, Piece: King}}
		}
		if df == -2 {
			return []Move{{Type: QueenSideCastle, From: from, To: to, Piece: King}}
		}
	}

	if p.Kind == Pawn {
		isEnPassant := to == b.enpassant && target.IsEmpty() && from.File() != to.File()
		promoting := to.Rank() == lastRank(p.Color)

		switch {
		case isEnPassant:
			return []Move{{Type: EnPassant, From: from, To: to, Piece: Pawn, Capture: Pawn}}
		case promoting && !target.IsEmpty():
			return promotionMoves(from, to, p, target.Kind, true)
		case promoting:
			return promotionMoves(from, to, p, NoKind, false)
		case !target.IsEmpty():
			return []Move{{Type: Capture, From: from, To: to, Piece: Pawn, Capture: target.Kind}}
		case from.File() == to.File() && abs(int(to.Rank())-int(from.Rank())) == 2:
			return []Move{{Type: Jump, From: from, To: to, Piece: Pawn}}
		default:
			return []Move{{Type: Push, From: from, To: to, Piece: Pawn}}
		}
	}

	if target.IsEmpty() {
		return []Move{{Type: Normal, From: from, To: to, Piece: p.Kind}}
	}
	return []Move{{Type: Capture, From: from, To: to, Piece: p.Kind, Capture: target.Kind}}
}

func promotionMoves(from, to Square, p Piece, captured Kind, capture bool) []Move {
	kinds := [4]Kind{Queen, Rook, Bishop, Knight}
	out := make([]Move, 0, 4)
	t := Promotion
	if capture {
		t = CapturePromotion
	}
	for _, k := range kinds {
		out = append(out, Move{Type: t, From: from, To: to, Piece: Pawn, Promotion: k, Capture: captured})
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// LegalMoves returns every pseudo-legal move for color that does not leave color's own king
// in check, by playing and unplaying each candidate. Per spec §4.1 this is the only place
// check safety is enforced for non-castling moves; castling's own safety (not currently in
// check, transit squares not attacked) is checked at generation time in kingPseudoMoves.
func (b *Board) LegalMoves(color Color) []Move {
	candidates := b.pseudoLegalMoves(color)
	out := make([]Move, 0, len(candidates))
	for _, m := range candidates {
		u := b.Make(m)
		if !b.InCheck(color) {
			out = append(out, m)
		}
		b.Unmake(m, u)
	}
	return out
}

// MoveUndo carries everything Unmake needs to reverse a Make call that cannot be recovered
// from the move alone: prior castling rights, en passant target, halfmove clock and hash.
type MoveUndo struct {
	castling Castling
	enpassant Square
	halfmove  int
	hash      Hash
}

// Make plays m in place and returns the undo token to reverse it. The caller must pass the
// exact move returned by LegalMoves/pseudoLegalMoves (not a hand-built Move), since Make
// trusts the Type/Capture/Promotion annotations rather than re-deriving them.
func (b *Board) Make(m Move) MoveUndo {
	u := MoveUndo{castling: b.castling, enpassant: b.enpassant, halfmove: b.halfmove, hash: b.hash}

	mover := b.grid[m.From]
	color := mover.Color

	switch m.Type {
	case EnPassant:
		capSq, _ := m.To.Offset(0, -forward(color))
		b.grid[capSq] = NoPiece
		b.grid[m.To] = mover
		b.grid[m.From] = NoPiece
	case KingSideCastle, QueenSideCastle:
		rank := m.From.Rank()
		var rookFrom, rookTo Square
		if m.Type == KingSideCastle {
			rookFrom, rookTo = NewSquare(FileH, rank), NewSquare(FileF, rank)
		} else {
			rookFrom, rookTo = NewSquare(FileA, rank), NewSquare(FileD, rank)
		}
		b.grid[rookTo] = b.grid[rookFrom]
		b.grid[rookFrom] = NoPiece
		b.grid[m.To] = mover
		b.grid[m.From] = NoPiece
		b.king[color] = m.To
	case Promotion, CapturePromotion:
		b.grid[m.To] = Piece{Kind: m.Promotion, Color: color}
		b.grid[m.From] = NoPiece
	default:
		b.grid[m.To] = mover
		b.grid[m.From] = NoPiece
		if mover.Kind == King {
			b.king[color] = m.To
		}
	}

	if mover.Kind == Pawn || m.Type.IsCapture() {
		b.halfmove = 0
	} else {
		b.halfmove++
	}

	if m.Type == Jump {
		b.enpassant, _ = m.From.Offset(0, forward(color))
	} else {
		b.enpassant = NoSquare
	}

	b.castling = b.castling.Clear(castlingLost(m.From) | castlingLost(m.To))

	b.turn = color.Opponent()
	if color == Black {
		b.fullmove++
	}

	b.recomputeHash()
	b.history = append(b.history, b.hash)
	return u
}

// castlingLost returns the castling rights forfeited by any move touching sq: a king's
// home square loses both of that color's rights, a rook's home square loses the one right
// it guards. Used for both the mover's origin and a potential rook capture on its home square.
func castlingLost(sq Square) Castling {
	switch sq {
	case E1:
		return Both(White)
	case E8:
		return Both(Black)
	case A1:
		return WhiteQueenSideCastle
	case H1:
		return WhiteKingSideCastle
	case A8:
		return BlackQueenSideCastle
	case H8:
		return BlackKingSideCastle
	default:
		return NoCastling
	}
}

// Unmake reverses the effect of the immediately preceding Make(m) call. Moves must be
// unmade in exact LIFO order; Unmake does not validate this.
func (b *Board) Unmake(m Move, u MoveUndo) {
	b.history = b.history[:len(b.history)-1]

	color := b.turn.Opponent()
	b.turn = color
	if color == Black {
		b.fullmove--
	}
	b.castling = u.castling
	b.enpassant = u.enpassant
	b.halfmove = u.halfmove
	b.hash = u.hash

	switch m.Type {
	case EnPassant:
		b.grid[m.From] = Piece{Kind: Pawn, Color: color}
		b.grid[m.To] = NoPiece
		capSq, _ := m.To.Offset(0, -forward(color))
		b.grid[capSq] = Piece{Kind: Pawn, Color: color.Opponent()}
	case KingSideCastle, QueenSideCastle:
		rank := m.From.Rank()
		var rookFrom, rookTo Square
		if m.Type == KingSideCastle {
			rookFrom, rookTo = NewSquare(FileH, rank), NewSquare(FileF, rank)
		} else {
			rookFrom, rookTo = NewSquare(FileA, rank), NewSquare(FileD, rank)
		}
		b.grid[rookFrom] = b.grid[rookTo]
		b.grid[rookTo] = NoPiece
		b.grid[m.From] = Piece{Kind: King, Color: color}
		b.grid[m.To] = NoPiece
		b.king[color] = m.From
	case Promotion, CapturePromotion:
		b.grid[m.From] = Piece{Kind: Pawn, Color: color}
		if m.Type == CapturePromotion {
			b.grid[m.To] = Piece{Kind: m.Capture, Color: color.Opponent()}
		} else {
			b.grid[m.To] = NoPiece
		}
	default:
		b.grid[m.From] = Piece{Kind: m.Piece, Color: color}
		if m.Type.IsCapture() {
			b.grid[m.To] = Piece{Kind: m.Capture, Color: color.Opponent()}
		} else {
			b.grid[m.To] = NoPiece
		}
		if m.Piece == King {
			b.king[color] = m.From
		}
	}
}

// Apply looks up m (matched by From/To/Promotion only) among color's legal moves and plays
// it. It reports false without mutating the board if m is not legal, which is the boundary
// point spec §6 requires: no externally supplied move is ever trusted without this check.
func (b *Board) Apply(m Move, color Color) (Move, MoveUndo, bool) {
	for _, cand := range b.LegalMoves(color) {
		if cand.Equals(m) {
			u := b.Make(cand)
			return cand, u, true
		}
	}
	return Move{}, MoveUndo{}, false
}

// GameOver reports whether the position is terminal for the side to move and why. Checked
// in the order spec §4.2 requires: insufficient material first, then no-legal-moves
// (checkmate/stalemate), then fifty-move, then repetition -- a position can be both
// stalemated and materially dead at once, and insufficient material takes precedence.
func (b *Board) GameOver(side Color) (bool, Reason) {
	if b.hasInsufficientMaterial() {
		return true, DrawByInsufficientMaterial
	}
	if len(b.LegalMoves(side)) == 0 {
		if b.InCheck(side) {
			return true, Checkmate
		}
		return true, Stalemate
	}
	if b.halfmove >= 100 {
		return true, DrawByFiftyMoveRule
	}
	if b.repetitionCount(b.hash) >= 3 {
		return true, DrawByRepetition
	}
	return false, None
}

func (b *Board) repetitionCount(h Hash) int {
	n := 0
	for _, past := range b.history {
		if past == h {
			n++
		}
	}
	return n
}

// hasInsufficientMaterial reports the dead positions a rules engine must stop at: bare
// kings, king+minor vs king, two knights (on one side or one each), and king+bishop vs
// king+bishop with same-colored bishops.
func (b *Board) hasInsufficientMaterial() bool {
	var minors [NumColors]int
	var other bool
	var bishopSquares []Square

	for sq := ZeroSquare; sq < NumSquares; sq++ {
		p := b.grid[sq]
		switch p.Kind {
		case NoKind, King:
		case Knight, Bishop:
			minors[p.Color]++
			if p.Kind == Bishop {
				bishopSquares = append(bishopSquares, sq)
			}
		default:
			other = true
		}
	}
	if other {
		return false
	}
	total := minors[White] + minors[Black]
	if total == 0 {
		return true
	}
	if total == 1 {
		return true
	}
	if total == 2 && len(bishopSquares) == 0 {
		return true // two knights, any distribution (KNN vs K, or KN vs KN)
	}
	if total == 2 && len(bishopSquares) == 2 && minors[White] == 1 && minors[Black] == 1 {
		return squareColor(bishopSquares[0]) == squareColor(bishopSquares[1])
	}
	return false
}

func squareColor(sq Square) int {
	return (int(sq.File()) + int(sq.Rank())) % 2
}

// PositionKey returns a canonical string identifying the position: board placement, side
// to move, castling rights and en passant target, per spec §4.3 (explicitly excluding
// halfmove/fullmove counters). Repetition detection and the transposition table key on
// Hash, not on this string.
func (b *Board) PositionKey() string {
	var sb strings.Builder
	for r := int(Rank8); r >= int(Rank1); r-- {
		empty := 0
		for f := ZeroFile; f < NumFiles; f++ {
			p := b.grid[NewSquare(f, Rank(r))]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(itoa(empty))
		}
		if r > int(Rank1) {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(b.turn.String())
	sb.WriteByte(' ')
	sb.WriteString(b.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(b.enpassant.String())
	return sb.String()
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	digits := [3]byte{}
	n := 0
	for v > 0 {
		digits[n] = byte('0' + v%10)
		v /= 10
		n++
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = digits[n-1-i]
	}
	return string(out)
}
