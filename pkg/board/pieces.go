package board

// This file implements pseudo-legal move generation: pure functions of (piece kind, color,
// origin square, board snapshot) that enumerate candidate destinations while ignoring
// whether the mover's own king would be left in check. King safety is the board's job
// (LegalMoves filters these with make + InCheck), per spec §4.1.

type offset struct{ df, dr int }

var knightOffsets = [8]offset{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingOffsets = [8]offset{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

var bishopDirs = [4]offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirs = [4]offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var queenDirs = [8]offset{
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

// forward returns +1 for White (advancing toward rank 8) and -1 for Black (toward rank 1).
func forward(c Color) int {
	if c == White {
		return 1
	}
	return -1
}

func homeRank(c Color) Rank {
	if c == White {
		return Rank2
	}
	return Rank7
}

func lastRank(c Color) Rank {
	if c == White {
		return Rank8
	}
	return Rank1
}

// pawnPseudoMoves returns candidate destinations for a pawn at from, ignoring promotion
// expansion (the board expands a move landing on the last rank into four variants).
func (b *Board) pawnPseudoMoves(from Square, c Color) []Square {
	var out []Square
	dir := forward(c)

	if one, ok := from.Offset(0, dir); ok && b.grid[one].IsEmpty() {
		out = append(out, one)

		if from.Rank() == homeRank(c) {
			if two, ok := from.Offset(0, 2*dir); ok && b.grid[two].IsEmpty() {
				out = append(out, two)
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		to, ok := from.Offset(df, dir)
		if !ok {
			continue
		}
		if p := b.grid[to]; !p.IsEmpty() && p.Color != c {
			out = append(out, to)
		} else if to == b.enpassant {
			out = append(out, to)
		}
	}
	return out
}

func (b *Board) knightPseudoMoves(from Square, c Color) []Square {
	return b.hopPseudoMoves(from, c, knightOffsets[:])
}

func (b *Board) kingStepPseudoMoves(from Square, c Color) []Square {
	return b.hopPseudoMoves(from, c, kingOffsets[:])
}

func (b *Board) hopPseudoMoves(from Square, c Color, offsets []offset) []Square {
	var out []Square
	for _, o := range offsets {
		to, ok := from.Offset(o.df, o.dr)
		if !ok {
			continue
		}
		if p := b.grid[to]; p.IsEmpty() || p.Color != c {
			out = append(out, to)
		}
	}
	return out
}

func (b *Board) slidingPseudoMoves(from Square, c Color, dirs []offset) []Square {
	var out []Square
	for _, d := range dirs {
		sq := from
		for {
			to, ok := sq.Offset(d.df, d.dr)
			if !ok {
				break
			}
			p := b.grid[to]
			if p.IsEmpty() {
				out = append(out, to)
				sq = to
				continue
			}
			if p.Color != c {
				out = append(out, to)
			}
			break
		}
	}
	return out
}

func (b *Board) bishopPseudoMoves(from Square, c Color) []Square {
	return b.slidingPseudoMoves(from, c, bishopDirs[:])
}

func (b *Board) rookPseudoMoves(from Square, c Color) []Square {
	return b.slidingPseudoMoves(from, c, rookDirs[:])
}

func (b *Board) queenPseudoMoves(from Square, c Color) []Square {
	return b.slidingPseudoMoves(from, c, queenDirs[:])
}

// kingPseudoMoves returns the 8 adjacent destinations plus castling candidates. Castling
// legality (king not in check, empty transit squares, transit squares not attacked) is
// checked here at generation time, not in the legality filter, per spec §4.1.
func (b *Board) kingPseudoMoves(from Square, c Color) []Square {
	out := b.kingStepPseudoMoves(from, c)

	home := Square(E1)
	if c == Black {
		home = E8
	}
	if from != home {
		return out
	}
	if b.IsAttacked(from, c.Opponent()) {
		return out // in check: no castling
	}

	rank := Rank1
	if c == Black {
		rank = Rank8
	}

	if b.castling.IsAllowed(KingSide(c)) {
		f, g, h := NewSquare(FileF, rank), NewSquare(FileG, rank), NewSquare(FileH, rank)
		if b.grid[f].IsEmpty() && b.grid[g].IsEmpty() && b.grid[h].Kind == Rook && b.grid[h].Color == c &&
			!b.IsAttacked(f, c.Opponent()) && !b.IsAttacked(g, c.Opponent()) {
			out = append(out, g)
		}
	}
	if b.castling.IsAllowed(QueenSide(c)) {
		d, cc, bb, a := NewSquare(FileD, rank), NewSquare(FileC, rank), NewSquare(FileB, rank), NewSquare(FileA, rank)
		if b.grid[d].IsEmpty() && b.grid[cc].IsEmpty() && b.grid[bb].IsEmpty() && b.grid[a].Kind == Rook && b.grid[a].Color == c &&
			!b.IsAttacked(d, c.Opponent()) && !b.IsAttacked(cc, c.Opponent()) {
			out = append(out, cc)
		}
	}
	return out
}

// pseudoDestinations dispatches by kind. The board, not the piece, carries every rule that
// needs context (occupancy, attacks), per the design note on accepting that dependency.
func (b *Board) pseudoDestinations(from Square, p Piece) []Square {
	switch p.Kind {
	case Pawn:
		return b.pawnPseudoMoves(from, p.Color)
	case Knight:
		return b.knightPseudoMoves(from, p.Color)
	case Bishop:
		return b.bishopPseudoMoves(from, p.Color)
	case Rook:
		return b.rookPseudoMoves(from, p.Color)
	case Queen:
		return b.queenPseudoMoves(from, p.Color)
	case King:
		return b.kingPseudoMoves(from, p.Color)
	default:
		return nil
	}
}
