package eval

import (
	"context"

	"github.com/corvidbit/negamax/pkg/board"
)

// PieceSquareTables adds small positional bonuses per piece kind and square, in centipawns,
// positive favoring Black. Tables are written from White's perspective (index 0 = a1) and
// mirrored vertically for Black, per the board's single rank-0-is-White's-home convention.
type PieceSquareTables struct{}

func (PieceSquareTables) Evaluate(ctx context.Context, b *board.Board) board.Score {
	var score board.Score
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		p := b.At(sq)
		if p.IsEmpty() {
			continue
		}
		idx := int(sq)
		if p.Color == board.Black {
			idx = mirror(idx)
		}
		v := board.Score(pieceTable(p.Kind)[idx])
		if p.Color == board.Black {
			score += v
		} else {
			score -= v
		}
	}
	return score
}

// mirror flips a square index vertically: rank r, file f -> rank (7-r), file f.
func mirror(idx int) int {
	rank := idx / 8
	file := idx % 8
	return (7-rank)*8 + file
}

func pieceTable(k board.Kind) *[64]int {
	switch k {
	case board.Pawn:
		return &pawnTable
	case board.Knight:
		return &knightTable
	case board.Bishop:
		return &bishopTable
	case board.Rook:
		return &rookTable
	case board.Queen:
		return &queenTable
	case board.King:
		return &kingTable
	default:
		return &zeroTable
	}
}

var zeroTable [64]int

var pawnTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, -20, -20, 10, 10, 5,
	5, -5, -10, 0, 0, -10, -5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, 5, 10, 25, 25, 10, 5, 5,
	10, 10, 20, 30, 30, 20, 10, 10,
	50, 50, 50, 50, 50, 50, 50, 50,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightTable = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopTable = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookTable = [64]int{
	0, 0, 0, 5, 5, 0, 0, 0,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	5, 10, 10, 10, 10, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var queenTable = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-10, 5, 5, 5, 5, 5, 0, -10,
	0, 0, 5, 5, 5, 5, 0, -5,
	-5, 0, 5, 5, 5, 5, 0, -5,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingTable = [64]int{
	20, 30, 10, 0, 0, 10, 30, 20,
	20, 20, 0, 0, 0, 0, 20, 20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
}
