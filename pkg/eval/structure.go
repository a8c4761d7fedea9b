package eval

import (
	"context"

	"github.com/corvidbit/negamax/pkg/board"
)

// PawnStructure penalizes doubled and isolated pawns, in centipawns, positive favoring
// Black.
type PawnStructure struct{}

func (PawnStructure) Evaluate(ctx context.Context, b *board.Board) board.Score {
	var filePawns [board.NumColors][8]int
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		p := b.At(sq)
		if p.Kind == board.Pawn {
			filePawns[p.Color][sq.File()]++
		}
	}

	var score board.Score
	for c := board.ZeroColor; c < board.NumColors; c++ {
		unit := occupancyUnit(c)
		for f := 0; f < 8; f++ {
			n := filePawns[c][f]
			if n == 0 {
				continue
			}
			if n > 1 {
				score -= unit * board.Score(15*(n-1))
			}
			left, right := f > 0 && filePawns[c][f-1] > 0, f < 7 && filePawns[c][f+1] > 0
			if !left && !right {
				score -= unit * 10
			}
		}
	}
	return score
}
