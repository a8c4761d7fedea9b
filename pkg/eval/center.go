package eval

import (
	"context"

	"github.com/corvidbit/negamax/pkg/board"
)

// centerSquares are the four central squares that most open lines converge on.
var centerSquares = [4]board.Square{board.D4, board.D5, board.E4, board.E5}

// CenterControl rewards occupying or attacking the four central squares, in centipawns per
// square, positive favoring Black.
type CenterControl struct{}

func (CenterControl) Evaluate(ctx context.Context, b *board.Board) board.Score {
	var score board.Score
	for _, sq := range centerSquares {
		if p := b.At(sq); !p.IsEmpty() {
			score += occupancyUnit(p.Color) * 10
		}
		if b.IsAttacked(sq, board.Black) {
			score += 5
		}
		if b.IsAttacked(sq, board.White) {
			score -= 5
		}
	}
	return score
}

func occupancyUnit(c board.Color) board.Score {
	if c == board.Black {
		return 1
	}
	return -1
}
