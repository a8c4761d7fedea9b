package eval

import (
	"context"

	"github.com/corvidbit/negamax/pkg/board"
)

// CheckBonus adds a small bonus for giving check, in centipawns, positive favoring Black.
// It is a cheap proxy for king safety between full search plies, weighted low (0.01) since
// search itself finds the actual consequences of a check.
type CheckBonus struct{}

func (CheckBonus) Evaluate(ctx context.Context, b *board.Board) board.Score {
	var score board.Score
	if b.InCheck(board.White) {
		score += 50
	}
	if b.InCheck(board.Black) {
		score -= 50
	}
	return score
}
