package eval

import (
	"context"
	"math/rand"

	"github.com/corvidbit/negamax/pkg/board"
)

// Random adds a small amount of noise to evaluations, off by default. limit is the centipawn
// range the noise is drawn from, uniformly in [-limit/2, limit-limit/2). Useful for breaking ties
// between otherwise identical lines in self-play testing; never enabled in the default
// evaluator.
type Random struct {
	rand  *rand.Rand
	limit int
}

func NewRandom(limit int, seed int64) Random {
	return Random{limit: limit, rand: rand.New(rand.NewSource(seed))}
}

func (n Random) Evaluate(ctx context.Context, b *board.Board) board.Score {
	if n.limit <= 0 {
		return 0
	}
	return board.Score(n.rand.Intn(n.limit) - n.limit/2)
}
