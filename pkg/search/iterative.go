package search

import (
	"context"
	"time"

	"github.com/corvidbit/negamax/pkg/board"
	"github.com/corvidbit/negamax/pkg/eval"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// PV is one iterative-deepening result: the score and best move found at a completed
// depth, plus bookkeeping for logging and diagnostics.
type PV struct {
	Depth int
	Nodes uint64
	Score board.Score
	Move  board.Move
	Found bool
	Time  time.Duration
}

// Iterative runs negamax at increasing depth, 1..limits.MaxDepth, stopping early if the
// deadline expires or the context is cancelled. It is a single synchronous call: unlike the
// teacher's goroutine-driven Launcher/Handle, callers that want cancellation pass a
// context with a deadline or cancel func, and get the best result found so far back when
// this function returns, per the single-threaded cooperative search model.
func Iterative(ctx context.Context, e eval.Evaluator, tt TranspositionTable, b *board.Board, limits Limits) PV {
	var best PV

	maxDepth := limits.MaxDepth
	if maxDepth <= 0 {
		maxDepth = 1
	}

	s := NewSearcher(e, tt, limits)
	for depth := 1; depth <= maxDepth; depth++ {
		if contextx.IsCancelled(ctx) || limits.Expired(time.Now()) {
			break
		}

		s.Nodes = 0
		start := time.Now()
		score, move, found := s.Search(ctx, b, depth, 0, board.MinScore, board.MaxScore)
		elapsed := time.Since(start)

		if contextx.IsCancelled(ctx) || (limits.Expired(time.Now()) && depth > 1) {
			break
		}
		if !found {
			break
		}

		best = PV{Depth: depth, Nodes: s.Nodes, Score: score, Move: move, Found: true, Time: elapsed}
		logw.Debugf(ctx, "searched %v: depth=%v score=%v move=%v nodes=%v time=%v", b.PositionKey(), depth, score, move, s.Nodes, elapsed)

		if isMateScore(score) {
			break
		}
	}
	return best
}

// isMateScore reports whether s represents a forced mate, at which point searching deeper
// cannot improve the outcome.
func isMateScore(s board.Score) bool {
	const horizon = board.MateScore - 1000
	return s >= horizon || s <= -horizon
}
