package search

import (
	"context"

	"github.com/corvidbit/negamax/pkg/board"
	"github.com/corvidbit/negamax/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// quiescence extends search along capture/promotion lines past the nominal depth limit, so
// the static evaluator is never asked to judge a position in the middle of a piece trade.
// It returns the score from the side-to-move's perspective (board.Color.Unit convention via
// negamax negation at each ply).
func (s *Searcher) quiescence(ctx context.Context, b *board.Board, alpha, beta board.Score) board.Score {
	if contextx.IsCancelled(ctx) {
		return alpha
	}
	s.Nodes++

	turn := b.Turn()
	standPat := s.perspective(turn, s.Eval.Evaluate(ctx, b))
	if standPat >= beta {
		return beta
	}
	alpha = board.Max(alpha, standPat)

	candidates := b.LegalMoves(turn)
	loud := make([]board.Move, 0, len(candidates))
	for _, m := range candidates {
		if m.Type.IsCapture() || m.Type.IsPromotion() {
			loud = append(loud, m)
		}
	}

	moves := board.NewMoveList(loud, func(m board.Move) board.MovePriority {
		return board.MovePriority(eval.NominalValueGain(m))
	})
	for {
		m, ok := moves.Next()
		if !ok {
			break
		}
		u := b.Make(m)
		score := s.quiescence(ctx, b, beta.Negate(), alpha.Negate()).Negate()
		b.Unmake(m, u)

		if score >= beta {
			return beta
		}
		alpha = board.Max(alpha, score)
	}
	return alpha
}

// perspective converts a Black-positive evaluation into the side-to-move's own
// perspective, which negamax requires at every node.
func (s *Searcher) perspective(turn board.Color, score board.Score) board.Score {
	return score * board.Score(turn.Unit()*-1)
}
