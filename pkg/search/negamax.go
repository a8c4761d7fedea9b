package search

import (
	"context"
	"time"

	"github.com/corvidbit/negamax/pkg/board"
	"github.com/corvidbit/negamax/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// Searcher runs a single negamax-with-alpha-beta search over one Board, scoped to one
// Engine instance: the transposition table, killer table and history table all persist
// across the iterative-deepening loop's depths but never across two different boards.
type Searcher struct {
	Eval    eval.Evaluator
	TT      TranspositionTable
	Killers *KillerTable
	History *HistoryTable
	Limits  Limits
	Nodes   uint64

	now func() time.Time
}

// NewSearcher returns a Searcher ready for one BestMove call.
func NewSearcher(e eval.Evaluator, tt TranspositionTable, limits Limits) *Searcher {
	return &Searcher{
		Eval:    e,
		TT:      tt,
		Killers: &KillerTable{},
		History: &HistoryTable{},
		Limits:  limits,
		now:     time.Now,
	}
}

// Search runs negamax with alpha-beta pruning to depth plies from b's current position,
// returning the score from the side-to-move's perspective and the best move found, if any
// legal move exists. depth counts down to 0, at which point quiescence search takes over;
// ply counts up from the root and is used for mate-distance scoring and killer-move
// indexing.
func (s *Searcher) Search(ctx context.Context, b *board.Board, depth, ply int, alpha, beta board.Score) (board.Score, board.Move, bool) {
	turn := b.Turn()

	if s.expired(ctx) {
		return s.perspective(turn, s.Eval.Evaluate(ctx, b)), board.Move{}, false
	}

	if over, reason := b.GameOver(turn); over {
		return terminalScore(reason, ply), board.Move{}, false
	}

	var ttMove board.Move
	if entry, ok := s.TT.Read(b.Hash()); ok {
		ttMove = entry.Move
		if entry.Depth >= depth {
			switch entry.Bound {
			case ExactBound:
				return entry.Score, entry.Move, true
			case LowerBound:
				alpha = board.Max(alpha, entry.Score)
			case UpperBound:
				beta = board.Min(beta, entry.Score)
			}
			if alpha >= beta {
				return entry.Score, entry.Move, true
			}
		}
	}

	if depth <= 0 {
		score := s.quiescence(ctx, b, alpha, beta)
		return score, board.Move{}, false
	}

	s.Nodes++

	candidates := b.LegalMoves(turn)
	moves := board.NewMoveList(candidates, board.First(ttMove, func(m board.Move) board.MovePriority {
		return movePriority(m, ply, turn, s.Killers, s.History)
	}))

	origAlpha := alpha
	var best board.Move
	haveBest := false

	for {
		m, ok := moves.Next()
		if !ok {
			break
		}

		u := b.Make(m)
		score, _, _ := s.Search(ctx, b, depth-1, ply+1, beta.Negate(), alpha.Negate())
		score = score.Negate()
		b.Unmake(m, u)

		if !haveBest || score > alpha {
			best = m
			haveBest = true
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			if !m.Type.IsCapture() && !m.Type.IsPromotion() {
				s.Killers.Update(ply, m)
				s.History.Update(turn, m, depth)
			}
			break
		}
	}

	bound := ExactBound
	switch {
	case alpha <= origAlpha:
		bound = UpperBound
	case alpha >= beta:
		bound = LowerBound
	}
	s.TT.Write(b.Hash(), Entry{Bound: bound, Depth: depth, Score: alpha, Move: best})

	return alpha, best, haveBest
}

// terminalScore returns the score for a position Board.GameOver reports as over, from the
// side-to-move's own perspective: a large negative value for being checkmated, scaled by
// ply so a faster mate is preferred over a slower one, or zero for stalemate or any draw.
func terminalScore(reason board.Reason, ply int) board.Score {
	if reason == board.Checkmate {
		return -(board.MateScore - board.Score(ply))
	}
	return board.ZeroScore
}

func (s *Searcher) expired(ctx context.Context) bool {
	if contextx.IsCancelled(ctx) {
		return true
	}
	now := s.now
	if now == nil {
		now = time.Now
	}
	return s.Limits.Expired(now())
}
