package search

import (
	"github.com/corvidbit/negamax/pkg/board"
	"github.com/corvidbit/negamax/pkg/eval"
)

// orderingBias separates the priority bands so captures rank above promotions and
// promotions above killers, regardless of the capture and promotion tiebreakers within each
// band. Quiet moves are ranked by their raw history score, which is not capped: a quiet move
// whose history total reaches killerBias ranks with or above the killers.
const (
	captureBias   = 1_000_000
	promotionBias = 500_000
	killerBias    = 100_000
)

// movePriority ranks m for move ordering at ply: captures first by MVV-LVA, then
// promotions, then killer quiet moves, then quiet moves by history score. The TT best move
// is layered on top by the caller via board.First, which always outranks everything here.
func movePriority(m board.Move, ply int, color board.Color, killers *KillerTable, history *HistoryTable) board.MovePriority {
	if m.Type.IsCapture() {
		return board.MovePriority(captureBias + int32(eval.NominalValueGain(m)-eval.NominalValue(m.Piece)))
	}
	if m.Type.IsPromotion() {
		return board.MovePriority(promotionBias + int32(eval.NominalValue(m.Promotion)))
	}
	if killers.IsKiller(ply, m) {
		return board.MovePriority(killerBias)
	}
	return board.MovePriority(history.Score(color, m))
}
