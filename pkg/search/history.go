package search

import "github.com/corvidbit/negamax/pkg/board"

// HistoryTable scores quiet moves by how often they have caused a beta cutoff anywhere in
// the tree, keyed by (color, from, to) rather than by piece kind, per the classic history
// heuristic. It persists across the whole iterative-deepening run, not just one ply.
type HistoryTable struct {
	score [board.NumColors][board.NumSquares][board.NumSquares]int32
}

// Update rewards a cutoff-causing quiet move proportionally to the remaining depth, so
// cutoffs found deep in the tree (rarer, more significant) outweigh shallow ones.
func (h *HistoryTable) Update(c board.Color, m board.Move, depth int) {
	h.score[c][m.From][m.To] += int32(depth * depth)
}

// Score returns the accumulated history value for (c, m).
func (h *HistoryTable) Score(c board.Color, m board.Move) int32 {
	return h.score[c][m.From][m.To]
}
