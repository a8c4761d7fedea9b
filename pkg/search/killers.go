package search

import "github.com/corvidbit/negamax/pkg/board"

// maxPly bounds the killer/history tables; no realistic iterative-deepening run in this
// engine reaches it since MaxDepth is caller-bounded, but the tables must not panic if it
// somehow did.
const maxPly = 128

// KillerTable remembers, per ply, up to two quiet moves that caused a beta cutoff there in
// a sibling branch -- cheap moves to try early since they are likely to cut off again.
type KillerTable struct {
	moves [maxPly][2]board.Move
}

// Update records m as the newest killer at ply, demoting the previous newest to second.
func (k *KillerTable) Update(ply int, m board.Move) {
	if ply < 0 || ply >= maxPly || k.moves[ply][0].Equals(m) {
		return
	}
	k.moves[ply][1] = k.moves[ply][0]
	k.moves[ply][0] = m
}

// IsKiller reports whether m is one of the two remembered killers at ply.
func (k *KillerTable) IsKiller(ply int, m board.Move) bool {
	if ply < 0 || ply >= maxPly {
		return false
	}
	return k.moves[ply][0].Equals(m) || k.moves[ply][1].Equals(m)
}
