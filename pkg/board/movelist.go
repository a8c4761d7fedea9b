package board

import (
	"container/heap"
	"fmt"
	"math"
)

// MovePriority represents the move order priority: the higher the value, the earlier the
// move is searched (spec §4.6's TT-move / MVV-LVA / promotion / killer / history ordering).
type MovePriority int32

// MovePriorityFn assigns a priority to moves.
type MovePriorityFn func(move Move) MovePriority

// First puts the given move first, ahead of anything fn would otherwise rank higher. Used to
// force the TT best move to the front of move ordering.
func First(first Move, fn MovePriorityFn) MovePriorityFn {
	return func(m Move) MovePriority {
		if first.Equals(m) {
			return math.MaxInt32
		}
		return fn(m)
	}
}

// MoveList is a move priority queue used for move ordering during search: moves are fed in
// once per node and drained highest-priority-first, so a cutoff partway through a node never
// pays for sorting moves it will not look at.
type MoveList struct {
	h moveHeap
}

// NewMoveList returns a new move list with the given priorities.
func NewMoveList(moves []Move, fn MovePriorityFn) *MoveList {
	h := moveHeap(make([]elm, len(moves)))
	for i, m := range moves {
		h[i] = elm{m: m, val: fn(m)}
	}
	heap.Init(&h)
	return &MoveList{h: h}
}

// Next returns the next move, the highest priority remaining in the list.
func (ml *MoveList) Next() (Move, bool) {
	if ml.Size() == 0 {
		return Move{}, false
	}
	ret := heap.Pop(&ml.h).(elm)
	return ret.m, true
}

func (ml *MoveList) Size() int {
	return ml.h.Len()
}

func (ml *MoveList) String() string {
	if ml.Size() == 0 {
		return "[size=0]"
	}
	return fmt.Sprintf("[top=%v, size=%v]", ml.h[0].m, ml.Size())
}

type elm struct {
	m   Move
	val MovePriority
}

type moveHeap []elm

func (h moveHeap) Len() int {
	return len(h)
}

func (h moveHeap) Less(i, j int) bool {
	return h[i].val > h[j].val
}

func (h moveHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *moveHeap) Push(x interface{}) {
	*h = append(*h, x.(elm))
}

func (h *moveHeap) Pop() interface{} {
	old := *h
	n := len(old)
	ret := old[n-1]
	*h = old[0 : n-1]
	return ret
}
