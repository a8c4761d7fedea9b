package search_test

import (
	"context"
	"testing"

	"github.com/corvidbit/negamax/pkg/board"
	"github.com/corvidbit/negamax/pkg/board/fen"
	"github.com/corvidbit/negamax/pkg/eval"
	"github.com/corvidbit/negamax/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScholarsMateFinishIsCheckmate(t *testing.T) {
	// Black to move after Qh5xf7, the standard Scholar's mate finish: black is checkmated.
	b, err := fen.Decode("r1bqkbnr/pppp1Qpp/2n5/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4")
	require.NoError(t, err)

	over, reason := b.GameOver(board.Black)
	assert.True(t, over)
	assert.Equal(t, board.Checkmate, reason)
}

func TestIterativeReturnsLegalMove(t *testing.T) {
	b := board.NewBoard()
	tt := search.NoTranspositionTable{}
	pv := search.Iterative(context.Background(), eval.NewDefault(), tt, b, search.Limits{MaxDepth: 2})

	require.True(t, pv.Found)

	legal := b.LegalMoves(b.Turn())
	found := false
	for _, m := range legal {
		if m.Equals(pv.Move) {
			found = true
		}
	}
	assert.True(t, found, "returned move %v is not in the legal move list", pv.Move)
}

func TestIterativeFindsForcedMate(t *testing.T) {
	// Classic ladder mate: Ra7 cuts off the 7th rank, Rb1-b8 delivers mate in one.
	b, err := fen.Decode("7k/R7/8/8/8/8/8/1R6 w - - 0 1")
	require.NoError(t, err)

	tt := search.NoTranspositionTable{}
	pv := search.Iterative(context.Background(), eval.NewDefault(), tt, b, search.Limits{MaxDepth: 2})

	require.True(t, pv.Found)
	assert.Equal(t, "b1b8", pv.Move.String())

	u := b.Make(pv.Move)
	over, reason := b.GameOver(board.Black)
	b.Unmake(pv.Move, u)

	assert.True(t, over)
	assert.Equal(t, board.Checkmate, reason)
}

func TestQuiescenceDoesNotMissHangingQueen(t *testing.T) {
	// White to move, can capture a hanging queen on d5 with a knight -- must be picked
	// up even past the nominal depth limit.
	b, err := fen.Decode("4k3/8/8/3q4/8/2N5/8/4K3 w - - 0 1")
	require.NoError(t, err)

	s := search.NewSearcher(eval.NewDefault(), search.NoTranspositionTable{}, search.Limits{})
	score, move, found := s.Search(context.Background(), b, 1, 0, board.MinScore, board.MaxScore)

	require.True(t, found)
	assert.Equal(t, "c3d5", move.String())
	assert.Greater(t, score, board.Score(0))
}

func TestKillerTableTracksTwoMostRecent(t *testing.T) {
	var k search.KillerTable
	a := board.Move{From: board.E2, To: board.E4}
	b := board.Move{From: board.D2, To: board.D4}
	c := board.Move{From: board.G1, To: board.F3}

	k.Update(5, a)
	k.Update(5, b)
	assert.True(t, k.IsKiller(5, a))
	assert.True(t, k.IsKiller(5, b))

	k.Update(5, c)
	assert.False(t, k.IsKiller(5, a))
	assert.True(t, k.IsKiller(5, b))
	assert.True(t, k.IsKiller(5, c))
}

func TestHistoryTableAccumulates(t *testing.T) {
	var h search.HistoryTable
	m := board.Move{From: board.E2, To: board.E4}

	h.Update(board.White, m, 3)
	first := h.Score(board.White, m)
	assert.Greater(t, first, int32(0))

	h.Update(board.White, m, 3)
	assert.Greater(t, h.Score(board.White, m), first)
}
